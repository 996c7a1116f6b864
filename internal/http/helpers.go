package http

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"calchub/internal/calc"
)

const sessionCookie = "calchub_session"

// formFloat parses a required float form field.
func formFloat(r *http.Request, field string) (float64, error) {
	v := strings.TrimSpace(r.Form.Get(field))
	if v == "" {
		return 0, fmt.Errorf("%s is required", field)
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", field)
	}
	return f, nil
}

// formFloatDefault parses an optional float form field.
func formFloatDefault(r *http.Request, field string, def float64) (float64, error) {
	v := strings.TrimSpace(r.Form.Get(field))
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", field)
	}
	return f, nil
}

// formInt parses a required integer form field.
func formInt(r *http.Request, field string) (int, error) {
	v := strings.TrimSpace(r.Form.Get(field))
	if v == "" {
		return 0, fmt.Errorf("%s is required", field)
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number", field)
	}
	return i, nil
}

// formIntDefault parses an optional integer form field.
func formIntDefault(r *http.Request, field string, def int) (int, error) {
	v := strings.TrimSpace(r.Form.Get(field))
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number", field)
	}
	return i, nil
}

// formDate parses a required YYYY-MM-DD form field.
func formDate(r *http.Request, field string) (time.Time, error) {
	v := strings.TrimSpace(r.Form.Get(field))
	if v == "" {
		return time.Time{}, fmt.Errorf("%s is required", field)
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be a date in YYYY-MM-DD format", field)
	}
	return t, nil
}

// sanitizeInput removes potentially dangerous characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	result := strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
	return result
}

// isXHR reports whether the request came from an asynchronous fetch.
func isXHR(r *http.Request) bool {
	return r.Header.Get("X-Requested-With") == "XMLHttpRequest"
}

// generateRequestID creates a unique request ID for tracing.
func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}

// sessionIDKey carries the per-request session ID through the context
// so the cookie is minted at most once per request.
type sessionIDKey struct{}

// requestSessionID returns the session ID resolved earlier in the
// request, falling back to cookie resolution.
func requestSessionID(w http.ResponseWriter, r *http.Request) string {
	if sid, ok := r.Context().Value(sessionIDKey{}).(string); ok && sid != "" {
		return sid
	}
	return sessionID(w, r)
}

// sessionID returns the visitor's session ID, setting the cookie on
// first contact.
func sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}

	bytes := make([]byte, 16)
	var id string
	if _, err := rand.Read(bytes); err != nil {
		id = fmt.Sprintf("sess_%d", time.Now().UnixNano())
	} else {
		id = hex.EncodeToString(bytes)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int((24 * time.Hour).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// writeJSON writes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed encoding JSON response", "error", err)
	}
}

// writeResult writes a successful computation envelope.
func writeResult(w http.ResponseWriter, result any) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"result":  result,
	})
}

// writeError maps an error to the JSON error envelope. Domain errors
// (invalid or infeasible input) are 422; everything else is the given
// fallback status.
func writeError(w http.ResponseWriter, err error, fallback int) {
	status := fallback
	if calc.IsDomainError(err) {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, map[string]any{
		"success": false,
		"error":   err.Error(),
	})
}
