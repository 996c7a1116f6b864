package http

import (
	"context"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"calchub/internal/cache"
	"calchub/internal/content"
	"calchub/internal/mail"
	"calchub/internal/queue"
	"calchub/internal/session"
	appweb "calchub/web"
)

// ContactPublisher queues a contact-form submission for the worker.
type ContactPublisher interface {
	PublishContact(ctx context.Context, msg *queue.ContactMessage) error
}

// Deps carries everything the server needs. Contacts may be nil, in
// which case submissions are delivered directly through Mailer.
type Deps struct {
	Store    content.Store
	Sessions session.Store
	Contacts ContactPublisher
	Mailer   mail.Mailer

	BaseURL       string
	MailFromName  string
	MailFromEmail string
	MailToEmail   string
}

type Server struct {
	http.Server
	templates   *template.Template
	store       content.Store
	sessions    session.Store
	contacts    ContactPublisher
	mailer      mail.Mailer
	baseURL     string
	mailFrom    [2]string // name, email
	mailTo      string
	rateLimiter *rateLimiter

	// Cached homepage view; invalidated by TTL only, usage counters
	// may lag by up to the TTL.
	homeCache    *cache.LRUCache[homeView]
	cacheManager *cache.Manager

	shutdownOnce sync.Once
}

// NewServer configures routes and templates, returning a ready-to-run http.Server.
func NewServer(addr string, deps Deps) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: mux,
		},
		store:        deps.Store,
		sessions:     deps.Sessions,
		contacts:     deps.Contacts,
		mailer:       deps.Mailer,
		baseURL:      deps.BaseURL,
		mailFrom:     [2]string{deps.MailFromName, deps.MailFromEmail},
		mailTo:       deps.MailToEmail,
		rateLimiter:  newRateLimiter(),
		homeCache:    cache.NewLRUCache[homeView](4, 5*time.Minute),
		cacheManager: cache.NewManager(),
	}

	s.cacheManager.Register(s.homeCache)
	s.cacheManager.StartCleanup(10 * time.Minute)

	// Parse embedded templates at startup.
	t, err := template.ParseFS(appweb.TemplatesFS, "templates/*.html")
	if err != nil {
		slog.Warn("Failed parsing templates", "error", err)
	}
	s.templates = t

	// Static assets (served from embedded FS)
	if sub, err := fs.Sub(appweb.StaticFS, "static"); err == nil {
		static := http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
		mux.Handle("/static/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "public, max-age=3600, immutable")
			static.ServeHTTP(w, r)
		}))
	} else {
		slog.Warn("Failed to mount embedded static FS", "error", err)
	}

	mux.HandleFunc("/", s.withSecurityHeaders(s.handleHome))
	mux.HandleFunc("/calculators/", s.withSecurityHeaders(s.handleCalculator))
	mux.HandleFunc("/about", s.withSecurityHeaders(s.handleStaticPage("about", "about.html")))
	mux.HandleFunc("/privacy", s.withSecurityHeaders(s.handleStaticPage("privacy", "privacy.html")))
	mux.HandleFunc("/terms", s.withSecurityHeaders(s.handleStaticPage("terms", "terms.html")))
	mux.HandleFunc("/sitemap", s.withSecurityHeaders(s.handleSitemapPage))
	mux.HandleFunc("/contact", s.withSecurityHeaders(s.handleContact))
	mux.HandleFunc("/sitemap.xml", s.withSecurityHeaders(s.handleSitemapXML))
	mux.HandleFunc("/robots.txt", s.withSecurityHeaders(s.handleRobots))
	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/readyz", s.handleReady)
	mux.HandleFunc("/metrics", s.handleMetrics)

	return s
}

// withSecurityHeaders adds security headers, rate limiting, and request logging to responses
func (s *Server) withSecurityHeaders(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Extract client IP (considering proxies)
		clientIP := r.Header.Get("X-Forwarded-For")
		if clientIP == "" {
			clientIP = r.Header.Get("X-Real-IP")
		}
		if clientIP == "" {
			clientIP = r.RemoteAddr
		}

		// Generate request ID for tracing
		requestID := generateRequestID()

		ctx := context.WithValue(r.Context(), requestIDKey{}, requestID)
		r = r.WithContext(ctx)

		slog.InfoContext(ctx, "Request started",
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.Path,
			"client_ip", clientIP,
			"user_agent", r.Header.Get("User-Agent"))

		// Rate limit form submissions only
		if r.Method == http.MethodPost && !s.rateLimiter.allow(clientIP) {
			slog.WarnContext(ctx, "Rate limit exceeded", "client_ip", clientIP, "method", r.Method, "url", r.URL.Path)
			w.Header().Set("Retry-After", "60")
			http.Error(w, "Rate limit exceeded. Please try again later.", http.StatusTooManyRequests)
			return
		}

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("Content-Security-Policy", "default-src 'self'; script-src 'self'; style-src 'self' 'unsafe-inline'; img-src 'self' data:; connect-src 'self'")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		duration := time.Since(start)
		slog.InfoContext(ctx, "Request completed",
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"client_ip", clientIP)
	}
}

type requestIDKey struct{}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if _, err := s.store.ListCalculators(r.Context()); err != nil {
		slog.ErrorContext(r.Context(), "Readiness check failed", "error", err)
		http.Error(w, "store unavailable", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// handleMetrics exposes usage counters in text exposition format.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	calcs, err := s.store.ListCalculators(r.Context())
	if err != nil {
		http.Error(w, "store unavailable", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/plain; version=0.0.4; charset=utf-8")
	var total int64
	for _, c := range calcs {
		total += c.UsageCount
		fmt.Fprintf(w, "calchub_calculator_usage_total{slug=%q} %d\n", c.Slug, c.UsageCount)
	}
	fmt.Fprintf(w, "calchub_usage_total %d\n", total)
}

// Shutdown gracefully shuts down the server and cleanup routines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		if s.cacheManager != nil {
			s.cacheManager.Stop()
		}
		if s.rateLimiter != nil {
			s.rateLimiter.stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})

	return shutdownErr
}
