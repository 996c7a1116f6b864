// Package session keeps per-visitor GPA entry lists so the calculator
// can accumulate courses across requests. Entries are keyed by an
// opaque session ID carried in a cookie and expire after a day.
package session

import (
	"context"
	"time"
)

// TTL is how long an idle entry list survives.
const TTL = 24 * time.Hour

// Entry is one course a visitor added to the GPA calculator.
type Entry struct {
	Subject     string  `json:"subject"`
	Grade       string  `json:"grade"`
	CreditHours float64 `json:"credit_hours"`
}

// Store persists entry lists per session ID.
type Store interface {
	Entries(ctx context.Context, sessionID string) ([]Entry, error)
	Save(ctx context.Context, sessionID string, entries []Entry) error
	Clear(ctx context.Context, sessionID string) error
	Close() error
}
