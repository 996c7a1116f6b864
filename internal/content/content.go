// Package content holds the site's managed content records: the
// calculator catalog, homepage copy, feature and testimonial lists and
// per-page SEO strings. These are plain value types; persistence lives
// in internal/storage.
package content

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a record does not exist or is inactive.
var ErrNotFound = errors.New("content: not found")

// Calculator is one catalog entry. The slug doubles as the page path.
type Calculator struct {
	Slug                string
	Name                string
	Description         string
	DetailedDescription string
	Icon                string
	Active              bool
	Featured            bool
	Order               int
	MetaTitle           string
	MetaDescription     string
	MetaKeywords        string
	UsageCount          int64
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Homepage is the single active homepage content record.
type Homepage struct {
	Title            string
	Subtitle         string
	HeroText         string
	AboutSection     string
	FeaturesTitle    string
	ShowFeatures     bool
	ShowStatistics   bool
	ShowTestimonials bool
	MetaTitle        string
	MetaDescription  string
	MetaKeywords     string
}

// Feature is one homepage selling point.
type Feature struct {
	Title       string
	Description string
	Icon        string
	Order       int
}

// Testimonial is one user quote shown on the homepage.
type Testimonial struct {
	Name       string
	Occupation string
	Message    string
	Rating     int
	CreatedAt  time.Time
}

// SEO is the per-page metadata override.
type SEO struct {
	Page        string
	Title       string
	Description string
	Keywords    string
}

// Store is the read/update surface the HTTP layer needs. Writes beyond
// the usage counter are managed out of band (seed migrations).
type Store interface {
	ListCalculators(ctx context.Context) ([]Calculator, error)
	GetCalculator(ctx context.Context, slug string) (Calculator, error)
	FeaturedCalculators(ctx context.Context, limit int) ([]Calculator, error)
	RelatedCalculators(ctx context.Context, excludeSlug string, limit int) ([]Calculator, error)
	IncrementUsage(ctx context.Context, slug string) error
	TotalUsage(ctx context.Context) (int64, error)

	Homepage(ctx context.Context) (Homepage, error)
	ListFeatures(ctx context.Context) ([]Feature, error)
	ListTestimonials(ctx context.Context, limit int) ([]Testimonial, error)
	SEOFor(ctx context.Context, page string) (SEO, error)

	Close() error
}
