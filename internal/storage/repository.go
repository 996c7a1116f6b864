package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"calchub/internal/content"

	_ "modernc.org/sqlite"
)

// SQLiteRepository implements content.Store on a local SQLite file.
type SQLiteRepository struct {
	db *sql.DB
}

var _ content.Store = (*SQLiteRepository)(nil)

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

const calculatorColumns = `slug, name, description, detailed_description, icon,
	active, featured, sort_order, meta_title, meta_description, meta_keywords,
	usage_count, created_at, updated_at`

func scanCalculator(row interface{ Scan(...any) error }) (content.Calculator, error) {
	var c content.Calculator
	err := row.Scan(
		&c.Slug, &c.Name, &c.Description, &c.DetailedDescription, &c.Icon,
		&c.Active, &c.Featured, &c.Order, &c.MetaTitle, &c.MetaDescription,
		&c.MetaKeywords, &c.UsageCount, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

func (r *SQLiteRepository) ListCalculators(ctx context.Context) ([]content.Calculator, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+calculatorColumns+`
		FROM calculators
		WHERE active = 1
		ORDER BY sort_order, name`)
	if err != nil {
		return nil, fmt.Errorf("list calculators: %w", err)
	}
	defer rows.Close()

	var out []content.Calculator
	for rows.Next() {
		c, err := scanCalculator(rows)
		if err != nil {
			return nil, fmt.Errorf("scan calculator: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list calculators: %w", err)
	}
	return out, nil
}

func (r *SQLiteRepository) GetCalculator(ctx context.Context, slug string) (content.Calculator, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+calculatorColumns+`
		FROM calculators
		WHERE slug = ? AND active = 1`, slug)

	c, err := scanCalculator(row)
	if errors.Is(err, sql.ErrNoRows) {
		return content.Calculator{}, content.ErrNotFound
	}
	if err != nil {
		return content.Calculator{}, fmt.Errorf("get calculator %s: %w", slug, err)
	}
	return c, nil
}

func (r *SQLiteRepository) FeaturedCalculators(ctx context.Context, limit int) ([]content.Calculator, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+calculatorColumns+`
		FROM calculators
		WHERE active = 1 AND featured = 1
		ORDER BY sort_order, name
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("featured calculators: %w", err)
	}
	defer rows.Close()

	var out []content.Calculator
	for rows.Next() {
		c, err := scanCalculator(rows)
		if err != nil {
			return nil, fmt.Errorf("scan calculator: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) RelatedCalculators(ctx context.Context, excludeSlug string, limit int) ([]content.Calculator, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+calculatorColumns+`
		FROM calculators
		WHERE active = 1 AND slug != ?
		ORDER BY sort_order, name
		LIMIT ?`, excludeSlug, limit)
	if err != nil {
		return nil, fmt.Errorf("related calculators: %w", err)
	}
	defer rows.Close()

	var out []content.Calculator
	for rows.Next() {
		c, err := scanCalculator(rows)
		if err != nil {
			return nil, fmt.Errorf("scan calculator: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) IncrementUsage(ctx context.Context, slug string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE calculators
		SET usage_count = usage_count + 1, updated_at = CURRENT_TIMESTAMP
		WHERE slug = ?`, slug)
	if err != nil {
		return fmt.Errorf("increment usage for %s: %w", slug, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("increment usage for %s: %w", slug, err)
	}
	if n == 0 {
		return content.ErrNotFound
	}

	slog.DebugContext(ctx, "Calculator usage incremented", "slug", slug)
	return nil
}

func (r *SQLiteRepository) TotalUsage(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(usage_count), 0) FROM calculators WHERE active = 1`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("total usage: %w", err)
	}
	return total, nil
}

func (r *SQLiteRepository) Homepage(ctx context.Context) (content.Homepage, error) {
	var h content.Homepage
	err := r.db.QueryRowContext(ctx, `
		SELECT title, subtitle, hero_text, about_section, features_title,
			show_features, show_statistics, show_testimonials,
			meta_title, meta_description, meta_keywords
		FROM homepage_content
		WHERE active = 1
		ORDER BY id
		LIMIT 1`).Scan(
		&h.Title, &h.Subtitle, &h.HeroText, &h.AboutSection, &h.FeaturesTitle,
		&h.ShowFeatures, &h.ShowStatistics, &h.ShowTestimonials,
		&h.MetaTitle, &h.MetaDescription, &h.MetaKeywords,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return content.Homepage{}, content.ErrNotFound
	}
	if err != nil {
		return content.Homepage{}, fmt.Errorf("get homepage: %w", err)
	}
	return h, nil
}

func (r *SQLiteRepository) ListFeatures(ctx context.Context) ([]content.Feature, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT title, description, icon, sort_order
		FROM features
		WHERE active = 1
		ORDER BY sort_order`)
	if err != nil {
		return nil, fmt.Errorf("list features: %w", err)
	}
	defer rows.Close()

	var out []content.Feature
	for rows.Next() {
		var f content.Feature
		if err := rows.Scan(&f.Title, &f.Description, &f.Icon, &f.Order); err != nil {
			return nil, fmt.Errorf("scan feature: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) ListTestimonials(ctx context.Context, limit int) ([]content.Testimonial, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT name, occupation, message, rating, created_at
		FROM testimonials
		WHERE active = 1
		ORDER BY created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	defer rows.Close()

	var out []content.Testimonial
	for rows.Next() {
		var t content.Testimonial
		if err := rows.Scan(&t.Name, &t.Occupation, &t.Message, &t.Rating, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan testimonial: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) SEOFor(ctx context.Context, page string) (content.SEO, error) {
	var s content.SEO
	err := r.db.QueryRowContext(ctx, `
		SELECT page, title, description, keywords
		FROM seo_content
		WHERE page = ? AND active = 1`, page).Scan(
		&s.Page, &s.Title, &s.Description, &s.Keywords,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return content.SEO{}, content.ErrNotFound
	}
	if err != nil {
		return content.SEO{}, fmt.Errorf("get seo for %s: %w", page, err)
	}
	return s, nil
}
