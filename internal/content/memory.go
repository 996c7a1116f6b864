package content

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is an in-memory Store used for tests and for running the
// server without a database (DATA_BACKEND=memory). It is seeded with
// the same catalog the SQLite migrations install.
type MemoryStore struct {
	mu           sync.RWMutex
	calculators  []Calculator
	homepage     Homepage
	features     []Feature
	testimonials []Testimonial
	seo          map[string]SEO
}

// NewMemoryStore returns a store pre-seeded with the default catalog.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		calculators:  DefaultCalculators(),
		homepage:     DefaultHomepage(),
		features:     DefaultFeatures(),
		testimonials: nil,
		seo:          map[string]SEO{},
	}
}

func (s *MemoryStore) ListCalculators(ctx context.Context) ([]Calculator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Calculator
	for _, c := range s.calculators {
		if c.Active {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (s *MemoryStore) GetCalculator(ctx context.Context, slug string) (Calculator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.calculators {
		if c.Slug == slug && c.Active {
			return c, nil
		}
	}
	return Calculator{}, ErrNotFound
}

func (s *MemoryStore) FeaturedCalculators(ctx context.Context, limit int) ([]Calculator, error) {
	all, err := s.ListCalculators(ctx)
	if err != nil {
		return nil, err
	}
	var out []Calculator
	for _, c := range all {
		if c.Featured {
			out = append(out, c)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *MemoryStore) RelatedCalculators(ctx context.Context, excludeSlug string, limit int) ([]Calculator, error) {
	all, err := s.ListCalculators(ctx)
	if err != nil {
		return nil, err
	}
	var out []Calculator
	for _, c := range all {
		if c.Slug == excludeSlug {
			continue
		}
		out = append(out, c)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *MemoryStore) IncrementUsage(ctx context.Context, slug string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.calculators {
		if s.calculators[i].Slug == slug {
			s.calculators[i].UsageCount++
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) TotalUsage(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int64
	for _, c := range s.calculators {
		total += c.UsageCount
	}
	return total, nil
}

func (s *MemoryStore) Homepage(ctx context.Context) (Homepage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.homepage, nil
}

func (s *MemoryStore) ListFeatures(ctx context.Context) ([]Feature, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Feature, len(s.features))
	copy(out, s.features)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (s *MemoryStore) ListTestimonials(ctx context.Context, limit int) ([]Testimonial, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.testimonials
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	res := make([]Testimonial, len(out))
	copy(res, out)
	return res, nil
}

func (s *MemoryStore) SEOFor(ctx context.Context, page string) (SEO, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if seo, ok := s.seo[page]; ok {
		return seo, nil
	}
	return SEO{}, ErrNotFound
}

func (s *MemoryStore) Close() error { return nil }
