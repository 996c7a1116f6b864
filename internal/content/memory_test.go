package content

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreCatalog(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	all, err := s.ListCalculators(ctx)
	require.NoError(t, err)
	require.Len(t, all, 10)

	// Ordered by sort order.
	assert.Equal(t, "age-calculator", all[0].Slug)
	assert.Equal(t, "pregnancy-calculator", all[len(all)-1].Slug)

	c, err := s.GetCalculator(ctx, "bmi-calculator")
	require.NoError(t, err)
	assert.Equal(t, "BMI Calculator", c.Name)

	_, err = s.GetCalculator(ctx, "quantum-calculator")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreFeaturedAndRelated(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	featured, err := s.FeaturedCalculators(ctx, 6)
	require.NoError(t, err)
	require.Len(t, featured, 3)
	for _, c := range featured {
		assert.True(t, c.Featured, c.Slug)
	}

	related, err := s.RelatedCalculators(ctx, "age-calculator", 3)
	require.NoError(t, err)
	require.Len(t, related, 3)
	for _, c := range related {
		assert.NotEqual(t, "age-calculator", c.Slug)
	}
}

func TestMemoryStoreUsage(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	before, err := s.TotalUsage(ctx)
	require.NoError(t, err)

	require.NoError(t, s.IncrementUsage(ctx, "loan-calculator"))
	require.NoError(t, s.IncrementUsage(ctx, "loan-calculator"))

	after, err := s.TotalUsage(ctx)
	require.NoError(t, err)
	assert.Equal(t, before+2, after)

	assert.ErrorIs(t, s.IncrementUsage(ctx, "missing"), ErrNotFound)
}

func TestMemoryStoreHomepage(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	h, err := s.Homepage(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Calculator Hub", h.Title)
	assert.True(t, h.ShowFeatures)

	features, err := s.ListFeatures(ctx)
	require.NoError(t, err)
	require.Len(t, features, 4)
	for i := 1; i < len(features); i++ {
		assert.LessOrEqual(t, features[i-1].Order, features[i].Order)
	}
}
