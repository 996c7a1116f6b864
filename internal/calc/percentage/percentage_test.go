package percentage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calchub/internal/calc"
)

func TestOf(t *testing.T) {
	assert.Equal(t, 12.0, Of(15, 80).Value)
	assert.Equal(t, 0.0, Of(0, 80).Value)
	assert.Equal(t, -25.0, Of(50, -50).Value)
}

func TestWhatPercent(t *testing.T) {
	res, err := WhatPercent(30, 120)
	require.NoError(t, err)
	assert.Equal(t, 25.0, res.Value)

	_, err = WhatPercent(30, 0)
	assert.True(t, calc.IsInfeasible(err))
}

func TestChange(t *testing.T) {
	res, err := Change(80, 100)
	require.NoError(t, err)
	assert.Equal(t, 25.0, res.Value)
	assert.Equal(t, "increase", res.Direction)

	res, err = Change(100, 80)
	require.NoError(t, err)
	assert.Equal(t, -20.0, res.Value)
	assert.Equal(t, "decrease", res.Direction)

	_, err = Change(0, 10)
	assert.True(t, calc.IsInfeasible(err))
}
