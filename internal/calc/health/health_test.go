package health

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calchub/internal/calc"
)

func TestBMIMetric(t *testing.T) {
	res, err := BMI(70, 175, Metric)
	require.NoError(t, err)

	assert.InDelta(t, 22.9, res.BMI, 0.05)
	assert.Equal(t, "Normal weight", res.Category)
}

func TestBMIUnitInvariance(t *testing.T) {
	metric, err := BMI(70, 175, Metric)
	require.NoError(t, err)
	imperial, err := BMI(154.324, 68.9, Imperial)
	require.NoError(t, err)

	assert.InDelta(t, metric.BMI, imperial.BMI, 0.1)
	assert.Equal(t, metric.Category, imperial.Category)
}

func TestBMICategories(t *testing.T) {
	cases := []struct {
		weight, height float64
		category       string
	}{
		{50, 175, "Underweight"},
		{70, 175, "Normal weight"},
		{80, 175, "Overweight"},
		{95, 175, "Obese"},
	}
	for _, tc := range cases {
		res, err := BMI(tc.weight, tc.height, Metric)
		require.NoError(t, err)
		assert.Equal(t, tc.category, res.Category, "weight %g", tc.weight)
	}
}

func TestBMICategoryBoundaries(t *testing.T) {
	// Thresholds are exclusive upper bounds: 18.5 is normal, 25 is
	// overweight, 30 is obese. Pick a 2m height so weight = 4 * bmi.
	for _, tc := range []struct {
		bmi      float64
		category string
	}{
		{18.49, "Underweight"},
		{18.5, "Normal weight"},
		{24.99, "Normal weight"},
		{25, "Overweight"},
		{30, "Obese"},
	} {
		res, err := BMI(tc.bmi*4, 200, Metric)
		require.NoError(t, err)
		assert.Equal(t, tc.category, res.Category, "bmi %g", tc.bmi)
	}
}

func TestBMIRejectsImplausibleInput(t *testing.T) {
	cases := []struct {
		weight, height float64
		units          UnitSystem
	}{
		{0, 175, Metric},
		{70, 0, Metric},
		{501, 175, Metric},
		{70, 251, Metric},
		{1001, 69, Imperial},
		{154, 121, Imperial},
		{70, 175, UnitSystem("nautical")},
	}
	for _, tc := range cases {
		_, err := BMI(tc.weight, tc.height, tc.units)
		require.Error(t, err, "weight=%g height=%g units=%s", tc.weight, tc.height, tc.units)
		assert.True(t, calc.IsValidation(err))
	}
}

func TestCaloriesMifflinStJeor(t *testing.T) {
	// 10*80 + 6.25*180 - 5*30 + 5 = 1780
	res, err := Calories(30, Male, 180, 80, Sedentary)
	require.NoError(t, err)
	assert.InDelta(t, 1780, res.BMR, 0.01)
	assert.InDelta(t, 1780*1.2, res.TDEE, 0.5)

	// Female offset is -161.
	res, err = Calories(30, Female, 180, 80, Sedentary)
	require.NoError(t, err)
	assert.InDelta(t, 1614, res.BMR, 0.01)
}

func TestCaloriesActivityMultipliers(t *testing.T) {
	want := map[ActivityLevel]float64{
		Sedentary:  1.2,
		Light:      1.375,
		Moderate:   1.55,
		Active:     1.725,
		VeryActive: 1.9,
	}
	for level, mult := range want {
		res, err := Calories(25, Male, 175, 70, level)
		require.NoError(t, err)
		assert.Equal(t, mult, res.Multiplier)
		assert.InDelta(t, res.BMR*mult, res.TDEE, math.Max(0.1, res.TDEE*0.001))
	}
}

func TestCaloriesRejectsImplausibleInput(t *testing.T) {
	_, err := Calories(0, Male, 175, 70, Sedentary)
	assert.True(t, calc.IsValidation(err))
	_, err = Calories(30, Male, 20, 70, Sedentary)
	assert.True(t, calc.IsValidation(err))
	_, err = Calories(30, Male, 175, 600, Sedentary)
	assert.True(t, calc.IsValidation(err))
	_, err = Calories(30, Gender("other"), 175, 70, Sedentary)
	assert.True(t, calc.IsValidation(err))
	_, err = Calories(30, Male, 175, 70, ActivityLevel("heroic"))
	assert.True(t, calc.IsValidation(err))
}
