// Package health implements the BMI and daily-calorie (BMR/TDEE)
// calculators.
package health

import (
	"math"

	"calchub/internal/calc"
)

// UnitSystem selects the measurement units for BMI input.
type UnitSystem string

const (
	Metric   UnitSystem = "metric"   // kg, cm
	Imperial UnitSystem = "imperial" // lb, in
)

// Conversion factors for imperial input.
const (
	poundsToKg   = 0.453592
	inchesToCm   = 2.54
	maleOffset   = 5
	femaleOffset = -161
)

// BMIResult carries the computed index plus its category information.
type BMIResult struct {
	BMI            float64 `json:"bmi"`
	Category       string  `json:"category"`
	Range          string  `json:"range"`
	Description    string  `json:"description"`
	Recommendation string  `json:"recommendation"`
}

// BMI computes the body-mass index for the given weight and height.
// Imperial inputs are converted to metric before the division. Inputs
// outside the per-system plausibility bounds are rejected rather than
// silently computed.
func BMI(weight, height float64, units UnitSystem) (*BMIResult, error) {
	if weight <= 0 {
		return nil, calc.Invalidf("weight must be positive")
	}
	if height <= 0 {
		return nil, calc.Invalidf("height must be positive")
	}

	switch units {
	case Metric:
		if weight > 500 {
			return nil, calc.Invalidf("weight seems unrealistic for the metric system")
		}
		if height > 250 {
			return nil, calc.Invalidf("height seems unrealistic for the metric system")
		}
	case Imperial:
		if weight > 1000 {
			return nil, calc.Invalidf("weight seems unrealistic for the imperial system")
		}
		if height > 120 {
			return nil, calc.Invalidf("height seems unrealistic for the imperial system")
		}
		weight = weight * poundsToKg
		height = height * inchesToCm
	default:
		return nil, calc.Invalidf("unknown unit system %q", units)
	}

	heightM := height / 100
	bmi := weight / (heightM * heightM)

	res := &BMIResult{BMI: round1(bmi)}
	switch {
	case bmi < 18.5:
		res.Category = "Underweight"
		res.Range = "Below 18.5"
		res.Description = "Below normal weight range"
		res.Recommendation = "Consider consulting a healthcare provider about healthy weight gain."
	case bmi < 25:
		res.Category = "Normal weight"
		res.Range = "18.5 - 24.9"
		res.Description = "Within healthy weight range"
		res.Recommendation = "Maintain your current lifestyle with balanced diet and regular exercise."
	case bmi < 30:
		res.Category = "Overweight"
		res.Range = "25.0 - 29.9"
		res.Description = "Above normal weight range"
		res.Recommendation = "Consider a balanced diet and increased physical activity."
	default:
		res.Category = "Obese"
		res.Range = "30.0 and above"
		res.Description = "Significantly above normal weight range"
		res.Recommendation = "Consult a healthcare provider for personalized weight management advice."
	}
	return res, nil
}

// Gender selects the Mifflin-St Jeor constant term.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// ActivityLevel indexes the fixed TDEE multiplier table.
type ActivityLevel string

const (
	Sedentary  ActivityLevel = "sedentary"
	Light      ActivityLevel = "light"
	Moderate   ActivityLevel = "moderate"
	Active     ActivityLevel = "active"
	VeryActive ActivityLevel = "very_active"
)

var activityMultipliers = map[ActivityLevel]float64{
	Sedentary:  1.2,
	Light:      1.375,
	Moderate:   1.55,
	Active:     1.725,
	VeryActive: 1.9,
}

// CalorieResult holds the basal rate and the activity-adjusted daily
// expenditure.
type CalorieResult struct {
	BMR        float64       `json:"bmr"`
	TDEE       float64       `json:"tdee"`
	Activity   ActivityLevel `json:"activity_level"`
	Multiplier float64       `json:"multiplier"`
}

// Calories computes BMR with the Mifflin-St Jeor equation
// (10·weight + 6.25·height − 5·age ± gender offset) and scales it by
// the activity multiplier for TDEE.
func Calories(age int, gender Gender, heightCm, weightKg float64, activity ActivityLevel) (*CalorieResult, error) {
	if age < 1 || age > 120 {
		return nil, calc.Invalidf("age must be between 1 and 120")
	}
	if heightCm < 50 || heightCm > 280 {
		return nil, calc.Invalidf("height must be between 50 and 280 cm")
	}
	if weightKg < 2 || weightKg > 500 {
		return nil, calc.Invalidf("weight must be between 2 and 500 kg")
	}

	var offset float64
	switch gender {
	case Male:
		offset = maleOffset
	case Female:
		offset = femaleOffset
	default:
		return nil, calc.Invalidf("unknown gender %q", gender)
	}

	mult, ok := activityMultipliers[activity]
	if !ok {
		return nil, calc.Invalidf("unknown activity level %q", activity)
	}

	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age) + offset
	return &CalorieResult{
		BMR:        round1(bmr),
		TDEE:       round1(bmr * mult),
		Activity:   activity,
		Multiplier: mult,
	}, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
