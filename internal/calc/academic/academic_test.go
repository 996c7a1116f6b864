package academic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calchub/internal/calc"
)

func TestGPASingleEntry(t *testing.T) {
	res, err := GPA([]GradeEntry{{Subject: "Math", Grade: "A", CreditHours: 3}})
	require.NoError(t, err)

	assert.Equal(t, 4.0, res.GPA)
	assert.Equal(t, 3.0, res.TotalCredits)
	assert.Equal(t, 12.0, res.QualityPoints)
	assert.Equal(t, "Excellent", res.Category)
	assert.Equal(t, 100.0, res.Percentage)
}

func TestGPAWeightedAverage(t *testing.T) {
	res, err := GPA([]GradeEntry{
		{Subject: "Math", Grade: "A", CreditHours: 4},
		{Subject: "History", Grade: "B", CreditHours: 3},
		{Subject: "Gym", Grade: "C+", CreditHours: 1},
	})
	require.NoError(t, err)

	// (4.0*4 + 3.0*3 + 2.3*1) / 8 = 27.3 / 8 = 3.4125
	assert.Equal(t, 3.41, res.GPA)
	assert.Equal(t, 8.0, res.TotalCredits)
	assert.Equal(t, 27.3, res.QualityPoints)
	assert.Equal(t, "Good", res.Category)
	assert.Equal(t, 4.0, res.Distribution["A"])
	assert.Equal(t, 3.0, res.Distribution["B"])
}

func TestGPAFailures(t *testing.T) {
	_, err := GPA(nil)
	assert.True(t, calc.IsValidation(err))

	_, err = GPA([]GradeEntry{{Grade: "A", CreditHours: 0}})
	assert.True(t, calc.IsValidation(err))

	_, err = GPA([]GradeEntry{{Grade: "Z", CreditHours: 3}})
	assert.True(t, calc.IsValidation(err))
}

func TestGPAMapHasNoDMinus(t *testing.T) {
	// The GPA table intentionally lacks D-; the semester table defines
	// it as 0.7. Both behaviours are load-bearing for their
	// calculators.
	_, err := GPA([]GradeEntry{{Grade: "D-", CreditHours: 3}})
	assert.Error(t, err)

	res, err := Semester([]Course{{Name: "Art", Letter: "D-", Credits: 3}})
	require.NoError(t, err)
	assert.Equal(t, 0.7, res.GPA)
}

func TestFinalGradeWeightedSum(t *testing.T) {
	res, err := FinalGrade([]Assignment{
		{Name: "Midterm", Score: 85, Max: 100, Weight: 30, Category: "Exams"},
		{Name: "Final", Score: 90, Max: 100, Weight: 40, Category: "Exams"},
		{Name: "Homework", Score: 57, Max: 60, Weight: 30, Category: "Homework"},
	})
	require.NoError(t, err)

	// 85*0.3 + 90*0.4 + 95*0.3 = 25.5 + 36 + 28.5 = 90
	assert.Equal(t, 90.0, res.Percentage)
	assert.Equal(t, "A-", res.Letter)
	assert.Equal(t, 100.0, res.TotalWeight)

	require.Len(t, res.Categories, 2)
	assert.Equal(t, "Exams", res.Categories[0].Category)
	assert.Equal(t, 70.0, res.Categories[0].Weight)
	assert.Equal(t, "Homework", res.Categories[1].Category)
	assert.Equal(t, 30.0, res.Categories[1].Weight)
}

func TestFinalGradeTotalWeightMatchesSum(t *testing.T) {
	assignments := []Assignment{
		{Score: 10, Max: 10, Weight: 25},
		{Score: 8, Max: 10, Weight: 35},
		{Score: 6, Max: 10, Weight: 15},
	}
	res, err := FinalGrade(assignments)
	require.NoError(t, err)

	var want float64
	for _, a := range assignments {
		want += a.Weight
	}
	assert.Equal(t, want, res.TotalWeight)
}

func TestFinalGradeFailures(t *testing.T) {
	_, err := FinalGrade(nil)
	assert.True(t, calc.IsValidation(err))

	_, err = FinalGrade([]Assignment{{Score: 5, Max: 0, Weight: 50}})
	assert.True(t, calc.IsValidation(err))

	_, err = FinalGrade([]Assignment{{Score: 11, Max: 10, Weight: 50}})
	assert.True(t, calc.IsValidation(err))

	_, err = FinalGrade([]Assignment{{Score: 5, Max: 10, Weight: 0}})
	assert.True(t, calc.IsInfeasible(err))
}

func TestLetterBoundariesExact(t *testing.T) {
	cases := []struct {
		pct    float64
		letter string
	}{
		{97, "A+"}, {96.99, "A"},
		{93, "A"}, {92.99, "A-"},
		{90, "A-"}, {89.99, "B+"},
		{80, "B-"}, {70, "C-"},
		{60, "D-"}, {59.99, "F"},
		{0, "F"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.letter, LetterForPercentage(tc.pct), "pct %g", tc.pct)
	}
}

func TestGradeNeededSolvesLinearBlend(t *testing.T) {
	// desired = current*(1-w) + needed*w
	res, err := GradeNeeded(88, 90, 40)
	require.NoError(t, err)
	// needed = (90 - 88*0.6) / 0.4 = 93
	assert.Equal(t, 93.0, res.Needed)
	assert.Equal(t, "difficult", res.Difficulty)
	assert.True(t, res.Achievable)
}

func TestGradeNeededDifficultyBands(t *testing.T) {
	cases := []struct {
		current, desired, weight float64
		difficulty               string
		achievable               bool
	}{
		{95, 80, 50, "easy", true},        // needed 65
		{80, 80, 50, "moderate", true},    // needed 80
		{75, 85, 50, "difficult", true},   // needed 95
		{70, 90, 50, "impossible", false}, // needed 110
	}
	for _, tc := range cases {
		res, err := GradeNeeded(tc.current, tc.desired, tc.weight)
		require.NoError(t, err)
		assert.Equal(t, tc.difficulty, res.Difficulty, "current=%g desired=%g", tc.current, tc.desired)
		assert.Equal(t, tc.achievable, res.Achievable)
	}
}

func TestGradeNeededValidation(t *testing.T) {
	_, err := GradeNeeded(80, 90, 0)
	assert.True(t, calc.IsValidation(err))
	_, err = GradeNeeded(80, 90, 101)
	assert.True(t, calc.IsValidation(err))
	_, err = GradeNeeded(-1, 90, 50)
	assert.True(t, calc.IsValidation(err))
}

func floatPtr(v float64) *float64 { return &v }

func TestSemesterBlendsLettersAndPercentages(t *testing.T) {
	res, err := Semester([]Course{
		{Name: "Math", Letter: "A", Credits: 3},          // 4.0
		{Name: "Physics", Percentage: floatPtr(85), Credits: 3}, // 3.4
	})
	require.NoError(t, err)

	// (4.0*3 + 3.4*3) / 6 = 3.7
	assert.Equal(t, 3.7, res.GPA)
	assert.Equal(t, 92.5, res.Percentage)
	assert.Equal(t, 6.0, res.TotalCredits)
}

func TestSemesterFailures(t *testing.T) {
	_, err := Semester(nil)
	assert.True(t, calc.IsValidation(err))

	_, err = Semester([]Course{{Name: "Math", Letter: "A", Credits: 0}})
	assert.True(t, calc.IsValidation(err))

	_, err = Semester([]Course{{Name: "Math", Credits: 3}})
	assert.True(t, calc.IsValidation(err))

	_, err = Semester([]Course{{Name: "Math", Percentage: floatPtr(120), Credits: 3}})
	assert.True(t, calc.IsValidation(err))
}
