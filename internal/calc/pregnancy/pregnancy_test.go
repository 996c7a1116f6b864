package pregnancy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calchub/internal/calc"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func fixToday(t *testing.T, day time.Time) {
	t.Helper()
	orig := today
	today = func() time.Time { return day }
	t.Cleanup(func() { today = orig })
}

func TestLastPeriodOffsets(t *testing.T) {
	fixToday(t, date(2024, 3, 1))

	est, err := Calculate(LastPeriod, date(2024, 1, 1), 28)
	require.NoError(t, err)

	assert.True(t, est.DueDate.Equal(date(2024, 1, 1).AddDate(0, 0, 280)))
	assert.True(t, est.ConceptionDate.Equal(date(2024, 1, 15)))
}

func TestCycleLengthShiftsLastPeriodDates(t *testing.T) {
	fixToday(t, date(2024, 3, 1))

	base, err := Calculate(LastPeriod, date(2024, 1, 1), 28)
	require.NoError(t, err)
	long, err := Calculate(LastPeriod, date(2024, 1, 1), 32)
	require.NoError(t, err)

	assert.True(t, long.DueDate.Equal(base.DueDate.AddDate(0, 0, 4)))
	assert.True(t, long.ConceptionDate.Equal(base.ConceptionDate.AddDate(0, 0, 4)))

	// Other methods ignore cycle length.
	a, err := Calculate(DueDate, date(2024, 9, 1), 28)
	require.NoError(t, err)
	b, err := Calculate(DueDate, date(2024, 9, 1), 35)
	require.NoError(t, err)
	assert.True(t, a.ConceptionDate.Equal(b.ConceptionDate))
}

func TestDueDateAndConceptionMethodsAgree(t *testing.T) {
	fixToday(t, date(2024, 3, 1))

	due := date(2024, 10, 15)
	byDueDate, err := Calculate(DueDate, due, 0)
	require.NoError(t, err)
	byConception, err := Calculate(Conception, due.AddDate(0, 0, -266), 0)
	require.NoError(t, err)

	assert.True(t, byDueDate.DueDate.Equal(byConception.DueDate))
	assert.True(t, byDueDate.ConceptionDate.Equal(byConception.ConceptionDate))
}

func TestGestationClampedAndCapped(t *testing.T) {
	fixToday(t, date(2024, 1, 1))

	// Reference far in the future: day count clamps at zero.
	est, err := Calculate(LastPeriod, date(2024, 6, 1), 28)
	require.NoError(t, err)
	assert.Equal(t, 0, est.GestationalDay)
	assert.Equal(t, 0, est.Week)
	assert.Equal(t, 1, est.Trimester)

	// Reference long past: week caps at 40.
	est, err = Calculate(LastPeriod, date(2022, 1, 1), 28)
	require.NoError(t, err)
	assert.Equal(t, 40, est.Week)
	assert.Equal(t, 3, est.Trimester)
}

func TestTrimesterBands(t *testing.T) {
	cases := []struct {
		weeksAgo  int
		trimester int
	}{
		{5, 1},
		{13, 1},
		{14, 2},
		{27, 2},
		{28, 3},
		{40, 3},
	}
	for _, tc := range cases {
		now := date(2024, 6, 1)
		fixToday(t, now)
		est, err := Calculate(LastPeriod, now.AddDate(0, 0, -tc.weeksAgo*7), 28)
		require.NoError(t, err)
		assert.Equal(t, tc.weeksAgo, est.Week, "weeksAgo %d", tc.weeksAgo)
		assert.Equal(t, tc.trimester, est.Trimester, "weeksAgo %d", tc.weeksAgo)
	}
}

func TestMilestonesUpcomingOnlyCappedAtFour(t *testing.T) {
	now := date(2024, 6, 1)
	fixToday(t, now)

	// Ten weeks in: next milestones start at week 12, at most four.
	est, err := Calculate(LastPeriod, now.AddDate(0, 0, -70), 28)
	require.NoError(t, err)
	require.NotEmpty(t, est.Milestones)
	assert.LessOrEqual(t, len(est.Milestones), 4)
	assert.Equal(t, 12, est.Milestones[0].Week)
	for _, m := range est.Milestones {
		assert.Greater(t, m.Week, est.Week)
	}

	// Full term: nothing left to surface.
	est, err = Calculate(LastPeriod, now.AddDate(0, 0, -40*7), 28)
	require.NoError(t, err)
	assert.Empty(t, est.Milestones)
}

func TestCalculateValidation(t *testing.T) {
	_, err := Calculate(LastPeriod, time.Time{}, 28)
	assert.True(t, calc.IsValidation(err))

	_, err = Calculate(LastPeriod, date(2024, 1, 1), 10)
	assert.True(t, calc.IsValidation(err))

	_, err = Calculate(Method("palm-reading"), date(2024, 1, 1), 28)
	assert.True(t, calc.IsValidation(err))
}
