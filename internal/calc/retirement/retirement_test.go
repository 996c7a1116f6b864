package retirement

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calchub/internal/calc"
)

func baseInput() Input {
	return Input{
		CurrentAge:       30,
		RetirementAge:    65,
		Balance:          50000,
		Salary:           80000,
		ContributionRate: 0.10,
		MatchRate:        0.05,
		GrowthRate:       0.07,
	}
}

func TestProjectZeroGrowthIsExact(t *testing.T) {
	in := baseInput()
	in.GrowthRate = 0

	proj, err := Project(in)
	require.NoError(t, err)

	years := int64(in.RetirementAge - in.CurrentAge)
	personal := decimal.NewFromInt(8000)
	employer := decimal.NewFromInt(4000)
	want := decimal.NewFromInt(50000).Add(personal.Add(employer).Mul(decimal.NewFromInt(years)))

	assert.True(t, proj.FinalBalance.Equal(want),
		"final %s want %s", proj.FinalBalance, want)
	assert.True(t, proj.TotalGrowth.IsZero())
}

func TestProjectTotalsReconcile(t *testing.T) {
	proj, err := Project(baseInput())
	require.NoError(t, err)

	sum := decimal.NewFromInt(50000).
		Add(proj.TotalContributions).
		Add(proj.TotalMatch).
		Add(proj.TotalGrowth)
	diff := proj.FinalBalance.Sub(sum).Abs()
	assert.True(t, diff.LessThanOrEqual(decimal.NewFromFloat(0.01)),
		"final %s != start+contrib+match+growth %s", proj.FinalBalance, sum)
}

func TestProjectAverageBalanceGrowthFirstYear(t *testing.T) {
	proj, err := Project(baseInput())
	require.NoError(t, err)
	require.NotEmpty(t, proj.Yearly)

	// Year 1 growth = (50000 + 12000/2) * 0.07 = 3920.
	first := proj.Yearly[0]
	assert.True(t, first.Growth.Equal(decimal.NewFromInt(3920)),
		"growth %s", first.Growth)
	// Balance = 50000 + 12000 + 3920.
	assert.True(t, first.Balance.Equal(decimal.NewFromInt(65920)))
	assert.Equal(t, 31, first.Age)
}

func TestProjectMonotonicUnderNonNegativeRates(t *testing.T) {
	proj, err := Project(baseInput())
	require.NoError(t, err)

	prev := decimal.NewFromInt(50000)
	for _, row := range proj.Yearly {
		assert.True(t, row.Balance.GreaterThanOrEqual(prev),
			"balance decreased at age %d", row.Age)
		prev = row.Balance
	}
}

func TestProjectYearlyCappedAtTen(t *testing.T) {
	proj, err := Project(baseInput())
	require.NoError(t, err)

	assert.Equal(t, 35, proj.Years)
	assert.Len(t, proj.Yearly, 10)

	// A short horizon keeps every year.
	in := baseInput()
	in.RetirementAge = 33
	proj, err = Project(in)
	require.NoError(t, err)
	assert.Len(t, proj.Yearly, 3)
}

func TestProjectValidation(t *testing.T) {
	alter := func(f func(*Input)) Input {
		in := baseInput()
		f(&in)
		return in
	}

	cases := []struct {
		name       string
		in         Input
		infeasible bool
	}{
		{"too young", alter(func(i *Input) { i.CurrentAge = 10 }), false},
		{"retire before now", alter(func(i *Input) { i.RetirementAge = 30 }), true},
		{"retire too late", alter(func(i *Input) { i.RetirementAge = 140 }), false},
		{"negative balance", alter(func(i *Input) { i.Balance = -1 }), false},
		{"silly salary", alter(func(i *Input) { i.Salary = 20_000_000 }), false},
		{"contribution above 1", alter(func(i *Input) { i.ContributionRate = 1.5 }), false},
		{"negative match", alter(func(i *Input) { i.MatchRate = -0.1 }), false},
		{"growth above 1", alter(func(i *Input) { i.GrowthRate = 2 }), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Project(tc.in)
			require.Error(t, err)
			if tc.infeasible {
				assert.True(t, calc.IsInfeasible(err))
			} else {
				assert.True(t, calc.IsValidation(err))
			}
		})
	}
}
