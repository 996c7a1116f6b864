// Package retirement implements the 401k projection calculator.
package retirement

import (
	"github.com/shopspring/decimal"

	"calchub/internal/calc"
)

var (
	decimalZero = decimal.Zero
	decimalTwo  = decimal.NewFromInt(2)
)

// maxYearlyRows bounds the retained year-by-year breakdown; totals
// always cover the full horizon.
const maxYearlyRows = 10

// Input holds the validated projection parameters. Rates are
// fractions, not percentages.
type Input struct {
	CurrentAge       int
	RetirementAge    int
	Balance          float64
	Salary           float64
	ContributionRate float64
	MatchRate        float64
	GrowthRate       float64
}

// YearRow is one projected year of balance growth.
type YearRow struct {
	Age          int             `json:"age"`
	Contribution decimal.Decimal `json:"contribution"`
	Match        decimal.Decimal `json:"match"`
	Growth       decimal.Decimal `json:"growth"`
	Balance      decimal.Decimal `json:"balance"`
}

// Projection is the full-horizon result.
type Projection struct {
	FinalBalance       decimal.Decimal `json:"final_balance"`
	TotalContributions decimal.Decimal `json:"total_contributions"`
	TotalMatch         decimal.Decimal `json:"total_match"`
	TotalGrowth        decimal.Decimal `json:"total_growth"`
	Years              int             `json:"years"`
	Yearly             []YearRow       `json:"yearly"`
}

// Project compounds yearly 401k contributions with an employer match.
//
// Each year credits the personal contribution (salary × contribution
// rate), the employer match (salary × match rate), and growth on the
// average balance: (balance + contributions/2) × growth rate. That
// average-balance approximation stands in for intra-year compounding.
// The growth total is derived by subtraction from the final balance so
// it always reconciles with the other totals.
func Project(in Input) (*Projection, error) {
	if in.CurrentAge < 18 || in.CurrentAge > 100 {
		return nil, calc.Invalidf("current age must be between 18 and 100")
	}
	if in.RetirementAge <= in.CurrentAge {
		return nil, calc.Infeasiblef("retirement age must be after current age")
	}
	if in.RetirementAge > 100 {
		return nil, calc.Invalidf("retirement age must be at most 100")
	}
	if in.Balance < 0 {
		return nil, calc.Invalidf("starting balance must not be negative")
	}
	if in.Salary < 0 || in.Salary > 10_000_000 {
		return nil, calc.Invalidf("salary must be between 0 and 10,000,000")
	}
	if in.ContributionRate < 0 || in.ContributionRate > 1 {
		return nil, calc.Invalidf("contribution rate must be between 0 and 1")
	}
	if in.MatchRate < 0 || in.MatchRate > 1 {
		return nil, calc.Invalidf("match rate must be between 0 and 1")
	}
	if in.GrowthRate < 0 || in.GrowthRate > 1 {
		return nil, calc.Invalidf("growth rate must be between 0 and 1")
	}

	balance := decimal.NewFromFloat(in.Balance)
	salary := decimal.NewFromFloat(in.Salary)
	personal := salary.Mul(decimal.NewFromFloat(in.ContributionRate))
	employer := salary.Mul(decimal.NewFromFloat(in.MatchRate))
	growthRate := decimal.NewFromFloat(in.GrowthRate)

	startBalance := balance
	years := in.RetirementAge - in.CurrentAge
	totalContrib := decimalZero
	totalMatch := decimalZero

	proj := &Projection{Years: years}
	for year := 1; year <= years; year++ {
		contributions := personal.Add(employer)
		growth := balance.Add(contributions.Div(decimalTwo)).Mul(growthRate)
		balance = balance.Add(contributions).Add(growth)
		totalContrib = totalContrib.Add(personal)
		totalMatch = totalMatch.Add(employer)

		if year <= maxYearlyRows {
			proj.Yearly = append(proj.Yearly, YearRow{
				Age:          in.CurrentAge + year,
				Contribution: personal.Round(2),
				Match:        employer.Round(2),
				Growth:       growth.Round(2),
				Balance:      balance.Round(2),
			})
		}
	}

	proj.FinalBalance = balance.Round(2)
	proj.TotalContributions = totalContrib.Round(2)
	proj.TotalMatch = totalMatch.Round(2)
	// Subtraction, not accumulation: the reported growth must reconcile
	// the final balance with the other totals exactly.
	proj.TotalGrowth = balance.Sub(startBalance).Sub(totalContrib).Sub(totalMatch).Round(2)
	return proj, nil
}
