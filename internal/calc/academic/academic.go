// Package academic implements the GPA, final-grade and semester
// calculators.
package academic

import (
	"math"
	"strings"

	"calchub/internal/calc"
)

// gradePoints is the letter scale used by the GPA calculator. It has
// no D- entry, so D- is rejected as an unknown grade rather than
// silently scored 0.0. The semester calculator's table below does
// define D- = 0.7; the two calculators deliberately keep separate
// tables.
var gradePoints = map[string]float64{
	"A+": 4.0, "A": 4.0, "A-": 3.7,
	"B+": 3.3, "B": 3.0, "B-": 2.7,
	"C+": 2.3, "C": 2.0, "C-": 1.7,
	"D+": 1.3, "D": 1.0, "F": 0.0,
}

// semesterGradePoints is the letter scale for the semester calculator.
var semesterGradePoints = map[string]float64{
	"A+": 4.0, "A": 4.0, "A-": 3.7,
	"B+": 3.3, "B": 3.0, "B-": 2.7,
	"C+": 2.3, "C": 2.0, "C-": 1.7,
	"D+": 1.3, "D": 1.0, "D-": 0.7,
	"F": 0.0,
}

// GradeEntry is one graded course with its credit weight.
type GradeEntry struct {
	Subject     string  `json:"subject"`
	Grade       string  `json:"grade"`
	CreditHours float64 `json:"credit_hours"`
}

// GPAResult is the aggregate over a set of grade entries.
type GPAResult struct {
	GPA           float64            `json:"gpa"`
	TotalCredits  float64            `json:"total_credit_hours"`
	QualityPoints float64            `json:"total_quality_points"`
	Category      string             `json:"category"`
	Percentage    float64            `json:"percentage"`
	Distribution  map[string]float64 `json:"grade_distribution"`
}

// GPA computes the credit-weighted grade point average.
// It fails when no entries are given, when a credit weight is not
// positive, or when the total credit weight is zero.
func GPA(entries []GradeEntry) (*GPAResult, error) {
	if len(entries) == 0 {
		return nil, calc.Invalidf("no grade entries provided")
	}

	var quality, credits float64
	distribution := make(map[string]float64)
	for _, e := range entries {
		grade := strings.ToUpper(strings.TrimSpace(e.Grade))
		if _, ok := gradePoints[grade]; !ok {
			return nil, calc.Invalidf("unknown grade %q", e.Grade)
		}
		if e.CreditHours <= 0 {
			return nil, calc.Invalidf("credit hours must be positive")
		}
		quality += gradePoints[grade] * e.CreditHours
		credits += e.CreditHours
		distribution[grade] += e.CreditHours
	}

	if credits == 0 {
		return nil, calc.Infeasiblef("total credit hours cannot be zero")
	}

	gpa := quality / credits
	res := &GPAResult{
		GPA:           round2(gpa),
		TotalCredits:  credits,
		QualityPoints: round1(quality),
		Distribution:  distribution,
		Percentage:    math.Min(round1(gpa*25), 100),
	}
	switch {
	case gpa >= 3.7:
		res.Category = "Excellent"
	case gpa >= 3.0:
		res.Category = "Good"
	case gpa >= 2.0:
		res.Category = "Satisfactory"
	default:
		res.Category = "Needs Improvement"
	}
	return res, nil
}

// Assignment is one scored item in the weighted final-grade
// calculation.
type Assignment struct {
	Name     string  `json:"name"`
	Score    float64 `json:"score"`
	Max      float64 `json:"max"`
	Weight   float64 `json:"weight"` // percent of the course grade
	Category string  `json:"category"`
}

// CategoryBreakdown aggregates the contribution of one assignment
// category.
type CategoryBreakdown struct {
	Category   string  `json:"category"`
	Weight     float64 `json:"weight"`
	Earned     float64 `json:"earned"`
	Percentage float64 `json:"percentage"`
}

// FinalGradeResult is the weighted course grade with its letter.
type FinalGradeResult struct {
	Percentage  float64             `json:"percentage"`
	Letter      string              `json:"letter"`
	TotalWeight float64             `json:"total_weight"`
	Categories  []CategoryBreakdown `json:"category_breakdown"`
}

// letterCutoffs maps descending percentage thresholds to letters. The
// boundaries are exact: 93.0 is an A, 92.99 an A-.
var letterCutoffs = []struct {
	min    float64
	letter string
}{
	{97, "A+"}, {93, "A"}, {90, "A-"},
	{87, "B+"}, {83, "B"}, {80, "B-"},
	{77, "C+"}, {73, "C"}, {70, "C-"},
	{67, "D+"}, {63, "D"}, {60, "D-"},
}

// LetterForPercentage returns the letter grade for a course
// percentage.
func LetterForPercentage(pct float64) string {
	for _, c := range letterCutoffs {
		if pct >= c.min {
			return c.letter
		}
	}
	return "F"
}

// FinalGrade computes the weighted course percentage from scored
// assignments. Each assignment contributes score/max·100 weighted by
// weight/100; the contributions are summed. It fails when a max is not
// positive, a score falls outside [0, max], or the total weight is
// zero.
func FinalGrade(assignments []Assignment) (*FinalGradeResult, error) {
	if len(assignments) == 0 {
		return nil, calc.Invalidf("no assignments provided")
	}

	var total, totalWeight float64
	byCategory := make(map[string]*CategoryBreakdown)
	var order []string
	for _, a := range assignments {
		if a.Max <= 0 {
			return nil, calc.Invalidf("maximum score must be positive for %q", a.Name)
		}
		if a.Score < 0 || a.Score > a.Max {
			return nil, calc.Invalidf("score for %q must be between 0 and %g", a.Name, a.Max)
		}
		if a.Weight < 0 {
			return nil, calc.Invalidf("weight must not be negative for %q", a.Name)
		}

		pct := a.Score / a.Max * 100
		contribution := pct * a.Weight / 100
		total += contribution
		totalWeight += a.Weight

		cat := a.Category
		if cat == "" {
			cat = "Uncategorized"
		}
		cb, ok := byCategory[cat]
		if !ok {
			cb = &CategoryBreakdown{Category: cat}
			byCategory[cat] = cb
			order = append(order, cat)
		}
		cb.Weight += a.Weight
		cb.Earned += contribution
	}

	if totalWeight == 0 {
		return nil, calc.Infeasiblef("total weight cannot be zero")
	}

	res := &FinalGradeResult{
		Percentage:  round2(total),
		Letter:      LetterForPercentage(round2(total)),
		TotalWeight: totalWeight,
	}
	for _, cat := range order {
		cb := byCategory[cat]
		if cb.Weight > 0 {
			cb.Percentage = round2(cb.Earned / cb.Weight * 100)
		}
		cb.Earned = round2(cb.Earned)
		res.Categories = append(res.Categories, *cb)
	}
	return res, nil
}

// GradeNeededResult is the final-exam score required to reach a desired
// course grade.
type GradeNeededResult struct {
	Needed     float64 `json:"needed"`
	Letter     string  `json:"letter"`
	Difficulty string  `json:"difficulty"`
	Achievable bool    `json:"achievable"`
}

// GradeNeeded solves desired = current·(1−w) + needed·w for needed,
// where w is the final's weight as a fraction. Feasibility bands:
// below 70 easy, 70–85 moderate, 85–100 difficult, above 100
// impossible.
func GradeNeeded(current, desired, finalWeight float64) (*GradeNeededResult, error) {
	if finalWeight <= 0 || finalWeight > 100 {
		return nil, calc.Invalidf("final weight must be between 0 and 100")
	}
	if current < 0 || current > 120 {
		return nil, calc.Invalidf("current grade must be between 0 and 120")
	}
	if desired < 0 || desired > 120 {
		return nil, calc.Invalidf("desired grade must be between 0 and 120")
	}

	w := finalWeight / 100
	needed := (desired - current*(1-w)) / w

	res := &GradeNeededResult{
		Needed:     round2(needed),
		Achievable: needed <= 100,
	}
	switch {
	case needed < 70:
		res.Difficulty = "easy"
	case needed < 85:
		res.Difficulty = "moderate"
	case needed <= 100:
		res.Difficulty = "difficult"
	default:
		res.Difficulty = "impossible"
	}
	if needed >= 0 && needed <= 100 {
		res.Letter = LetterForPercentage(needed)
	}
	return res, nil
}

// Course is one semester course graded either by letter or by raw
// percentage.
type Course struct {
	Name       string   `json:"name"`
	Letter     string   `json:"letter,omitempty"`
	Percentage *float64 `json:"percentage,omitempty"`
	Credits    float64  `json:"credits"`
}

// SemesterResult blends letter and percentage courses into one GPA.
type SemesterResult struct {
	GPA          float64 `json:"gpa"`
	Percentage   float64 `json:"percentage"`
	TotalCredits float64 `json:"total_credits"`
}

// Semester computes the credit-weighted semester GPA. Courses may mix
// letter grades and raw percentages; percentages convert to points by
// dividing by 25, points convert back by multiplying. Uses the semester
// letter table, which defines D- = 0.7.
func Semester(courses []Course) (*SemesterResult, error) {
	if len(courses) == 0 {
		return nil, calc.Invalidf("no courses provided")
	}

	var quality, credits float64
	for _, c := range courses {
		if c.Credits <= 0 {
			return nil, calc.Invalidf("credits must be positive for %q", c.Name)
		}

		var points float64
		switch {
		case c.Percentage != nil:
			if *c.Percentage < 0 || *c.Percentage > 100 {
				return nil, calc.Invalidf("percentage for %q must be between 0 and 100", c.Name)
			}
			points = *c.Percentage / 25
		case c.Letter != "":
			p, ok := semesterGradePoints[strings.ToUpper(strings.TrimSpace(c.Letter))]
			if !ok {
				return nil, calc.Invalidf("unknown grade %q", c.Letter)
			}
			points = p
		default:
			return nil, calc.Invalidf("course %q has neither a letter grade nor a percentage", c.Name)
		}

		quality += points * c.Credits
		credits += c.Credits
	}

	if credits == 0 {
		return nil, calc.Infeasiblef("total credits cannot be zero")
	}

	gpa := quality / credits
	return &SemesterResult{
		GPA:          round2(gpa),
		Percentage:   round1(gpa * 25),
		TotalCredits: credits,
	}, nil
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
