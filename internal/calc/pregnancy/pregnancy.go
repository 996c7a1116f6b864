// Package pregnancy implements the due-date and trimester-timeline
// calculator. Every value derives from fixed day offsets against the
// reference date; nothing here is probabilistic.
package pregnancy

import (
	"time"

	"calchub/internal/calc"
)

// Method names the reference point the user supplies.
type Method string

const (
	LastPeriod Method = "last-period"
	Conception Method = "conception"
	DueDate    Method = "due-date"
)

// Gestation constants in days.
const (
	termFromLMP        = 280 // LMP to due date
	termFromConception = 266 // conception to due date
	ovulationOffset    = 14  // LMP to conception
	defaultCycleLength = 28
	fullTermWeeks      = 40
)

// Milestone is a fixed point on the gestational timeline.
type Milestone struct {
	Week        int       `json:"week"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

// milestones lists (gestational week, description) pairs; dates are
// offset from the conception date. Only upcoming ones are surfaced.
var milestones = []struct {
	week        int
	description string
}{
	{8, "First prenatal visit and heartbeat check"},
	{12, "End of first trimester; nuchal screening window"},
	{20, "Anatomy scan ultrasound"},
	{24, "Glucose screening test"},
	{28, "Third trimester begins"},
	{32, "Growth check-up"},
	{36, "Weekly visits begin"},
	{40, "Estimated due date"},
}

// maxUpcomingMilestones caps the surfaced list.
const maxUpcomingMilestones = 4

// Estimate is the deterministic pregnancy timeline.
type Estimate struct {
	DueDate        time.Time   `json:"due_date"`
	ConceptionDate time.Time   `json:"conception_date"`
	GestationalDay int         `json:"gestational_day"`
	Week           int         `json:"week"`
	Trimester      int         `json:"trimester"`
	Milestones     []Milestone `json:"milestones"`
}

// Calculate derives the due date, conception date and current
// gestational position from the reference date.
//
// Methods: "last-period" puts the due date 280 days after the
// reference (shifted by cycleLength−28 for irregular cycles) and
// conception 14 days after it; "conception" puts the due date 266 days
// after; "due-date" walks 266 days back to conception. The current day
// count is measured against today, clamped at zero, with the week
// capped at 40. Trimester bands: weeks 0–13, 14–27, 28–40.
func Calculate(method Method, reference time.Time, cycleLength int) (*Estimate, error) {
	if reference.IsZero() {
		return nil, calc.Invalidf("reference date is required")
	}
	if cycleLength == 0 {
		cycleLength = defaultCycleLength
	}
	if cycleLength < 20 || cycleLength > 45 {
		return nil, calc.Invalidf("cycle length must be between 20 and 45 days")
	}

	reference = truncate(reference)
	cycleShift := cycleLength - defaultCycleLength

	var due, conception time.Time
	switch method {
	case LastPeriod:
		due = reference.AddDate(0, 0, termFromLMP+cycleShift)
		conception = reference.AddDate(0, 0, ovulationOffset+cycleShift)
	case Conception:
		due = reference.AddDate(0, 0, termFromConception)
		conception = reference
	case DueDate:
		due = reference
		conception = reference.AddDate(0, 0, -termFromConception)
	default:
		return nil, calc.Invalidf("unknown method %q", method)
	}

	lmp := due.AddDate(0, 0, -termFromLMP)
	days := int(today().Sub(lmp).Hours() / 24)
	if days < 0 {
		days = 0
	}
	week := days / 7
	if week > fullTermWeeks {
		week = fullTermWeeks
	}

	trimester := 1
	switch {
	case week >= 28:
		trimester = 3
	case week >= 14:
		trimester = 2
	}

	est := &Estimate{
		DueDate:        due,
		ConceptionDate: conception,
		GestationalDay: days,
		Week:           week,
		Trimester:      trimester,
	}
	for _, m := range milestones {
		if m.week <= week {
			continue
		}
		est.Milestones = append(est.Milestones, Milestone{
			Week:        m.week,
			Description: m.description,
			Date:        conception.AddDate(0, 0, m.week*7),
		})
		if len(est.Milestones) == maxUpcomingMilestones {
			break
		}
	}
	return est, nil
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// today is replaced in tests.
var today = func() time.Time {
	return truncate(time.Now())
}
