// Package dates implements calendar-correct date-difference arithmetic
// for the age calculator.
package dates

import (
	"time"

	"calchub/internal/calc"
)

// Span is the full result of differencing two calendar dates.
//
// Years/Months/Days come from field-wise subtraction with borrowing.
// The Total* fields are derived from the literal day-count difference
// between the two dates, not reconstructed from the borrowed fields, so
// TotalDays always matches calendar subtraction exactly.
type Span struct {
	Years  int `json:"years"`
	Months int `json:"months"`
	Days   int `json:"days"`

	TotalDays    int   `json:"total_days"`
	TotalWeeks   int   `json:"total_weeks"`
	TotalMonths  int   `json:"total_months"`
	TotalHours   int64 `json:"total_hours"`
	TotalMinutes int64 `json:"total_minutes"`
	TotalSeconds int64 `json:"total_seconds"`

	// Next-birthday lookahead, populated only when the target date is
	// today's date.
	DaysToBirthday *int       `json:"days_to_birthday,omitempty"`
	NextBirthday   *time.Time `json:"next_birthday,omitempty"`
}

// AgeBetween computes the span from start to target.
//
// It fails with an InfeasibleError when start is after target. The
// next-birthday fields are filled in only when target equals the
// current date, matching the behaviour users expect from "how old am I
// today".
func AgeBetween(start, target time.Time) (*Span, error) {
	start = truncate(start)
	target = truncate(target)

	if start.After(target) {
		return nil, calc.Infeasiblef("start date cannot be after the target date")
	}

	years := target.Year() - start.Year()
	months := int(target.Month()) - int(start.Month())
	days := target.Day() - start.Day()

	if days < 0 {
		months--
		prevYear, prevMonth := target.Year(), int(target.Month())-1
		if prevMonth == 0 {
			prevMonth = 12
			prevYear--
		}
		days += daysInMonth(prevYear, prevMonth)
	}
	if months < 0 {
		years--
		months += 12
	}

	// time.Duration saturates near 292 years, so the day count comes
	// from Unix-second arithmetic. Both dates sit at UTC midnight, so
	// the difference is an exact multiple of a day.
	totalDays := int((target.Unix() - start.Unix()) / 86400)
	span := &Span{
		Years:        years,
		Months:       months,
		Days:         days,
		TotalDays:    totalDays,
		TotalWeeks:   totalDays / 7,
		TotalMonths:  years*12 + months,
		TotalHours:   int64(totalDays) * 24,
		TotalMinutes: int64(totalDays) * 24 * 60,
		TotalSeconds: int64(totalDays) * 24 * 60 * 60,
	}

	if target.Equal(today()) {
		next := time.Date(target.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
		if next.Before(target) || next.Equal(target) {
			next = time.Date(target.Year()+1, start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
		}
		offset := int(next.Sub(target).Hours() / 24)
		span.DaysToBirthday = &offset
		span.NextBirthday = &next
	}

	return span, nil
}

// daysInMonth returns the number of days in the given month, leap years
// included.
func daysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// truncate drops the time-of-day component and normalizes the location.
func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// today is replaced in tests.
var today = func() time.Time {
	return truncate(time.Now())
}
