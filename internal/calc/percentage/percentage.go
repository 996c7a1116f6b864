// Package percentage implements the basic percentage calculator:
// percent-of, what-percent and percent-change.
package percentage

import (
	"math"

	"calchub/internal/calc"
)

// Result carries one computed percentage operation.
type Result struct {
	Value     float64 `json:"value"`
	Direction string  `json:"direction,omitempty"`
}

// Of returns pct percent of total (e.g. 15% of 80 = 12).
func Of(pct, total float64) *Result {
	return &Result{Value: round2(pct / 100 * total)}
}

// WhatPercent returns which percentage part is of whole. Fails when
// whole is zero.
func WhatPercent(part, whole float64) (*Result, error) {
	if whole == 0 {
		return nil, calc.Infeasiblef("cannot take a percentage of zero")
	}
	return &Result{Value: round2(part / whole * 100)}, nil
}

// Change returns the percentage change from one value to another, with
// a direction label. Fails when from is zero.
func Change(from, to float64) (*Result, error) {
	if from == 0 {
		return nil, calc.Infeasiblef("cannot compute change from zero")
	}
	change := (to - from) / math.Abs(from) * 100
	direction := "increase"
	if change < 0 {
		direction = "decrease"
	}
	return &Result{Value: round2(change), Direction: direction}, nil
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
