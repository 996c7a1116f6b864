package calc

import (
	"fmt"
	"testing"
)

func TestErrorClassification(t *testing.T) {
	ve := Invalidf("weight must be positive")
	if !IsValidation(ve) || IsInfeasible(ve) {
		t.Fatalf("expected validation error, got %v", ve)
	}

	ie := Infeasiblef("start after end")
	if !IsInfeasible(ie) || IsValidation(ie) {
		t.Fatalf("expected infeasible error, got %v", ie)
	}

	if !IsDomainError(ve) || !IsDomainError(ie) {
		t.Fatalf("both taxonomy members must be domain errors")
	}
	if IsDomainError(fmt.Errorf("disk on fire")) {
		t.Fatalf("plain errors are not domain errors")
	}
}

func TestErrorsSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("bmi: %w", Invalidf("height must be positive"))
	if !IsValidation(wrapped) {
		t.Fatalf("wrapping must preserve classification")
	}
}
