package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"calchub/internal/calc"
	"calchub/internal/calc/academic"
	"calchub/internal/calc/dates"
	"calchub/internal/calc/health"
	"calchub/internal/calc/loan"
	"calchub/internal/calc/percentage"
	"calchub/internal/calc/pregnancy"
	"calchub/internal/calc/retirement"
	"calchub/internal/content"
	"calchub/internal/session"
)

// calcPage binds a catalog slug to its template and compute function.
type calcPage struct {
	template string
	compute  func(s *Server, w http.ResponseWriter, r *http.Request) (any, error)
}

var calcPages = map[string]calcPage{
	"age-calculator":        {"age.html", computeAge},
	"bmi-calculator":        {"bmi.html", computeBMI},
	"calorie-calculator":    {"calorie.html", computeCalories},
	"gpa-calculator":        {"gpa.html", computeGPA},
	"grade-calculator":      {"grade.html", computeGrade},
	"percentage-calculator": {"percentage.html", computePercentage},
	"loan-calculator":       {"loan.html", computeLoan},
	"mortgage-calculator":   {"mortgage.html", computeMortgage},
	"retirement-calculator": {"retirement.html", computeRetirement},
	"pregnancy-calculator":  {"pregnancy.html", computePregnancy},
}

// calcView is the template data for every calculator page.
type calcView struct {
	Calc    content.Calculator
	Related []content.Calculator
	Result  any
	Error   string
	Entries []session.Entry
}

func (s *Server) handleCalculator(w http.ResponseWriter, r *http.Request) {
	slug := strings.Trim(strings.TrimPrefix(r.URL.Path, "/calculators/"), "/")

	page, ok := calcPages[slug]
	if !ok {
		s.renderNotFound(w, r)
		return
	}

	c, err := s.store.GetCalculator(r.Context(), slug)
	if errors.Is(err, content.ErrNotFound) {
		s.renderNotFound(w, r)
		return
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "Calculator lookup failed", "error", err, "slug", slug)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	// Resolve the session once so compute and render agree on the ID
	// even when the cookie is minted on this request.
	if slug == "gpa-calculator" && s.sessions != nil {
		r = r.WithContext(context.WithValue(r.Context(), sessionIDKey{}, sessionID(w, r)))
	}

	switch r.Method {
	case http.MethodGet:
		s.renderCalculator(w, r, page.template, c, nil, nil)
	case http.MethodPost:
		s.computeCalculator(w, r, page, c)
	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) renderCalculator(w http.ResponseWriter, r *http.Request, tmpl string, c content.Calculator, result any, calcErr error) {
	view := calcView{Calc: c, Result: result}
	if calcErr != nil {
		view.Error = calcErr.Error()
	}

	if related, err := s.store.RelatedCalculators(r.Context(), c.Slug, 3); err == nil {
		view.Related = related
	} else {
		slog.ErrorContext(r.Context(), "Related calculators lookup failed", "error", err, "slug", c.Slug)
	}

	// The GPA page always shows the session's entry list.
	if c.Slug == "gpa-calculator" && s.sessions != nil {
		sid := requestSessionID(w, r)
		if entries, err := s.sessions.Entries(r.Context(), sid); err == nil {
			view.Entries = entries
		} else {
			slog.ErrorContext(r.Context(), "Session entries lookup failed", "error", err)
		}
	}

	s.render(w, r, tmpl, view)
}

func (s *Server) computeCalculator(w http.ResponseWriter, r *http.Request, page calcPage, c content.Calculator) {
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", "error", err, "url", r.URL.Path)
		if isXHR(r) {
			writeError(w, fmt.Errorf("invalid form data"), http.StatusBadRequest)
			return
		}
		s.renderCalculator(w, r, page.template, c, nil, fmt.Errorf("invalid form data"))
		return
	}

	result, err := page.compute(s, w, r)
	if err != nil {
		if !calc.IsDomainError(err) {
			slog.ErrorContext(r.Context(), "Computation failed", "error", err, "slug", c.Slug)
			if isXHR(r) {
				writeError(w, fmt.Errorf("internal error"), http.StatusInternalServerError)
				return
			}
			s.renderCalculator(w, r, page.template, c, nil, fmt.Errorf("something went wrong, please try again"))
			return
		}
		if isXHR(r) {
			writeError(w, err, http.StatusBadRequest)
			return
		}
		s.renderCalculator(w, r, page.template, c, nil, err)
		return
	}

	if err := s.store.IncrementUsage(r.Context(), c.Slug); err != nil {
		slog.ErrorContext(r.Context(), "Usage increment failed", "error", err, "slug", c.Slug)
	}
	s.homeCache.Delete(homeCacheKey)

	if isXHR(r) {
		writeResult(w, result)
		return
	}
	s.renderCalculator(w, r, page.template, c, result, nil)
}

func computeAge(s *Server, w http.ResponseWriter, r *http.Request) (any, error) {
	birth, err := formDate(r, "birth_date")
	if err != nil {
		return nil, calc.Invalidf("%s", err)
	}

	target := time.Now()
	if strings.TrimSpace(r.Form.Get("target_date")) != "" {
		if target, err = formDate(r, "target_date"); err != nil {
			return nil, calc.Invalidf("%s", err)
		}
	}

	return dates.AgeBetween(birth, target)
}

func computeBMI(s *Server, w http.ResponseWriter, r *http.Request) (any, error) {
	units := health.UnitSystem(r.Form.Get("units"))
	if units == "" {
		units = health.Metric
	}

	weight, err := formFloat(r, "weight")
	if err != nil {
		return nil, calc.Invalidf("%s", err)
	}
	height, err := formFloat(r, "height")
	if err != nil {
		return nil, calc.Invalidf("%s", err)
	}

	return health.BMI(weight, height, units)
}

func computeCalories(s *Server, w http.ResponseWriter, r *http.Request) (any, error) {
	age, err := formInt(r, "age")
	if err != nil {
		return nil, calc.Invalidf("%s", err)
	}
	height, err := formFloat(r, "height")
	if err != nil {
		return nil, calc.Invalidf("%s", err)
	}
	weight, err := formFloat(r, "weight")
	if err != nil {
		return nil, calc.Invalidf("%s", err)
	}

	gender := health.Gender(r.Form.Get("gender"))
	activity := health.ActivityLevel(r.Form.Get("activity"))
	if activity == "" {
		activity = health.Moderate
	}

	return health.Calories(age, gender, height, weight, activity)
}

// computeGPA manages the session entry list and recomputes the GPA.
// Actions: add appends a validated course, clear empties the list,
// anything else just recalculates.
func computeGPA(s *Server, w http.ResponseWriter, r *http.Request) (any, error) {
	if s.sessions == nil {
		return nil, fmt.Errorf("session store not configured")
	}

	sid := requestSessionID(w, r)
	entries, err := s.sessions.Entries(r.Context(), sid)
	if err != nil {
		return nil, fmt.Errorf("load session entries: %w", err)
	}

	switch r.Form.Get("action") {
	case "add":
		subject := sanitizeInput(r.Form.Get("subject"))
		if subject == "" {
			subject = fmt.Sprintf("Course %d", len(entries)+1)
		}
		grade := strings.ToUpper(sanitizeInput(r.Form.Get("grade")))
		credits, err := formFloat(r, "credit_hours")
		if err != nil {
			return nil, calc.Invalidf("%s", err)
		}

		candidate := append(append([]session.Entry{}, entries...), session.Entry{
			Subject:     subject,
			Grade:       grade,
			CreditHours: credits,
		})
		// Reject the entry unless the resulting list computes.
		if _, err := academic.GPA(toGradeEntries(candidate)); err != nil {
			return nil, err
		}
		if err := s.sessions.Save(r.Context(), sid, candidate); err != nil {
			return nil, fmt.Errorf("save session entries: %w", err)
		}
		entries = candidate

	case "clear":
		if err := s.sessions.Clear(r.Context(), sid); err != nil {
			return nil, fmt.Errorf("clear session entries: %w", err)
		}
		entries = nil
	}

	out := map[string]any{"entries": entries}
	if len(entries) > 0 {
		res, err := academic.GPA(toGradeEntries(entries))
		if err != nil {
			return nil, err
		}
		out["gpa"] = res
	}
	return out, nil
}

func toGradeEntries(entries []session.Entry) []academic.GradeEntry {
	out := make([]academic.GradeEntry, len(entries))
	for i, e := range entries {
		out[i] = academic.GradeEntry{
			Subject:     e.Subject,
			Grade:       e.Grade,
			CreditHours: e.CreditHours,
		}
	}
	return out
}

// computeGrade serves three modes on one page: the weighted course
// grade, the score needed on the final, and the semester GPA blend.
func computeGrade(s *Server, w http.ResponseWriter, r *http.Request) (any, error) {
	switch mode := r.Form.Get("mode"); mode {
	case "", "weighted":
		res, err := computeWeightedGrade(r)
		if err != nil {
			return nil, err
		}
		return map[string]any{"mode": "weighted", "final": res}, nil
	case "needed":
		current, err := formFloat(r, "current")
		if err != nil {
			return nil, calc.Invalidf("%s", err)
		}
		desired, err := formFloat(r, "desired")
		if err != nil {
			return nil, calc.Invalidf("%s", err)
		}
		weight, err := formFloat(r, "final_weight")
		if err != nil {
			return nil, calc.Invalidf("%s", err)
		}
		res, err := academic.GradeNeeded(current, desired, weight)
		if err != nil {
			return nil, err
		}
		return map[string]any{"mode": "needed", "needed": res}, nil
	case "semester":
		res, err := computeSemesterGrade(r)
		if err != nil {
			return nil, err
		}
		return map[string]any{"mode": "semester", "semester": res}, nil
	default:
		return nil, calc.Invalidf("unknown mode %q", mode)
	}
}

func computeWeightedGrade(r *http.Request) (any, error) {
	names := r.Form["name"]
	scores := r.Form["score"]
	maxes := r.Form["max"]
	weights := r.Form["weight"]
	categories := r.Form["category"]

	if len(scores) == 0 {
		return nil, calc.Invalidf("at least one assignment is required")
	}
	if len(maxes) != len(scores) || len(weights) != len(scores) {
		return nil, calc.Invalidf("assignment fields must align")
	}

	assignments := make([]academic.Assignment, len(scores))
	for i := range scores {
		score, err := strconv.ParseFloat(strings.TrimSpace(scores[i]), 64)
		if err != nil {
			return nil, calc.Invalidf("assignment %d: score must be a number", i+1)
		}
		max, err := strconv.ParseFloat(strings.TrimSpace(maxes[i]), 64)
		if err != nil {
			return nil, calc.Invalidf("assignment %d: max must be a number", i+1)
		}
		weight, err := strconv.ParseFloat(strings.TrimSpace(weights[i]), 64)
		if err != nil {
			return nil, calc.Invalidf("assignment %d: weight must be a number", i+1)
		}

		a := academic.Assignment{Score: score, Max: max, Weight: weight}
		if i < len(names) {
			a.Name = sanitizeInput(names[i])
		}
		if i < len(categories) {
			a.Category = sanitizeInput(categories[i])
		}
		assignments[i] = a
	}

	return academic.FinalGrade(assignments)
}

func computeSemesterGrade(r *http.Request) (any, error) {
	names := r.Form["course"]
	letters := r.Form["letter"]
	percentages := r.Form["percentage"]
	credits := r.Form["credits"]

	if len(credits) == 0 {
		return nil, calc.Invalidf("at least one course is required")
	}

	courses := make([]academic.Course, len(credits))
	for i := range credits {
		cr, err := strconv.ParseFloat(strings.TrimSpace(credits[i]), 64)
		if err != nil {
			return nil, calc.Invalidf("course %d: credits must be a number", i+1)
		}

		c := academic.Course{Credits: cr}
		if i < len(names) {
			c.Name = sanitizeInput(names[i])
		}
		if i < len(letters) && strings.TrimSpace(letters[i]) != "" {
			c.Letter = strings.ToUpper(strings.TrimSpace(letters[i]))
		} else if i < len(percentages) && strings.TrimSpace(percentages[i]) != "" {
			pct, err := strconv.ParseFloat(strings.TrimSpace(percentages[i]), 64)
			if err != nil {
				return nil, calc.Invalidf("course %d: percentage must be a number", i+1)
			}
			c.Percentage = &pct
		}
		courses[i] = c
	}

	return academic.Semester(courses)
}

func computePercentage(s *Server, w http.ResponseWriter, r *http.Request) (any, error) {
	switch op := r.Form.Get("operation"); op {
	case "", "of":
		pct, err := formFloat(r, "percent")
		if err != nil {
			return nil, calc.Invalidf("%s", err)
		}
		total, err := formFloat(r, "total")
		if err != nil {
			return nil, calc.Invalidf("%s", err)
		}
		return percentage.Of(pct, total), nil
	case "what-percent":
		part, err := formFloat(r, "part")
		if err != nil {
			return nil, calc.Invalidf("%s", err)
		}
		whole, err := formFloat(r, "whole")
		if err != nil {
			return nil, calc.Invalidf("%s", err)
		}
		return percentage.WhatPercent(part, whole)
	case "change":
		from, err := formFloat(r, "from")
		if err != nil {
			return nil, calc.Invalidf("%s", err)
		}
		to, err := formFloat(r, "to")
		if err != nil {
			return nil, calc.Invalidf("%s", err)
		}
		return percentage.Change(from, to)
	default:
		return nil, calc.Invalidf("unknown operation %q", op)
	}
}

func computeLoan(s *Server, w http.ResponseWriter, r *http.Request) (any, error) {
	amount, err := formFloat(r, "amount")
	if err != nil {
		return nil, calc.Invalidf("%s", err)
	}
	rate, err := formFloat(r, "rate")
	if err != nil {
		return nil, calc.Invalidf("%s", err)
	}
	years, err := formFloat(r, "term_years")
	if err != nil {
		return nil, calc.Invalidf("%s", err)
	}
	frequency, err := formIntDefault(r, "frequency", 12)
	if err != nil {
		return nil, calc.Invalidf("%s", err)
	}

	summary, err := loan.Amortize(amount, rate, years, frequency)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"summary":         summary,
		"recommendations": loan.Recommend(amount),
	}, nil
}

func computeMortgage(s *Server, w http.ResponseWriter, r *http.Request) (any, error) {
	price, err := formFloat(r, "price")
	if err != nil {
		return nil, calc.Invalidf("%s", err)
	}
	down, err := formFloatDefault(r, "down_payment", 0)
	if err != nil {
		return nil, calc.Invalidf("%s", err)
	}
	rate, err := formFloat(r, "rate")
	if err != nil {
		return nil, calc.Invalidf("%s", err)
	}
	years, err := formIntDefault(r, "term_years", 30)
	if err != nil {
		return nil, calc.Invalidf("%s", err)
	}
	tax, err := formFloatDefault(r, "monthly_tax", 0)
	if err != nil {
		return nil, calc.Invalidf("%s", err)
	}
	insurance, err := formFloatDefault(r, "monthly_insurance", 0)
	if err != nil {
		return nil, calc.Invalidf("%s", err)
	}
	hoa, err := formFloatDefault(r, "monthly_hoa", 0)
	if err != nil {
		return nil, calc.Invalidf("%s", err)
	}

	return loan.Mortgage(price, down, rate, years, tax, insurance, hoa)
}

func computeRetirement(s *Server, w http.ResponseWriter, r *http.Request) (any, error) {
	currentAge, err := formInt(r, "current_age")
	if err != nil {
		return nil, calc.Invalidf("%s", err)
	}
	retirementAge, err := formInt(r, "retirement_age")
	if err != nil {
		return nil, calc.Invalidf("%s", err)
	}
	balance, err := formFloatDefault(r, "balance", 0)
	if err != nil {
		return nil, calc.Invalidf("%s", err)
	}
	salary, err := formFloat(r, "salary")
	if err != nil {
		return nil, calc.Invalidf("%s", err)
	}
	// Rates arrive as percentages.
	contribution, err := formFloat(r, "contribution_rate")
	if err != nil {
		return nil, calc.Invalidf("%s", err)
	}
	match, err := formFloatDefault(r, "match_rate", 0)
	if err != nil {
		return nil, calc.Invalidf("%s", err)
	}
	growth, err := formFloatDefault(r, "growth_rate", 7)
	if err != nil {
		return nil, calc.Invalidf("%s", err)
	}

	return retirement.Project(retirement.Input{
		CurrentAge:       currentAge,
		RetirementAge:    retirementAge,
		Balance:          balance,
		Salary:           salary,
		ContributionRate: contribution / 100,
		MatchRate:        match / 100,
		GrowthRate:       growth / 100,
	})
}

func computePregnancy(s *Server, w http.ResponseWriter, r *http.Request) (any, error) {
	method := pregnancy.Method(r.Form.Get("method"))
	if method == "" {
		method = pregnancy.LastPeriod
	}

	reference, err := formDate(r, "date")
	if err != nil {
		return nil, calc.Invalidf("%s", err)
	}
	cycle, err := formIntDefault(r, "cycle_length", 28)
	if err != nil {
		return nil, calc.Invalidf("%s", err)
	}

	return pregnancy.Calculate(method, reference, cycle)
}
