// Package loan implements the amortized-loan calculator and its
// mortgage variant. Money arithmetic uses decimal.Decimal to keep the
// schedule rows exact to the cent.
package loan

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"calchub/internal/calc"
)

var (
	decimalZero    = decimal.Zero
	decimalOne     = decimal.NewFromInt(1)
	decimalHundred = decimal.NewFromInt(100)
	decimalTwelve  = decimal.NewFromInt(12)
)

// validFrequencies are the supported payments-per-year values.
var validFrequencies = map[int]string{
	1:  "Annual",
	4:  "Quarterly",
	12: "Monthly",
	26: "Bi-weekly",
	52: "Weekly",
}

// maxScheduleRows bounds the retained amortization breakdown.
const maxScheduleRows = 12

// ScheduleRow is one payment period of the amortization breakdown.
type ScheduleRow struct {
	Number           int             `json:"number"`
	Payment          decimal.Decimal `json:"payment"`
	Principal        decimal.Decimal `json:"principal"`
	Interest         decimal.Decimal `json:"interest"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

// Summary is the full amortization result.
type Summary struct {
	Payment         decimal.Decimal `json:"payment"`
	TotalPaid       decimal.Decimal `json:"total_paid"`
	TotalInterest   decimal.Decimal `json:"total_interest"`
	TotalPayments   int             `json:"total_payments"`
	MonthlyPayment  decimal.Decimal `json:"monthly_payment"`
	InterestPercent decimal.Decimal `json:"interest_percent"`
	FrequencyLabel  string          `json:"frequency_label"`
	Schedule        []ScheduleRow   `json:"schedule"`
}

// Amortize computes the fixed periodic payment for a loan and the
// first twelve rows of its amortization schedule.
//
// With a zero rate the payment is exactly principal divided by the
// payment count. Otherwise the standard annuity formula applies:
// payment = P·r·(1+r)^n / ((1+r)^n − 1) with r the per-period rate and
// n the total payment count. Fractional terms keep their fractional
// count in the formula, so 2.5 years at annual frequency amortizes
// over 2.5 periods rather than 2; the schedule and the reported
// payment count cover only the whole periods. Schedule rows recompute
// interest as balance·r, derive the principal portion as
// payment − interest, and clamp the final balance at zero.
func Amortize(principal, annualRate, years float64, paymentsPerYear int) (*Summary, error) {
	if principal <= 0 {
		return nil, calc.Invalidf("principal must be positive")
	}
	if annualRate < 0 {
		return nil, calc.Invalidf("interest rate must not be negative")
	}
	if annualRate > 100 {
		return nil, calc.Invalidf("interest rate above 100%% is not supported")
	}
	if years <= 0 {
		return nil, calc.Invalidf("term must be positive")
	}
	label, ok := validFrequencies[paymentsPerYear]
	if !ok {
		return nil, calc.Invalidf("unsupported payment frequency %d", paymentsPerYear)
	}

	periods := years * float64(paymentsPerYear)
	if periods < 1 {
		return nil, calc.Infeasiblef("term yields no payments")
	}
	n := int(periods)

	p := decimal.NewFromFloat(principal)
	rate := decimal.NewFromFloat(annualRate).Div(decimalHundred)
	periodRate := rate.Div(decimal.NewFromInt(int64(paymentsPerYear)))
	count := decimal.NewFromFloat(periods)

	var payment, totalPaid, totalInterest decimal.Decimal
	if rate.IsZero() {
		payment = p.Div(count)
		totalPaid = p
		totalInterest = decimalZero
	} else {
		// (1+r)^n with the possibly fractional exponent, raised in
		// float64 and brought back to decimal for the money math.
		perPeriod := annualRate / 100 / float64(paymentsPerYear)
		growth := decimal.NewFromFloat(math.Pow(1+perPeriod, periods))
		payment = p.Mul(periodRate).Mul(growth).Div(growth.Sub(decimalOne))
		totalPaid = payment.Mul(count)
		totalInterest = totalPaid.Sub(p)
	}

	monthly := payment
	if paymentsPerYear != 12 {
		monthly = payment.Mul(decimal.NewFromInt(int64(paymentsPerYear))).Div(decimalTwelve)
	}

	s := &Summary{
		Payment:         payment.Round(2),
		TotalPaid:       totalPaid.Round(2),
		TotalInterest:   totalInterest.Round(2),
		TotalPayments:   n,
		MonthlyPayment:  monthly.Round(2),
		InterestPercent: totalInterest.Div(p).Mul(decimalHundred).Round(1),
		FrequencyLabel:  label,
	}

	balance := p
	rows := n
	if rows > maxScheduleRows {
		rows = maxScheduleRows
	}
	for i := 0; i < rows; i++ {
		interest := balance.Mul(periodRate)
		principalPart := payment.Sub(interest)
		balance = balance.Sub(principalPart)
		remaining := balance
		if remaining.LessThan(decimalZero) {
			remaining = decimalZero
		}
		s.Schedule = append(s.Schedule, ScheduleRow{
			Number:           i + 1,
			Payment:          payment.Round(2),
			Principal:        principalPart.Round(2),
			Interest:         interest.Round(2),
			RemainingBalance: remaining.Round(2),
		})
	}

	return s, nil
}

// pmiAnnualRate is charged on the loan amount when the down payment is
// below twenty percent of the price.
var (
	pmiAnnualRate    = decimal.NewFromFloat(0.01)
	pmiDownThreshold = decimal.NewFromFloat(0.20)
)

// MortgageResult extends the loan summary with the escrow-style
// monthly pass-throughs.
type MortgageResult struct {
	LoanAmount     decimal.Decimal `json:"loan_amount"`
	BasePayment    decimal.Decimal `json:"base_payment"`
	PMI            decimal.Decimal `json:"pmi"`
	PropertyTax    decimal.Decimal `json:"property_tax"`
	Insurance      decimal.Decimal `json:"insurance"`
	HOA            decimal.Decimal `json:"hoa"`
	TotalMonthly   decimal.Decimal `json:"total_monthly"`
	TotalInterest  decimal.Decimal `json:"total_interest"`
	DownPaymentPct decimal.Decimal `json:"down_payment_percent"`
	PMIRequired    bool            `json:"pmi_required"`
	PayoffDate     time.Time       `json:"payoff_date"`
	Schedule       []ScheduleRow   `json:"schedule"`
}

// Mortgage computes the monthly mortgage payment for a home purchase.
// PMI (1% of the loan amount per year, prorated monthly) applies only
// when the down payment is below 20% of the price. Monthly property
// tax, insurance and HOA dues are flat pass-throughs on top of the
// amortized payment.
func Mortgage(price, downPayment, annualRate float64, termYears int, monthlyTax, monthlyInsurance, monthlyHOA float64) (*MortgageResult, error) {
	if price <= 0 {
		return nil, calc.Invalidf("home price must be positive")
	}
	if downPayment < 0 {
		return nil, calc.Invalidf("down payment must not be negative")
	}
	if downPayment >= price {
		return nil, calc.Infeasiblef("down payment must be below the home price")
	}
	if termYears <= 0 || termYears > 50 {
		return nil, calc.Invalidf("term must be between 1 and 50 years")
	}
	if monthlyTax < 0 || monthlyInsurance < 0 || monthlyHOA < 0 {
		return nil, calc.Invalidf("monthly costs must not be negative")
	}

	loanAmount := price - downPayment
	base, err := Amortize(loanAmount, annualRate, float64(termYears), 12)
	if err != nil {
		return nil, err
	}

	priceDec := decimal.NewFromFloat(price)
	downDec := decimal.NewFromFloat(downPayment)
	loanDec := decimal.NewFromFloat(loanAmount)
	downPct := downDec.Div(priceDec)

	pmi := decimalZero
	pmiRequired := downPct.LessThan(pmiDownThreshold)
	if pmiRequired {
		pmi = loanDec.Mul(pmiAnnualRate).Div(decimalTwelve)
	}

	tax := decimal.NewFromFloat(monthlyTax)
	insurance := decimal.NewFromFloat(monthlyInsurance)
	hoa := decimal.NewFromFloat(monthlyHOA)
	total := base.Payment.Add(pmi).Add(tax).Add(insurance).Add(hoa)

	return &MortgageResult{
		LoanAmount:     loanDec.Round(2),
		BasePayment:    base.Payment,
		PMI:            pmi.Round(2),
		PropertyTax:    tax.Round(2),
		Insurance:      insurance.Round(2),
		HOA:            hoa.Round(2),
		TotalMonthly:   total.Round(2),
		TotalInterest:  base.TotalInterest,
		DownPaymentPct: downPct.Mul(decimalHundred).Round(1),
		PMIRequired:    pmiRequired,
		PayoffDate:     time.Now().AddDate(termYears, 0, 0),
		Schedule:       base.Schedule,
	}, nil
}

// Recommendation is one loan product suggestion from the rule table.
type Recommendation struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	TypicalRate string `json:"typical_rate"`
	Term        string `json:"term"`
}

// Recommend returns loan products matching the amount. This is a plain
// threshold table, not a scored recommender: amounts up to 50k suggest
// a personal loan, 100k and above home equity, 200k and above a
// mortgage, and a credit card is always offered.
func Recommend(amount float64) []Recommendation {
	var recs []Recommendation
	if amount <= 50000 {
		recs = append(recs, Recommendation{
			Type:        "Personal Loan",
			Description: "Best for debt consolidation, home improvements, or major purchases",
			TypicalRate: "6-36%",
			Term:        "2-7 years",
		})
	}
	if amount >= 100000 {
		recs = append(recs, Recommendation{
			Type:        "Home Equity Loan",
			Description: "Use your home equity for large expenses with potentially lower rates",
			TypicalRate: "3-12%",
			Term:        "5-30 years",
		})
	}
	if amount >= 200000 {
		recs = append(recs, Recommendation{
			Type:        "Mortgage Loan",
			Description: "Perfect for home purchases with long-term repayment options",
			TypicalRate: "3-8%",
			Term:        "15-30 years",
		})
	}
	recs = append(recs, Recommendation{
		Type:        "Credit Card",
		Description: "For smaller amounts or short-term financing needs",
		TypicalRate: "15-25%",
		Term:        "Revolving credit",
	})
	return recs
}
