package content

// Default catalog used by the in-memory store and mirrored by the
// SQLite seed migration. Keep the two in sync when adding a
// calculator.

// DefaultCalculators returns the ten stock calculators.
func DefaultCalculators() []Calculator {
	return []Calculator{
		{
			Slug:            "age-calculator",
			Name:            "Age Calculator",
			Description:     "Calculate your exact age in years, months, and days",
			Icon:            "🎂",
			Active:          true,
			Featured:        true,
			Order:           1,
			MetaTitle:       "Age Calculator - Calculate Your Exact Age Online",
			MetaDescription: "Free online age calculator to find your exact age in years, months, days, and more.",
			MetaKeywords:    "age calculator, calculate age, birth date, exact age",
		},
		{
			Slug:            "bmi-calculator",
			Name:            "BMI Calculator",
			Description:     "Calculate your Body Mass Index and health category",
			Icon:            "⚖️",
			Active:          true,
			Featured:        true,
			Order:           2,
			MetaTitle:       "BMI Calculator - Body Mass Index Calculator Online",
			MetaDescription: "Calculate your BMI with our free online calculator. Supports metric and imperial units.",
			MetaKeywords:    "BMI calculator, body mass index, health calculator",
		},
		{
			Slug:            "calorie-calculator",
			Name:            "Calorie Calculator",
			Description:     "Calculate your daily calorie needs for healthy weight management",
			Icon:            "🔥",
			Active:          true,
			Featured:        true,
			Order:           3,
			MetaTitle:       "Calorie Calculator - Daily Calorie Needs (BMR & TDEE)",
			MetaDescription: "Determine your daily calorie requirements from age, gender, height, weight, and activity level.",
			MetaKeywords:    "calorie calculator, BMR calculator, TDEE calculator, daily calorie needs",
		},
		{
			Slug:            "gpa-calculator",
			Name:            "GPA Calculator",
			Description:     "Calculate your Grade Point Average from your grades and credit hours",
			Icon:            "🎓",
			Active:          true,
			Order:           4,
			MetaTitle:       "GPA Calculator - Calculate Your Grade Point Average",
			MetaDescription: "Free online GPA calculator. Enter grades and credit hours for accurate results.",
			MetaKeywords:    "GPA calculator, grade point average, college GPA",
		},
		{
			Slug:            "grade-calculator",
			Name:            "Grade Calculator",
			Description:     "Work out your weighted course grade and what you need on the final",
			Icon:            "📝",
			Active:          true,
			Order:           5,
			MetaTitle:       "Grade Calculator - Weighted Grades & Final Exam Scores",
			MetaDescription: "Calculate weighted course grades, semester GPA, and the score you need on your final exam.",
			MetaKeywords:    "grade calculator, final grade, weighted grade, semester GPA",
		},
		{
			Slug:            "percentage-calculator",
			Name:            "Percentage Calculator",
			Description:     "Calculate percentages, percentage changes, discounts, tips, and more",
			Icon:            "％",
			Active:          true,
			Order:           6,
			MetaTitle:       "Percentage Calculator - Percentages, Changes & Discounts",
			MetaDescription: "Free percentage calculator for percentages, percentage changes, discounts and markups.",
			MetaKeywords:    "percentage calculator, percent change, discount calculator",
		},
		{
			Slug:            "loan-calculator",
			Name:            "Loan Calculator",
			Description:     "Calculate monthly payments, total interest, and amortization schedule for any loan",
			Icon:            "💰",
			Active:          true,
			Featured:        false,
			Order:           7,
			MetaTitle:       "Loan Calculator - Monthly Payments & Amortization",
			MetaDescription: "Calculate loan payments, total interest and an amortization schedule for any loan.",
			MetaKeywords:    "loan calculator, monthly payment, amortization schedule",
		},
		{
			Slug:            "mortgage-calculator",
			Name:            "Mortgage Calculator",
			Description:     "Estimate your full monthly mortgage payment including PMI, taxes, and insurance",
			Icon:            "🏠",
			Active:          true,
			Order:           8,
			MetaTitle:       "Mortgage Calculator - Payments with PMI, Taxes & Insurance",
			MetaDescription: "Estimate monthly mortgage payments including PMI, property tax, insurance and HOA dues.",
			MetaKeywords:    "mortgage calculator, PMI, home loan, monthly payment",
		},
		{
			Slug:            "retirement-calculator",
			Name:            "401k Calculator",
			Description:     "Project your 401k balance at retirement with employer matching",
			Icon:            "📈",
			Active:          true,
			Order:           9,
			MetaTitle:       "401k Calculator - Retirement Savings Projection",
			MetaDescription: "Project your 401k balance year by year with contributions, employer match and growth.",
			MetaKeywords:    "401k calculator, retirement calculator, employer match",
		},
		{
			Slug:            "pregnancy-calculator",
			Name:            "Pregnancy Calculator",
			Description:     "Find your due date, current trimester, and upcoming milestones",
			Icon:            "🍼",
			Active:          true,
			Order:           10,
			MetaTitle:       "Pregnancy Calculator - Due Date & Trimester Timeline",
			MetaDescription: "Calculate your due date from last period, conception date or a known due date.",
			MetaKeywords:    "pregnancy calculator, due date calculator, trimester",
		},
	}
}

// DefaultHomepage returns the stock homepage copy.
func DefaultHomepage() Homepage {
	return Homepage{
		Title:           "Calculator Hub",
		Subtitle:        "Your one-stop destination for free online calculators",
		HeroText:        "Fast, accurate, and easy-to-use calculators for all your daily needs. No registration required, completely free to use.",
		AboutSection:    "Calculator Hub provides a comprehensive collection of free online calculators designed to help you with everyday calculations.",
		FeaturesTitle:   "Why Choose Our Calculators?",
		ShowFeatures:    true,
		ShowStatistics:  true,
		MetaTitle:       "Calculator Hub - Free Online Calculators",
		MetaDescription: "Free online calculators including age, BMI, GPA, loan, mortgage, 401k and pregnancy tools.",
		MetaKeywords:    "calculator, online calculator, free tools",
	}
}

// DefaultFeatures returns the stock homepage feature list.
func DefaultFeatures() []Feature {
	return []Feature{
		{Title: "Free to Use", Description: "All calculators are completely free with no hidden costs or registration required.", Icon: "✅", Order: 1},
		{Title: "Mobile Friendly", Description: "Works perfectly on all devices - desktop, tablet, and mobile phones.", Icon: "📱", Order: 2},
		{Title: "Secure & Private", Description: "Your inputs are processed per request and never stored on our servers.", Icon: "🔒", Order: 3},
		{Title: "Instant Results", Description: "Get accurate calculations instantly without any delays.", Icon: "⚡", Order: 4},
	}
}
