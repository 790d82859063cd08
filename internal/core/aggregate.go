package core

import "github.com/shopspring/decimal"

// Coverage bands for the emergency-fund months metric. Thresholds are fixed
// design constants, not user configurable.
const (
	CoverageHighRisk CoverageBand = "high_risk" // < 3 months
	CoverageBaseline CoverageBand = "baseline"  // 3-6 months
	CoverageRobust   CoverageBand = "robust"    // >= 6 months
)

// CoverageBand classifies how many months of essential expenses the
// emergency fund covers.
type CoverageBand string

var (
	coverageBaselineMin = decimal.NewFromInt(3)
	coverageRobustMin   = decimal.NewFromInt(6)
	coverageTarget      = decimal.NewFromInt(12)
)

// PremiumsByCurrency sums annual premiums per currency. Policies are never
// converted across currencies here; cross-currency totals belong to the
// external analysis step. An empty input yields an empty map.
func PremiumsByCurrency(policies []Policy) map[Currency]decimal.Decimal {
	totals := make(map[Currency]decimal.Decimal, len(policies))
	for _, p := range policies {
		totals[p.Currency] = totals[p.Currency].Add(p.AnnualPremium)
	}
	return totals
}

// SumDebts returns the exact sum of all debt amounts. This is the single
// authority for HouseholdFinancials.TotalDebt.
func SumDebts(debts []DebtItem) decimal.Decimal {
	total := decimal.Zero
	for _, d := range debts {
		total = total.Add(d.Amount)
	}
	return total
}

// CoverageMonths returns emergencyFund / monthlyExpenses rounded to one
// decimal place, or zero when monthlyExpenses is not positive.
func CoverageMonths(emergencyFund, monthlyExpenses decimal.Decimal) decimal.Decimal {
	if !monthlyExpenses.IsPositive() {
		return decimal.Zero
	}
	return emergencyFund.DivRound(monthlyExpenses, 1)
}

// BandForCoverage classifies a coverage-months value.
func BandForCoverage(months decimal.Decimal) CoverageBand {
	switch {
	case months.Cmp(coverageBaselineMin) < 0:
		return CoverageHighRisk
	case months.Cmp(coverageRobustMin) < 0:
		return CoverageBaseline
	default:
		return CoverageRobust
	}
}

// CoverageProgress returns months relative to the 12-month target as a
// fraction in [0,1], for the overview progress gauge.
func CoverageProgress(months decimal.Decimal) float64 {
	ratio, _ := months.Div(coverageTarget).Float64()
	if ratio > 1 {
		return 1
	}
	if ratio < 0 {
		return 0
	}
	return ratio
}
