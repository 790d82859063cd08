package http

import (
	"net/http"

	"github.com/shopspring/decimal"

	"coverplan/internal/core"
)

// overviewResponse is the dashboard aggregate: derived figures only, no
// mutable state of its own.
type overviewResponse struct {
	MemberCount        int                               `json:"memberCount"`
	PolicyCount        int                               `json:"policyCount"`
	DebtCount          int                               `json:"debtCount"`
	TotalDebt          decimal.Decimal                   `json:"totalDebt"`
	PremiumsByCurrency map[core.Currency]decimal.Decimal `json:"premiumsByCurrency"`
	CoverageMonths     decimal.Decimal                   `json:"coverageMonths"`
	CoverageBand       core.CoverageBand                 `json:"coverageBand"`
	CoverageProgress   float64                           `json:"coverageProgress"`
}

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	members := s.store.Members()
	policies := s.store.Policies()
	fin := s.store.Financials()

	months := core.CoverageMonths(fin.EmergencyFund, fin.MonthlyExpenses)
	writeJSON(w, http.StatusOK, overviewResponse{
		MemberCount:        len(members),
		PolicyCount:        len(policies),
		DebtCount:          len(fin.Debts),
		TotalDebt:          fin.TotalDebt,
		PremiumsByCurrency: core.PremiumsByCurrency(policies),
		CoverageMonths:     months,
		CoverageBand:       core.BandForCoverage(months),
		CoverageProgress:   core.CoverageProgress(months),
	})
}
