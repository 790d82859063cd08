package canned

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"coverplan/internal/core"
	"coverplan/internal/household"
)

func snapshotWith(policies []core.Policy) household.Snapshot {
	fin := core.NewHouseholdFinancials()
	fin.EmergencyFund = decimal.NewFromInt(12000)
	fin.MonthlyExpenses = decimal.NewFromInt(2000)
	return household.Snapshot{
		Members: []core.FamilyMember{
			{ID: "m1", Name: "Wei", Age: 35, Role: core.RoleSelf, Income: decimal.NewFromInt(200000), Currency: core.CNY},
		},
		Financials: fin,
		Policies:   policies,
	}
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	a := New()
	snap := snapshotWith(nil)

	first, err := a.Analyze(context.Background(), snap)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	second, err := a.Analyze(context.Background(), snap)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if first.ReportMarkdown != second.ReportMarkdown {
		t.Fatal("report is not deterministic")
	}
	if first.Summary.HealthScore != second.Summary.HealthScore {
		t.Fatal("scores are not deterministic")
	}
}

func TestAnalyzeScoresWithinRange(t *testing.T) {
	a := New()
	res, err := a.Analyze(context.Background(), snapshotWith([]core.Policy{
		{ID: "p1", Company: "PingAn", Type: core.PolicyMedical, InsuredMemberID: "m1",
			CoverageAmount: decimal.NewFromInt(1_000_000), AnnualPremium: decimal.NewFromInt(50_000), Currency: core.CNY},
	}))
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	scores := []float64{
		res.Summary.HealthScore, res.Summary.AccidentScore,
		res.Summary.LifeScore, res.Summary.WealthScore, res.Summary.Liquidity(),
	}
	for i, s := range scores {
		if s < 0 || s > 100 {
			t.Fatalf("score %d out of range: %v", i, s)
		}
	}
	if res.Summary.Gaps == nil {
		t.Fatal("gaps must never be nil")
	}
	if res.ReportMarkdown == "" {
		t.Fatal("report must not be empty")
	}
}

func TestAnalyzeFlagsMissingCover(t *testing.T) {
	a := New()
	res, err := a.Analyze(context.Background(), snapshotWith(nil))
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	found := false
	for _, g := range res.Summary.Gaps {
		if strings.Contains(g, "医疗险") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a medical-cover gap, got %v", res.Summary.Gaps)
	}
	if res.Summary.HealthScore != 0 {
		t.Fatalf("health score = %v for an uncovered family", res.Summary.HealthScore)
	}
}

// High premium against income trips the 10% guideline.
func TestAnalyzeFlagsPremiumRatio(t *testing.T) {
	a := New()
	res, err := a.Analyze(context.Background(), snapshotWith([]core.Policy{
		{ID: "p1", Company: "PingAn", Type: core.PolicyMedical, InsuredMemberID: "m1",
			CoverageAmount: decimal.NewFromInt(1_000_000), AnnualPremium: decimal.NewFromInt(50_000), Currency: core.CNY},
	}))
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if res.Summary.Ratio() <= 0.1 {
		t.Fatalf("ratio = %v, expected above guideline", res.Summary.Ratio())
	}
	found := false
	for _, g := range res.Summary.Gaps {
		if strings.Contains(g, "10%") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a premium-ratio gap, got %v", res.Summary.Gaps)
	}
}

// Whole-number months still display with one decimal place, and amounts
// carry their currency symbol.
func TestAnalyzeReportFormatsAmounts(t *testing.T) {
	a := New()
	snap := snapshotWith(nil)
	snap.Financials.Debts = []core.DebtItem{
		{ID: "d1", Name: "mortgage", Amount: decimal.NewFromInt(500_000), Type: "mortgage"},
	}
	snap.Financials.TotalDebt = core.SumDebts(snap.Financials.Debts)

	res, err := a.Analyze(context.Background(), snap)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if !strings.Contains(res.ReportMarkdown, "6.0 个月") {
		t.Fatalf("report does not show months with one decimal: %q", res.ReportMarkdown)
	}
	found := false
	for _, g := range res.Summary.Gaps {
		if strings.Contains(g, "￥500000") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a symbol-formatted debt gap, got %v", res.Summary.Gaps)
	}
}
