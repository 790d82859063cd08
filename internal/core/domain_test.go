package core

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFamilyMemberValidate(t *testing.T) {
	good := FamilyMember{Name: "Wei", Age: 30, Role: RoleSelf, Currency: CNY}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []FamilyMember{
		{Name: "", Age: 30, Role: RoleSelf, Currency: CNY},
		{Name: "  ", Age: 30, Role: RoleSelf, Currency: CNY},
		{Name: "Wei", Age: -1, Role: RoleSelf, Currency: CNY},
		{Name: "Wei", Age: 30, Role: "cousin", Currency: CNY},
		{Name: "Wei", Age: 30, Role: RoleSelf, Currency: "XAU"},
		{Name: "Wei", Age: 30, Role: RoleSelf, Currency: CNY, Income: decimal.NewFromInt(-1)},
	}
	for i, m := range bads {
		if err := m.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestDebtItemValidate(t *testing.T) {
	good := DebtItem{Name: "mortgage", Amount: decimal.NewFromInt(500_000), Type: "mortgage"}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (DebtItem{Name: "", Amount: decimal.NewFromInt(1)}).Validate(); err == nil {
		t.Fatal("expected error for empty name")
	}
	if err := (DebtItem{Name: "loan", Amount: decimal.Zero}).Validate(); err == nil {
		t.Fatal("expected error for non-positive amount")
	}
}

func TestPolicyValidate(t *testing.T) {
	good := Policy{
		Company:         "PingAn",
		Type:            PolicyLife,
		InsuredMemberID: "m1",
		CoverageAmount:  decimal.NewFromInt(1_000_000),
		AnnualPremium:   decimal.NewFromInt(4_000),
		PaymentPeriod:   20,
		RemainingYears:  10,
		Currency:        CNY,
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		mutate func(*Policy)
		want   error
	}{
		{func(p *Policy) { p.Company = " " }, ErrEmptyCompany},
		{func(p *Policy) { p.InsuredMemberID = "" }, ErrNoInsured},
		{func(p *Policy) { p.Type = "pet" }, ErrInvalidType},
		{func(p *Policy) { p.CoverageAmount = decimal.Zero }, ErrInvalidAmount},
		{func(p *Policy) { p.AnnualPremium = decimal.NewFromInt(-1) }, ErrInvalidAmount},
		{func(p *Policy) { p.RemainingYears = -1 }, ErrInvalidYears},
		{func(p *Policy) { p.Currency = "BTC" }, ErrInvalidCurrency},
	}
	for i, tc := range cases {
		p := good
		tc.mutate(&p)
		if err := p.Validate(); err != tc.want {
			t.Fatalf("case %d: want %v, got %v", i, tc.want, err)
		}
	}
}

func TestNewHouseholdFinancialsDefaults(t *testing.T) {
	f := NewHouseholdFinancials()
	if f.Currency != CNY {
		t.Fatalf("default currency = %s, want CNY", f.Currency)
	}
	if !f.TotalDebt.IsZero() || !f.EmergencyFund.IsZero() || !f.MonthlyExpenses.IsZero() {
		t.Fatal("numeric defaults must be zero")
	}
	if f.Debts == nil || len(f.Debts) != 0 {
		t.Fatal("debt list must be empty, not nil")
	}
	if err := f.Validate(); err != nil {
		t.Fatalf("defaults must validate, got %v", err)
	}
}

func TestNewPolicyDraftDefaults(t *testing.T) {
	d := NewPolicyDraft()
	if d.Type != PolicyMedical || d.Currency != CNY {
		t.Fatalf("unexpected draft enums: %s %s", d.Type, d.Currency)
	}
	if !d.CoverageAmount.Equal(decimal.NewFromInt(1_000_000)) {
		t.Fatalf("draft coverage = %s", d.CoverageAmount)
	}
	if !d.AnnualPremium.Equal(decimal.NewFromInt(1_000)) {
		t.Fatalf("draft premium = %s", d.AnnualPremium)
	}
	if d.PaymentPeriod != 20 || d.RemainingYears != 10 {
		t.Fatalf("draft periods = %d/%d", d.PaymentPeriod, d.RemainingYears)
	}
}
