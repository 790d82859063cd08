package core

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	RoleSelf   Role = "self"
	RoleSpouse Role = "spouse"
	RoleChild  Role = "child"
	RoleParent Role = "parent"
)

const (
	CNY Currency = "CNY"
	USD Currency = "USD"
	HKD Currency = "HKD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	JPY Currency = "JPY"
)

const (
	PolicyCriticalIllness PolicyType = "critical_illness"
	PolicyMedical         PolicyType = "medical"
	PolicyAccident        PolicyType = "accident"
	PolicyLife            PolicyType = "life"
	PolicyAnnuity         PolicyType = "annuity"
	PolicyOther           PolicyType = "other"
)

type (
	Role       string
	Currency   string
	PolicyType string

	// FamilyMember is one person in the household. Income is annual and
	// optional; a zero income means "not provided".
	FamilyMember struct {
		ID       string          `json:"id"`
		Name     string          `json:"name"`
		Age      int             `json:"age"`
		Role     Role            `json:"role"`
		Income   decimal.Decimal `json:"income"`
		Currency Currency        `json:"currency"`
	}

	// DebtItem is a single liability owned by the household's debt list.
	DebtItem struct {
		ID     string          `json:"id"`
		Name   string          `json:"name"`
		Amount decimal.Decimal `json:"amount"`
		Type   string          `json:"type"`
	}

	// HouseholdFinancials is the singleton financial record for one
	// household. TotalDebt is derived: it always equals the sum of Debts
	// and is recomputed on every debt mutation.
	HouseholdFinancials struct {
		TotalDebt          decimal.Decimal `json:"totalDebt"`
		DebtRepaymentYears int             `json:"debtRepaymentYears"`
		OtherIncome        decimal.Decimal `json:"otherIncome"`
		Currency           Currency        `json:"currency"`
		EmergencyFund      decimal.Decimal `json:"emergencyFund"`
		MonthlyExpenses    decimal.Decimal `json:"monthlyExpenses"`
		Debts              []DebtItem      `json:"debts"`
	}

	// Policy is an existing insurance contract covering one family member.
	Policy struct {
		ID              string          `json:"id"`
		Company         string          `json:"company"`
		Type            PolicyType      `json:"type"`
		InsuredMemberID string          `json:"insuredMemberId"`
		CoverageAmount  decimal.Decimal `json:"coverageAmount"`
		AnnualPremium   decimal.Decimal `json:"annualPremium"`
		PaymentPeriod   int             `json:"paymentPeriod"`
		RemainingYears  int             `json:"remainingYears"`
		Currency        Currency        `json:"currency"`
	}
)

var (
	ErrEmptyName       = errors.New("empty name")
	ErrEmptyCompany    = errors.New("empty company")
	ErrNoInsured       = errors.New("missing insured member reference")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidAge      = errors.New("invalid age")
	ErrInvalidRole     = errors.New("invalid role")
	ErrInvalidType     = errors.New("invalid policy type")
	ErrInvalidYears    = errors.New("invalid years")
	ErrInvalidCurrency = errors.New("invalid currency")
)

func (r Role) Valid() bool {
	switch r {
	case RoleSelf, RoleSpouse, RoleChild, RoleParent:
		return true
	}
	return false
}

func (c Currency) Valid() bool {
	switch c {
	case CNY, USD, HKD, EUR, GBP, JPY:
		return true
	}
	return false
}

func (t PolicyType) Valid() bool {
	switch t {
	case PolicyCriticalIllness, PolicyMedical, PolicyAccident, PolicyLife, PolicyAnnuity, PolicyOther:
		return true
	}
	return false
}

func (m FamilyMember) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return ErrEmptyName
	}
	if m.Age < 0 {
		return ErrInvalidAge
	}
	if !m.Role.Valid() {
		return ErrInvalidRole
	}
	if m.Income.IsNegative() {
		return ErrInvalidAmount
	}
	if !m.Currency.Valid() {
		return ErrInvalidCurrency
	}
	return nil
}

func (d DebtItem) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrEmptyName
	}
	if !d.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}

func (p Policy) Validate() error {
	if strings.TrimSpace(p.Company) == "" {
		return ErrEmptyCompany
	}
	if !p.Type.Valid() {
		return ErrInvalidType
	}
	if strings.TrimSpace(p.InsuredMemberID) == "" {
		return ErrNoInsured
	}
	if !p.CoverageAmount.IsPositive() {
		return ErrInvalidAmount
	}
	if !p.AnnualPremium.IsPositive() {
		return ErrInvalidAmount
	}
	if p.PaymentPeriod < 0 || p.RemainingYears < 0 {
		return ErrInvalidYears
	}
	if !p.Currency.Valid() {
		return ErrInvalidCurrency
	}
	return nil
}

func (f HouseholdFinancials) Validate() error {
	if f.DebtRepaymentYears < 0 {
		return ErrInvalidYears
	}
	if f.OtherIncome.IsNegative() || f.EmergencyFund.IsNegative() || f.MonthlyExpenses.IsNegative() {
		return ErrInvalidAmount
	}
	if !f.Currency.Valid() {
		return ErrInvalidCurrency
	}
	return nil
}

// NewHouseholdFinancials returns the factory default record for a fresh
// session: every numeric field zero, no debts, CNY reporting currency.
func NewHouseholdFinancials() HouseholdFinancials {
	return HouseholdFinancials{
		Currency: CNY,
		Debts:    []DebtItem{},
	}
}

// NewPolicyDraft returns the pre-filled policy used to seed an entry form.
func NewPolicyDraft() Policy {
	return Policy{
		Type:           PolicyMedical,
		CoverageAmount: decimal.NewFromInt(1_000_000),
		AnnualPremium:  decimal.NewFromInt(1_000),
		PaymentPeriod:  20,
		RemainingYears: 10,
		Currency:       CNY,
	}
}
