// Package household owns the mutable session state: the member, debt and
// policy collections plus the singleton financials record. All operations
// are synchronous and immediately visible to subsequent reads. State lives
// in memory only and is discarded when the session ends.
package household

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"coverplan/internal/core"
)

// UnknownInsured is the display name used when a policy references a member
// that no longer exists. Removal cascades, so this only appears if state was
// corrupted some other way.
const UnknownInsured = "unknown insured"

// ErrIDCollision is returned when a freshly generated identifier is already
// taken. With UUIDs this is effectively unreachable, but it is a defined
// error rather than a silent overwrite.
var ErrIDCollision = errors.New("identifier collision")

// Snapshot is an immutable copy of the whole household state, used to build
// an analysis request.
type Snapshot struct {
	Members    []core.FamilyMember      `json:"family"`
	Financials core.HouseholdFinancials `json:"financials"`
	Policies   []core.Policy            `json:"policies"`
}

// FinancialsPatch carries a partial update for the financials record. Nil
// fields are left untouched. The debt list and the derived total are not
// patchable: TotalDebt is always recomputed from the debts, and debts change
// only through AddDebt/RemoveDebt.
type FinancialsPatch struct {
	DebtRepaymentYears *int             `json:"debtRepaymentYears"`
	OtherIncome        *decimal.Decimal `json:"otherIncome"`
	Currency           *core.Currency   `json:"currency"`
	EmergencyFund      *decimal.Decimal `json:"emergencyFund"`
	MonthlyExpenses    *decimal.Decimal `json:"monthlyExpenses"`
}

// Store holds one household's collections behind a mutex. The zero value is
// not usable; construct with New.
type Store struct {
	mu       sync.Mutex
	members  []core.FamilyMember
	policies []core.Policy
	fin      core.HouseholdFinancials
}

func New() *Store {
	return &Store{fin: core.NewHouseholdFinancials()}
}

// AddMember validates, assigns a fresh identifier and appends, preserving
// insertion order. Names are not unique keys; duplicates are allowed.
func (s *Store) AddMember(m core.FamilyMember) (core.FamilyMember, error) {
	if err := m.Validate(); err != nil {
		return core.FamilyMember{}, err
	}
	m.Name = strings.TrimSpace(m.Name)
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	for _, existing := range s.members {
		if existing.ID == id {
			return core.FamilyMember{}, ErrIDCollision
		}
	}
	m.ID = id
	s.members = append(s.members, m)
	return m, nil
}

// RemoveMember deletes the member with the given identifier and cascades to
// every policy insuring that member. A missing identifier is a no-op. It
// returns how many policies were removed by the cascade.
func (s *Store) RemoveMember(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.members[:0]
	found := false
	for _, m := range s.members {
		if m.ID == id {
			found = true
			continue
		}
		kept = append(kept, m)
	}
	s.members = kept
	if !found {
		return 0
	}

	removed := 0
	keptPolicies := s.policies[:0]
	for _, p := range s.policies {
		if p.InsuredMemberID == id {
			removed++
			continue
		}
		keptPolicies = append(keptPolicies, p)
	}
	s.policies = keptPolicies
	return removed
}

// Members returns a copy of the member collection in insertion order.
func (s *Store) Members() []core.FamilyMember {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.FamilyMember(nil), s.members...)
}

// MemberName resolves a member identifier for display. Dangling references
// degrade to UnknownInsured instead of failing.
func (s *Store) MemberName(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.members {
		if m.ID == id {
			return m.Name
		}
	}
	return UnknownInsured
}

// AddPolicy validates, assigns an identifier and appends. A rejected add
// leaves the collection unchanged.
func (s *Store) AddPolicy(p core.Policy) (core.Policy, error) {
	if err := p.Validate(); err != nil {
		return core.Policy{}, err
	}
	p.Company = strings.TrimSpace(p.Company)
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	for _, existing := range s.policies {
		if existing.ID == id {
			return core.Policy{}, ErrIDCollision
		}
	}
	p.ID = id
	s.policies = append(s.policies, p)
	return p, nil
}

// RemovePolicy deletes the policy with the given identifier; absent is a
// no-op.
func (s *Store) RemovePolicy(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.policies[:0]
	for _, p := range s.policies {
		if p.ID == id {
			continue
		}
		kept = append(kept, p)
	}
	s.policies = kept
}

// Policies returns a copy of the policy collection in insertion order.
func (s *Store) Policies() []core.Policy {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Policy(nil), s.policies...)
}

// AddDebt validates, assigns an identifier, appends and recomputes the debt
// total under the same lock, so no reader can observe a list that disagrees
// with the announced total.
func (s *Store) AddDebt(d core.DebtItem) (core.DebtItem, error) {
	if err := d.Validate(); err != nil {
		return core.DebtItem{}, err
	}
	d.Name = strings.TrimSpace(d.Name)
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	for _, existing := range s.fin.Debts {
		if existing.ID == id {
			return core.DebtItem{}, ErrIDCollision
		}
	}
	d.ID = id
	s.fin.Debts = append(s.fin.Debts, d)
	s.fin.TotalDebt = core.SumDebts(s.fin.Debts)
	return d, nil
}

// RemoveDebt deletes the debt with the given identifier and recomputes the
// total atomically; absent is a no-op.
func (s *Store) RemoveDebt(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.fin.Debts[:0]
	for _, d := range s.fin.Debts {
		if d.ID == id {
			continue
		}
		kept = append(kept, d)
	}
	s.fin.Debts = kept
	s.fin.TotalDebt = core.SumDebts(s.fin.Debts)
}

// Financials returns a copy of the financials record, debt list included.
func (s *Store) Financials() core.HouseholdFinancials {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyFinancialsLocked()
}

// UpdateFinancials applies a partial patch and returns the updated record.
// The patch cannot touch the debt list or the derived total.
func (s *Store) UpdateFinancials(patch FinancialsPatch) (core.HouseholdFinancials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.fin
	if patch.DebtRepaymentYears != nil {
		next.DebtRepaymentYears = *patch.DebtRepaymentYears
	}
	if patch.OtherIncome != nil {
		next.OtherIncome = *patch.OtherIncome
	}
	if patch.Currency != nil {
		next.Currency = *patch.Currency
	}
	if patch.EmergencyFund != nil {
		next.EmergencyFund = *patch.EmergencyFund
	}
	if patch.MonthlyExpenses != nil {
		next.MonthlyExpenses = *patch.MonthlyExpenses
	}
	if err := next.Validate(); err != nil {
		return core.HouseholdFinancials{}, err
	}
	s.fin = next
	return s.copyFinancialsLocked(), nil
}

// Snapshot copies the full state for the analysis request builder.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Members:    append([]core.FamilyMember{}, s.members...),
		Financials: s.copyFinancialsLocked(),
		Policies:   append([]core.Policy{}, s.policies...),
	}
}

// Reset discards all state, returning the store to a fresh session.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.members = nil
	s.policies = nil
	s.fin = core.NewHouseholdFinancials()
}

func (s *Store) copyFinancialsLocked() core.HouseholdFinancials {
	fin := s.fin
	fin.Debts = append([]core.DebtItem{}, s.fin.Debts...)
	return fin
}
