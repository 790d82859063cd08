package http

import (
	"net/http"
	"strings"

	"coverplan/internal/core"
	applog "coverplan/internal/log"
)

// policyView resolves the insured member's name for display. A dangling
// reference degrades to "unknown insured" instead of failing.
type policyView struct {
	core.Policy
	InsuredName string `json:"insuredName"`
}

func (s *Server) handlePolicies(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		policies := s.store.Policies()
		views := make([]policyView, 0, len(policies))
		for _, p := range policies {
			views = append(views, policyView{Policy: p, InsuredName: s.store.MemberName(p.InsuredMemberID)})
		}
		writeJSON(w, http.StatusOK, views)
	case http.MethodPost:
		s.handleAddPolicy(w, r)
	case http.MethodDelete:
		s.handleRemovePolicy(w, r)
	default:
		methodNotAllowed(w, http.MethodGet, http.MethodPost, http.MethodDelete)
	}
}

// handlePolicyDraft returns the pre-filled policy used to seed an entry
// form.
func (s *Server) handlePolicyDraft(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	writeJSON(w, http.StatusOK, core.NewPolicyDraft())
}

func (s *Server) handleAddPolicy(w http.ResponseWriter, r *http.Request) {
	// Absent fields keep the draft defaults, like the pre-filled form.
	draft := core.NewPolicyDraft()
	if err := decodeBody(r, &draft); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	draft.ID = ""
	draft.Company = sanitizeInput(draft.Company)

	policy, err := s.store.AddPolicy(draft)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	s.log.InfoContext(r.Context(), "Policy added",
		applog.FieldOperation, applog.OpCreate,
		applog.FieldPolicyID, policy.ID,
		applog.FieldMemberID, policy.InsuredMemberID,
		applog.FieldCurrency, string(policy.Currency),
	)
	writeJSON(w, http.StatusCreated, policy)
}

func (s *Server) handleRemovePolicy(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.URL.Query().Get("id"))
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing id")
		return
	}
	s.store.RemovePolicy(id)
	s.log.InfoContext(r.Context(), "Policy removed",
		applog.FieldOperation, applog.OpDelete,
		applog.FieldPolicyID, id,
	)
	writeJSON(w, http.StatusOK, map[string]any{"removed": id})
}
