package http

import (
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"coverplan/internal/core"
	applog "coverplan/internal/log"
)

type addMemberRequest struct {
	Name     string          `json:"name"`
	Age      int             `json:"age"`
	Role     core.Role       `json:"role"`
	Income   decimal.Decimal `json:"income"`
	Currency core.Currency   `json:"currency"`
}

func (s *Server) handleMembers(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.store.Members())
	case http.MethodPost:
		s.handleAddMember(w, r)
	case http.MethodDelete:
		s.handleRemoveMember(w, r)
	default:
		methodNotAllowed(w, http.MethodGet, http.MethodPost, http.MethodDelete)
	}
}

func (s *Server) handleAddMember(w http.ResponseWriter, r *http.Request) {
	var req addMemberRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Currency == "" {
		req.Currency = core.CNY
	}
	member, err := s.store.AddMember(core.FamilyMember{
		Name:     sanitizeInput(req.Name),
		Age:      req.Age,
		Role:     req.Role,
		Income:   req.Income,
		Currency: req.Currency,
	})
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	s.log.InfoContext(r.Context(), "Member added",
		applog.FieldOperation, applog.OpCreate,
		applog.FieldMemberID, member.ID,
		applog.FieldMemberCount, len(s.store.Members()),
	)
	writeJSON(w, http.StatusCreated, member)
}

func (s *Server) handleRemoveMember(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.URL.Query().Get("id"))
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing id")
		return
	}
	cascaded := s.store.RemoveMember(id)
	s.log.InfoContext(r.Context(), "Member removed",
		applog.FieldOperation, applog.OpDelete,
		applog.FieldMemberID, id,
		"cascaded_policies", cascaded,
	)
	writeJSON(w, http.StatusOK, map[string]any{
		"cascadedPolicies": cascaded,
	})
}
