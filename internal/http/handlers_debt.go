package http

import (
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"coverplan/internal/core"
	applog "coverplan/internal/log"
)

// addDebtRequest carries the amount as the user typed it; ParseAmount
// accepts both comma and dot decimal separators.
type addDebtRequest struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Type   string `json:"type"`
}

// debtsResponse always pairs the list with its derived total, which is
// recomputed atomically with every mutation.
type debtsResponse struct {
	Debts     []core.DebtItem `json:"debts"`
	TotalDebt decimal.Decimal `json:"totalDebt"`
}

func (s *Server) handleDebts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.writeDebts(w, http.StatusOK)
	case http.MethodPost:
		s.handleAddDebt(w, r)
	case http.MethodDelete:
		s.handleRemoveDebt(w, r)
	default:
		methodNotAllowed(w, http.MethodGet, http.MethodPost, http.MethodDelete)
	}
}

func (s *Server) writeDebts(w http.ResponseWriter, status int) {
	fin := s.store.Financials()
	writeJSON(w, status, debtsResponse{Debts: fin.Debts, TotalDebt: fin.TotalDebt})
}

func (s *Server) handleAddDebt(w http.ResponseWriter, r *http.Request) {
	var req addDebtRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	amount, err := core.ParseAmount(req.Amount)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	debt, err := s.store.AddDebt(core.DebtItem{
		Name:   sanitizeInput(req.Name),
		Amount: amount,
		Type:   sanitizeInput(req.Type),
	})
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	s.log.InfoContext(r.Context(), "Debt added",
		applog.FieldOperation, applog.OpCreate,
		applog.FieldDebtID, debt.ID,
		applog.FieldTotalDebt, s.store.Financials().TotalDebt.String(),
	)
	s.writeDebts(w, http.StatusCreated)
}

func (s *Server) handleRemoveDebt(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.URL.Query().Get("id"))
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing id")
		return
	}
	s.store.RemoveDebt(id)
	s.log.InfoContext(r.Context(), "Debt removed",
		applog.FieldOperation, applog.OpDelete,
		applog.FieldDebtID, id,
		applog.FieldTotalDebt, s.store.Financials().TotalDebt.String(),
	)
	s.writeDebts(w, http.StatusOK)
}
