package http

import (
	"net/http"

	"coverplan/internal/household"
	applog "coverplan/internal/log"
)

func (s *Server) handleFinancials(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.store.Financials())
	case http.MethodPut, http.MethodPatch:
		s.handleUpdateFinancials(w, r)
	default:
		methodNotAllowed(w, http.MethodGet, http.MethodPut, http.MethodPatch)
	}
}

func (s *Server) handleUpdateFinancials(w http.ResponseWriter, r *http.Request) {
	var patch household.FinancialsPatch
	if err := decodeBody(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	fin, err := s.store.UpdateFinancials(patch)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	s.log.InfoContext(r.Context(), "Financials updated",
		applog.FieldOperation, applog.OpUpdate,
		applog.FieldCurrency, string(fin.Currency),
	)
	writeJSON(w, http.StatusOK, fin)
}
