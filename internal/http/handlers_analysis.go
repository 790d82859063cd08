package http

import (
	"errors"
	"net/http"

	"coverplan/internal/advisor"
	"coverplan/internal/core"
	applog "coverplan/internal/log"
)

type analysisStatus struct {
	State  advisor.State        `json:"state"`
	Result *core.AnalysisResult `json:"result,omitempty"`
}

func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		status := analysisStatus{State: s.runner.State()}
		if res, ok := s.runner.Result(); ok {
			status.Result = &res
		}
		writeJSON(w, http.StatusOK, status)
	case http.MethodPost:
		s.handleRunAnalysis(w, r)
	default:
		methodNotAllowed(w, http.MethodGet, http.MethodPost)
	}
}

func (s *Server) handleRunAnalysis(w http.ResponseWriter, r *http.Request) {
	snap := s.store.Snapshot()
	res, err := s.runner.Run(r.Context(), snap)
	switch {
	case errors.Is(err, advisor.ErrNoFamilyMembers):
		writeError(w, http.StatusUnprocessableEntity, "add at least one family member before requesting analysis")
		return
	case errors.Is(err, advisor.ErrAnalysisInFlight):
		writeError(w, http.StatusConflict, "an analysis request is already in flight")
		return
	case err != nil:
		// The previous result, if any, is still served; the client may retry.
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	s.log.InfoContext(r.Context(), "Analysis completed",
		applog.FieldOperation, applog.OpAnalyze,
		applog.FieldMemberCount, len(snap.Members),
		applog.FieldGapCount, len(res.Summary.Gaps),
	)
	writeJSON(w, http.StatusOK, analysisStatus{State: s.runner.State(), Result: &res})
}
