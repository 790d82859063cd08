package http

import (
	"fmt"
	"net/http"
	"time"

	applog "coverplan/internal/log"
	"coverplan/internal/report"
)

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	s.serveReport(w, r, false)
}

func (s *Server) handleReportDownload(w http.ResponseWriter, r *http.Request) {
	s.serveReport(w, r, true)
}

func (s *Server) serveReport(w http.ResponseWriter, r *http.Request, download bool) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	res, ok := s.runner.Result()
	if !ok {
		writeError(w, http.StatusNotFound, "no analysis result available yet")
		return
	}
	now := time.Now()
	doc, err := report.BuildDocument(res, now)
	if err != nil {
		s.log.ErrorContext(r.Context(), "Report rendering failed", applog.FieldError, err)
		writeError(w, http.StatusInternalServerError, "failed to render report")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if download {
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=%q", report.Filename(now)))
		s.log.InfoContext(r.Context(), "Report exported", applog.FieldOperation, applog.OpExport)
	}
	w.WriteHeader(http.StatusOK)
	w.Write(doc)
}
