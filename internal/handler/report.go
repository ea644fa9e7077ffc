package handler

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/embarques/fletes/internal/domain"
	"github.com/embarques/fletes/internal/render"
)

// GetMonthlyReport handles GET /reports/monthly?year=&month=&format=.
func (s *Server) GetMonthlyReport(w http.ResponseWriter, r *http.Request) {
	var year, month int
	if err := runtime.BindQueryParameter("form", true, true, "year", r.URL.Query(), &year); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid year: "+err.Error()))
		return
	}
	if err := runtime.BindQueryParameter("form", true, true, "month", r.URL.Query(), &month); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid month: "+err.Error()))
		return
	}
	format, ok := reportFormat(w, r)
	if !ok {
		return
	}

	report, err := s.reports.Monthly(r.Context(), year, month)
	if err != nil {
		respondError(w, r, err, "report")
		return
	}
	writeReport(w, r, report, format)
}

// GetRangeReport handles GET /reports/range?start=&end=&format=.
// start and end are inclusive YYYY-MM-DD dates.
func (s *Server) GetRangeReport(w http.ResponseWriter, r *http.Request) {
	var start, end openapi_types.Date
	if err := runtime.BindQueryParameter("form", true, true, "start", r.URL.Query(), &start); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid start: "+err.Error()))
		return
	}
	if err := runtime.BindQueryParameter("form", true, true, "end", r.URL.Query(), &end); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid end: "+err.Error()))
		return
	}
	format, ok := reportFormat(w, r)
	if !ok {
		return
	}

	report, err := s.reports.Range(r.Context(), start.Time, end.Time)
	if err != nil {
		respondError(w, r, err, "report")
		return
	}
	writeReport(w, r, report, format)
}

// ListMonthsWithData handles GET /reports/months.
func (s *Server) ListMonthsWithData(w http.ResponseWriter, r *http.Request) {
	months, err := s.reports.MonthsWithData(r.Context())
	if err != nil {
		respondError(w, r, err, "report")
		return
	}
	writeJSON(w, http.StatusOK, months)
}

func reportFormat(w http.ResponseWriter, r *http.Request) (render.Format, bool) {
	format, err := render.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, validationBody(err))
		return "", false
	}
	return format, true
}

// writeReport renders the report into memory first so a rendering failure
// still produces a clean 500 instead of a truncated download.
func writeReport(w http.ResponseWriter, r *http.Request, report domain.Report, format render.Format) {
	var buf bytes.Buffer
	if err := format.Write(&buf, report); err != nil {
		respondError(w, r, err, "report")
		return
	}

	slog.InfoContext(r.Context(), "report generated",
		"report_id", report.ID,
		"kind", report.Kind,
		"format", format,
		"rows", len(report.Rows),
		"bytes", buf.Len(),
	)

	h := w.Header()
	h.Set("Content-Type", format.ContentType())
	h.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", format.FileName(report)))
	h.Set("Content-Length", strconv.Itoa(buf.Len()))
	h.Set("X-Report-Id", report.ID.String())
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck // status line already sent
	buf.WriteTo(w)
}
