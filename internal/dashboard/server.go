// Package dashboard serves the records and roster pages over HTTP
package dashboard

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/myusername/records-dashboard/internal/metrics"
	"github.com/myusername/records-dashboard/internal/snapshot"
	"github.com/myusername/records-dashboard/pkg/filter"
	"github.com/myusername/records-dashboard/pkg/models"
)

//go:embed templates/page.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/page.html"))

// Server wires the dashboard routes
type Server struct {
	records *snapshot.Store
	roster  *models.Dataset
	metrics *metrics.Manager
}

// NewServer creates a server over the records snapshot. roster may be nil,
// in which case /roster is not registered.
func NewServer(records *snapshot.Store, roster *models.Dataset, m *metrics.Manager) *Server {
	return &Server{records: records, roster: roster, metrics: m}
}

// Register attaches all HTTP routes to mux
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", s.instrument("records", s.handleRecords))
	mux.HandleFunc("POST /refresh", s.instrument("refresh", s.handleRefresh))
	mux.HandleFunc("GET /healthz", s.instrument("healthz", s.handleHealth))
	if s.roster != nil {
		mux.HandleFunc("GET /roster", s.instrument("roster", s.handleRoster))
	}
	if s.metrics != nil {
		mux.Handle("GET /metrics", s.metrics.Handler())
	}
}

func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	var loadErr string
	data, err := s.records.Get(r.Context())
	if err != nil {
		// render the page without data rather than failing the request
		loadErr = "Could not load records: " + err.Error()
		data, _ = s.records.Current()
	}

	sel := ParseRecordSelection(r.URL.Query())
	rep := filter.BuildRecordsReport(data, sel)
	s.metrics.ObserveFilter(len(rep.Warnings))

	page := recordsPage(data, sel, rep)
	page.Error = loadErr
	s.render(w, r, page)
}

func (s *Server) handleRoster(w http.ResponseWriter, r *http.Request) {
	sel := ParseRosterSelection(r.URL.Query())
	res := filter.Apply(s.roster, sel.Criteria())
	s.metrics.ObserveFilter(len(res.Warnings))
	s.render(w, r, rosterPage(s.roster, sel, res))
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if _, err := s.records.Refresh(r.Context()); err != nil {
		http.Error(w, "refresh failed: "+err.Error(), http.StatusBadGateway)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	data, loadedAt := s.records.Current()
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if loadedAt.IsZero() {
		_, _ = w.Write([]byte("ok: no snapshot\n"))
		return
	}
	_, _ = w.Write([]byte("ok: " + strconv.Itoa(data.Len()) + " records, loaded " + loadedAt.UTC().Format("2006-01-02T15:04:05Z") + "\n"))
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, page pageData) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, page); err != nil {
		slog.ErrorContext(r.Context(), "failed to render page", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) instrument(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r)
		s.metrics.ObserveRequest(endpoint, strconv.Itoa(rec.status))
		slog.DebugContext(r.Context(), "handled request", "endpoint", endpoint, "status", rec.status)
	}
}
