package httpapi

import (
	"net/http"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/Falakejaz786/company-jobs-web-scraper/internal/events"
)

// NewMux wires every route. Missing optional deps get usable defaults.
func NewMux(d Deps) *http.ServeMux {
	if d.RunStatus == nil {
		d.RunStatus = &atomic.Value{}
	}
	if d.RunStatus.Load() == nil {
		d.RunStatus.Store(RunStatus{})
	}
	if d.Runs == nil {
		d.Runs = &sync.WaitGroup{}
	}
	if d.Hub == nil {
		d.Hub = events.NewHub()
	}
	if d.Log == nil {
		d.Log = zap.NewNop()
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: HealthHandler{}.Health,
	}))

	// Config (read-only; edit the file and restart)
	ch := ConfigHandler{Cfg: d.Cfg}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
	}))
	mux.HandleFunc("/config/validate", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Validate,
	}))

	// Runs
	rh := RunsHandler{Deps: d}
	mux.HandleFunc("/runs", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:  rh.List,
		http.MethodPost: rh.Start,
	}))
	mux.HandleFunc("/runs/status", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: rh.Status,
	}))
	mux.HandleFunc("/runs/", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: rh.GetByPath, // /runs/{id} or /runs/{id}/report.xlsx
	}))

	// SSE events
	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	return mux
}
