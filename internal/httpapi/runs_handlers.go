package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Falakejaz786/company-jobs-web-scraper/internal/dispatch"
	"github.com/Falakejaz786/company-jobs-web-scraper/internal/domain"
	"github.com/Falakejaz786/company-jobs-web-scraper/internal/report"
	"github.com/Falakejaz786/company-jobs-web-scraper/internal/store"
)

const maxCompaniesPerRequest = 5000

type RunsHandler struct {
	Deps
}

func (h RunsHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	runs, err := h.Store.ListRuns(r.Context(), limit)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}
	if runs == nil {
		runs = []store.Run{}
	}
	writeJSON(w, runs)
}

func (h RunsHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.RunStatus.Load().(RunStatus))
}

// GetByPath serves /runs/{id} as JSON and /runs/{id}/report.xlsx as a workbook.
func (h RunsHandler) GetByPath(w http.ResponseWriter, r *http.Request) {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/runs/"), "/")
	id, suffix, _ := strings.Cut(rest, "/")
	if id == "" || (suffix != "" && suffix != "report.xlsx") {
		WriteError(w, r, http.StatusNotFound, "not_found", "no such resource")
		return
	}

	results, err := h.Store.LoadResults(r.Context(), id)
	if errors.Is(err, store.ErrRunNotFound) {
		WriteError(w, r, http.StatusNotFound, "run_not_found", err.Error())
		return
	}
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}

	if suffix == "" {
		writeJSON(w, results)
		return
	}

	f, err := report.BuildWorkbook(report.Flatten(results), report.WorkbookOptions{
		DataSheet:        h.Cfg.Report.DataSheet,
		MethodologySheet: h.Cfg.Report.MethodologySheet,
	})
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "report_error", err.Error())
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+report.DefaultOutputFile+`"`)
	if err := f.Write(w); err != nil {
		h.Log.Warn("write report", zap.String("run_id", id), zap.Error(err))
	}
}

// Start accepts a list of company names and enriches them in the background.
// Only one run is active at a time.
func (h RunsHandler) Start(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	dec.DisallowUnknownFields()

	var req StartRunRequest
	if err := dec.Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	var companies []domain.CompanyInput
	for _, name := range req.Companies {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		companies = append(companies, domain.CompanyInput{Index: len(companies), Name: name})
	}
	if len(companies) == 0 {
		WriteError(w, r, http.StatusBadRequest, "no_companies", "companies must contain at least one non-blank name")
		return
	}
	if len(companies) > maxCompaniesPerRequest {
		WriteError(w, r, http.StatusRequestEntityTooLarge, "too_many_companies",
			"at most "+strconv.Itoa(maxCompaniesPerRequest)+" companies per run")
		return
	}

	st := h.RunStatus.Load().(RunStatus)
	if st.Running {
		WriteError(w, r, http.StatusConflict, "already_running", "a run is already in progress")
		return
	}

	runID := uuid.NewString()
	started := time.Now()
	if !h.RunStatus.CompareAndSwap(st, RunStatus{
		RunID:     runID,
		StartedAt: started.Format(time.RFC3339),
		LastOkAt:  st.LastOkAt,
		Companies: len(companies),
		Running:   true,
	}) {
		WriteError(w, r, http.StatusConflict, "already_running", "a run is already in progress")
		return
	}

	h.Runs.Add(1)
	go h.execute(runID, started, companies)

	WriteJSON(w, http.StatusAccepted, StartRunResponse{OK: true, RunID: runID})
}

func (h RunsHandler) execute(runID string, started time.Time, companies []domain.CompanyInput) {
	defer h.Runs.Done()

	ctx := h.BaseCtx
	if ctx == nil {
		ctx = context.Background()
	}
	log := h.Log.With(zap.String("run_id", runID))

	results := dispatch.RunOnce(ctx, h.Processor, companies, dispatch.Options{
		Workers: h.Cfg.Dispatch.Workers,
		RunID:   runID,
		Hub:     h.Hub,
		Log:     log,
	})

	_, err := h.Store.SaveRun(context.WithoutCancel(ctx), store.RunMeta{
		ID:         runID,
		StartedAt:  started,
		FinishedAt: time.Now(),
		InputPath:  "api",
	}, results)

	next := h.RunStatus.Load().(RunStatus)
	next.Running = false
	if err != nil {
		log.Error("record run", zap.Error(err))
		next.LastError = err.Error()
	} else {
		next.LastError = ""
		next.LastOkAt = time.Now().Format(time.RFC3339)
	}
	h.RunStatus.Store(next)
}
