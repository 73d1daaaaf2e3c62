package handler

import (
	"net/http"

	"github.com/taperlab/taper/internal/apperr"
	"github.com/taperlab/taper/internal/engine"
	"github.com/taperlab/taper/internal/xhttp"
	"github.com/taperlab/taper/internal/xslog"
)

// Analysis exposes the read-only analysis operations: progress, recovery,
// fatigue, and overreaching risk.
type Analysis struct {
	engine *engine.Engine
}

func NewAnalysis(e *engine.Engine) *Analysis {
	return &Analysis{engine: e}
}

func (h *Analysis) HandleProgress(w http.ResponseWriter, r *http.Request) {
	var req progressRequest
	if err := decode(r, &req); err != nil {
		apperr.WriteError(w, err)
		return
	}

	xhttp.WriteOK(w, h.engine.AnalyzeProgress(req.Completed, req.Planned))
}

func (h *Analysis) HandleRecovery(w http.ResponseWriter, r *http.Request) {
	var req recoveryRequest
	if err := decode(r, &req); err != nil {
		apperr.WriteError(w, err)
		return
	}

	xhttp.WriteOK(w, h.engine.AssessRecoveryStatus(req.Completed, req.Metrics))
}

func (h *Analysis) HandleFatigue(w http.ResponseWriter, r *http.Request) {
	var req fatigueRequest
	if err := decode(r, &req); err != nil {
		apperr.WriteError(w, err)
		return
	}

	report := h.engine.DetectFatigueAndAdjust(req.Completed, req.Planned, req.Metrics)

	logger := xslog.FromContext(r.Context())
	logger.InfoContext(r.Context(), "fatigue assessed",
		xslog.FatigueLevel(string(report.Level)),
		xslog.Workouts(len(report.AdjustedWorkouts)),
	)

	xhttp.WriteOK(w, report)
}

func (h *Analysis) HandleRisk(w http.ResponseWriter, r *http.Request) {
	var req riskRequest
	if err := decode(r, &req); err != nil {
		apperr.WriteError(w, err)
		return
	}

	xhttp.WriteOK(w, h.engine.AssessOverreachingRisk(req.Completed, req.Planned))
}
