package handler

import (
	"net/http"

	"github.com/taperlab/taper/internal/apperr"
	"github.com/taperlab/taper/internal/engine"
	"github.com/taperlab/taper/internal/plan"
	"github.com/taperlab/taper/internal/xhttp"
	"github.com/taperlab/taper/internal/xslog"
)

// Plan exposes the adaptation operations: suggesting modifications and
// applying an accepted set to a plan.
type Plan struct {
	engine *engine.Engine
}

func NewPlan(e *engine.Engine) *Plan {
	return &Plan{engine: e}
}

type suggestResponse struct {
	NeedsAdaptation bool                      `json:"needs_adaptation"`
	Progress        engine.ProgressData       `json:"progress"`
	Modifications   []engine.PlanModification `json:"modifications"`
}

func (h *Plan) HandleSuggest(w http.ResponseWriter, r *http.Request) {
	var req suggestRequest
	if err := decode(r, &req); err != nil {
		apperr.WriteError(w, err)
		return
	}

	progress := h.engine.AnalyzeProgress(req.Completed, req.Plan.Workouts)
	mods := h.engine.SuggestModifications(req.Plan, progress, req.Metrics)

	logger := xslog.FromContext(r.Context())
	logger.InfoContext(r.Context(), "plan modifications suggested",
		xslog.PlanID(req.Plan.ID),
		xslog.Modifications(len(mods)),
	)

	xhttp.WriteOK(w, suggestResponse{
		NeedsAdaptation: h.engine.NeedsAdaptation(progress, req.Metrics),
		Progress:        progress,
		Modifications:   mods,
	})
}

type applyResponse struct {
	Plan plan.TrainingPlan `json:"plan"`
}

func (h *Plan) HandleApply(w http.ResponseWriter, r *http.Request) {
	var req applyRequest
	if err := decode(r, &req); err != nil {
		apperr.WriteError(w, err)
		return
	}

	updated := h.engine.ApplyModifications(req.Plan, req.Modifications)

	logger := xslog.FromContext(r.Context())
	logger.InfoContext(r.Context(), "plan modifications applied",
		xslog.PlanID(req.Plan.ID),
		xslog.Modifications(len(req.Modifications)),
		xslog.Workouts(len(updated.Workouts)),
	)

	xhttp.WriteOK(w, applyResponse{Plan: updated})
}
