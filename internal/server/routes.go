package server

import (
	"net/http"

	"github.com/taperlab/taper/internal/apperr"
	"github.com/taperlab/taper/internal/server/handler"
)

// NewMux registers every route with its method-qualified pattern.
func NewMux(analysis *handler.Analysis, plans *handler.Plan, protocols *handler.Protocol, health *handler.Health) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/analysis/progress", analysis.HandleProgress)
	mux.HandleFunc("POST /api/analysis/recovery", analysis.HandleRecovery)
	mux.HandleFunc("POST /api/analysis/fatigue", analysis.HandleFatigue)
	mux.HandleFunc("POST /api/analysis/risk", analysis.HandleRisk)

	mux.HandleFunc("POST /api/plan/suggest", plans.HandleSuggest)
	mux.HandleFunc("POST /api/plan/apply", plans.HandleApply)

	mux.HandleFunc("POST /api/recovery/protocol", protocols.HandleCreate)

	mux.HandleFunc("GET /health", health.Handle)

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		apperr.WriteError(w, apperr.NotFound("not_found", "no such endpoint"))
	})

	return mux
}
