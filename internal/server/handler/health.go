package handler

import (
	"net/http"

	"github.com/taperlab/taper/internal/storage"
	"github.com/taperlab/taper/internal/version"
	"github.com/taperlab/taper/internal/xhttp"
	"github.com/taperlab/taper/internal/xslog"
)

type Health struct {
	backend storage.Backend
}

func NewHealth(backend storage.Backend) *Health {
	return &Health{backend: backend}
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func (h *Health) Handle(w http.ResponseWriter, r *http.Request) {
	if err := h.backend.Ping(r.Context()); err != nil {
		logger := xslog.FromContext(r.Context())
		logger.ErrorContext(r.Context(), "health check failed", xslog.Error(err))
		xhttp.WriteJSON(w, http.StatusServiceUnavailable, healthResponse{
			Status:  "unhealthy",
			Version: version.Get(),
		})
		return
	}

	xhttp.WriteOK(w, healthResponse{
		Status:  "ok",
		Version: version.Get(),
	})
}
