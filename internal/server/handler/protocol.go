package handler

import (
	"net/http"

	"github.com/taperlab/taper/internal/apperr"
	"github.com/taperlab/taper/internal/engine"
	"github.com/taperlab/taper/internal/xhttp"
)

// Protocol exposes recovery-protocol generation.
type Protocol struct {
	engine *engine.Engine
}

func NewProtocol(e *engine.Engine) *Protocol {
	return &Protocol{engine: e}
}

func (h *Protocol) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req protocolRequest
	if err := decode(r, &req); err != nil {
		apperr.WriteError(w, err)
		return
	}

	xhttp.WriteOK(w, h.engine.CreateRecoveryProtocol(req.Condition, req.Severity, req.AffectedArea))
}
