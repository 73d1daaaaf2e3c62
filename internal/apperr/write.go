package apperr

import (
	"errors"
	"net/http"

	go_json "github.com/goccy/go-json"

	"github.com/taperlab/taper/internal/xhttp"
)

type errorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func WriteError(w http.ResponseWriter, err error) {
	appErr := AsError(err)
	if appErr == nil {
		var rlErr *RateLimitError
		if errors.As(err, &rlErr) {
			writeRateLimitError(w, rlErr)
			return
		}
		appErr = Internal("internal_error", "an unexpected error occurred", err)
	}

	xhttp.SetHeaderContentTypeApplicationJSON(w)
	w.WriteHeader(appErr.StatusCode)
	_ = go_json.NewEncoder(w).Encode(errorResponse{
		Error:   appErr.Code,
		Message: appErr.Message,
		Fields:  appErr.Fields,
	})
}

func writeRateLimitError(w http.ResponseWriter, err *RateLimitError) {
	xhttp.SetHeaderContentTypeApplicationJSON(w)
	if err.RetryAfter > 0 {
		xhttp.SetHeaderRetryAfter(w, err.RetryAfter)
	}
	if err.Reason != "" {
		w.Header().Set(xhttp.XRateLimitReason, err.Reason)
	}
	w.WriteHeader(err.StatusCode)
	_ = go_json.NewEncoder(w).Encode(errorResponse{
		Error:   err.Code,
		Message: err.Message,
	})
}
