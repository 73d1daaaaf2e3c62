package middleware

import (
	"net/http"

	"github.com/taperlab/taper/internal/apperr"
	"github.com/taperlab/taper/internal/xslog"
)

// Recovery converts panics into the standard JSON 500 envelope after logging
// the stack.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				xslog.FromContext(r.Context()).ErrorContext(
					r.Context(),
					"panic recovered",
					xslog.RequestGroup(r),
					xslog.ErrorGroupWithStack(err),
				)
				apperr.WriteError(w, apperr.Internal("internal_error", "an unexpected error occurred", nil))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
