package middleware

import (
	"log/slog"
	"net/http"

	"github.com/taperlab/taper/internal/xcontext"
	"github.com/taperlab/taper/internal/xhttp"
	"github.com/taperlab/taper/internal/xslog"
)

// Logger injects a request-scoped logger carrying the request ID and client
// IP. Must run AFTER RequestID middleware.
func Logger(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := base.With(xslog.IP(xhttp.GetRequestIP(r)))
			if id, ok := xcontext.GetRequestID(r.Context()); ok {
				logger = logger.With(xslog.RequestID(id))
			}
			ctx := xslog.WithLogger(r.Context(), logger)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
