package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/taperlab/taper/internal/engine"
	"github.com/taperlab/taper/internal/server/handler"
	"github.com/taperlab/taper/internal/storage"
)

func testMux(t *testing.T) *http.ServeMux {
	t.Helper()

	e := engine.New(engine.DefaultConfig())
	backend := storage.NewMemoryBackend(10, 20)
	t.Cleanup(func() { _ = backend.Close() })

	return NewMux(
		handler.NewAnalysis(e),
		handler.NewPlan(e),
		handler.NewProtocol(e),
		handler.NewHealth(backend),
	)
}

func TestMuxUnknownRoute(t *testing.T) {
	t.Parallel()

	mux := testMux(t)

	for _, target := range []string{"/api/nope", "/api/plan/suggest/extra"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("%s: status = %d, want 404", target, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "not_found") {
			t.Errorf("%s: body = %q, want error code not_found", target, rec.Body.String())
		}
	}
}
