package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestAsError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want *Error
	}{
		{
			name: "direct app error",
			err:  NotFound("not_found", "no such endpoint"),
			want: &Error{Code: "not_found", Message: "no such endpoint", StatusCode: http.StatusNotFound},
		},
		{
			name: "wrapped app error",
			err:  fmt.Errorf("handling request: %w", BadRequest("invalid_json", "malformed body")),
			want: &Error{Code: "invalid_json", Message: "malformed body", StatusCode: http.StatusBadRequest},
		},
		{
			name: "plain error",
			err:  errors.New("boom"),
			want: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := AsError(tt.err)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("AsError() = %+v, want nil", got)
				}
				return
			}
			if got == nil {
				t.Fatalf("AsError() = nil, want %+v", tt.want)
			}
			if got.Code != tt.want.Code || got.StatusCode != tt.want.StatusCode {
				t.Errorf("AsError() = {%s %d}, want {%s %d}", got.Code, got.StatusCode, tt.want.Code, tt.want.StatusCode)
			}
		})
	}
}

func TestWriteError(t *testing.T) {
	t.Parallel()

	t.Run("app error keeps its status", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()

		WriteError(rec, NotFound("not_found", "no such endpoint"))

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "not_found") {
			t.Errorf("body = %q, want error code not_found", rec.Body.String())
		}
	})

	t.Run("unknown error becomes 500", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()

		WriteError(rec, errors.New("boom"))

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "internal_error") {
			t.Errorf("body = %q, want error code internal_error", rec.Body.String())
		}
	})
}
