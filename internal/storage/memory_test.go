package storage

import (
	"context"
	"testing"
)

func TestMemoryBackendAllow(t *testing.T) {
	t.Parallel()

	t.Run("allows up to burst then denies", func(t *testing.T) {
		t.Parallel()
		m := NewMemoryBackend(0.0001, 3)
		defer m.Close()

		ctx := context.Background()
		for i := 0; i < 3; i++ {
			result, err := m.Allow(ctx, "client-a")
			if err != nil {
				t.Fatalf("Allow() error = %v", err)
			}
			if !result.Allowed {
				t.Fatalf("request %d denied inside burst", i+1)
			}
		}

		result, err := m.Allow(ctx, "client-a")
		if err != nil {
			t.Fatalf("Allow() error = %v", err)
		}
		if result.Allowed {
			t.Error("request beyond burst was allowed")
		}
		if result.RetryAfter <= 0 {
			t.Errorf("RetryAfter = %v, want a positive backoff", result.RetryAfter)
		}
	})

	t.Run("keys are isolated", func(t *testing.T) {
		t.Parallel()
		m := NewMemoryBackend(0.0001, 1)
		defer m.Close()

		ctx := context.Background()
		if result, _ := m.Allow(ctx, "client-a"); !result.Allowed {
			t.Fatal("first request for client-a denied")
		}
		if result, _ := m.Allow(ctx, "client-a"); result.Allowed {
			t.Fatal("second request for client-a should be denied")
		}
		if result, _ := m.Allow(ctx, "client-b"); !result.Allowed {
			t.Error("client-b should have its own budget")
		}
	})
}

func TestMemoryBackendPing(t *testing.T) {
	t.Parallel()

	m := NewMemoryBackend(1, 1)
	defer m.Close()

	if err := m.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
}
