package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHealth bool

func (h stubHealth) Healthy(ctx context.Context) bool { return bool(h) }

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("CORS_ORIGINS", "")
		t.Setenv("USE_HTTP2", "")
		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Port)
		assert.False(t, cfg.UseHttp2)
		assert.Equal(t, []string{"*"}, cfg.CorsOrigins)
	})

	t.Run("custom", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("CORS_ORIGINS", " http://a.com , ,http://b.com")
		t.Setenv("USE_HTTP2", "true")
		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.Port)
		assert.True(t, cfg.UseHttp2)
		assert.Equal(t, []string{"http://a.com", "http://b.com"}, cfg.CorsOrigins)
	})

	t.Run("invalid port", func(t *testing.T) {
		for _, port := range []string{"abc", "0", "70000"} {
			t.Setenv("PORT", port)
			_, err := LoadConfig()
			assert.Error(t, err, "port %s", port)
		}
	})
}

func TestSetupHealthChecks(t *testing.T) {
	tests := []struct {
		name   string
		health stubHealth
		want   int
	}{
		{name: "healthy", health: true, want: http.StatusOK},
		{name: "unhealthy", health: false, want: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(&Config{Port: "8080", CorsOrigins: []string{"*"}}, tt.health).
				SetupMiddlewares().
				SetupErrorHandler().
				SetupHealthChecks("/health")
			defer s.stop()

			rec := httptest.NewRecorder()
			s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
