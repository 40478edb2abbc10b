package tiles

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxipark/robocab/pkg/clients"
)

func tileRequest(target, wildcard string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("*", wildcard)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

func TestTileHandler_Proxy(t *testing.T) {
	var gotPath, gotAuth string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("png"))
	}))
	defer upstream.Close()

	handler, err := New(upstream.URL, clients.NewHTTPClient())
	require.NoError(t, err)

	req := tileRequest("/api/tiles/3/4/5.png", "3/4/5.png")
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	handler.Proxy(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/3/4/5.png", gotPath)
	assert.Empty(t, gotAuth, "auth token must not leak to the tile server")
	assert.Equal(t, "png", rec.Body.String())
}

func TestTileHandler_Proxy_UpstreamDown(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	handler, err := New(upstream.URL, clients.NewHTTPClient())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	handler.Proxy(rec, tileRequest("/api/tiles/0/0/0.png", "0/0/0.png"))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestTileHandler_Health(t *testing.T) {
	tests := []struct {
		name         string
		upstreamCode int
		stopUpstream bool
		wantStatus   int
	}{
		{
			name:         "Healthy upstream",
			upstreamCode: http.StatusOK,
			wantStatus:   http.StatusOK,
		},
		{
			name:         "Upstream errors",
			upstreamCode: http.StatusInternalServerError,
			wantStatus:   http.StatusBadGateway,
		},
		{
			name:         "Upstream unreachable",
			stopUpstream: true,
			wantStatus:   http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.upstreamCode)
			}))
			if tt.stopUpstream {
				upstream.Close()
			} else {
				defer upstream.Close()
			}

			handler, err := New(upstream.URL, clients.NewHTTPClient())
			require.NoError(t, err)

			rec := httptest.NewRecorder()
			handler.Health(rec, httptest.NewRequest(http.MethodGet, "/api/tiles/health", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestNew_BadURL(t *testing.T) {
	_, err := New("://bad-url", clients.NewHTTPClient())
	assert.Error(t, err)
}
