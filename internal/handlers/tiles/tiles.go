package tiles

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/taxipark/robocab/pkg/clients"
	"github.com/taxipark/robocab/pkg/utils"
)

// TileHandler proxies map tile requests to the configured upstream so the
// client never talks to the tile server directly.
type TileHandler struct {
	upstream *url.URL
	proxy    *httputil.ReverseProxy
	client   *clients.HTTPClient
}

func New(tileServerURL string, client *clients.HTTPClient) (*TileHandler, error) {
	upstream, err := url.Parse(tileServerURL)
	if err != nil {
		return nil, fmt.Errorf("can't parse tile server url: %w", err)
	}

	proxy := httputil.NewSingleHostReverseProxy(upstream)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		zap.L().Error("tile proxy error", zap.Error(err))
		w.WriteHeader(http.StatusBadGateway)
	}

	return &TileHandler{
		upstream: upstream,
		proxy:    proxy,
		client:   client,
	}, nil
}

// Proxy godoc
//
//	@Summary		Proxy a map tile
//	@Description	Pass-through to the upstream tile server.
//	@Tags			Карта
//	@Produce		png
//	@Success		200	{file}		binary
//	@Failure		502	{object}	utils.Response	"Tile server unreachable"
//	@Router			/api/tiles/{z}/{x}/{y} [get]
func (h *TileHandler) Proxy(w http.ResponseWriter, r *http.Request) {
	r.URL.Path = "/" + chi.URLParam(r, "*")
	r.Header.Del("Authorization")
	h.proxy.ServeHTTP(w, r)
}

// Health godoc
//
//	@Summary		Tile server health
//	@Description	Checks that the upstream tile server answers.
//	@Tags			Карта
//	@Produce		json
//	@Success		200	{object}	utils.Response
//	@Failure		502	{object}	utils.Response	"Tile server unreachable"
//	@Router			/api/tiles/health [get]
func (h *TileHandler) Health(w http.ResponseWriter, r *http.Request) {
	statusCode, _, _, err := h.client.Get(h.upstream.String()+"/0/0/0.png", nil)
	if err != nil || statusCode >= http.StatusInternalServerError {
		zap.L().Warn("tile server health check failed", zap.Int("status", statusCode), zap.Error(err))
		utils.RespondWithError(w, http.StatusBadGateway, "Tile server unreachable")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "ok"})
}
