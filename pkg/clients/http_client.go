package clients

import (
	"errors"
	"io"
	"net/http"
	"time"
)

// Tiles are small; a slow upstream is treated the same as a dead one.
const probeTimeout = time.Second * 10

var ErrCloseResponseBody = errors.New("close response body")

// HTTPClient is a timeout-wrapped client for probing the tile upstream.
type HTTPClient struct {
	client *http.Client
}

func NewHTTPClient() *HTTPClient {
	return &HTTPClient{
		client: &http.Client{Timeout: probeTimeout},
	}
}

// Get issues a GET against the upstream and reads the whole body so the
// underlying connection can be reused.
func (h *HTTPClient) Get(url string, headers http.Header) (statusCode int, respBody []byte, respHeaders http.Header, err error) {
	req, err := http.NewRequest(http.MethodGet, url, http.NoBody)
	if err != nil {
		return 0, nil, nil, err
	}
	if headers != nil {
		req.Header = headers
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return 0, nil, nil, err
	}
	defer func() {
		if e := resp.Body.Close(); e != nil {
			err = errors.Join(err, ErrCloseResponseBody)
		}
	}()

	respBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, nil, err
	}

	return resp.StatusCode, respBody, resp.Header, nil
}
