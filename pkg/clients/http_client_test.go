package clients

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_Get(t *testing.T) {
	var gotAccept string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "image/png")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("png"))
	}))
	defer upstream.Close()

	client := NewHTTPClient()
	headers := http.Header{}
	headers.Set("Accept", "image/png")

	statusCode, body, respHeaders, err := client.Get(upstream.URL, headers)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, statusCode)
	assert.Equal(t, []byte("png"), body)
	assert.Equal(t, "image/png", respHeaders.Get("Content-Type"))
	assert.Equal(t, "image/png", gotAccept)
}

func TestHTTPClient_Get_NoHeaders(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer upstream.Close()

	client := NewHTTPClient()

	statusCode, _, _, err := client.Get(upstream.URL, nil)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, statusCode)
}

func TestHTTPClient_Get_UpstreamDown(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	client := NewHTTPClient()

	_, _, _, err := client.Get(upstream.URL, nil)

	assert.Error(t, err)
}

func TestHTTPClient_Get_BadURL(t *testing.T) {
	client := NewHTTPClient()

	_, _, _, err := client.Get("://bad-url", nil)

	assert.Error(t, err)
}
