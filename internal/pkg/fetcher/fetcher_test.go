package fetcher

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webext-tools/png-saver/internal/entity"
)

func newImageServer() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/image.jpg", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write([]byte{0xFF, 0xD8, 0xFF, 0xE0})
	})
	mux.HandleFunc("/missing.jpg", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	mux.HandleFunc("/error.jpg", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	return httptest.NewServer(mux)
}

func TestFetchSuccess(t *testing.T) {
	server := newImageServer()
	defer server.Close()

	body, contentType, err := New(5*time.Second).Fetch(server.URL + "/image.jpg")
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", contentType)
	assert.Equal(t, []byte{0xFF, 0xD8, 0xFF, 0xE0}, body)
}

func TestFetchBadStatus(t *testing.T) {
	server := newImageServer()
	defer server.Close()

	tests := []struct {
		name string
		path string
	}{
		{name: "not found", path: "/missing.jpg"},
		{name: "server error", path: "/error.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := New(5*time.Second).Fetch(server.URL + tt.path)
			require.Error(t, err)
			assert.ErrorIs(t, err, entity.ErrFetch)
		})
	}
}

func TestFetchNetworkFailure(t *testing.T) {
	server := newImageServer()
	url := server.URL + "/image.jpg"
	server.Close()

	_, _, err := New(time.Second).Fetch(url)
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrFetch)
}
