package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticAssets(t *testing.T) {
	r := newTestRouter(t, newFakeRepo(), nil, nil)

	tests := []struct {
		path     string
		contains string
	}{
		{"/static/js/app.js", "serviceWorker"},
		{"/static/js/nota-utils.js", "/api/send-wa"},
		{"/static/js/kasir.js", "client_tx_id"},
		{"/service-worker.js", "/static/js/kasir.js"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			// No session needed, the shell must load offline before login
			w := do(t, r, http.MethodGet, tt.path, "", 0)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Header().Get("Content-Type"), "javascript")
			assert.Contains(t, w.Body.String(), tt.contains)
		})
	}

	w := do(t, r, http.MethodGet, "/static/js/missing.js", "", 0)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
