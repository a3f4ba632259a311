package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-transcript-keeper/internal/logger"
	"github.com/MKhiriev/go-transcript-keeper/internal/utils"
)

func TestWithResponseHash(t *testing.T) {
	t.Run("signs body and keeps status", func(t *testing.T) {
		h := &Handler{hasher: utils.NewHasher("k"), logger: logger.Nop()}
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			utils.WriteError(w, "Record does not exist", http.StatusNotFound)
		})

		rec := httptest.NewRecorder()
		h.withResponseHash(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.Equal(t, utils.HashString(rec.Body.String(), "k"), rec.Header().Get(utils.HashHeader))
	})

	t.Run("disabled without key", func(t *testing.T) {
		h := &Handler{logger: logger.Nop()}

		rec := httptest.NewRecorder()
		h.withResponseHash(echo).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Empty(t, rec.Header().Get(utils.HashHeader))
		assert.Equal(t, "got: ", rec.Body.String())
	})
}

// The digest must cover the uncompressed body the client sees after
// transparent decompression.
func TestRouter_HashCoversPlainBody(t *testing.T) {
	env := newTestEnv(t, "secret")
	env.contract.ids = []string{"r-1"}

	req := httptest.NewRequest(http.MethodGet, "/api/records", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := env.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	plain := gunzipBytes(t, rec.Body.Bytes())
	assert.JSONEq(t, `{"ids":["r-1"],"length":1}`, plain)
	assert.True(t, utils.NewHasher("secret").Verify([]byte(plain), rec.Header().Get(utils.HashHeader)))
}
