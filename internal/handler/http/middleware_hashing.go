package http

import (
	"bytes"
	"net/http"

	"github.com/MKhiriev/go-transcript-keeper/internal/utils"
)

// withResponseHash buffers the response and signs the plain body with the
// HashSHA256 header. It must run inside withGZip so the digest covers the
// uncompressed bytes the client verifies.
func (h *Handler) withResponseHash(next http.Handler) http.Handler {
	if h.hasher == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bw := &bufferedResponseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(bw, r)

		body := bw.buf.Bytes()
		w.Header().Set(utils.HashHeader, h.hasher.HashHex(body))
		w.WriteHeader(bw.status)
		if _, err := w.Write(body); err != nil {
			h.logger.Err(err).Str("func", "*Handler.withResponseHash").Msg("failed to write signed response")
		}
	})
}

// bufferedResponseWriter holds the status and body until the handler
// returns. Headers go straight to the underlying writer.
type bufferedResponseWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (w *bufferedResponseWriter) WriteHeader(statusCode int) {
	w.status = statusCode
}

func (w *bufferedResponseWriter) Write(b []byte) (int, error) {
	return w.buf.Write(b)
}
