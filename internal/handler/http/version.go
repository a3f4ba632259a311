package http

import (
	"net/http"
)

// getServerVersion answers with the plain-text daemon version.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Header().Set("X-Build-Commit", h.services.AppInfoService.GetBuildInfo(r.Context()).BuildCommit())
	if _, err := w.Write([]byte(serverVersion)); err != nil {
		h.logger.Err(err).Str("func", "*Handler.getServerVersion").Msg("failed to write version")
	}
}
