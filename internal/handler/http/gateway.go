package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-transcript-keeper/models"
)

func (h *Handler) gatewayKeys(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.services.GatewayService.Params(r.Context()), http.StatusOK)
}

func (h *Handler) encrypt(w http.ResponseWriter, r *http.Request) {
	var req models.EncryptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeServiceError(w, r, ErrInvalidJSON)
		return
	}

	input, err := h.services.GatewayService.Encrypt(r.Context(), req)
	h.metrics.IncrementGatewayOp("encrypt", err == nil)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, input, http.StatusOK)
}

func (h *Handler) publicDecrypt(w http.ResponseWriter, r *http.Request) {
	var req models.PublicDecryptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeServiceError(w, r, ErrInvalidJSON)
		return
	}

	result, err := h.services.GatewayService.PublicDecrypt(r.Context(), req)
	h.metrics.IncrementGatewayOp("public_decrypt", err == nil)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, result, http.StatusOK)
}

// userDecrypt runs behind walletAuth; the service checks the signer owns
// every requested handle.
func (h *Handler) userDecrypt(w http.ResponseWriter, r *http.Request) {
	var req models.UserDecryptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeServiceError(w, r, ErrInvalidJSON)
		return
	}

	resp, err := h.services.GatewayService.UserDecrypt(r.Context(), req)
	h.metrics.IncrementGatewayOp("user_decrypt", err == nil)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, resp, http.StatusOK)
}
