package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-transcript-keeper/internal/logger"
	"github.com/MKhiriev/go-transcript-keeper/internal/utils"
	"github.com/MKhiriev/go-transcript-keeper/models"
)

func (h *Handler) listRecordIDs(w http.ResponseWriter, r *http.Request) {
	ids, err := h.services.ContractService.ListRecordIDs(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}

	writeJSON(w, r, models.RecordIDsResponse{IDs: ids, Length: len(ids)}, http.StatusOK)
}

func (h *Handler) getRecord(w http.ResponseWriter, r *http.Request) {
	record, err := h.services.ContractService.GetRecord(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, record, http.StatusOK)
}

func (h *Handler) getHandle(w http.ResponseWriter, r *http.Request) {
	handle, err := h.services.ContractService.GetHandle(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, models.HandleResponse{Handle: handle}, http.StatusOK)
}

func (h *Handler) isAvailable(w http.ResponseWriter, r *http.Request) {
	available := h.services.ContractService.IsAvailable(r.Context())
	writeJSON(w, r, models.AvailabilityResponse{Available: available}, http.StatusOK)
}

func (h *Handler) getTx(w http.ResponseWriter, r *http.Request) {
	receipt, err := h.services.ContractService.GetTx(r.Context(), chi.URLParam(r, "hash"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, receipt, http.StatusOK)
}

// createRecord queues a create call and answers 202 with the pending
// receipt. The client polls /api/tx/{hash} for the outcome.
func (h *Handler) createRecord(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeServiceError(w, r, ErrInvalidJSON)
		return
	}

	receipt, err := h.services.ContractService.SubmitCreate(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, receipt, http.StatusAccepted)
}

func (h *Handler) verifyRecord(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyDecryptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeServiceError(w, r, ErrInvalidJSON)
		return
	}

	// the path names the record; a body naming another one is rejected
	id := chi.URLParam(r, "id")
	if req.ID == "" {
		req.ID = id
	}
	if req.ID != id {
		utils.WriteError(w, "record id does not match path", http.StatusBadRequest)
		return
	}

	receipt, err := h.services.ContractService.SubmitVerify(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, receipt, http.StatusAccepted)
}

func writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write response")
	}
}
