package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-transcript-keeper/internal/app"
	"github.com/MKhiriev/go-transcript-keeper/internal/logger"
	"github.com/MKhiriev/go-transcript-keeper/internal/service"
	"github.com/MKhiriev/go-transcript-keeper/internal/store"
	"github.com/MKhiriev/go-transcript-keeper/internal/utils"
	"github.com/MKhiriev/go-transcript-keeper/models"
)

var errorStatusMap = map[error]int{
	service.ErrValidation:            http.StatusBadRequest,
	service.ErrContractMismatch:      http.StatusBadRequest,
	service.ErrSenderRequired:        http.StatusUnauthorized,
	service.ErrAccessDenied:          http.StatusForbidden,
	service.ErrTxNotFound:            http.StatusNotFound,
	service.ErrCiphertextNotFound:    http.StatusNotFound,
	service.ErrDecryptionFailed:      http.StatusBadGateway,
	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,

	ErrInvalidJSON: http.StatusBadRequest,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

// errorReasonMap fixes the body reason of errors whose text must not vary.
var errorReasonMap = map[error]string{
	ErrInvalidJSON:                app.MsgInvalidDataProvided,
	service.ErrAccessDenied:       app.MsgAccessDenied,
	service.ErrTxNotFound:         app.MsgTxNotFound,
	service.ErrCiphertextNotFound: app.MsgCiphertextNotFound,
	service.ErrDecryptionFailed:   app.MsgDecryptionFailed,
}

func statusFromError(err error) int {
	var rev *service.RevertError
	if errors.As(err, &rev) {
		if rev.Reason == models.ReasonRecordNotFound {
			return http.StatusNotFound
		}
		return http.StatusConflict
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// reasonFromError is the body reason for err. Revert reasons travel
// verbatim; internal failures are not described to clients.
func reasonFromError(err error, status int) string {
	var rev *service.RevertError
	if errors.As(err, &rev) {
		return rev.Reason
	}
	if status == http.StatusInternalServerError {
		return app.MsgInternalServerError
	}
	for target, reason := range errorReasonMap {
		if errors.Is(err, target) {
			return reason
		}
	}
	return err.Error()
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Info().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, reasonFromError(err, status), status)
}
