package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-transcript-keeper/internal/utils"
	"github.com/MKhiriev/go-transcript-keeper/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	reason := responseReason(resp.Body())
	if err := mapRevertReason(reason); err != nil {
		return err
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, reason)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, reason)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, reason)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, reason)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, reason)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, reason)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", ErrServiceUnavailable, reason)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, reason)
	default:
		if reason == "" {
			reason = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), reason)
	}
}

// mapRevertReason maps a contract revert reason to a domain error. Unknown
// reasons return nil so that the caller can fall back to status mapping.
func mapRevertReason(reason string) error {
	switch {
	case reason == "":
		return nil
	case strings.Contains(reason, models.ReasonAlreadyVerified):
		return fmt.Errorf("%w: %s", ErrAlreadyVerified, reason)
	case strings.Contains(reason, models.ReasonInvalidProof),
		strings.Contains(reason, models.ReasonInvalidInputProof),
		strings.Contains(reason, models.ReasonHandleMismatch):
		return fmt.Errorf("%w: %s", ErrProofRejected, reason)
	case strings.Contains(reason, models.ReasonRecordNotFound):
		return fmt.Errorf("%w: %s", ErrNotFound, reason)
	default:
		return nil
	}
}

// revertError is mapRevertReason with a generic fallback.
func revertError(reason string) error {
	if err := mapRevertReason(reason); err != nil {
		return err
	}
	return fmt.Errorf("%w: %s", ErrTxReverted, reason)
}

func responseReason(body []byte) string {
	var er utils.ErrorResponse
	if err := json.Unmarshal(body, &er); err == nil && er.Reason != "" {
		return er.Reason
	}
	return strings.TrimSpace(string(body))
}
