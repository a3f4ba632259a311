package adapter

import "errors"

// HTTP-level errors mapped from response status codes.
var (
	// ErrBadRequest is returned for HTTP 400.
	ErrBadRequest = errors.New("bad request")
	// ErrUnauthorized is returned for HTTP 401, e.g. an invalid wallet token.
	ErrUnauthorized = errors.New("client unauthorized")
	// ErrForbidden is returned for HTTP 403.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound is returned for HTTP 404.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned for HTTP 409 without a known revert reason.
	ErrConflict = errors.New("conflict")
	// ErrInternalServerError is returned for HTTP 500.
	ErrInternalServerError = errors.New("internal server error")
	// ErrBadGateway is returned for HTTP 502.
	ErrBadGateway = errors.New("bad gateway")
	// ErrServiceUnavailable is returned for HTTP 503.
	ErrServiceUnavailable = errors.New("service unavailable")
	// ErrIntegrityCheckFailed is returned when a response body does not
	// match its HashSHA256 header.
	ErrIntegrityCheckFailed = errors.New("response integrity check failed")
)

// Domain errors mapped from contract revert reasons and gateway state.
var (
	// ErrAlreadyVerified means another actor persisted the decryption first.
	ErrAlreadyVerified = errors.New("data already verified")
	// ErrProofRejected means the ledger refused a decryption or input proof.
	ErrProofRejected = errors.New("proof rejected")
	// ErrTxReverted is returned for any other revert.
	ErrTxReverted = errors.New("transaction reverted")
	// ErrWalletDeclined means the user refused to sign.
	ErrWalletDeclined = errors.New("user rejected transaction")
	// ErrGatewayNotInitialized is returned by gateway calls made before Init.
	ErrGatewayNotInitialized = errors.New("gateway not initialized")
)
