package service

import "errors"

// Failure classes of lifecycle operations. Every error returned by the
// record controller wraps exactly one of them; see [Classify].
var (
	// ErrValidation is returned before any network call when user input is
	// out of range.
	ErrValidation = errors.New("validation failed")

	// ErrWalletDeclined means the user refused to sign a ledger write.
	ErrWalletDeclined = errors.New("wallet declined")

	// ErrGatewayUnavailable means the encryption or decryption gateway could
	// not serve the request.
	ErrGatewayUnavailable = errors.New("gateway unavailable")

	// ErrProofRejected means the ledger refused an input or decryption proof.
	ErrProofRejected = errors.New("proof rejected")

	// ErrNetworkOrLedger covers transport failures and any other ledger
	// rejection.
	ErrNetworkOrLedger = errors.New("network or ledger failure")

	// ErrTimeout means the caller's deadline expired. The operation may be
	// retried.
	ErrTimeout = errors.New("operation timed out")

	// ErrInFlight is returned when another operation on the same record has
	// not finished yet.
	ErrInFlight = errors.New("operation already in flight")

	// ErrRecordNotFound is returned for ids unknown to the store and the
	// ledger.
	ErrRecordNotFound = errors.New("record not found")

	// ErrVersionIsNotSpecified is returned by [NewAppInfoService].
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Ledger daemon errors.
var (
	// ErrSenderRequired is returned for writes without an authenticated
	// wallet in the context.
	ErrSenderRequired = errors.New("sender is required")

	// ErrAccessDenied means the sender may not read a ciphertext.
	ErrAccessDenied = errors.New("access denied")

	ErrTxNotFound         = errors.New("transaction not found")
	ErrCiphertextNotFound = errors.New("ciphertext not found")

	// ErrDecryptionFailed means a stored ciphertext could not be opened.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrContractMismatch is returned for requests scoped to a contract the
	// daemon does not serve.
	ErrContractMismatch = errors.New("unknown contract address")
)

// RevertError is a contract call rejected by the contract itself. Reason is
// one of the models.Reason* values and is returned to clients verbatim.
type RevertError struct {
	Reason string
}

func (e *RevertError) Error() string {
	return "execution reverted: " + e.Reason
}

func revert(reason string) error {
	return &RevertError{Reason: reason}
}
