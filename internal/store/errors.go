package store

import "errors"

// Domain errors returned by repositories. Match with [errors.Is].
var (
	// ErrRecordNotFound is returned when a record id is unknown.
	ErrRecordNotFound = errors.New("record not found")

	// ErrRecordExists is returned when creating a record whose id is taken.
	ErrRecordExists = errors.New("record already exists")

	// ErrRecordAlreadyVerified is returned when persisting a decryption for a
	// record that already carries one.
	ErrRecordAlreadyVerified = errors.New("record already verified")

	// ErrTxNotFound is returned when a transaction hash is unknown.
	ErrTxNotFound = errors.New("transaction not found")

	// ErrTxAlreadySettled is returned when settling a transaction that is no
	// longer pending.
	ErrTxAlreadySettled = errors.New("transaction already settled")

	// ErrCiphertextNotFound is returned when a handle is unknown to the
	// gateway.
	ErrCiphertextNotFound = errors.New("ciphertext not found")
)

// Low-level database operation errors, wrapped around the driver error.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to executing statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
)
