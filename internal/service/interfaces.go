package service

import (
	"context"

	"github.com/MKhiriev/go-transcript-keeper/models"
)

// ContractService executes the transcript contract inside the ledger daemon.
// Writes are queued as pending transactions and applied by MineBlock.
type ContractService interface {
	// SubmitCreate queues a create call signed by the sender in ctx.
	SubmitCreate(ctx context.Context, req models.CreateRecordRequest) (models.TxReceipt, error)
	// SubmitVerify queues a verify call signed by the sender in ctx.
	SubmitVerify(ctx context.Context, req models.VerifyDecryptionRequest) (models.TxReceipt, error)

	ListRecordIDs(ctx context.Context) ([]string, error)
	GetRecord(ctx context.Context, id string) (models.LedgerRecord, error)
	GetHandle(ctx context.Context, id string) (string, error)
	GetTx(ctx context.Context, hash string) (models.TxReceipt, error)

	// IsAvailable reports whether the contract state can be served.
	IsAvailable(ctx context.Context) bool

	// MineBlock applies pending transactions in submission order and
	// returns how many were settled.
	MineBlock(ctx context.Context) (int, error)
}

// GatewayService is the development relayer: it encrypts inputs for the
// contract and decrypts stored ciphertexts, publicly with a proof or
// privately for their owner.
type GatewayService interface {
	Params(ctx context.Context) models.GatewayParams
	Encrypt(ctx context.Context, req models.EncryptRequest) (models.EncryptedInput, error)
	PublicDecrypt(ctx context.Context, req models.PublicDecryptRequest) (models.DecryptionResult, error)
	// UserDecrypt requires the sender in ctx to own every handle.
	UserDecrypt(ctx context.Context, req models.UserDecryptRequest) (models.UserDecryptResponse, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// ContractServiceWrapper defines middleware composition for ContractService.
// Implementations wrap an existing ContractService to add behavior such as
// validation.
type ContractServiceWrapper interface {
	Wrap(ContractService) ContractService
}
