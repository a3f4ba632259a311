package http

import (
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-transcript-keeper/internal/logger"
	"github.com/MKhiriev/go-transcript-keeper/internal/metrics"
	"github.com/MKhiriev/go-transcript-keeper/internal/service"
	"github.com/MKhiriev/go-transcript-keeper/internal/utils"
	"github.com/MKhiriev/go-transcript-keeper/models"
)

// ---- stubs ----

type stubContract struct {
	submitCreate func(ctx context.Context, req models.CreateRecordRequest) (models.TxReceipt, error)
	submitVerify func(ctx context.Context, req models.VerifyDecryptionRequest) (models.TxReceipt, error)
	ids          []string
	idsErr       error
	record       models.LedgerRecord
	recordErr    error
	receipt      models.TxReceipt
	receiptErr   error
	available    bool
}

func (s *stubContract) SubmitCreate(ctx context.Context, req models.CreateRecordRequest) (models.TxReceipt, error) {
	if s.submitCreate == nil {
		return models.TxReceipt{Hash: "0xcreate", Kind: models.TxCreateRecord, Status: models.TxPending}, nil
	}
	return s.submitCreate(ctx, req)
}

func (s *stubContract) SubmitVerify(ctx context.Context, req models.VerifyDecryptionRequest) (models.TxReceipt, error) {
	if s.submitVerify == nil {
		return models.TxReceipt{Hash: "0xverify", Kind: models.TxVerifyDecryption, Status: models.TxPending}, nil
	}
	return s.submitVerify(ctx, req)
}

func (s *stubContract) ListRecordIDs(context.Context) ([]string, error) { return s.ids, s.idsErr }

func (s *stubContract) GetRecord(_ context.Context, id string) (models.LedgerRecord, error) {
	if s.recordErr != nil {
		return models.LedgerRecord{}, s.recordErr
	}
	r := s.record
	r.ID = id
	return r, nil
}

func (s *stubContract) GetHandle(_ context.Context, _ string) (string, error) {
	return s.record.EncryptedValue, s.recordErr
}

func (s *stubContract) GetTx(context.Context, string) (models.TxReceipt, error) {
	return s.receipt, s.receiptErr
}

func (s *stubContract) IsAvailable(context.Context) bool { return s.available }

func (s *stubContract) MineBlock(context.Context) (int, error) { return 0, nil }

type stubGateway struct {
	encrypt       func(ctx context.Context, req models.EncryptRequest) (models.EncryptedInput, error)
	publicDecrypt func(ctx context.Context, req models.PublicDecryptRequest) (models.DecryptionResult, error)
	userDecrypt   func(ctx context.Context, req models.UserDecryptRequest) (models.UserDecryptResponse, error)
}

func (s *stubGateway) Params(context.Context) models.GatewayParams {
	return models.GatewayParams{KeyID: "key-1", ChainID: 31337}
}

func (s *stubGateway) Encrypt(ctx context.Context, req models.EncryptRequest) (models.EncryptedInput, error) {
	return s.encrypt(ctx, req)
}

func (s *stubGateway) PublicDecrypt(ctx context.Context, req models.PublicDecryptRequest) (models.DecryptionResult, error) {
	return s.publicDecrypt(ctx, req)
}

func (s *stubGateway) UserDecrypt(ctx context.Context, req models.UserDecryptRequest) (models.UserDecryptResponse, error) {
	return s.userDecrypt(ctx, req)
}

type stubAppInfo struct {
	version string
}

func (s *stubAppInfo) GetAppVersion(context.Context) string { return s.version }

func (s *stubAppInfo) GetBuildInfo(context.Context) models.AppBuildInfo {
	return models.NewAppBuildInfo(s.version, "2026-10-01", "abc123")
}

// ---- helpers ----

const testWalletSeed = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

type testEnv struct {
	contract *stubContract
	gateway  *stubGateway
	metrics  *metrics.Metrics
	handler  *Handler
	router   http.Handler
}

func newTestEnv(t *testing.T, hashKey string) *testEnv {
	t.Helper()

	env := &testEnv{
		contract: &stubContract{available: true},
		gateway:  &stubGateway{},
		metrics:  metrics.New(),
	}
	env.handler = NewHandler(&service.Services{
		AppInfoService:  &stubAppInfo{version: "1.2.3"},
		ContractService: env.contract,
		GatewayService:  env.gateway,
	}, hashKey, env.metrics, logger.Nop())
	env.router = env.handler.Init()

	return env
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// signedRequest builds a POST carrying a wallet token for body. It returns
// the request and the signer's address.
func signedRequest(t *testing.T, path, body string) (*http.Request, string) {
	t.Helper()

	key, err := utils.WalletKeyFromSeed(testWalletSeed)
	require.NoError(t, err)
	token, err := utils.GenerateWalletToken(key, []byte(body), time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	return req, utils.AddressFromPublicKey(key.Public().(ed25519.PublicKey))
}

// ---- NewHandler ----

func TestNewHandler_HashKey(t *testing.T) {
	withoutKey := NewHandler(&service.Services{}, "", nil, logger.Nop())
	assert.Nil(t, withoutKey.hasher)

	withKey := NewHandler(&service.Services{}, "secret", nil, logger.Nop())
	require.NotNil(t, withKey.hasher)
	assert.Equal(t, utils.HashString("x", "secret"), hex.EncodeToString(withKey.hasher.Hash([]byte("x"))))
}

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	m := metrics.New()
	log := logger.Nop()

	h := NewHandler(svc, "", m, log)

	assert.Same(t, svc, h.services)
	assert.Same(t, m, h.metrics)
	assert.Same(t, log, h.logger)
}
