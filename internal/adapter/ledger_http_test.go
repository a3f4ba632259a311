// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-transcript-keeper/internal/config"
	"github.com/MKhiriev/go-transcript-keeper/internal/logger"
	"github.com/MKhiriev/go-transcript-keeper/internal/utils"
	"github.com/MKhiriev/go-transcript-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSeed = "0101010101010101010101010101010101010101010101010101010101010101"

func newTestSigner(t *testing.T, approver Approver) Signer {
	t.Helper()
	s, err := NewWalletSigner(testSeed, approver, logger.Nop())
	require.NoError(t, err)
	return s
}

func newTestLedger(t *testing.T, serverURL, hashKey string, signer Signer) LedgerClient {
	t.Helper()
	adapterCfg := config.ClientAdapter{
		LedgerURL:           serverURL,
		RequestTimeout:      time.Second,
		ConfirmPollInterval: 5 * time.Millisecond,
	}
	a, err := NewHTTPLedgerAdapter(adapterCfg, config.ClientApp{HashKey: hashKey}, signer, logger.Nop())
	require.NoError(t, err)
	return a
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNewHTTPLedgerAdapter_InvalidURL(t *testing.T) {
	_, err := NewHTTPLedgerAdapter(config.ClientAdapter{LedgerURL: "  "}, config.ClientApp{}, newTestSigner(t, nil), logger.Nop())
	assert.Error(t, err)
}

// ── reads ───────────────────────────────────────────────────────────────────

func TestListRecordIDs_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/records", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.RecordIDsResponse{IDs: []string{"course-1", "course-2"}, Length: 2})
	}))
	defer srv.Close()

	ids, err := newTestLedger(t, srv.URL, "", newTestSigner(t, nil)).ListRecordIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"course-1", "course-2"}, ids)
}

func TestGetRecord_Success(t *testing.T) {
	want := models.LedgerRecord{ID: "course-1", Name: "Algebra", PublicValue1: 3, IsVerified: true, DecryptedValue: 91}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/records/course-1", r.URL.Path)
		writeJSON(t, w, http.StatusOK, want)
	}))
	defer srv.Close()

	got, err := newTestLedger(t, srv.URL, "", newTestSigner(t, nil)).GetRecord(context.Background(), "course-1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetRecord_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, models.ReasonRecordNotFound, http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestLedger(t, srv.URL, "", newTestSigner(t, nil)).GetRecord(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetCiphertextHandle_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/records/course-1/handle", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.HandleResponse{Handle: "0xhandle"})
	}))
	defer srv.Close()

	handle, err := newTestLedger(t, srv.URL, "", newTestSigner(t, nil)).GetCiphertextHandle(context.Background(), "course-1")
	require.NoError(t, err)
	assert.Equal(t, "0xhandle", handle)
}

func TestIsServiceAvailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.AvailabilityResponse{Available: true})
	}))
	defer srv.Close()

	ok, err := newTestLedger(t, srv.URL, "", newTestSigner(t, nil)).IsServiceAvailable(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsServiceAvailable_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := newTestLedger(t, srv.URL, "", newTestSigner(t, nil)).IsServiceAvailable(context.Background())
	assert.Error(t, err)
}

// ── integrity ───────────────────────────────────────────────────────────────

func TestReads_VerifyResponseHash(t *testing.T) {
	hasher := utils.NewHasher("hk")
	tamper := atomic.Bool{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := json.Marshal(models.AvailabilityResponse{Available: true})
		digest := hasher.HashHex(body)
		if tamper.Load() {
			digest = hasher.HashHex([]byte("something else"))
		}
		w.Header().Set(utils.HashHeader, digest)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	ledger := newTestLedger(t, srv.URL, "hk", newTestSigner(t, nil))

	ok, err := ledger.IsServiceAvailable(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)

	tamper.Store(true)
	_, err = ledger.IsServiceAvailable(context.Background())
	assert.ErrorIs(t, err, ErrIntegrityCheckFailed)
}

// ── writes ──────────────────────────────────────────────────────────────────

// ledgerServer accepts one write and reports the receipt as pending for
// pendingPolls polls before settling to final.
func ledgerServer(t *testing.T, final models.TxReceipt, pendingPolls int32) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	polls := &atomic.Int32{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost:
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)

			token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
			require.NoError(t, err)
			_, err = utils.ValidateWalletToken(token, body)
			require.NoError(t, err)

			writeJSON(t, w, http.StatusAccepted, models.TxReceipt{Hash: final.Hash, Status: models.TxPending})
		case strings.HasPrefix(r.URL.Path, "/api/tx/"):
			assert.Equal(t, "/api/tx/"+final.Hash, r.URL.Path)
			if polls.Add(1) <= pendingPolls {
				writeJSON(t, w, http.StatusOK, models.TxReceipt{Hash: final.Hash, Status: models.TxPending})
				return
			}
			writeJSON(t, w, http.StatusOK, final)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	return srv, polls
}

func TestCreateRecord_ConfirmsAfterPolling(t *testing.T) {
	srv, polls := ledgerServer(t, models.TxReceipt{Hash: "0xtx", Status: models.TxConfirmed, BlockNumber: 7}, 2)
	defer srv.Close()

	ledger := newTestLedger(t, srv.URL, "", newTestSigner(t, nil))
	tx, err := ledger.CreateRecord(context.Background(), models.CreateRecordRequest{ID: "course-1", Name: "Algebra"})
	require.NoError(t, err)
	assert.Equal(t, "0xtx", tx.Hash())

	receipt, err := tx.AwaitConfirmation(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), receipt.BlockNumber)
	assert.Equal(t, int32(3), polls.Load())
}

func TestVerifyDecryption_AlreadyVerifiedRevert(t *testing.T) {
	srv, _ := ledgerServer(t, models.TxReceipt{Hash: "0xtx", Status: models.TxReverted, Reason: models.ReasonAlreadyVerified}, 0)
	defer srv.Close()

	ledger := newTestLedger(t, srv.URL, "", newTestSigner(t, nil))
	tx, err := ledger.VerifyDecryption(context.Background(), models.VerifyDecryptionRequest{ID: "course-1"})
	require.NoError(t, err)

	_, err = tx.AwaitConfirmation(context.Background())
	assert.ErrorIs(t, err, ErrAlreadyVerified)
}

func TestVerifyDecryption_ProofRejectedRevert(t *testing.T) {
	srv, _ := ledgerServer(t, models.TxReceipt{Hash: "0xtx", Status: models.TxReverted, Reason: models.ReasonInvalidProof}, 0)
	defer srv.Close()

	tx, err := newTestLedger(t, srv.URL, "", newTestSigner(t, nil)).
		VerifyDecryption(context.Background(), models.VerifyDecryptionRequest{ID: "course-1"})
	require.NoError(t, err)

	_, err = tx.AwaitConfirmation(context.Background())
	assert.ErrorIs(t, err, ErrProofRejected)
}

func TestAwaitConfirmation_ContextTimeout(t *testing.T) {
	srv, _ := ledgerServer(t, models.TxReceipt{Hash: "0xtx", Status: models.TxConfirmed}, 1<<30)
	defer srv.Close()

	tx, err := newTestLedger(t, srv.URL, "", newTestSigner(t, nil)).
		CreateRecord(context.Background(), models.CreateRecordRequest{ID: "course-1"})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, err = tx.AwaitConfirmation(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCreateRecord_WalletDeclined_NoRequest(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	decline := ApproverFunc(func(context.Context, string) (bool, error) { return false, nil })
	ledger := newTestLedger(t, srv.URL, "", newTestSigner(t, decline))

	_, err := ledger.CreateRecord(context.Background(), models.CreateRecordRequest{ID: "course-1"})
	assert.ErrorIs(t, err, ErrWalletDeclined)
	assert.Zero(t, hits.Load())
}

func TestCreateRecord_SubmitRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, models.ReasonInvalidInputProof, http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := newTestLedger(t, srv.URL, "", newTestSigner(t, nil)).
		CreateRecord(context.Background(), models.CreateRecordRequest{ID: "course-1"})
	assert.ErrorIs(t, err, ErrProofRejected)
}
