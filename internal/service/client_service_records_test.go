// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-transcript-keeper/internal/adapter"
	"github.com/MKhiriev/go-transcript-keeper/internal/app"
	"github.com/MKhiriev/go-transcript-keeper/internal/logger"
	"github.com/MKhiriev/go-transcript-keeper/internal/mock"
	"github.com/MKhiriev/go-transcript-keeper/internal/stats"
	"github.com/MKhiriev/go-transcript-keeper/internal/store"
	"github.com/MKhiriev/go-transcript-keeper/models"
)

const (
	testContract = "0xcontract"
	testOwner    = "0xowner"
)

type controllerFixture struct {
	ctrl    *recordController
	ledger  *mock.MockLedgerClient
	gateway *mock.MockGateway
	signer  *mock.MockSigner
	records store.RecordStore
	reveals store.RevealStore
}

func newTestController(t *testing.T, mc *gomock.Controller, opTimeout time.Duration) controllerFixture {
	t.Helper()

	f := controllerFixture{
		ledger:  mock.NewMockLedgerClient(mc),
		gateway: mock.NewMockGateway(mc),
		signer:  mock.NewMockSigner(mc),
		records: store.NewRecordStore(),
		reveals: store.NewRevealStore(),
	}

	f.ctrl = NewRecordController(
		f.ledger, f.gateway, f.signer,
		f.records, f.reveals, nil,
		ControllerSettings{
			ContractAddress:  testContract,
			OperationTimeout: opTimeout,
			Policy:           stats.DefaultPolicy(),
			Notifier:         NewStatusNotifier(time.Hour, time.Hour),
		},
		logger.Nop(),
	).(*recordController)

	return f
}

func ledgerRecord(id, name string, weight int64, verified bool, value int64) models.LedgerRecord {
	return models.LedgerRecord{
		ID:             id,
		Name:           name,
		EncryptedValue: "0xhandle-" + id,
		PublicValue1:   weight,
		PublicValue2:   1,
		Description:    describeRecord(name, "Semester 1"),
		Creator:        testOwner,
		Timestamp:      1700000000,
		IsVerified:     verified,
		DecryptedValue: value,
	}
}

func (f controllerFixture) expectReload(records ...models.LedgerRecord) {
	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
		f.ledger.EXPECT().GetRecord(gomock.Any(), r.ID).Return(r, nil)
	}
	f.ledger.EXPECT().ListRecordIDs(gomock.Any()).Return(ids, nil)
}

func newPendingTx(mc *gomock.Controller, awaitErr error) *mock.MockPendingTx {
	tx := mock.NewMockPendingTx(mc)
	tx.EXPECT().Hash().Return("0xtx").AnyTimes()
	tx.EXPECT().AwaitConfirmation(gomock.Any()).Return(models.TxReceipt{Hash: "0xtx", Status: models.TxConfirmed}, awaitErr)
	return tx
}

// ── Reload / Stats ───────────────────────────────────────────────────────────

func TestRecordController_Reload_ComputesStats(t *testing.T) {
	mc := gomock.NewController(t)
	f := newTestController(t, mc, 0)

	f.expectReload(
		ledgerRecord("a", "Algebra", 3, true, 90),
		ledgerRecord("b", "Biology", 2, true, 80),
		ledgerRecord("c", "Chemistry", 4, false, 0),
	)

	require.NoError(t, f.ctrl.Reload(context.Background()))

	s := f.ctrl.Stats()
	assert.InDelta(t, 86.0, s.PrimaryMetric, 1e-9)
	assert.Equal(t, 2, s.VerifiedCount)
	assert.Equal(t, 3, s.TotalCount)
	assert.InDelta(t, 3.0, s.CoverageAverage, 1e-9)
	assert.InDelta(t, 0.9*86.0+0.1*3.0, s.ProjectedMetric, 1e-9)

	views := f.ctrl.Views()
	require.Len(t, views, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{views[0].ID, views[1].ID, views[2].ID})
	assert.Equal(t, models.StateVerified, views[0].State)
	assert.Equal(t, models.StateEncrypted, views[2].State)
	assert.Equal(t, "Semester 1", views[0].Category)
}

func TestRecordController_Reload_SkipsVanishedRecords(t *testing.T) {
	mc := gomock.NewController(t)
	f := newTestController(t, mc, 0)

	f.ledger.EXPECT().ListRecordIDs(gomock.Any()).Return([]string{"a", "gone"}, nil)
	f.ledger.EXPECT().GetRecord(gomock.Any(), "a").Return(ledgerRecord("a", "Algebra", 3, false, 0), nil)
	f.ledger.EXPECT().GetRecord(gomock.Any(), "gone").Return(models.LedgerRecord{}, fmt.Errorf("get record: %w", adapter.ErrNotFound))

	require.NoError(t, f.ctrl.Reload(context.Background()))
	assert.Equal(t, 1, f.records.Len())
}

func TestRecordController_Reload_FailureKeepsPreviousCollection(t *testing.T) {
	mc := gomock.NewController(t)
	f := newTestController(t, mc, 0)

	f.records.ReplaceAll([]models.Record{recordFromLedger(ledgerRecord("a", "Algebra", 3, false, 0))})
	rev := f.ctrl.Revision()

	f.ledger.EXPECT().ListRecordIDs(gomock.Any()).Return([]string{"a", "b"}, nil)
	f.ledger.EXPECT().GetRecord(gomock.Any(), "a").Return(ledgerRecord("a", "Algebra", 3, true, 70), nil).AnyTimes()
	f.ledger.EXPECT().GetRecord(gomock.Any(), "b").Return(models.LedgerRecord{}, adapter.ErrServiceUnavailable).AnyTimes()

	err := f.ctrl.Reload(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetworkOrLedger)

	assert.Equal(t, rev, f.ctrl.Revision())
	r, err := f.records.GetByID("a")
	require.NoError(t, err)
	assert.False(t, r.Verified)

	st := f.ctrl.Notifier().Current()
	assert.Equal(t, models.StatusError, st.Kind)
	assert.Equal(t, app.StatusLoadFailed, st.Message)
}

// ── CreateRecord ─────────────────────────────────────────────────────────────

func TestRecordController_CreateRecord_ValidationMakesNoCalls(t *testing.T) {
	tests := []struct {
		name  string
		input models.NewRecordInput
	}{
		{name: "grade below range", input: models.NewRecordInput{Owner: testOwner, Label: "Math", Weight: 3, Category: "Semester 1", RawValue: -1}},
		{name: "grade above range", input: models.NewRecordInput{Owner: testOwner, Label: "Math", Weight: 3, Category: "Semester 1", RawValue: 101}},
		{name: "empty label", input: models.NewRecordInput{Owner: testOwner, Label: "  ", Weight: 3, Category: "Semester 1", RawValue: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mc := gomock.NewController(t)
			f := newTestController(t, mc, 0)

			// no EXPECT calls: any ledger or gateway call fails the test
			err := f.ctrl.CreateRecord(context.Background(), tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, models.FailureValidation, Classify(err))

			st := f.ctrl.Notifier().Current()
			assert.Equal(t, models.StatusError, st.Kind)
			assert.Equal(t, models.FailureValidation, st.Failure)
			assert.NotEmpty(t, st.Message)
		})
	}
}

func TestRecordController_CreateRecord_Success(t *testing.T) {
	mc := gomock.NewController(t)
	f := newTestController(t, mc, time.Minute)

	var submitted models.CreateRecordRequest

	f.signer.EXPECT().Address().Return(testOwner)
	f.gateway.EXPECT().Initialized().Return(true)
	f.gateway.EXPECT().Encrypt(gomock.Any(), models.EncryptRequest{
		ContractAddress: testContract,
		UserAddress:     testOwner,
		Value:           88,
	}).Return(models.EncryptedInput{Handle: "0xh1", InputProof: "0xp1"}, nil)
	f.ledger.EXPECT().CreateRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.CreateRecordRequest) (adapter.PendingTx, error) {
			submitted = req
			return newPendingTx(mc, nil), nil
		})
	f.ledger.EXPECT().ListRecordIDs(gomock.Any()).DoAndReturn(func(context.Context) ([]string, error) {
		return []string{submitted.ID}, nil
	})
	f.ledger.EXPECT().GetRecord(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id string) (models.LedgerRecord, error) {
		return models.LedgerRecord{
			ID: id, Name: submitted.Name, EncryptedValue: submitted.EncryptedValue,
			PublicValue1: submitted.PublicValue1, PublicValue2: submitted.PublicValue2,
			Description: submitted.Description, Creator: testOwner,
		}, nil
	})

	err := f.ctrl.CreateRecord(context.Background(), models.NewRecordInput{
		Label: "Physics", Weight: 4, Category: "Fall 2025", RawValue: 88,
	})
	require.NoError(t, err)

	assert.Equal(t, "Physics", submitted.Name)
	assert.Equal(t, "0xh1", submitted.EncryptedValue)
	assert.Equal(t, "0xp1", submitted.InputProof)
	assert.Equal(t, int64(4), submitted.PublicValue1)
	assert.Equal(t, int64(1), submitted.PublicValue2)
	assert.Equal(t, "Grade for Physics - Fall 2025", submitted.Description)

	views := f.ctrl.Views()
	require.Len(t, views, 1)
	assert.Equal(t, models.StateEncrypted, views[0].State)
	assert.Equal(t, "Fall 2025", views[0].Category)
	assert.Nil(t, views[0].Value)

	assert.Equal(t, app.StatusAdded, f.ctrl.Notifier().Current().Message)
}

func TestRecordController_CreateRecord_DistinctIDs(t *testing.T) {
	mc := gomock.NewController(t)
	f := newTestController(t, mc, 0)

	var (
		mu  sync.Mutex
		ids []string
	)

	f.gateway.EXPECT().Initialized().Return(true).Times(2)
	f.gateway.EXPECT().Encrypt(gomock.Any(), gomock.Any()).Return(models.EncryptedInput{Handle: "0xh", InputProof: "0xp"}, nil).Times(2)
	f.ledger.EXPECT().CreateRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.CreateRecordRequest) (adapter.PendingTx, error) {
			mu.Lock()
			ids = append(ids, req.ID)
			mu.Unlock()
			return newPendingTx(mc, nil), nil
		}).Times(2)
	f.ledger.EXPECT().ListRecordIDs(gomock.Any()).Return(nil, nil).Times(2)

	in := models.NewRecordInput{Owner: testOwner, Label: "Math", Weight: 3, Category: "Semester 1", RawValue: 90}

	var wg sync.WaitGroup
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, f.ctrl.CreateRecord(context.Background(), in))
		}()
	}
	wg.Wait()

	require.Len(t, ids, 2)
	assert.NotEqual(t, ids[0], ids[1])
}

func TestRecordController_CreateRecord_WalletDeclined(t *testing.T) {
	mc := gomock.NewController(t)
	f := newTestController(t, mc, 0)

	f.gateway.EXPECT().Initialized().Return(true)
	f.gateway.EXPECT().Encrypt(gomock.Any(), gomock.Any()).Return(models.EncryptedInput{Handle: "0xh", InputProof: "0xp"}, nil)
	f.ledger.EXPECT().CreateRecord(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("sign: %w", adapter.ErrWalletDeclined))

	err := f.ctrl.CreateRecord(context.Background(), models.NewRecordInput{
		Owner: testOwner, Label: "Math", Weight: 3, Category: "Semester 1", RawValue: 90,
	})
	require.Error(t, err)
	assert.Equal(t, models.FailureWalletDeclined, Classify(err))

	st := f.ctrl.Notifier().Current()
	assert.Equal(t, app.StatusTxRejected, st.Message)
	assert.Equal(t, 0, f.records.Len())
}

func TestRecordController_CreateRecord_Timeout(t *testing.T) {
	mc := gomock.NewController(t)
	f := newTestController(t, mc, 20*time.Millisecond)

	tx := mock.NewMockPendingTx(mc)
	tx.EXPECT().AwaitConfirmation(gomock.Any()).DoAndReturn(func(ctx context.Context) (models.TxReceipt, error) {
		<-ctx.Done()
		return models.TxReceipt{}, fmt.Errorf("await tx: %w", ctx.Err())
	})

	f.gateway.EXPECT().Initialized().Return(true)
	f.gateway.EXPECT().Encrypt(gomock.Any(), gomock.Any()).Return(models.EncryptedInput{Handle: "0xh", InputProof: "0xp"}, nil)
	f.ledger.EXPECT().CreateRecord(gomock.Any(), gomock.Any()).Return(tx, nil)

	err := f.ctrl.CreateRecord(context.Background(), models.NewRecordInput{
		Owner: testOwner, Label: "Math", Weight: 3, Category: "Semester 1", RawValue: 90,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Equal(t, app.StatusTimedOut, f.ctrl.Notifier().Current().Message)
}

func TestRecordController_CreateRecord_ReloadFailureStillSucceeds(t *testing.T) {
	mc := gomock.NewController(t)
	f := newTestController(t, mc, 0)

	f.gateway.EXPECT().Initialized().Return(true)
	f.gateway.EXPECT().Encrypt(gomock.Any(), gomock.Any()).Return(models.EncryptedInput{Handle: "0xh", InputProof: "0xp"}, nil)
	f.ledger.EXPECT().CreateRecord(gomock.Any(), gomock.Any()).Return(newPendingTx(mc, nil), nil)
	f.ledger.EXPECT().ListRecordIDs(gomock.Any()).Return(nil, adapter.ErrServiceUnavailable)

	err := f.ctrl.CreateRecord(context.Background(), models.NewRecordInput{
		Owner: testOwner, Label: "Math", Weight: 3, Category: "Semester 1", RawValue: 90,
	})
	require.NoError(t, err)

	st := f.ctrl.Notifier().Current()
	assert.Equal(t, models.StatusError, st.Kind)
	assert.Equal(t, app.StatusLoadFailed, st.Message)
}

// ── RevealRecord ─────────────────────────────────────────────────────────────

func TestRecordController_RevealRecord_Success(t *testing.T) {
	mc := gomock.NewController(t)
	f := newTestController(t, mc, 0)

	f.records.ReplaceAll([]models.Record{recordFromLedger(ledgerRecord("a", "Algebra", 3, false, 0))})
	f.reveals.Set("a", 93)

	gomock.InOrder(
		f.ledger.EXPECT().GetRecord(gomock.Any(), "a").Return(ledgerRecord("a", "Algebra", 3, false, 0), nil),
		f.ledger.EXPECT().GetCiphertextHandle(gomock.Any(), "a").Return("0xh", nil),
		f.gateway.EXPECT().Initialized().Return(true),
		f.gateway.EXPECT().PublicDecrypt(gomock.Any(), models.PublicDecryptRequest{
			Handles: []string{"0xh"}, ContractAddress: testContract,
		}).Return(models.DecryptionResult{
			ClearValues:           map[string]uint64{"0xh": 93},
			AbiEncodedClearValues: "0xabi",
			DecryptionProof:       "0xproof",
		}, nil),
		f.ledger.EXPECT().VerifyDecryption(gomock.Any(), models.VerifyDecryptionRequest{
			ID: "a", AbiEncodedClearValues: "0xabi", DecryptionProof: "0xproof",
		}).Return(newPendingTx(mc, nil), nil),
	)
	f.expectReload(ledgerRecord("a", "Algebra", 3, true, 93))

	value, err := f.ctrl.RevealRecord(context.Background(), "a")
	require.NoError(t, err)
	require.NotNil(t, value)
	assert.Equal(t, int64(93), *value)

	r, err := f.records.GetByID("a")
	require.NoError(t, err)
	assert.Equal(t, models.StateVerified, r.State())

	_, stillLocal := f.reveals.Get("a")
	assert.False(t, stillLocal)
	assert.Equal(t, app.StatusDecrypted, f.ctrl.Notifier().Current().Message)
}

func TestRecordController_RevealRecord_VerifiedIsIdempotent(t *testing.T) {
	mc := gomock.NewController(t)
	f := newTestController(t, mc, 0)

	f.records.ReplaceAll([]models.Record{recordFromLedger(ledgerRecord("a", "Algebra", 3, true, 77))})

	// no EXPECT calls: the stored value is returned without network access
	for range 2 {
		value, err := f.ctrl.RevealRecord(context.Background(), "a")
		require.NoError(t, err)
		require.NotNil(t, value)
		assert.Equal(t, int64(77), *value)
	}
	assert.Equal(t, app.StatusAlreadyVerify, f.ctrl.Notifier().Current().Message)
}

func TestRecordController_RevealRecord_LostRace(t *testing.T) {
	mc := gomock.NewController(t)
	f := newTestController(t, mc, 0)

	f.records.ReplaceAll([]models.Record{recordFromLedger(ledgerRecord("a", "Algebra", 3, false, 0))})

	f.ledger.EXPECT().GetRecord(gomock.Any(), "a").Return(ledgerRecord("a", "Algebra", 3, false, 0), nil)
	f.ledger.EXPECT().GetCiphertextHandle(gomock.Any(), "a").Return("0xh", nil)
	f.gateway.EXPECT().Initialized().Return(true)
	f.gateway.EXPECT().PublicDecrypt(gomock.Any(), gomock.Any()).Return(models.DecryptionResult{
		ClearValues: map[string]uint64{"0xh": 77}, AbiEncodedClearValues: "0xabi", DecryptionProof: "0xproof",
	}, nil)
	f.ledger.EXPECT().VerifyDecryption(gomock.Any(), gomock.Any()).
		Return(newPendingTx(mc, fmt.Errorf("tx reverted: %w", adapter.ErrAlreadyVerified)), nil)
	f.expectReload(ledgerRecord("a", "Algebra", 3, true, 77))

	value, err := f.ctrl.RevealRecord(context.Background(), "a")
	require.NoError(t, err)
	require.NotNil(t, value)
	assert.Equal(t, int64(77), *value)

	r, err := f.records.GetByID("a")
	require.NoError(t, err)
	assert.True(t, r.Verified)

	st := f.ctrl.Notifier().Current()
	assert.Equal(t, models.StatusSuccess, st.Kind)
	assert.Equal(t, app.StatusAlreadyVerify, st.Message)
}

func TestRecordController_RevealRecord_ProofRejected(t *testing.T) {
	mc := gomock.NewController(t)
	f := newTestController(t, mc, 0)

	f.ledger.EXPECT().GetRecord(gomock.Any(), "a").Return(ledgerRecord("a", "Algebra", 3, false, 0), nil)
	f.ledger.EXPECT().GetCiphertextHandle(gomock.Any(), "a").Return("0xh", nil)
	f.gateway.EXPECT().Initialized().Return(true)
	f.gateway.EXPECT().PublicDecrypt(gomock.Any(), gomock.Any()).Return(models.DecryptionResult{
		ClearValues: map[string]uint64{"0xh": 77}, AbiEncodedClearValues: "0xabi", DecryptionProof: "0xbad",
	}, nil)
	f.ledger.EXPECT().VerifyDecryption(gomock.Any(), gomock.Any()).
		Return(newPendingTx(mc, fmt.Errorf("tx reverted: %w", adapter.ErrProofRejected)), nil)

	value, err := f.ctrl.RevealRecord(context.Background(), "a")
	require.Error(t, err)
	assert.Nil(t, value)
	assert.Equal(t, models.FailureProofRejected, Classify(err))
	assert.Equal(t, app.StatusProofRejected, f.ctrl.Notifier().Current().Message)
}

func TestRecordController_RevealRecord_VerifiedOnLedger(t *testing.T) {
	mc := gomock.NewController(t)
	f := newTestController(t, mc, 0)

	// the local collection is stale: the ledger already holds the proof
	f.records.ReplaceAll([]models.Record{recordFromLedger(ledgerRecord("a", "Algebra", 3, false, 0))})
	f.reveals.Set("a", 64)

	f.ledger.EXPECT().GetRecord(gomock.Any(), "a").Return(ledgerRecord("a", "Algebra", 3, true, 81), nil)
	f.expectReload(ledgerRecord("a", "Algebra", 3, true, 81))
	f.ledger.EXPECT().GetCiphertextHandle(gomock.Any(), gomock.Any()).Times(0)
	f.gateway.EXPECT().PublicDecrypt(gomock.Any(), gomock.Any()).Times(0)
	f.ledger.EXPECT().VerifyDecryption(gomock.Any(), gomock.Any()).Times(0)

	value, err := f.ctrl.RevealRecord(context.Background(), "a")
	require.NoError(t, err)
	require.NotNil(t, value)
	assert.Equal(t, int64(81), *value)
	assert.Equal(t, models.FailureNone, Classify(err))

	r, err := f.records.GetByID("a")
	require.NoError(t, err)
	assert.True(t, r.Verified)

	_, stillLocal := f.reveals.Get("a")
	assert.False(t, stillLocal)

	st := f.ctrl.Notifier().Current()
	assert.Equal(t, models.StatusSuccess, st.Kind)
	assert.Equal(t, app.StatusAlreadyVerify, st.Message)
}

func TestRecordController_RevealRecord_WalletDeclined(t *testing.T) {
	mc := gomock.NewController(t)
	f := newTestController(t, mc, 0)

	f.records.ReplaceAll([]models.Record{recordFromLedger(ledgerRecord("a", "Algebra", 3, false, 0))})

	f.ledger.EXPECT().GetRecord(gomock.Any(), "a").Return(ledgerRecord("a", "Algebra", 3, false, 0), nil)
	f.ledger.EXPECT().GetCiphertextHandle(gomock.Any(), "a").Return("0xh", nil)
	f.gateway.EXPECT().Initialized().Return(true)
	f.gateway.EXPECT().PublicDecrypt(gomock.Any(), gomock.Any()).Return(models.DecryptionResult{
		ClearValues: map[string]uint64{"0xh": 77}, AbiEncodedClearValues: "0xabi", DecryptionProof: "0xproof",
	}, nil)
	f.ledger.EXPECT().VerifyDecryption(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("sign verify decryption: %w", adapter.ErrWalletDeclined))
	f.ledger.EXPECT().ListRecordIDs(gomock.Any()).Times(0)

	value, err := f.ctrl.RevealRecord(context.Background(), "a")
	require.Error(t, err)
	assert.Nil(t, value)
	assert.ErrorIs(t, err, ErrWalletDeclined)
	assert.Equal(t, models.FailureWalletDeclined, Classify(err))

	st := f.ctrl.Notifier().Current()
	assert.Equal(t, models.StatusError, st.Kind)
	assert.Equal(t, models.FailureWalletDeclined, st.Failure)
	assert.Equal(t, app.StatusTxRejected, st.Message)

	r, err := f.records.GetByID("a")
	require.NoError(t, err)
	assert.False(t, r.Verified)
}

func TestRecordController_RevealRecord_GatewayUnavailable(t *testing.T) {
	mc := gomock.NewController(t)
	f := newTestController(t, mc, 0)

	f.ledger.EXPECT().GetRecord(gomock.Any(), "a").Return(ledgerRecord("a", "Algebra", 3, false, 0), nil)
	f.ledger.EXPECT().GetCiphertextHandle(gomock.Any(), "a").Return("0xh", nil)
	f.gateway.EXPECT().Initialized().Return(false).AnyTimes()
	f.gateway.EXPECT().Init(gomock.Any()).Return(errors.New("relayer down"))
	f.gateway.EXPECT().PublicDecrypt(gomock.Any(), gomock.Any()).Times(0)
	f.ledger.EXPECT().VerifyDecryption(gomock.Any(), gomock.Any()).Times(0)

	value, err := f.ctrl.RevealRecord(context.Background(), "a")
	require.Error(t, err)
	assert.Nil(t, value)
	assert.ErrorIs(t, err, ErrGatewayUnavailable)
	assert.Equal(t, models.FailureGatewayUnavailable, Classify(err))

	st := f.ctrl.Notifier().Current()
	assert.Equal(t, models.StatusError, st.Kind)
	assert.Equal(t, app.StatusGatewayDown, st.Message)
}

func TestRecordController_RevealRecord_FailureBannersAreDistinct(t *testing.T) {
	messages := map[string]struct{}{}
	for _, err := range []error{ErrWalletDeclined, ErrGatewayUnavailable, ErrProofRejected, ErrTimeout} {
		messages[failureMessage(opReveal, err)] = struct{}{}
	}
	assert.Len(t, messages, 4)
}

func TestRecordController_PersistFor(t *testing.T) {
	mc := gomock.NewController(t)
	f := newTestController(t, mc, 0)

	tx := mock.NewMockPendingTx(mc)
	f.ledger.EXPECT().VerifyDecryption(gomock.Any(), models.VerifyDecryptionRequest{
		ID: "a", AbiEncodedClearValues: "0xabi", DecryptionProof: "0xproof",
	}).Return(tx, nil)

	persist := f.ctrl.persistFor("a")
	got, err := persist(context.Background(), "0xabi", "0xproof")
	require.NoError(t, err)
	assert.Same(t, tx, got)
}

func TestRecordController_RevealRecord_MissingClearValue(t *testing.T) {
	mc := gomock.NewController(t)
	f := newTestController(t, mc, 0)

	f.ledger.EXPECT().GetRecord(gomock.Any(), "a").Return(ledgerRecord("a", "Algebra", 3, false, 0), nil)
	f.ledger.EXPECT().GetCiphertextHandle(gomock.Any(), "a").Return("0xh", nil)
	f.gateway.EXPECT().Initialized().Return(true)
	f.gateway.EXPECT().PublicDecrypt(gomock.Any(), gomock.Any()).Return(models.DecryptionResult{
		ClearValues: map[string]uint64{"0xother": 1},
	}, nil)

	_, err := f.ctrl.RevealRecord(context.Background(), "a")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGatewayUnavailable)
}

func TestRecordController_RevealRecord_InFlight(t *testing.T) {
	mc := gomock.NewController(t)
	f := newTestController(t, mc, 0)

	release, ok := f.ctrl.guard.acquire("a")
	require.True(t, ok)
	defer release()

	_, err := f.ctrl.RevealRecord(context.Background(), "a")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInFlight)

	_, err = f.ctrl.RevealLocally(context.Background(), "a")
	assert.ErrorIs(t, err, ErrInFlight)
	assert.Equal(t, app.StatusInFlight, f.ctrl.Notifier().Current().Message)
}

// ── RevealLocally ────────────────────────────────────────────────────────────

func TestRecordController_RevealLocally(t *testing.T) {
	mc := gomock.NewController(t)
	f := newTestController(t, mc, 0)

	f.records.ReplaceAll([]models.Record{
		recordFromLedger(ledgerRecord("a", "Algebra", 3, true, 90)),
		recordFromLedger(ledgerRecord("b", "Biology", 2, false, 0)),
	})
	before := f.ctrl.Stats()

	f.ledger.EXPECT().GetCiphertextHandle(gomock.Any(), "b").Return("0xhb", nil)
	f.gateway.EXPECT().Initialized().Return(true)
	f.gateway.EXPECT().UserDecrypt(gomock.Any(), []string{"0xhb"}, testContract).Return(map[string]uint64{"0xhb": 40}, nil)

	value, err := f.ctrl.RevealLocally(context.Background(), "b")
	require.NoError(t, err)
	require.NotNil(t, value)
	assert.Equal(t, int64(40), *value)

	views := f.ctrl.Views()
	require.Len(t, views, 2)
	assert.Equal(t, models.StateLocallyRevealed, views[1].State)
	assert.False(t, views[1].Authoritative)
	require.NotNil(t, views[1].Value)
	assert.Equal(t, int64(40), *views[1].Value)

	// provisional values never reach the statistics
	assert.Equal(t, before, f.ctrl.Stats())

	r, err := f.records.GetByID("b")
	require.NoError(t, err)
	assert.False(t, r.Verified)
	assert.Equal(t, app.StatusRevealedLocal, f.ctrl.Notifier().Current().Message)
}

func TestRecordController_RevealLocally_UnknownRecord(t *testing.T) {
	mc := gomock.NewController(t)
	f := newTestController(t, mc, 0)

	_, err := f.ctrl.RevealLocally(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRecordNotFound)
	assert.Equal(t, app.StatusNotFound, f.ctrl.Notifier().Current().Message)
}

func TestRecordController_Reload_PrunesVerifiedReveals(t *testing.T) {
	mc := gomock.NewController(t)
	f := newTestController(t, mc, 0)

	f.reveals.Set("a", 40)
	f.reveals.Set("gone", 10)
	f.expectReload(ledgerRecord("a", "Algebra", 3, true, 41))

	require.NoError(t, f.ctrl.Reload(context.Background()))

	assert.Empty(t, f.reveals.Snapshot())
	views := f.ctrl.Views()
	require.Len(t, views, 1)
	require.NotNil(t, views[0].Value)
	assert.Equal(t, int64(41), *views[0].Value)
	assert.True(t, views[0].Authoritative)
}

// ── Availability / Init / WarmStart ──────────────────────────────────────────

func TestRecordController_CheckAvailability(t *testing.T) {
	tests := []struct {
		name      string
		available bool
		err       error
		wantKind  models.StatusKind
		wantMsg   string
		wantErr   bool
	}{
		{name: "available", available: true, wantKind: models.StatusSuccess, wantMsg: app.StatusAvailable},
		{name: "unavailable", available: false, wantKind: models.StatusError, wantMsg: app.StatusUnavailable},
		{name: "transport error", err: adapter.ErrBadGateway, wantKind: models.StatusError, wantMsg: app.StatusAvailCheckFailed, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mc := gomock.NewController(t)
			f := newTestController(t, mc, 0)

			f.ledger.EXPECT().IsServiceAvailable(gomock.Any()).Return(tt.available, tt.err)

			ok, err := f.ctrl.CheckAvailability(context.Background())
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.available, ok)

			st := f.ctrl.Notifier().Current()
			assert.Equal(t, tt.wantKind, st.Kind)
			assert.Equal(t, tt.wantMsg, st.Message)
		})
	}
}

func TestRecordController_InitGateway(t *testing.T) {
	t.Run("initializes once", func(t *testing.T) {
		mc := gomock.NewController(t)
		f := newTestController(t, mc, 0)

		initialized := false
		f.gateway.EXPECT().Initialized().DoAndReturn(func() bool { return initialized }).AnyTimes()
		f.gateway.EXPECT().Init(gomock.Any()).DoAndReturn(func(context.Context) error {
			initialized = true
			return nil
		}).Times(1)

		require.NoError(t, f.ctrl.InitGateway(context.Background()))
		require.NoError(t, f.ctrl.InitGateway(context.Background()))
	})

	t.Run("failure", func(t *testing.T) {
		mc := gomock.NewController(t)
		f := newTestController(t, mc, 0)

		f.gateway.EXPECT().Initialized().Return(false).AnyTimes()
		f.gateway.EXPECT().Init(gomock.Any()).Return(errors.New("relayer down"))

		err := f.ctrl.InitGateway(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrGatewayUnavailable)
		assert.Equal(t, app.StatusInitFailed, f.ctrl.Notifier().Current().Message)
	})
}

func TestRecordController_WarmStart(t *testing.T) {
	mc := gomock.NewController(t)
	snapshots := mock.NewMockSnapshotRepository(mc)

	records := store.NewRecordStore()
	ctrl := NewRecordController(
		mock.NewMockLedgerClient(mc), mock.NewMockGateway(mc), mock.NewMockSigner(mc),
		records, store.NewRevealStore(), snapshots,
		ControllerSettings{ContractAddress: testContract},
		logger.Nop(),
	)

	cached := []models.Record{recordFromLedger(ledgerRecord("a", "Algebra", 3, true, 90))}
	snapshots.EXPECT().LoadSnapshot(gomock.Any()).Return(cached, nil)

	require.NoError(t, ctrl.WarmStart(context.Background()))
	assert.Equal(t, 1, records.Len())

	// the collection is no longer empty, the snapshot is not read again
	require.NoError(t, ctrl.WarmStart(context.Background()))
}

func TestRecordController_Reload_SavesSnapshot(t *testing.T) {
	mc := gomock.NewController(t)
	ledger := mock.NewMockLedgerClient(mc)
	snapshots := mock.NewMockSnapshotRepository(mc)

	ctrl := NewRecordController(
		ledger, mock.NewMockGateway(mc), mock.NewMockSigner(mc),
		store.NewRecordStore(), store.NewRevealStore(), snapshots,
		ControllerSettings{ContractAddress: testContract},
		logger.Nop(),
	)

	ledger.EXPECT().ListRecordIDs(gomock.Any()).Return([]string{"a"}, nil)
	ledger.EXPECT().GetRecord(gomock.Any(), "a").Return(ledgerRecord("a", "Algebra", 3, false, 0), nil)
	snapshots.EXPECT().SaveSnapshot(gomock.Any(), gomock.Len(1)).Return(errors.New("disk full"))

	// snapshot errors are logged only
	require.NoError(t, ctrl.Reload(context.Background()))
}
