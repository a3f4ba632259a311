// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-transcript-keeper/internal/adapter"
	"github.com/MKhiriev/go-transcript-keeper/internal/app"
	"github.com/MKhiriev/go-transcript-keeper/internal/logger"
	"github.com/MKhiriev/go-transcript-keeper/internal/stats"
	"github.com/MKhiriev/go-transcript-keeper/internal/store"
	"github.com/MKhiriev/go-transcript-keeper/internal/utils"
	"github.com/MKhiriev/go-transcript-keeper/internal/validators"
	"github.com/MKhiriev/go-transcript-keeper/models"
)

// reloadParallelism bounds concurrent GetRecord calls during a reload.
const reloadParallelism = 8

// ControllerSettings configures a [RecordController].
type ControllerSettings struct {
	// ContractAddress scopes every ciphertext and decryption request.
	ContractAddress string
	// OperationTimeout bounds one create or reveal flow. Zero disables it.
	OperationTimeout time.Duration
	// Policy is the statistics policy.
	Policy stats.Policy
	// Notifier receives status banners. A fresh one is created when nil.
	Notifier *StatusNotifier
}

type recordController struct {
	ledger    adapter.LedgerClient
	gateway   adapter.Gateway
	signer    adapter.Signer
	records   store.RecordStore
	reveals   store.RevealStore
	snapshots store.SnapshotRepository // optional

	validator validators.Validator
	engine    *stats.Engine
	notifier  *StatusNotifier
	ids       *utils.RecordIDGenerator
	gwInit    *gatewayInitializer
	guard     *inFlight

	contract  string
	opTimeout time.Duration

	reloadMu sync.Mutex

	log *logger.Logger
}

// NewRecordController wires a controller over the given collaborators.
// snapshots may be nil, in which case nothing is cached between runs.
func NewRecordController(
	ledger adapter.LedgerClient,
	gateway adapter.Gateway,
	signer adapter.Signer,
	records store.RecordStore,
	reveals store.RevealStore,
	snapshots store.SnapshotRepository,
	settings ControllerSettings,
	log *logger.Logger,
) RecordController {
	notifier := settings.Notifier
	if notifier == nil {
		notifier = NewStatusNotifier(SuccessStatusTTL, ErrorStatusTTL)
	}

	return &recordController{
		ledger:    ledger,
		gateway:   gateway,
		signer:    signer,
		records:   records,
		reveals:   reveals,
		snapshots: snapshots,
		validator: validators.NewRecordValidator(),
		engine:    stats.NewEngine(settings.Policy),
		notifier:  notifier,
		ids:       utils.NewRecordIDGenerator(),
		gwInit:    newGatewayInitializer(gateway),
		guard:     newInFlight(),
		contract:  settings.ContractAddress,
		opTimeout: settings.OperationTimeout,
		log:       log,
	}
}

func (c *recordController) CreateRecord(ctx context.Context, in models.NewRecordInput) error {
	if in.Owner == "" {
		in.Owner = c.signer.Address()
	}
	if err := c.validator.Validate(ctx, in); err != nil {
		return c.fail(opCreate, fmt.Errorf("%w: %w", ErrValidation, err))
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	c.notifier.Pending(app.StatusAdding)

	if err := c.gwInit.Ensure(ctx); err != nil {
		return c.fail(opCreate, mapGatewayError(err))
	}

	id := c.ids.Generate()
	enc, err := c.gateway.Encrypt(ctx, models.EncryptRequest{
		ContractAddress: c.contract,
		UserAddress:     in.Owner,
		Value:           uint64(in.RawValue),
	})
	if err != nil {
		return c.fail(opCreate, mapGatewayError(err))
	}

	tx, err := c.ledger.CreateRecord(ctx, createRequest(id, in, enc))
	if err != nil {
		return c.fail(opCreate, mapLedgerError(err))
	}

	c.notifier.Pending(app.StatusWaitingConfirm)
	if _, err = tx.AwaitConfirmation(ctx); err != nil {
		return c.fail(opCreate, mapLedgerError(err))
	}

	c.log.WithRecord(id).Info().Str("tx", tx.Hash()).Msg("record created")

	// the record exists on the ledger; a failed reload only delays its display
	if err = c.reload(ctx); err != nil {
		c.log.Err(err).Str("id", id).Msg("reload after create failed")
		c.notifier.Error(Classify(err), app.StatusLoadFailed)
		return nil
	}

	c.notifier.Success(app.StatusAdded)
	return nil
}

func (c *recordController) RevealRecord(ctx context.Context, id string) (*int64, error) {
	release, ok := c.guard.acquire(id)
	if !ok {
		return nil, c.fail(opReveal, fmt.Errorf("%w: %s", ErrInFlight, id))
	}
	defer release()

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	if r, err := c.records.GetByID(id); err == nil && r.Verified {
		return c.alreadyVerified(r), nil
	}

	lr, err := c.ledger.GetRecord(ctx, id)
	if err != nil {
		return nil, c.fail(opReveal, mapLedgerError(err))
	}
	if lr.IsVerified {
		return c.settleLostRace(ctx, id)
	}

	handle, err := c.ledger.GetCiphertextHandle(ctx, id)
	if err != nil {
		return nil, c.fail(opReveal, mapLedgerError(err))
	}

	if err = c.gwInit.Ensure(ctx); err != nil {
		return nil, c.fail(opReveal, mapGatewayError(err))
	}

	c.notifier.Pending(app.StatusDecrypting)
	res, err := c.gateway.PublicDecrypt(ctx, models.PublicDecryptRequest{
		Handles:         []string{handle},
		ContractAddress: c.contract,
	})
	if err != nil {
		return nil, c.fail(opReveal, mapGatewayError(err))
	}
	plain, ok := res.ClearValues[handle]
	if !ok {
		return nil, c.fail(opReveal, fmt.Errorf("%w: no clear value for handle %s", ErrGatewayUnavailable, handle))
	}

	c.notifier.Pending(app.StatusVerifying)
	persist := c.persistFor(id)
	tx, err := persist(ctx, res.AbiEncodedClearValues, res.DecryptionProof)
	if err == nil {
		_, err = tx.AwaitConfirmation(ctx)
	}
	if errors.Is(err, adapter.ErrAlreadyVerified) {
		return c.settleLostRace(ctx, id)
	}
	if err != nil {
		return nil, c.fail(opReveal, mapLedgerError(err))
	}

	value := int64(plain)
	c.log.WithRecord(id).Info().Str("tx", tx.Hash()).Msg("record verified")

	if err = c.reload(ctx); err != nil {
		c.log.WithRecord(id).Err(err).Msg("reload after verify failed")
	}
	c.reveals.Delete(id)
	c.notifier.Success(app.StatusDecrypted)

	return &value, nil
}

func (c *recordController) RevealLocally(ctx context.Context, id string) (*int64, error) {
	release, ok := c.guard.acquire(id)
	if !ok {
		return nil, c.fail(opRevealLocal, fmt.Errorf("%w: %s", ErrInFlight, id))
	}
	defer release()

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	r, err := c.records.GetByID(id)
	if err != nil {
		return nil, c.fail(opRevealLocal, mapLedgerError(err))
	}
	if r.Verified {
		return c.alreadyVerified(r), nil
	}

	handle, err := c.ledger.GetCiphertextHandle(ctx, id)
	if err != nil {
		return nil, c.fail(opRevealLocal, mapLedgerError(err))
	}

	if err = c.gwInit.Ensure(ctx); err != nil {
		return nil, c.fail(opRevealLocal, mapGatewayError(err))
	}

	c.notifier.Pending(app.StatusDecrypting)
	values, err := c.gateway.UserDecrypt(ctx, []string{handle}, c.contract)
	if err != nil {
		return nil, c.fail(opRevealLocal, mapGatewayError(err))
	}
	plain, ok := values[handle]
	if !ok {
		return nil, c.fail(opRevealLocal, fmt.Errorf("%w: no clear value for handle %s", ErrGatewayUnavailable, handle))
	}

	value := int64(plain)
	c.reveals.Set(id, value)
	c.notifier.Success(app.StatusRevealedLocal)

	return &value, nil
}

func (c *recordController) Reload(ctx context.Context) error {
	if err := c.reload(ctx); err != nil {
		return c.fail(opReload, err)
	}
	return nil
}

// reload reads every record from the ledger and swaps the collection in one
// step. Records that vanish between listing and reading are skipped; any
// other failure leaves the collection untouched.
func (c *recordController) reload(ctx context.Context) error {
	c.reloadMu.Lock()
	defer c.reloadMu.Unlock()

	ids, err := c.ledger.ListRecordIDs(ctx)
	if err != nil {
		return mapLedgerError(err)
	}

	fetched := make([]*models.Record, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(reloadParallelism)
	for i, id := range ids {
		g.Go(func() error {
			lr, err := c.ledger.GetRecord(gctx, id)
			if errors.Is(err, adapter.ErrNotFound) {
				c.log.Warn().Str("id", id).Msg("listed record not found, skipping")
				return nil
			}
			if err != nil {
				return fmt.Errorf("get record %s: %w", id, err)
			}
			r := recordFromLedger(lr)
			fetched[i] = &r
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return mapLedgerError(err)
	}

	records := make([]models.Record, 0, len(fetched))
	for _, r := range fetched {
		if r != nil {
			records = append(records, *r)
		}
	}

	c.records.ReplaceAll(records)
	c.pruneReveals()
	c.saveSnapshot(ctx, records)

	return nil
}

// pruneReveals drops provisional values of records that are gone or now
// carry a ledger-attested value.
func (c *recordController) pruneReveals() {
	for id := range c.reveals.Snapshot() {
		r, err := c.records.GetByID(id)
		if err != nil || r.Verified {
			c.reveals.Delete(id)
		}
	}
}

func (c *recordController) saveSnapshot(ctx context.Context, records []models.Record) {
	if c.snapshots == nil {
		return
	}
	if err := c.snapshots.SaveSnapshot(ctx, records); err != nil {
		c.log.Err(err).Msg("saving record snapshot failed")
	}
}

func (c *recordController) CheckAvailability(ctx context.Context) (bool, error) {
	available, err := c.ledger.IsServiceAvailable(ctx)
	if err != nil {
		return false, c.fail(opAvailability, mapLedgerError(err))
	}

	if !available {
		c.notifier.Error(models.FailureGatewayUnavailable, app.StatusUnavailable)
		return false, nil
	}

	c.notifier.Success(app.StatusAvailable)
	return true, nil
}

func (c *recordController) InitGateway(ctx context.Context) error {
	if err := c.gwInit.Ensure(ctx); err != nil {
		return c.fail(opInit, mapGatewayError(err))
	}
	return nil
}

func (c *recordController) WarmStart(ctx context.Context) error {
	if c.snapshots == nil || c.records.Len() > 0 {
		return nil
	}

	records, err := c.snapshots.LoadSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("load record snapshot: %w", err)
	}
	if len(records) > 0 {
		c.records.ReplaceAll(records)
	}

	return nil
}

func (c *recordController) Views() []models.RecordView {
	records := c.records.All()
	reveals := c.reveals.Snapshot()

	views := make([]models.RecordView, 0, len(records))
	for _, r := range records {
		var provisional *int64
		if v, ok := reveals[r.ID]; ok {
			provisional = &v
		}
		views = append(views, models.NewRecordView(r, provisional))
	}

	return views
}

func (c *recordController) Stats() models.Stats {
	return c.engine.Compute(c.records.All())
}

func (c *recordController) Revision() uint64 {
	return c.records.Revision()
}

func (c *recordController) Owner() string {
	return c.signer.Address()
}

func (c *recordController) Notifier() *StatusNotifier {
	return c.notifier
}

// persistFor binds the ledger's verify call to record id.
func (c *recordController) persistFor(id string) adapter.PersistDecryption {
	return func(ctx context.Context, abiEncodedClearValues, decryptionProof string) (adapter.PendingTx, error) {
		return c.ledger.VerifyDecryption(ctx, models.VerifyDecryptionRequest{
			ID:                    id,
			AbiEncodedClearValues: abiEncodedClearValues,
			DecryptionProof:       decryptionProof,
		})
	}
}

// alreadyVerified returns the ledger-attested value of r. A verified record
// without a stored value counts as 0.
func (c *recordController) alreadyVerified(r models.Record) *int64 {
	value, _ := r.AuthoritativeValue()
	c.notifier.Success(app.StatusAlreadyVerify)
	return &value
}

// settleLostRace handles a record verified by someone else: the collection is
// reloaded and the winner's value returned.
func (c *recordController) settleLostRace(ctx context.Context, id string) (*int64, error) {
	c.log.WithRecord(id).Info().Msg("record already verified on ledger")

	if err := c.reload(ctx); err != nil {
		c.log.Err(err).Str("id", id).Msg("reload after lost verification race failed")
	}
	c.reveals.Delete(id)

	if r, err := c.records.GetByID(id); err == nil && r.Verified {
		return c.alreadyVerified(r), nil
	}

	lr, err := c.ledger.GetRecord(ctx, id)
	if err != nil {
		return nil, c.fail(opReveal, mapLedgerError(err))
	}
	return c.alreadyVerified(recordFromLedger(lr)), nil
}

func (c *recordController) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.opTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.opTimeout)
}

// fail publishes the error banner for op and returns err unchanged.
func (c *recordController) fail(op operation, err error) error {
	c.log.Err(err).Str("op", op.String()).Msg("record operation failed")
	c.notifier.Error(Classify(err), failureMessage(op, err))
	return err
}
