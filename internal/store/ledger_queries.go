package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-transcript-keeper/models"
)

const (
	recordsTable     = "records"
	txTable          = "transactions"
	ciphertextsTable = "ciphertexts"
)

var pgBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var recordColumns = []string{
	"id", "name", "encrypted_value", "public_value1", "public_value2",
	"description", "creator", "created_at", "is_verified", "decrypted_value",
}

var txReceiptColumns = []string{
	"hash", "kind", "status", "reason", "block_number", "submitted_at", "mined_at",
}

func built(query string, args []any, err error) (string, []any, error) {
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildListRecordIDsQuery() (string, []any, error) {
	return built(pgBuilder.Select("id").From(recordsTable).OrderBy("seq").ToSql())
}

func buildGetRecordQuery(id string) (string, []any, error) {
	return built(pgBuilder.Select(recordColumns...).From(recordsTable).Where(sq.Eq{"id": id}).ToSql())
}

func buildRecordExistsQuery(id string) (string, []any, error) {
	return built(pgBuilder.Select("is_verified").From(recordsTable).Where(sq.Eq{"id": id}).ToSql())
}

func buildInsertRecordQuery(r models.LedgerRecord) (string, []any, error) {
	return built(pgBuilder.Insert(recordsTable).
		Columns(recordColumns...).
		Values(
			r.ID, r.Name, r.EncryptedValue, r.PublicValue1, r.PublicValue2,
			r.Description, r.Creator, time.Unix(r.Timestamp, 0).UTC(), r.IsVerified, r.DecryptedValue,
		).ToSql())
}

func buildMarkVerifiedQuery(id string, value int64) (string, []any, error) {
	return built(pgBuilder.Update(recordsTable).
		Set("is_verified", true).
		Set("decrypted_value", value).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"is_verified": false}).
		ToSql())
}

func buildInsertTxQuery(tx models.Transaction) (string, []any, error) {
	return built(pgBuilder.Insert(txTable).
		Columns("hash", "kind", "sender", "payload", "status", "submitted_at").
		Values(tx.Hash, string(tx.Kind), tx.Sender, tx.Payload, string(models.TxPending), tx.SubmittedAt).
		ToSql())
}

func buildGetTxQuery(hash string) (string, []any, error) {
	return built(pgBuilder.Select(txReceiptColumns...).From(txTable).Where(sq.Eq{"hash": hash}).ToSql())
}

func buildPendingTxsQuery(limit uint64) (string, []any, error) {
	return built(pgBuilder.Select("hash", "kind", "sender", "payload", "submitted_at").
		From(txTable).
		Where(sq.Eq{"status": string(models.TxPending)}).
		OrderBy("seq").
		Limit(limit).
		ToSql())
}

func buildLatestBlockQuery() (string, []any, error) {
	return built(pgBuilder.Select("COALESCE(MAX(block_number), 0)").From(txTable).ToSql())
}

func buildSettleTxQuery(hash string, status models.TxStatus, reason string, block int64, minedAt time.Time) (string, []any, error) {
	return built(pgBuilder.Update(txTable).
		Set("status", string(status)).
		Set("reason", reason).
		Set("block_number", block).
		Set("mined_at", minedAt).
		Where(sq.Eq{"hash": hash}).
		Where(sq.Eq{"status": string(models.TxPending)}).
		ToSql())
}

func buildInsertCiphertextQuery(ct models.Ciphertext) (string, []any, error) {
	return built(pgBuilder.Insert(ciphertextsTable).
		Columns("handle", "contract_address", "owner", "data", "created_at").
		Values(ct.Handle, ct.ContractAddress, ct.Owner, ct.Data, ct.CreatedAt).
		ToSql())
}

func buildGetCiphertextQuery(handle string) (string, []any, error) {
	return built(pgBuilder.Select("handle", "contract_address", "owner", "data", "created_at").
		From(ciphertextsTable).
		Where(sq.Eq{"handle": handle}).
		ToSql())
}
