// Package http implements the HTTP transport of the ledger daemon.
//
// It exposes the transcript contract (record reads, signed writes and
// transaction receipts) and the development relayer (key parameters,
// encryption and decryption) over a chi router. Tracing, access logging,
// metrics, compression, wallet authentication and response signing are
// handled here before requests reach the service layer.
package http
