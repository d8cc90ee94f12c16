// Package sdk defines the host boundary of the fund engine: the key/value
// state the engine persists itself into, and the external fungible-token
// ledger that actually moves balances. Everything behind these interfaces is
// a collaborator; the engine never reaches past them.
package sdk

import "errors"

// State is the kv surface the engine persists every record into. Values are
// opaque strings; Get returns nil when the key is absent.
type State interface {
	Set(key, value string)
	Get(key string) *string
	Delete(key string)
}

// ErrTransferFailed is returned by a Ledger when a transfer did not settle.
// The caller may retry the same transaction id later; the ledger must treat
// an id it already settled as a no-op success.
var ErrTransferFailed = errors.New("token transfer failed")

// Ledger is the external fungible-token service custody moves through.
// Transfers are addressed by a transaction id so the ledger can deduplicate
// replays of an attempt whose outcome was lost locally.
type Ledger interface {
	Transfer(txID uint64, from Address, to Address, amount uint64) error
}
