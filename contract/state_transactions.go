package contract

import (
	"memberfund/sdk"
)

// JournalEntry records a fund-moving action right before its transfer leaves
// the contract. If the transfer is interrupted the entry survives, and a
// Continue with the same id replays the action on behalf of the original
// caller.
type JournalEntry struct {
	Caller sdk.Address
	Action Action
}

// beginTransaction journals an action and returns its id. A nil explicit id
// allocates a fresh one; a non-nil id (a Continue replay) reuses it so the
// downstream ledger can dedup the transfer.
func beginTransaction(state sdk.State, explicit *uint64, caller sdk.Address, action Action) uint64 {
	var id uint64
	if explicit != nil {
		id = *explicit
	} else {
		id = allocateTransactionID(state)
	}
	entry := &JournalEntry{Caller: caller, Action: action}
	state.Set(transactionKey(id), string(EncodeJournalEntry(entry)))
	addTransactionToIndex(state, id)
	return id
}

// endTransaction erases a settled (or abandoned) journal entry. Safe to call
// twice, the second pass is a no-op.
func endTransaction(state sdk.State, id uint64) {
	state.Delete(transactionKey(id))
	removeTransactionFromIndex(state, id)
}

// lookupTransaction returns nil for ids with no live journal entry.
func lookupTransaction(state sdk.State, id uint64) *JournalEntry {
	raw := state.Get(transactionKey(id))
	if raw == nil {
		return nil
	}
	entry, err := DecodeJournalEntry([]byte(*raw))
	if err != nil {
		return nil
	}
	return entry
}

// findPendingTransaction returns the id of a live journal entry the matcher
// accepts, nil when none. A retry arriving as a fresh request adopts this id,
// so the same logical action can never hold two live ids at once.
func findPendingTransaction(state sdk.State, match func(*JournalEntry) bool) *uint64 {
	for _, id := range pendingTransactionIDs(state) {
		if entry := lookupTransaction(state, id); entry != nil && match(entry) {
			found := id
			return &found
		}
	}
	return nil
}

// addTransactionToIndex tracks live journal ids so operators can list what is
// stuck mid-transfer.
func addTransactionToIndex(state sdk.State, id uint64) {
	list := pendingTransactionIDs(state)
	for _, existing := range list {
		if existing == id {
			return
		}
	}
	list = append(list, id)
	state.Set(transactionsIndexKey, string(EncodeUint64List(list)))
}

// removeTransactionFromIndex rebuilds the live list without the given id.
func removeTransactionFromIndex(state sdk.State, id uint64) {
	list := pendingTransactionIDs(state)
	out := list[:0]
	for _, existing := range list {
		if existing != id {
			out = append(out, existing)
		}
	}
	state.Set(transactionsIndexKey, string(EncodeUint64List(out)))
}

// pendingTransactionIDs returns the journal ids still awaiting settlement.
func pendingTransactionIDs(state sdk.State) []uint64 {
	raw := state.Get(transactionsIndexKey)
	if raw == nil {
		return nil
	}
	list, err := DecodeUint64List([]byte(*raw))
	if err != nil {
		return nil
	}
	return list
}
