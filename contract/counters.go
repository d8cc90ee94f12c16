package contract

import (
	"math"
	"strconv"

	"memberfund/sdk"
)

// getCount loads one of the decimal counter cells, absent means zero.
func getCount(state sdk.State, key string) uint64 {
	raw := state.Get(key)
	if raw == nil {
		return 0
	}
	val, err := strconv.ParseUint(*raw, 10, 64)
	if err != nil {
		return 0
	}
	return val
}

// setCount persists a counter as a decimal string so state dumps stay readable.
func setCount(state sdk.State, key string, val uint64) {
	state.Set(key, strconv.FormatUint(val, 10))
}

// nextProposalID hands out the next sequential proposal id. The counter
// saturates: proposal ids never wrap back onto finalized history.
func nextProposalID(state sdk.State) uint64 {
	id := getCount(state, ProposalsCount)
	if id < math.MaxUint64 {
		setCount(state, ProposalsCount, id+1)
	}
	return id
}

// allocateTransactionID hands out journal ids. Unlike proposals these wrap on
// overflow, old settled entries are long gone by then.
func allocateTransactionID(state sdk.State) uint64 {
	id := getCount(state, TransactionsCount)
	setCount(state, TransactionsCount, id+1)
	return id
}
