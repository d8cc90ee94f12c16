package contract

import (
	"memberfund/sdk"
)

// The treasury cells are plain decimal counters, same representation as the
// proposal/transaction counts, so a raw state dump stays human readable.

func getBalance(state sdk.State) uint64 {
	return getCount(state, BalanceKey)
}

func setBalance(state sdk.State, val uint64) {
	setCount(state, BalanceKey, val)
}

func getLockedFunds(state sdk.State) uint64 {
	return getCount(state, LockedFundsKey)
}

func setLockedFunds(state sdk.State, val uint64) {
	setCount(state, LockedFundsKey, val)
}

func getTotalShares(state sdk.State) uint64 {
	return getCount(state, TotalSharesKey)
}

func setTotalShares(state sdk.State, val uint64) {
	setCount(state, TotalSharesKey, val)
}

// creditBalance adds incoming deposits, saturating at the top.
func creditBalance(state sdk.State, amount uint64) {
	setBalance(state, satAdd(getBalance(state), amount))
}

// debitBalance removes outgoing funds, clamping at zero.
func debitBalance(state sdk.State, amount uint64) {
	setBalance(state, satSub(getBalance(state), amount))
}

// lockFunds reserves the amount a pending proposal would pay out.
func lockFunds(state sdk.State, amount uint64) {
	setLockedFunds(state, satAdd(getLockedFunds(state), amount))
}

// unlockFunds releases a finalized proposal's reservation.
func unlockFunds(state sdk.State, amount uint64) {
	setLockedFunds(state, satSub(getLockedFunds(state), amount))
}
