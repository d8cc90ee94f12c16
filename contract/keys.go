package contract

import "memberfund/sdk"

// Storage key prefixes. One byte per record family keeps keys compact and
// families contiguous in the kv.
const (
	// kMember houses encoded Member structs keyed by account address.
	kMember byte = 0x01
	// kProposal contains encoded Proposal records (dense ids from 0).
	kProposal byte = 0x02
	// kTransaction holds journal entries for in-flight fund-moving actions.
	kTransaction byte = 0x03
)

// Counter and aggregate keys. Plain strings like the counters; these are
// single-slot values, not record families.
const (
	// ProposalsCount holds the next proposal id (dense, from 0).
	ProposalsCount = "count:props"
	// TransactionsCount holds the next transaction id (wrapping id space).
	TransactionsCount = "count:tx"
	// BalanceKey stores the aggregate custodied balance.
	BalanceKey = "fund:balance"
	// LockedFundsKey stores the portion reserved against open proposals.
	LockedFundsKey = "fund:locked"
	// TotalSharesKey stores the sum of all member shares.
	TotalSharesKey = "fund:shares"
	// membersIndexKey lists every account that ever held shares.
	membersIndexKey = "idx:members"
	// transactionsIndexKey lists transaction ids with live journal entries.
	transactionsIndexKey = "idx:tx"
)

// packU64LEInline sprinkles a uint64 into dst in little-endian order so keys
// stay compact.
func packU64LEInline(x uint64, dst []byte) {
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
	dst[4] = byte(x >> 32)
	dst[5] = byte(x >> 40)
	dst[6] = byte(x >> 48)
	dst[7] = byte(x >> 56)
}

// memberKey mixes the prefix with address bytes to avoid nested maps in
// storage.
func memberKey(addr sdk.Address) string {
	addrStr := addr.String()
	buf := make([]byte, 0, 1+len(addrStr))
	buf = append(buf, kMember)
	buf = append(buf, addrStr...)
	return string(buf)
}

// proposalKey builds a storage key for a proposal by id.
func proposalKey(id uint64) string {
	var buf [9]byte
	buf[0] = kProposal
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}

// transactionKey builds a storage key for a journal entry by transaction id.
func transactionKey(id uint64) string {
	var buf [9]byte
	buf[0] = kTransaction
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}
