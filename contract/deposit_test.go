package contract_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"memberfund/contract"
)

// TestDepositMintsFirstSharesOneToOne checks the bootstrap rate: the first
// deposit mints one share per token.
func TestDepositMintsFirstSharesOneToOne(t *testing.T) {
	f := newTestDao(t)

	share := mustDeposit(t, f, alice, 10_000)

	require.Equal(t, uint64(10_000), share)
	require.Equal(t, uint64(10_000), f.dao.Balance())
	require.Equal(t, uint64(10_000), f.dao.TotalShares())
	require.True(t, f.dao.IsMember(alice))
	require.Empty(t, f.dao.PendingTransactions())
	assertInvariants(t, f)
}

// TestDepositAccumulatesShares checks that repeat deposits top up the same
// member record instead of forking it.
func TestDepositAccumulatesShares(t *testing.T) {
	f := newTestDao(t)

	mustDeposit(t, f, alice, 6_000)
	mustDeposit(t, f, alice, 4_000)

	require.Equal(t, uint64(10_000), f.dao.MemberPower(alice))
	require.Len(t, f.dao.Members(), 1)
	assertInvariants(t, f)
}

// TestDepositSecondMemberSameRate checks that a second depositor gets shares
// at the going rate while it is still 1:1.
func TestDepositSecondMemberSameRate(t *testing.T) {
	f := newTestDao(t)

	mustDeposit(t, f, alice, 10_000)
	share := mustDeposit(t, f, bob, 5_000)

	require.Equal(t, uint64(5_000), share)
	require.Equal(t, uint64(15_000), f.dao.TotalShares())
	assertInvariants(t, f)
}

// TestDepositTransferFailureLeavesNoTrace checks that a bounced incoming
// transfer mints nothing and leaves no journal entry behind: the caller
// simply deposits again.
func TestDepositTransferFailureLeavesNoTrace(t *testing.T) {
	f := newTestDao(t)
	f.ledger.Mint(alice, 10_000)
	f.ledger.FailNext(1)

	ev, err := f.dao.Dispatch(alice, contract.DepositAction{Amount: 10_000})
	require.NoError(t, err)
	failed, ok := ev.(contract.TransactionFailedEvent)
	require.True(t, ok, "expected a failure report, got %T", ev)

	require.False(t, f.dao.IsMember(alice))
	require.Equal(t, uint64(0), f.dao.Balance())
	require.Empty(t, f.dao.PendingTransactions())

	// the erased id cannot be continued
	_, err = f.dao.Dispatch(alice, contract.ContinueAction{TransactionID: failed.TransactionID})
	require.ErrorIs(t, err, contract.ErrTransactionNotFound)

	// a fresh attempt succeeds under a new id
	share := mustDeposit(t, f, alice, 10_000)
	require.Equal(t, uint64(10_000), share)
	assertInvariants(t, f)
}

// TestDepositInsufficientLedgerBalance checks that depositing more than the
// caller holds is reported as a failed transaction, not minted on credit.
func TestDepositInsufficientLedgerBalance(t *testing.T) {
	f := newTestDao(t)
	f.ledger.Mint(alice, 100)

	ev, err := f.dao.Dispatch(alice, contract.DepositAction{Amount: 10_000})
	require.NoError(t, err)
	_, ok := ev.(contract.TransactionFailedEvent)
	require.True(t, ok, "expected a failure report, got %T", ev)
	require.False(t, f.dao.IsMember(alice))
	assertInvariants(t, f)
}
