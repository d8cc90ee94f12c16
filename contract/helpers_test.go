package contract_test

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"memberfund/contract"
	"memberfund/sdk"
)

const (
	treasuryAddr = sdk.Address("fund:treasury")
	ledgerAddr   = sdk.Address("token:main")

	alice = sdk.Address("acct:alice")
	bob   = sdk.Address("acct:bob")
	carol = sdk.Address("acct:carol")

	periodDuration = int64(10_000)
	votingPeriod   = int64(100_000)
	gracePeriod    = int64(10_000)
)

type fixture struct {
	dao    *contract.Dao
	state  *sdk.MockState
	ledger *sdk.MockLedger
	clk    *clock.Mock
}

// newTestDao wires the engine against mocks so every test controls time and
// transfer outcomes directly.
func newTestDao(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		state:  sdk.NewMockState(),
		ledger: sdk.NewMockLedger(),
		clk:    clock.NewMock(),
	}
	cfg := contract.Config{
		ApprovedLedger:     ledgerAddr,
		Treasury:           treasuryAddr,
		PeriodDuration:     periodDuration,
		VotingPeriodLength: votingPeriod,
		GracePeriodLength:  gracePeriod,
	}
	f.dao = contract.New(cfg, f.state, f.ledger, f.clk, zerolog.Nop())
	return f
}

// advance moves the mock clock forward by ms milliseconds.
func (f *fixture) advance(ms int64) {
	f.clk.Add(time.Duration(ms) * time.Millisecond)
}

// mustDeposit mints tokens for the account and deposits them, asserting the
// share mint went through.
func mustDeposit(t *testing.T, f *fixture, addr sdk.Address, amount uint64) uint64 {
	t.Helper()
	f.ledger.Mint(addr, amount)
	ev, err := f.dao.Dispatch(addr, contract.DepositAction{Amount: amount})
	require.NoError(t, err)
	dep, ok := ev.(contract.DepositEvent)
	require.True(t, ok, "expected a deposit event, got %T", ev)
	return dep.Share
}

// mustSubmitProposal registers a funding proposal and returns its id.
func mustSubmitProposal(t *testing.T, f *fixture, proposer sdk.Address, receiver sdk.Address, amount uint64, quorum uint64) uint64 {
	t.Helper()
	ev, err := f.dao.Dispatch(proposer, contract.SubmitFundingProposalAction{
		Receiver: receiver,
		Amount:   amount,
		Quorum:   quorum,
		Details:  "test funding",
	})
	require.NoError(t, err)
	sub, ok := ev.(contract.SubmitFundingProposalEvent)
	require.True(t, ok, "expected a proposal event, got %T", ev)
	return sub.ProposalID
}

// mustVote casts one ballot and asserts it was counted.
func mustVote(t *testing.T, f *fixture, voter sdk.Address, proposalID uint64, vote contract.Vote) {
	t.Helper()
	ev, err := f.dao.Dispatch(voter, contract.SubmitVoteAction{ProposalID: proposalID, Vote: vote})
	require.NoError(t, err)
	_, ok := ev.(contract.SubmitVoteEvent)
	require.True(t, ok, "expected a vote event, got %T", ev)
}

// finishVoting jumps past the voting window and the grace period of the given
// proposal so it becomes processable.
func finishVoting(t *testing.T, f *fixture, proposalID uint64) {
	t.Helper()
	p := f.dao.ProposalInfo(proposalID)
	require.NotNil(t, p)
	target := p.EndedAt + gracePeriod + 1
	now := f.clk.Now().UnixMilli()
	if target > now {
		f.advance(target - now)
	}
}

// assertInvariants checks the accounting identities that must hold after any
// sequence of operations.
func assertInvariants(t *testing.T, f *fixture) {
	t.Helper()
	require.LessOrEqual(t, f.dao.LockedFunds(), f.dao.Balance(),
		"locked funds may never exceed the treasury balance")
	require.Equal(t, f.ledger.BalanceOf(treasuryAddr), f.dao.Balance(),
		"tracked balance must match the treasury's ledger balance")

	var sum uint64
	for _, addr := range f.dao.Members() {
		sum += f.dao.MemberPower(addr)
	}
	require.Equal(t, sum, f.dao.TotalShares(),
		"total shares must equal the sum over all member records")
}
