package contract

import (
	"fmt"

	"memberfund/sdk"
)

// Event is what a successful (or failure-reported) Dispatch hands back to the
// caller. Each variant mirrors one operation outcome.
type Event interface {
	isEvent()
}

// DepositEvent reports freshly minted shares for a member.
type DepositEvent struct {
	Member sdk.Address
	Share  uint64
}

// SubmitFundingProposalEvent reports a newly registered proposal.
type SubmitFundingProposalEvent struct {
	Proposer   sdk.Address
	Receiver   sdk.Address
	ProposalID uint64
	Amount     uint64
}

// SubmitVoteEvent reports one counted ballot.
type SubmitVoteEvent struct {
	Account    sdk.Address
	ProposalID uint64
	Vote       Vote
}

// ProcessProposalEvent reports a finalized proposal and its verdict.
type ProcessProposalEvent struct {
	ProposalID uint64
	Passed     bool
}

// RageQuitEvent reports the tokens redeemed for a burned stake.
type RageQuitEvent struct {
	Member sdk.Address
	Amount uint64
}

// TransactionFailedEvent reports a journaled action whose transfer bounced.
// The id is the handle a later Continue must present.
type TransactionFailedEvent struct {
	TransactionID uint64
}

func (DepositEvent) isEvent()               {}
func (SubmitFundingProposalEvent) isEvent() {}
func (SubmitVoteEvent) isEvent()            {}
func (ProcessProposalEvent) isEvent()       {}
func (RageQuitEvent) isEvent()              {}
func (TransactionFailedEvent) isEvent()     {}

// emitDeposit writes a tiny "dep" line so watchers see share mints without
// scanning state diffs.
func (d *Dao) emitDeposit(member sdk.Address, share uint64) {
	d.log.Info().Msg(fmt.Sprintf(
		"dep|by:%s|sh:%d",
		member,
		share,
	))
}

// emitProposalCreated keeps observers updated with a short pc line per idea.
func (d *Dao) emitProposalCreated(id uint64, proposer sdk.Address, receiver sdk.Address, amount uint64) {
	d.log.Info().Msg(fmt.Sprintf(
		"pc|id:%d|by:%s|to:%s|am:%d",
		id,
		proposer,
		receiver,
		amount,
	))
}

// emitVoteCasted includes the raw choice so tallies can be replayed from logs only.
func (d *Dao) emitVoteCasted(id uint64, voter sdk.Address, v Vote) {
	d.log.Info().Msg(fmt.Sprintf(
		"v|id:%d|by:%s|c:%s",
		id,
		voter,
		v,
	))
}

// emitProposalProcessed leaves a short hint whether funds moved after finalize.
func (d *Dao) emitProposalProcessed(id uint64, passed bool) {
	d.log.Info().Msg(fmt.Sprintf(
		"pp|id:%d|ok:%t",
		id,
		passed,
	))
}

// emitRageQuit mirrors the deposit ping but traces payouts for burned stakes.
func (d *Dao) emitRageQuit(member sdk.Address, amount uint64) {
	d.log.Info().Msg(fmt.Sprintf(
		"rq|by:%s|am:%d",
		member,
		amount,
	))
}

// emitTransactionFailed flags a stuck transfer so operators know which id to
// continue.
func (d *Dao) emitTransactionFailed(id uint64) {
	d.log.Warn().Msg(fmt.Sprintf(
		"txf|id:%d",
		id,
	))
}
