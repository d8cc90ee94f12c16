package contract

import "memberfund/sdk"

// Action is the closed set of inbound requests the engine dispatches on.
// The marker method seals the union; there is exactly one handler per
// variant.
type Action interface {
	isAction()
}

// DepositAction moves tokens from the caller into custody in exchange for
// shares.
type DepositAction struct {
	Amount uint64
}

// SubmitFundingProposalAction asks the fund to pay Amount to Receiver,
// subject to a vote. Purely local: it only reserves funds.
type SubmitFundingProposalAction struct {
	Receiver sdk.Address
	Amount   uint64
	Quorum   uint64
	Details  string
}

// SubmitVoteAction casts the caller's yes/no on an open proposal.
type SubmitVoteAction struct {
	ProposalID uint64
	Vote       Vote
}

// ProcessProposalAction finalizes a proposal once voting and grace have
// elapsed, paying out if it passed.
type ProcessProposalAction struct {
	ProposalID uint64
}

// RageQuitAction burns the caller's shares for a proportional cut of the
// custodied funds.
type RageQuitAction struct {
	Amount uint64
}

// ContinueAction replays a journaled action whose remote transfer never
// resolved, under the identical transaction id.
type ContinueAction struct {
	TransactionID uint64
}

func (DepositAction) isAction()               {}
func (SubmitFundingProposalAction) isAction() {}
func (SubmitVoteAction) isAction()            {}
func (ProcessProposalAction) isAction()       {}
func (RageQuitAction) isAction()              {}
func (ContinueAction) isAction()              {}
