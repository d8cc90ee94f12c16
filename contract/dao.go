package contract

import (
	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"

	"memberfund/sdk"
)

// Dao is the governance and treasury engine. All mutations funnel through
// Dispatch so the journal discipline holds for every fund-moving path: the
// entry is written before the transfer leaves, and an interrupted operation
// can always be replayed under the same transaction id.
type Dao struct {
	cfg    Config
	state  sdk.State
	ledger sdk.Ledger
	clock  clock.Clock
	log    zerolog.Logger
}

// New wires the engine against a state store and a token ledger. The clock is
// injected so tests can steer voting windows deterministically.
func New(cfg Config, state sdk.State, ledger sdk.Ledger, clk clock.Clock, log zerolog.Logger) *Dao {
	return &Dao{
		cfg:    cfg,
		state:  state,
		ledger: ledger,
		clock:  clk,
		log:    log.With().Str("component", "dao").Logger(),
	}
}

// now returns unix millis, the unit every period in Config is expressed in.
func (d *Dao) now() int64 {
	return d.clock.Now().UnixMilli()
}

// Dispatch routes one caller action to its handler. Validation failures come
// back as errors with no state written; a bounced transfer is NOT an error,
// it comes back as a TransactionFailedEvent carrying the id to continue.
func (d *Dao) Dispatch(caller sdk.Address, action Action) (Event, error) {
	switch act := action.(type) {
	case DepositAction:
		return d.deposit(caller, nil, act.Amount)
	case SubmitFundingProposalAction:
		return d.submitFundingProposal(caller, act.Receiver, act.Amount, act.Quorum, act.Details)
	case SubmitVoteAction:
		return d.submitVote(caller, act.ProposalID, act.Vote)
	case ProcessProposalAction:
		return d.processProposal(caller, nil, act.ProposalID)
	case RageQuitAction:
		return d.ragequit(caller, nil, act.Amount)
	case ContinueAction:
		return d.continueTransaction(act.TransactionID)
	default:
		// the Action union is sealed, a new variant without a handler is a
		// programming error
		panic("unhandled action variant")
	}
}

// deposit moves tokens from the caller into the treasury and mints shares at
// the pre-deposit rate. A failed transfer erases the journal entry: nothing
// was minted, the caller just deposits again.
func (d *Dao) deposit(caller sdk.Address, txID *uint64, amount uint64) (Event, error) {
	id := beginTransaction(d.state, txID, caller, DepositAction{Amount: amount})
	if err := d.ledger.Transfer(id, caller, d.cfg.Treasury, amount); err != nil {
		endTransaction(d.state, id)
		d.emitTransactionFailed(id)
		return TransactionFailedEvent{TransactionID: id}, nil
	}

	// share price is fixed by the totals as they stood before this deposit
	share := calculateShare(getTotalShares(d.state), getBalance(d.state), amount)

	member := loadMember(d.state, caller)
	if member == nil {
		member = &Member{}
		addMemberToIndex(d.state, caller)
	}
	member.Shares = satAdd(member.Shares, share)
	saveMember(d.state, caller, member)

	setTotalShares(d.state, satAdd(getTotalShares(d.state), share))
	creditBalance(d.state, amount)
	endTransaction(d.state, id)

	d.emitDeposit(caller, share)
	return DepositEvent{Member: caller, Share: share}, nil
}

// submitFundingProposal registers a payout request and locks its amount so
// concurrent proposals cannot promise the same funds twice. Consecutive
// proposals are spaced at least one period apart, which leaves dissenting
// members a window to ragequit.
func (d *Dao) submitFundingProposal(caller sdk.Address, receiver sdk.Address, amount uint64, quorum uint64, details string) (Event, error) {
	if m := loadMember(d.state, caller); m == nil || m.Shares == 0 {
		return nil, ErrNotAuthorized
	}
	if receiver.IsZero() {
		return nil, ErrInvalidReceiver
	}
	if satSub(getBalance(d.state), getLockedFunds(d.state)) < amount {
		return nil, ErrInsufficientFunds
	}

	startingPeriod := d.now()
	id := nextProposalID(d.state)
	if id > 0 {
		if prev := loadProposal(d.state, id-1); prev != nil {
			earliest := prev.StartingPeriod + d.cfg.PeriodDuration
			if startingPeriod < earliest {
				startingPeriod = earliest
			}
		}
	}

	p := &Proposal{
		Proposer:       caller,
		Receiver:       receiver,
		Quorum:         quorum,
		Amount:         amount,
		Details:        details,
		StartingPeriod: startingPeriod,
		EndedAt:        startingPeriod + d.cfg.VotingPeriodLength,
		VotesByMember:  map[sdk.Address]Vote{},
	}
	saveProposal(d.state, id, p)
	lockFunds(d.state, amount)

	d.emitProposalCreated(id, caller, receiver, amount)
	return SubmitFundingProposalEvent{
		Proposer:   caller,
		Receiver:   receiver,
		ProposalID: id,
		Amount:     amount,
	}, nil
}

// submitVote counts one share-weighted ballot inside the voting window. A yes
// vote also bumps the member's watermark: they cannot ragequit until every
// proposal they backed has been finalized.
func (d *Dao) submitVote(caller sdk.Address, proposalID uint64, vote Vote) (Event, error) {
	member := loadMember(d.state, caller)
	if member == nil || member.Shares == 0 {
		return nil, ErrNotAuthorized
	}
	p := loadProposal(d.state, proposalID)
	if p == nil {
		return nil, ErrProposalNotFound
	}
	now := d.now()
	if now > p.EndedAt {
		return nil, ErrVotingExpired
	}
	if now < p.StartingPeriod {
		return nil, ErrVotingNotStarted
	}
	if _, voted := p.VotesByMember[caller]; voted {
		return nil, ErrAlreadyVoted
	}

	switch vote {
	case VoteYes:
		p.YesVotes = satAdd(p.YesVotes, member.Shares)
		if member.HighestIndexYesVote == nil || *member.HighestIndexYesVote < proposalID {
			id := proposalID
			member.HighestIndexYesVote = &id
			saveMember(d.state, caller, member)
		}
	case VoteNo:
		p.NoVotes = satAdd(p.NoVotes, member.Shares)
	default:
		return nil, ErrInvalidVote
	}
	p.VotesByMember[caller] = vote
	saveProposal(d.state, proposalID, p)

	d.emitVoteCasted(proposalID, caller, vote)
	return SubmitVoteEvent{Account: caller, ProposalID: proposalID, Vote: vote}, nil
}

// processProposal finalizes a proposal once voting plus grace are over.
// Finalization is strictly sequential by id. The verdict is persisted before
// the payout transfer, so a replay never re-tallies under different totals. A
// failed payout keeps the journal entry: the transfer is retried via Continue.
func (d *Dao) processProposal(caller sdk.Address, txID *uint64, proposalID uint64) (Event, error) {
	p := loadProposal(d.state, proposalID)
	if p == nil {
		return nil, ErrProposalNotFound
	}
	if proposalID > 0 {
		if prev := loadProposal(d.state, proposalID-1); prev != nil && !prev.Processed {
			return nil, ErrPreviousNotProcessed
		}
	}
	if p.Processed {
		return nil, ErrAlreadyProcessed
	}
	if d.now() < p.EndedAt+d.cfg.GracePeriodLength {
		return nil, ErrNotReady
	}

	if txID == nil {
		// a payout attempt that bounced earlier may still hold a live id;
		// issuing the transfer under a second one would defeat the ledger's
		// dedup and could pay the receiver twice
		txID = findPendingTransaction(d.state, func(e *JournalEntry) bool {
			return e.Action == ProcessProposalAction{ProposalID: proposalID}
		})
	}
	if txID == nil {
		p.Passed = quorumReached(p.YesVotes, p.NoVotes, getTotalShares(d.state), p.Quorum)
		saveProposal(d.state, proposalID, p)
	}

	if p.Passed {
		id := beginTransaction(d.state, txID, caller, ProcessProposalAction{ProposalID: proposalID})
		if err := d.ledger.Transfer(id, d.cfg.Treasury, p.Receiver, p.Amount); err != nil {
			d.emitTransactionFailed(id)
			return TransactionFailedEvent{TransactionID: id}, nil
		}
		endTransaction(d.state, id)
		debitBalance(d.state, p.Amount)
	}

	unlockFunds(d.state, p.Amount)
	p.Processed = true
	saveProposal(d.state, proposalID, p)

	d.emitProposalProcessed(proposalID, p.Passed)
	return ProcessProposalEvent{ProposalID: proposalID, Passed: p.Passed}, nil
}

// ragequit burns shares for a proportional slice of the treasury. Nothing is
// burned until the payout settles, so a failed transfer leaves the member
// whole and the journal entry live for Continue.
func (d *Dao) ragequit(caller sdk.Address, txID *uint64, amount uint64) (Event, error) {
	member := loadMember(d.state, caller)
	if member == nil || member.Shares == 0 {
		return nil, ErrNotAuthorized
	}
	if amount > member.Shares {
		return nil, ErrInsufficientShares
	}
	if member.HighestIndexYesVote != nil {
		if p := loadProposal(d.state, *member.HighestIndexYesVote); p != nil && !p.Processed {
			return nil, ErrRagequitBlocked
		}
	}

	funds := redeemableFunds(getBalance(d.state), amount, getTotalShares(d.state))
	// the reserve held for open proposals is untouchable
	if satSub(getBalance(d.state), funds) < getLockedFunds(d.state) {
		return nil, ErrInsufficientFunds
	}

	if txID == nil {
		// same dedup discipline as the payout path: a failed exit may still
		// hold a live id, and this exit must reuse it
		txID = findPendingTransaction(d.state, func(e *JournalEntry) bool {
			return e.Caller == caller && e.Action == RageQuitAction{Amount: amount}
		})
	}
	id := beginTransaction(d.state, txID, caller, RageQuitAction{Amount: amount})
	if err := d.ledger.Transfer(id, d.cfg.Treasury, caller, funds); err != nil {
		d.emitTransactionFailed(id)
		return TransactionFailedEvent{TransactionID: id}, nil
	}
	endTransaction(d.state, id)

	member.Shares = satSub(member.Shares, amount)
	// the record survives a full exit; zero shares already strips every
	// membership right and the vote watermark stays auditable
	saveMember(d.state, caller, member)
	setTotalShares(d.state, satSub(getTotalShares(d.state), amount))
	debitBalance(d.state, funds)

	d.emitRageQuit(caller, funds)
	return RageQuitEvent{Member: caller, Amount: funds}, nil
}

// continueTransaction replays a journaled action under its original id and
// on behalf of its original caller. The ledger treats the id as settled-once,
// so replaying after a quiet success is a harmless no-op transfer.
func (d *Dao) continueTransaction(transactionID uint64) (Event, error) {
	entry := lookupTransaction(d.state, transactionID)
	if entry == nil {
		return nil, ErrTransactionNotFound
	}
	id := transactionID
	switch act := entry.Action.(type) {
	case DepositAction:
		return d.deposit(entry.Caller, &id, act.Amount)
	case ProcessProposalAction:
		return d.processProposal(entry.Caller, &id, act.ProposalID)
	case RageQuitAction:
		return d.ragequit(entry.Caller, &id, act.Amount)
	default:
		return nil, ErrTransactionNotFound
	}
}
