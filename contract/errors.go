package contract

import "errors"

// Request-fatal errors. None of these ever leaves a journal entry behind:
// validation runs before a transaction id is allocated.
var (
	// ErrNotAuthorized means the acting account holds no shares.
	ErrNotAuthorized = errors.New("account is not a fund member")
	// ErrInvalidReceiver rejects proposals directed at the zero address.
	ErrInvalidReceiver = errors.New("proposal for the zero address")
	// ErrInsufficientFunds means the uncommitted balance cannot cover the
	// proposal amount.
	ErrInsufficientFunds = errors.New("not enough funds in the treasury")
	// ErrProposalNotFound means no proposal exists under the given id.
	ErrProposalNotFound = errors.New("proposal does not exist")
	// ErrVotingNotStarted means the proposal's starting period is still ahead.
	ErrVotingNotStarted = errors.New("voting period has not started")
	// ErrVotingExpired means the voting window has closed.
	ErrVotingExpired = errors.New("proposal voting period has expired")
	// ErrInvalidVote rejects ballot values outside yes/no.
	ErrInvalidVote = errors.New("vote must be yes or no")
	// ErrAlreadyVoted rejects a second vote by the same account.
	ErrAlreadyVoted = errors.New("account has already voted on that proposal")
	// ErrPreviousNotProcessed enforces strictly sequential finalization.
	ErrPreviousNotProcessed = errors.New("previous proposal must be processed")
	// ErrAlreadyProcessed rejects re-finalizing a processed proposal.
	ErrAlreadyProcessed = errors.New("proposal has already been processed")
	// ErrNotReady means voting plus grace period have not elapsed yet.
	ErrNotReady = errors.New("proposal is not ready to be processed")
	// ErrInsufficientShares rejects ragequits above the member's holding.
	ErrInsufficientShares = errors.New("insufficient shares")
	// ErrRagequitBlocked gates exit on the newest unprocessed yes-vote.
	ErrRagequitBlocked = errors.New("cannot ragequit until the highest proposal voted yes on is processed")
	// ErrTransactionNotFound means Continue named an id with no live journal
	// entry.
	ErrTransactionNotFound = errors.New("transaction does not exist")
)
