package contract

import (
	"memberfund/sdk"
)

// Vote is a member's stance on a proposal.
type Vote uint8

const (
	VoteYes Vote = 1
	VoteNo  Vote = 2
)

// String prints the vote as lower-case text for events and logs.
// Example payload: contract.VoteYes.String()
func (v Vote) String() string {
	switch v {
	case VoteYes:
		return "yes"
	case VoteNo:
		return "no"
	default:
		return "unspecified"
	}
}

// Member holds an account's proportional claim on the fund. An entry with
// zero shares can exist in storage (after a full ragequit) but does not count
// as a member for authorization purposes.
type Member struct {
	Shares uint64
	// HighestIndexYesVote is the newest proposal id the member voted yes on.
	// It only ever rises, and it blocks ragequit until that proposal is
	// processed.
	HighestIndexYesVote *uint64
}

// Proposal is a request to pay Amount to Receiver, voted on by members.
// Votes mutate it while the window is open; Processed flips exactly once and
// freezes the record.
type Proposal struct {
	Proposer       sdk.Address
	Receiver       sdk.Address
	YesVotes       uint64
	NoVotes        uint64
	Quorum         uint64 // percentage 0-100 of total shares that must vote yes
	Amount         uint64
	Processed      bool
	Passed         bool
	Details        string
	StartingPeriod int64 // unix millis
	EndedAt        int64 // StartingPeriod + voting period
	VotesByMember  map[sdk.Address]Vote
}

// Config carries the immutable initialization parameters of the fund.
type Config struct {
	// ApprovedLedger is the address of the token service all custody moves
	// through.
	ApprovedLedger sdk.Address
	// Treasury is the fund's own account on that ledger.
	Treasury sdk.Address
	// PeriodDuration is the minimum spacing between proposal starting
	// periods, in millis, so members have time to exit before a new vote.
	PeriodDuration int64
	// VotingPeriodLength is how long a proposal accepts votes, in millis.
	VotingPeriodLength int64
	// GracePeriodLength is the mandatory delay after voting closes before a
	// proposal may be processed, in millis.
	GracePeriodLength int64
}
