package contract

import (
	"memberfund/sdk"
)

// Role tells apart strangers, share holders and accounts that only retain a
// historical record after redeeming every share.
type Role uint8

const (
	RoleNone Role = iota
	RoleMember
	RoleRecordOnly
)

func (r Role) String() string {
	switch r {
	case RoleMember:
		return "member"
	case RoleRecordOnly:
		return "record"
	default:
		return "none"
	}
}

// IsMember reports whether the account currently holds shares.
func (d *Dao) IsMember(addr sdk.Address) bool {
	m := loadMember(d.state, addr)
	return m != nil && m.Shares > 0
}

// UserStatus classifies an account for indexers and front ends.
func (d *Dao) UserStatus(addr sdk.Address) Role {
	m := loadMember(d.state, addr)
	switch {
	case m == nil:
		return RoleNone
	case m.Shares > 0:
		return RoleMember
	default:
		return RoleRecordOnly
	}
}

// MemberInfo returns the stored record, nil for unknown accounts.
func (d *Dao) MemberInfo(addr sdk.Address) *Member {
	return loadMember(d.state, addr)
}

// MemberPower returns the share count, zero for unknown accounts.
func (d *Dao) MemberPower(addr sdk.Address) uint64 {
	m := loadMember(d.state, addr)
	if m == nil {
		return 0
	}
	return m.Shares
}

// Members returns the roster in deposit order.
func (d *Dao) Members() []sdk.Address {
	return listMemberAddresses(d.state)
}

// ProposalInfo returns one proposal, nil for ids never issued.
func (d *Dao) ProposalInfo(id uint64) *Proposal {
	return loadProposal(d.state, id)
}

// AllProposals returns every proposal in submission order.
func (d *Dao) AllProposals() []*Proposal {
	next := getCount(d.state, ProposalsCount)
	out := make([]*Proposal, 0, next)
	for id := uint64(0); id < next; id++ {
		if p := loadProposal(d.state, id); p != nil {
			out = append(out, p)
		}
	}
	return out
}

// NextProposalID returns the id the next submission will take.
func (d *Dao) NextProposalID() uint64 {
	return getCount(d.state, ProposalsCount)
}

// Balance returns the treasury's tracked token balance.
func (d *Dao) Balance() uint64 {
	return getBalance(d.state)
}

// LockedFunds returns the total reserved by pending proposals.
func (d *Dao) LockedFunds() uint64 {
	return getLockedFunds(d.state)
}

// TotalShares returns shares outstanding across all members.
func (d *Dao) TotalShares() uint64 {
	return getTotalShares(d.state)
}

// PendingTransactions lists journal ids stuck mid-transfer, the candidates
// for a Continue.
func (d *Dao) PendingTransactions() []uint64 {
	return pendingTransactionIDs(d.state)
}
