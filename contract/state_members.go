package contract

import (
	"memberfund/sdk"
)

// saveMember persists one member record under its packed key.
func saveMember(state sdk.State, addr sdk.Address, m *Member) {
	state.Set(memberKey(addr), string(EncodeMember(m)))
}

// loadMember returns nil when the account never deposited.
func loadMember(state sdk.State, addr sdk.Address) *Member {
	raw := state.Get(memberKey(addr))
	if raw == nil {
		return nil
	}
	m, err := DecodeMember([]byte(*raw))
	if err != nil {
		return nil
	}
	return m
}

// addMemberToIndex appends to the roster list, skipping dupes.
func addMemberToIndex(state sdk.State, addr sdk.Address) {
	list := listMemberAddresses(state)
	for _, existing := range list {
		if existing == addr {
			return
		}
	}
	list = append(list, addr)
	state.Set(membersIndexKey, string(EncodeAddressList(list)))
}

// listMemberAddresses returns the roster in insertion order. Records are
// never dropped, so this covers past members with zero shares too.
func listMemberAddresses(state sdk.State) []sdk.Address {
	raw := state.Get(membersIndexKey)
	if raw == nil {
		return nil
	}
	list, err := DecodeAddressList([]byte(*raw))
	if err != nil {
		return nil
	}
	return list
}
