package contract

import (
	"memberfund/sdk"
)

// saveProposal persists one proposal record under its packed key.
func saveProposal(state sdk.State, id uint64, p *Proposal) {
	state.Set(proposalKey(id), string(EncodeProposal(p)))
}

// loadProposal returns nil for ids that were never issued.
func loadProposal(state sdk.State, id uint64) *Proposal {
	raw := state.Get(proposalKey(id))
	if raw == nil {
		return nil
	}
	p, err := DecodeProposal([]byte(*raw))
	if err != nil {
		return nil
	}
	return p
}
