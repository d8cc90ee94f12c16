package contract

import (
	"bytes"
	"encoding/binary"
	"errors"
	"sort"

	"memberfund/sdk"
)

type binWriter struct {
	buf bytes.Buffer
}

// newWriter spins up a fresh writer so we dont leak old bytes between encodes.
func newWriter() *binWriter { return &binWriter{} }

// bytes returns the accumulated buffer, tiny helper but keeps code tidy.
func (w *binWriter) bytes() []byte { return w.buf.Bytes() }

// writeBool squashes bools into a single byte flag for deterministic payloads.
func (w *binWriter) writeBool(v bool) {
	if v {
		w.buf.WriteByte(1)
	} else {
		w.buf.WriteByte(0)
	}
}

// writeUint64 writes big endian numbers so tooling can read them without guessing.
func (w *binWriter) writeUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// writeInt64 reuses the uint routine since casting keeps the sign bits intact.
func (w *binWriter) writeInt64(v int64) {
	w.writeUint64(uint64(v))
}

// writeVarUint uses varints to keep counts and lens compact.
func (w *binWriter) writeVarUint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	w.buf.Write(tmp[:n])
}

// writeString prefixes its length then dumps UTF-8 directly.
func (w *binWriter) writeString(s string) {
	w.writeVarUint(uint64(len(s)))
	w.buf.WriteString(s)
}

// writeOptionalUint64 writes a presence bit so decoders know if data follows.
func (w *binWriter) writeOptionalUint64(ptr *uint64) {
	if ptr == nil {
		w.writeBool(false)
		return
	}
	w.writeBool(true)
	w.writeUint64(*ptr)
}

// writeAddress canonicalizes the address before writing, so later parsing is easy.
func (w *binWriter) writeAddress(a sdk.Address) {
	w.writeString(a.String())
}

// writeVoteMap iterates voters in sorted order so binary blobs are stable.
func (w *binWriter) writeVoteMap(m map[sdk.Address]Vote) {
	if m == nil {
		w.writeVarUint(0)
		return
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)
	w.writeVarUint(uint64(len(keys)))
	for _, k := range keys {
		w.writeString(k)
		w.buf.WriteByte(byte(m[sdk.Address(k)]))
	}
}

// encodeMember serializes share holdings plus the yes-vote watermark.
func encodeMember(w *binWriter, m *Member) {
	w.writeUint64(m.Shares)
	w.writeOptionalUint64(m.HighestIndexYesVote)
}

// EncodeMember packs a Member into bytes so storage stays lean and no json noise leaks.
// Example payload: EncodeMember(&Member{Shares: 10_000})
func EncodeMember(m *Member) []byte {
	w := newWriter()
	encodeMember(w, m)
	return w.bytes()
}

// EncodeProposal turns a Proposal into bytes so we can persist votes without json overhead.
// Example payload: EncodeProposal(&Proposal{Proposer: "acct:alice", Amount: 500})
func EncodeProposal(p *Proposal) []byte {
	w := newWriter()
	w.writeAddress(p.Proposer)
	w.writeAddress(p.Receiver)
	w.writeUint64(p.YesVotes)
	w.writeUint64(p.NoVotes)
	w.writeUint64(p.Quorum)
	w.writeUint64(p.Amount)
	w.writeBool(p.Processed)
	w.writeBool(p.Passed)
	w.writeString(p.Details)
	w.writeInt64(p.StartingPeriod)
	w.writeInt64(p.EndedAt)
	w.writeVoteMap(p.VotesByMember)
	return w.bytes()
}

// Journal action tags. Only fund-moving actions can be journaled.
const (
	tagDeposit         byte = 0x01
	tagProcessProposal byte = 0x02
	tagRageQuit        byte = 0x03
)

// EncodeJournalEntry packs the acting account plus the original action so a
// replay reconstructs the exact operation that was in flight.
func EncodeJournalEntry(e *JournalEntry) []byte {
	w := newWriter()
	w.writeAddress(e.Caller)
	switch act := e.Action.(type) {
	case DepositAction:
		w.buf.WriteByte(tagDeposit)
		w.writeUint64(act.Amount)
	case ProcessProposalAction:
		w.buf.WriteByte(tagProcessProposal)
		w.writeUint64(act.ProposalID)
	case RageQuitAction:
		w.buf.WriteByte(tagRageQuit)
		w.writeUint64(act.Amount)
	default:
		// submit/vote/continue never journal; encoding one is a programming
		// error, not a request error
		panic("journal entry for non-journalable action")
	}
	return w.bytes()
}

// EncodeAddressList packs index lists (member roster, live transaction ids are
// numeric and use EncodeUint64List instead).
func EncodeAddressList(addrs []sdk.Address) []byte {
	w := newWriter()
	w.writeVarUint(uint64(len(addrs)))
	for _, a := range addrs {
		w.writeAddress(a)
	}
	return w.bytes()
}

// EncodeUint64List packs numeric index lists like live transaction ids.
func EncodeUint64List(ids []uint64) []byte {
	w := newWriter()
	w.writeVarUint(uint64(len(ids)))
	for _, id := range ids {
		w.writeUint64(id)
	}
	return w.bytes()
}

// ------------------------------------------------------------------
// Decoder helpers
// ------------------------------------------------------------------

type binReader struct {
	data []byte
	pos  int
}

// newReader wraps raw bytes so we can peek sequentially w/out copying.
func newReader(data []byte) *binReader {
	return &binReader{data: data}
}

// readByte grabs the next byte and bumps the cursor, errors on EOF.
func (r *binReader) readByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, errors.New("unexpected EOF")
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// readBool restores bools stored via writeBool above.
func (r *binReader) readBool() (bool, error) {
	b, err := r.readByte()
	if err != nil {
		return false, err
	}
	return b == 1, nil
}

// readUint64 decodes big endian integers for ids and totals.
func (r *binReader) readUint64() (uint64, error) {
	if r.pos+8 > len(r.data) {
		return 0, errors.New("unexpected EOF")
	}
	val := binary.BigEndian.Uint64(r.data[r.pos : r.pos+8])
	r.pos += 8
	return val, nil
}

// readInt64 simply casts the unsigned read, matching the writer logic.
func (r *binReader) readInt64() (int64, error) {
	v, err := r.readUint64()
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}

// readVarUint undoes the compact varint encoding for lengths/counts.
func (r *binReader) readVarUint() (uint64, error) {
	val, n := binary.Uvarint(r.data[r.pos:])
	if n <= 0 {
		return 0, errors.New("invalid varuint")
	}
	r.pos += n
	return val, nil
}

// readString reads the varint length then slices out the utf8 chunk.
func (r *binReader) readString() (string, error) {
	l, err := r.readVarUint()
	if err != nil {
		return "", err
	}
	if r.pos+int(l) > len(r.data) {
		return "", errors.New("unexpected EOF")
	}
	s := string(r.data[r.pos : r.pos+int(l)])
	r.pos += int(l)
	return s, nil
}

// readOptionalUint64 checks the presence byte, then returns a pointer so
// callers know nil.
func (r *binReader) readOptionalUint64() (*uint64, error) {
	ok, err := r.readBool()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	val, err := r.readUint64()
	if err != nil {
		return nil, err
	}
	return &val, nil
}

// readAddress rebuilds the address wrapper from its string form.
func (r *binReader) readAddress() (sdk.Address, error) {
	s, err := r.readString()
	if err != nil {
		return sdk.ZeroAddress, err
	}
	return sdk.Address(s), nil
}

// readVoteMap loops len times and rebuilds the per-member vote records.
func (r *binReader) readVoteMap() (map[sdk.Address]Vote, error) {
	count, err := r.readVarUint()
	if err != nil {
		return nil, err
	}
	result := make(map[sdk.Address]Vote, count)
	for i := uint64(0); i < count; i++ {
		key, err := r.readString()
		if err != nil {
			return nil, err
		}
		v, err := r.readByte()
		if err != nil {
			return nil, err
		}
		result[sdk.Address(key)] = Vote(v)
	}
	return result, nil
}

// DecodeMember is the inverse of EncodeMember and keeps the same field order.
func DecodeMember(data []byte) (*Member, error) {
	r := newReader(data)
	var m Member
	var err error
	if m.Shares, err = r.readUint64(); err != nil {
		return nil, err
	}
	if m.HighestIndexYesVote, err = r.readOptionalUint64(); err != nil {
		return nil, err
	}
	return &m, nil
}

// DecodeProposal rebuilds a Proposal, votes map included.
func DecodeProposal(data []byte) (*Proposal, error) {
	r := newReader(data)
	var p Proposal
	var err error
	if p.Proposer, err = r.readAddress(); err != nil {
		return nil, err
	}
	if p.Receiver, err = r.readAddress(); err != nil {
		return nil, err
	}
	if p.YesVotes, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.NoVotes, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.Quorum, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.Amount, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.Processed, err = r.readBool(); err != nil {
		return nil, err
	}
	if p.Passed, err = r.readBool(); err != nil {
		return nil, err
	}
	if p.Details, err = r.readString(); err != nil {
		return nil, err
	}
	if p.StartingPeriod, err = r.readInt64(); err != nil {
		return nil, err
	}
	if p.EndedAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	if p.VotesByMember, err = r.readVoteMap(); err != nil {
		return nil, err
	}
	return &p, nil
}

// DecodeJournalEntry restores the in-flight action for a Continue replay.
func DecodeJournalEntry(data []byte) (*JournalEntry, error) {
	r := newReader(data)
	var e JournalEntry
	var err error
	if e.Caller, err = r.readAddress(); err != nil {
		return nil, err
	}
	tag, err := r.readByte()
	if err != nil {
		return nil, err
	}
	val, err := r.readUint64()
	if err != nil {
		return nil, err
	}
	switch tag {
	case tagDeposit:
		e.Action = DepositAction{Amount: val}
	case tagProcessProposal:
		e.Action = ProcessProposalAction{ProposalID: val}
	case tagRageQuit:
		e.Action = RageQuitAction{Amount: val}
	default:
		return nil, errors.New("unknown journal action tag")
	}
	return &e, nil
}

// DecodeAddressList is the inverse of EncodeAddressList.
func DecodeAddressList(data []byte) ([]sdk.Address, error) {
	r := newReader(data)
	count, err := r.readVarUint()
	if err != nil {
		return nil, err
	}
	addrs := make([]sdk.Address, 0, count)
	for i := uint64(0); i < count; i++ {
		a, err := r.readAddress()
		if err != nil {
			return nil, err
		}
		addrs = append(addrs, a)
	}
	return addrs, nil
}

// DecodeUint64List is the inverse of EncodeUint64List.
func DecodeUint64List(data []byte) ([]uint64, error) {
	r := newReader(data)
	count, err := r.readVarUint()
	if err != nil {
		return nil, err
	}
	ids := make([]uint64, 0, count)
	for i := uint64(0); i < count; i++ {
		id, err := r.readUint64()
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
