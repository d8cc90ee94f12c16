package sdk

// MockLedger is a scriptable Ledger for tests. It keeps real balances so
// scenarios can assert where funds ended up, and it deduplicates by
// transaction id the way the engine assumes the production ledger does: a
// replayed id that already settled is acknowledged without moving funds
// again.
type MockLedger struct {
	balances map[Address]uint64
	settled  map[uint64]bool
	failNext int
}

func NewMockLedger() *MockLedger {
	return &MockLedger{
		balances: make(map[Address]uint64),
		settled:  make(map[uint64]bool),
	}
}

// Mint credits an account out of thin air so tests can fund depositors.
// Example payload: ledger.Mint("acct:alice", 10_000)
func (m *MockLedger) Mint(addr Address, amount uint64) {
	m.balances[addr] += amount
}

// BalanceOf returns the current balance of an account.
func (m *MockLedger) BalanceOf(addr Address) uint64 {
	return m.balances[addr]
}

// FailNext makes the following n Transfer calls report ErrTransferFailed
// without settling, simulating a flaky or out-of-gas remote call.
func (m *MockLedger) FailNext(n int) {
	m.failNext = n
}

// Settled reports whether the given transaction id already went through.
func (m *MockLedger) Settled(txID uint64) bool {
	return m.settled[txID]
}

func (m *MockLedger) Transfer(txID uint64, from Address, to Address, amount uint64) error {
	if m.failNext > 0 {
		m.failNext--
		return ErrTransferFailed
	}
	// replay of an id that settled before the caller learned the outcome
	if m.settled[txID] {
		return nil
	}
	if m.balances[from] < amount {
		return ErrTransferFailed
	}
	m.balances[from] -= amount
	m.balances[to] += amount
	m.settled[txID] = true
	return nil
}
