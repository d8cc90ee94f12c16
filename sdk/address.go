package sdk

// Address identifies an account on the external token ledger.
type Address string

// ZeroAddress is the null identity; it is never a valid proposal receiver.
const ZeroAddress Address = ""

// String returns the literal representation of the address.
// Example payload: sdk.Address("acct:alice").String()
func (a Address) String() string {
	return string(a)
}

// IsZero reports whether the address is the null identity.
// Example payload: sdk.ZeroAddress.IsZero()
func (a Address) IsZero() bool {
	return a == ZeroAddress
}
