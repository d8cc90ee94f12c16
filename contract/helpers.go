package contract

import (
	"math"
	"math/bits"
)

// satAdd clamps at MaxUint64 instead of wrapping.
func satAdd(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return sum
}

// satSub clamps at zero instead of wrapping.
func satSub(a, b uint64) uint64 {
	diff, borrow := bits.Sub64(a, b, 0)
	if borrow != 0 {
		return 0
	}
	return diff
}

// calculateShare converts a token deposit into shares at the current rate.
// The very first deposit mints 1:1. Later deposits mint
// totalShares*tokens/balance computed over 128 bits; if even the quotient
// exceeds 64 bits the result saturates.
func calculateShare(totalShares, balance, tokens uint64) uint64 {
	if balance == 0 {
		return tokens
	}
	hi, lo := bits.Mul64(totalShares, tokens)
	if hi >= balance {
		// quotient would not fit in 64 bits
		return math.MaxUint64
	}
	quo, _ := bits.Div64(hi, lo, balance)
	return quo
}

// redeemableFunds converts shares back into tokens at the current rate.
// amount <= totalShares is checked by the caller, so the 128-bit quotient
// always fits: balance*amount/totalShares <= balance.
func redeemableFunds(balance, amount, totalShares uint64) uint64 {
	if totalShares == 0 {
		return 0
	}
	hi, lo := bits.Mul64(balance, amount)
	quo, _ := bits.Div64(hi, lo, totalShares)
	return quo
}

// quorumReached checks a proposal outcome in basis points: yes must beat no
// outright and yes/totalShares must reach quorum percent. yes <= totalShares,
// so yes*10000/totalShares <= 10000 and the wide division cannot overflow.
func quorumReached(yes, no, totalShares, quorum uint64) bool {
	if yes <= no {
		return false
	}
	if totalShares == 0 {
		return false
	}
	hi, lo := bits.Mul64(yes, 10_000)
	ratio, _ := bits.Div64(hi, lo, totalShares)
	return ratio >= satMul(quorum, 100)
}

// satMul clamps multiplication the same way satAdd does.
func satMul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return math.MaxUint64
	}
	return lo
}
