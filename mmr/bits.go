package mmr

import "math/bits"

// BitLength returns the 1 based index of the most significant set bit of
// num. BitLength(0) is 0.
func BitLength(num uint64) uint64 {
	return uint64(bits.Len64(num))
}

// PopCount returns the number of set bits in num. For the leaf count of an
// mmr (not its size) this is also the number of peaks, see PeakPositions.
func PopCount(num uint64) uint64 {
	return uint64(bits.OnesCount64(num))
}

// AllOnes returns true iff num is 2^k - 1 for some k >= 0, which is the bit
// pattern of every left most peak position. Zero is vacuously all ones.
func AllOnes(num uint64) bool {
	return num&(num+1) == 0
}

// MakeAllOnes returns 2^k - 1. k may be at most 64, larger values return
// ErrBitLengthOverflow.
func MakeAllOnes(k uint64) (uint64, error) {
	if k > 64 {
		return 0, ErrBitLengthOverflow
	}
	if k == 64 {
		return ^uint64(0), nil
	}
	return (uint64(1) << k) - 1, nil
}
