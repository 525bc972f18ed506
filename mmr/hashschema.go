package mmr

import (
	"hash"
	"strconv"
)

// The hash schema: every digest in the MMR commits to an integer. Leaves
// commit to their own position, interior nodes commit to the parent
// position, and the root commits to the mmr size. Committing positions into
// interior nodes gives non equivocal proof of position, see:
// https://github.com/proofchains/python-proofmarshal/blob/master/proofmarshal/mmr.py#L142

// HashWriteUint64 writes value to the hasher as its base 10 ASCII
// representation, so 0 is the single byte 0x30 and 23 is 0x32 0x33.
//
// This is the serialization convention for every integer committed under
// this package's hash schema, including the empty root seed. Proofs and
// roots are not portable to deployments using a different convention.
func HashWriteUint64(hasher hash.Hash, value uint64) {
	var b [20]byte
	hasher.Write(strconv.AppendUint(b[:0], value, 10))
}

// hashWithUint64 returns H(value || blobs...), resetting the hasher first.
func hashWithUint64(hasher hash.Hash, value uint64, blobs ...[]byte) []byte {
	hasher.Reset()
	HashWriteUint64(hasher, value)
	for _, blob := range blobs {
		hasher.Write(blob)
	}
	return hasher.Sum(nil)
}

// HashLeaf returns the digest committing data to the leaf at pos,
// H(pos || data).
func HashLeaf(hasher hash.Hash, pos uint64, data []byte) []byte {
	return hashWithUint64(hasher, pos, data)
}

// HashPosPair returns the interior node digest H(pos || left || right).
// ** the hasher is reset **
func HashPosPair(hasher hash.Hash, pos uint64, left []byte, right []byte) []byte {
	return hashWithUint64(hasher, pos, left, right)
}

// BagPeaks returns the root digest H(mmrSize || peak1 || peak2 ...), the
// peaks given left to right. For size 0 there are no peaks and the result
// is the empty root H("0").
func BagPeaks(hasher hash.Hash, mmrSize uint64, peaks ...[]byte) []byte {
	return hashWithUint64(hasher, mmrSize, peaks...)
}
