package mmr

import "errors"

var (
	// ErrPositionOutOfRange indicates a position of 0 or beyond the current
	// mmr size was passed to an operation requiring a live node.
	ErrPositionOutOfRange = errors.New("mmr: position out of range")

	// ErrNotLeaf indicates a proof was requested for an interior node.
	ErrNotLeaf = errors.New("mmr: proof requested for a non leaf position")

	// ErrBitLengthOverflow indicates MakeAllOnes was asked for more than 64 bits.
	ErrBitLengthOverflow = errors.New("mmr: bit length exceeds 64")

	// ErrMalformedProof indicates a proof whose shape is inconsistent with
	// its own position and size. A well formed proof that simply fails to
	// reconstruct the root is not an error, verification just returns false.
	ErrMalformedProof = errors.New("mmr: malformed proof")

	// ErrNotAuthorized indicates AppendLeaves was invoked without the
	// authority token issued for the instance.
	ErrNotAuthorized = errors.New("mmr: append requires the instance authority")

	// ErrStoreCorrupt indicates the backing store contents cannot restore a
	// valid mmr.
	ErrStoreCorrupt = errors.New("mmr: corrupted store")
)
