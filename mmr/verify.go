package mmr

import (
	"bytes"
	"fmt"
	"hash"
)

// VerifyInclusion reports whether proof demonstrates that data was
// committed at proof.Position in the MMR whose bagged root and size the
// proof carries. It is pure: only the proof, the candidate data and the
// position algebra are consulted, never a store.
//
// The hasher must implement the same hash function the proving side used.
//
// A structurally malformed proof - position out of range or not a leaf, or
// witness list lengths inconsistent with the position and size - returns
// ErrMalformedProof. A well formed proof that does not reconstruct the
// committed root returns false with no error.
func VerifyInclusion(proof *Proof, hasher hash.Hash, data []byte) (bool, error) {
	if err := checkProofShape(proof); err != nil {
		return false, err
	}

	// Fold the local path bottom up. At each step the accumulator is one
	// child and the witness is the other; which is which follows from the
	// sidedness of the witness position. Parents commit to their own
	// position, exactly as the engine hashed them.
	acc := HashLeaf(hasher, proof.Position, data)
	for i, witnessPos := range proofPathOf(proof) {
		parent := ParentPosition(witnessPos)
		if IsRightSibling(witnessPos) {
			// the witness is the right child, the accumulator is the left
			acc = HashPosPair(hasher, parent, acc, proof.Path[i])
		} else {
			acc = HashPosPair(hasher, parent, proof.Path[i], acc)
		}
	}

	// acc is now the local peak. Re-bag the full peak list with the local
	// peak in place.
	bag := make([][]byte, 0, len(proof.LeftPeaks)+1+len(proof.RightPeaks))
	bag = append(bag, proof.LeftPeaks...)
	bag = append(bag, acc)
	bag = append(bag, proof.RightPeaks...)

	candidate := BagPeaks(hasher, proof.Size, bag...)
	return bytes.Equal(candidate, proof.Root), nil
}

// proofPathOf recomputes the witness positions the proof's path digests
// correspond to. checkProofShape has already confirmed the lengths agree.
func proofPathOf(proof *Proof) []uint64 {
	return ProofPathPositions(proof.Position, proof.Size)
}

func checkProofShape(proof *Proof) error {
	if proof == nil {
		return fmt.Errorf("%w: nil proof", ErrMalformedProof)
	}
	if proof.Position == 0 || proof.Position > proof.Size {
		return fmt.Errorf(
			"%w: position %d out of range for size %d", ErrMalformedProof, proof.Position, proof.Size)
	}
	if !IsLeaf(proof.Position) {
		return fmt.Errorf("%w: position %d is not a leaf", ErrMalformedProof, proof.Position)
	}

	layout := ProofPositions(proof.Position, proof.Size)
	if len(proof.Path) != len(layout.Path) {
		return fmt.Errorf(
			"%w: path has %d digests, position %d of %d requires %d",
			ErrMalformedProof, len(proof.Path), proof.Position, proof.Size, len(layout.Path))
	}
	if len(proof.LeftPeaks) != len(layout.LeftPeaks) {
		return fmt.Errorf(
			"%w: %d left peaks, expected %d", ErrMalformedProof, len(proof.LeftPeaks), len(layout.LeftPeaks))
	}
	if len(proof.RightPeaks) != len(layout.RightPeaks) {
		return fmt.Errorf(
			"%w: %d right peaks, expected %d", ErrMalformedProof, len(proof.RightPeaks), len(layout.RightPeaks))
	}
	return nil
}
