package mmr

import (
	"fmt"
)

// Proof is a self contained inclusion proof for a single leaf. All digests
// are copies; a proof never aliases engine storage and remains valid after
// further appends (against the root and size it carries).
//
// The layout mirrors ProofPositions exactly: Path holds the local tree
// witnesses bottom up, LeftPeaks and RightPeaks hold the peaks either side
// of the leaf's local peak, left to right.
type Proof struct {
	// Position is the 1 based position of the proven leaf.
	Position uint64
	// Path holds the sibling digests from the leaf up to the local peak.
	Path [][]byte
	// LeftPeaks holds the peaks strictly left of the local peak.
	LeftPeaks [][]byte
	// RightPeaks holds the peaks strictly right of the local peak.
	RightPeaks [][]byte
	// Root is the bagged root the proof commits to.
	Root []byte
	// Size is the mmr size the proof commits to.
	Size uint64
}

// GenerateProof builds an inclusion proof for the leaf at pos against the
// current root and size. Interior positions are refused with ErrNotLeaf.
func (m *MMR) GenerateProof(pos uint64) (*Proof, error) {
	if pos == 0 || pos > m.size {
		return nil, fmt.Errorf("%w: %d of %d", ErrPositionOutOfRange, pos, m.size)
	}
	if !IsLeaf(pos) {
		return nil, fmt.Errorf("%w: position %d has height %d", ErrNotLeaf, pos, Height(pos))
	}

	layout := ProofPositions(pos, m.size)

	proof := &Proof{
		Position: pos,
		Root:     m.Root(),
		Size:     m.size,
	}
	var err error
	if proof.Path, err = m.fetch(layout.Path); err != nil {
		return nil, err
	}
	if proof.LeftPeaks, err = m.fetch(layout.LeftPeaks); err != nil {
		return nil, err
	}
	if proof.RightPeaks, err = m.fetch(layout.RightPeaks); err != nil {
		return nil, err
	}
	return proof, nil
}

// fetch copies the digests at positions out of the store.
func (m *MMR) fetch(positions []uint64) ([][]byte, error) {
	if len(positions) == 0 {
		return nil, nil
	}
	values := make([][]byte, 0, len(positions))
	for _, pos := range positions {
		value, err := m.Node(pos)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}
