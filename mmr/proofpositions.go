package mmr

// ProofPathPositions returns the positions of the sibling nodes encountered
// walking from pos up to its local peak, bottom up. These are the witness
// positions for the local tree portion of an inclusion proof.
//
// The walk pushes the sibling of the current node and steps to the parent
// until the parent falls outside the MMR. The final push is always the
// sibling of the local peak itself, which lies outside the local tree (and
// possibly outside the MMR), so it is discarded.
//
// For pos 16 and size 23 the path is [17, 21]: 17 witnesses 16 up to 18,
// 21 witnesses 18 up to the local peak 22.
//
// When pos is itself a peak with no parent in range the path is empty; a
// leaf in that situation is necessarily the final node, so pos == size is
// the leaf-is-peak case.
func ProofPathPositions(pos uint64, mmrSize uint64) []uint64 {
	if pos == mmrSize {
		return nil
	}

	var path []uint64
	current := pos
	for {
		path = append(path, SiblingPosition(current))
		current = ParentPosition(current)
		if current > mmrSize {
			break
		}
	}
	// the walk overshoots by exactly one
	path = path[:len(path)-1]
	if len(path) == 0 {
		return nil
	}
	return path
}

// ProofLayout holds the three disjoint position lists which, together with
// the proven position, determine every input a verifier needs.
type ProofLayout struct {
	// Path holds the local tree witness positions, bottom up.
	Path []uint64
	// LeftPeaks holds the peaks strictly left of the local peak, left to right.
	LeftPeaks []uint64
	// RightPeaks holds the peaks strictly right of the local peak, left to right.
	RightPeaks []uint64
}

// LocalPeakPosition returns the position of the peak of the perfect subtree
// containing pos in an MMR of the given size.
func LocalPeakPosition(pos uint64, mmrSize uint64) uint64 {
	path := ProofPathPositions(pos, mmrSize)
	if len(path) == 0 {
		return pos
	}
	// the parent of the last witness is the parent of the last node on the
	// walk, which is the local peak
	return ParentPosition(path[len(path)-1])
}

// ProofPositions computes the complete witness layout for proving pos
// within an MMR of the given size.
func ProofPositions(pos uint64, mmrSize uint64) ProofLayout {
	layout := ProofLayout{Path: ProofPathPositions(pos, mmrSize)}

	localPeak := pos
	if len(layout.Path) > 0 {
		localPeak = ParentPosition(layout.Path[len(layout.Path)-1])
	}

	allPeaks := PeakPositions(mmrSize)
	if len(allPeaks) < 2 {
		return layout
	}
	for _, peak := range allPeaks {
		switch {
		case peak < localPeak:
			layout.LeftPeaks = append(layout.LeftPeaks, peak)
		case peak > localPeak:
			layout.RightPeaks = append(layout.RightPeaks, peak)
		}
	}
	return layout
}
