package mmr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPeakPositions(t *testing.T) {
	tests := []struct {
		mmrSize uint64
		want    []uint64
	}{
		{0, nil},
		{1, []uint64{1}},
		{3, []uint64{3}},
		{4, []uint64{3, 4}},
		{7, []uint64{7}},
		{8, []uint64{7, 8}},
		{10, []uint64{7, 10}},
		{11, []uint64{7, 10, 11}},
		{15, []uint64{15}},
		{16, []uint64{15, 16}},
		{18, []uint64{15, 18}},
		{19, []uint64{15, 18, 19}},
		{22, []uint64{15, 22}},
		{23, []uint64{15, 22, 23}},
		{25, []uint64{15, 22, 25}},
		{26, []uint64{15, 22, 25, 26}},
		{255, []uint64{255}},
		{184, []uint64{127, 158, 173, 180, 183, 184}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PeakPositions(tt.mmrSize), "PeakPositions(%d)", tt.mmrSize)
	}
}

func TestPeakPositionsAscendingAndPeakHeights(t *testing.T) {
	// Walk every valid mmr size reachable by appending up to 300 leaves and
	// check the structural guarantees: strictly ascending positions, each
	// peak higher than the one to its right, the last peak at exactly the
	// mmr size, and the peak count equal to the popcount of the leaf count.
	size := uint64(0)
	for leaves := uint64(1); leaves <= 300; leaves++ {
		size++ // the new leaf
		for IsRightSibling(size) {
			size++ // each completed parent
		}

		peaks := PeakPositions(size)
		assert.Equal(t, PopCount(leaves), uint64(len(peaks)), "peak count for %d leaves", leaves)
		assert.Equal(t, size, peaks[len(peaks)-1], "last peak for size %d", size)

		for i := 1; i < len(peaks); i++ {
			assert.Less(t, peaks[i-1], peaks[i], "ascending for size %d", size)
			assert.Greater(t, Height(peaks[i-1]), Height(peaks[i]), "heights for size %d", size)
		}
	}
}
