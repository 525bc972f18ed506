package mmr

import (
	"testing"
)

func TestBitLength(t *testing.T) {
	tests := []struct {
		num  uint64
		want uint64
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 2},
		{4, 3},
		{7, 3},
		{8, 4},
		{1 << 32, 33},
		{^uint64(0), 64},
	}
	for _, tt := range tests {
		if got := BitLength(tt.num); got != tt.want {
			t.Errorf("BitLength(%d) = %d, want %d", tt.num, got, tt.want)
		}
	}
	// bit_length(2^k) == k+1 for every k
	for k := uint64(0); k < 64; k++ {
		if got := BitLength(uint64(1) << k); got != k+1 {
			t.Errorf("BitLength(1<<%d) = %d, want %d", k, got, k+1)
		}
	}
}

func TestPopCount(t *testing.T) {
	// popcount(2^k - 1) == k for every k
	for k := uint64(0); k <= 63; k++ {
		n := (uint64(1) << k) - 1
		if got := PopCount(n); got != k {
			t.Errorf("PopCount(%d) = %d, want %d", n, got, k)
		}
	}
}

func TestAllOnes(t *testing.T) {
	tests := []struct {
		num  uint64
		want bool
	}{
		{0, true}, // vacuously all ones
		{1, true},
		{2, false},
		{3, true},
		{4, false},
		{6, false},
		{7, true},
		{1<<63 - 1, true},
		{1 << 63, false},
		{^uint64(0), true},
	}
	for _, tt := range tests {
		if got := AllOnes(tt.num); got != tt.want {
			t.Errorf("AllOnes(%d) = %v, want %v", tt.num, got, tt.want)
		}
	}
	for k := uint64(0); k <= 63; k++ {
		if !AllOnes((uint64(1) << k) - 1) {
			t.Errorf("AllOnes(2^%d - 1) = false, want true", k)
		}
	}
}

func TestMakeAllOnes(t *testing.T) {
	tests := []struct {
		k       uint64
		want    uint64
		wantErr bool
	}{
		{0, 0, false},
		{1, 1, false},
		{2, 3, false},
		{4, 15, false},
		{63, 1<<63 - 1, false},
		{64, ^uint64(0), false},
		{65, 0, true},
		{1000, 0, true},
	}
	for _, tt := range tests {
		got, err := MakeAllOnes(tt.k)
		if (err != nil) != tt.wantErr {
			t.Errorf("MakeAllOnes(%d) err = %v, wantErr %v", tt.k, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("MakeAllOnes(%d) = %d, want %d", tt.k, got, tt.want)
		}
		if err == nil && !AllOnes(got) {
			t.Errorf("MakeAllOnes(%d) = %d, not all ones", tt.k, got)
		}
	}
}
