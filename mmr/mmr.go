package mmr

import (
	"bytes"
	"fmt"
	"hash"
)

// MMR is the append only engine. It exclusively owns a NodeStore and keeps
// the current peaks and bagged root cached, consistent with the size after
// every successful append.
//
// The engine is single writer. Hosts sharing an instance across goroutines
// must serialize access externally.
type MMR struct {
	hasher   hash.Hash
	store    NodeStore
	size     uint64
	peaks    [][]byte
	root     []byte
	notifier Notifier
}

// Authority is the append capability for an MMR instance. It is issued once
// by New, must not be copied, and is required by AppendLeaves. Holders of
// the bare *MMR handle can read and prove but not extend the log.
type Authority struct {
	noCopy noCopy
	mmr    *MMR
}

// Option configures an MMR at construction.
type Option func(*MMR)

// WithNotifier registers a notifier to receive one Update per non empty
// append batch.
func WithNotifier(n Notifier) Option {
	return func(m *MMR) { m.notifier = n }
}

// New creates an engine over the provided store, restoring from it if it is
// non empty, and issues the append authority for the instance.
//
// Restore is by replay: only the digest sequence is read back, the peaks
// and root caches are recomputed from the stored size. A store whose size
// is not a valid mmr size, or which cannot produce a digest for every peak,
// fails with ErrStoreCorrupt.
func New(store NodeStore, hasher hash.Hash, opts ...Option) (*MMR, *Authority, error) {
	size, err := store.Size()
	if err != nil {
		return nil, nil, err
	}

	m := &MMR{hasher: hasher, store: store, size: size}
	for _, opt := range opts {
		opt(m)
	}

	// a valid mmr size never leaves a pair of siblings without a parent
	if size > 0 && Height(size+1) > Height(size) {
		return nil, nil, fmt.Errorf("%w: %d is not a valid mmr size", ErrStoreCorrupt, size)
	}

	if err = m.refreshCaches(); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrStoreCorrupt, err)
	}
	return m, &Authority{mmr: m}, nil
}

// Size returns the total number of nodes in the MMR.
func (m *MMR) Size() uint64 {
	return m.size
}

// Root returns a copy of the current bagged root,
// H(size || peaks left to right). For an empty MMR this is H("0").
func (m *MMR) Root() []byte {
	return bytes.Clone(m.root)
}

// Peaks returns copies of the current peak digests, left to right.
func (m *MMR) Peaks() [][]byte {
	return cloneDigests(m.peaks)
}

// Node returns a copy of the digest at pos. Together with Size this lets a
// host enumerate the node sequence for snapshotting.
func (m *MMR) Node(pos uint64) ([]byte, error) {
	if pos == 0 || pos > m.size {
		return nil, fmt.Errorf("%w: %d of %d", ErrPositionOutOfRange, pos, m.size)
	}
	value, err := m.store.Get(pos)
	if err != nil {
		return nil, err
	}
	return bytes.Clone(value), nil
}

// AppendLeaves appends each datum in order, back filling the interior nodes
// induced by each leaf, and emits a single Update for the whole batch. An
// empty batch is a no-op and emits nothing.
func (m *MMR) AppendLeaves(auth *Authority, data ...[]byte) error {
	if auth == nil || auth.mmr != m {
		return ErrNotAuthorized
	}
	if len(data) == 0 {
		return nil
	}

	for _, d := range data {
		if err := m.appendLeaf(d); err != nil {
			return err
		}
	}

	if m.notifier != nil {
		m.notifier.Notify(Update{Root: m.Root(), Peaks: m.Peaks(), Size: m.size})
	}
	return nil
}

// appendLeaf stages the leaf digest and every parent it completes, writes
// them to the store, then refreshes the peaks and root caches. Nothing is
// written until the whole chain of new nodes has been computed.
//
// The back fill loop works because of the post order layout: whenever the
// node just placed is a right sibling, both children of its parent are now
// present and the parent occupies the very next position. The left child of
// each completed parent always precedes the new leaf, so it is already in
// the store.
func (m *MMR) appendLeaf(data []byte) error {
	pos := m.size + 1
	digest := HashLeaf(m.hasher, pos, data)
	staged := [][]byte{digest}

	for IsRightSibling(pos) {
		left, err := m.store.Get(SiblingPosition(pos))
		if err != nil {
			return err
		}
		pos++
		digest = HashPosPair(m.hasher, pos, left, digest)
		staged = append(staged, digest)
	}

	for _, node := range staged {
		at, err := m.store.Append(node)
		if err != nil {
			return err
		}
		if at != m.size+1 {
			return fmt.Errorf("%w: appended at %d, expected %d", ErrStoreCorrupt, at, m.size+1)
		}
		m.size++
	}
	return m.refreshCaches()
}

// refreshCaches recomputes the peak digests and the bagged root for the
// current size.
func (m *MMR) refreshCaches() error {
	positions := PeakPositions(m.size)
	peaks := make([][]byte, 0, len(positions))
	for _, pos := range positions {
		value, err := m.store.Get(pos)
		if err != nil {
			return err
		}
		peaks = append(peaks, bytes.Clone(value))
	}
	m.peaks = peaks
	m.root = BagPeaks(m.hasher, m.size, peaks...)
	return nil
}

func cloneDigests(values [][]byte) [][]byte {
	out := make([][]byte, len(values))
	for i, v := range values {
		out[i] = bytes.Clone(v)
	}
	return out
}

// noCopy triggers go vet's copylocks check when a holder is copied.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
