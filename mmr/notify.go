package mmr

// Update describes the state of the MMR after a successful non empty
// append batch. The digests are copies; receivers may retain them.
type Update struct {
	Root  []byte
	Peaks [][]byte
	Size  uint64
}

// Notifier receives one Update per non empty AppendLeaves call. The engine
// does not depend on delivery; Notify must not call back into the engine.
type Notifier interface {
	Notify(Update)
}
