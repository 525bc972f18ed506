package eventbus

import (
	"github.com/cairnlog/cairn/mmr"
)

// TypeRootUpdated identifies the event published after each non empty
// append batch.
const TypeRootUpdated = "mmr.root_updated"

// RootUpdated carries the accumulator state after an append batch.
type RootUpdated struct {
	mmr.Update
}

func (RootUpdated) GetType() string { return TypeRootUpdated }

// Notifier adapts a Bus to the engine's mmr.Notifier port.
type Notifier struct {
	bus *Bus
}

// NewNotifier returns a notifier publishing RootUpdated events to bus.
func NewNotifier(bus *Bus) *Notifier {
	return &Notifier{bus: bus}
}

func (n *Notifier) Notify(u mmr.Update) {
	n.bus.Publish(RootUpdated{Update: u})
}
