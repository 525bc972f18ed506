package eventbus

import (
	"crypto/sha256"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cairnlog/cairn/mmr"
)

type collector struct {
	mu     sync.Mutex
	ch     chan Event
	events []Event
}

func newCollector() *collector {
	return &collector{ch: make(chan Event, 16)}
}

func (c *collector) Channel() chan Event { return c.ch }

func (c *collector) OnEvent(ev Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, ev)
}

func (c *collector) snapshot() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Event(nil), c.events...)
}

func TestBusFanout(t *testing.T) {
	bus := New(WithPublishBuffer(8))
	a := newCollector()
	b := newCollector()
	bus.Subscribe(a)
	bus.Subscribe(b)
	bus.Start()
	defer bus.Stop()

	bus.Publish(RootUpdated{Update: mmr.Update{Size: 1}})
	bus.Publish(RootUpdated{Update: mmr.Update{Size: 3}})
	bus.WaitForProcessing()

	for _, c := range []*collector{a, b} {
		events := c.snapshot()
		require.Len(t, events, 2)
		assert.Equal(t, TypeRootUpdated, events[0].GetType())
		assert.Equal(t, uint64(1), events[0].(RootUpdated).Size)
		assert.Equal(t, uint64(3), events[1].(RootUpdated).Size)
	}
}

// The full wiring: an engine configured with a bus backed notifier delivers
// one RootUpdated per batch.
func TestEngineNotification(t *testing.T) {
	bus := New()
	sub := newCollector()
	bus.Subscribe(sub)
	bus.Start()
	defer bus.Stop()

	m, auth, err := mmr.New(mmr.NewNodeStore(), sha256.New(), mmr.WithNotifier(NewNotifier(bus)))
	require.NoError(t, err)

	require.NoError(t, m.AppendLeaves(auth)) // no event for an empty batch
	require.NoError(t, m.AppendLeaves(auth, []byte("a"), []byte("b"), []byte("c")))
	bus.WaitForProcessing()

	events := sub.snapshot()
	require.Len(t, events, 1)
	update := events[0].(RootUpdated)
	assert.Equal(t, uint64(4), update.Size)
	assert.Equal(t, m.Root(), update.Root)
	assert.Len(t, update.Peaks, 2)
}

func TestPublishBeforeStartIsDropped(t *testing.T) {
	bus := New()
	sub := newCollector()
	bus.Subscribe(sub)

	bus.Publish(RootUpdated{Update: mmr.Update{Size: 1}})
	bus.Start()
	bus.Publish(RootUpdated{Update: mmr.Update{Size: 3}})
	bus.WaitForProcessing()
	bus.Stop()

	events := sub.snapshot()
	require.Len(t, events, 1)
	assert.Equal(t, uint64(3), events[0].(RootUpdated).Size)
}
