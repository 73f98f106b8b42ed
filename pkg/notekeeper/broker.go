package notekeeper

import (
	"sync"

	"github.com/Workflow-Manager-admin/note-keeper/pkg/core"
)

// broker fans session events out to a single buffered channel.
// Publishing never blocks: when the consumer lags behind the buffer, events
// are dropped and counted instead.
type broker struct {
	mu      sync.Mutex
	out     chan core.Event
	closed  bool
	dropped int64
}

func newBroker(size int) *broker {
	return &broker{
		out: make(chan core.Event, size),
	}
}

func (b *broker) publish(e core.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	select {
	case b.out <- e:
	default:
		b.dropped++
	}
}

func (b *broker) events() <-chan core.Event {
	return b.out
}

func (b *broker) close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	close(b.out)
}

func (b *broker) droppedCount() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dropped
}
