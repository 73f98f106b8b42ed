package notekeeper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Workflow-Manager-admin/note-keeper/pkg/core"
)

func TestBroker_PublishNeverBlocks(t *testing.T) {
	b := newBroker(2)

	// 1. No consumer. If publish blocked on a full buffer this producer
	// would hang, so run it on its own goroutine with a deadline.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 5; i++ {
			b.publish(core.Event{Type: core.EventCreate, ID: int64(i + 1)})
		}
	}()

	select {
	case <-done:
		// Producer finished even though nothing has read yet.
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a full buffer")
	}

	// 2. Overflow beyond the buffer is dropped and counted.
	assert.Equal(t, int64(3), b.droppedCount())

	// 3. The buffered events survive, in order.
	e := <-b.events()
	assert.Equal(t, int64(1), e.ID)
	e = <-b.events()
	assert.Equal(t, int64(2), e.ID)
}

func TestBroker_CloseIsIdempotent(t *testing.T) {
	b := newBroker(1)
	b.close()
	b.close()

	// Publishing after close is a silent no-op, not a panic.
	b.publish(core.Event{Type: core.EventDelete, ID: 9})

	_, ok := <-b.events()
	require.False(t, ok, "channel must be closed")
	assert.Equal(t, int64(0), b.droppedCount())
}
