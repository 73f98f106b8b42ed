package notekeeper_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Workflow-Manager-admin/note-keeper/pkg/core"
)

func TestSession_Polling(t *testing.T) {
	sess, repo := setupSession(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Establish the baseline before the poller starts ticking.
	require.NoError(t, sess.Refresh(ctx))

	require.NoError(t, sess.StartPolling(ctx, 20*time.Millisecond))
	assert.True(t, sess.Polling())

	// Starting twice is refused.
	err := sess.StartPolling(ctx, 20*time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "polling already active")

	// A change made by another client surfaces without any Refresh call.
	added := repo.add("From elsewhere", "")
	e := waitEvent(t, sess.Events())
	assert.Equal(t, core.EventCreate, e.Type)
	assert.Equal(t, added.ID, e.ID)

	sess.StopPolling(ctx)
	assert.False(t, sess.Polling())

	// Polling can start again after a stop.
	require.NoError(t, sess.StartPolling(ctx, 20*time.Millisecond))
	sess.StopPolling(ctx)
}

func TestSession_PollingNeedsInterval(t *testing.T) {
	sess, _ := setupSession(t)

	err := sess.StartPolling(context.Background(), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "poll interval not configured")
}
