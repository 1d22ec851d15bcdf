package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBus_ReplacesCurrentNotice(t *testing.T) {
	t.Parallel()

	bus := NewBus(time.Minute)
	defer bus.Close()

	first := bus.Publish(LevelInfo, "Goal! Arsenal 1-0")
	second := bus.Publish(LevelInfo, "Goal! Arsenal 1-1")
	require.NotEqual(t, first.ID, second.ID)

	got, ok := bus.Current()
	require.True(t, ok)
	require.Equal(t, second.ID, got.ID)
	require.Equal(t, "Goal! Arsenal 1-1", got.Message)
}

func TestBus_AutoDismiss(t *testing.T) {
	t.Parallel()

	bus := NewBus(20 * time.Millisecond)
	defer bus.Close()

	bus.Publish(LevelSuccess, "link copied")
	_, ok := bus.Current()
	require.True(t, ok)

	require.Eventually(t, func() bool {
		_, ok := bus.Current()
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestBus_CurrentHonoursExpiryClock(t *testing.T) {
	t.Parallel()

	bus := NewBus(2 * time.Second)
	defer bus.Close()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	bus.now = func() time.Time { return now }

	n := bus.Publish(LevelInfo, "kickoff")
	require.Equal(t, now.Add(2*time.Second), n.ExpiresAt)

	now = now.Add(2 * time.Second)
	_, ok := bus.Current()
	require.False(t, ok)
}

func TestBus_SubscribeAndClose(t *testing.T) {
	t.Parallel()

	bus := NewBus(time.Minute)
	ch, cancel := bus.Subscribe(4)
	other, cancelOther := bus.Subscribe(1)
	cancelOther()
	cancelOther()

	bus.Publish(LevelError, "live feed unavailable")
	select {
	case n := <-ch:
		require.Equal(t, LevelError, n.Level)
	case <-time.After(time.Second):
		t.Fatal("expected notice on subscription")
	}
	_, open := <-other
	require.False(t, open)

	bus.Close()
	_, open = <-ch
	require.False(t, open)
	cancel()

	bus.Publish(LevelInfo, "ignored")
	_, ok := bus.Current()
	require.False(t, ok)
}
