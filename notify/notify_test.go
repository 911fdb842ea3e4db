package notify_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/crimsonknight90/inventario-admin/notify"
)

func TestPushRecordsHistory(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	n := notify.NewNotifier(notify.WithNowTime(func() time.Time { return now }))

	first := n.Push(notify.LevelSuccess, "Producto creado")
	second := n.Push(notify.LevelError, "Error al guardar")

	require.NotEmpty(t, first.ID)
	require.NotEqual(t, first.ID, second.ID)
	require.Equal(t, now, first.CreatedAt)

	history := n.History()
	require.Len(t, history, 2)
	require.Equal(t, "Producto creado", history[0].Message)
	require.Equal(t, notify.LevelError, history[1].Level)
}

func TestHistoryIsBounded(t *testing.T) {
	n := notify.NewNotifier(notify.WithHistoryLimit(3))
	for i := 0; i < 10; i++ {
		n.Push(notify.LevelInfo, "msg")
	}
	require.Len(t, n.History(), 3)
}

func TestSubscribeReceivesInOrder(t *testing.T) {
	n := notify.NewNotifier()
	ch := n.Subscribe()

	n.Push(notify.LevelInfo, "uno")
	n.Push(notify.LevelInfo, "dos")

	require.Equal(t, "uno", (<-ch).Message)
	require.Equal(t, "dos", (<-ch).Message)
}

func TestPushNeverBlocksOnSlowSubscriber(t *testing.T) {
	n := notify.NewNotifier()
	n.Subscribe() // never drained

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			n.Push(notify.LevelWarning, "flood")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Push blocked on a slow subscriber")
	}
}
