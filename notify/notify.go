// Package notify is the in-process notification capability the data-entry
// surfaces use to report outcomes to the user.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Level classifies a notification.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification is a single user-facing message.
type Notification struct {
	ID        string    `json:"id"`
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

const defaultHistoryLimit = 50

// Notifier fans notifications out to subscribers and keeps a bounded
// history. Pushing never blocks: a subscriber that cannot keep up loses
// notifications rather than stalling the caller.
type Notifier struct {
	mu          sync.Mutex
	history     []Notification
	limit       int
	subscribers []chan Notification
	nowTime     func() time.Time
}

// NotifierOption defines a function type to modify the Notifier instance.
type NotifierOption func(*Notifier)

// WithHistoryLimit bounds the retained history.
func WithHistoryLimit(limit int) NotifierOption {
	return func(n *Notifier) {
		if limit > 0 {
			n.limit = limit
		}
	}
}

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) NotifierOption {
	return func(n *Notifier) {
		n.nowTime = nowFunc
	}
}

func NewNotifier(options ...NotifierOption) *Notifier {
	n := &Notifier{
		limit:   defaultHistoryLimit,
		nowTime: time.Now,
	}
	for _, opt := range options {
		opt(n)
	}
	return n
}

// Push records and fans out a notification, returning it with its assigned
// ID.
func (n *Notifier) Push(level Level, message string) Notification {
	notification := Notification{
		ID:        uuid.NewString(),
		Level:     level,
		Message:   message,
		CreatedAt: n.nowTime(),
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	n.history = append(n.history, notification)
	if len(n.history) > n.limit {
		n.history = n.history[len(n.history)-n.limit:]
	}

	for _, sub := range n.subscribers {
		select {
		case sub <- notification:
		default:
			log.Warn().Str("id", notification.ID).Msg("notification dropped: slow subscriber")
		}
	}
	return notification
}

// Subscribe returns a channel receiving future notifications. The channel
// is buffered; it is never closed by the notifier.
func (n *Notifier) Subscribe() <-chan Notification {
	ch := make(chan Notification, 16)

	n.mu.Lock()
	defer n.mu.Unlock()
	n.subscribers = append(n.subscribers, ch)
	return ch
}

// History returns a copy of the retained notifications, oldest first.
func (n *Notifier) History() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	copied := make([]Notification, len(n.history))
	copy(copied, n.history)
	return copied
}
