package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const DefaultDismissAfter = 2 * time.Second

type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notice is a short-lived user-facing message.
type Notice struct {
	ID        string    `json:"id"`
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Bus holds at most one visible notice. A new notice replaces the current
// one and every notice is dismissed automatically after the dismiss window.
type Bus struct {
	mu           sync.Mutex
	dismissAfter time.Duration
	now          func() time.Time
	current      *Notice
	timer        *time.Timer
	subscribers  map[int]chan Notice
	nextSub      int
	closed       bool
}

func NewBus(dismissAfter time.Duration) *Bus {
	if dismissAfter <= 0 {
		dismissAfter = DefaultDismissAfter
	}
	return &Bus{
		dismissAfter: dismissAfter,
		now:          time.Now,
		subscribers:  make(map[int]chan Notice),
	}
}

// Publish shows message and returns the stored notice. Publishing on a closed
// bus is a no-op.
func (b *Bus) Publish(level Level, message string) Notice {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	n := Notice{
		ID:        uuid.NewString(),
		Level:     level,
		Message:   message,
		CreatedAt: now,
		ExpiresAt: now.Add(b.dismissAfter),
	}
	if b.closed {
		return n
	}

	if b.timer != nil {
		b.timer.Stop()
	}
	b.current = &n
	id := n.ID
	b.timer = time.AfterFunc(b.dismissAfter, func() { b.dismiss(id) })

	for _, ch := range b.subscribers {
		select {
		case ch <- n:
		default:
		}
	}
	return n
}

func (b *Bus) dismiss(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current != nil && b.current.ID == id {
		b.current = nil
	}
}

// Current returns the visible notice, if any.
func (b *Bus) Current() (Notice, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current == nil || !b.now().Before(b.current.ExpiresAt) {
		return Notice{}, false
	}
	return *b.current, true
}

// Subscribe delivers future notices on the returned channel until cancel is
// called or the bus closes. Slow subscribers miss notices rather than block
// publishers.
func (b *Bus) Subscribe(buffer int) (<-chan Notice, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan Notice, buffer)

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		close(ch)
		return ch, func() {}
	}
	id := b.nextSub
	b.nextSub++
	b.subscribers[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if sub, ok := b.subscribers[id]; ok {
				delete(b.subscribers, id)
				close(sub)
			}
		})
	}
}

// Close dismisses the current notice and closes every subscription.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	if b.timer != nil {
		b.timer.Stop()
	}
	b.current = nil
	for id, ch := range b.subscribers {
		delete(b.subscribers, id)
		close(ch)
	}
}
