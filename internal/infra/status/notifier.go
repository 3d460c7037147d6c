// Package status is the message-bar adapter: it logs advisory messages and
// retains the latest one for the delivery layer to poll.
package status

import (
	"log/slog"
	"sync"
	"time"
)

// Message is a transient single-line advisory shown to the operator.
type Message struct {
	Title string    `json:"title"`
	Text  string    `json:"text"`
	At    time.Time `json:"at"`
}

// Notifier implements service.StatusNotifier. Each message supersedes the
// previous one.
type Notifier struct {
	logger *slog.Logger

	mu   sync.RWMutex
	last *Message
}

// NewNotifier creates a new status notifier
func NewNotifier(logger *slog.Logger) *Notifier {
	return &Notifier{logger: logger}
}

// Push publishes a message, replacing any prior one.
func (n *Notifier) Push(title, message string) {
	n.logger.Info("status message", slog.String("title", title), slog.String("message", message))

	n.mu.Lock()
	n.last = &Message{Title: title, Text: message, At: time.Now()}
	n.mu.Unlock()
}

// Last returns the most recent message, if any.
func (n *Notifier) Last() (Message, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if n.last == nil {
		return Message{}, false
	}

	return *n.last, true
}
