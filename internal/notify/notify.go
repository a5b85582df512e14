// Package notify is the boundary to the transient-notification UI
// collaborator (the snackbar). The engine publishes short-lived messages
// on save/load/delete outcomes; an external renderer consumes them.
package notify

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Level is a notification severity.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notification is one short-lived user-facing message.
type Notification struct {
	ID      string
	Level   Level
	Message string
	Time    time.Time
}

// Notifier publishes transient messages.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// LogSink logs notifications. Used when no UI collaborator is attached.
type LogSink struct{}

func (LogSink) Success(message string) {
	log.Printf("[Notify] success: %s", message)
}

func (LogSink) Error(message string) {
	log.Printf("[Notify] error: %s", message)
}

// MemorySink records notifications in order, each tagged with a unique ID.
// Thread-safe; suitable for tests and for polling renderers.
type MemorySink struct {
	mu       sync.Mutex
	messages []Notification
}

// NewMemorySink creates an empty sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (s *MemorySink) Success(message string) {
	s.record(LevelSuccess, message)
}

func (s *MemorySink) Error(message string) {
	s.record(LevelError, message)
}

func (s *MemorySink) record(level Level, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, Notification{
		ID:      uuid.New().String(),
		Level:   level,
		Message: message,
		Time:    time.Now(),
	})
}

// Notifications returns a copy of all recorded notifications in order.
func (s *MemorySink) Notifications() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Notification, len(s.messages))
	copy(out, s.messages)
	return out
}

// Drain returns all recorded notifications and clears the sink.
func (s *MemorySink) Drain() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.messages
	s.messages = nil
	return out
}
