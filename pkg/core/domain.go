package core

import "fmt"

// EventType represents the type of change observed in the note collection.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents an observed change to a note.
type Event struct {
	Type      EventType
	ID        int64
	Timestamp int64 // Unix timestamp
}

// String renders the event for logs.
// It also satisfies the lifecycle Event contract, so note events can feed
// lifecycle pipelines directly.
func (e Event) String() string {
	return fmt.Sprintf("%s note %d", e.Type, e.ID)
}
