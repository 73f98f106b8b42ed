package core

import "context"

// Repository defines the contract for the remote note collection.
// Adhering to this interface keeps the core independent of the transport
// (REST today, anything that can list, create, update and delete notes).
//
// The contract is deliberately the four calls the backend exposes. There is
// no Get: single-note reads are served from the refetched list cache.
type Repository interface {
	// List returns all notes in the collection, in backend order.
	List(ctx context.Context) ([]Note, error)

	// Create persists a new note (n.ID must be zero) and returns the
	// backend's copy, including the assigned ID.
	Create(ctx context.Context, n Note) (Note, error)

	// Update replaces the note identified by n.ID and returns the
	// backend's copy.
	Update(ctx context.Context, n Note) (Note, error)

	// Delete removes the note with the given ID.
	Delete(ctx context.Context, id int64) error
}

// Watchable defines an interface for repositories that can emit change
// events on their own (pollers, push transports).
type Watchable interface {
	// Watch emits an event per observed change until ctx is done.
	Watch(ctx context.Context) (<-chan Event, error)
}
