package core

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"
)

// Service handles the business logic for notes.
type Service struct {
	repo Repository
}

// NewService creates a new Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListNotes retrieves all notes from the backend.
func (s *Service) ListNotes(ctx context.Context) ([]Note, error) {
	return s.repo.List(ctx)
}

// CreateNote validates and persists a new note.
// It returns the backend's copy, including the assigned ID.
func (s *Service) CreateNote(ctx context.Context, title, content string) (Note, error) {
	title, err := cleanTitle(title)
	if err != nil {
		return Note{}, err
	}

	// Empty content is allowed; a title-only note is a valid stub.
	return s.repo.Create(ctx, Note{Title: title, Content: content})
}

// UpdateNote validates and replaces an existing note.
// It returns the backend's copy.
func (s *Service) UpdateNote(ctx context.Context, id int64, title, content string) (Note, error) {
	if id <= 0 {
		return Note{}, ErrInvalidID
	}
	title, err := cleanTitle(title)
	if err != nil {
		return Note{}, err
	}

	return s.repo.Update(ctx, Note{ID: id, Title: title, Content: content})
}

// DeleteNote removes a note.
func (s *Service) DeleteNote(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	return s.repo.Delete(ctx, id)
}

// Watch observes changes in the repository if supported.
func (s *Service) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := s.repo.(Watchable)
	if !ok {
		return nil, errors.New("repository does not support watching")
	}
	return w.Watch(ctx)
}

func cleanTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrTitleRequired
	}
	if utf8.RuneCountInString(title) > MaxTitleLen {
		return "", ErrTitleTooLong
	}
	return title, nil
}
