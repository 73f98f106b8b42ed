// Package apitest provides an in-process notes backend for package tests.
// It speaks the same four routes the client does and nothing more; it is
// test tooling, not a shippable server.
package apitest

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

// Note is the backend's stored representation.
type Note struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type notePayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Server is a minimal in-memory notes backend.
type Server struct {
	mu       sync.Mutex
	notes    map[int64]Note
	order    []int64
	nextID   int64
	failNext int
	textMode bool

	engine *gin.Engine
	ts     *httptest.Server
}

// New returns a fake backend with no notes and no listener.
// Use Handler to mount it, or RunT to serve it over a local listener.
func New() *Server {
	gin.SetMode(gin.TestMode)

	s := &Server{
		notes: make(map[int64]Note),
	}

	engine := gin.New()
	engine.GET("/notes", s.list)
	engine.POST("/notes", s.create)
	engine.PUT("/notes/:id", s.update)
	engine.DELETE("/notes/:id", s.remove)
	s.engine = engine

	return s
}

// RunT starts a fake backend on a local listener.
// The listener shuts down when the test finishes.
func RunT(t *testing.T) *Server {
	t.Helper()

	s := New()
	s.ts = httptest.NewServer(s.engine)
	t.Cleanup(s.ts.Close)
	return s
}

// URL returns the backend's base URL. Only valid after RunT.
func (s *Server) URL() string {
	return s.ts.URL
}

// Handler exposes the HTTP surface for in-process use.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Seed inserts a note directly into the store and returns its ID.
func (s *Server) Seed(title, content string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	now := time.Now().UTC()
	n := Note{
		ID:        s.nextID,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.notes[n.ID] = n
	s.order = append(s.order, n.ID)
	return n.ID
}

// Get returns the stored note, if any.
func (s *Server) Get(id int64) (Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notes[id]
	return n, ok
}

// Len reports how many notes the backend holds.
func (s *Server) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.notes)
}

// FailNext makes the next n requests answer 500.
func (s *Server) FailNext(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNext = n
}

// ServeText switches list responses to the legacy schema that carries the
// body under "text" instead of "content".
func (s *Server) ServeText(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.textMode = on
}

func (s *Server) failing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failNext > 0 {
		s.failNext--
		return true
	}
	return false
}

func (s *Server) list(ctx *gin.Context) {
	if s.failing() {
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "backend exploded"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]any, 0, len(s.order))
	for _, id := range s.order {
		n := s.notes[id]
		if s.textMode {
			out = append(out, gin.H{
				"id":        n.ID,
				"title":     n.Title,
				"text":      n.Content,
				"createdAt": n.CreatedAt,
				"updatedAt": n.UpdatedAt,
			})
			continue
		}
		out = append(out, n)
	}
	ctx.JSON(http.StatusOK, out)
}

func (s *Server) create(ctx *gin.Context) {
	if s.failing() {
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "backend exploded"})
		return
	}

	var p notePayload
	if err := ctx.ShouldBindJSON(&p); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "invalid body"})
		return
	}
	if p.Title == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "title is required"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	now := time.Now().UTC()
	n := Note{
		ID:        s.nextID,
		Title:     p.Title,
		Content:   p.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.notes[n.ID] = n
	s.order = append(s.order, n.ID)

	ctx.JSON(http.StatusCreated, n)
}

func (s *Server) update(ctx *gin.Context) {
	if s.failing() {
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "backend exploded"})
		return
	}

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}

	var p notePayload
	if err := ctx.ShouldBindJSON(&p); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "invalid body"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notes[id]
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "note not found"})
		return
	}

	n.Title = p.Title
	n.Content = p.Content
	n.UpdatedAt = time.Now().UTC()
	s.notes[id] = n

	ctx.JSON(http.StatusOK, n)
}

func (s *Server) remove(ctx *gin.Context) {
	if s.failing() {
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "backend exploded"})
		return
	}

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.notes[id]; !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "note not found"})
		return
	}

	delete(s.notes, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	ctx.Status(http.StatusNoContent)
}
