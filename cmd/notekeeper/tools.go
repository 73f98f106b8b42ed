package main

import "github.com/modelcontextprotocol/go-sdk/mcp"

type (
	// ListInput contains parameters for listing notes.
	ListInput struct{}

	// NoteInfo is one row of the note list.
	NoteInfo struct {
		ID    int64  `json:"id"`
		Title string `json:"title"`
	}

	// ListOutput contains the note list.
	ListOutput struct {
		Notes []NoteInfo `json:"notes"`
		Total int        `json:"total"`
	}

	// ReadInput contains parameters for reading a note.
	ReadInput struct {
		ID int64 `json:"id" jsonschema:"Numeric ID of the note"`
	}

	// ReadOutput contains the full note.
	ReadOutput struct {
		ID      int64  `json:"id"`
		Title   string `json:"title"`
		Content string `json:"content"`
	}

	// CreateInput contains parameters for creating a note.
	CreateInput struct {
		Title   string `json:"title" jsonschema:"Title of the new note"`
		Content string `json:"content,omitempty" jsonschema:"Content of the new note (optional)"`
	}

	// CreateOutput contains the created note as the backend stored it.
	CreateOutput struct {
		ID    int64  `json:"id"`
		Title string `json:"title"`
	}

	// UpdateInput contains parameters for updating a note.
	UpdateInput struct {
		ID      int64  `json:"id" jsonschema:"Numeric ID of the note"`
		Title   string `json:"title,omitempty" jsonschema:"New title (empty keeps the current one)"`
		Content string `json:"content,omitempty" jsonschema:"New content (empty keeps the current one)"`
	}

	// UpdateOutput contains the result of updating a note.
	UpdateOutput struct {
		Success bool  `json:"success"`
		ID      int64 `json:"id"`
	}

	// DeleteInput contains parameters for deleting a note.
	DeleteInput struct {
		ID      int64  `json:"id" jsonschema:"Numeric ID of the note"`
		Confirm string `json:"confirm" jsonschema:"Must be set to 'yes' to confirm deletion"`
	}

	// DeleteOutput contains the result of deleting a note.
	DeleteOutput struct {
		Success bool  `json:"success"`
		ID      int64 `json:"id"`
	}
)

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_notes",
		Description: "List all notes with their IDs and titles.",
	}, handleListNotes)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "read_note",
		Description: "Read a note by ID. Returns the title and full content.",
	}, handleReadNote)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_note",
		Description: "Create a note with a title and optional content. The backend assigns the ID.",
	}, handleCreateNote)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_note",
		Description: "Update an existing note. Empty fields keep their current values.",
	}, handleUpdateNote)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_note",
		Description: "Delete a note by ID. Requires confirm='yes' for safety.",
	}, handleDeleteNote)
}
