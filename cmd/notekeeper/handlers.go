package main

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Workflow-Manager-admin/note-keeper/pkg/core"
)

func handleListNotes(ctx context.Context, req *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, ListOutput, error) {
	notes, err := noteService.ListNotes(ctx)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, ListOutput{}, err
	}

	out := ListOutput{
		Notes: make([]NoteInfo, 0, len(notes)),
		Total: len(notes),
	}
	for _, n := range notes {
		out.Notes = append(out.Notes, NoteInfo{ID: n.ID, Title: n.Title})
	}

	return nil, out, nil
}

func handleReadNote(ctx context.Context, req *mcp.CallToolRequest, input ReadInput) (*mcp.CallToolResult, ReadOutput, error) {
	// The backend only exposes a list endpoint, so single reads go
	// through it too.
	notes, err := noteService.ListNotes(ctx)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, ReadOutput{}, err
	}

	for _, n := range notes {
		if n.ID == input.ID {
			return nil, ReadOutput{ID: n.ID, Title: n.Title, Content: n.Content}, nil
		}
	}

	return &mcp.CallToolResult{IsError: true}, ReadOutput{},
		fmt.Errorf("note %d: %w", input.ID, core.ErrNotFound)
}

func handleCreateNote(ctx context.Context, req *mcp.CallToolRequest, input CreateInput) (*mcp.CallToolResult, CreateOutput, error) {
	saved, err := noteService.CreateNote(ctx, input.Title, input.Content)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, CreateOutput{}, err
	}

	return nil, CreateOutput{ID: saved.ID, Title: saved.Title}, nil
}

func handleUpdateNote(ctx context.Context, req *mcp.CallToolRequest, input UpdateInput) (*mcp.CallToolResult, UpdateOutput, error) {
	title, content := input.Title, input.Content

	// Empty fields keep their current values; fetch them when needed.
	if title == "" || content == "" {
		notes, err := noteService.ListNotes(ctx)
		if err != nil {
			return &mcp.CallToolResult{IsError: true}, UpdateOutput{Success: false, ID: input.ID}, err
		}

		found := false
		for _, n := range notes {
			if n.ID == input.ID {
				if title == "" {
					title = n.Title
				}
				if content == "" {
					content = n.Content
				}
				found = true
				break
			}
		}
		if !found {
			return &mcp.CallToolResult{IsError: true}, UpdateOutput{Success: false, ID: input.ID},
				fmt.Errorf("note %d: %w", input.ID, core.ErrNotFound)
		}
	}

	if _, err := noteService.UpdateNote(ctx, input.ID, title, content); err != nil {
		return &mcp.CallToolResult{IsError: true}, UpdateOutput{Success: false, ID: input.ID}, err
	}

	return nil, UpdateOutput{Success: true, ID: input.ID}, nil
}

func handleDeleteNote(ctx context.Context, req *mcp.CallToolRequest, input DeleteInput) (*mcp.CallToolResult, DeleteOutput, error) {
	if input.Confirm != "yes" {
		return &mcp.CallToolResult{IsError: true}, DeleteOutput{Success: false, ID: input.ID},
			fmt.Errorf("deletion not confirmed: set confirm='yes' to proceed")
	}

	if err := noteService.DeleteNote(ctx, input.ID); err != nil {
		return &mcp.CallToolResult{IsError: true}, DeleteOutput{Success: false, ID: input.ID}, err
	}

	return nil, DeleteOutput{Success: true, ID: input.ID}, nil
}
