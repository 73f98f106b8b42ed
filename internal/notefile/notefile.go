// Package notefile round-trips notes through Markdown files with YAML
// frontmatter, the format handed to external editors. The frontmatter
// carries the title (and the server ID, when the note has one); everything
// below the closing fence is the content.
package notefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/Workflow-Manager-admin/note-keeper/pkg/core"
)

// Document is the editable on-disk form of a note.
type Document struct {
	ID      int64
	Title   string
	Content string
}

// frontmatter is the fixed YAML schema between the fences.
type frontmatter struct {
	ID    int64  `yaml:"id,omitempty"`
	Title string `yaml:"title"`
}

// FromNote converts a note into its editable form.
func FromNote(n core.Note) *Document {
	return &Document{ID: n.ID, Title: n.Title, Content: n.Content}
}

// Note converts the document back into a note value. Timestamps are left
// zero; the backend owns them.
func (d *Document) Note() core.Note {
	return core.Note{ID: d.ID, Title: d.Title, Content: d.Content}
}

// Parse decodes a Markdown stream. A stream that does not open with a
// frontmatter fence is treated as pure content with no title.
func Parse(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if !bytes.HasPrefix(data, []byte("---\n")) && !bytes.HasPrefix(data, []byte("---\r\n")) {
		return &Document{Content: string(data)}, nil
	}

	rest := data[bytes.IndexByte(data, '\n')+1:]
	end := closingFence(rest)
	if end < 0 {
		return nil, errors.New("frontmatter opened but never closed")
	}

	var fm frontmatter
	if err := yaml.Unmarshal(rest[:end], &fm); err != nil {
		return nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	body := rest[end:]
	// Drop the fence line itself.
	if i := bytes.IndexByte(body, '\n'); i >= 0 {
		body = body[i+1:]
	} else {
		body = nil
	}

	return &Document{ID: fm.ID, Title: fm.Title, Content: string(body)}, nil
}

// closingFence returns the offset of the line holding the closing fence,
// or -1 when the fence never closes.
func closingFence(data []byte) int {
	offset := 0
	for offset <= len(data) {
		line := data[offset:]
		if i := bytes.IndexByte(line, '\n'); i >= 0 {
			line = line[:i]
		}
		if bytes.Equal(bytes.TrimRight(line, "\r"), []byte("---")) {
			return offset
		}
		next := bytes.IndexByte(data[offset:], '\n')
		if next < 0 {
			break
		}
		offset += next + 1
	}
	return -1
}

// String serializes the document back to Markdown. The frontmatter block is
// always written so the title line is present even for a blank draft.
func (d *Document) String() (string, error) {
	var buf bytes.Buffer

	buf.WriteString("---\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(frontmatter{ID: d.ID, Title: d.Title}); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	buf.WriteString("---\n")
	buf.WriteString(d.Content)

	return buf.String(), nil
}
