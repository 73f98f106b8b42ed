package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Workflow-Manager-admin/note-keeper/internal/editor"
	"github.com/Workflow-Manager-admin/note-keeper/internal/notefile"
)

var (
	editTitle   string
	editContent string
	editLive    bool
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit a note",
	Long: `Edit updates a note. With --title or --content the given fields are
replaced directly and anything not given keeps its current value. Without
them the note opens in $EDITOR as Markdown with the title in the frontmatter
and is saved to the backend when the editor exits. With --live, every save
inside the editor is pushed to the backend immediately.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := parseID(args[0])
		ctx := context.Background()

		sess := openSession(ctx)
		defer sess.Close()

		note, ok := sess.Note(id)
		if !ok {
			fmt.Fprintf(os.Stderr, "Note %d not found\n", id)
			os.Exit(1)
		}

		title, content := note.Title, note.Content
		direct := cmd.Flags().Changed("title") || cmd.Flags().Changed("content")
		if direct {
			if cmd.Flags().Changed("title") {
				title = editTitle
			}
			if cmd.Flags().Changed("content") {
				content = editContent
			}
		} else {
			_, _, cfg := apiSettings()
			opts := editor.Options{
				Command: editorCommand(cfg),
				Logger:  slog.Default(),
			}
			if editLive {
				svc := sess.Service()
				opts.OnChange = func(doc *notefile.Document) {
					if _, err := svc.UpdateNote(ctx, id, doc.Title, doc.Content); err != nil {
						slog.Default().Warn("live save failed", "id", id, "error", err)
					}
				}
			}

			doc, err := editor.Edit(ctx, notefile.FromNote(note), opts)
			if err != nil {
				fatal("Editor failed", err)
			}
			title, content = doc.Title, doc.Content
		}

		if err := sess.Select(id); err != nil {
			fatal("Failed to select note", err)
		}
		if err := sess.StartEdit(); err != nil {
			fatal("Failed to start editing", err)
		}
		sess.SetTitle(title)
		sess.SetContent(content)

		saved, err := sess.Save(ctx)
		if err != nil {
			fatal("Failed to save note", err)
		}

		fmt.Printf("Note saved: %d\t%s\n", saved.ID, saved.Title)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "New title")
	editCmd.Flags().StringVarP(&editContent, "content", "c", "", "New content")
	editCmd.Flags().BoolVar(&editLive, "live", false, "Push every editor save to the backend immediately")
}
