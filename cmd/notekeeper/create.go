package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Workflow-Manager-admin/note-keeper/internal/editor"
	"github.com/Workflow-Manager-admin/note-keeper/internal/notefile"
)

var (
	createTitle   string
	createContent string
	createEdit    bool
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a note",
	Long: `Create a note with the given title and content. With --edit, a blank
draft opens in your editor instead and is saved when the editor exits.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if createTitle == "" && !createEdit {
			fmt.Println("Error: --title is required (or pass --edit)")
			cmd.Usage()
			os.Exit(1)
		}

		ctx := context.Background()
		sess := openSession(ctx)
		defer sess.Close()

		title, content := createTitle, createContent
		if content == "-" {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				fatal("Failed to read stdin", err)
			}
			content = string(data)
		}
		if createEdit {
			_, _, cfg := apiSettings()
			doc, err := editor.Edit(ctx, &notefile.Document{Title: title, Content: content}, editor.Options{
				Command: editorCommand(cfg),
			})
			if err != nil {
				fatal("Editor failed", err)
			}
			title, content = doc.Title, doc.Content
		}

		sess.StartNew()
		sess.SetTitle(title)
		sess.SetContent(content)

		saved, err := sess.Save(ctx)
		if err != nil {
			fatal("Failed to create note", err)
		}

		fmt.Printf("Note created: %d\t%s\n", saved.ID, saved.Title)
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().StringVarP(&createTitle, "title", "t", "", "Note title")
	createCmd.Flags().StringVarP(&createContent, "content", "c", "", "Note content ('-' reads stdin)")
	createCmd.Flags().BoolVarP(&createEdit, "edit", "e", false, "Compose the note in $EDITOR")
}
