package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Workflow-Manager-admin/note-keeper/internal/notefile"
)

var (
	showJSON bool
	showRaw  bool
)

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a note",
	Long: `Show a note by its ID. The default output is the editable Markdown
form with the title in the frontmatter. Use --raw for the bare content or
--json for the full record.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := parseID(args[0])

		sess := openSession(context.Background())
		defer sess.Close()

		note, ok := sess.Note(id)
		if !ok {
			fmt.Fprintf(os.Stderr, "Note %d not found\n", id)
			os.Exit(1)
		}

		if showJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(note); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		if showRaw {
			fmt.Print(note.Content)
			return
		}

		text, err := notefile.FromNote(note).String()
		if err != nil {
			fatal("Failed to render note", err)
		}
		fmt.Print(text)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "Output the content only")
}
