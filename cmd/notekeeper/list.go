package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/Workflow-Manager-admin/note-keeper/pkg/core"
)

var (
	listJSON  bool
	listMatch string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes on the backend",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		sess := openSession(context.Background())
		defer sess.Close()

		notes := sess.Notes()

		// Filter
		var filtered []core.Note
		for _, note := range notes {
			if listMatch != "" {
				ok, err := doublestar.Match(listMatch, note.Title)
				if err != nil {
					fatal("Invalid match pattern", err)
				}
				if !ok {
					continue
				}
			}
			filtered = append(filtered, note)
		}

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(filtered); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		for _, note := range filtered {
			updated := "-"
			if !note.UpdatedAt.IsZero() {
				updated = note.UpdatedAt.Local().Format("2006-01-02 15:04")
			}
			fmt.Printf("%d\t%s\t%s\n", note.ID, updated, note.Title)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&listMatch, "match", "", "Filter notes by title glob (e.g. 'meeting*')")
}
