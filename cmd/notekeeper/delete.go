package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a note from the backend",
	Long:  `Delete permanently removes a note from the backend. Asks for confirmation unless --yes is given.`,
	Args:  cobra.ExactArgs(1),
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

		if !deleteYes {
			fmt.Printf("Delete note %d %q? [y/N]: ", note.ID, note.Title)
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			answer = strings.ToLower(strings.TrimSpace(answer))
			if answer != "y" && answer != "yes" {
				fmt.Println("Aborted.")
				return
			}
		}

		if err := sess.Delete(ctx, id); err != nil {
			fatal("Failed to delete note", err)
		}

		fmt.Printf("Note deleted: %d\n", id)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
}
