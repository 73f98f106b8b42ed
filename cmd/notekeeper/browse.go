package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	notekeeper "github.com/Workflow-Manager-admin/note-keeper"
	"github.com/Workflow-Manager-admin/note-keeper/internal/editor"
	"github.com/Workflow-Manager-admin/note-keeper/internal/notefile"
)

var browsePoll time.Duration

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse notes interactively",
	Long: `Browse renders the notes page in the terminal: the list on every
prompt, the selected note below it, and the error banner when a backend call
fails. With --poll, changes made by other clients appear as they happen.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sess := openSession(ctx)
		defer sess.Close()

		if browsePoll > 0 {
			if err := sess.StartPolling(ctx, browsePoll); err != nil {
				fatal("Failed to start polling", err)
			}
		}
		go announceChanges(ctx, sess)

		fmt.Println("Commands: s <id> select, n <title> new, e edit, d delete, r refresh, q quit")
		render(sess)

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				return
			}
			if quit := dispatch(ctx, sess, scanner.Text()); quit {
				return
			}
			render(sess)
		}
	},
}

// dispatch runs one command line. Backend failures land on the banner that
// render prints; they do not end the loop.
func dispatch(ctx context.Context, sess *notekeeper.Session, line string) (quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch fields[0] {
	case "q", "quit":
		return true

	case "r", "refresh":
		_ = sess.Refresh(ctx)

	case "s", "select":
		if len(fields) < 2 {
			fmt.Println("usage: s <id>")
			return false
		}
		id, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			fmt.Printf("bad id %q\n", fields[1])
			return false
		}
		if err := sess.Select(id); err != nil {
			fmt.Printf("select: %v\n", err)
		}

	case "n", "new":
		if len(fields) < 2 {
			fmt.Println("usage: n <title>")
			return false
		}
		sess.StartNew()
		sess.SetTitle(strings.Join(fields[1:], " "))
		_, _ = sess.Save(ctx)

	case "e", "edit":
		editSelected(ctx, sess)

	case "d", "delete":
		sel, ok := sess.Selected()
		if !ok {
			fmt.Println("no note selected")
			return false
		}
		_ = sess.Delete(ctx, sel.ID)

	default:
		fmt.Printf("unknown command %q\n", fields[0])
	}

	return false
}

// editSelected round-trips the selected note through the editor.
func editSelected(ctx context.Context, sess *notekeeper.Session) {
	sel, ok := sess.Selected()
	if !ok {
		fmt.Println("no note selected")
		return
	}

	_, _, cfg := apiSettings()
	doc, err := editor.Edit(ctx, notefile.FromNote(sel), editor.Options{
		Command: editorCommand(cfg),
		Logger:  slog.Default(),
	})
	if err != nil {
		fmt.Printf("editor: %v\n", err)
		return
	}

	if err := sess.StartEdit(); err != nil {
		fmt.Printf("edit: %v\n", err)
		return
	}
	sess.SetTitle(doc.Title)
	sess.SetContent(doc.Content)
	_, _ = sess.Save(ctx)
}

// render prints the page: banner, sidebar, selected note.
func render(sess *notekeeper.Session) {
	fmt.Println()
	if msg := sess.Err(); msg != "" {
		fmt.Printf("!! %s\n", msg)
	}

	notes := sess.Notes()
	if len(notes) == 0 {
		fmt.Println("(no notes)")
	}

	sel, hasSel := sess.Selected()
	for _, n := range notes {
		marker := " "
		if hasSel && n.ID == sel.ID {
			marker = ">"
		}
		fmt.Printf("%s %d\t%s\n", marker, n.ID, n.Title)
	}

	if hasSel {
		fmt.Println("----")
		fmt.Println(sel.Content)
		fmt.Println("----")
	}
}

// announceChanges prints the session's change feed as it arrives.
func announceChanges(ctx context.Context, sess *notekeeper.Session) {
	for {
		select {
		case <-ctx.Done():
			return
		case e, ok := <-sess.Events():
			if !ok {
				return
			}
			fmt.Printf("\n[%s]\n> ", e)
		}
	}
}

func init() {
	rootCmd.AddCommand(browseCmd)
	browseCmd.Flags().DurationVar(&browsePoll, "poll", 0, "Auto-refresh interval (e.g. 5s); 0 disables polling")
}
