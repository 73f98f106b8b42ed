// Package main implements the notekeeper terminal client.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"

	notekeeper "github.com/Workflow-Manager-admin/note-keeper"
)

func main() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(notekeeper.Version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

func fatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}
