package main

import (
	"fmt"

	"github.com/spf13/cobra"

	notekeeper "github.com/Workflow-Manager-admin/note-keeper"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of notekeeper",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("notekeeper version %s\n", notekeeper.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
