package main

import (
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	notekeeper "github.com/Workflow-Manager-admin/note-keeper"
	"github.com/Workflow-Manager-admin/note-keeper/pkg/core"
)

// noteService backs the MCP tool handlers.
var noteService *core.Service

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve notes over the Model Context Protocol",
	Long: `Mcp runs a Model Context Protocol server on stdio, exposing the notes
backend as tools any MCP-compatible AI harness can call.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		base, timeout, _ := apiSettings()

		opts := []notekeeper.Option{
			notekeeper.WithLogger(slog.Default()),
		}
		if timeout > 0 {
			opts = append(opts, notekeeper.WithTimeout(timeout))
		}

		svc, err := notekeeper.New(base, opts...)
		if err != nil {
			return fmt.Errorf("failed to connect to backend: %w", err)
		}
		noteService = svc

		server := mcp.NewServer(&mcp.Implementation{
			Name:    "notekeeper",
			Version: notekeeper.Version,
		}, nil)

		registerTools(server)

		if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
			return fmt.Errorf("error running server: %w", err)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
