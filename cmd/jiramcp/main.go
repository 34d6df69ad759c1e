// Package main is the entry point for the jiramcp MCP server.
//
// The application follows this startup sequence:
//
// 1. Initialize logging to stderr (stdout belongs to the MCP protocol)
// 2. Load configuration from .env, config file, and environment variables
// 3. Build the jira-cli executor and client
// 4. Serve the MCP protocol over stdio until the client disconnects
//
// The server is meant to be launched by an LLM client such as Claude
// Desktop, which speaks JSON-RPC 2.0 over the child process's stdin and
// stdout.
package main

import (
	"os"

	"jiramcp/internal/config"
	"jiramcp/internal/logging"
	"jiramcp/internal/mcpserver"
	"jiramcp/internal/version"

	"github.com/spf13/cobra"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:          "jiramcp",
	Short:        "Jira MCP server: provides Jira tools for LLM clients via jira-cli",
	Long:         "jiramcp exposes Jira operations (list, view, create, move, comment, sprints) as MCP tools by shelling out to jira-cli. It communicates over stdio and is meant to be launched by an MCP client.",
	Version:      version.Version,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.NewAppLogger(debug)
		logger.Debug("Debug logging enabled")

		cfg, err := config.Load(logger)
		if err != nil {
			logger.Error("Error loading config", "error", err)
			return err
		}

		logger.Info("Starting Jira MCP server...")
		return mcpserver.NewServer(cfg, logger).Start()
	},
}

func init() {
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging.")
}

func main() {
	// Cobra prints errors to stderr, so stdout stays clean for the
	// protocol stream.
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
