package mcpserver

import (
	"fmt"

	"jiramcp/internal/config"
	"jiramcp/internal/executor"
	"jiramcp/internal/jira"
	"jiramcp/internal/logging"
	"jiramcp/internal/version"

	"github.com/mark3labs/mcp-go/server"
)

// Server wires the Jira client into an mcp-go server instance.
type Server struct {
	config    *config.Config
	logger    *logging.AppLogger
	client    *jira.Client
	mcpServer *server.MCPServer
}

// NewServer creates a fully registered MCP server. The executor and client
// are built here so every tool shares one configuration snapshot.
func NewServer(cfg *config.Config, logger *logging.AppLogger) *Server {
	exec := executor.New(cfg, logger)

	s := &Server{
		config: cfg,
		logger: logger,
		client: jira.NewClient(exec, logger),
	}

	s.mcpServer = server.NewMCPServer(
		"Jira MCP",
		version.Version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	s.registerTools()

	return s
}

// Start serves the MCP protocol over stdio and blocks until the client
// disconnects. mcp-go's internal errors are logged to stderr, never stdout.
func (s *Server) Start() error {
	s.logger.Info("Starting MCP server", "version", version.Version, "cliPath", s.config.CLIPath)

	err := server.ServeStdio(s.mcpServer,
		server.WithErrorLogger(s.logger.StandardLog()),
	)
	if err != nil {
		return fmt.Errorf("MCP server failed: %w", err)
	}

	s.logger.Info("MCP server stopped")
	return nil
}
