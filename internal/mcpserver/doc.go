// Package mcpserver implements the Model Context Protocol (MCP) server that
// exposes Jira operations as tools, using the mcp-go library.
//
// The server communicates over stdin/stdout using JSON-RPC 2.0 as specified
// by the MCP standard. Stdout belongs exclusively to the protocol stream;
// every diagnostic, including mcp-go's own error logger, is routed to stderr
// through the logging package.
//
// Each tool call is translated into one or two jira-cli invocations by the
// jira client. Tool failures are reported as error results inside the
// protocol so the serving loop keeps running; the process only exits when
// stdin closes or the transport fails.
package mcpserver
