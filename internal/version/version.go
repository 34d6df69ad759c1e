// Package version holds the build version reported by the CLI and the MCP
// initialize handshake. The value is rewritten in place by
// scripts/bump_version.sh; do not edit it by hand.
package version

// Version is the current release of jiramcp.
const Version = "0.4.1"
