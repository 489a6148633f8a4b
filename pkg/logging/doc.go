// Package logging provides the structured logger shared by every iceberg-mcp
// subsystem.
//
// The logger is a thin layer over log/slog. Every entry carries the subsystem
// that produced it, so output can be filtered per component:
//
//	logging.Init(logging.LevelInfo, os.Stderr)
//	logging.Info("Bootstrap", "Using %s catalog", kind)
//	logging.Error("Dispatcher", err, "get_tables failed")
//
// Output defaults to stderr. When the MCP server runs on the stdio transport,
// stdout carries the protocol stream and must never receive log lines.
//
// Subsystems in use:
//
//   - Bootstrap: configuration loading and backend selection
//   - Config: configuration file and environment handling
//   - Backend: catalog client construction
//   - Dispatcher: tool call routing and error mapping
//   - Server: MCP transport lifecycle
//
// The package is safe for concurrent use.
package logging
