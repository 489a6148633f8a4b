// Package app is the composition root of iceberg-mcp.
//
// NewApplication performs the bootstrap sequence exactly once per process:
//
//  1. Initialize logging on stderr (stdout belongs to the stdio transport)
//  2. Load configuration from file, environment and flags
//  3. Validate it, reporting every problem at once
//  4. Open the configured catalog through the backend registry
//  5. Build the Dispatcher and the MCP Server around it
//
// The catalog handle built in step 4 is shared read-only by every request
// and is never rebuilt. Run serves MCP until SIGINT or SIGTERM.
//
// Local inspection commands use the same Application and call the
// Dispatcher directly instead of running a transport.
package app
