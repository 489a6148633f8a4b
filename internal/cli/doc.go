// Package cli renders catalog results for the local inspection commands.
//
// Printer writes namespaces, tables, schemas and table properties in one of
// three formats:
//   - table: kubectl-style plain tables (go-pretty), one section per field
//   - json: indented JSON, identical to the MCP tool result
//   - yaml: the JSON document converted to YAML
//
// Status helpers format success, failure and warning lines with color when
// the output is a terminal, and Spin shows a progress spinner on stderr
// while a blocking catalog call runs.
package cli
