// Package server exposes the catalog as MCP tools.
//
// The Dispatcher is the transport independent core: it validates tool
// arguments, calls the catalog, aggregates table metadata and serializes the
// result to JSON. Every failure it returns is a *catalog.Error, so callers
// branch on the error kind and never on backend error types.
//
// Server binds the Dispatcher to an mcp-go server and runs one of the stdio,
// streamable-http or sse transports until its context is cancelled.
//
// Tools:
//
//	get_namespaces                        list namespaces
//	get_tables(namespace)                 list tables of a namespace
//	get_table_schema(namespace, table)    current schema of a table
//	get_table_properties(namespace, table) properties, snapshot summary,
//	                                      partition specs and sort orders
package server
