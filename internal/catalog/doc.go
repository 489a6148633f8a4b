// Package catalog defines the backend-neutral view of an Iceberg catalog that
// the MCP tools are built on.
//
// It holds four things:
//
//   - the identifier codec (ParseNamespace, NewTableIdentifier) that turns
//     caller input into Namespace and TableIdentifier values,
//   - the Catalog and Table interfaces every backend adapter implements,
//   - the error taxonomy (InvalidArgument, NotFound, Unavailable, Internal)
//     that adapters normalise backend failures into,
//   - Aggregate, which assembles the table properties view from a loaded
//     Table.
//
// Nothing in this package performs I/O. Backend clients live in
// internal/backend; request routing lives in internal/server.
package catalog
