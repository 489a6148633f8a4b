package catalog

import (
	"context"

	"github.com/apache/iceberg-go"
	"github.com/apache/iceberg-go/table"
)

// Type identifies a backend catalog implementation.
type Type string

const (
	// TypeREST is an Iceberg REST catalog service.
	TypeREST Type = "rest"
	// TypeGlue is the AWS Glue managed catalog.
	TypeGlue Type = "glue"
	// TypeHive is a legacy Hive metastore, loaded through the client
	// library's catalog registry.
	TypeHive Type = "hive"
)

// Types lists every backend type in selection order.
var Types = []Type{TypeREST, TypeGlue, TypeHive}

// Catalog is the capability every backend adapter provides. One value is
// built at startup and shared read-only by all requests.
//
// Contract:
//   - Concurrency: implementations must be safe for concurrent use.
//   - Context: methods must honor cancellation and deadlines and must not
//     retry on their own.
//   - Errors: every returned error is an *Error of kind Unavailable, NotFound
//     or Internal (InvalidArgument when the backend rejects an identifier).
//     Client library error types never cross this boundary.
type Catalog interface {
	// Type returns the backend variant behind this catalog.
	Type() Type

	// SupportsFullPartitionHistory reports whether loaded tables expose every
	// historical partition spec (true) or only the default spec (false).
	SupportsFullPartitionHistory() bool

	// ListNamespaces lists namespaces below parent. A nil parent lists the
	// top level.
	ListNamespaces(ctx context.Context, parent Namespace) ([]Namespace, error)

	// ListTables lists the tables of ns. A missing namespace is NotFound,
	// never an empty list.
	ListTables(ctx context.Context, ns Namespace) ([]TableIdentifier, error)

	// LoadTable loads the current metadata of a table.
	LoadTable(ctx context.Context, id TableIdentifier) (Table, error)
}

// Table is a loaded table handle. Values are request scoped and read-only.
type Table interface {
	// Identifier returns the identifier the table was loaded with.
	Identifier() TableIdentifier

	// Schema returns the current schema. A nil schema means the handle is
	// stale or invalid.
	Schema() *iceberg.Schema

	// CurrentSnapshot returns the current snapshot, or nil for a table
	// without data.
	CurrentSnapshot() *table.Snapshot

	// Properties returns the table property map.
	Properties() iceberg.Properties

	// PartitionSpecs returns the default spec only, or the full history,
	// depending on the catalog's SupportsFullPartitionHistory.
	PartitionSpecs() []iceberg.PartitionSpec

	// SortOrders returns the table's sort orders in metadata order.
	SortOrders() []table.SortOrder
}
