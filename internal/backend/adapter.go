package backend

import (
	"context"
	"iter"

	"github.com/apache/iceberg-go"
	"github.com/apache/iceberg-go/table"

	"github.com/morristai/iceberg-mcp/internal/catalog"
	"github.com/morristai/iceberg-mcp/pkg/logging"
)

// icebergCatalog is the read-only subset of the iceberg-go catalog used by
// the adapter.
type icebergCatalog interface {
	ListNamespaces(ctx context.Context, parent table.Identifier) ([]table.Identifier, error)
	ListTables(ctx context.Context, namespace table.Identifier) iter.Seq2[table.Identifier, error]
	LoadTable(ctx context.Context, identifier table.Identifier, props iceberg.Properties) (*table.Table, error)
}

// Adapter implements catalog.Catalog over an iceberg-go catalog.
type Adapter struct {
	kind        catalog.Type
	client      icebergCatalog
	fullHistory bool

	// tableProps are passed to every LoadTable call, typically the object
	// store settings needed to read metadata files.
	tableProps iceberg.Properties
}

// NewAdapter wraps client. tableProps is copied.
func NewAdapter(kind catalog.Type, client icebergCatalog, fullHistory bool, tableProps iceberg.Properties) *Adapter {
	props := make(iceberg.Properties, len(tableProps))
	for k, v := range tableProps {
		props[k] = v
	}
	return &Adapter{
		kind:        kind,
		client:      client,
		fullHistory: fullHistory,
		tableProps:  props,
	}
}

func (a *Adapter) Type() catalog.Type {
	return a.kind
}

func (a *Adapter) SupportsFullPartitionHistory() bool {
	return a.fullHistory
}

func (a *Adapter) ListNamespaces(ctx context.Context, parent catalog.Namespace) ([]catalog.Namespace, error) {
	if err := ctx.Err(); err != nil {
		return nil, classify(err, "list namespaces")
	}

	var ident table.Identifier
	if len(parent) > 0 {
		ident = parent.Levels()
	}

	raw, err := a.client.ListNamespaces(ctx, ident)
	if err != nil {
		return nil, classify(err, "list namespaces")
	}

	out := make([]catalog.Namespace, 0, len(raw))
	for _, levels := range raw {
		ns, err := catalog.NamespaceFromSegments(levels)
		if err != nil {
			return nil, catalog.WrapError(catalog.KindInternal, err, "backend returned a malformed namespace %q", levels)
		}
		out = append(out, ns)
	}
	logging.Debug("Backend", "Listed %d namespaces", len(out))
	return out, nil
}

func (a *Adapter) ListTables(ctx context.Context, ns catalog.Namespace) ([]catalog.TableIdentifier, error) {
	if err := ctx.Err(); err != nil {
		return nil, classify(err, "list tables of %s", ns)
	}

	out := make([]catalog.TableIdentifier, 0)
	for ident, err := range a.client.ListTables(ctx, ns.Levels()) {
		if err != nil {
			return nil, classify(err, "list tables of %s", ns)
		}
		id, err := identifierFromLevels(ident)
		if err != nil {
			return nil, catalog.WrapError(catalog.KindInternal, err, "backend returned a malformed table identifier %q", ident)
		}
		out = append(out, id)
	}
	logging.Debug("Backend", "Listed %d tables in %s", len(out), ns)
	return out, nil
}

func (a *Adapter) LoadTable(ctx context.Context, id catalog.TableIdentifier) (catalog.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, classify(err, "load table %s", id)
	}

	tbl, err := a.client.LoadTable(ctx, id.Levels(), a.tableProps)
	if err != nil {
		return nil, classify(err, "load table %s", id)
	}
	if tbl == nil || tbl.Metadata() == nil {
		return nil, catalog.NewError(catalog.KindInternal, "backend returned no metadata for %s", id)
	}
	return newTable(id, tbl.Metadata(), a.fullHistory), nil
}

// identifierFromLevels splits a backend table identifier into namespace and
// name. The last level is the table name.
func identifierFromLevels(levels table.Identifier) (catalog.TableIdentifier, error) {
	if len(levels) < 2 {
		return catalog.TableIdentifier{}, catalog.NewError(catalog.KindInvalidArgument, "identifier needs a namespace and a name")
	}
	ns, err := catalog.NamespaceFromSegments(levels[:len(levels)-1])
	if err != nil {
		return catalog.TableIdentifier{}, err
	}
	return catalog.NewTableIdentifier(ns, levels[len(levels)-1])
}

var _ catalog.Catalog = (*Adapter)(nil)
