package server

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/apache/iceberg-go"
	"github.com/google/uuid"

	"github.com/morristai/iceberg-mcp/internal/catalog"
	"github.com/morristai/iceberg-mcp/pkg/logging"
)

// Tool names.
const (
	ToolGetNamespaces      = "get_namespaces"
	ToolGetTables          = "get_tables"
	ToolGetTableSchema     = "get_table_schema"
	ToolGetTableProperties = "get_table_properties"
)

// Argument names. ArgTableName is the legacy spelling of ArgTable.
const (
	ArgNamespace = "namespace"
	ArgTable     = "table"
	ArgTableName = "table_name"
)

// Dispatcher routes tool calls to the catalog. It holds no per-request state
// and is safe for concurrent use.
type Dispatcher struct {
	catalog catalog.Catalog
}

// NewDispatcher creates a dispatcher over cat.
func NewDispatcher(cat catalog.Catalog) *Dispatcher {
	return &Dispatcher{catalog: cat}
}

// request tracks one dispatcher operation for log correlation.
type request struct {
	id    string
	tool  string
	start time.Time
}

func newRequest(tool string) request {
	r := request{id: uuid.NewString(), tool: tool, start: time.Now()}
	logging.Debug("Dispatcher", "[%s] %s received", r.id, tool)
	return r
}

// fail converts err to a *catalog.Error and logs it by kind.
func (r request) fail(err error) *catalog.Error {
	e := catalog.AsError(err, "%s failed", r.tool)
	switch e.Kind {
	case catalog.KindInternal:
		logging.Error("Dispatcher", err, "[%s] %s failed", r.id, r.tool)
	case catalog.KindUnavailable:
		logging.Warn("Dispatcher", "[%s] %s failed: %s", r.id, r.tool, e.Reason)
	default:
		logging.Debug("Dispatcher", "[%s] %s rejected: %s", r.id, r.tool, e)
	}
	return e
}

func (r request) completed() {
	logging.Debug("Dispatcher", "[%s] %s completed in %s", r.id, r.tool, time.Since(r.start))
}

// track runs fn as one request of tool.
func track[T any](tool string, fn func() (T, error)) (T, error) {
	r := newRequest(tool)
	v, err := fn()
	if err != nil {
		var zero T
		return zero, r.fail(err)
	}
	r.completed()
	return v, nil
}

// Call runs tool with args and returns the JSON encoded result. Errors are
// always *catalog.Error.
func (d *Dispatcher) Call(ctx context.Context, tool string, args map[string]any) ([]byte, error) {
	return track(tool, func() ([]byte, error) {
		result, err := d.invoke(ctx, tool, args)
		if err != nil {
			return nil, err
		}
		data, err := json.Marshal(result)
		if err != nil {
			return nil, catalog.WrapError(catalog.KindInternal, err, "failed to serialize %s result", tool)
		}
		return data, nil
	})
}

func (d *Dispatcher) invoke(ctx context.Context, tool string, args map[string]any) (any, error) {
	switch tool {
	case ToolGetNamespaces:
		return d.getNamespaces(ctx)

	case ToolGetTables:
		ns, err := stringArg(args, ArgNamespace)
		if err != nil {
			return nil, err
		}
		return d.getTables(ctx, ns)

	case ToolGetTableSchema, ToolGetTableProperties:
		ns, err := stringArg(args, ArgNamespace)
		if err != nil {
			return nil, err
		}
		name, err := tableArg(args)
		if err != nil {
			return nil, err
		}
		if tool == ToolGetTableSchema {
			return d.getTableSchema(ctx, ns, name)
		}
		return d.getTableProperties(ctx, ns, name)

	default:
		return nil, catalog.NewError(catalog.KindInvalidArgument, "unknown tool %q", tool)
	}
}

// GetNamespaces returns the URL form of every top-level namespace in backend
// order.
func (d *Dispatcher) GetNamespaces(ctx context.Context) ([]string, error) {
	return track(ToolGetNamespaces, func() ([]string, error) {
		return d.getNamespaces(ctx)
	})
}

// GetTables lists the tables of namespace. A missing namespace is NotFound.
func (d *Dispatcher) GetTables(ctx context.Context, namespace string) ([]catalog.TableIdentifier, error) {
	return track(ToolGetTables, func() ([]catalog.TableIdentifier, error) {
		return d.getTables(ctx, namespace)
	})
}

// GetTableSchema returns the current schema of a table.
func (d *Dispatcher) GetTableSchema(ctx context.Context, namespace, name string) (*iceberg.Schema, error) {
	return track(ToolGetTableSchema, func() (*iceberg.Schema, error) {
		return d.getTableSchema(ctx, namespace, name)
	})
}

// GetTableProperties returns the aggregated metadata view of a table.
func (d *Dispatcher) GetTableProperties(ctx context.Context, namespace, name string) (catalog.TableProperties, error) {
	return track(ToolGetTableProperties, func() (catalog.TableProperties, error) {
		return d.getTableProperties(ctx, namespace, name)
	})
}

func (d *Dispatcher) getNamespaces(ctx context.Context) ([]string, error) {
	namespaces, err := d.catalog.ListNamespaces(ctx, nil)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(namespaces))
	for _, ns := range namespaces {
		out = append(out, ns.URLString())
	}
	return out, nil
}

func (d *Dispatcher) getTables(ctx context.Context, namespace string) ([]catalog.TableIdentifier, error) {
	ns, err := catalog.ParseNamespace(namespace)
	if err != nil {
		return nil, err
	}
	tables, err := d.catalog.ListTables(ctx, ns)
	if err != nil {
		return nil, err
	}
	if tables == nil {
		tables = []catalog.TableIdentifier{}
	}
	return tables, nil
}

func (d *Dispatcher) getTableSchema(ctx context.Context, namespace, name string) (*iceberg.Schema, error) {
	t, err := d.loadTable(ctx, namespace, name)
	if err != nil {
		return nil, err
	}
	schema := t.Schema()
	if schema == nil {
		return nil, catalog.NewError(catalog.KindInternal, "table %s has no current schema", t.Identifier())
	}
	return schema, nil
}

func (d *Dispatcher) getTableProperties(ctx context.Context, namespace, name string) (catalog.TableProperties, error) {
	t, err := d.loadTable(ctx, namespace, name)
	if err != nil {
		return catalog.TableProperties{}, err
	}
	return catalog.Aggregate(t)
}

func (d *Dispatcher) loadTable(ctx context.Context, namespace, name string) (catalog.Table, error) {
	ns, err := catalog.ParseNamespace(namespace)
	if err != nil {
		return nil, err
	}
	id, err := catalog.NewTableIdentifier(ns, name)
	if err != nil {
		return nil, err
	}
	return d.catalog.LoadTable(ctx, id)
}

func stringArg(args map[string]any, name string) (string, error) {
	raw, ok := args[name]
	if !ok || raw == nil {
		return "", catalog.NewError(catalog.KindInvalidArgument, "missing required parameter %q", name)
	}
	s, ok := raw.(string)
	if !ok {
		return "", catalog.NewError(catalog.KindInvalidArgument, "parameter %q must be a string, got %T", name, raw)
	}
	if strings.TrimSpace(s) == "" {
		return "", catalog.NewError(catalog.KindInvalidArgument, "parameter %q must not be empty", name)
	}
	return s, nil
}

// tableArg reads the table name, accepting the legacy table_name spelling
// when table is absent.
func tableArg(args map[string]any) (string, error) {
	if _, ok := args[ArgTable]; !ok {
		if _, legacy := args[ArgTableName]; legacy {
			return stringArg(args, ArgTableName)
		}
	}
	return stringArg(args, ArgTable)
}
