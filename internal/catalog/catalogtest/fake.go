// Package catalogtest provides an in-memory catalog.Catalog for tests.
package catalogtest

import (
	"context"
	"slices"
	"sync"

	"github.com/apache/iceberg-go"
	"github.com/apache/iceberg-go/table"

	"github.com/morristai/iceberg-mcp/internal/catalog"
)

// Table is a static catalog.Table.
type Table struct {
	ID       catalog.TableIdentifier
	Current  *iceberg.Schema
	Snapshot *table.Snapshot
	Props    iceberg.Properties
	Specs    []iceberg.PartitionSpec
	Orders   []table.SortOrder
}

func (t *Table) Identifier() catalog.TableIdentifier     { return t.ID }
func (t *Table) Schema() *iceberg.Schema                 { return t.Current }
func (t *Table) CurrentSnapshot() *table.Snapshot        { return t.Snapshot }
func (t *Table) Properties() iceberg.Properties          { return t.Props }
func (t *Table) PartitionSpecs() []iceberg.PartitionSpec { return t.Specs }
func (t *Table) SortOrders() []table.SortOrder           { return t.Orders }

// Catalog is an in-memory catalog.Catalog that records every backend call.
type Catalog struct {
	mu         sync.Mutex
	namespaces []catalog.Namespace
	tables     map[string][]*Table
	failures   map[string]error
	calls      map[string]int

	// FullHistory is returned by SupportsFullPartitionHistory.
	FullHistory bool
}

// Operation names accepted by FailWith and CallCount.
const (
	OpListNamespaces = "ListNamespaces"
	OpListTables     = "ListTables"
	OpLoadTable      = "LoadTable"
)

// New creates an empty fake catalog.
func New() *Catalog {
	return &Catalog{
		tables:      make(map[string][]*Table),
		failures:    make(map[string]error),
		calls:       make(map[string]int),
		FullHistory: true,
	}
}

// AddNamespace registers a namespace.
func (c *Catalog) AddNamespace(levels ...string) catalog.Namespace {
	c.mu.Lock()
	defer c.mu.Unlock()
	ns := catalog.Namespace(levels)
	for _, existing := range c.namespaces {
		if existing.Equal(ns) {
			return existing
		}
	}
	c.namespaces = append(c.namespaces, ns)
	return ns
}

// AddTable registers t, creating its namespace when needed.
func (c *Catalog) AddTable(t *Table) {
	c.AddNamespace(t.ID.Namespace...)
	c.mu.Lock()
	defer c.mu.Unlock()
	key := t.ID.Namespace.URLString()
	c.tables[key] = append(c.tables[key], t)
}

// FailWith makes every later call of op return err.
func (c *Catalog) FailWith(op string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failures[op] = err
}

// CallCount returns how often op was invoked. An empty op sums all calls.
func (c *Catalog) CallCount(op string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if op != "" {
		return c.calls[op]
	}
	total := 0
	for _, n := range c.calls {
		total += n
	}
	return total
}

func (c *Catalog) enter(op string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls[op]++
	return c.failures[op]
}

func (c *Catalog) Type() catalog.Type { return catalog.TypeREST }

func (c *Catalog) SupportsFullPartitionHistory() bool { return c.FullHistory }

func (c *Catalog) ListNamespaces(ctx context.Context, parent catalog.Namespace) ([]catalog.Namespace, error) {
	if err := c.enter(OpListNamespaces); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, catalog.WrapError(catalog.KindUnavailable, err, "list namespaces")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]catalog.Namespace, 0, len(c.namespaces))
	for _, ns := range c.namespaces {
		if len(parent) == 0 || (len(ns) > len(parent) && parent.Equal(ns[:len(parent)])) {
			out = append(out, slices.Clone(ns))
		}
	}
	return out, nil
}

func (c *Catalog) ListTables(ctx context.Context, ns catalog.Namespace) ([]catalog.TableIdentifier, error) {
	if err := c.enter(OpListTables); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, catalog.WrapError(catalog.KindUnavailable, err, "list tables")
	}
	if !c.hasNamespace(ns) {
		return nil, catalog.NewError(catalog.KindNotFound, "namespace %s does not exist", ns)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]catalog.TableIdentifier, 0)
	for _, t := range c.tables[ns.URLString()] {
		out = append(out, t.ID)
	}
	return out, nil
}

func (c *Catalog) LoadTable(ctx context.Context, id catalog.TableIdentifier) (catalog.Table, error) {
	if err := c.enter(OpLoadTable); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, catalog.WrapError(catalog.KindUnavailable, err, "load table")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range c.tables[id.Namespace.URLString()] {
		if t.ID.Name == id.Name {
			return t, nil
		}
	}
	return nil, catalog.NewError(catalog.KindNotFound, "table %s does not exist", id)
}

func (c *Catalog) hasNamespace(ns catalog.Namespace) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, existing := range c.namespaces {
		if existing.Equal(ns) {
			return true
		}
	}
	return false
}

var _ catalog.Catalog = (*Catalog)(nil)
