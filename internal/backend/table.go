package backend

import (
	"github.com/apache/iceberg-go"
	"github.com/apache/iceberg-go/table"

	"github.com/morristai/iceberg-mcp/internal/catalog"
)

// icebergTable exposes iceberg-go table metadata as a catalog.Table.
type icebergTable struct {
	id          catalog.TableIdentifier
	meta        table.Metadata
	fullHistory bool
}

func newTable(id catalog.TableIdentifier, meta table.Metadata, fullHistory bool) *icebergTable {
	return &icebergTable{id: id, meta: meta, fullHistory: fullHistory}
}

func (t *icebergTable) Identifier() catalog.TableIdentifier {
	return t.id
}

func (t *icebergTable) Schema() *iceberg.Schema {
	if t.meta == nil {
		return nil
	}
	return t.meta.CurrentSchema()
}

func (t *icebergTable) CurrentSnapshot() *table.Snapshot {
	if t.meta == nil {
		return nil
	}
	return t.meta.CurrentSnapshot()
}

func (t *icebergTable) Properties() iceberg.Properties {
	if t.meta == nil {
		return nil
	}
	return t.meta.Properties()
}

// PartitionSpecs returns every spec in metadata order, or only the default
// spec when the catalog is configured for default-only history.
func (t *icebergTable) PartitionSpecs() []iceberg.PartitionSpec {
	if t.meta == nil {
		return nil
	}
	if t.fullHistory {
		return t.meta.PartitionSpecs()
	}
	return []iceberg.PartitionSpec{t.meta.PartitionSpec()}
}

func (t *icebergTable) SortOrders() []table.SortOrder {
	if t.meta == nil {
		return nil
	}
	return t.meta.SortOrders()
}

var _ catalog.Table = (*icebergTable)(nil)
