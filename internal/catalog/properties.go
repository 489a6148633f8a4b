package catalog

import (
	"maps"
	"slices"

	"github.com/apache/iceberg-go"
	"github.com/apache/iceberg-go/table"
)

// TableProperties is the aggregated properties view of one table. The four
// fields come from independent metadata sources and may each be empty.
type TableProperties struct {
	Properties           map[string]string       `json:"properties"`
	AdditionalProperties map[string]string       `json:"additional_properties"`
	Partition            []iceberg.PartitionSpec `json:"partition"`
	SortOrders           []table.SortOrder       `json:"sort_orders"`
}

// Aggregate builds the properties view of t. It performs no I/O.
//
// A table without a current snapshot yields empty additional properties.
// Partition specs are forwarded exactly as the handle exposes them. The view
// shares no maps or slices with the handle. If the handle is unusable the
// whole call fails with Internal and no partial view is returned.
func Aggregate(t Table) (TableProperties, error) {
	if t == nil {
		return TableProperties{}, NewError(KindInternal, "table handle is nil")
	}
	if t.Schema() == nil {
		return TableProperties{}, NewError(KindInternal, "table %s has no current schema", t.Identifier())
	}

	props := make(map[string]string)
	maps.Copy(props, t.Properties())

	additional := make(map[string]string)
	if snap := t.CurrentSnapshot(); snap != nil && snap.Summary != nil {
		maps.Copy(additional, snap.Summary.Properties)
	}

	specs := slices.Clone(t.PartitionSpecs())
	if specs == nil {
		specs = []iceberg.PartitionSpec{}
	}

	orders := slices.Clone(t.SortOrders())
	if orders == nil {
		orders = []table.SortOrder{}
	}

	return TableProperties{
		Properties:           props,
		AdditionalProperties: additional,
		Partition:            specs,
		SortOrders:           orders,
	}, nil
}
