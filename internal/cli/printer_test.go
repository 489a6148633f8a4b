package cli

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/apache/iceberg-go"
	"github.com/apache/iceberg-go/table"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morristai/iceberg-mcp/internal/catalog"
	"github.com/morristai/iceberg-mcp/pkg/logging"
)

func ordersView() catalog.TableProperties {
	return catalog.TableProperties{
		Properties:           map[string]string{"format-version": "2", "owner": "sales"},
		AdditionalProperties: map[string]string{},
		Partition: []iceberg.PartitionSpec{iceberg.NewPartitionSpecID(0, iceberg.PartitionField{
			SourceID: 2, FieldID: 1000, Name: "region", Transform: iceberg.IdentityTransform{},
		})},
		SortOrders: []table.SortOrder{
			{OrderID: 1, Fields: []table.SortField{{SourceID: 1, Transform: iceberg.IdentityTransform{}, Direction: table.SortASC, NullOrder: table.NullsFirst}}},
		},
	}
}

func TestParseOutputFormat(t *testing.T) {
	for _, in := range []string{"table", "JSON", " yaml "} {
		_, err := ParseOutputFormat(in)
		assert.NoError(t, err, in)
	}

	_, err := ParseOutputFormat("wide")
	assert.ErrorContains(t, err, "unsupported output format")
}

func TestPrintNamespacesTable(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(OutputFormatTable, &buf)

	require.NoError(t, p.Namespaces([]string{"sales", catalog.Namespace{"ops", "eu"}.URLString()}))

	out := buf.String()
	assert.Contains(t, out, "NAMESPACE")
	assert.Contains(t, out, "sales")
	assert.Contains(t, out, "ops.eu")
}

func TestPrintNamespacesNoHeaders(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(OutputFormatTable, &buf)
	p.NoHeaders = true

	require.NoError(t, p.Namespaces([]string{"sales"}))
	assert.NotContains(t, buf.String(), "NAMESPACE")
}

func TestPrintNamespacesJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(OutputFormatJSON, &buf).Namespaces([]string{"sales", "ops"}))
	assert.JSONEq(t, `["sales","ops"]`, buf.String())
}

func TestPrintTablesYAML(t *testing.T) {
	var buf bytes.Buffer
	tables := []catalog.TableIdentifier{{Namespace: catalog.Namespace{"sales"}, Name: "orders"}}

	require.NoError(t, NewPrinter(OutputFormatYAML, &buf).Tables(tables))
	out := buf.String()
	assert.Contains(t, out, "name: orders")
	assert.Contains(t, out, "- sales")
	assert.NotContains(t, out, "{")
}

func TestPrintTablesEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(OutputFormatTable, &buf).Tables(nil))
	assert.Equal(t, "No tables found\n", buf.String())
}

func TestPrintSchemaTable(t *testing.T) {
	var buf bytes.Buffer
	schema := iceberg.NewSchema(3,
		iceberg.NestedField{ID: 1, Name: "order_id", Type: iceberg.PrimitiveTypes.Int64, Required: true},
		iceberg.NestedField{ID: 2, Name: "region", Type: iceberg.PrimitiveTypes.String, Doc: "sales region"},
	)

	require.NoError(t, NewPrinter(OutputFormatTable, &buf).Schema(schema))

	out := buf.String()
	assert.Contains(t, out, "Schema 3")
	assert.Contains(t, out, "order_id")
	assert.Contains(t, out, "long")
	assert.Contains(t, out, "sales region")
}

func TestPrintSchemaTruncatesLongDocs(t *testing.T) {
	doc := strings.Repeat("free text ", 20)
	schema := iceberg.NewSchema(0,
		iceberg.NestedField{ID: 1, Name: "notes", Type: iceberg.PrimitiveTypes.String, Doc: doc},
	)

	var buf bytes.Buffer
	require.NoError(t, NewPrinter(OutputFormatTable, &buf).Schema(schema))
	assert.Contains(t, buf.String(), "...")
	assert.NotContains(t, buf.String(), strings.TrimSpace(doc))

	buf.Reset()
	p := NewPrinter(OutputFormatTable, &buf)
	p.MaxCellLen = 0
	require.NoError(t, p.Schema(schema))
	assert.Contains(t, buf.String(), strings.TrimSpace(doc))
}

func TestPrintPropertiesTable(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewPrinter(OutputFormatTable, &buf).Properties(ordersView()))

	out := buf.String()
	assert.Contains(t, out, "Properties")
	assert.Contains(t, out, "format-version")
	assert.Contains(t, out, "No entries found")
	assert.Contains(t, out, "region=identity(2)")
	assert.Contains(t, out, "identity(1) asc nulls-first")
}

func TestPrintPropertiesJSON(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewPrinter(OutputFormatJSON, &buf).Properties(ordersView()))
	assert.Contains(t, buf.String(), `"additional_properties": {}`)
	assert.Contains(t, buf.String(), `"sort_orders"`)
}

func TestStatusFormatting(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	assert.Equal(t, "✓ connected", FormatSuccess("connected"))
	assert.Equal(t, "⚠ no namespaces", FormatWarning("no namespaces"))
	assert.Equal(t, "✗ boom", FormatError(errors.New("boom")))
}

func TestSpinReturnsResult(t *testing.T) {
	var buf bytes.Buffer
	boom := errors.New("boom")

	assert.NoError(t, spin(false, &buf, "working", func() error { return nil }))
	assert.ErrorIs(t, spin(false, &buf, "working", func() error { return boom }), boom)

	called := false
	assert.NoError(t, spin(true, &buf, "working", func() error { called = true; return nil }))
	assert.True(t, called)
}

func TestSpinnerHiddenWhileDebugLogging(t *testing.T) {
	logging.Init(logging.LevelInfo, io.Discard)
	assert.True(t, showSpinner(false))
	assert.False(t, showSpinner(true))

	logging.Init(logging.LevelDebug, io.Discard)
	t.Cleanup(func() { logging.Init(logging.LevelInfo, io.Discard) })
	assert.False(t, showSpinner(false))
}
