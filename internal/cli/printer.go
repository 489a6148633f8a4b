package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/apache/iceberg-go"
	"github.com/apache/iceberg-go/table"
	prettytable "github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"

	"github.com/morristai/iceberg-mcp/internal/catalog"
	pkgstrings "github.com/morristai/iceberg-mcp/pkg/strings"
)

// Printer renders results to an output writer.
type Printer struct {
	Format    OutputFormat
	NoHeaders bool
	Out       io.Writer
	// MaxCellLen cuts free-text cells in table output. Zero disables it.
	MaxCellLen int
}

// NewPrinter creates a printer writing to out.
func NewPrinter(format OutputFormat, out io.Writer) *Printer {
	return &Printer{Format: format, Out: out, MaxCellLen: pkgstrings.DefaultCellMaxLen}
}

// Namespaces prints namespace names. Multi-level namespaces are shown dotted
// in tables and in their transport form otherwise.
func (p *Printer) Namespaces(namespaces []string) error {
	if p.Format != OutputFormatTable {
		return p.structured(namespaces)
	}
	tw := p.newTable("NAMESPACE", "LEVELS")
	for _, ns := range namespaces {
		levels := strings.Split(ns, catalog.URLSeparator)
		tw.AppendRow(prettytable.Row{strings.Join(levels, "."), len(levels)})
	}
	return p.render(tw, len(namespaces), "namespaces")
}

// Tables prints table identifiers.
func (p *Printer) Tables(tables []catalog.TableIdentifier) error {
	if p.Format != OutputFormatTable {
		return p.structured(tables)
	}
	tw := p.newTable("NAMESPACE", "NAME")
	for _, t := range tables {
		tw.AppendRow(prettytable.Row{t.Namespace.String(), t.Name})
	}
	return p.render(tw, len(tables), "tables")
}

// Schema prints the top-level fields of a schema.
func (p *Printer) Schema(schema *iceberg.Schema) error {
	if p.Format != OutputFormatTable {
		return p.structured(schema)
	}
	fmt.Fprintf(p.Out, "Schema %d\n", schema.ID)
	tw := p.newTable("ID", "NAME", "TYPE", "REQUIRED", "DOC")
	for _, f := range schema.Fields() {
		tw.AppendRow(prettytable.Row{f.ID, f.Name, f.Type.String(), f.Required, pkgstrings.Ellipsize(f.Doc, p.MaxCellLen)})
	}
	return p.render(tw, len(schema.Fields()), "fields")
}

// Properties prints an aggregated table metadata view, one section per
// field.
func (p *Printer) Properties(view catalog.TableProperties) error {
	if p.Format != OutputFormatTable {
		return p.structured(view)
	}

	p.section("Properties")
	if err := p.keyValues(view.Properties); err != nil {
		return err
	}

	p.section("Snapshot summary")
	if err := p.keyValues(view.AdditionalProperties); err != nil {
		return err
	}

	p.section("Partition specs")
	specs := p.newTable("SPEC ID", "FIELDS")
	for _, spec := range view.Partition {
		specs.AppendRow(prettytable.Row{spec.ID(), partitionFields(spec)})
	}
	if err := p.render(specs, len(view.Partition), "partition specs"); err != nil {
		return err
	}

	p.section("Sort orders")
	orders := p.newTable("ORDER ID", "FIELDS")
	for _, order := range view.SortOrders {
		orders.AppendRow(prettytable.Row{order.OrderID, sortFields(order)})
	}
	return p.render(orders, len(view.SortOrders), "sort orders")
}

func (p *Printer) keyValues(m map[string]string) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tw := p.newTable("KEY", "VALUE")
	for _, k := range keys {
		tw.AppendRow(prettytable.Row{k, pkgstrings.Ellipsize(m[k], p.MaxCellLen)})
	}
	return p.render(tw, len(keys), "entries")
}

func (p *Printer) section(title string) {
	fmt.Fprintf(p.Out, "\n%s\n", text.Bold.Sprint(title))
}

func (p *Printer) newTable(headers ...string) prettytable.Writer {
	tw := prettytable.NewWriter()
	tw.SetOutputMirror(p.Out)
	tw.SetStyle(plainStyle())
	if !p.NoHeaders {
		row := make(prettytable.Row, 0, len(headers))
		for _, h := range headers {
			row = append(row, h)
		}
		tw.AppendHeader(row)
	}
	return tw
}

func (p *Printer) render(tw prettytable.Writer, rows int, what string) error {
	if rows == 0 {
		_, err := fmt.Fprintf(p.Out, "No %s found\n", what)
		return err
	}
	tw.Render()
	return nil
}

// structured writes v as JSON or YAML. YAML is produced from the JSON form so
// that both formats share field names.
func (p *Printer) structured(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	if p.Format == OutputFormatJSON {
		_, err = fmt.Fprintln(p.Out, string(data))
		return err
	}

	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return fmt.Errorf("failed to convert output: %w", err)
	}
	out, err := yaml.Marshal(generic)
	if err != nil {
		return fmt.Errorf("failed to encode output as YAML: %w", err)
	}
	_, err = p.Out.Write(out)
	return err
}

// plainStyle draws kubectl-like tables: no borders, no separators.
func plainStyle() prettytable.Style {
	style := prettytable.StyleDefault
	style.Options.DrawBorder = false
	style.Options.SeparateColumns = false
	style.Options.SeparateHeader = false
	style.Options.SeparateRows = false
	style.Box.PaddingLeft = ""
	style.Box.PaddingRight = "   "
	style.Format.Header = text.FormatUpper
	return style
}

func partitionFields(spec iceberg.PartitionSpec) string {
	if spec.NumFields() == 0 {
		return "unpartitioned"
	}
	parts := make([]string, 0, spec.NumFields())
	for i := 0; i < spec.NumFields(); i++ {
		f := spec.Field(i)
		parts = append(parts, fmt.Sprintf("%s=%s(%d)", f.Name, f.Transform, f.SourceID))
	}
	return strings.Join(parts, ", ")
}

func sortFields(order table.SortOrder) string {
	if len(order.Fields) == 0 {
		return "unsorted"
	}
	parts := make([]string, 0, len(order.Fields))
	for _, f := range order.Fields {
		parts = append(parts, fmt.Sprintf("%s(%d) %s %s", f.Transform, f.SourceID, f.Direction, f.NullOrder))
	}
	return strings.Join(parts, ", ")
}
