package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSingleLine(t *testing.T) {
	assert.Equal(t, "order id of the row", SingleLine("  order id\nof the\t\trow "))
	assert.Equal(t, "", SingleLine(" \n\t"))
}

func TestEllipsize(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"short value unchanged", "snappy", 10, "snappy"},
		{"exact length unchanged", "parquet", 7, "parquet"},
		{"long value cut", "s3://warehouse/sales/orders", 12, "s3://ware..."},
		{"multiline doc flattened", "customer\nidentifier", 40, "customer identifier"},
		{"no limit", "s3://warehouse/sales/orders", 0, "s3://warehouse/sales/orders"},
		{"tiny limit raised", "abcdefgh", 2, "a..."},
		{"runes not bytes", "日本語のテーブル説明", 6, "日本語..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Ellipsize(tt.input, tt.maxLen))
		})
	}
}
