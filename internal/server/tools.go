package server

import "github.com/mark3labs/mcp-go/mcp"

// Tools returns the definitions of every exposed tool.
func Tools() []mcp.Tool {
	return []mcp.Tool{
		mcp.NewTool(ToolGetNamespaces,
			mcp.WithDescription("Get all Iceberg namespaces"),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
		),
		mcp.NewTool(ToolGetTables,
			mcp.WithDescription("Get all tables of an Iceberg namespace"),
			mcp.WithString(ArgNamespace,
				mcp.Required(),
				mcp.Description("The namespace to list tables from"),
			),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
		),
		mcp.NewTool(ToolGetTableSchema,
			mcp.WithDescription("Get the current schema of an Iceberg table"),
			mcp.WithString(ArgNamespace,
				mcp.Required(),
				mcp.Description("The namespace of the table"),
			),
			mcp.WithString(ArgTable,
				mcp.Required(),
				mcp.Description("The name of the table"),
			),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
		),
		mcp.NewTool(ToolGetTableProperties,
			mcp.WithDescription("Get properties, snapshot summary, partition specs and sort orders of an Iceberg table"),
			mcp.WithString(ArgNamespace,
				mcp.Required(),
				mcp.Description("The namespace of the table"),
			),
			mcp.WithString(ArgTable,
				mcp.Required(),
				mcp.Description("The name of the table"),
			),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
		),
	}
}
