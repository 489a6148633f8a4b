package server

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morristai/iceberg-mcp/internal/catalog"
	"github.com/morristai/iceberg-mcp/internal/config"
)

func callTool(t *testing.T, s *Server, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	result, err := s.handler(name)(context.Background(), mcp.CallToolRequest{
		Params: mcp.CallToolParams{Name: name, Arguments: args},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func textOf(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, result.Content, 1)
	text, ok := mcp.AsTextContent(result.Content[0])
	require.True(t, ok)
	return text.Text
}

func TestToolsDefinitions(t *testing.T) {
	tools := Tools()
	require.Len(t, tools, 4)

	names := make([]string, 0, len(tools))
	for _, tool := range tools {
		names = append(names, tool.Name)
		require.NotNil(t, tool.Annotations.ReadOnlyHint)
		assert.True(t, *tool.Annotations.ReadOnlyHint)
	}
	assert.Equal(t, []string{ToolGetNamespaces, ToolGetTables, ToolGetTableSchema, ToolGetTableProperties}, names)

	assert.Empty(t, tools[0].InputSchema.Required)
	assert.Equal(t, []string{ArgNamespace}, tools[1].InputSchema.Required)
	assert.ElementsMatch(t, []string{ArgNamespace, ArgTable}, tools[2].InputSchema.Required)
	assert.ElementsMatch(t, []string{ArgNamespace, ArgTable}, tools[3].InputSchema.Required)
}

func TestHandlerSuccess(t *testing.T) {
	d, _ := newTestDispatcher()
	s := New(d, "test")

	result := callTool(t, s, ToolGetTables, map[string]any{ArgNamespace: "sales"})

	assert.False(t, result.IsError)
	assert.JSONEq(t, `[{"namespace":["sales"],"name":"orders"}]`, textOf(t, result))
}

func TestHandlerErrorCarriesKind(t *testing.T) {
	d, _ := newTestDispatcher()
	s := New(d, "test")

	result := callTool(t, s, ToolGetTables, map[string]any{ArgNamespace: "missing_ns"})

	assert.True(t, result.IsError)
	assert.Contains(t, textOf(t, result), "NotFound: ")
	structured, ok := result.StructuredContent.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "NotFound", structured["kind"])
	assert.NotEmpty(t, structured["reason"])
}

func TestHandlerInvalidArgument(t *testing.T) {
	d, fake := newTestDispatcher()
	s := New(d, "test")

	result := callTool(t, s, ToolGetTableSchema, map[string]any{ArgNamespace: "sales"})

	assert.True(t, result.IsError)
	assert.Equal(t, "InvalidArgument", result.StructuredContent.(map[string]any)["kind"])
	assert.Zero(t, fake.CallCount(""))
}

func TestErrorResultForForeignError(t *testing.T) {
	result := errorResult(assert.AnError)

	assert.True(t, result.IsError)
	assert.Equal(t, string(catalog.KindInternal), result.StructuredContent.(map[string]any)["kind"])
}

func TestMCPToolsList(t *testing.T) {
	d, _ := newTestDispatcher()
	s := New(d, "test")

	resp := s.MCPServer().HandleMessage(context.Background(), []byte(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded struct {
		Result struct {
			Tools []struct {
				Name string `json:"name"`
			} `json:"tools"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	names := make([]string, 0, len(decoded.Result.Tools))
	for _, tool := range decoded.Result.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{ToolGetNamespaces, ToolGetTables, ToolGetTableSchema, ToolGetTableProperties}, names)
}

func TestServeUnsupportedTransport(t *testing.T) {
	d, _ := newTestDispatcher()
	s := New(d, "test")

	err := s.Serve(context.Background(), config.ServerConfig{Transport: "carrier-pigeon"})
	assert.ErrorContains(t, err, "unsupported transport")
}
