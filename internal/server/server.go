package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/sync/errgroup"

	"github.com/morristai/iceberg-mcp/internal/catalog"
	"github.com/morristai/iceberg-mcp/internal/config"
	"github.com/morristai/iceberg-mcp/pkg/logging"
)

const (
	// Name is the MCP server name reported to clients.
	Name = "iceberg-mcp"
	// Instructions is the MCP server description reported to clients.
	Instructions = "Iceberg MCP Server"

	shutdownTimeout = 5 * time.Second
)

// Server binds a Dispatcher to an MCP server.
type Server struct {
	dispatcher *Dispatcher
	mcpServer  *server.MCPServer

	stdin  io.Reader
	stdout io.Writer
}

// New creates a server exposing every tool of d.
func New(d *Dispatcher, version string) *Server {
	mcpServer := server.NewMCPServer(
		Name,
		version,
		server.WithToolCapabilities(false),
		server.WithInstructions(Instructions),
	)

	s := &Server{
		dispatcher: d,
		mcpServer:  mcpServer,
		stdin:      os.Stdin,
		stdout:     os.Stdout,
	}

	for _, tool := range Tools() {
		mcpServer.AddTool(tool, s.handler(tool.Name))
	}
	return s
}

// MCPServer returns the underlying mcp-go server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

func (s *Server) handler(tool string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		data, err := s.dispatcher.Call(ctx, tool, request.GetArguments())
		if err != nil {
			return errorResult(err), nil
		}
		return mcp.NewToolResultText(string(data)), nil
	}
}

// errorResult renders a failure as an MCP tool error carrying the kind both
// in the text and in the structured content.
func errorResult(err error) *mcp.CallToolResult {
	e := catalog.AsError(err, "tool call failed")
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(e.Error())},
		StructuredContent: map[string]any{
			"kind":   string(e.Kind),
			"reason": e.Reason,
		},
		IsError: true,
	}
}

// Serve runs the configured transport until ctx is cancelled or the
// transport fails.
func (s *Server) Serve(ctx context.Context, cfg config.ServerConfig) error {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	switch cfg.Transport {
	case config.TransportStdio:
		logging.Info("Server", "Starting MCP server with stdio transport")
		err := server.NewStdioServer(s.mcpServer).Listen(ctx, s.stdin, s.stdout)
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("stdio transport: %w", err)
		}
		return nil

	case config.TransportSSE:
		logging.Info("Server", "Starting MCP server with SSE transport on %s", addr)
		sseServer := server.NewSSEServer(
			s.mcpServer,
			server.WithBaseURL(fmt.Sprintf("http://%s", addr)),
			server.WithSSEEndpoint("/sse"),
			server.WithMessageEndpoint("/message"),
			server.WithKeepAlive(true),
			server.WithKeepAliveInterval(30*time.Second),
		)
		return serveHTTP(ctx, "SSE", func() error { return sseServer.Start(addr) }, sseServer.Shutdown)

	case config.TransportStreamableHTTP:
		logging.Info("Server", "Starting MCP server with streamable-http transport on %s", addr)
		httpServer := server.NewStreamableHTTPServer(s.mcpServer)
		return serveHTTP(ctx, "streamable HTTP", func() error { return httpServer.Start(addr) }, httpServer.Shutdown)

	default:
		return fmt.Errorf("unsupported transport %q", cfg.Transport)
	}
}

// serveHTTP runs start until it fails or ctx is cancelled, in which case the
// server is shut down with a grace period.
func serveHTTP(ctx context.Context, name string, start func() error, shutdown func(context.Context) error) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("%s transport: %w", name, err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logging.Info("Server", "Stopping %s transport", name)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			logging.Error("Server", err, "Error shutting down %s transport", name)
		}
		return nil
	})

	return g.Wait()
}
