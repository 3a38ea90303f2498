// Package inspect exposes a running UI over the Model Context
// Protocol: an stdio server with tools to list components, read their
// properties and accessibility state, hit-test a point and drive the
// screen reader. Intended for debugging and automation harnesses.
package inspect

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/oakui/oak/a11y"
	"github.com/oakui/oak/backend"
	"github.com/oakui/oak/component"
)

const (
	ServerName    = "oak-inspector"
	ServerVersion = "0.1.0"
)

// Server is the MCP inspector over one component registry and one
// screen-reader backend.
type Server struct {
	mcpServer *mcpsdk.Server
	registry  *component.Registry
	reader    backend.ScreenReaderBackend
	props     *a11y.Registry
}

// NewServer creates an inspector. props may be nil when no
// accessibility registry is shared with the inspector; get_component
// then omits accessibility state.
func NewServer(reg *component.Registry, reader backend.ScreenReaderBackend, props *a11y.Registry) *Server {
	s := &Server{
		registry: reg,
		reader:   reader,
		props:    props,
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run serves the inspector on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_components",
		Description: "List all registered components with their id, visibility, enabled state and bounds.",
	}, s.handleListComponents)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "get_component",
		Description: "Read one component's properties by id, including its accessibility props when available.",
	}, s.handleGetComponent)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "hit_test",
		Description: "Return the topmost visible component containing the given point, if any.",
	}, s.handleHitTest)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "announce",
		Description: "Queue a screen-reader announcement with the given priority (low, medium or high). High flushes pending speech and speaks immediately.",
	}, s.handleAnnounce)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "set_focus",
		Description: "Point the screen reader's focus at a component by id, or clear it. Does not announce.",
	}, s.handleSetFocus)
}
