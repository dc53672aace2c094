// Package mcp exposes one user's FitByte data to assistants over the Model
// Context Protocol. Every tool is read-only.
package mcp

import (
	"context"

	"github.com/Dan9191/fitbyte/internal/service"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with service access for a single user.
type Server struct {
	mcpServer *mcp.Server
	svc       *service.Service
	userID    int64
}

// NewServer creates an MCP server answering for userID.
func NewServer(svc *service.Service, userID int64, version string) *Server {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "fitbyte",
			Version: version,
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		svc:       svc,
		userID:    userID,
	}
	s.registerTools()
	return s
}

// Serve runs the server over stdio until ctx is cancelled or the client disconnects.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
