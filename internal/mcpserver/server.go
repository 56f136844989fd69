package mcpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	apppublic "downcard/internal/app/public"
	appsession "downcard/internal/app/session"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server exposes the blackjack table over MCP so agents can play through
// tool calls instead of the REST surface.
type Server struct {
	sessionSvc *appsession.Service
	publicSvc  *apppublic.Service

	mcpServer  *server.MCPServer
	httpServer *server.StreamableHTTPServer
}

func New(sessionSvc *appsession.Service, publicSvc *apppublic.Service) *Server {
	mcpSrv := server.NewMCPServer(
		"downcard",
		"0.1.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithRecovery(),
		server.WithResourceRecovery(),
	)
	s := &Server{
		sessionSvc: sessionSvc,
		publicSvc:  publicSvc,
		mcpServer:  mcpSrv,
		httpServer: server.NewStreamableHTTPServer(mcpSrv, server.WithStateLess(true), server.WithDisableStreaming(true)),
	}
	s.registerGameplayTools()
	s.registerPublicTools()
	s.registerResources()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.httpServer
}

func (s *Server) registerResources() {
	s.mcpServer.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"player://{player_id}/state",
			"player_table_state",
			mcp.WithTemplateDescription("Current table state for a player"),
			mcp.WithTemplateMIMEType("application/json"),
		),
		func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			raw := request.Params.URI
			if !strings.HasPrefix(raw, "player://") || !strings.HasSuffix(raw, "/state") {
				return nil, nil
			}
			playerID := strings.TrimPrefix(raw, "player://")
			playerID = strings.TrimSuffix(playerID, "/state")
			if playerID == "" {
				return nil, nil
			}
			st, err := s.sessionSvc.State(ctx, playerID)
			if err != nil {
				return nil, err
			}
			payload, err := json.Marshal(statePayload(st))
			if err != nil {
				return nil, err
			}
			return []mcp.ResourceContents{
				mcp.TextResourceContents{
					URI:      raw,
					MIMEType: "application/json",
					Text:     string(payload),
				},
			}, nil
		},
	)
}
