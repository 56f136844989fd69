package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerPublicTools() {
	s.mcpServer.AddTool(
		mcp.NewTool(
			"leaderboard",
			mcp.WithDescription("Players ranked by lifetime net profit."),
			mcp.WithNumber("limit", mcp.Description("Page size, default 50")),
			mcp.WithNumber("offset", mcp.Description("Page offset, default 0")),
		),
		s.handleLeaderboard,
	)

	s.mcpServer.AddTool(
		mcp.NewTool(
			"player_stats",
			mcp.WithDescription("Lifetime stats for one player."),
			mcp.WithString("player_id", mcp.Required(), mcp.Description("Player id")),
		),
		s.handlePlayerStats,
	)
}

func (s *Server) handleLeaderboard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit, offset := 0, 0
	if request.GetArguments()["limit"] != nil {
		v, err := request.RequireFloat("limit")
		if err != nil {
			return toolError("invalid_request", err.Error()), nil
		}
		limit = int(v)
	}
	if request.GetArguments()["offset"] != nil {
		v, err := request.RequireFloat("offset")
		if err != nil {
			return toolError("invalid_request", err.Error()), nil
		}
		offset = int(v)
	}
	resp, err := s.publicSvc.Leaderboard(ctx, limit, offset)
	if err != nil {
		return mapDomainError(err), nil
	}
	return toolResult(resp), nil
}

func (s *Server) handlePlayerStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	playerID, err := request.RequireString("player_id")
	if err != nil {
		return toolError("invalid_request", err.Error()), nil
	}
	resp, statsErr := s.publicSvc.Player(ctx, playerID)
	if statsErr != nil {
		return mapDomainError(statsErr), nil
	}
	return toolResult(resp), nil
}
