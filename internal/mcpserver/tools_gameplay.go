package mcpserver

import (
	"context"

	appsession "downcard/internal/app/session"
	"downcard/internal/game"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerGameplayTools() {
	s.mcpServer.AddTool(
		mcp.NewTool(
			"deal_round",
			mcp.WithDescription("Start a new blackjack round with a wager in cents."),
			mcp.WithString("player_id", mcp.Required(), mcp.Description("Player id")),
			mcp.WithNumber("bet_cents", mcp.Required(), mcp.Description("Wager in cents, 100 to 10000")),
		),
		s.handleDealRound,
	)

	s.mcpServer.AddTool(
		mcp.NewTool(
			"play_action",
			mcp.WithDescription("Apply a player decision to the active hand."),
			mcp.WithString("player_id", mcp.Required(), mcp.Description("Player id")),
			mcp.WithString("action", mcp.Required(), mcp.Description("HIT|STAND|DOUBLE|SPLIT|SURRENDER")),
			mcp.WithNumber("hand_index", mcp.Description("Hand to act on, defaults to the active hand 0")),
		),
		s.handlePlayAction,
	)

	s.mcpServer.AddTool(
		mcp.NewTool(
			"table_state",
			mcp.WithDescription("Current bankroll and round state for a player."),
			mcp.WithString("player_id", mcp.Required(), mcp.Description("Player id")),
		),
		s.handleTableState,
	)

	s.mcpServer.AddTool(
		mcp.NewTool(
			"reset_game",
			mcp.WithDescription("Restore the starting bankroll and discard the current round and shoe."),
			mcp.WithString("player_id", mcp.Required(), mcp.Description("Player id")),
		),
		s.handleResetGame,
	)
}

func (s *Server) handleDealRound(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	playerID, err := request.RequireString("player_id")
	if err != nil {
		return toolError("invalid_request", err.Error()), nil
	}
	bet, err := request.RequireFloat("bet_cents")
	if err != nil {
		return toolError("invalid_request", err.Error()), nil
	}
	rs, dealErr := s.sessionSvc.Deal(ctx, playerID, int64(bet))
	if dealErr != nil {
		return mapDomainError(dealErr), nil
	}
	return toolResult(roundPayload(playerID, rs)), nil
}

func (s *Server) handlePlayAction(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	playerID, err := request.RequireString("player_id")
	if err != nil {
		return toolError("invalid_request", err.Error()), nil
	}
	action, err := request.RequireString("action")
	if err != nil {
		return toolError("invalid_request", err.Error()), nil
	}
	handIndex := 0
	if request.GetArguments()["hand_index"] != nil {
		v, convErr := request.RequireFloat("hand_index")
		if convErr != nil {
			return toolError("invalid_request", convErr.Error()), nil
		}
		handIndex = int(v)
	}
	rs, actErr := s.sessionSvc.Action(ctx, playerID, game.Action(action), handIndex)
	if actErr != nil {
		return mapDomainError(actErr), nil
	}
	return toolResult(roundPayload(playerID, rs)), nil
}

func (s *Server) handleTableState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	playerID, err := request.RequireString("player_id")
	if err != nil {
		return toolError("invalid_request", err.Error()), nil
	}
	st, stateErr := s.sessionSvc.State(ctx, playerID)
	if stateErr != nil {
		return mapDomainError(stateErr), nil
	}
	return toolResult(statePayload(st)), nil
}

func (s *Server) handleResetGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	playerID, err := request.RequireString("player_id")
	if err != nil {
		return toolError("invalid_request", err.Error()), nil
	}
	st, resetErr := s.sessionSvc.Reset(ctx, playerID)
	if resetErr != nil {
		return mapDomainError(resetErr), nil
	}
	return toolResult(statePayload(st)), nil
}

func roundPayload(playerID string, rs *game.RoundState) map[string]any {
	return map[string]any{
		"player_id":      playerID,
		"bankroll_cents": rs.BankrollCents,
		"round":          rs.Snapshot(),
	}
}

func statePayload(st *appsession.TableState) map[string]any {
	out := map[string]any{
		"player_id":      st.PlayerID,
		"bankroll_cents": st.BankrollCents,
	}
	if st.Round != nil {
		snap := st.Round.Snapshot()
		out["round"] = snap
		out["bankroll_cents"] = snap.BankrollCents
	}
	return out
}
