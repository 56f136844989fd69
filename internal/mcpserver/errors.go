package mcpserver

import (
	"errors"
	"fmt"

	apppublic "downcard/internal/app/public"
	appsession "downcard/internal/app/session"
	"downcard/internal/game"
	"downcard/internal/store"

	"github.com/mark3labs/mcp-go/mcp"
)

func toolResult(data any) *mcp.CallToolResult {
	return mcp.NewToolResultStructuredOnly(data)
}

func toolError(code, message string) *mcp.CallToolResult {
	result := mcp.NewToolResultStructured(
		map[string]any{
			"error": map[string]any{
				"code":    code,
				"message": message,
			},
		},
		fmt.Sprintf("%s: %s", code, message),
	)
	result.IsError = true
	return result
}

func mapDomainError(err error) *mcp.CallToolResult {
	switch {
	case err == nil:
		return toolError("internal_error", "unknown error")
	case errors.Is(err, appsession.ErrInvalidRequest), errors.Is(err, apppublic.ErrInvalidRequest):
		return toolError("invalid_request", err.Error())
	case errors.Is(err, game.ErrInvalidBet):
		return toolError("invalid_bet", err.Error())
	case errors.Is(err, game.ErrInsufficientBankroll):
		return toolError("insufficient_bankroll", err.Error())
	case errors.Is(err, game.ErrNoActiveRound):
		return toolError("no_active_round", err.Error())
	case errors.Is(err, game.ErrWrongPhase):
		return toolError("wrong_phase", err.Error())
	case errors.Is(err, game.ErrInvalidHandIndex):
		return toolError("invalid_hand_index", err.Error())
	case errors.Is(err, game.ErrIllegalAction):
		return toolError("illegal_action", err.Error())
	case errors.Is(err, game.ErrUnsupportedAction):
		return toolError("unsupported_action", err.Error())
	case errors.Is(err, apppublic.ErrUnavailable):
		return toolError("stats_unavailable", err.Error())
	case errors.Is(err, apppublic.ErrPlayerNotFound), errors.Is(err, store.ErrNotFound):
		return toolError("not_found", err.Error())
	default:
		return toolError("internal_error", err.Error())
	}
}
