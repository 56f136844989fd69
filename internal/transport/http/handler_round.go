package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"

	appsession "downcard/internal/app/session"
	"downcard/internal/game"
)

type RoundHandlers struct {
	sessionSvc *appsession.Service
}

func NewRoundHandlers(sessionSvc *appsession.Service) *RoundHandlers {
	return &RoundHandlers{sessionSvc: sessionSvc}
}

type dealRequest struct {
	BetCents int64 `json:"bet_cents"`
}

type actionRequest struct {
	Action    string `json:"action"`
	HandIndex int    `json:"hand_index"`
}

type stateResponse struct {
	PlayerID      string         `json:"player_id"`
	BankrollCents int64          `json:"bankroll_cents"`
	Round         *game.Snapshot `json:"round,omitempty"`
}

func (h *RoundHandlers) Deal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, _ := PlayerFromContext(r.Context())
		var req dealRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		rs, err := h.sessionSvc.Deal(r.Context(), playerID, req.BetCents)
		if err != nil {
			writeGameError(w, err)
			return
		}
		writeRound(w, playerID, rs)
	}
}

func (h *RoundHandlers) Action() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, _ := PlayerFromContext(r.Context())
		var req actionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		rs, err := h.sessionSvc.Action(r.Context(), playerID, game.Action(req.Action), req.HandIndex)
		if err != nil {
			writeGameError(w, err)
			return
		}
		writeRound(w, playerID, rs)
	}
}

func (h *RoundHandlers) State() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, _ := PlayerFromContext(r.Context())
		st, err := h.sessionSvc.State(r.Context(), playerID)
		if err != nil {
			writeGameError(w, err)
			return
		}
		writeState(w, st)
	}
}

func (h *RoundHandlers) Reset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, _ := PlayerFromContext(r.Context())
		st, err := h.sessionSvc.Reset(r.Context(), playerID)
		if err != nil {
			writeGameError(w, err)
			return
		}
		writeState(w, st)
	}
}

func writeRound(w http.ResponseWriter, playerID string, rs *game.RoundState) {
	snap := rs.Snapshot()
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(stateResponse{
		PlayerID:      playerID,
		BankrollCents: rs.BankrollCents,
		Round:         &snap,
	})
}

func writeState(w http.ResponseWriter, st *appsession.TableState) {
	resp := stateResponse{PlayerID: st.PlayerID, BankrollCents: st.BankrollCents}
	if st.Round != nil {
		snap := st.Round.Snapshot()
		resp.Round = &snap
		resp.BankrollCents = snap.BankrollCents
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// writeGameError maps engine and session errors onto HTTP statuses. The
// error body carries the sentinel message as a stable machine code.
func writeGameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, appsession.ErrInvalidRequest):
		WriteHTTPError(w, http.StatusBadRequest, appsession.ErrInvalidRequest.Error())
	case errors.Is(err, game.ErrInvalidBet):
		WriteHTTPError(w, http.StatusBadRequest, game.ErrInvalidBet.Error())
	case errors.Is(err, game.ErrInvalidHandIndex):
		WriteHTTPError(w, http.StatusBadRequest, game.ErrInvalidHandIndex.Error())
	case errors.Is(err, game.ErrInsufficientBankroll):
		WriteHTTPError(w, http.StatusConflict, game.ErrInsufficientBankroll.Error())
	case errors.Is(err, game.ErrWrongPhase):
		WriteHTTPError(w, http.StatusConflict, game.ErrWrongPhase.Error())
	case errors.Is(err, game.ErrIllegalAction):
		WriteHTTPError(w, http.StatusConflict, game.ErrIllegalAction.Error())
	case errors.Is(err, game.ErrNoActiveRound):
		WriteHTTPError(w, http.StatusNotFound, game.ErrNoActiveRound.Error())
	case errors.Is(err, game.ErrUnsupportedAction):
		WriteHTTPError(w, http.StatusUnprocessableEntity, game.ErrUnsupportedAction.Error())
	default:
		WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
	}
}
