package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"

	apppublic "downcard/internal/app/public"

	"github.com/go-chi/chi/v5"
)

type PublicHandlers struct {
	publicSvc *apppublic.Service
}

func NewPublicHandlers(publicSvc *apppublic.Service) *PublicHandlers {
	return &PublicHandlers{publicSvc: publicSvc}
}

func (h *PublicHandlers) Leaderboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, offset := ParsePagination(r)
		resp, err := h.publicSvc.Leaderboard(r.Context(), limit, offset)
		if err != nil {
			writePublicError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func (h *PublicHandlers) Player() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := chi.URLParam(r, "player_id")
		resp, err := h.publicSvc.Player(r.Context(), playerID)
		if err != nil {
			writePublicError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func writePublicError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apppublic.ErrInvalidRequest):
		WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
	case errors.Is(err, apppublic.ErrPlayerNotFound):
		WriteHTTPError(w, http.StatusNotFound, "player_not_found")
	case errors.Is(err, apppublic.ErrUnavailable):
		WriteHTTPError(w, http.StatusServiceUnavailable, "stats_unavailable")
	default:
		WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
	}
}
