package httptransport

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	apppublic "downcard/internal/app/public"
	appsession "downcard/internal/app/session"
	"downcard/internal/config"
	"downcard/internal/mcpserver"
	"downcard/internal/store"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

// NewRouter assembles the full HTTP surface: the REST round API, the
// public stats endpoints, and the MCP endpoint for agent play. The store
// may be nil, in which case rounds run in memory only and the public
// endpoints report unavailable.
func NewRouter(st *store.Store, cfg config.AppConfig) (*chi.Mux, error) {
	sessionSvc, err := appsession.NewService(cfg.Game, st)
	if err != nil {
		return nil, err
	}
	publicSvc := apppublic.NewService(st)

	roundHandlers := NewRoundHandlers(sessionSvc)
	publicHandlers := NewPublicHandlers(publicSvc)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)

	r.With(APILogMiddleware()).Get("/healthz", HealthHandler(st))

	if cfg.Server.MCPEnabled {
		mcpSrv := mcpserver.New(sessionSvc, publicSvc)
		r.With(APILogMiddleware()).MethodFunc(http.MethodOptions, "/mcp", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Allow", "POST, GET, DELETE, OPTIONS")
			w.WriteHeader(http.StatusNoContent)
		})
		r.With(APILogMiddleware()).Method(http.MethodPost, "/mcp", mcpSrv.Handler())
		r.With(APILogMiddleware()).Method(http.MethodGet, "/mcp", mcpSrv.Handler())
		r.With(APILogMiddleware()).Method(http.MethodDelete, "/mcp", mcpSrv.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(APILogMiddleware())
		r.Get("/public/leaderboard", publicHandlers.Leaderboard())
		r.Get("/public/players/{player_id}", publicHandlers.Player())

		r.Group(func(r chi.Router) {
			r.Use(PlayerIdentityMiddleware())
			r.Post("/round/deal", roundHandlers.Deal())
			r.Post("/round/action", roundHandlers.Action())
			r.Get("/round/state", roundHandlers.State())
			r.Post("/game/reset", roundHandlers.Reset())
		})
	})

	return r, nil
}

// HealthHandler reports process liveness and, when a store is attached,
// database reachability.
func HealthHandler(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if st == nil {
			_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "db": "off"})
			return
		}
		if err := st.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "db": "down"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "db": "up"})
	}
}

func LogRoutes(r chi.Router) {
	type routeDef struct {
		Method string
		Path   string
	}
	routes := make([]routeDef, 0, 64)
	err := chi.Walk(r, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = append(routes, routeDef{Method: method, Path: route})
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("walk routes failed")
		return
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Registered routes (%d):\n", len(routes)))
	for _, rt := range routes {
		b.WriteString(fmt.Sprintf("  %-6s %s\n", rt.Method, rt.Path))
	}
	fmt.Print(b.String())
}
