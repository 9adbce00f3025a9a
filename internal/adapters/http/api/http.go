package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	service "github.com/okian/batterlab/internal/app"
	"github.com/okian/batterlab/internal/domain/matchup"
	"github.com/okian/batterlab/internal/domain/player"
	"github.com/okian/batterlab/internal/domain/session"
	"github.com/okian/batterlab/internal/domain/splits"
	"github.com/okian/batterlab/internal/domain/stats"
	"github.com/okian/batterlab/internal/domain/trend"
	"github.com/okian/batterlab/internal/domain/zone"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	Load(ctx context.Context, req service.LoadRequest) (*session.Session, error)
	Reload(ctx context.Context, id uuid.UUID, req service.LoadRequest) (*session.Session, error)
	Session(ctx context.Context, id uuid.UUID) (*session.Session, error)

	Line(ctx context.Context, id uuid.UUID) (stats.BattingLine, error)
	Splits(ctx context.Context, id uuid.UUID) ([]splits.Table, error)
	Split(ctx context.Context, id uuid.UUID, kind string) (splits.Table, error)
	CountGrid(ctx context.Context, id uuid.UUID) ([]splits.GridCell, error)
	Zones(ctx context.Context, id uuid.UUID, fill bool) ([]zone.Cell, error)
	Discipline(ctx context.Context, id uuid.UUID) (zone.Discipline, error)
	Pitchers(ctx context.Context, id uuid.UUID) ([]matchup.Pitcher, error)
	Matchup(ctx context.Context, id uuid.UUID, pitcherID int64) (matchup.Matchup, error)
	Trend(ctx context.Context, id uuid.UUID) (trend.Trend, error)
	Spray(ctx context.Context, id uuid.UUID) ([]trend.Hit, error)

	SearchPlayers(ctx context.Context, q string, limit int) ([]player.Entry, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	sessionsHandler *SessionsHandler
	analysisHandler *AnalysisHandler
	playersHandler  *PlayersHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(statsProvider),
		sessionsHandler: NewSessionsHandler(deps),
		analysisHandler: NewAnalysisHandler(deps),
		playersHandler:  NewPlayersHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(mux *http.ServeMux) {
	route := func(pattern, endpoint string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, MetricsMiddleware(h, endpoint))
	}

	route("GET /healthz", "healthz", s.healthHandler.HandleHealth)
	route("GET /stats", "stats", s.statsHandler.HandleStats)
	route("GET /players/search", "players_search", s.playersHandler.HandleSearch)

	route("POST /sessions", "sessions_create", s.sessionsHandler.HandleCreate)
	route("GET /sessions/{id}", "sessions_get", s.sessionsHandler.HandleGet)
	route("PUT /sessions/{id}", "sessions_reload", s.sessionsHandler.HandleReload)

	route("GET /sessions/{id}/line", "line", s.analysisHandler.HandleLine)
	route("GET /sessions/{id}/splits", "splits", s.analysisHandler.HandleSplits)
	route("GET /sessions/{id}/splits/{kind}", "split", s.analysisHandler.HandleSplit)
	route("GET /sessions/{id}/count-grid", "count_grid", s.analysisHandler.HandleCountGrid)
	route("GET /sessions/{id}/zones", "zones", s.analysisHandler.HandleZones)
	route("GET /sessions/{id}/discipline", "discipline", s.analysisHandler.HandleDiscipline)
	route("GET /sessions/{id}/pitchers", "pitchers", s.analysisHandler.HandlePitchers)
	route("GET /sessions/{id}/matchups/{pitcher_id}", "matchup", s.analysisHandler.HandleMatchup)
	route("GET /sessions/{id}/trend", "trend", s.analysisHandler.HandleTrend)
	route("GET /sessions/{id}/spray", "spray", s.analysisHandler.HandleSpray)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError renders err with the status of its kind.
func writeError(w http.ResponseWriter, err error) {
	code, name := status(err)
	writeJSON(w, code, errorResponse{Code: name, Message: err.Error()})
}

// sessionID parses the {id} path value.
func sessionID(r *http.Request, op string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, WrapKind(op, ErrBadRequest, err)
	}
	return id, nil
}
