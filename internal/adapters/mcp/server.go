// Package mcp exposes the batter analysis as Model Context Protocol tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	service "github.com/okian/batterlab/internal/app"
	"github.com/okian/batterlab/internal/domain/matchup"
	"github.com/okian/batterlab/internal/domain/session"
	"github.com/okian/batterlab/internal/domain/splits"
	"github.com/okian/batterlab/internal/domain/zone"
	"github.com/okian/batterlab/pkg/logger"
	"github.com/okian/batterlab/pkg/metrics"
)

const implementation = "batterlab"

// Dependencies is the slice of the service the tools call.
type Dependencies interface {
	Load(ctx context.Context, req service.LoadRequest) (*session.Session, error)
	Splits(ctx context.Context, id uuid.UUID) ([]splits.Table, error)
	Split(ctx context.Context, id uuid.UUID, kind string) (splits.Table, error)
	Zones(ctx context.Context, id uuid.UUID, fill bool) ([]zone.Cell, error)
	Discipline(ctx context.Context, id uuid.UUID) (zone.Discipline, error)
	Pitchers(ctx context.Context, id uuid.UUID) ([]matchup.Pitcher, error)
	Matchup(ctx context.Context, id uuid.UUID, pitcherID int64) (matchup.Matchup, error)
}

// Tool names.
const (
	ToolLoadPlayer      = "load_player"
	ToolBattingSplits   = "batting_splits"
	ToolZoneProfile     = "zone_profile"
	ToolPlateDiscipline = "plate_discipline"
	ToolPitcherMatchup  = "pitcher_matchup"
)

// LoadPlayerArgs selects a batter and a date range.
type LoadPlayerArgs struct {
	PlayerName string `json:"player_name,omitempty" jsonschema:"Batter full name, used when player_id is absent"`
	PlayerID   int64  `json:"player_id,omitempty" jsonschema:"MLBAM batter id"`
	StartDate  string `json:"start_date" jsonschema:"First game date, YYYY-MM-DD (required)"`
	EndDate    string `json:"end_date" jsonschema:"Last game date, YYYY-MM-DD (required)"`
}

// SessionArgs addresses a loaded session.
type SessionArgs struct {
	SessionID string `json:"session_id" jsonschema:"Session id returned by load_player (required)"`
}

// SplitsArgs selects one split kind or all of them.
type SplitsArgs struct {
	SessionID string `json:"session_id" jsonschema:"Session id returned by load_player (required)"`
	Kind      string `json:"kind,omitempty" jsonschema:"clutch|count|first_pitch|ballpark|inning|platoon|home_away|month (default all)"`
}

// ZoneArgs selects the zone grid.
type ZoneArgs struct {
	SessionID string `json:"session_id" jsonschema:"Session id returned by load_player (required)"`
	Fill      bool   `json:"fill,omitempty" jsonschema:"Include empty cells of the 3x3 grid"`
}

// MatchupArgs selects a pitcher. A zero pitcher id lists the pitchers faced.
type MatchupArgs struct {
	SessionID string `json:"session_id" jsonschema:"Session id returned by load_player (required)"`
	PitcherID int64  `json:"pitcher_id,omitempty" jsonschema:"MLBAM pitcher id (0 = list pitchers faced)"`
}

type loadResult struct {
	SessionID string `json:"session_id"`
	Player    string `json:"player"`
	PlayerID  int64  `json:"player_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Pitches   int    `json:"pitches"`
}

// Tools implements the tool handlers over deps.
type Tools struct {
	deps Dependencies
	log  logger.Logger
}

// NewTools creates the tool handlers.
func NewTools(deps Dependencies) *Tools {
	return &Tools{deps: deps, log: logger.Named("mcp")}
}

// NewServer registers every tool on a new MCP server.
func NewServer(deps Dependencies, version string) *sdk.Server {
	t := NewTools(deps)
	server := sdk.NewServer(&sdk.Implementation{Name: implementation, Version: version}, nil)

	addTool(server, t, &sdk.Tool{
		Name:        ToolLoadPlayer,
		Description: "Load a batter's Statcast pitches for a date range and return a session id",
	}, t.LoadPlayer)
	addTool(server, t, &sdk.Tool{
		Name:        ToolBattingSplits,
		Description: "Batting lines grouped by situation, count, park, inning, platoon, home/away or month",
	}, t.BattingSplits)
	addTool(server, t, &sdk.Tool{
		Name:        ToolZoneProfile,
		Description: "Batting average by strike-zone location",
	}, t.ZoneProfile)
	addTool(server, t, &sdk.Tool{
		Name:        ToolPlateDiscipline,
		Description: "Chase and zone-swing rates with a by-count breakdown",
	}, t.PlateDiscipline)
	addTool(server, t, &sdk.Tool{
		Name:        ToolPitcherMatchup,
		Description: "Pitchers faced, or the batter's results against one pitcher",
	}, t.PitcherMatchup)

	return server
}

// Handler serves server over the streamable HTTP transport.
func Handler(server *sdk.Server) http.Handler {
	return sdk.NewStreamableHTTPHandler(func(*http.Request) *sdk.Server {
		return server
	}, &sdk.StreamableHTTPOptions{JSONResponse: true})
}

// addTool registers fn and renders its value or error as tool content.
func addTool[T any](server *sdk.Server, t *Tools, tool *sdk.Tool, fn func(ctx context.Context, args T) (any, error)) {
	name := tool.Name
	sdk.AddTool(server, tool, func(ctx context.Context, _ *sdk.CallToolRequest, args T) (*sdk.CallToolResult, any, error) {
		start := time.Now()
		v, err := fn(ctx, args)
		if err != nil {
			metrics.RecordToolCall(name, "error")
			t.log.Warn(ctx, "tool call failed",
				logger.String("tool", name),
				logger.Duration("took", time.Since(start)),
				logger.Error(err))
			return toolError(err), nil, nil
		}
		metrics.RecordToolCall(name, "ok")
		return toolJSON(v)
	})
}

func toolJSON(v any) (*sdk.CallToolResult, any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return toolError(err), nil, nil
	}
	return &sdk.CallToolResult{
		Content: []sdk.Content{&sdk.TextContent{Text: string(b)}},
	}, nil, nil
}

func toolError(err error) *sdk.CallToolResult {
	return &sdk.CallToolResult{
		IsError: true,
		Content: []sdk.Content{&sdk.TextContent{Text: fmt.Sprintf("error: %v", err)}},
	}
}

// LoadPlayer handles load_player.
func (t *Tools) LoadPlayer(ctx context.Context, args LoadPlayerArgs) (any, error) {
	if args.PlayerName == "" && args.PlayerID == 0 {
		return nil, fmt.Errorf("%w: player_name or player_id", ErrMissingArgument)
	}
	start, err := service.ParseDate(args.StartDate)
	if err != nil {
		return nil, fmt.Errorf("start_date: %w", err)
	}
	end, err := service.ParseDate(args.EndDate)
	if err != nil {
		return nil, fmt.Errorf("end_date: %w", err)
	}
	s, err := t.deps.Load(ctx, service.LoadRequest{
		PlayerName: args.PlayerName,
		PlayerID:   args.PlayerID,
		Start:      start,
		End:        end,
	})
	if err != nil {
		return nil, err
	}
	return loadResult{
		SessionID: s.ID.String(),
		Player:    s.Player.FullName,
		PlayerID:  s.Player.ID,
		StartDate: s.Start.Format(time.DateOnly),
		EndDate:   s.End.Format(time.DateOnly),
		Pitches:   s.Pitches(),
	}, nil
}

// BattingSplits handles batting_splits.
func (t *Tools) BattingSplits(ctx context.Context, args SplitsArgs) (any, error) {
	id, err := parseSession(args.SessionID)
	if err != nil {
		return nil, err
	}
	if args.Kind == "" {
		return t.deps.Splits(ctx, id)
	}
	return t.deps.Split(ctx, id, args.Kind)
}

// ZoneProfile handles zone_profile.
func (t *Tools) ZoneProfile(ctx context.Context, args ZoneArgs) (any, error) {
	id, err := parseSession(args.SessionID)
	if err != nil {
		return nil, err
	}
	return t.deps.Zones(ctx, id, args.Fill)
}

// PlateDiscipline handles plate_discipline.
func (t *Tools) PlateDiscipline(ctx context.Context, args SessionArgs) (any, error) {
	id, err := parseSession(args.SessionID)
	if err != nil {
		return nil, err
	}
	return t.deps.Discipline(ctx, id)
}

// PitcherMatchup handles pitcher_matchup.
func (t *Tools) PitcherMatchup(ctx context.Context, args MatchupArgs) (any, error) {
	id, err := parseSession(args.SessionID)
	if err != nil {
		return nil, err
	}
	if args.PitcherID == 0 {
		return t.deps.Pitchers(ctx, id)
	}
	return t.deps.Matchup(ctx, id, args.PitcherID)
}

func parseSession(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, fmt.Errorf("%w: session_id", ErrMissingArgument)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("session_id: %w", err)
	}
	return id, nil
}
