package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/okian/batterlab/internal/domain/splits"
	"github.com/okian/batterlab/internal/domain/stats"
)

const defaultGridStat = "OPS"

// AnalysisHandler serves the derived statistics of a session.
type AnalysisHandler struct {
	deps Dependencies
}

// NewAnalysisHandler creates a new analysis handler.
func NewAnalysisHandler(deps Dependencies) *AnalysisHandler {
	return &AnalysisHandler{deps: deps}
}

// serve resolves the session id and writes the result of fn.
func serve[T any](w http.ResponseWriter, r *http.Request, op string, fn func(ctx context.Context, id uuid.UUID) (T, error)) {
	id, err := sessionID(r, op)
	if err != nil {
		writeError(w, err)
		return
	}
	v, err := fn(r.Context(), id)
	if err != nil {
		writeError(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// HandleLine handles GET /sessions/{id}/line.
func (h *AnalysisHandler) HandleLine(w http.ResponseWriter, r *http.Request) {
	serve(w, r, "api.line", h.deps.Line)
}

// HandleSplits handles GET /sessions/{id}/splits.
func (h *AnalysisHandler) HandleSplits(w http.ResponseWriter, r *http.Request) {
	serve(w, r, "api.splits", h.deps.Splits)
}

// HandleSplit handles GET /sessions/{id}/splits/{kind}.
func (h *AnalysisHandler) HandleSplit(w http.ResponseWriter, r *http.Request) {
	kind := r.PathValue("kind")
	serve(w, r, "api.split", func(ctx context.Context, id uuid.UUID) (splits.Table, error) {
		return h.deps.Split(ctx, id, kind)
	})
}

// gridCell is one rendered count-grid cell for the requested stat.
type gridCell struct {
	Balls   int                `json:"balls"`
	Strikes int                `json:"strikes"`
	Split   string             `json:"split"`
	HasData bool               `json:"has_data"`
	Stat    string             `json:"stat"`
	Value   *float64           `json:"value"`
	Display string             `json:"display"`
	Line    *stats.BattingLine `json:"line,omitempty"`
}

// HandleCountGrid handles GET /sessions/{id}/count-grid?stat=OPS.
func (h *AnalysisHandler) HandleCountGrid(w http.ResponseWriter, r *http.Request) {
	const op = "api.count_grid"
	stat := r.URL.Query().Get("stat")
	if stat == "" {
		stat = defaultGridStat
	}
	if _, ok := stats.Empty.Stat(stat); !ok {
		writeError(w, WrapKind(op, ErrBadRequest, fmt.Errorf("%w: %q", splits.ErrUnknownStat, stat)))
		return
	}
	serve(w, r, op, func(ctx context.Context, id uuid.UUID) ([]gridCell, error) {
		cells, err := h.deps.CountGrid(ctx, id)
		if err != nil {
			return nil, err
		}
		out := make([]gridCell, 0, len(cells))
		for _, c := range cells {
			g := gridCell{
				Balls: c.Balls, Strikes: c.Strikes, Split: c.Split,
				HasData: c.HasData, Stat: stat, Display: c.Display(stat),
			}
			if v, ok := c.Value(stat); ok {
				line := c.Line
				g.Value, g.Line = &v, &line
			}
			out = append(out, g)
		}
		return out, nil
	})
}

// HandleZones handles GET /sessions/{id}/zones?fill=true.
func (h *AnalysisHandler) HandleZones(w http.ResponseWriter, r *http.Request) {
	const op = "api.zones"
	fill := false
	if raw := r.URL.Query().Get("fill"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, WrapKind(op, ErrBadRequest, fmt.Errorf("invalid fill %q", raw)))
			return
		}
		fill = v
	}
	serve(w, r, op, func(ctx context.Context, id uuid.UUID) (any, error) {
		return h.deps.Zones(ctx, id, fill)
	})
}

// HandleDiscipline handles GET /sessions/{id}/discipline.
func (h *AnalysisHandler) HandleDiscipline(w http.ResponseWriter, r *http.Request) {
	serve(w, r, "api.discipline", h.deps.Discipline)
}

// HandlePitchers handles GET /sessions/{id}/pitchers.
func (h *AnalysisHandler) HandlePitchers(w http.ResponseWriter, r *http.Request) {
	serve(w, r, "api.pitchers", h.deps.Pitchers)
}

// HandleMatchup handles GET /sessions/{id}/matchups/{pitcher_id}.
func (h *AnalysisHandler) HandleMatchup(w http.ResponseWriter, r *http.Request) {
	const op = "api.matchup"
	pitcherID, err := strconv.ParseInt(r.PathValue("pitcher_id"), 10, 64)
	if err != nil || pitcherID <= 0 {
		writeError(w, NewKind(op, ErrBadRequest))
		return
	}
	serve(w, r, op, func(ctx context.Context, id uuid.UUID) (any, error) {
		return h.deps.Matchup(ctx, id, pitcherID)
	})
}

// HandleTrend handles GET /sessions/{id}/trend.
func (h *AnalysisHandler) HandleTrend(w http.ResponseWriter, r *http.Request) {
	serve(w, r, "api.trend", h.deps.Trend)
}

// HandleSpray handles GET /sessions/{id}/spray.
func (h *AnalysisHandler) HandleSpray(w http.ResponseWriter, r *http.Request) {
	serve(w, r, "api.spray", h.deps.Spray)
}
