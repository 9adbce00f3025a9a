package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	service "github.com/okian/batterlab/internal/app"
	"github.com/okian/batterlab/internal/domain/player"
	"github.com/okian/batterlab/internal/domain/session"
)

const dateLayout = "2006-01-02"

// loadRequest mirrors the OpenAPI schema for POST and PUT /sessions.
type loadRequest struct {
	PlayerName string `json:"player_name"`
	PlayerID   int64  `json:"player_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

// toService parses the request. When partial is set, missing fields are
// left zero for the service to fill from the current session.
func (l loadRequest) toService(partial bool) (service.LoadRequest, error) {
	req := service.LoadRequest{PlayerName: strings.TrimSpace(l.PlayerName), PlayerID: l.PlayerID}
	if l.PlayerID < 0 {
		return req, errors.New("player_id must be positive")
	}
	if !partial && req.PlayerName == "" && req.PlayerID == 0 {
		return req, errors.New("missing player_name or player_id")
	}
	var err error
	if req.Start, err = parseDate(l.StartDate, "start_date", partial); err != nil {
		return req, err
	}
	if req.End, err = parseDate(l.EndDate, "end_date", partial); err != nil {
		return req, err
	}
	return req, nil
}

func parseDate(raw, field string, optional bool) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		if optional {
			return time.Time{}, nil
		}
		return time.Time{}, errors.New("missing " + field)
	}
	d, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, errors.New("invalid " + field + "; must be YYYY-MM-DD")
	}
	return d, nil
}

// sessionResponse is the session summary.
type sessionResponse struct {
	ID           string              `json:"id"`
	Player       player.Identity     `json:"player"`
	StartDate    string              `json:"start_date"`
	EndDate      string              `json:"end_date"`
	Pitches      int                 `json:"pitches"`
	LoadedAt     time.Time           `json:"loaded_at"`
	SeasonTotals player.SeasonTotals `json:"season_totals"`
	WalksDisplay int                 `json:"walks_display"`
	Bio          player.Bio          `json:"bio"`
}

func summarize(s *session.Session) sessionResponse {
	return sessionResponse{
		ID:           s.ID.String(),
		Player:       s.Player,
		StartDate:    s.Start.Format(dateLayout),
		EndDate:      s.End.Format(dateLayout),
		Pitches:      s.Pitches(),
		LoadedAt:     s.LoadedAt,
		SeasonTotals: s.Totals,
		WalksDisplay: s.Totals.WalksDisplay(),
		Bio:          s.Bio,
	}
}

// SessionsHandler loads, reloads and describes sessions.
type SessionsHandler struct {
	deps Dependencies
}

// NewSessionsHandler creates a new sessions handler.
func NewSessionsHandler(deps Dependencies) *SessionsHandler {
	return &SessionsHandler{deps: deps}
}

// HandleCreate handles POST /sessions.
func (h *SessionsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	const op = "api.sessions.create"
	req, err := decodeLoad(r, op, false)
	if err != nil {
		writeError(w, err)
		return
	}
	s, err := h.deps.Load(r.Context(), req)
	if err != nil {
		writeError(w, Wrap(op, err))
		return
	}
	w.Header().Set("Location", "/sessions/"+s.ID.String())
	writeJSON(w, http.StatusCreated, summarize(s))
}

// HandleGet handles GET /sessions/{id}.
func (h *SessionsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	const op = "api.sessions.get"
	id, err := sessionID(r, op)
	if err != nil {
		writeError(w, err)
		return
	}
	s, err := h.deps.Session(r.Context(), id)
	if err != nil {
		writeError(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, summarize(s))
}

// HandleReload handles PUT /sessions/{id}.
func (h *SessionsHandler) HandleReload(w http.ResponseWriter, r *http.Request) {
	const op = "api.sessions.reload"
	id, err := sessionID(r, op)
	if err != nil {
		writeError(w, err)
		return
	}
	req, err := decodeLoad(r, op, true)
	if err != nil {
		writeError(w, err)
		return
	}
	s, err := h.deps.Reload(r.Context(), id, req)
	if err != nil {
		writeError(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, summarize(s))
}

func decodeLoad(r *http.Request, op string, partial bool) (service.LoadRequest, error) {
	var body loadRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		return service.LoadRequest{}, WrapKind(op, ErrBadRequest, err)
	}
	req, err := body.toService(partial)
	if err != nil {
		return service.LoadRequest{}, WrapKind(op, ErrBadRequest, err)
	}
	return req, nil
}
