package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
)

// PlayersHandler serves the player search.
type PlayersHandler struct {
	deps Dependencies
}

// NewPlayersHandler creates a new players handler.
func NewPlayersHandler(deps Dependencies) *PlayersHandler {
	return &PlayersHandler{deps: deps}
}

type searchResult struct {
	ID          int64  `json:"id"`
	FullName    string `json:"full_name"`
	DisplayName string `json:"display_name"`
	FirstSeason int    `json:"first_season"`
	LastSeason  int    `json:"last_season"`
}

// HandleSearch handles GET /players/search?q=&limit=.
func (h *PlayersHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	const op = "api.players.search"
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		writeError(w, WrapKind(op, ErrBadRequest, errors.New("missing q")))
		return
	}
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, WrapKind(op, ErrBadRequest, errors.New("limit must be a positive integer")))
			return
		}
		limit = n
	}

	entries, err := h.deps.SearchPlayers(r.Context(), q, limit)
	if err != nil {
		writeError(w, Wrap(op, err))
		return
	}
	out := make([]searchResult, 0, len(entries))
	for _, e := range entries {
		out = append(out, searchResult{
			ID:          e.ID,
			FullName:    e.FullName,
			DisplayName: e.DisplayName(),
			FirstSeason: e.FirstSeason,
			LastSeason:  e.LastSeason,
		})
	}
	writeJSON(w, http.StatusOK, out)
}
