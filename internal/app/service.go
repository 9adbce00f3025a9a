// Package service orchestrates the data providers, the session store and the
// aggregation engine behind the HTTP and MCP surfaces.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/okian/batterlab/internal/adapters/repository"
	"github.com/okian/batterlab/internal/domain/pitch"
	"github.com/okian/batterlab/internal/domain/player"
	"github.com/okian/batterlab/internal/domain/session"
	"github.com/okian/batterlab/internal/domain/trend"
	"github.com/okian/batterlab/pkg/logger"
	"github.com/okian/batterlab/pkg/metrics"
)

const dateLayout = "2006-01-02"

// PitchSource fetches a batter's pitch table over an inclusive date range.
type PitchSource interface {
	Fetch(ctx context.Context, batterID int64, start, end time.Time) (*pitch.Table, error)
}

// Directory resolves batters and their display data.
type Directory interface {
	Lookup(ctx context.Context, name string) (player.Identity, error)
	ByID(ctx context.Context, id int64) (player.Identity, error)
	Search(ctx context.Context, q string) ([]player.Entry, error)
	Bio(ctx context.Context, id int64) (player.Bio, error)
	SeasonTotals(ctx context.Context, id int64, start, end time.Time) (player.SeasonTotals, error)
}

// LoadRequest selects a batter and a date range. PlayerID wins over
// PlayerName when both are set.
type LoadRequest struct {
	PlayerName string
	PlayerID   int64
	Start      time.Time
	End        time.Time
}

// Service implements the API dependencies for the batter dashboard.
type Service struct {
	source    PitchSource
	directory Directory
	store     repository.Store
	logger    logger.Logger
	now       func() time.Time

	coverageStart   time.Time
	coverageEnd     time.Time
	trendWindow     int
	trendMinPeriods int
}

// New constructs a Service reading pitches from source.
func New(source PitchSource, opts ...Option) *Service {
	s := &Service{
		source:          source,
		store:           repository.NewMemoryStore(),
		logger:          logger.Named("service"),
		now:             time.Now,
		coverageStart:   time.Date(2015, time.April, 1, 0, 0, 0, 0, time.UTC),
		coverageEnd:     time.Date(2025, time.November, 15, 0, 0, 0, 0, time.UTC),
		trendWindow:     trend.DefaultWindow,
		trendMinPeriods: trend.DefaultMinPeriods,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load resolves the batter, fetches the pitch table and stores a new session.
func (s *Service) Load(ctx context.Context, req LoadRequest) (*session.Session, error) {
	sess, err := s.build(ctx, req)
	if err != nil {
		return nil, err
	}
	return sess, s.put(ctx, sess)
}

// Reload replaces the session id with a fresh load. Unset request fields keep
// the current player and range.
func (s *Service) Reload(ctx context.Context, id uuid.UUID, req LoadRequest) (*session.Session, error) {
	current, err := s.Session(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.PlayerID == 0 && req.PlayerName == "" {
		req.PlayerID = current.Player.ID
	}
	if req.Start.IsZero() {
		req.Start = current.Start
	}
	if req.End.IsZero() {
		req.End = current.End
	}

	sess, err := s.build(ctx, req)
	if err != nil {
		return nil, err
	}
	sess.ID = id
	return sess, s.put(ctx, sess)
}

// Session returns the stored session with id.
func (s *Service) Session(ctx context.Context, id uuid.UUID) (*session.Session, error) {
	sess, err := s.store.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return sess, nil
}

// SearchPlayers returns directory matches for q, filtered and ordered for display.
func (s *Service) SearchPlayers(ctx context.Context, q string, limit int) ([]player.Entry, error) {
	if s.directory == nil {
		return nil, ErrNoDirectory
	}
	roster, err := s.directory.Search(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("search players: %w", err)
	}
	return player.Search(roster, q, limit), nil
}

// Stats returns service statistics for monitoring.
func (s *Service) Stats(ctx context.Context) map[string]any {
	sessions := s.store.Count(ctx)
	metrics.UpdateSessionsActive(sessions)
	return map[string]any{
		"sessions":       sessions,
		"coverage_start": s.coverageStart.Format(dateLayout),
		"coverage_end":   s.coverageEnd.Format(dateLayout),
		"directory":      s.directory != nil,
	}
}

func (s *Service) put(ctx context.Context, sess *session.Session) error {
	if err := s.store.Put(ctx, sess); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	metrics.RecordSessionLoaded(sess.Pitches())
	s.logger.Info(ctx, "session loaded",
		logger.String("session", sess.ID.String()),
		logger.Int64("player_id", sess.Player.ID),
		logger.String("start", sess.Start.Format(dateLayout)),
		logger.String("end", sess.End.Format(dateLayout)),
		logger.Int("pitches", sess.Pitches()),
	)
	return nil
}

// build validates req and assembles a session without an id.
func (s *Service) build(ctx context.Context, req LoadRequest) (*session.Session, error) {
	if err := s.validateRange(req.Start, req.End); err != nil {
		return nil, err
	}
	who, err := s.resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	table, err := s.source.Fetch(ctx, who.ID, req.Start, req.End)
	if err != nil {
		metrics.RecordErrorByComponent("service", "fetch_pitches")
		return nil, fmt.Errorf("fetch pitches for %d: %w", who.ID, err)
	}
	if table.Len() == 0 {
		return nil, fmt.Errorf("%w: %s %s..%s", ErrNoPitchData, displayName(who),
			req.Start.Format(dateLayout), req.End.Format(dateLayout))
	}

	sess := session.New(who, req.Start, req.End, table, s.now())
	s.decorate(ctx, sess)
	return sess, nil
}

// decorate attaches display-only data. Failures are logged, never fatal.
func (s *Service) decorate(ctx context.Context, sess *session.Session) {
	if s.directory == nil {
		return
	}
	if totals, err := s.directory.SeasonTotals(ctx, sess.Player.ID, sess.Start, sess.End); err != nil {
		s.logger.Warn(ctx, "season totals unavailable", logger.Int64("player_id", sess.Player.ID), logger.Error(err))
	} else {
		sess.Totals = totals
	}
	if bio, err := s.directory.Bio(ctx, sess.Player.ID); err != nil {
		s.logger.Warn(ctx, "player bio unavailable", logger.Int64("player_id", sess.Player.ID), logger.Error(err))
	} else {
		sess.Bio = bio
	}
}

func (s *Service) resolve(ctx context.Context, req LoadRequest) (player.Identity, error) {
	var (
		who player.Identity
		err error
	)
	switch {
	case req.PlayerID > 0 && s.directory == nil:
		return player.Identity{ID: req.PlayerID}, nil
	case req.PlayerID > 0:
		who, err = s.directory.ByID(ctx, req.PlayerID)
	case req.PlayerName != "" && s.directory == nil:
		return player.Identity{}, ErrNoDirectory
	case req.PlayerName != "":
		who, err = s.directory.Lookup(ctx, req.PlayerName)
	default:
		return player.Identity{}, ErrInvalidPlayer
	}
	if errors.Is(err, player.ErrNotFound) {
		return player.Identity{}, fmt.Errorf("%w: %w", ErrPlayerNotFound, err)
	}
	if err != nil {
		return player.Identity{}, fmt.Errorf("resolve player: %w", err)
	}
	return who, nil
}

func (s *Service) validateRange(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", ErrInvalidDateRange)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: end %s precedes start %s", ErrInvalidDateRange,
			end.Format(dateLayout), start.Format(dateLayout))
	}
	if start.Before(s.coverageStart) || end.After(s.coverageEnd) {
		return fmt.Errorf("%w: %s..%s", ErrDateOutOfCoverage,
			s.coverageStart.Format(dateLayout), s.coverageEnd.Format(dateLayout))
	}
	return nil
}

// ParseDate parses an ISO date as used by requests.
func ParseDate(raw string) (time.Time, error) {
	d, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not YYYY-MM-DD", ErrInvalidDateRange, raw)
	}
	return d, nil
}

func displayName(who player.Identity) string {
	if who.FullName != "" {
		return who.FullName
	}
	return fmt.Sprintf("player %d", who.ID)
}
