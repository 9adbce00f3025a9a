package pitch

// Column names a field of the event log as it appears in the source header.
type Column string

// Columns read by the aggregation engine.
const (
	ColGamePK        Column = "game_pk"
	ColAtBatNumber   Column = "at_bat_number"
	ColPitchNumber   Column = "pitch_number"
	ColBatter        Column = "batter"
	ColPitcher       Column = "pitcher"
	ColPlayerName    Column = "player_name"
	ColPThrows       Column = "p_throws"
	ColInning        Column = "inning"
	ColInningTopBot  Column = "inning_topbot"
	ColOutsWhenUp    Column = "outs_when_up"
	ColOn1B          Column = "on_1b"
	ColOn2B          Column = "on_2b"
	ColOn3B          Column = "on_3b"
	ColBalls         Column = "balls"
	ColStrikes       Column = "strikes"
	ColBatScoreDiff  Column = "bat_score_diff"
	ColBatScore      Column = "bat_score"
	ColPostBatScore  Column = "post_bat_score"
	ColEvents        Column = "events"
	ColDescription   Column = "description"
	ColZone          Column = "zone"
	ColPlateX        Column = "plate_x"
	ColPlateZ        Column = "plate_z"
	ColEstimatedWOBA Column = "estimated_woba_using_speedangle"
	ColWOBAValue     Column = "woba_value"
	ColWOBADenom     Column = "woba_denom"
	ColDeltaRunExp   Column = "delta_run_exp"
	ColHomeTeam      Column = "home_team"
	ColGameDate      Column = "game_date"
	ColPitchType     Column = "pitch_type"
	ColPitchName     Column = "pitch_name"
	ColReleaseSpeed  Column = "release_speed"
	ColHitCoordX     Column = "hc_x"
	ColHitCoordY     Column = "hc_y"
)

// AllColumns lists every known column in source order.
var AllColumns = []Column{
	ColGamePK, ColAtBatNumber, ColPitchNumber,
	ColBatter, ColPitcher, ColPlayerName, ColPThrows,
	ColInning, ColInningTopBot, ColOutsWhenUp, ColOn1B, ColOn2B, ColOn3B,
	ColBalls, ColStrikes, ColBatScoreDiff,
	ColBatScore, ColPostBatScore,
	ColEvents, ColDescription,
	ColZone, ColPlateX, ColPlateZ, ColEstimatedWOBA, ColWOBAValue, ColWOBADenom, ColDeltaRunExp,
	ColHomeTeam, ColGameDate,
	ColPitchType, ColPitchName, ColReleaseSpeed, ColHitCoordX, ColHitCoordY,
}

// ColumnSet records which columns a table actually carries.
type ColumnSet map[Column]struct{}

// NewColumnSet builds a ColumnSet from cols.
func NewColumnSet(cols ...Column) ColumnSet {
	s := make(ColumnSet, len(cols))
	for _, c := range cols {
		s[c] = struct{}{}
	}
	return s
}

// Has reports whether c is present.
func (s ColumnSet) Has(c Column) bool {
	_, ok := s[c]
	return ok
}

// HasAll reports whether every column in cols is present.
func (s ColumnSet) HasAll(cols ...Column) bool {
	for _, c := range cols {
		if !s.Has(c) {
			return false
		}
	}
	return true
}

// Without returns a copy of s with cols removed.
func (s ColumnSet) Without(cols ...Column) ColumnSet {
	out := make(ColumnSet, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	for _, c := range cols {
		delete(out, c)
	}
	return out
}
