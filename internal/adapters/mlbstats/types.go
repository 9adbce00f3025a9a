package mlbstats

// Wire shapes of the StatsAPI responses; only the fields read are declared.

type peopleResponse struct {
	People []person `json:"people"`
}

type person struct {
	ID             int64  `json:"id"`
	FullName       string `json:"fullName"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	UseName        string `json:"useName"`
	Active         bool   `json:"active"`
	CurrentAge     int    `json:"currentAge"`
	Height         string `json:"height"`
	Weight         int    `json:"weight"`
	PrimaryNumber  string `json:"primaryNumber"`
	MLBDebutDate   string `json:"mlbDebutDate"`
	LastPlayedDate string `json:"lastPlayedDate"`
	BatSide        code   `json:"batSide"`
	PitchHand      code   `json:"pitchHand"`
	Position       struct {
		Abbreviation string `json:"abbreviation"`
	} `json:"primaryPosition"`
	CurrentTeam *struct {
		Name         string `json:"name"`
		Abbreviation string `json:"abbreviation"`
	} `json:"currentTeam"`
}

type code struct {
	Code string `json:"code"`
}

type statsResponse struct {
	Stats []struct {
		Splits []struct {
			Stat hitting `json:"stat"`
		} `json:"splits"`
	} `json:"stats"`
}

type hitting struct {
	GamesPlayed      int    `json:"gamesPlayed"`
	PlateAppearances int    `json:"plateAppearances"`
	AtBats           int    `json:"atBats"`
	Runs             int    `json:"runs"`
	Hits             int    `json:"hits"`
	Doubles          int    `json:"doubles"`
	Triples          int    `json:"triples"`
	HomeRuns         int    `json:"homeRuns"`
	RBI              int    `json:"rbi"`
	BaseOnBalls      int    `json:"baseOnBalls"`
	IntentionalWalks int    `json:"intentionalWalks"`
	HitByPitch       int    `json:"hitByPitch"`
	StrikeOuts       int    `json:"strikeOuts"`
	StolenBases      int    `json:"stolenBases"`
	CaughtStealing   int    `json:"caughtStealing"`
	Avg              string `json:"avg"`
	OBP              string `json:"obp"`
	SLG              string `json:"slg"`
	OPS              string `json:"ops"`
}
