package splits

// Park names a ballpark and its city.
type Park struct {
	Code string `json:"code"`
	Name string `json:"name"`
	City string `json:"city"`
}

var parks = map[string]Park{
	"SEA": {"SEA", "T-Mobile Park", "Seattle"},
	"SF":  {"SF", "Oracle Park", "San Francisco"},
	"LAD": {"LAD", "Dodger Stadium", "Los Angeles"},
	"NYY": {"NYY", "Yankee Stadium", "New York"},
	"BOS": {"BOS", "Fenway Park", "Boston"},
	"CHC": {"CHC", "Wrigley Field", "Chicago"},
	"ATL": {"ATL", "Truist Park", "Atlanta"},
	"HOU": {"HOU", "Minute Maid Park", "Houston"},
	"TEX": {"TEX", "Globe Life Field", "Arlington"},
	"LAA": {"LAA", "Angel Stadium", "Anaheim"},
	"OAK": {"OAK", "Oakland Coliseum", "Oakland"},
	"SD":  {"SD", "Petco Park", "San Diego"},
	"ARI": {"ARI", "Chase Field", "Phoenix"},
	"COL": {"COL", "Coors Field", "Denver"},
	"MIL": {"MIL", "American Family Field", "Milwaukee"},
	"MIN": {"MIN", "Target Field", "Minneapolis"},
	"CWS": {"CWS", "Guaranteed Rate Field", "Chicago"},
	"DET": {"DET", "Comerica Park", "Detroit"},
	"CLE": {"CLE", "Progressive Field", "Cleveland"},
	"KC":  {"KC", "Kauffman Stadium", "Kansas City"},
	"STL": {"STL", "Busch Stadium", "St. Louis"},
	"CIN": {"CIN", "Great American Ball Park", "Cincinnati"},
	"PIT": {"PIT", "PNC Park", "Pittsburgh"},
	"NYM": {"NYM", "Citi Field", "New York"},
	"PHI": {"PHI", "Citizens Bank Park", "Philadelphia"},
	"MIA": {"MIA", "loanDepot park", "Miami"},
	"WSH": {"WSH", "Nationals Park", "Washington"},
	"TB":  {"TB", "Tropicana Field", "St. Petersburg"},
	"BAL": {"BAL", "Oriole Park", "Baltimore"},
	"TOR": {"TOR", "Rogers Centre", "Toronto"},
}

// ParkFor looks up a park by home_team code. Unknown codes come back with
// the code as the name and an empty city.
func ParkFor(code string) Park {
	if p, ok := parks[code]; ok {
		return p
	}
	return Park{Code: code, Name: code}
}

// TopPark is the ballpark row with the highest OPS together with its park.
type TopPark struct {
	Park Park `json:"park"`
	Row  Row  `json:"row"`
}

// BestPark picks the top-OPS park from a ballpark table.
func BestPark(t Table) (TopPark, bool) {
	row, ok, err := Best(t, "OPS")
	if err != nil || !ok {
		return TopPark{}, false
	}
	return TopPark{Park: ParkFor(row.Split), Row: row}, true
}
