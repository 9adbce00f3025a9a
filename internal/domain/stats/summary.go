package stats

// Summary is the headline line across several split rows.
type Summary struct {
	PA  int     `json:"PA"`
	AB  int     `json:"AB"`
	H   int     `json:"H"`
	HR  int     `json:"HR"`
	BA  float64 `json:"BA"`
	OBP float64 `json:"OBP"`
	SLG float64 `json:"SLG"`
	OPS float64 `json:"OPS"`
}

// Summarize totals the counting stats of lines and recomputes the rate stats
// from those totals rather than averaging the rates.
func Summarize(lines []BattingLine) Summary {
	if len(lines) == 0 {
		return Summary{}
	}

	var s Summary
	var bb, hbp, sf, tb int
	for _, l := range lines {
		s.PA += l.PA
		s.AB += l.AB
		s.H += l.H
		s.HR += l.HR
		bb += l.BB
		hbp += l.HBP
		sf += l.SF
		tb += l.TB
	}

	obp := ratio(s.H+bb+hbp, s.AB+bb+hbp+sf)
	slg := ratio(tb, s.AB)
	s.BA = Round(ratio(s.H, s.AB))
	s.OBP = Round(obp)
	s.SLG = Round(slg)
	s.OPS = Round(obp + slg)
	return s
}
