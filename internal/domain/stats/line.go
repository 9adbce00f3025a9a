// Package stats turns any slice of the event log into a BattingLine.
package stats

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// ratePlaces is the number of decimal places rate stats are rounded to.
const ratePlaces = 3

// BattingLine is the counting and rate stat bundle for one filter over the
// event log. R is always zero: runs scored cannot be derived from pitch data.
type BattingLine struct {
	G   int `json:"G"`
	PA  int `json:"PA"`
	AB  int `json:"AB"`
	R   int `json:"R"`
	H   int `json:"H"`
	B2  int `json:"2B"`
	B3  int `json:"3B"`
	HR  int `json:"HR"`
	RBI int `json:"RBI"`
	BB  int `json:"BB"`
	SO  int `json:"SO"`
	HBP int `json:"HBP"`
	SH  int `json:"SH"`
	SF  int `json:"SF"`
	IBB int `json:"IBB"`
	TB  int `json:"TB"`
	GDP int `json:"GDP"`

	BA    float64 `json:"BA"`
	OBP   float64 `json:"OBP"`
	SLG   float64 `json:"SLG"`
	OPS   float64 `json:"OPS"`
	BAbip float64 `json:"BAbip"`
}

// Empty is the line returned when a filter matches no terminal pitches.
var Empty = BattingLine{}

// Columns lists the wire names of the BattingLine fields in order.
var Columns = []string{
	"G", "PA", "AB", "R", "H", "2B", "3B", "HR", "RBI", "BB", "SO",
	"HBP", "SH", "SF", "IBB", "TB", "GDP",
	"BA", "OBP", "SLG", "OPS", "BAbip",
}

// Stat returns the value of the column with the given wire name.
func (l BattingLine) Stat(name string) (float64, bool) {
	switch name {
	case "G":
		return float64(l.G), true
	case "PA":
		return float64(l.PA), true
	case "AB":
		return float64(l.AB), true
	case "R":
		return float64(l.R), true
	case "H":
		return float64(l.H), true
	case "2B":
		return float64(l.B2), true
	case "3B":
		return float64(l.B3), true
	case "HR":
		return float64(l.HR), true
	case "RBI":
		return float64(l.RBI), true
	case "BB":
		return float64(l.BB), true
	case "SO":
		return float64(l.SO), true
	case "HBP":
		return float64(l.HBP), true
	case "SH":
		return float64(l.SH), true
	case "SF":
		return float64(l.SF), true
	case "IBB":
		return float64(l.IBB), true
	case "TB":
		return float64(l.TB), true
	case "GDP":
		return float64(l.GDP), true
	case "BA":
		return l.BA, true
	case "OBP":
		return l.OBP, true
	case "SLG":
		return l.SLG, true
	case "OPS":
		return l.OPS, true
	case "BAbip":
		return l.BAbip, true
	default:
		return 0, false
	}
}

// Round rounds v to three decimal places. The exact binary value of v is
// rounded, with exact ties going to the even digit, so 0.0625 becomes 0.062
// and 1.0005 (stored just below the tie) becomes 1.0.
func Round(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return exactDecimal(v).RoundBank(ratePlaces).InexactFloat64()
}

// exactDecimal converts v to the decimal equal to its binary value.
// decimal.NewFromFloat picks the shortest representation instead, which
// turns values stored just below a tie into the tie itself.
func exactDecimal(v float64) decimal.Decimal {
	frac, exp := math.Frexp(v)
	m := big.NewInt(int64(frac * (1 << 53)))
	exp -= 53
	if exp >= 0 {
		return decimal.NewFromBigInt(m.Lsh(m, uint(exp)), 0)
	}
	// m/2^k == m*5^k/10^k
	k := big.NewInt(int64(-exp))
	m.Mul(m, new(big.Int).Exp(big.NewInt(5), k, nil))
	return decimal.NewFromBigInt(m, int32(exp))
}

// ratio returns num/den, or zero when den is not positive.
func ratio(num, den int) float64 {
	if den <= 0 {
		return 0
	}
	return float64(num) / float64(den)
}
