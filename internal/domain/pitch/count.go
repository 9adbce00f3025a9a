package pitch

import "fmt"

// Count is a ball-strike count.
type Count struct {
	Balls   int
	Strikes int
}

// String renders the count as "B-S".
func (c Count) String() string {
	return fmt.Sprintf("%d-%d", c.Balls, c.Strikes)
}
