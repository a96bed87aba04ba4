package normalize

import (
	"math"
	"strconv"
	"strings"
)

// strips the junk spreadsheet exports put inside plain numbers:
// thousands commas plus regular, non-breaking and narrow spaces.
var numJunk = strings.NewReplacer("\u00A0", "", "\u202F", "", " ", "", "\t", "", ",", "")

// ParseNumber coerces a cell that should already be a number ("5",
// " 4 ", "2,500"). No suffix shorthand, no token extraction: if the
// whole cell isn't a number after cleanup, it is missing. Use this for
// columns like seat counts where "350 HP"-style text would be a data
// error, not something to salvage.
func ParseNumber(cell any) (float64, bool) {
	s, ok := asString(cell)
	if !ok {
		return 0, false
	}
	s = numJunk.Replace(s)
	if s == "" || s == "-" || s == "." {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
