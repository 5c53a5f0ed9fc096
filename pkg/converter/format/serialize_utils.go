// Package format provides numeric formatting for transport-code cards.
package format

import (
	"fmt"
	"strconv"
	"strings"
)

// FloatToFixedWidthString renders n right-aligned in a w-wide column,
// trimming trailing zeros.
func FloatToFixedWidthString(n float64, w int) string {
	wStr := strconv.Itoa(w)
	s := fmt.Sprintf("%"+wStr+"."+wStr+"f", n)
	trimmed := strings.TrimRight(s[:w], "0")
	return strings.Repeat(" ", w-len(trimmed)) + trimmed
}

// FloatToPrecisionString renders n with the given number of significant
// digits.
func FloatToPrecisionString(n float64, precision int) string {
	return strconv.FormatFloat(n, 'g', precision, 64)
}
