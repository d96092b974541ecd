package reports

import (
	"fmt"
	"strings"
)

// formatThousands renders a float with thousand separators and the given
// number of decimals, e.g. 125508.57 -> "125,509" at 0 decimals.
func formatThousands(v float64, decimals int) string {
	s := fmt.Sprintf("%.*f", decimals, v)

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}

	var b strings.Builder
	n := len(intPart)
	for i, ch := range intPart {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(ch)
	}

	out := b.String() + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

// formatDollars renders a dollar amount with separators and no decimals.
func formatDollars(v float64) string {
	return "$" + formatThousands(v, 0)
}

// formatMillions renders a dollar amount in whole $M.
func formatMillions(v float64) string {
	return fmt.Sprintf("%.0f", v/1e6)
}
