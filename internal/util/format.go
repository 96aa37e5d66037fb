package util

import (
	"fmt"
	"strings"
	"time"
)

// FormatNumber adds thousands separators to the integer part of n.
func FormatNumber(n float64, decimals int) string {
	s := fmt.Sprintf("%.*f", decimals, n)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	intPart, decPart, hasDec := strings.Cut(s, ".")
	if len(intPart) > 3 {
		var b strings.Builder
		lead := len(intPart) % 3
		if lead > 0 {
			b.WriteString(intPart[:lead])
		}
		for i := lead; i < len(intPart); i += 3 {
			if b.Len() > 0 {
				b.WriteByte(',')
			}
			b.WriteString(intPart[i : i+3])
		}
		intPart = b.String()
	}

	if hasDec {
		return sign + intPart + "." + decPart
	}
	return sign + intPart
}

// FormatGrams renders a gCO2 figure, switching to kg above 10 000 g.
func FormatGrams(g float64) string {
	if g >= 10000 {
		return FormatNumber(g/1000, 1) + " kg"
	}
	return FormatNumber(g, 1) + " g"
}

// FormatSeconds renders a delay in seconds compactly.
func FormatSeconds(s float64) string {
	if s < 60 {
		return fmt.Sprintf("%.1fs", s)
	}
	return FormatDuration(time.Duration(s * float64(time.Second)))
}

func FormatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}

// FormatBytes renders a file size.
func FormatBytes(n int64) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%d B", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
	}
}
