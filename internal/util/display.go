package util

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Terminal control sequences
const (
	ColorReset   = "\033[0m"
	ColorBlue    = "\033[34m"
	ColorCyan    = "\033[36m"
	ColorGreen   = "\033[32m"
	ColorYellow  = "\033[33m"
	ColorRed     = "\033[31m"
	ColorMagenta = "\033[35m"
	ColorBold    = "\033[1m"
	ColorDim     = "\033[2m"

	ClearScreen         = "\033[2J"   // Clear entire screen
	ClearLineFromCursor = "\033[0K"   // Clear from cursor to end of line
	ClearBelowCursor    = "\033[0J"   // Clear from cursor to end of screen
	ClearScrollback     = "\033[3J"   // Clear scrollback buffer
	MoveCursorHome      = "\033[H"    // Move cursor to home position
	HideCursor          = "\033[?25l" // Hide cursor
	ShowCursor          = "\033[?25h" // Show cursor
	EnterAltScreen      = "\033[?1049h"
	ExitAltScreen       = "\033[?1049l"
)

// GetDisplayWidth calculates the display width of a string, accounting for wide glyphs
func GetDisplayWidth(text string) int {
	return runewidth.StringWidth(StripANSI(text))
}

// Colorize wraps text in a color sequence
func Colorize(color, text string) string {
	return color + text + ColorReset
}

// FormatHeaderTitle formats main header titles (Magenta + Bold)
func FormatHeaderTitle(title string) string {
	return fmt.Sprintf("%s%s%s%s", ColorBold, ColorMagenta, title, ColorReset)
}

// FormatPanelTitle formats panel titles (Cyan + Bold)
func FormatPanelTitle(title string) string {
	return fmt.Sprintf("%s%s%s%s", ColorBold, ColorCyan, title, ColorReset)
}

// FormatPlaceholder formats "no data" text (Dim)
func FormatPlaceholder(text string) string {
	return ColorDim + text + ColorReset
}

// StripANSI removes CSI escape sequences
func StripANSI(s string) string {
	if !strings.Contains(s, "\033[") {
		return s
	}
	var b strings.Builder
	inEsc := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case inEsc:
			if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
				inEsc = false
			}
		case c == '\033' && i+1 < len(s) && s[i+1] == '[':
			inEsc = true
			i++
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// PadRight pads s with spaces to the given display width, truncating when longer
func PadRight(s string, width int) string {
	w := GetDisplayWidth(s)
	if w > width {
		return runewidth.Truncate(StripANSI(s), width, "…")
	}
	return s + strings.Repeat(" ", width-w)
}
