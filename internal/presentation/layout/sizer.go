package layout

import (
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/penwyp/go-carbon-monitor/internal/util"
	"golang.org/x/term"
)

const (
	fallbackWidth  = 100
	fallbackHeight = 40
	maxWidth       = 160
	minWidth       = 40

	// GridMinWidth is the narrowest terminal the two-column grid is used on
	GridMinWidth = 100
)

// Sizer holds the usable drawing area of the terminal
type Sizer struct {
	Width  int
	Height int
}

// NewSizer creates a Sizer for a terminal of the given size. Widths above
// the cap are clamped; nothing is widened.
func NewSizer(width, height int) *Sizer {
	if width > maxWidth {
		width = maxWidth
	}
	return &Sizer{Width: width, Height: height}
}

// DetectSizer measures stdout, falling back to a fixed size when stdout is
// not a terminal.
func DetectSizer() *Sizer {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < minWidth {
		width, height = fallbackWidth, fallbackHeight
	}

	sizer := NewSizer(width-1, height) // leave the last column free to avoid wrapping
	util.LogDebugf("Detected terminal %dx%d, drawing %dx%d", width, height, sizer.Width, sizer.Height)
	return sizer
}

// BodyLines returns the rows left between header and footer
func (s *Sizer) BodyLines(headerLines, footerLines int) int {
	return max(s.Height-headerLines-footerLines, 0)
}

// ColumnWidths splits the width into two columns separated by gap cells
func (s *Sizer) ColumnWidths(gap int) (int, int) {
	left := (s.Width - gap) / 2
	return left, s.Width - gap - left
}

// UseGrid reports whether the two-column grid fits
func (s *Sizer) UseGrid() bool {
	return s.Width >= GridMinWidth
}

// displayWidth calculates the actual display width of a string containing emojis and Unicode characters
func (s *Sizer) displayWidth(text string) int {
	return runewidth.StringWidth(util.StripANSI(text))
}

// PadString pads a string to a specific display width, handling emojis correctly
func (s *Sizer) PadString(text string, width int, leftAlign bool) string {
	actualWidth := s.displayWidth(text)
	if actualWidth >= width {
		return text
	}

	padding := strings.Repeat(" ", width-actualWidth)
	if leftAlign {
		return text + padding
	}
	return padding + text
}

// CenterString centers text within width
func (s *Sizer) CenterString(text string, width int) string {
	actualWidth := s.displayWidth(text)
	if actualWidth >= width {
		return text
	}
	left := (width - actualWidth) / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", width-actualWidth-left)
}
