package e2e

import (
	"regexp"
	"strings"
)

var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]`)

// Screen is a virtual terminal that replays the cursor and erase sequences
// the dashboard emits, so a test can assert on what a user would see after
// several redraws rather than on the raw byte stream.
type Screen struct {
	rows, cols int
	cells      [][]rune
	x, y       int
	alternate  bool
}

// NewScreen creates a blank screen of the given size
func NewScreen(rows, cols int) *Screen {
	s := &Screen{rows: rows, cols: cols}
	s.cells = make([][]rune, rows)
	for i := range s.cells {
		s.cells[i] = blankRow(cols)
	}
	return s
}

func blankRow(cols int) []rune {
	row := make([]rune, cols)
	for j := range row {
		row[j] = ' '
	}
	return row
}

// StripANSI removes CSI escape sequences from s
func StripANSI(s string) string {
	return ansiEscape.ReplaceAllString(s, "")
}

// ParseScreen replays output onto a fresh screen of the given size
func ParseScreen(output string, rows, cols int) *Screen {
	s := NewScreen(rows, cols)
	s.Write(output)
	return s
}

// Write replays more output onto the screen.
func (s *Screen) Write(output string) {
	runes := []rune(output)
	for i := 0; i < len(runes); {
		switch ch := runes[i]; {
		case ch == '\x1b' && i+1 < len(runes) && runes[i+1] == '[':
			i = s.csi(runes, i+2)
		case ch == '\r':
			s.x = 0
			i++
		case ch == '\n':
			s.lineFeed()
			i++
		default:
			s.put(ch)
			i++
		}
	}
}

// csi consumes one control sequence starting after "ESC [" and returns the
// index following its final byte.
func (s *Screen) csi(runes []rune, i int) int {
	private := false
	if i < len(runes) && runes[i] == '?' {
		private = true
		i++
	}
	var params []int
	current, seen := 0, false
	for ; i < len(runes); i++ {
		ch := runes[i]
		switch {
		case ch >= '0' && ch <= '9':
			current = current*10 + int(ch-'0')
			seen = true
		case ch == ';':
			params = append(params, current)
			current, seen = 0, false
		default:
			if seen {
				params = append(params, current)
			}
			if private {
				s.mode(ch, params)
			} else {
				s.command(ch, params)
			}
			return i + 1
		}
	}
	return i
}

func param(params []int, idx, def int) int {
	if idx < len(params) && params[idx] > 0 {
		return params[idx]
	}
	return def
}

func (s *Screen) mode(cmd rune, params []int) {
	if len(params) == 0 || params[0] != 1049 {
		return
	}
	switch cmd {
	case 'h':
		s.alternate = true
		s.clear()
	case 'l':
		s.alternate = false
	}
}

func (s *Screen) command(cmd rune, params []int) {
	switch cmd {
	case 'H', 'f':
		s.y = min(param(params, 0, 1), s.rows) - 1
		s.x = min(param(params, 1, 1), s.cols) - 1
	case 'J':
		mode := 0
		if len(params) > 0 {
			mode = params[0]
		}
		switch mode {
		case 0:
			s.eraseLine(s.x, s.cols)
			for i := s.y + 1; i < s.rows; i++ {
				s.cells[i] = blankRow(s.cols)
			}
		case 2, 3:
			s.clear()
		}
	case 'K':
		mode := 0
		if len(params) > 0 {
			mode = params[0]
		}
		switch mode {
		case 0:
			s.eraseLine(s.x, s.cols)
		case 1:
			s.eraseLine(0, s.x+1)
		case 2:
			s.eraseLine(0, s.cols)
		}
	case 'A':
		s.y = max(0, s.y-param(params, 0, 1))
	case 'B':
		s.y = min(s.rows-1, s.y+param(params, 0, 1))
	case 'C':
		s.x = min(s.cols-1, s.x+param(params, 0, 1))
	case 'D':
		s.x = max(0, s.x-param(params, 0, 1))
	}
	// SGR and anything else leave the grid untouched.
}

func (s *Screen) put(ch rune) {
	if s.x >= s.cols {
		s.lineFeed()
	}
	s.cells[s.y][s.x] = ch
	s.x++
}

func (s *Screen) lineFeed() {
	s.x = 0
	if s.y < s.rows-1 {
		s.y++
		return
	}
	copy(s.cells, s.cells[1:])
	s.cells[s.rows-1] = blankRow(s.cols)
}

func (s *Screen) eraseLine(from, to int) {
	for j := max(from, 0); j < min(to, s.cols); j++ {
		s.cells[s.y][j] = ' '
	}
}

func (s *Screen) clear() {
	for i := range s.cells {
		s.cells[i] = blankRow(s.cols)
	}
}

// Alternate reports whether the alternate screen buffer is active.
func (s *Screen) Alternate() bool {
	return s.alternate
}

// Lines returns every row with trailing blanks trimmed.
func (s *Screen) Lines() []string {
	lines := make([]string, s.rows)
	for i, row := range s.cells {
		lines[i] = strings.TrimRight(string(row), " ")
	}
	return lines
}

// Render returns the screen content as a string
func (s *Screen) Render() string {
	return strings.TrimRight(strings.Join(s.Lines(), "\n"), "\n")
}

// Line returns row i, or "" when out of range
func (s *Screen) Line(i int) string {
	if i < 0 || i >= s.rows {
		return ""
	}
	return strings.TrimRight(string(s.cells[i]), " ")
}

// ContainsText checks if the screen contains specific text
func (s *Screen) ContainsText(text string) bool {
	return strings.Contains(s.Render(), text)
}
