package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette - the defaults reproduce the classic green path, yellow line tag.
var (
	ColorPath = lipgloss.Color("2") // Green
	ColorLine = lipgloss.Color("3") // Yellow
)

// Palette holds the colors used for the decorated segments of a match line.
type Palette struct {
	Path lipgloss.Color
	Line lipgloss.Color
}

// DefaultPalette returns the built-in palette.
func DefaultPalette() Palette {
	return Palette{
		Path: ColorPath,
		Line: ColorLine,
	}
}

// WithOverrides returns a copy of p where every non-empty override replaces
// the corresponding color. Overrides are validated with ParseColor.
func (p Palette) WithOverrides(path, line string) (Palette, error) {
	if path != "" {
		c, err := ParseColor(path)
		if err != nil {
			return p, fmt.Errorf("palette.path: %w", err)
		}
		p.Path = c
	}
	if line != "" {
		c, err := ParseColor(line)
		if err != nil {
			return p, fmt.Errorf("palette.line: %w", err)
		}
		p.Line = c
	}
	return p, nil
}

// ParseColor accepts an ANSI color index (0-255) or a hex color (#rgb or #rrggbb).
func ParseColor(s string) (lipgloss.Color, error) {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) != 3 && len(hex) != 6 {
			return "", fmt.Errorf("invalid hex color %q", s)
		}
		if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
			return "", fmt.Errorf("invalid hex color %q", s)
		}
		return lipgloss.Color(s), nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 255 {
		return "", fmt.Errorf("invalid color %q: want 0-255 or #rrggbb", s)
	}
	return lipgloss.Color(strconv.Itoa(n)), nil
}
