package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette()
	assert.Equal(t, lipgloss.Color("2"), p.Path)
	assert.Equal(t, lipgloss.Color("3"), p.Line)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    lipgloss.Color
		wantErr bool
	}{
		{"2", "2", false},
		{" 208 ", "208", false},
		{"#0f0", "#0f0", false},
		{"#00ff00", "#00ff00", false},
		{"256", "", true},
		{"-1", "", true},
		{"green", "", true},
		{"#00ff0", "", true},
		{"#gggggg", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPalette_WithOverrides(t *testing.T) {
	p, err := DefaultPalette().WithOverrides("", "#ff8800")
	require.NoError(t, err)
	assert.Equal(t, ColorPath, p.Path)
	assert.Equal(t, lipgloss.Color("#ff8800"), p.Line)

	_, err = DefaultPalette().WithOverrides("blue", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "palette.path")
}
