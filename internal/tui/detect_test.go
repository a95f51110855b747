package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ColorMode
		wantErr bool
	}{
		{"", ColorAuto, false},
		{"auto", ColorAuto, false},
		{"always", ColorAlways, false},
		{"never", ColorNever, false},
		{" ALWAYS ", ColorAlways, false},
		{"sometimes", "", true},
		{"yes", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColorMode(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColorMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseColorMode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorMode_AlwaysAndNever(t *testing.T) {
	var buf bytes.Buffer
	t.Setenv("NO_COLOR", "1")

	if !ColorAlways.Enabled(&buf) {
		t.Error("ColorAlways should be enabled even with NO_COLOR and a non-terminal writer")
	}
	if ColorNever.Enabled(os.Stdout) {
		t.Error("ColorNever should never be enabled")
	}
}

func TestColorMode_Auto_NO_COLOR(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	t.Setenv("TERM", "xterm-256color")

	if ColorAuto.Enabled(os.Stdout) {
		t.Error("ColorAuto should be disabled when NO_COLOR is set")
	}
}

func TestColorMode_Auto_DumbTerminal(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("TERM", "dumb")

	if ColorAuto.Enabled(os.Stdout) {
		t.Error("ColorAuto should be disabled for TERM=dumb")
	}
}

func TestColorMode_Auto_NotATerminal(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("TERM", "xterm-256color")

	var buf bytes.Buffer
	if ColorAuto.Enabled(&buf) {
		t.Error("ColorAuto should be disabled for an in-memory writer")
	}

	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if ColorAuto.Enabled(f) {
		t.Error("ColorAuto should be disabled for a regular file")
	}
}

func TestIsTerminal_NonFile(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Error("bytes.Buffer is not a terminal")
	}
}
