package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestPalette(t *testing.T) {
	t.Run("Header frames the title", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Styles.Header(&buf, "All music"); err != nil {
			t.Fatalf("Header failed: %v", err)
		}

		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		if len(lines) != 3 {
			t.Fatalf("expected 3 lines, got %d: %q", len(lines), buf.String())
		}
		if !strings.Contains(lines[1], "All music") {
			t.Errorf("expected title on middle line, got %q", lines[1])
		}
		if lines[0] != lines[2] || !strings.HasPrefix(lines[0], "═") {
			t.Errorf("expected matching rules, got %q and %q", lines[0], lines[2])
		}
	})

	t.Run("Summary", func(t *testing.T) {
		if got := Styles.Summary(3, 0); !strings.Contains(got, "3 succeeded") || strings.Contains(got, "failed") {
			t.Errorf("unexpected summary %q", got)
		}
		if got := Styles.Summary(1, 2); !strings.Contains(got, "2 failed") {
			t.Errorf("expected failure count, got %q", got)
		}
	})

	t.Run("renders text", func(t *testing.T) {
		for _, render := range []func(string) string{Styles.Title, Styles.OK, Styles.Err, Styles.Warn, Styles.Help} {
			if got := render("text"); !strings.Contains(got, "text") {
				t.Errorf("expected rendered text to contain input, got %q", got)
			}
		}
	})
}
