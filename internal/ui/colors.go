package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles is the palette used by CLI output.
var Styles = NewPalette("#7D56F4", "#04B575", "#FF0000", "#FFA500", "#626262")

// struct Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	title lipgloss.Style
	ok    lipgloss.Style
	err   lipgloss.Style
	warn  lipgloss.Style
	help  lipgloss.Style
}

func NewPalette(t, s, e, w, h string) *Palette {
	return &Palette{
		title: NewBold(t),
		ok:    NewBold(s),
		err:   NewBold(e),
		warn:  NewStyle(w),
		help:  NewEm(h),
	}
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

func NewEm(fg string) lipgloss.Style {
	return NewStyle(fg).Italic(true)
}

func (p *Palette) Title(s string) string { return p.title.Render(s) }
func (p *Palette) OK(s string) string    { return p.ok.Render(s) }
func (p *Palette) Err(s string) string   { return p.err.Render(s) }
func (p *Palette) Warn(s string) string  { return p.warn.Render(s) }
func (p *Palette) Help(s string) string  { return p.help.Render(s) }

// Header writes title framed by rules as wide as the title.
func (p *Palette) Header(w io.Writer, title string) error {
	rule := strings.Repeat("═", max(lipgloss.Width(title), 39))
	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n", rule, p.Title(title), rule)
	return err
}

// Summary formats a batch outcome, coloring the failure count only when non-zero.
func (p *Palette) Summary(succeeded, failed int) string {
	line := p.OK(fmt.Sprintf("✓ %d succeeded", succeeded))
	if failed > 0 {
		line += ", " + p.Err(fmt.Sprintf("✗ %d failed", failed))
	}
	return line
}
