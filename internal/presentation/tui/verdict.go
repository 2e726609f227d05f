package tui

import (
	"github.com/muesli/termenv"
)

const (
	colorValid   = "#22c55e"
	colorInvalid = "#ef4444"
	colorMuted   = "#9ca3af"
)

// Painter colors command output. A termenv.Ascii profile leaves text unstyled.
type Painter struct {
	profile termenv.Profile
}

// NewPainter returns a painter for the given color profile.
func NewPainter(profile termenv.Profile) Painter {
	return Painter{profile: profile}
}

// Verdict renders the result of a validity check.
func (p Painter) Verdict(ok bool) string {
	if ok {
		return p.paint("valid", colorValid)
	}
	return p.paint("invalid", colorInvalid)
}

// Error renders an error line.
func (p Painter) Error(msg string) string {
	return p.paint(msg, colorInvalid)
}

// Muted renders secondary information.
func (p Painter) Muted(msg string) string {
	return p.paint(msg, colorMuted)
}

func (p Painter) paint(s, color string) string {
	return p.profile.String(s).Foreground(p.profile.Color(color)).String()
}
