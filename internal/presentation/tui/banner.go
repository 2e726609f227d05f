package tui

import (
	"strings"

	"github.com/muesli/termenv"
)

var bannerLines = []struct{ text, color string }{
	{"  _               _      __ ", "#34d399"},
	{" | |_ _  _ _ __  ___ __| |___ / _|", "#2dd4bf"},
	{" |  _| || | '_ \\/ -_) _` / -_)  _|", "#22d3ee"},
	{"  \\__|\\_, | .__/\\___\\__,_\\___|_|  ", "#38bdf8"},
	{"      |__/|_|", "#60a5fa"},
}

// Banner returns the typedef ASCII art banner colored for profile.
func Banner(profile termenv.Profile) string {
	var b strings.Builder
	b.WriteString("\n")
	for _, l := range bannerLines {
		b.WriteString(profile.String(l.text).Foreground(profile.Color(l.color)).String())
		b.WriteString("\n")
	}
	return b.String()
}
