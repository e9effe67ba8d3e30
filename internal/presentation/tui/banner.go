package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the sbmlexport banner to w.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	lines := []struct{ text, color string }{
		{"      _                 _       ", "#34d399"},
		{"  ___| |__  _ __ ___   | |  ___ __  __ _ __   ___  _ __ | |_ ", "#2dd4bf"},
		{" / __| '_ \\| '_ ` _ \\  | | / _ \\\\ \\/ /| '_ \\ / _ \\| '__|| __|", "#22d3ee"},
		{" \\__ \\ |_) | | | | | | | ||  __/ >  < | |_) | (_) | |   | |_ ", "#38bdf8"},
		{" |___/_.__/|_| |_| |_| |_| \\___|/_/\\_\\| .__/ \\___/|_|    \\__|", "#60a5fa"},
		{"                                      |_|                    ", "#818cf8"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
