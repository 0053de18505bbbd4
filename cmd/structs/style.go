package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

const (
	colorTeal   = "#3ddbd9"
	colorBlue   = "#4589ff"
	colorOrange = "#ff832b"
	colorRed    = "#da1e28"
	colorGray   = "#8d8d8d"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorBlue))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(colorGray)).Width(8)
)

func heading(w io.Writer, s string) {
	fmt.Fprintln(w, headingStyle.Render(s))
}

func row(w io.Writer, label string, v any) {
	fmt.Fprintln(w, labelStyle.Render(label)+fmt.Sprint(v))
}

// newLogger writes colored console events to w. Debug events are only shown
// when verbose is set.
func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	lvl := zerolog.InfoLevel
	if verbose {
		lvl = zerolog.DebugLevel
	}
	cw := zerolog.ConsoleWriter{
		Out:          w,
		PartsExclude: []string{zerolog.TimestampFieldName},

		FormatLevel: func(i any) string {
			l := strings.ToLower(fmt.Sprint(i))
			c := colorGray
			switch l {
			case "debug":
				c = colorTeal
			case "warn":
				c = colorOrange
			case "error":
				c = colorRed
			}
			if len(l) > 3 {
				l = l[:3]
			}
			return lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render(strings.ToUpper(l))
		},
	}
	return zerolog.New(cw).Level(lvl)
}
