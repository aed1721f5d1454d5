package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{`                               _ _       _    `, "#818cf8"},
	{` _ __   __ _ _ __ __ _ _ __ ___ | (_)_ __ | | __`, "#a78bfa"},
	{`| '_ \ / _' | '__/ _' | '_ ' _ \| | | '_ \| |/ /`, "#c084fc"},
	{`| |_) | (_| | | | (_| | | | | | | | | | | |   < `, "#e879f9"},
	{`| .__/ \__,_|_|  \__,_|_| |_| |_|_|_|_| |_|_|\_\`, "#f472b6"},
	{`|_|                                             `, "#fb7185"},
}

// PrintBanner writes the paramlink banner to w in the terminal's color profile.
func PrintBanner(w io.Writer) {
	p := termenv.NewOutput(w).Profile
	fmt.Fprintln(w)
	for _, l := range bannerLines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
