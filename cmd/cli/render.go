package main

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const wordWrap = 100

// newRenderer returns a markdown renderer for assistant replies. Plain mode,
// or a terminal glamour cannot style, prints text unchanged.
func newRenderer(plain bool) func(string) string {
	identity := func(s string) string { return s }
	if plain {
		return identity
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wordWrap),
	)
	if err != nil {
		return identity
	}
	return func(markdown string) string {
		out, err := r.Render(markdown)
		if err != nil {
			return markdown
		}
		return strings.TrimRight(out, "\n")
	}
}
