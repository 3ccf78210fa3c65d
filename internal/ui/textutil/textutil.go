// Package textutil provides unicode-aware text utilities for TUI rendering.
package textutil

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most maxWidth columns, ending in Ellipsis when
// anything was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(s, maxWidth, Ellipsis)
}

// Wrap breaks s into lines of at most width columns at spaces. Words longer
// than width are split. Existing newlines are kept. width <= 0 returns s.
func Wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	paragraphs := strings.Split(s, "\n")
	out := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		out = append(out, wrapLine(p, width)...)
	}
	return strings.Join(out, "\n")
}

func wrapLine(p string, width int) []string {
	words := strings.Fields(p)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	var cur strings.Builder
	curWidth := 0
	for _, w := range words {
		for VisualWidth(w) > width {
			// Flush, then hard-split the oversized word.
			if curWidth > 0 {
				lines = append(lines, cur.String())
				cur.Reset()
				curWidth = 0
			}
			head := runewidth.Truncate(w, width, "")
			if head == "" {
				// A single rune wider than width still has to go somewhere.
				_, size := utf8.DecodeRuneInString(w)
				head = w[:size]
			}
			lines = append(lines, head)
			w = w[len(head):]
		}
		ww := VisualWidth(w)
		if ww == 0 {
			continue
		}
		if curWidth > 0 && curWidth+1+ww > width {
			lines = append(lines, cur.String())
			cur.Reset()
			curWidth = 0
		}
		if curWidth > 0 {
			cur.WriteByte(' ')
			curWidth++
		}
		cur.WriteString(w)
		curWidth += ww
	}
	if curWidth > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

// Preview returns the first maxLines lines of s, each truncated to width
// columns. A final Ellipsis line marks omitted lines.
func Preview(s string, maxLines, width int) string {
	lines := strings.Split(s, "\n")
	more := false
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
		more = true
	}
	if width > 0 {
		for i, l := range lines {
			lines[i] = Truncate(l, width)
		}
	}
	if more {
		lines = append(lines, Ellipsis)
	}
	return strings.Join(lines, "\n")
}
