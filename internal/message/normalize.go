package message

import "strings"

// NormalizeLineBreaks converts every literal HTML line-break marker in s to a
// single "\n". A marker is "<", then "br" in any letter case, then any run of
// spaces or tabs, then an optional "/", then ">". Everything else is copied
// through unchanged.
//
// Newlines never count as marker whitespace: "<br <br>>" becomes "<br \n>",
// which must not turn into a marker on a second pass.
func NormalizeLineBreaks(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] == '<' {
			if n := matchBreak(s[i:]); n > 0 {
				b.WriteByte('\n')
				i += n
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// matchBreak returns the byte length of the marker at the start of s, or 0.
func matchBreak(s string) int {
	if len(s) < 4 || s[0] != '<' || lower(s[1]) != 'b' || lower(s[2]) != 'r' {
		return 0
	}
	i := 3
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	if i < len(s) && s[i] == '/' {
		i++
	}
	if i < len(s) && s[i] == '>' {
		return i + 1
	}
	return 0
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
