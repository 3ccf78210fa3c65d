package message

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLineBreaks(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"no markers", "Dear {{ name }}", "Dear {{ name }}"},
		{"plain", "a<br>b", "a\nb"},
		{"self closing", "a<br/>b", "a\nb"},
		{"spaced self closing", "a<br />b", "a\nb"},
		{"many spaces and tabs", "a<br \t  />b", "a\nb"},
		{"upper case", "a<BR>b<Br/>c<bR />d", "a\nb\nc\nd"},
		{"adjacent", "<br><br>", "\n\n"},
		{"existing newlines kept", "a\n<br>\nb", "a\n\n\nb"},
		{"not a break tag", "<b>bold</b> <brand>", "<b>bold</b> <brand>"},
		{"unterminated", "a<br", "a<br"},
		{"slash then space", "a<br/ >b", "a<br/ >b"},
		{"double slash", "a<br//>b", "a<br//>b"},
		{"nested angle", "<<br>>", "<\n>"},
		{"newline is not marker whitespace", "<br\n>", "<br\n>"},
		{"leaves a would-be marker behind", "<br <br>>", "<br \n>"},
		{"multibyte text", "héllo<br>wörld", "héllo\nwörld"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeLineBreaks(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, NormalizeLineBreaks(got), "second pass must be a no-op")
		})
	}
}

func TestNormalizeLineBreaks_AllVariants(t *testing.T) {
	var variants []string
	for _, tag := range []string{"br", "BR", "Br", "bR"} {
		for _, space := range []string{"", " ", "  ", "\t", " \t "} {
			for _, slash := range []string{"", "/"} {
				variants = append(variants, "<"+tag+space+slash+">")
			}
		}
	}

	in := "start"
	for _, v := range variants {
		in += v + "x"
	}
	got := NormalizeLineBreaks(in)

	assert.Equal(t, len(variants), strings.Count(got, "\n"))
	assert.NotContains(t, strings.ToLower(got), "<br")
	assert.Equal(t, got, NormalizeLineBreaks(got))
}
