package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDraft_NormalizesBody(t *testing.T) {
	d := NewDraft("Hi", "line one<br/>line two", nil)
	assert.Equal(t, "line one\nline two", d.Body)
	assert.Equal(t, "Hi", d.Subject)
	assert.Nil(t, d.ReplyTo)
}

func TestNewDraft_FoldsLineEndings(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"crlf", "Hello\r\nWorld", "Hello\nWorld"},
		{"lone cr", "Hello\rWorld", "Hello\nWorld"},
		{"mixed", "a\r\nb\rc\nd", "a\nb\nc\nd"},
		{"crlf then marker", "a\r\n<br>b", "a\n\nb"},
		{"no cr", "a\nb", "a\nb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewDraft("s", tt.body, nil).Body)
		})
	}
}

func TestDraft_Complete(t *testing.T) {
	reply := "r@x.com"
	tests := []struct {
		name  string
		draft Draft
		want  bool
	}{
		{"both set", Draft{Subject: "s", Body: "b"}, true},
		{"both set with reply-to", Draft{Subject: "s", Body: "b", ReplyTo: &reply}, true},
		{"no subject", Draft{Body: "b", ReplyTo: &reply}, false},
		{"no body", Draft{Subject: "s", ReplyTo: &reply}, false},
		{"empty", Draft{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.draft.Complete())
		})
	}
}

func TestOptionalString(t *testing.T) {
	assert.Nil(t, OptionalString(""))
	if got := OptionalString("a@b.c"); assert.NotNil(t, got) {
		assert.Equal(t, "a@b.c", *got)
	}
	assert.Equal(t, "", Draft{}.ReplyToValue())
}
