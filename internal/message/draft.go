package message

import "strings"

// Draft is the locally edited email template.
type Draft struct {
	Subject string
	Body    string
	ReplyTo *string // nil when no reply-to address was given
}

// NewDraft builds a draft from the values a step is opened with. CRLF and
// lone CR line endings become "\n", then stored line-break markers are
// normalized so they show up as real newlines.
func NewDraft(subject, body string, replyTo *string) Draft {
	return Draft{
		Subject: subject,
		Body:    NormalizeLineBreaks(foldLineEndings(body)),
		ReplyTo: replyTo,
	}
}

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

func foldLineEndings(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	return lineEndings.Replace(s)
}

// Complete reports whether the draft can be saved. Reply-to is never required.
func (d Draft) Complete() bool {
	return d.Subject != "" && d.Body != ""
}

// ReplyToValue returns the reply-to address or "" when unset.
func (d Draft) ReplyToValue() string {
	if d.ReplyTo == nil {
		return ""
	}
	return *d.ReplyTo
}

// OptionalString returns nil for "" and a pointer to s otherwise.
func OptionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
