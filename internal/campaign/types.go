package campaign

// Template is an email template as persisted by the backend.
type Template struct {
	Subject string   `json:"subject" yaml:"subject"`
	Body    string   `json:"body" yaml:"body"`
	ReplyTo *string  `json:"reply_to" yaml:"reply_to,omitempty"`
	Params  []string `json:"params" yaml:"params"`
}

// SaveResult is the backend's answer to a template save.
type SaveResult struct {
	Template      Template `json:"template"`
	NumRecipients int      `json:"num_recipients"`
}

// saveTemplateRequest is the PUT body for the template endpoint.
type saveTemplateRequest struct {
	Subject string  `json:"subject"`
	Body    string  `json:"body"`
	ReplyTo *string `json:"reply_to"`
}
