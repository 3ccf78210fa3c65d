package message

// Keywords the backend substitutes per recipient in protected campaigns.
const (
	KeywordProtectedLink = "{{ protectedlink }}"
	KeywordRecipient     = "{{ recipient }}"
)

const (
	protectedBodyPlaceholder = "Dear {{ recipient }}, \n\n You may access your results via this link <a href=\"{{ protectedlink }}\">{{ protectedlink }}</a> . \n\nPlease login with your birthday (DDMMYYYY) followed by the last 4 characters of your NRIC. E.g. 311290123A"
	bodyPlaceholder          = "Dear {{ name }}, your next appointment at {{ clinic }} is on {{ date }} at {{ time }}"
)

// KeywordHint describes one personalization keyword.
type KeywordHint struct {
	Keyword     string
	Required    bool
	Description string
}

// Copy is the presentation text for the body field. It is derived from the
// protect flag only and carries no state.
type Copy struct {
	BodyHeading     string
	BodyPlaceholder string
	Hints           []KeywordHint // empty unless protected
}

// CopyFor returns the body heading, placeholder and keyword hints for a
// campaign. Protected campaigns get the protected-link placeholder and both
// keyword hints; regular campaigns get a generic placeholder and no hints.
func CopyFor(protect bool) Copy {
	if !protect {
		return Copy{
			BodyHeading:     "Message",
			BodyPlaceholder: bodyPlaceholder,
		}
	}
	return Copy{
		BodyHeading:     "Message A",
		BodyPlaceholder: protectedBodyPlaceholder,
		Hints: []KeywordHint{
			{
				Keyword:     KeywordProtectedLink,
				Required:    true,
				Description: "Include this keyword in Message A template, but not in the CSV file. It will be automatically generated for password protected emails.",
			},
			{
				Keyword:     KeywordRecipient,
				Required:    false,
				Description: "This keyword will be replaced by the email address of the recipient.",
			},
		},
	}
}
