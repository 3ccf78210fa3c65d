package ui

import (
	"context"
	"errors"
	"strings"

	"postwizard/internal/campaign"
	"postwizard/internal/message"
	"postwizard/internal/route"
	"postwizard/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/logr"
)

// Controls of the template step, in tab order.
const (
	FieldSubject FieldID = "subject"
	FieldBody    FieldID = "body"
	FieldReplyTo FieldID = "reply-to"
	FieldNext    FieldID = "next"
)

// InvalidCampaignIDMessage is shown when the route carries no usable campaign id.
const InvalidCampaignIDMessage = "Invalid campaign id"

var errNoSaver = errors.New("saving templates is not available")

const defaultFieldWidth = 60

// TemplateSaver persists a campaign's email template.
type TemplateSaver interface {
	SaveTemplate(ctx context.Context, campaignID int, subject, body string, replyTo *string) (campaign.SaveResult, error)
}

// TemplateChanges is what the template step hands to the wizard after a
// successful save. All values come from the backend's response.
type TemplateChanges struct {
	Subject       string
	Body          string
	ReplyTo       *string
	Params        []string
	NumRecipients int
}

// NextFunc receives saved changes. next asks the wizard to move on (true) or
// to stay for review (false); when omitted the wizard decides.
type NextFunc func(changes TemplateChanges, next ...bool)

// TemplateStepProps are the values a TemplateStep is opened with.
type TemplateStepProps struct {
	Subject string
	Body    string // may contain <br> markers; normalized on load
	ReplyTo *string
	Protect bool

	Params route.Params // route parameters; "id" is the campaign id
	Saver  TemplateSaver
	OnNext NextFunc
	Log    logr.Logger
}

// TemplateStep is the "Create email message" wizard step.
type TemplateStep struct {
	subject textinput.Model
	body    textarea.Model
	replyTo textinput.Model
	focus   *FocusRing
	keys    templateKeyMap
	text    message.Copy
	initial message.Draft

	params route.Params
	saver  TemplateSaver
	onNext NextFunc
	log    logr.Logger
	ctx    context.Context

	errMsg string
	saving bool
	width  int
}

// Ensure TemplateStep implements View.
var _ View = (*TemplateStep)(nil)

// NewTemplateStep creates the step from props. ctx bounds save calls.
func NewTemplateStep(ctx context.Context, props TemplateStepProps) *TemplateStep {
	draft := message.NewDraft(props.Subject, props.Body, props.ReplyTo)
	text := message.CopyFor(props.Protect)

	subject := textinput.New()
	subject.Placeholder = "Enter subject"
	subject.Prompt = ""
	subject.Width = defaultFieldWidth
	subject.SetValue(draft.Subject)

	body := textarea.New()
	body.Placeholder = text.BodyPlaceholder
	body.ShowLineNumbers = false
	body.CharLimit = 0
	body.MaxHeight = 0
	body.SetWidth(defaultFieldWidth)
	body.SetHeight(8)
	body.SetValue(draft.Body)
	body.Blur()

	replyTo := textinput.New()
	replyTo.Placeholder = "Enter reply-to email address"
	replyTo.Prompt = ""
	replyTo.Width = defaultFieldWidth
	replyTo.SetValue(draft.ReplyToValue())

	log := props.Log
	if log.GetSink() == nil {
		log = logr.Discard()
	}

	s := &TemplateStep{
		subject: subject,
		body:    body,
		replyTo: replyTo,
		focus:   NewFocusRing(FieldSubject, FieldBody, FieldReplyTo, FieldNext),
		keys:    newTemplateKeyMap(),
		text:    text,
		params:  props.Params,
		saver:   props.Saver,
		onNext:  props.OnNext,
		log:     log.WithName("template-step"),
		ctx:     ctx,
	}
	s.applyFocus()
	// The widgets clean up what they are given (textarea expands tabs), so
	// the baseline for Dirty is read back from them.
	s.initial = s.Draft()
	return s
}

// Init implements View.
func (s *TemplateStep) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (s *TemplateStep) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.resize(msg.Width)
		return s, nil
	case templateSavedMsg:
		s.saving = false
		s.advance(msg.result)
		return s, nil
	case templateSaveFailedMsg:
		s.saving = false
		s.errMsg = msg.err.Error()
		s.log.Info("save failed", "error", s.errMsg)
		return s, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.keys.NextField):
			s.focus.Next()
			return s, s.applyFocus()
		case key.Matches(msg, s.keys.PrevField):
			s.focus.Prev()
			return s, s.applyFocus()
		case key.Matches(msg, s.keys.Save):
			return s, s.Save()
		case key.Matches(msg, s.keys.Submit):
			switch s.focus.Current {
			case FieldNext:
				return s, s.Save()
			case FieldSubject, FieldReplyTo:
				s.focus.Next()
				return s, s.applyFocus()
			}
		}
	}
	return s, s.updateFocused(msg)
}

func (s *TemplateStep) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch s.focus.Current {
	case FieldSubject:
		s.subject, cmd = s.subject.Update(msg)
	case FieldBody:
		s.body, cmd = s.body.Update(msg)
	case FieldReplyTo:
		s.replyTo, cmd = s.replyTo.Update(msg)
	}
	return cmd
}

// applyFocus focuses the control the ring points at and blurs the rest.
func (s *TemplateStep) applyFocus() tea.Cmd {
	s.subject.Blur()
	s.body.Blur()
	s.replyTo.Blur()
	switch s.focus.Current {
	case FieldSubject:
		return s.subject.Focus()
	case FieldBody:
		return s.body.Focus()
	case FieldReplyTo:
		return s.replyTo.Focus()
	}
	return nil
}

func (s *TemplateStep) resize(width int) {
	s.width = width
	w := width - 6 // border and padding of the field frame
	if w < 20 {
		w = 20
	}
	s.subject.Width = w
	s.replyTo.Width = w
	s.body.SetWidth(w)
}

// SetSubject replaces the subject text.
func (s *TemplateStep) SetSubject(v string) { s.subject.SetValue(v) }

// SetBody replaces the body text as typed; no normalization is applied.
func (s *TemplateStep) SetBody(v string) { s.body.SetValue(v) }

// SetReplyTo replaces the reply-to address. "" clears it.
func (s *TemplateStep) SetReplyTo(v string) { s.replyTo.SetValue(v) }

// Draft returns the current field values.
func (s *TemplateStep) Draft() message.Draft {
	return message.Draft{
		Subject: s.subject.Value(),
		Body:    s.body.Value(),
		ReplyTo: message.OptionalString(s.replyTo.Value()),
	}
}

// CanAdvance reports whether the Next button is enabled.
func (s *TemplateStep) CanAdvance() bool {
	return s.Draft().Complete()
}

// Dirty reports whether any field differs from the values the step opened with.
func (s *TemplateStep) Dirty() bool {
	d := s.Draft()
	return d.Subject != s.initial.Subject ||
		d.Body != s.initial.Body ||
		d.ReplyToValue() != s.initial.ReplyToValue()
}

// Err returns the message in the error block, or "".
func (s *TemplateStep) Err() string { return s.errMsg }

// Saving reports whether a save is outstanding.
func (s *TemplateStep) Saving() bool { return s.saving }

// Focused returns the control that has focus.
func (s *TemplateStep) Focused() FieldID { return s.focus.Current }

// Save starts a save-and-advance attempt. It does nothing while Next is
// disabled or another save is outstanding. A missing or malformed campaign id
// fails immediately without calling the saver.
func (s *TemplateStep) Save() tea.Cmd {
	if s.saving || !s.CanAdvance() {
		return nil
	}
	s.errMsg = ""

	id, ok := s.params.Int("id")
	if !ok {
		s.errMsg = InvalidCampaignIDMessage
		s.log.Info("save rejected", "error", s.errMsg, "id", s.params.Get("id"))
		return nil
	}

	s.saving = true
	s.log.V(1).Info("saving template", "campaign", id)
	return saveTemplateCmd(s.ctx, s.saver, id, s.Draft())
}

func saveTemplateCmd(ctx context.Context, saver TemplateSaver, id int, d message.Draft) tea.Cmd {
	return func() tea.Msg {
		if saver == nil {
			return templateSaveFailedMsg{err: errNoSaver}
		}
		res, err := saver.SaveTemplate(ctx, id, d.Subject, d.Body, d.ReplyTo)
		if err != nil {
			return templateSaveFailedMsg{err: err}
		}
		return templateSavedMsg{result: res}
	}
}

func (s *TemplateStep) advance(res campaign.SaveResult) {
	if s.onNext == nil {
		return
	}
	s.onNext(TemplateChanges{
		Subject:       res.Template.Subject,
		Body:          res.Template.Body,
		ReplyTo:       res.Template.ReplyTo,
		Params:        res.Template.Params,
		NumRecipients: res.NumRecipients,
	})
}

// View implements View.
func (s *TemplateStep) View() string {
	var b strings.Builder

	b.WriteString(Styles.Step.Render("Step 1") + "\n")
	b.WriteString(Styles.Title.Render("Create email message") + "\n\n")

	b.WriteString(Styles.Heading.Render("Subject") + "\n")
	b.WriteString(Styles.Hint.Render("Enter subject of the email") + "\n")
	b.WriteString(s.frame(FieldSubject, s.subject.View()) + "\n\n")

	b.WriteString(Styles.Heading.Render(s.text.BodyHeading) + "\n")
	if len(s.text.Hints) > 0 {
		b.WriteString(Styles.Hint.Render("You can use the following keywords in Message A to personalise your message.") + "\n")
		for _, h := range s.text.Hints {
			b.WriteString(renderKeywordHint(h) + "\n")
		}
	}
	b.WriteString(s.frame(FieldBody, s.body.View()) + "\n\n")

	b.WriteString(Styles.Heading.Render("Replies") + " " + Styles.Optional.Render("optional") + "\n")
	b.WriteString(Styles.Hint.Render("All replies will be directed to the email address indicated below") + "\n")
	b.WriteString(s.frame(FieldReplyTo, s.replyTo.View()) + "\n\n")

	b.WriteString(s.renderNextButton() + "\n")
	if s.errMsg != "" {
		b.WriteString(Styles.Error.Render(textutil.Wrap(s.errMsg, s.width-2)) + "\n")
	}
	b.WriteString("\n" + RenderKeyHelp(s.keys))
	return b.String()
}

func (s *TemplateStep) frame(id FieldID, content string) string {
	if s.focus.Is(id) {
		return Styles.FieldFocused.Render(content)
	}
	return Styles.Field.Render(content)
}

func (s *TemplateStep) renderNextButton() string {
	switch {
	case s.saving:
		return Styles.ButtonDisabled.Render("Saving…")
	case !s.CanAdvance():
		return Styles.ButtonDisabled.Render("Next ›")
	case s.focus.Is(FieldNext):
		return Styles.ButtonFocused.Render("Next ›")
	default:
		return Styles.Button.Render("Next ›")
	}
}

func renderKeywordHint(h message.KeywordHint) string {
	marker := Styles.Optional.Render("Optional")
	if h.Required {
		marker = Styles.Required.Render("Required")
	}
	return "  • " + Styles.Keyword.Render(h.Keyword) + " - " + marker + ". " + Styles.Normal.Render(h.Description)
}
