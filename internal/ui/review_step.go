package ui

import (
	"fmt"
	"strings"

	"postwizard/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const reviewBodyLines = 6

// ReviewStep shows the template as the backend stored it.
type ReviewStep struct {
	changes TemplateChanges
	keys    reviewKeyMap
	width   int
}

// Ensure ReviewStep implements View.
var _ View = (*ReviewStep)(nil)

// NewReviewStep creates a review of saved changes.
func NewReviewStep(changes TemplateChanges) *ReviewStep {
	return &ReviewStep{changes: changes, keys: newReviewKeyMap()}
}

// Init implements View.
func (r *ReviewStep) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (r *ReviewStep) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, r.keys.Back):
			return r, func() tea.Msg { return backToTemplateMsg{} }
		case key.Matches(msg, r.keys.Finish):
			return r, tea.Quit
		}
	}
	return r, nil
}

// View implements View.
func (r *ReviewStep) View() string {
	width := r.width - 20
	if width <= 0 {
		width = 60
	}
	c := r.changes

	replyTo := "(none)"
	if c.ReplyTo != nil && *c.ReplyTo != "" {
		replyTo = *c.ReplyTo
	}
	keywords := "(none)"
	if len(c.Params) > 0 {
		keywords = strings.Join(c.Params, ", ")
	}

	rows := []string{
		Styles.Label.Render("Subject") + textutil.Truncate(c.Subject, width),
		Styles.Label.Render("Reply-to") + replyTo,
		Styles.Label.Render("Keywords") + keywords,
		Styles.Label.Render("Recipients") + fmt.Sprintf("%d", c.NumRecipients),
		"",
		Styles.Label.Render("Message"),
		Styles.Normal.Render(textutil.Preview(c.Body, reviewBodyLines, width)),
	}

	var b strings.Builder
	b.WriteString(Styles.Step.Render("Step 2") + "\n")
	b.WriteString(Styles.Title.Render("Review saved message") + "\n")
	b.WriteString(Styles.Box.Render(strings.Join(rows, "\n")) + "\n")
	b.WriteString(RenderKeyHelp(r.keys))
	return b.String()
}
