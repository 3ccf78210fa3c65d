package ui

import (
	"context"

	"postwizard/internal/route"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/logr"
)

// WizardStep identifies the step the wizard is showing.
type WizardStep int

const (
	StepTemplate WizardStep = iota
	StepReview
)

func (s WizardStep) String() string {
	switch s {
	case StepTemplate:
		return "Template"
	case StepReview:
		return "Review"
	default:
		return "Unknown"
	}
}

// WizardProps seed the wizard from the route and the campaign's current
// template.
type WizardProps struct {
	Params  route.Params
	Protect bool
	Subject string
	Body    string
	ReplyTo *string
	Saver   TemplateSaver
	Log     logr.Logger
}

// Wizard is the root model. It owns the steps and moves between them.
type Wizard struct {
	Step     WizardStep
	Template *TemplateStep
	Review   *ReviewStep

	props WizardProps
	ctx   context.Context
	log   logr.Logger
	saved *TemplateChanges
	size  *tea.WindowSizeMsg

	Overlays OverlayStack
}

// Ensure appModelAdapter can be used as tea.Model.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps Wizard to implement tea.Model.
type appModelAdapter struct {
	*Wizard
}

// NewWizard creates the wizard on its first step.
func NewWizard(ctx context.Context, props WizardProps) *Wizard {
	log := props.Log
	if log.GetSink() == nil {
		log = logr.Discard()
	}
	props.Log = log
	w := &Wizard{Step: StepTemplate, props: props, ctx: ctx, log: log.WithName("wizard")}
	w.Template = w.newTemplateStep()
	return w
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (w *Wizard) AsTeaModel() tea.Model {
	return &appModelAdapter{Wizard: w}
}

// Result returns the last saved template, if any save succeeded.
func (w *Wizard) Result() (TemplateChanges, bool) {
	if w.saved == nil {
		return TemplateChanges{}, false
	}
	return *w.saved, true
}

func (w *Wizard) newTemplateStep() *TemplateStep {
	return NewTemplateStep(w.ctx, TemplateStepProps{
		Subject: w.props.Subject,
		Body:    w.props.Body,
		ReplyTo: w.props.ReplyTo,
		Protect: w.props.Protect,
		Params:  w.props.Params,
		Saver:   w.props.Saver,
		OnNext:  w.onTemplateNext,
		Log:     w.props.Log,
	})
}

// onTemplateNext records the saved template. The next step is seeded from
// the backend's values, as is the template step if the user comes back.
func (w *Wizard) onTemplateNext(changes TemplateChanges, next ...bool) {
	w.saved = &changes
	w.props.Subject = changes.Subject
	w.props.Body = changes.Body
	w.props.ReplyTo = changes.ReplyTo
	w.log.Info("template saved", "params", changes.Params, "recipients", changes.NumRecipients)

	if len(next) > 0 && !next[0] {
		return
	}
	w.Step = StepReview
	w.Review = NewReviewStep(changes)
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.currentView().Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.size = &msg
	case tea.KeyMsg:
		if a.Overlays.Len() > 0 {
			return a.updateOverlay(msg)
		}
		if msg.String() == "ctrl+c" {
			return a.quit()
		}
	case dismissModalMsg:
		a.Overlays.Pop()
		return a, nil
	case backToTemplateMsg:
		a.Step = StepTemplate
		a.Template = a.newTemplateStep()
		return a, a.enterStep()
	}

	before := a.Step
	v, cmd := a.currentView().Update(msg)
	a.setCurrentView(v)
	if a.Step != before {
		return a, tea.Batch(cmd, a.enterStep())
	}
	return a, cmd
}

// updateOverlay routes keys to the topmost modal. ctrl+c quits regardless.
func (a *appModelAdapter) updateOverlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}
	if top, ok := a.Overlays.Peek(); ok && top.IsDismissKey(msg.String()) {
		a.Overlays.Pop()
		return a, nil
	}
	cmd, _ := a.Overlays.UpdateTop(msg)
	return a, cmd
}

// quit asks for confirmation when the template step has unsaved edits.
func (a *appModelAdapter) quit() (tea.Model, tea.Cmd) {
	if a.Step == StepTemplate && a.Template.Dirty() && !a.Template.Saving() {
		a.log.V(1).Info("confirm discard")
		modal := NewDiscardChangesModal(a.Template)
		a.Overlays.Push(Overlay{View: modal, Dismiss: "esc"})
		return a, modal.Init()
	}
	return a, tea.Quit
}

// enterStep initializes the current step and replays the last window size.
func (a *appModelAdapter) enterStep() tea.Cmd {
	v := a.currentView()
	if a.size != nil {
		v, _ = v.Update(*a.size)
		a.setCurrentView(v)
	}
	return v.Init()
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	base := a.currentView().View()
	if top, ok := a.Overlays.Peek(); ok {
		base += "\n" + top.View.View()
	}
	return base
}

func (a *appModelAdapter) currentView() View {
	if a.Step == StepReview && a.Review != nil {
		return a.Review
	}
	return a.Template
}

func (a *appModelAdapter) setCurrentView(v View) {
	switch v := v.(type) {
	case *TemplateStep:
		a.Template = v
	case *ReviewStep:
		a.Review = v
	}
}
