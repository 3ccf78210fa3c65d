// Package ui implements the campaign creation wizard with Bubble Tea.
//
// Core abstractions:
//   - View: a step with its own model, update and view (Elm-style)
//   - Wizard: the step orchestrator; owns campaign route params and moves
//     between steps when a step reports completion
//   - TemplateStep: composes the email subject, body and reply-to address and
//     saves them through a TemplateSaver before advancing
//   - ReviewStep: shows what the backend stored
//   - FocusRing: tab order across a step's controls
//   - OverlayStack / ConfirmModal: modals drawn above the current step
package ui
