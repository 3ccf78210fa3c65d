package ui

import "postwizard/internal/campaign"

// templateSavedMsg carries the backend's answer to a template save.
type templateSavedMsg struct {
	result campaign.SaveResult
}

// templateSaveFailedMsg carries a failed save attempt.
type templateSaveFailedMsg struct {
	err error
}

// backToTemplateMsg is sent when the user wants to edit the saved template.
type backToTemplateMsg struct{}

// dismissModalMsg closes the topmost overlay.
type dismissModalMsg struct{}
