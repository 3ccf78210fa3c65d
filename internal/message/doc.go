// Package message holds the email template draft edited in the campaign
// wizard: the draft fields, the line-break normalization applied before
// editing, and the placeholder and keyword copy shown for protected and
// regular campaigns.
package message
