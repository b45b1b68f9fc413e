package notify

import (
	"context"

	"codeberg.org/trigonal/backend/trigonal/briefs"
)

// delivers new-brief notifications to the architects' inbox
type Notifier interface {
	NotifyBriefCreated(ctx context.Context, brief *briefs.Brief) error
}

// settings for the Resend e-mail API
type ResendConfig struct {
	APIKey string
	From   string
	To     string

	// defaults to the public API; overridden in tests
	BaseURL string
}

type resendEmail struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type resendResponse struct {
	ID string `json:"id"`
}
