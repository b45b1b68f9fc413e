package notify

import (
	"context"

	"codeberg.org/trigonal/backend/internal/logger"
	"codeberg.org/trigonal/backend/trigonal/briefs"
)

// LogNotifier records submissions in the service log only
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (LogNotifier) NotifyBriefCreated(_ context.Context, brief *briefs.Brief) error {
	logger.Info("consult form submission",
		"brief_id", brief.ID,
		"organization", brief.Organization,
		"full_name", brief.FullName,
		"email", brief.Email,
		"project_location", brief.ProjectLocation,
		"primary_interest", brief.PrimaryInterest,
		"existing_systems", brief.ExistingSystems,
		"nepal_directive_2081", brief.NepalDirective2081,
		"hl7_fhir", brief.HL7FHIR,
		"technical_brief_chars", len([]rune(brief.TechnicalBrief)),
	)

	return nil
}

// picks the Resend notifier when an API key is configured
func New(cfg ResendConfig) Notifier {
	if cfg.APIKey == "" {
		return NewLogNotifier()
	}

	return NewResendNotifier(cfg)
}
