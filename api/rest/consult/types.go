package consult

import (
	"time"

	"codeberg.org/trigonal/backend/trigonal/briefs"
)

const (
	// upper bound for delivering the architect notification
	notifyTimeout = 15 * time.Second

	// value browsers submit for a checked checkbox
	checkboxOn = "on"
)

const (
	messageInvalid = "Please fix the errors below."
	messageCreated = "An architect will review your technical brief within 24 hours."
)

// receives brief events for the live feed
type BriefPublisher interface {
	PublishBrief(eventType string, brief *briefs.Brief)
}

// consult form body, accepted as JSON or as a form post
type SubmitRequest struct {
	FullName           string   `json:"fullName" form:"fullName" binding:"required,min=2"`
	Organization       string   `json:"organization" form:"organization" binding:"required,min=2"`
	Email              string   `json:"email" form:"email" binding:"required,email"`
	ProjectLocation    string   `json:"projectLocation" form:"projectLocation" binding:"required,oneof=Nepal India 'Middle East' Africa Other"`
	PrimaryInterest    string   `json:"primaryInterest" form:"primaryInterest" binding:"required,oneof='Interoperability Architecture' 'Enterprise EMR Deployment' 'AI & Diagnostic Intelligence'"`
	ExistingSystems    []string `json:"existingSystems" form:"existingSystems"`
	NepalDirective2081 bool     `json:"nepalDirective2081" form:"-"`
	HL7FHIR            bool     `json:"hl7Fhir" form:"-"`
	TechnicalBrief     string   `json:"technicalBrief" form:"technicalBrief" binding:"max=1000"`
}

type SubmitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
}

// per-field messages for a rejected submission
type ValidationResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

type fieldRule struct {
	key     string
	message string
}

// struct field -> json key and the message shown next to the form input
var fieldRules = map[string]fieldRule{
	"FullName":        {key: "fullName", message: "Full name is required"},
	"Organization":    {key: "organization", message: "Organization name is required"},
	"Email":           {key: "email", message: "Valid email is required"},
	"ProjectLocation": {key: "projectLocation", message: "Invalid option"},
	"PrimaryInterest": {key: "primaryInterest", message: "Invalid option"},
	"TechnicalBrief":  {key: "technicalBrief", message: "Technical brief must be 1000 characters or less"},
}
