package briefs

import (
	"context"
	"time"
)

// triage state of a brief
type Status string

const (
	StatusNew       Status = "NEW"
	StatusReviewing Status = "REVIEWING"
	StatusArchived  Status = "ARCHIVED"
)

// accepted projectLocation values
var ProjectLocations = []string{"Nepal", "India", "Middle East", "Africa", "Other"}

// accepted primaryInterest values
var PrimaryInterests = []string{
	"Interoperability Architecture",
	"Enterprise EMR Deployment",
	"AI & Diagnostic Intelligence",
}

// a consultation request submitted through the consult form
type Brief struct {
	ID                 string    `json:"id"`
	FullName           string    `json:"fullName"`
	Organization       string    `json:"organization"`
	Email              string    `json:"email"`
	ProjectLocation    string    `json:"projectLocation"`
	PrimaryInterest    string    `json:"primaryInterest"`
	ExistingSystems    []string  `json:"existingSystems"`
	NepalDirective2081 bool      `json:"nepalDirective2081"`
	HL7FHIR            bool      `json:"hl7Fhir"`
	TechnicalBrief     string    `json:"technicalBrief"`
	Status             Status    `json:"status"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// fields supplied by the submitter
type CreateBriefRequest struct {
	FullName           string
	Organization       string
	Email              string
	ProjectLocation    string
	PrimaryInterest    string
	ExistingSystems    []string
	NepalDirective2081 bool
	HL7FHIR            bool
	TechnicalBrief     string
}

// narrows a List call; zero Status means all
type ListFilter struct {
	Status Status
	Limit  int
	Offset int
}

// brief persistence, implemented by Postgres and in-memory stores
type Repository interface {
	Create(ctx context.Context, req CreateBriefRequest) (*Brief, error)
	Get(ctx context.Context, id string) (*Brief, error)
	List(ctx context.Context, filter ListFilter) ([]Brief, int, error)
	UpdateStatus(ctx context.Context, id string, status Status) (*Brief, error)
}
