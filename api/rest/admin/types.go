package admin

import (
	"codeberg.org/trigonal/backend/api/rest/pagination"
	"codeberg.org/trigonal/backend/trigonal/briefs"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// receives brief events for the live feed
type BriefPublisher interface {
	PublishBrief(eventType string, brief *briefs.Brief)
}

type UpdateStatusRequest struct {
	Status briefs.Status `json:"status" binding:"required,oneof=NEW REVIEWING ARCHIVED"`
}

type ListBriefsResponse struct {
	Briefs     []briefs.Brief  `json:"briefs"`
	Pagination pagination.Meta `json:"pagination"`
}
