package admin

import (
	"net/http"

	"codeberg.org/trigonal/backend/api/rest/pagination"
	"codeberg.org/trigonal/backend/internal/auth"
	"codeberg.org/trigonal/backend/internal/errors"
	"codeberg.org/trigonal/backend/internal/logger"
	"codeberg.org/trigonal/backend/internal/websocket"
	"codeberg.org/trigonal/backend/trigonal/briefs"
	"github.com/gin-gonic/gin"
)

// ListBriefs godoc
// @Summary List consultation briefs
// @Description Admin-only listing, newest first, optionally filtered by status
// @Tags admin
// @Produce json
// @Param status query string false "NEW, REVIEWING or ARCHIVED"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Items to skip"
// @Success 200 {object} ListBriefsResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/admin/briefs [get]
// @Security BearerAuth
func ListBriefs(briefRepo briefs.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, err := briefs.ParseStatusFilter(c.Query("status"))
		if err != nil {
			errors.BadRequest(c, "status must be NEW, REVIEWING or ARCHIVED", nil)
			return
		}

		params, err := pagination.FromQuery(c, defaultListLimit, maxListLimit)
		if err != nil {
			errors.BadRequest(c, "invalid pagination parameters", err)
			return
		}

		list, total, err := briefRepo.List(c.Request.Context(), briefs.ListFilter{
			Status: status,
			Limit:  params.Limit,
			Offset: params.Offset,
		})
		if err != nil {
			errors.InternalError(c, "failed to list briefs", err)
			return
		}

		c.JSON(http.StatusOK, ListBriefsResponse{
			Briefs:     list,
			Pagination: pagination.NewMeta(params, total),
		})
	}
}

// GetBrief godoc
// @Summary Get a consultation brief
// @Tags admin
// @Produce json
// @Param id path string true "Brief ID"
// @Success 200 {object} briefs.Brief
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/admin/briefs/{id} [get]
// @Security BearerAuth
func GetBrief(briefRepo briefs.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := errors.ValidatePathUUID(c, "id", "brief")
		if !ok {
			return
		}

		brief, err := briefRepo.Get(c.Request.Context(), id)
		if err != nil {
			if briefs.IsNotFound(err) {
				errors.NotFound(c, "brief")
				return
			}

			errors.InternalError(c, "failed to get brief", err)
			return
		}

		c.JSON(http.StatusOK, brief)
	}
}

// UpdateBriefStatus godoc
// @Summary Change a brief's triage status
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Brief ID"
// @Param request body UpdateStatusRequest true "New status"
// @Success 200 {object} briefs.Brief
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/admin/briefs/{id}/status [patch]
// @Security BearerAuth
func UpdateBriefStatus(briefRepo briefs.Repository, publisher BriefPublisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := errors.ValidatePathUUID(c, "id", "brief")
		if !ok {
			return
		}

		var req UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		brief, err := briefRepo.UpdateStatus(c.Request.Context(), id, req.Status)
		if err != nil {
			if briefs.IsNotFound(err) {
				errors.NotFound(c, "brief")
				return
			}

			errors.InternalError(c, "failed to update brief status", err)
			return
		}

		adminID, _ := auth.GetUserID(c)
		logger.FromContext(c.Request.Context()).Info("brief status updated",
			"brief_id", brief.ID,
			"status", brief.Status,
			"admin_id", adminID,
		)

		publisher.PublishBrief(websocket.TypeBriefUpdated, brief)

		c.JSON(http.StatusOK, brief)
	}
}
