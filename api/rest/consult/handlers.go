package consult

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net/http"
	"strings"

	"codeberg.org/trigonal/backend/internal/errors"
	"codeberg.org/trigonal/backend/internal/logger"
	"codeberg.org/trigonal/backend/internal/notify"
	"codeberg.org/trigonal/backend/internal/websocket"
	"codeberg.org/trigonal/backend/trigonal/briefs"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// SubmitBrief godoc
// @Summary Submit a consultation brief
// @Description Stores a consult form submission and notifies the architects
// @Tags consult
// @Accept json,x-www-form-urlencoded,mpfd
// @Produce json
// @Param request body SubmitRequest true "Consult form"
// @Success 201 {object} SubmitResponse
// @Failure 400 {object} ValidationResponse
// @Failure 429 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/consult [post]
func SubmitBrief(briefRepo briefs.Repository, publisher BriefPublisher, notifier notify.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SubmitRequest

		isForm := isFormPost(c)
		if !isForm && c.ContentType() != binding.MIMEJSON {
			errors.BadRequest(c, "request body must be JSON or a form post", nil)
			return
		}

		if isForm {
			// checkboxes arrive as "on" which the form binder cannot map onto bool
			req.NepalDirective2081 = checkboxValue(c, "nepalDirective2081")
			req.HL7FHIR = checkboxValue(c, "hl7Fhir")
		}

		if err := c.ShouldBind(&req); err != nil {
			var verrs validator.ValidationErrors
			if stderrors.As(err, &verrs) {
				c.JSON(http.StatusBadRequest, ValidationResponse{
					Success: false,
					Message: messageInvalid,
					Errors:  fieldErrors(verrs),
				})
				return
			}

			errors.BadRequest(c, "invalid request body", err)
			return
		}

		brief, err := briefRepo.Create(c.Request.Context(), briefs.CreateBriefRequest{
			FullName:           req.FullName,
			Organization:       req.Organization,
			Email:              req.Email,
			ProjectLocation:    req.ProjectLocation,
			PrimaryInterest:    req.PrimaryInterest,
			ExistingSystems:    req.ExistingSystems,
			NepalDirective2081: req.NepalDirective2081,
			HL7FHIR:            req.HL7FHIR,
			TechnicalBrief:     req.TechnicalBrief,
		})
		if err != nil {
			errors.InternalError(c, "failed to save consultation request", err)
			return
		}

		log := logger.FromContext(c.Request.Context()).With("brief_id", brief.ID)
		log.Info("consultation request received",
			"organization", brief.Organization,
			"project_location", brief.ProjectLocation,
			"primary_interest", brief.PrimaryInterest,
		)

		publisher.PublishBrief(websocket.TypeBriefCreated, brief)

		go notifyArchitects(log, notifier, brief)

		c.JSON(http.StatusCreated, SubmitResponse{
			Success: true,
			Message: messageCreated,
			ID:      brief.ID,
		})
	}
}

// runs detached from the request context
func notifyArchitects(log *slog.Logger, notifier notify.Notifier, brief *briefs.Brief) {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	if err := notifier.NotifyBriefCreated(ctx, brief); err != nil {
		log.Error("failed to send consultation notification", "error", err)
	}
}

func fieldErrors(verrs validator.ValidationErrors) map[string][]string {
	out := make(map[string][]string, len(verrs))

	for _, fe := range verrs {
		rule, ok := fieldRules[fe.StructField()]
		if !ok {
			rule = fieldRule{key: fe.Field(), message: "Invalid value"}
		}

		out[rule.key] = append(out[rule.key], rule.message)
	}

	return out
}

func isFormPost(c *gin.Context) bool {
	switch c.ContentType() {
	case binding.MIMEPOSTForm, binding.MIMEMultipartPOSTForm:
		return true
	default:
		return false
	}
}

func checkboxValue(c *gin.Context, field string) bool {
	value := strings.ToLower(strings.TrimSpace(c.PostForm(field)))
	return value == checkboxOn || value == "true" || value == "1"
}
