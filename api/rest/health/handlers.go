package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler godoc
// @Summary Health check
// @Description Liveness probe used by container health checks
// @Tags health
// @Produce json
// @Success 200 {object} Response
// @Router /health [get]
func Handler(service string) gin.HandlerFunc {
	body := Response{
		Status:  "healthy",
		Service: service,
	}

	return func(c *gin.Context) {
		c.JSON(http.StatusOK, body)
	}
}

// RootHandler godoc
// @Summary API identity
// @Description Returns the API title and version
// @Tags health
// @Produce json
// @Success 200 {object} RootResponse
// @Router / [get]
func RootHandler(title, version string) gin.HandlerFunc {
	body := RootResponse{
		Message: title,
		Version: version,
	}

	return func(c *gin.Context) {
		c.JSON(http.StatusOK, body)
	}
}
