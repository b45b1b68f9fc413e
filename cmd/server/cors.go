package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// how long browsers may cache a preflight answer
const corsMaxAge = 10 * time.Minute

// applies the cross-origin policy for the configured origins.
// a disallowed origin gets no CORS headers; its preflight is refused with 400.
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = struct{}{}
	}

	// AllowHeaders stays empty so the mirrored request headers below survive
	policy := cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodHead,
			http.MethodOptions,
		},
		AllowCredentials:          true,
		MaxAge:                    corsMaxAge,
		OptionsResponseStatusCode: http.StatusOK,
	})

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			c.Next()
			return
		}

		preflight := c.Request.Method == http.MethodOptions &&
			c.GetHeader("Access-Control-Request-Method") != ""

		if _, ok := allowed[origin]; !ok {
			if preflight {
				c.AbortWithStatus(http.StatusBadRequest)
				return
			}

			c.Next()
			return
		}

		if preflight {
			if requested := c.GetHeader("Access-Control-Request-Headers"); requested != "" {
				c.Header("Access-Control-Allow-Headers", requested)
			}
		}

		policy(c)
	}
}
