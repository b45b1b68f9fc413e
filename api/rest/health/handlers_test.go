package health

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(t *testing.T, handler gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	router := gin.New()
	router.GET("/", handler)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	return w
}

func TestHandler(t *testing.T) {
	w := serve(t, Handler("trigonal-backend"))

	assert.Equal(t, `{"status":"healthy","service":"trigonal-backend"}`, w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
}

func TestRootHandler(t *testing.T) {
	w := serve(t, RootHandler("Trigonal API", "1.0.0"))

	assert.Equal(t, `{"message":"Trigonal API","version":"1.0.0"}`, w.Body.String())
}

func TestHandlers_Idempotent(t *testing.T) {
	handler := Handler("trigonal-backend")
	first := serve(t, handler).Body.String()

	for range 5 {
		assert.Equal(t, first, serve(t, handler).Body.String())
	}
}
