package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultParams(t *testing.T) {
	assert.Equal(t, Params{Limit: 20, Offset: 0}, DefaultParams(0, -5, 20, 100))
	assert.Equal(t, Params{Limit: 100, Offset: 40}, DefaultParams(500, 40, 20, 100))
	assert.Equal(t, Params{Limit: 7, Offset: 3}, DefaultParams(7, 3, 20, 100))
}

func TestNewMeta(t *testing.T) {
	assert.True(t, NewMeta(Params{Limit: 10, Offset: 0}, 11).HasMore)
	assert.False(t, NewMeta(Params{Limit: 10, Offset: 1}, 11).HasMore)
}

func TestFromQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/admin/briefs?limit=5&offset=10", nil)

	params, err := FromQuery(c, 20, 100)
	require.NoError(t, err)
	assert.Equal(t, Params{Limit: 5, Offset: 10}, params)

	c.Request = httptest.NewRequest("GET", "/api/admin/briefs?limit=lots", nil)
	_, err = FromQuery(c, 20, 100)
	assert.Error(t, err)
}
