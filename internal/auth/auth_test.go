package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-testing"

func init() {
	gin.SetMode(gin.TestMode)
}

func TestGenerateJWT_Success(t *testing.T) {
	token, err := GenerateJWT(testSecret, "admin-1", "ops@trigonal.tech", true)

	require.NoError(t, err)
	assert.True(t, len(token) > 50, "JWT should be reasonably long")
	assert.Equal(t, 3, len(strings.Split(token, ".")), "JWT should have 3 parts")
}

func TestGenerateJWT_MissingSecret(t *testing.T) {
	_, err := GenerateJWT("", "admin-1", "ops@trigonal.tech", true)

	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestValidateJWT_ValidToken(t *testing.T) {
	token, err := GenerateJWT(testSecret, "admin-1", "ops@trigonal.tech", true)
	require.NoError(t, err)

	claims, err := ValidateJWT(testSecret, token)

	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.UserID)
	assert.Equal(t, "ops@trigonal.tech", claims.Email)
	assert.True(t, claims.IsAdmin)

	// verify expiration is set to 7 days
	timeDiff := claims.ExpiresAt.Sub(time.Now().Add(7 * 24 * time.Hour)).Abs()
	assert.Less(t, timeDiff, 5*time.Second)
}

func TestValidateJWT_ExpiredToken(t *testing.T) {
	claims := Claims{
		UserID:  "admin-1",
		IsAdmin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ValidateJWT(testSecret, tokenString)

	assert.Error(t, err, "expired token should be rejected")
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT(testSecret, "admin-1", "ops@trigonal.tech", true)
	require.NoError(t, err)

	_, err = ValidateJWT("different-secret-key", token)

	assert.Error(t, err, "token signed with different secret should be rejected")
}

func TestValidateJWT_AlgorithmConfusionAttack(t *testing.T) {
	claims := Claims{
		UserID:  "attacker",
		IsAdmin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	tokenString, _ := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType) //nolint:errcheck // test code

	_, err := ValidateJWT(testSecret, tokenString)
	assert.Error(t, err, "token with 'none' algorithm should be rejected")
}

func TestValidateJWT_MalformedToken(t *testing.T) {
	for _, token := range []string{"", "not.a.jwt", "only.two", "<script>alert('xss')</script>"} {
		_, err := ValidateJWT(testSecret, token)
		assert.Error(t, err, "malformed token '%s' should be rejected", token)
	}
}

func newAdminRouter() *gin.Engine {
	router := gin.New()
	router.GET("/admin", AdminAuthMiddleware(testSecret), func(c *gin.Context) {
		userID, _ := GetUserID(c)
		c.String(http.StatusOK, userID)
	})

	return router
}

func TestAdminAuthMiddleware(t *testing.T) {
	adminToken, err := GenerateJWT(testSecret, "admin-1", "ops@trigonal.tech", true)
	require.NoError(t, err)

	userToken, err := GenerateJWT(testSecret, "user-1", "someone@example.com", false)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + adminToken, http.StatusUnauthorized},
		{"garbage token", "Bearer nope", http.StatusUnauthorized},
		{"non-admin token", "Bearer " + userToken, http.StatusForbidden},
		{"admin token", "Bearer " + adminToken, http.StatusOK},
		{"lowercase scheme", "bearer " + adminToken, http.StatusOK},
	}

	router := newAdminRouter()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, "admin-1", w.Body.String())
			}
		})
	}
}

func TestAuthorizeAdminToken(t *testing.T) {
	userToken, err := GenerateJWT(testSecret, "user-1", "someone@example.com", false)
	require.NoError(t, err)

	_, err = AuthorizeAdminToken(testSecret, userToken)
	assert.ErrorIs(t, err, ErrNotAdmin)

	adminToken, err := GenerateJWT(testSecret, "admin-1", "ops@trigonal.tech", true)
	require.NoError(t, err)

	claims, err := AuthorizeAdminToken(testSecret, adminToken)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.UserID)
}
