package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshal-sawant/ecommerceStoreBackend/auth"
)

const testSecret = "test-jwt-key"

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_KEY", testSecret)
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/private", ValidateToken, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":  c.GetString(ContextUserID),
			"is_admin": c.GetBool(ContextIsAdmin),
		})
	})
	r.GET("/owner/:id", ValidateTokenAndAuth, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/admin", AdminAuth, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/me", ValidateToken, func(c *gin.Context) {
		userID, ok := CurrentUserID(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": userID.Hex()})
	})
	return r
}

func doRequest(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestValidateTokenMissingHeader(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(r, "/private", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "not authenticated")
}

func TestValidateTokenInvalidToken(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(r, "/private", "garbage")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "not Valid")
}

func TestValidateTokenWrongSecret(t *testing.T) {
	r := setupRouter(t)
	token, err := auth.GenerateToken("abc", false, "some-other-secret")
	require.NoError(t, err)

	w := doRequest(r, "/private", token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateTokenExposesIdentity(t *testing.T) {
	r := setupRouter(t)
	token, err := auth.GenerateToken("66f0c0ffee0000000000aaaa", true, testSecret)
	require.NoError(t, err)

	w := doRequest(r, "/private", token)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "66f0c0ffee0000000000aaaa")
	assert.Contains(t, w.Body.String(), `"is_admin":true`)
}

func TestOwnerGateAllowsOwner(t *testing.T) {
	r := setupRouter(t)
	token, err := auth.GenerateToken("user-1", false, testSecret)
	require.NoError(t, err)

	w := doRequest(r, "/owner/user-1", token)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOwnerGateAllowsAdmin(t *testing.T) {
	r := setupRouter(t)
	token, err := auth.GenerateToken("admin-1", true, testSecret)
	require.NoError(t, err)

	w := doRequest(r, "/owner/user-1", token)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOwnerGateRejectsOthers(t *testing.T) {
	r := setupRouter(t)
	token, err := auth.GenerateToken("user-2", false, testSecret)
	require.NoError(t, err)

	w := doRequest(r, "/owner/user-1", token)

	// Legacy API reports insufficient permission as a 400, not 403.
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "permission")
}

func TestAdminGateRejectsNonAdmin(t *testing.T) {
	r := setupRouter(t)
	token, err := auth.GenerateToken("user-1", false, testSecret)
	require.NoError(t, err)

	w := doRequest(r, "/admin", token)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Only Admin has Access")
}

func TestCurrentUserIDReturnsObjectID(t *testing.T) {
	r := setupRouter(t)
	token, err := auth.GenerateToken("66f0c0ffee0000000000aaaa", false, testSecret)
	require.NoError(t, err)

	w := doRequest(r, "/me", token)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "66f0c0ffee0000000000aaaa")
}

func TestCurrentUserIDRejectsMalformedID(t *testing.T) {
	// A token whose subject is not a valid ObjectID hex string cannot be
	// resolved to a user.
	r := setupRouter(t)
	token, err := auth.GenerateToken("not-an-object-id", false, testSecret)
	require.NoError(t, err)

	w := doRequest(r, "/me", token)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No such user Found")
}

func TestAdminGateAllowsAdmin(t *testing.T) {
	r := setupRouter(t)
	token, err := auth.GenerateToken("admin-1", true, testSecret)
	require.NoError(t, err)

	w := doRequest(r, "/admin", token)

	assert.Equal(t, http.StatusOK, w.Code)
}
