package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harshal-sawant/ecommerceStoreBackend/auth"
)

// Context keys set by the token gates for downstream handlers.
const (
	ContextUserID  = "user_id"
	ContextIsAdmin = "is_admin"
)

// authenticate verifies the bearer token from the Authorization header and
// stores the embedded identity and role in the context. On failure it aborts
// the request with a 401 and returns false.
func authenticate(c *gin.Context) bool {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "You are not authenticated"})
		c.Abort()
		return false
	}

	// Accept both "Bearer <token>" and a raw token.
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	claims, err := auth.ParseToken(tokenString, os.Getenv("JWT_KEY"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is not Valid"})
		c.Abort()
		return false
	}

	c.Set(ContextUserID, claims.UserID)
	c.Set(ContextIsAdmin, claims.IsAdmin)
	return true
}

// CurrentUserID resolves the authenticated caller's ObjectID set by the
// token gates. Responds with the legacy 400 body when the id is missing or
// malformed.
func CurrentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	userID, err := primitive.ObjectIDFromHex(c.GetString(ContextUserID))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "No such user Found"})
		return primitive.NilObjectID, false
	}
	return userID, true
}

// ValidateToken exposes the caller's identity and role to downstream
// handlers, denying unauthenticated requests.
func ValidateToken(c *gin.Context) {
	if !authenticate(c) {
		return
	}
	c.Next()
}

// ValidateTokenAndAuth additionally requires the caller to be the owner of
// the target resource (the :id route param) or an admin. Non-owners get a
// 400, matching the legacy API.
func ValidateTokenAndAuth(c *gin.Context) {
	if !authenticate(c) {
		return
	}

	if c.GetString(ContextUserID) != c.Param("id") && !c.GetBool(ContextIsAdmin) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You do not have the permission"})
		c.Abort()
		return
	}
	c.Next()
}

// AdminAuth requires the admin role unconditionally.
func AdminAuth(c *gin.Context) {
	if !authenticate(c) {
		return
	}

	if !c.GetBool(ContextIsAdmin) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only Admin has Access"})
		c.Abort()
		return
	}
	c.Next()
}
