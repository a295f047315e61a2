package authControllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harshal-sawant/ecommerceStoreBackend/auth"
	"github.com/harshal-sawant/ecommerceStoreBackend/models"
)

const (
	testPasswordKey = "unit-test-password-key"
	testJWTKey      = "unit-test-jwt-key"
)

func newTestUser(t *testing.T, password string, isAdmin bool) *models.User {
	t.Helper()
	encrypted, err := auth.EncryptPassword(password, testPasswordKey)
	require.NoError(t, err)
	return &models.User{
		ID:       primitive.NewObjectID(),
		Username: "harshal",
		Email:    "harshal@example.com",
		Password: encrypted,
		IsAdmin:  isAdmin,
	}
}

func TestCheckCredentials(t *testing.T) {
	user := newTestUser(t, "s3cret-pw", true)

	token, err := checkCredentials(user, "s3cret-pw", testPasswordKey, testJWTKey)
	require.NoError(t, err)

	claims, err := auth.ParseToken(token, testJWTKey)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
	assert.True(t, claims.IsAdmin)
}

func TestCheckCredentialsWrongPassword(t *testing.T) {
	user := newTestUser(t, "s3cret-pw", false)

	token, err := checkCredentials(user, "wrong-pw", testPasswordKey, testJWTKey)

	require.ErrorIs(t, err, errInvalidPassword)
	assert.Empty(t, token, "a failed login must never yield a token")
	assert.NotContains(t, err.Error(), "s3cret-pw")
}

func TestCheckCredentialsWrongStorageKey(t *testing.T) {
	// A user encrypted under a different key must fail the same way as a
	// wrong password, not surface a decryption error.
	user := newTestUser(t, "s3cret-pw", false)

	token, err := checkCredentials(user, "s3cret-pw", "some-other-key", testJWTKey)

	require.ErrorIs(t, err, errInvalidPassword)
	assert.Empty(t, token)
}

func TestAvailability(t *testing.T) {
	assert.NoError(t, availability(false, false))
	assert.ErrorIs(t, availability(true, false), errUsernameTaken)
	assert.ErrorIs(t, availability(false, true), errEmailTaken)
	// Username takes precedence when both collide.
	assert.ErrorIs(t, availability(true, true), errUsernameTaken)
}

func TestAvailabilityErrorStrings(t *testing.T) {
	assert.EqualError(t, availability(true, false), "UserName Taken")
	assert.EqualError(t, availability(false, true), "Email Taken")
}
