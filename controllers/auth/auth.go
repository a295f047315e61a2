package authControllers

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/harshal-sawant/ecommerceStoreBackend/auth"
	"github.com/harshal-sawant/ecommerceStoreBackend/models"
)

type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"isAdmin"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

var (
	errUsernameTaken   = errors.New("UserName Taken")
	errEmailTaken      = errors.New("Email Taken")
	errInvalidPassword = errors.New("Invalid Password")
)

// availability maps the two uniqueness checks to the legacy error strings.
// Username wins when both are taken.
func availability(usernameTaken, emailTaken bool) error {
	if usernameTaken {
		return errUsernameTaken
	}
	if emailTaken {
		return errEmailTaken
	}
	return nil
}

// checkCredentials compares the submitted password against the user's stored
// one and mints an access token on match. Any decrypt failure or mismatch is
// errInvalidPassword; the caller never learns which.
func checkCredentials(user *models.User, password, passwordKey, jwtKey string) (string, error) {
	decrypted, err := auth.DecryptPassword(user.Password, passwordKey)
	if err != nil || decrypted != password {
		return "", errInvalidPassword
	}
	return auth.GenerateToken(user.ID.Hex(), user.IsAdmin, jwtKey)
}

// POST /api/auth/register
func Register(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Username == "" || input.Email == "" || input.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are mandatory"})
			return
		}

		users := db.Collection("users")
		ctx := c.Request.Context()

		// Two sequential uniqueness checks, same as the legacy API. A race
		// between check and insert is possible without a unique index.
		usernameCount, err := users.CountDocuments(ctx, bson.M{"username": input.Username})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
			return
		}
		emailCount, err := users.CountDocuments(ctx, bson.M{"email": input.Email})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
			return
		}
		if err := availability(usernameCount > 0, emailCount > 0); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		encrypted, err := auth.EncryptPassword(input.Password, os.Getenv("PASSWORD_KEY"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
			return
		}

		now := time.Now()
		user := models.User{
			ID:        primitive.NewObjectID(),
			Username:  input.Username,
			Email:     input.Email,
			Password:  encrypted,
			IsAdmin:   input.IsAdmin,
			Wishlist:  []primitive.ObjectID{},
			CreatedAt: now,
			UpdatedAt: now,
		}

		if _, err := users.InsertOne(ctx, user); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
			return
		}

		// Password is excluded from the response via the model's json tag.
		c.JSON(http.StatusCreated, user)
	}
}

// POST /api/auth/login
func Login(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Email == "" || input.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are mandatory"})
			return
		}

		ctx := c.Request.Context()

		var user models.User
		err := db.Collection("users").FindOne(ctx, bson.M{"email": input.Email}).Decode(&user)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "No such User"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to login"})
			return
		}

		accessToken, err := checkCredentials(&user, input.Password, os.Getenv("PASSWORD_KEY"), os.Getenv("JWT_KEY"))
		if err != nil {
			if errors.Is(err, errInvalidPassword) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Password"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to login"})
			return
		}

		// Lazily create an empty cart for the user if none exists yet.
		carts := db.Collection("carts")
		if err := carts.FindOne(ctx, bson.M{"userId": user.ID}).Err(); errors.Is(err, mongo.ErrNoDocuments) {
			cart := models.Cart{
				ID:       primitive.NewObjectID(),
				UserID:   user.ID,
				Products: []models.CartProduct{},
			}
			if _, err := carts.InsertOne(ctx, cart); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to login"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"_id":         user.ID,
			"username":    user.Username,
			"email":       user.Email,
			"accessToken": accessToken,
			"isAdmin":     user.IsAdmin,
		})
	}
}
