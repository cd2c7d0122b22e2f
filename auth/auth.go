package auth

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/modaline/shopclient-api/catalog"
	"github.com/modaline/shopclient-api/models"
)

type SignInInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SignUpInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// POST /auth/signin
//
// The upstream user store has no auth endpoint of its own, so sign-in scans
// /users for a username/password match, the same way the mobile client always
// has.
func SignIn(cat *catalog.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SignInInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		users, err := cat.Users(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to reach user store"})
			return
		}

		for _, u := range users {
			if u.Username == input.Username && u.Password == input.Password {
				token, err := IssueToken(u.ID)
				if err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
					return
				}
				c.JSON(http.StatusOK, gin.H{"user": u.Public(), "token": token})
				return
			}
		}

		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
	}
}

// POST /auth/signup
func SignUp(cat *catalog.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SignUpInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		users, err := cat.Users(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to reach user store"})
			return
		}
		for _, u := range users {
			if u.Username == input.Username {
				c.JSON(http.StatusConflict, gin.H{"error": "Username already taken"})
				return
			}
		}

		created, err := cat.CreateUser(c.Request.Context(), models.User{
			Username: input.Username,
			Password: input.Password,
			Name:     input.Name,
			Email:    input.Email,
		})
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to create user"})
			return
		}

		token, err := IssueToken(created.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"user": created.Public(), "token": token})
	}
}

// IssueToken signs a 24h HS256 session token for the given user.
func IssueToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
