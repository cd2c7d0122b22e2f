package userControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/modaline/shopclient-api/catalog"
	"github.com/modaline/shopclient-api/models"
)

type UpdateUserInput struct {
	Name    *string         `json:"name"`
	Email   *string         `json:"email"`
	Address *models.Address `json:"address"`
}

func currentUserID(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	userID, ok := userIDVal.(string)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}

// GET /user
func GetUser(cat *catalog.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		user, err := cat.User(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusOK, user.Public())
	}
}

// PUT /user
func UpdateUser(cat *catalog.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var input UpdateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		patch := make(map[string]any)
		if input.Name != nil {
			patch["name"] = *input.Name
		}
		if input.Email != nil {
			patch["email"] = *input.Email
		}
		if input.Address != nil {
			patch["address"] = *input.Address
		}
		if len(patch) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
			return
		}

		updated, err := cat.UpdateUser(c.Request.Context(), userID, patch)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to update user"})
			return
		}
		c.JSON(http.StatusOK, updated.Public())
	}
}
