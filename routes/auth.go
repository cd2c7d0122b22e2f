package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/modaline/shopclient-api/auth"
	"github.com/modaline/shopclient-api/catalog"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, cat *catalog.Client) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signin", auth.SignIn(cat))
		authGroup.POST("/signup", auth.SignUp(cat))
		authGroup.POST("/guest", auth.CreateGuestSession())
	}
}
