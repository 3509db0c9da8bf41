package auth

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/labeler-api/api/types"
)

// RegisterRoutes registers authentication routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("/login", Login(deps))
}
