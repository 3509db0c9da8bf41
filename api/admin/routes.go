package admin

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/labeler-api/api/types"
)

// RegisterRoutes registers admin routes. Everything here requires a valid
// admin token.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, requireAuth gin.HandlerFunc) {
	router.POST("/storage/setup", requireAuth, SetupStorage(deps))
}
