package labels

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/labeler-api/api/types"
)

// RegisterRoutes registers training data routes. Destructive and export
// operations sit behind the admin middleware; submission and listing are
// open to labelers.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, requireAuth gin.HandlerFunc) {
	router.POST("", Create(deps))
	router.GET("", List(deps))

	router.DELETE("", requireAuth, Clear(deps))
	router.DELETE("/:id", requireAuth, Delete(deps))
	router.GET("/stats", requireAuth, GetStats(deps))
	router.GET("/export", requireAuth, Export(deps))
}
