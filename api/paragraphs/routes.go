package paragraphs

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/labeler-api/api/types"
)

// RegisterRoutes registers paragraph ingestion routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("", Submit(deps))
}
