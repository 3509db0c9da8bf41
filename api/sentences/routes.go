package sentences

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/labeler-api/api/types"
)

// RegisterRoutes registers sentence supply routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("/next", GetNext(deps))
	router.POST("/:id/used", MarkUsed(deps))
}
