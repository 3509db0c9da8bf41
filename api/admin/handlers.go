package admin

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/labeler-api/api/types"
)

// SetupStorage provisions the object storage buckets
// @Summary      Provision storage buckets
// @Description  Idempotently create the object storage buckets the application writes to. Admin only. Only available on the supabase backend.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} types.SuccessResponse "Buckets ready"
// @Failure      400 {object} types.ErrorResponse "Storage provisioning not available on this backend"
// @Failure      401 {object} types.ErrorResponse "Missing or invalid token"
// @Failure      500 {object} types.ErrorResponse "Provisioning failed"
// @Router       /api/v1/admin/storage/setup [post]
func SetupStorage(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.Provisioner == nil {
			types.SendBadRequest(c, "Storage provisioning is only available on the supabase backend")
			return
		}

		if err := deps.Provisioner.Setup(); err != nil {
			log.Printf("[ERROR] Storage provisioning failed: %v", err)
			types.SendInternalError(c, "Storage provisioning failed")
			return
		}

		types.SendSuccess(c, types.SuccessResponse{Success: true, Message: "Storage buckets ready"})
	}
}
