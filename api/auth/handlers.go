package auth

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/labeler-api/api/types"
)

// Login exchanges admin credentials for a bearer token
// @Summary      Admin login
// @Description  Verify the admin code and password and issue a signed bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body types.LoginRequest true "Admin code and password"
// @Success      200 {object} types.LoginResponse "Issued token"
// @Failure      400 {object} types.ErrorResponse "Malformed request body"
// @Failure      401 {object} types.ErrorResponse "Invalid credentials"
// @Router       /api/v1/auth/login [post]
func Login(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.LoginRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		token, err := deps.Auth.Login(req.Code, req.Password)
		if err != nil {
			log.Printf("[WARN] Failed admin login attempt from %s", c.ClientIP())
			types.SendUnauthorized(c, "Invalid credentials")
			return
		}

		types.SendSuccess(c, types.LoginResponse{Success: true, Token: token})
	}
}
