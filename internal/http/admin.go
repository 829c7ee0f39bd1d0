package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/thanhmai/journal/internal/auth"
)

// AdminTokenHeader carries the bearer token asserting the admin role.
const AdminTokenHeader = "X-Admin-Token"

// AdminTokenMiddleware guards the write endpoints. The token must carry the
// literal "role:admin" claim — the substring check clients have always
// relied on — and additionally verify as signed and unexpired. Rejected
// requests never reach the handler.
func AdminTokenMiddleware(service *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(AdminTokenHeader)
		if token == "" || !strings.Contains(token, "role:admin") {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "Unauthorized",
			})
			return
		}
		if err := service.VerifyAdminToken(token); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "Unauthorized",
			})
			return
		}
		c.Next()
	}
}
