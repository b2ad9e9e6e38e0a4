package context

import "github.com/gin-gonic/gin"

// AdminEmailKey holds the authenticated admin's email in the gin context.
const AdminEmailKey = "admin_email"

// SetAdmin marks the request as authenticated. Only the session gate calls it.
func SetAdmin(c *gin.Context, email string) {
	c.Set(AdminEmailKey, email)
}

// GetAdminEmail reports the admin the session gate admitted, if any.
func GetAdminEmail(c *gin.Context) (string, bool) {
	email := c.GetString(AdminEmailKey)
	return email, email != ""
}
