package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"renovation_estimator/pkg"

	"github.com/gin-gonic/gin"
)

// MaintenanceTokenHeader carries the shared secret for maintenance routes.
const MaintenanceTokenHeader = "X-Maintenance-Token"

var (
	errMaintenanceDisabled  = pkg.NewDomainErrorSimple("MAINTENANCE_DISABLED", "Maintenance routes are disabled", http.StatusNotFound)
	errMaintenanceForbidden = pkg.NewDomainErrorSimple("FORBIDDEN", "Invalid maintenance token", http.StatusForbidden)
)

// RequireMaintenanceToken guards maintenance routes. An empty configured token disables them.
func RequireMaintenanceToken(token string) gin.HandlerFunc {
	expected := []byte(strings.TrimSpace(token))
	return func(c *gin.Context) {
		if len(expected) == 0 {
			c.AbortWithStatusJSON(errMaintenanceDisabled.HTTPStatus, errMaintenanceDisabled.ToHTTPError())
			return
		}
		got := []byte(strings.TrimSpace(c.GetHeader(MaintenanceTokenHeader)))
		if subtle.ConstantTimeCompare(got, expected) != 1 {
			c.AbortWithStatusJSON(errMaintenanceForbidden.HTTPStatus, errMaintenanceForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}
