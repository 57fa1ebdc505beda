package httpapi

import (
	"strings"

	"github.com/gin-gonic/gin"

	employeesapp "github.com/retaildesk/storefront-api/internal/domains/employees/application"
	"github.com/retaildesk/storefront-api/internal/shared/apierrors"
)

const (
	bearerTokenKey  = "auth.bearerToken"
	employeeCodeKey = "auth.employeeCode"
)

// RequireAuth rejects requests without a valid bearer session. On success the
// token and resolved employee code are stored on the context.
func RequireAuth(employees employeesapp.Port) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerFromHeader(c.GetHeader("Authorization"))
		if token == "" {
			apierrors.Respond(c, apierrors.Unauthorized.Status, apierrors.Unauthorized.Message)
			return
		}
		code, err := employees.Authenticate(c.Request.Context(), token)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.Set(bearerTokenKey, token)
		c.Set(employeeCodeKey, code)
		c.Next()
	}
}

// BearerToken returns the validated token stored by RequireAuth.
func BearerToken(c *gin.Context) string {
	return c.GetString(bearerTokenKey)
}

// EmployeeCode returns the authenticated employee code stored by RequireAuth.
func EmployeeCode(c *gin.Context) string {
	return c.GetString(employeeCodeKey)
}

func bearerFromHeader(header string) string {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
