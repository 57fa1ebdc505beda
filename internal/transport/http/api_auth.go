package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	employeesapp "github.com/retaildesk/storefront-api/internal/domains/employees/application"
	"github.com/retaildesk/storefront-api/internal/shared/apierrors"
)

// AuthAPI serves employee login and logout.
type AuthAPI struct {
	employees employeesapp.Port
}

func NewAuthAPI(employees employeesapp.Port) AuthAPI {
	return AuthAPI{employees: employees}
}

type loginRequest struct {
	EmployeeCode string `json:"employeeCode"`
	Password     string `json:"password"`
}

type employeePayload struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type sessionPayload struct {
	AccessToken string          `json:"accessToken"`
	TokenType   string          `json:"tokenType"`
	ExpiresIn   int64           `json:"expiresIn"`
	Employee    employeePayload `json:"employee"`
}

// Login handles POST /auth/login.
func (api AuthAPI) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.Respond(c, http.StatusBadRequest, "malformed login payload")
		return
	}

	session, err := api.employees.Login(c.Request.Context(), req.EmployeeCode, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionPayload{
		AccessToken: session.Token,
		TokenType:   "Bearer",
		ExpiresIn:   session.ExpiresIn,
		Employee:    employeePayload{Code: session.EmployeeCode, Name: session.EmployeeName},
	})
}

// Logout handles POST /auth/logout. The middleware has already validated
// the token, so logout only needs to drop it.
func (api AuthAPI) Logout(c *gin.Context) {
	if err := api.employees.Logout(c.Request.Context(), BearerToken(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}
