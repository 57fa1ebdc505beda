package apierrors

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// Envelope is the wire shape of every non-2xx response body.
type Envelope struct {
	Error string `json:"error"`
}

// Respond writes the error envelope and aborts the request chain.
func Respond(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Envelope{Error: message})
}

// RespondError maps an error chain to the envelope. APIError values keep
// their status and message; anything else becomes an opaque 500 so storage
// internals never leak to clients.
func RespondError(c *gin.Context, err error) {
	var apiErr APIError
	if errors.As(err, &apiErr) {
		Respond(c, apiErr.Status, apiErr.Message)
		return
	}
	Respond(c, Persistence.Status, Persistence.Message)
}

// Mapper converts a domain or application error into an APIError.
type Mapper func(err error) (APIError, bool)

// RespondMapped tries each mapper in order before falling back to RespondError.
func RespondMapped(c *gin.Context, err error, mappers ...Mapper) {
	for _, mapper := range mappers {
		if apiErr, ok := mapper(err); ok {
			Respond(c, apiErr.Status, apiErr.Message)
			return
		}
	}
	RespondError(c, err)
}
