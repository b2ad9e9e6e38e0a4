package handler

import (
	"net/http"

	sharedError "github.com/Sheddybata/sdp.app/internal/shared/error"
	"github.com/Sheddybata/sdp.app/internal/shared/validator"
	"github.com/gin-gonic/gin"
)

// BindJSON parses and validates JSON request body
// Returns true if binding succeeded, false if failed (response already sent)
//
// Usage:
//
//	var req VerifyRequest
//	if !handler.BindJSON(c, &req) {
//	    return
//	}
func BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		return respondBindError(c, err)
	}
	return true
}

// BindQuery parses and validates query parameters.
func BindQuery(c *gin.Context, obj any) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		return respondBindError(c, err)
	}
	return true
}

// BindURI parses and validates path parameters.
func BindURI(c *gin.Context, obj any) bool {
	if err := c.ShouldBindUri(obj); err != nil {
		return respondBindError(c, err)
	}
	return true
}

func respondBindError(c *gin.Context, err error) bool {
	// Add error to context for middleware logging
	c.Error(err)

	if resp, ok := validator.ToErrorResponse(err); ok {
		c.JSON(http.StatusBadRequest, resp)
	} else {
		// JSON parsing error or other binding errors
		c.JSON(sharedError.InvalidRequest.Status, sharedError.InvalidRequest)
	}
	return false
}

// RespondError sends an error response with logging
//
// Usage:
//
//	if err := service.DoSomething(); err != nil {
//	    handler.RespondError(c, err, sharedError.InternalServerError)
//	    return
//	}
func RespondError(c *gin.Context, err error, errResp sharedError.ErrorResponse) {
	// Add error to context for middleware logging
	c.Error(err)

	// Send error response
	c.JSON(errResp.Status, errResp)
}

// RespondDomainError resolves err through the domain error registry and
// falls back to a generic internal error.
func RespondDomainError(c *gin.Context, err error) {
	if resp, ok := sharedError.ResolveDomainError(err); ok {
		RespondError(c, err, resp)
		return
	}
	RespondError(c, err, sharedError.InternalServerError)
}
