package handler

import (
	"net/http"

	sharedError "github.com/funfun03/form-showcase/internal/shared/error"
	"github.com/funfun03/form-showcase/internal/shared/metrics"
	"github.com/funfun03/form-showcase/internal/shared/validator"
	"github.com/gin-gonic/gin"
)

// BindJSON parses and validates JSON request body
// Returns true if binding succeeded, false if failed (response already sent)
//
// Usage:
//
//	var req RegisterRequest
//	if !handler.BindJSON(c, &req, registerMessages) {
//	    return
//	}
func BindJSON(c *gin.Context, obj any, messages validator.Messages) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		// Add error to context for middleware logging
		c.Error(err)

		// Check if it's a validation error
		if resp, ok := validator.ToErrorResponse(err, messages); ok {
			c.JSON(http.StatusBadRequest, resp)
		} else {
			// JSON parsing error or other binding errors
			c.JSON(sharedError.InvalidRequest.Status, sharedError.InvalidRequest)
		}
		return false
	}
	return true
}

// BindForm binds a submitted HTML form. Validation failures are returned so
// the page can be re-rendered with the messages next to each input; the
// bound values stay in obj. ok is false only when the body could not be
// parsed at all, in which case the response has been sent.
func BindForm(c *gin.Context, obj any, messages validator.Messages) (fields validator.FieldErrors, ok bool) {
	if err := c.ShouldBind(obj); err != nil {
		c.Error(err)

		if fields, ok := validator.Translate(err, messages); ok {
			return fields, true
		}

		c.JSON(sharedError.InvalidRequest.Status, sharedError.InvalidRequest)
		return nil, false
	}
	return validator.FieldErrors{}, true
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

// ResponseFor maps err to its registered domain response, or the internal error.
func ResponseFor(err error) sharedError.ErrorResponse {
	if resp, ok := sharedError.ResolveDomainError(err); ok {
		return resp
	}
	return sharedError.InternalServerError
}

// RecordRejected reports a failed validation to the metrics recorder.
func RecordRejected(rec metrics.Recorder, form string, fields validator.FieldErrors) {
	rec.RecordSubmission(form, metrics.OutcomeInvalid)
	rec.RecordFieldErrors(form, fields.Fields())
}
