package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"users-api/internal/apperr"
	"users-api/pkg/response"
	"users-api/pkg/validation"
)

// ErrorHandler is the single place that turns failures into wire responses.
// Handlers attach errors with c.Error and never write error bodies
// themselves. Resolution order:
//
//  1. binding/validation failures -> 400 VALIDATION_ERROR with field map
//  2. typed application errors    -> their status, code and message
//  3. anything else               -> 500 generic; the cause is only logged
//
// Whatever the error value, the client always gets the JSON envelope.
func ErrorHandler(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		if fields := validation.ToFieldErrors(err); fields != nil {
			c.JSON(http.StatusBadRequest, response.NewError("Validation failed", "VALIDATION_ERROR", fields))
			return
		}

		if ae, ok := apperr.As(err); ok {
			c.JSON(ae.Status(), response.NewError(ae.Message, ae.Code(), ae.Fields))
			return
		}

		log.WithFields(logrus.Fields{
			"error":      err.Error(),
			"path":       c.FullPath(),
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		}).Error("unhandled error")
		c.JSON(http.StatusInternalServerError, response.NewError("Internal server error", "INTERNAL_SERVER_ERROR", nil))
	}
}
