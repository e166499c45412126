package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ErrorHandler renders the last error a handler attached with ctx.Error.
// Every error becomes a JSON body: {"error": ...} for 404 and 500, {"errors": [...]} for 400.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status, body := renderError(err)

		entry := log.WithFields(logrus.Fields{
			"request_id": GetRequestID(c),
			"status":     status,
		}).WithError(err)
		if status >= http.StatusInternalServerError {
			entry.Error("Request failed")
		} else {
			entry.Debug("Request rejected")
		}

		c.JSON(status, body)
	}
}

func renderError(err error) (int, interface{}) {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()}
	}

	status := appErr.Status()
	switch status {
	case http.StatusBadRequest:
		return status, models.ErrorsResponse{Errors: appErr.Messages}
	default:
		return status, models.ErrorResponse{Error: appErr.Error()}
	}
}

// Recovery turns a panic into a 500 JSON response carrying the panic value
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.WithFields(logrus.Fields{
			"request_id": GetRequestID(c),
			"panic":      recovered,
		}).Error("Recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{Error: fmt.Sprint(recovered)})
	})
}

// NotFound answers requests that match no route
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Resource not found"})
}

// MethodNotAllowed answers requests whose path exists under another method
func MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, models.ErrorResponse{Error: "Method not allowed"})
}
