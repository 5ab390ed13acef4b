package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/appointment-booking/internal/logger"
)

// HTTPError is the public error body. The API contract is a single
// human-readable "error" key; codes stay server-side in the logs.
type HTTPError struct {
	Message string `json:"error"`
}

func Write(c *gin.Context, status int, code, message string) {
	logger.Get().Debug("request rejected",
		zap.String("error_code", code),
		zap.Int("status", status),
		zap.String("path", c.FullPath()),
	)
	c.JSON(status, HTTPError{Message: message})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}
