package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"roombook-backend/apperr"
)

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

// JSONError maps an error from the service layer to the wire envelope
// {success:false, error:{code, message}} and the matching HTTP status.
func JSONError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperr.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, apperr.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, apperr.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperr.ErrAuth):
		status = http.StatusUnauthorized
	case errors.Is(err, apperr.ErrNetwork):
		status = http.StatusBadGateway
	}
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    apperr.Code(err),
			"message": err.Error(),
		},
	})
}

// JSONErrorMessage is for handler-local problems that never touched the
// service layer, like unparseable payloads.
func JSONErrorMessage(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}
