package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
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

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// WriteBusiness mapeia o kind do erro de negócio para o status HTTP.
func WriteBusiness(c *gin.Context, err error) {
	var be BusinessError
	if !errors.As(err, &be) {
		Internal(c, "internal_error", "Erro interno.")
		return
	}

	switch be.Kind {
	case KindInvalidInput:
		Write(c, http.StatusBadRequest, be.Code, be.Message)
	case KindNotFound:
		Write(c, http.StatusNotFound, be.Code, be.Message)
	case KindInvalidState, KindInvalidTransition:
		Write(c, http.StatusUnprocessableEntity, be.Code, be.Message)
	case KindConflict:
		Write(c, http.StatusConflict, be.Code, be.Message)
	default:
		Internal(c, be.Code, be.Message)
	}
}
