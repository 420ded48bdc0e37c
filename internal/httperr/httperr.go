package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MsgInternal is the only message clients ever see for unexpected failures.
const MsgInternal = "An unexpected error occurred. Please try again later or contact your Support Team."

type HTTPError struct {
	Status  int    `json:"status code"`
	Message string `json:"msg"`
}

func Write(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Status:  status,
		Message: message,
	})
}

func BadRequest(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Write(c, http.StatusNotFound, message)
}

func Unprocessable(c *gin.Context, message string) {
	Write(c, http.StatusUnprocessableEntity, message)
}

func Internal(c *gin.Context) {
	Write(c, http.StatusInternalServerError, MsgInternal)
}

func Unauthorized(c *gin.Context, message string) {
	c.Header("WWW-Authenticate", "Bearer")
	Write(c, http.StatusUnauthorized, message)
}
