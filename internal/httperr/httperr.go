package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
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

// Business writes a BusinessError with the status registered for its code.
func Business(c *gin.Context, be BusinessError) {
	msg := be.Message
	if msg == "" {
		msg = be.Code
	}
	c.JSON(StatusFor(be.Code), HTTPError{
		Code:    be.Code,
		Message: msg,
		Details: be.Details,
	})
}

var statusByCode = map[string]int{
	"invalid_request":           http.StatusBadRequest,
	"invalid_field_value":       http.StatusBadRequest,
	"unknown_field":             http.StatusBadRequest,
	"unknown_reference":         http.StatusBadRequest,
	"validation_failed":         http.StatusBadRequest,
	"row_not_found":             http.StatusNotFound,
	"detail_not_found":          http.StatusNotFound,
	"view_not_found":            http.StatusNotFound,
	"confirmation_not_found":    http.StatusNotFound,
	"row_awaiting_confirmation": http.StatusConflict,
	"load_failed":               http.StatusBadGateway,
	"save_failed":               http.StatusBadGateway,
	"delete_failed":             http.StatusBadGateway,
	"create_failed":             http.StatusBadGateway,
	"partially_created":         http.StatusBadGateway,
	"refresh_failed":            http.StatusBadGateway,
}

func StatusFor(code string) int {
	if s, ok := statusByCode[code]; ok {
		return s
	}
	return http.StatusInternalServerError
}
