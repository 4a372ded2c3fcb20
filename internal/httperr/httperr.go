package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type HTTPError struct {
	Code    string            `json:"error_code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
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

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Validation(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, HTTPError{
		Code:    CodeValidation,
		Message: "Faltan datos",
		Fields:  fields,
	})
}

// StatusFor maps a business code to its HTTP status.
func StatusFor(code string) int {
	switch code {
	case CodeValidation, CodePastTime, CodeClosedDay, CodeOutsideHours,
		CodeUnknownBarber, CodeUnknownType, CodeInvalidImage:
		return http.StatusBadRequest
	case CodeSchedulingConflict, CodeEmailTaken:
		return http.StatusConflict
	case CodeNotFound:
		return http.StatusNotFound
	case CodeInvalidCredentials:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodePaymentUnavailable, CodeStorageUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadRequest
	}
}

// Respond writes err to the client. Business errors keep their code and
// message; anything else is logged and reported as a generic 500.
func Respond(c *gin.Context, err error) {
	if be, ok := AsBusiness(err); ok {
		msg := be.Message
		if msg == "" {
			msg = be.Code
		}
		Write(c, StatusFor(be.Code), be.Code, msg)
		return
	}

	log.Error().
		Err(err).
		Str("request_id", c.GetString("requestID")).
		Str("path", c.FullPath()).
		Msg("unhandled error")
	Internal(c, "internal_error", "Error interno del servidor")
}
