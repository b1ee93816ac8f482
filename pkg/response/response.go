package response

import (
	"errors"
	"net/http"

	"donorhub-backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// errorBody is the JSON error shape: a human-readable message plus
// optional field-level detail.
type errorBody struct {
	Message string                 `json:"message"`
	Fields  []apperrors.FieldError `json:"fields,omitempty"`
}

// Error maps domain errors to HTTP status codes.
// ValidationError -> 400, NotFoundError -> 404, everything else -> 500.
func Error(c *gin.Context, err error) {
	var vErr *apperrors.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, errorBody{Message: vErr.Message, Fields: vErr.Fields})
		return
	}

	var nfErr *apperrors.NotFoundError
	if errors.As(err, &nfErr) {
		c.JSON(http.StatusNotFound, errorBody{Message: nfErr.Error()})
		return
	}

	c.JSON(http.StatusInternalServerError, errorBody{Message: "internal server error"})
}

// BadRequest sends a 400 with the given message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, errorBody{Message: message})
}

// Unauthorized sends a 401 with the given message.
func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, errorBody{Message: message})
}
