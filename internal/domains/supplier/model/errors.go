package model

import (
	"errors"
	"net/http"

	"catalog-backend/internal/shared/response"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var (
	ErrSupplierNotFound = errors.New("supplier not found")
	ErrDatabaseQuery    = errors.New("database query error")
)

// HandleError maps supplier domain errors onto the shared response
// envelope. Returns true when err was handled.
func HandleError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.UnprocessableEntity(c, "Validation failed", verrs)
		return true
	}

	if errors.Is(err, ErrSupplierNotFound) {
		response.NotFound(c, "The specified supplier does not exist")
		return true
	}

	log.Error().
		Str("request_id", c.GetString("request_id")).
		Err(err).
		Msg("Supplier handler error")
	response.ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Internal server error")
	return true
}
