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
	ErrProductNotFound = errors.New("product not found")

	// ErrSlugTaken surfaces the UNIQUE constraint on products.slug.
	// The service folds it back into a field-level validation error, so a
	// racer losing the constraint check gets the same answer a pre-check
	// would have given.
	ErrSlugTaken = errors.New("slug already exists")

	// ErrSupplierMissing surfaces the supplier_id foreign key: the
	// referenced supplier does not exist (anymore) at write time.
	ErrSupplierMissing = errors.New("referenced supplier does not exist")
)

// FieldError builds a one-field validation.Errors map. Used by the service
// to attach relational failures (slug collision, unknown supplier) to the
// field that caused them.
func FieldError(field, code, message string) validation.Errors {
	return validation.Errors{field: validation.NewError(code, message)}
}

// HandleError maps product domain errors onto the shared response
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

	if errors.Is(err, ErrProductNotFound) {
		response.NotFound(c, "The specified product does not exist")
		return true
	}

	log.Error().
		Str("request_id", c.GetString("request_id")).
		Err(err).
		Msg("Product handler error")
	response.ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Internal server error")
	return true
}
