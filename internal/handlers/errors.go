package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"evently/internal/helpers"
	"evently/internal/models"
)

// respondWriteError maps a rejected create/update to an HTTP response:
// validation and normalization failures are 400, a missing referenced
// event is 404, a unique-index conflict is 409 with conflictMessage.
func respondWriteError(c *gin.Context, err error, conflictMessage string) {
	var validationErrs models.ValidationErrors
	var normalizationErr *models.NormalizationError
	var referenceErr *models.ReferenceError

	switch {
	case errors.As(err, &validationErrs):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   http.StatusText(http.StatusBadRequest),
			"message": validationErrs.Error(),
			"fields":  validationErrs,
		})
	case errors.As(err, &normalizationErr):
		helpers.RespondWithError(c, http.StatusBadRequest, normalizationErr.Error())
	case errors.As(err, &referenceErr):
		helpers.RespondWithError(c, http.StatusNotFound, referenceErr.Error())
	case errors.Is(err, gorm.ErrDuplicatedKey):
		helpers.RespondWithError(c, http.StatusConflict, conflictMessage)
	default:
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to save record.")
	}
}
