package api

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/veriflow/kyc-backend/models"
	"github.com/veriflow/kyc-backend/utils"
)

// presentError maps domain sentinel errors to HTTP statuses and reports
// everything unexpected. Returns true if err was non-nil and a response was
// written.
func presentError(ctx context.Context, c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, models.BadParameterError):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, models.NotFoundError):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, models.ConflictError):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	case errors.Is(err, models.InvalidStateError):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	default:
		utils.LogAndReportSentryError(ctx, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
	}
	return true
}
