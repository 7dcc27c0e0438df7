package api

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/pimcore/admin-ui-classic-bundle-sub003/dto"
	"github.com/pimcore/admin-ui-classic-bundle-sub003/models"
	"github.com/pimcore/admin-ui-classic-bundle-sub003/utils"
)

func presentError(ctx context.Context, c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	logger := utils.LoggerFromContext(ctx)
	errorResponse := dto.APIErrorResponse{Message: err.Error()}

	switch {
	case errors.Is(err, models.ErrConfiguration):
		errorResponse.ErrorCode = dto.InvalidGridConfiguration
		logger.InfoContext(ctx, "InvalidGridConfiguration: "+err.Error())
		c.JSON(http.StatusBadRequest, errorResponse)
	case errors.Is(err, models.BadParameterError):
		logger.InfoContext(ctx, "BadParameterError: "+err.Error())
		c.JSON(http.StatusBadRequest, errorResponse)
	case errors.Is(err, models.ErrResolution):
		errorResponse.ErrorCode = dto.ValueResolutionFailed
		logger.WarnContext(ctx, "ValueResolutionFailed: "+err.Error())
		c.JSON(http.StatusUnprocessableEntity, errorResponse)
	case errors.Is(err, models.NotFoundError):
		logger.InfoContext(ctx, "NotFoundError: "+err.Error())
		c.JSON(http.StatusNotFound, errorResponse)
	default:
		utils.ReportUnexpectedError(ctx, err, map[string]string{"route": c.FullPath()})
		c.JSON(http.StatusInternalServerError, dto.APIErrorResponse{
			Message: "An unexpected error occurred. Please try again later, or contact support if the problem persists.",
		})
	}
	return true
}
