package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pimcore/admin-ui-classic-bundle-sub003/dto"
	"github.com/pimcore/admin-ui-classic-bundle-sub003/models"
	"github.com/pimcore/admin-ui-classic-bundle-sub003/models/grid"
	"github.com/pimcore/admin-ui-classic-bundle-sub003/pure_utils"
	"github.com/pimcore/admin-ui-classic-bundle-sub003/usecases"
)

type listingRequestAdapter interface {
	AdaptListingRequest(ctx context.Context, input dto.GridRowsInput) (grid.ListingRequest, error)
}

type gridRowsUsecase interface {
	ListRows(ctx context.Context, request grid.ListingRequest) ([]models.GridRow, error)
	ExportListingCsv(ctx context.Context, w io.Writer, request grid.ListingRequest) error
}

type GridHandler struct {
	parser  listingRequestAdapter
	useCase gridRowsUsecase
}

func NewGridHandler(uc usecases.Usecases) GridHandler {
	return GridHandler{
		parser:  uc.NewGridConfigParser(),
		useCase: uc.NewGridUsecase(),
	}
}

func (h GridHandler) bindListingRequest(c *gin.Context) (grid.ListingRequest, error) {
	var input dto.GridRowsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		return grid.ListingRequest{}, models.ConfigurationError("invalid grid request body: %s", err.Error())
	}
	return h.parser.AdaptListingRequest(c.Request.Context(), input)
}

func (h GridHandler) ListRows(c *gin.Context) {
	ctx := c.Request.Context()

	request, err := h.bindListingRequest(c)
	if presentError(ctx, c, err) {
		return
	}

	rows, err := h.useCase.ListRows(ctx, request)
	if presentError(ctx, c, err) {
		return
	}

	c.JSON(http.StatusOK, dto.GridRowsResponse{
		Labels: request.Config.Labels(),
		Rows:   pure_utils.Map(rows, dto.AdaptGridRow),
	})
}

func (h GridHandler) ExportCsv(c *gin.Context) {
	ctx := c.Request.Context()

	request, err := h.bindListingRequest(c)
	if presentError(ctx, c, err) {
		return
	}

	var buf bytes.Buffer
	if presentError(ctx, c, h.useCase.ExportListingCsv(ctx, &buf, request)) {
		return
	}

	filename := request.Config.Name
	if filename == "" {
		filename = "export"
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.csv"`, filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
