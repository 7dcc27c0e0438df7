package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/pimcore/admin-ui-classic-bundle-sub003/models"
	"github.com/pimcore/admin-ui-classic-bundle-sub003/models/grid"
)

type GridUsecase struct {
	mock.Mock
}

func (u *GridUsecase) ListRows(ctx context.Context, request grid.ListingRequest) ([]models.GridRow, error) {
	args := u.Called(ctx, request)
	return args.Get(0).([]models.GridRow), args.Error(1)
}

func (u *GridUsecase) ExportListingCsv(ctx context.Context, w io.Writer, request grid.ListingRequest) error {
	args := u.Called(ctx, w, request)
	return args.Error(0)
}
