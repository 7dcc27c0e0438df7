package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pimcore/admin-ui-classic-bundle-sub003/models"
	"github.com/pimcore/admin-ui-classic-bundle-sub003/repositories"
)

type ElementListingRepository struct {
	mock.Mock
}

func (r *ElementListingRepository) ListRows(
	ctx context.Context,
	exec repositories.Executor,
	listing *repositories.Listing,
) ([]models.RowElement, error) {
	args := r.Called(ctx, exec, listing)
	return args.Get(0).([]models.RowElement), args.Error(1)
}
