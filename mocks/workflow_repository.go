package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pimcore/admin-ui-classic-bundle-sub003/models"
	"github.com/pimcore/admin-ui-classic-bundle-sub003/repositories"
)

type WorkflowRepository struct {
	mock.Mock
}

func (r *WorkflowRepository) ListPlaces(
	ctx context.Context,
	exec repositories.Executor,
	elementId int64,
	elementType models.ElementType,
) ([]models.WorkflowPlace, error) {
	args := r.Called(ctx, exec, elementId, elementType)
	return args.Get(0).([]models.WorkflowPlace), args.Error(1)
}
