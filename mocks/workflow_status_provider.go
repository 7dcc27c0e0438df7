package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pimcore/admin-ui-classic-bundle-sub003/models"
)

type WorkflowStatusProvider struct {
	mock.Mock
}

func (p *WorkflowStatusProvider) AllStatusesHtml(ctx context.Context, element models.Element) (string, error) {
	args := p.Called(ctx, element)
	return args.String(0), args.Error(1)
}

func (p *WorkflowStatusProvider) AllStatusesPlain(ctx context.Context, element models.Element) (string, error) {
	args := p.Called(ctx, element)
	return args.String(0), args.Error(1)
}
