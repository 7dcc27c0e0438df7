package usecases

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/pimcore/admin-ui-classic-bundle-sub003/models"
	"github.com/pimcore/admin-ui-classic-bundle-sub003/repositories"
	"github.com/pimcore/admin-ui-classic-bundle-sub003/usecases/executor_factory"
)

type workflowPlaceReader interface {
	ListPlaces(ctx context.Context, exec repositories.Executor, elementId int64,
		elementType models.ElementType) ([]models.WorkflowPlace, error)
}

// WorkflowStatusUsecase summarizes the workflow places an element holds. Both renderings read
// the same places.
type WorkflowStatusUsecase struct {
	executorFactory executor_factory.ExecutorFactory
	repository      workflowPlaceReader
}

func NewWorkflowStatusUsecase(
	executorFactory executor_factory.ExecutorFactory,
	repository workflowPlaceReader,
) WorkflowStatusUsecase {
	return WorkflowStatusUsecase{
		executorFactory: executorFactory,
		repository:      repository,
	}
}

func (usecase WorkflowStatusUsecase) AllStatusesHtml(ctx context.Context, element models.Element) (string, error) {
	places, err := usecase.listPlaces(ctx, element)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, place := range places {
		style := ""
		if place.Color != "" {
			style = fmt.Sprintf(` style="background-color: %s"`, html.EscapeString(place.Color))
		}
		fmt.Fprintf(&sb,
			`<div class="workflow-state"><span class="workflow-label">%s:</span> <span class="workflow-place"%s>%s</span></div>`,
			html.EscapeString(place.WorkflowLabel), style, html.EscapeString(place.PlaceLabel))
	}
	return sb.String(), nil
}

func (usecase WorkflowStatusUsecase) AllStatusesPlain(ctx context.Context, element models.Element) (string, error) {
	places, err := usecase.listPlaces(ctx, element)
	if err != nil {
		return "", err
	}

	statuses := make([]string, len(places))
	for i, place := range places {
		statuses[i] = place.WorkflowLabel + ": " + place.PlaceLabel
	}
	return strings.Join(statuses, ", "), nil
}

func (usecase WorkflowStatusUsecase) listPlaces(ctx context.Context, element models.Element) ([]models.WorkflowPlace, error) {
	if element == nil {
		return nil, nil
	}
	places, err := usecase.repository.ListPlaces(ctx, usecase.executorFactory.NewExecutor(),
		element.Id(), element.Type())
	if err != nil {
		return nil, errors.Wrapf(err, "error listing workflow places of %s %d", element.Type(), element.Id())
	}
	return places, nil
}
