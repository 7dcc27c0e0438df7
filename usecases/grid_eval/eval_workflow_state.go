package grid_eval

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/pimcore/admin-ui-classic-bundle-sub003/models"
	"github.com/pimcore/admin-ui-classic-bundle-sub003/models/grid"
)

// evaluateWorkflowState summarizes all workflow places of the element, as html for the
// interactive grid and as plain text otherwise.
func evaluateWorkflowState(
	ctx context.Context,
	env EvaluationEnvironment,
	node grid.Node,
	element models.Element,
) (*models.ResultContainer, error) {
	if env.WorkflowStatusProvider == nil {
		return nil, errors.Wrap(models.ErrConfiguration, "no workflow status provider in the evaluation environment")
	}

	var (
		summary string
		err     error
	)
	if env.Purpose == models.PurposeGridView {
		summary, err = env.WorkflowStatusProvider.AllStatusesHtml(ctx, element)
	} else {
		summary, err = env.WorkflowStatusProvider.AllStatusesPlain(ctx, element)
	}
	if err != nil {
		return nil, err
	}
	return models.NewResultContainer(node.Label, summary), nil
}
