package grid_eval

import (
	"context"

	"github.com/pimcore/admin-ui-classic-bundle-sub003/models"
	"github.com/pimcore/admin-ui-classic-bundle-sub003/models/grid"
)

func evaluateValue(
	ctx context.Context,
	env EvaluationEnvironment,
	node grid.Node,
	element models.Element,
) (*models.ResultContainer, error) {
	value, err := ResolveValue(ctx, env, node.Config.Column, element)
	if err != nil {
		return nil, err
	}

	label := node.Label
	if label == "" {
		label = node.Config.Column.Key
	}
	return models.NewResultContainer(label, value), nil
}
