package grid_eval

import (
	"context"

	"github.com/pimcore/admin-ui-classic-bundle-sub003/models"
	"github.com/pimcore/admin-ui-classic-bundle-sub003/models/grid"
)

// evaluatePassThrough relabels the value of the first child.
func evaluatePassThrough(
	ctx context.Context,
	env EvaluationEnvironment,
	node grid.Node,
	element models.Element,
) (*models.ResultContainer, error) {
	if len(node.Children) == 0 {
		return models.NewResultContainer(node.Label, nil), nil
	}

	child, err := EvaluateNode(ctx, env, node.Children[0], element)
	if err != nil {
		return nil, err
	}
	return models.NewResultContainer(node.Label, childValue(child)), nil
}
