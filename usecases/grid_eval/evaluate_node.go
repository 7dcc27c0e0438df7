package grid_eval

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/pimcore/admin-ui-classic-bundle-sub003/models"
	"github.com/pimcore/admin-ui-classic-bundle-sub003/models/grid"
)

// EvaluateNode computes the labelled value of node for element. Each operator evaluates
// its own children, depth first.
func EvaluateNode(
	ctx context.Context,
	env EvaluationEnvironment,
	node grid.Node,
	element models.Element,
) (*models.ResultContainer, error) {
	env = env.withAmbientLocale()
	var (
		result *models.ResultContainer
		err    error
	)

	switch node.Operator {
	case grid.OPERATOR_VALUE:
		result, err = evaluateValue(ctx, env, node, element)
	case grid.OPERATOR_PASS_THROUGH:
		result, err = evaluatePassThrough(ctx, env, node, element)
	case grid.OPERATOR_LOCALE_SWITCH:
		result, err = evaluateLocaleSwitch(ctx, env, node, element)
	case grid.OPERATOR_WORKFLOW_STATE:
		result, err = evaluateWorkflowState(ctx, env, node, element)
	case grid.OPERATOR_TEXT:
		result = models.NewResultContainer(node.Label, node.Config.Text)
	case grid.OPERATOR_CONCATENATOR:
		result, err = evaluateConcatenator(ctx, env, node, element)
	case grid.OPERATOR_CASE_CONVERTER:
		result, err = evaluateCaseConverter(ctx, env, node, element)
	case grid.OPERATOR_TRIMMER:
		result, err = evaluateTrimmer(ctx, env, node, element)
	case grid.OPERATOR_SUBSTRING:
		result, err = evaluateSubstring(ctx, env, node, element)
	default:
		return nil, errors.Wrap(models.ErrUndefinedOperator, node.DebugString())
	}

	if err != nil {
		return nil, errors.Wrapf(err, "error evaluating %s", node.DebugString())
	}
	return result, nil
}

// EvaluateColumns evaluates every column of config for one element, in column order.
func EvaluateColumns(
	ctx context.Context,
	env EvaluationEnvironment,
	config grid.GridConfig,
	element models.Element,
) ([]*models.ResultContainer, error) {
	env = env.withAmbientLocale()
	cells := make([]*models.ResultContainer, len(config.Columns))
	for i, column := range config.Columns {
		cell, err := EvaluateNode(ctx, env, column, element)
		if err != nil {
			return nil, err
		}
		if cell == nil {
			cell = models.NewResultContainer(column.Label, nil)
		}
		cells[i] = cell
	}
	return cells, nil
}

func evaluateChildren(
	ctx context.Context,
	env EvaluationEnvironment,
	node grid.Node,
	element models.Element,
) ([]*models.ResultContainer, error) {
	results := make([]*models.ResultContainer, 0, len(node.Children))
	for _, child := range node.Children {
		result, err := EvaluateNode(ctx, env, child, element)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

func childValue(result *models.ResultContainer) any {
	if result == nil {
		return nil
	}
	return result.Value
}
