package grid_eval

import (
	"context"

	"github.com/pimcore/admin-ui-classic-bundle-sub003/models"
	"github.com/pimcore/admin-ui-classic-bundle-sub003/models/grid"
)

// evaluateLocaleSwitch evaluates the first child under the configured locale. Further
// children are ignored. The ambient locale is restored on every exit path, panics included.
func evaluateLocaleSwitch(
	ctx context.Context,
	env EvaluationEnvironment,
	node grid.Node,
	element models.Element,
) (*models.ResultContainer, error) {
	if len(node.Children) == 0 {
		return models.NewResultContainer(node.Label, nil), nil
	}

	restore := env.withLocale(node.Config.Locale)
	defer restore()

	return EvaluateNode(ctx, env, node.Children[0], element)
}
