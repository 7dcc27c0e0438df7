package grid_eval

import (
	"context"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pimcore/admin-ui-classic-bundle-sub003/models"
	"github.com/pimcore/admin-ui-classic-bundle-sub003/models/grid"
)

const substringEllipses = "..."

func evaluateConcatenator(
	ctx context.Context,
	env EvaluationEnvironment,
	node grid.Node,
	element models.Element,
) (*models.ResultContainer, error) {
	children, err := evaluateChildren(ctx, env, node, element)
	if err != nil {
		return nil, err
	}

	parts := make([]string, 0, len(children))
	for _, child := range children {
		if s := models.CellValue(childValue(child)); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return models.NewResultContainer(node.Label, nil), nil
	}
	return models.NewResultContainer(node.Label, strings.Join(parts, node.Config.Glue)), nil
}

func evaluateCaseConverter(
	ctx context.Context,
	env EvaluationEnvironment,
	node grid.Node,
	element models.Element,
) (*models.ResultContainer, error) {
	tag := localeTag(env.Locale.Locale())

	var caser cases.Caser
	switch node.Config.CaseMode {
	case grid.CASE_LOWER:
		caser = cases.Lower(tag)
	case grid.CASE_TITLE:
		caser = cases.Title(tag)
	default:
		caser = cases.Upper(tag)
	}

	return transformChildren(ctx, env, node, element, caser.String)
}

func evaluateTrimmer(
	ctx context.Context,
	env EvaluationEnvironment,
	node grid.Node,
	element models.Element,
) (*models.ResultContainer, error) {
	trim := strings.TrimSpace
	switch node.Config.TrimMode {
	case grid.TRIM_LEFT:
		trim = func(s string) string { return strings.TrimLeft(s, " \t\r\n") }
	case grid.TRIM_RIGHT:
		trim = func(s string) string { return strings.TrimRight(s, " \t\r\n") }
	}
	return transformChildren(ctx, env, node, element, trim)
}

func evaluateSubstring(
	ctx context.Context,
	env EvaluationEnvironment,
	node grid.Node,
	element models.Element,
) (*models.ResultContainer, error) {
	start, length, ellipses := node.Config.Start, node.Config.Length, node.Config.Ellipses
	return transformChildren(ctx, env, node, element, func(s string) string {
		return substring(s, start, length, ellipses)
	})
}

// substring works on runes. A zero length keeps everything after start.
func substring(s string, start int, length int, ellipses bool) string {
	if start >= utf8.RuneCountInString(s) {
		return ""
	}
	runes := []rune(s)[start:]
	if length <= 0 || length >= len(runes) {
		return string(runes)
	}
	out := string(runes[:length])
	if ellipses {
		out += substringEllipses
	}
	return out
}

// transformChildren applies fn to the string value of each child. A single child keeps a
// scalar value, several children produce a list.
func transformChildren(
	ctx context.Context,
	env EvaluationEnvironment,
	node grid.Node,
	element models.Element,
	fn func(string) string,
) (*models.ResultContainer, error) {
	children, err := evaluateChildren(ctx, env, node, element)
	if err != nil {
		return nil, err
	}

	switch len(children) {
	case 0:
		return models.NewResultContainer(node.Label, nil), nil
	case 1:
		return models.NewResultContainer(node.Label, transformValue(childValue(children[0]), fn)), nil
	}

	values := make([]any, len(children))
	for i, child := range children {
		values[i] = transformValue(childValue(child), fn)
	}
	return models.NewResultContainer(node.Label, values), nil
}

func transformValue(value any, fn func(string) string) any {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		return fn(v)
	case *models.ResultContainer:
		if v == nil {
			return nil
		}
		return transformValue(v.Value, fn)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = transformValue(item, fn)
		}
		return out
	default:
		return fn(models.CellValue(v))
	}
}

func localeTag(locale string) language.Tag {
	if locale == "" || locale == models.DefaultLanguage {
		return language.Und
	}
	return language.Make(locale)
}
