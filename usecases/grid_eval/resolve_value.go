package grid_eval

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/pimcore/admin-ui-classic-bundle-sub003/models"
)

// ResolveValue reads the field described by spec from element. Localized fields are read in
// the column's own locale, or the ambient locale when the column has none. Relations are returned as
// models.RelationValue. An absent value resolves to nil without error.
func ResolveValue(
	ctx context.Context,
	env EvaluationEnvironment,
	spec models.ColumnSpec,
	element models.Element,
) (any, error) {
	if spec.Key == "" {
		return nil, models.ResolutionError("column spec has no key")
	}
	if spec.GroupId.Valid != spec.KeyId.Valid {
		return nil, models.ResolutionError("column %s: incomplete classification store coordinate", spec.Key)
	}
	if element == nil {
		return nil, models.ResolutionError("column %s: no element to read from", spec.Key)
	}

	locale := resolveLocale(env, spec)

	var (
		value any
		err   error
	)
	if spec.IsClassificationStoreKey() {
		store, ok := element.(models.ClassificationStoreElement)
		if !ok {
			return nil, models.ResolutionError("column %s: %s %d has no classification store",
				spec.Key, element.Type(), element.Id())
		}
		if locale == "" {
			locale = models.DefaultLanguage
		}
		value, err = store.GetClassificationStoreValue(spec.Key, spec.GroupId.Int64, spec.KeyId.Int64, locale)
	} else {
		value, err = element.GetAttribute(spec.Key, locale)
	}

	if errors.Is(err, models.ErrAttributeNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "error reading %s of %s %d", spec.Key, element.Type(), element.Id())
	}
	return adaptValue(value), nil
}

func resolveLocale(env EvaluationEnvironment, spec models.ColumnSpec) string {
	switch {
	case spec.Locale != "":
		return spec.Locale
	case spec.Localized && env.Locale != nil:
		return env.Locale.Locale()
	default:
		return ""
	}
}

func adaptValue(value any) any {
	switch v := value.(type) {
	case models.ElementDescriptor:
		return models.NewRelationValue(v)
	case []models.ElementDescriptor:
		relations := make([]models.RelationValue, len(v))
		for i, d := range v {
			relations[i] = models.NewRelationValue(d)
		}
		return relations
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = adaptValue(item)
		}
		return out
	default:
		return value
	}
}
