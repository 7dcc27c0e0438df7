package grid

import (
	"github.com/hashicorp/go-set/v2"

	"github.com/pimcore/admin-ui-classic-bundle-sub003/models"
)

// GridConfig is an ordered set of columns, each one the root of an operator tree.
type GridConfig struct {
	Name     string
	ClassId  string
	Language string
	Columns  []Node
}

func (config GridConfig) Labels() []string {
	labels := make([]string, len(config.Columns))
	for i, column := range config.Columns {
		labels[i] = column.Label
	}
	return labels
}

// ColumnLanguage is the language a value leaf is stored under in joined tables.
func (config GridConfig) ColumnLanguage(spec models.ColumnSpec) string {
	switch {
	case spec.Locale != "":
		return spec.Locale
	case spec.Localized && config.Language != "":
		return config.Language
	default:
		return models.DefaultLanguage
	}
}

// LeafLanguage is the language a value leaf is read in when it sits below a locale switch
// to switchLocale. An empty switchLocale means no switch.
func (config GridConfig) LeafLanguage(spec models.ColumnSpec, switchLocale string) string {
	if spec.Locale == "" && spec.Localized && switchLocale != "" {
		return switchLocale
	}
	return config.ColumnLanguage(spec)
}

// FeatureJoin is the join reading a classification store leaf. Leaves read in another
// language than the one of the listing get a locale scoped join.
func (config GridConfig) FeatureJoin(spec models.ColumnSpec, switchLocale string) models.FeatureJoin {
	language := config.LeafLanguage(spec, switchLocale)
	return models.FeatureJoin{
		Fieldname:    spec.Key,
		GroupId:      spec.GroupId.Int64,
		KeyId:        spec.KeyId.Int64,
		Language:     language,
		LocaleScoped: language != config.ColumnLanguage(models.ColumnSpec{Localized: spec.Localized}),
	}
}

func (config GridConfig) SlugJoin(spec models.ColumnSpec, switchLocale string) models.SlugJoin {
	return models.SlugJoin{Fieldname: spec.Key, Language: config.LeafLanguage(spec, switchLocale)}
}

type valueLeaf struct {
	spec         models.ColumnSpec
	switchLocale string
}

func (config GridConfig) valueLeaves() []valueLeaf {
	var leaves []valueLeaf
	for _, column := range config.Columns {
		leaves = collectValueLeaves(column, "", leaves)
	}
	return leaves
}

func collectValueLeaves(node Node, switchLocale string, leaves []valueLeaf) []valueLeaf {
	switch node.Operator {
	case OPERATOR_VALUE:
		return append(leaves, valueLeaf{spec: node.Config.Column, switchLocale: switchLocale})
	case OPERATOR_LOCALE_SWITCH:
		switchLocale = node.Config.Locale
	}
	for _, child := range node.Children {
		leaves = collectValueLeaves(child, switchLocale, leaves)
	}
	return leaves
}

// FeatureJoins lists the classification store keys read by the config, in column order,
// each coordinate and language once.
func (config GridConfig) FeatureJoins() []models.FeatureJoin {
	seen := set.New[string](0)
	joins := make([]models.FeatureJoin, 0)
	for _, leaf := range config.valueLeaves() {
		if !leaf.spec.IsClassificationStoreKey() {
			continue
		}
		join := config.FeatureJoin(leaf.spec, leaf.switchLocale)
		if seen.Insert(join.Alias()) {
			joins = append(joins, join)
		}
	}
	return joins
}

// SlugJoins lists the url slug fields read by the config, in column order.
func (config GridConfig) SlugJoins() []models.SlugJoin {
	seen := set.New[string](0)
	joins := make([]models.SlugJoin, 0)
	for _, leaf := range config.valueLeaves() {
		if leaf.spec.FieldType != models.FieldTypeSlug {
			continue
		}
		join := config.SlugJoin(leaf.spec, leaf.switchLocale)
		if seen.Insert(join.Alias()) {
			joins = append(joins, join)
		}
	}
	return joins
}

// LocalizedFieldJoins lists the localized fields read in a language the listing table does
// not hold, in column order.
func (config GridConfig) LocalizedFieldJoins() []models.LocalizedFieldJoin {
	seen := set.New[string](0)
	joins := make([]models.LocalizedFieldJoin, 0)
	for _, leaf := range config.valueLeaves() {
		join, ok := config.LocalizedFieldJoin(leaf.spec, leaf.switchLocale)
		if ok && seen.Insert(join.Alias()) {
			joins = append(joins, join)
		}
	}
	return joins
}

// LocalizedFieldJoin reports whether a plain field leaf is read from the localized table of
// another language than the listing's, and which.
func (config GridConfig) LocalizedFieldJoin(spec models.ColumnSpec, switchLocale string) (models.LocalizedFieldJoin, bool) {
	if spec.IsClassificationStoreKey() || spec.FieldType == models.FieldTypeSlug {
		return models.LocalizedFieldJoin{}, false
	}
	if !spec.Localized && spec.Locale == "" {
		return models.LocalizedFieldJoin{}, false
	}
	language := config.LeafLanguage(spec, switchLocale)
	if language == config.Language || language == models.DefaultLanguage {
		return models.LocalizedFieldJoin{}, false
	}
	return models.LocalizedFieldJoin{Fieldname: spec.Key, Language: language}, true
}

// Validate checks the structure of every tree: known operators, child counts and leaf specs.
func (node Node) Validate() error {
	attributes, err := node.Operator.Attributes()
	if err != nil || node.Operator == OPERATOR_UNDEFINED {
		return models.ConfigurationError("%s", node.DebugString())
	}
	if attributes.MaxChildren >= 0 && len(node.Children) > attributes.MaxChildren {
		return models.ConfigurationError("%s: at most %d children allowed",
			node.DebugString(), attributes.MaxChildren)
	}

	switch node.Operator {
	case OPERATOR_VALUE:
		if err := node.Config.Column.Validate(); err != nil {
			return err
		}
	case OPERATOR_LOCALE_SWITCH:
		if node.Config.Locale == "" {
			return models.ConfigurationError("%s: missing target locale", node.DebugString())
		}
	case OPERATOR_SUBSTRING:
		if node.Config.Start < 0 || node.Config.Length < 0 {
			return models.ConfigurationError("%s: negative bounds", node.DebugString())
		}
	}

	for _, child := range node.Children {
		if err := child.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (config GridConfig) Validate() error {
	for _, column := range config.Columns {
		if err := column.Validate(); err != nil {
			return err
		}
	}
	return nil
}
