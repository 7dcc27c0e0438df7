package usecases

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/guregu/null/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pimcore/admin-ui-classic-bundle-sub003/dto"
	"github.com/pimcore/admin-ui-classic-bundle-sub003/models"
	"github.com/pimcore/admin-ui-classic-bundle-sub003/models/grid"
)

const productGridJson = `{
	"name": "products",
	"class_id": "AP",
	"language": "en",
	"columns": [
		{"label": "Name", "key": "name", "localized": true},
		{"label": "Color", "key": "teststore", "group_id": 1, "key_id": 1},
		{"operator": "localeswitch", "label": "Name (de)", "locale": "de", "children": [
			{"key": "name", "localized": true}
		]},
		{"operator": "caseconverter", "label": "SKU", "mode": "upper", "children": [
			{"operator": "trimmer", "mode": "left", "children": [{"key": "sku"}]}
		]},
		{"operator": "workflowstate", "label": "Workflow"},
		{"operator": "alias", "label": "Slug", "children": [
			{"key": "urlslug", "type": "urlSlug", "localized": true}
		]}
	]
}`

func newTestGridConfigParser(t *testing.T) *GridConfigParser {
	parser, err := NewGridConfigParser(4)
	require.NoError(t, err)
	return parser
}

func TestGridConfigParser_Parse(t *testing.T) {
	parser := newTestGridConfigParser(t)

	config, err := parser.Parse(context.Background(), []byte(productGridJson))
	require.NoError(t, err)

	assert.Equal(t, "products", config.Name)
	assert.Equal(t, "AP", config.ClassId)
	assert.Equal(t, "en", config.Language)
	assert.Equal(t, []string{"Name", "Color", "Name (de)", "SKU", "Workflow", "Slug"}, config.Labels())

	assert.Equal(t, grid.NewValueNode("Name", models.ColumnSpec{Key: "name", Localized: true}), config.Columns[0])
	assert.Equal(t, models.ColumnSpec{
		Key:       "teststore",
		FieldType: models.FieldTypeClassificationStore,
		GroupId:   null.IntFrom(1),
		KeyId:     null.IntFrom(1),
	}, config.Columns[1].Config.Column)

	localeSwitch := config.Columns[2]
	assert.Equal(t, grid.OPERATOR_LOCALE_SWITCH, localeSwitch.Operator)
	assert.Equal(t, "de", localeSwitch.Config.Locale)
	assert.Len(t, localeSwitch.Children, 1)

	caseConverter := config.Columns[3]
	assert.Equal(t, grid.CASE_UPPER, caseConverter.Config.CaseMode)
	assert.Equal(t, grid.TRIM_LEFT, caseConverter.Children[0].Config.TrimMode)

	assert.Equal(t, grid.OPERATOR_WORKFLOW_STATE, config.Columns[4].Operator)

	assert.Equal(t, []models.FeatureJoin{
		{Fieldname: "teststore", GroupId: 1, KeyId: 1, Language: "default"},
	}, config.FeatureJoins())
	assert.Equal(t, []models.SlugJoin{{Fieldname: "urlslug", Language: "en"}}, config.SlugJoins())
}

func TestGridConfigParser_Parse_cached(t *testing.T) {
	parser := newTestGridConfigParser(t)

	first, err := parser.Parse(context.Background(), []byte(productGridJson))
	require.NoError(t, err)
	second, err := parser.Parse(context.Background(), []byte(productGridJson))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, parser.cache.Len())
}

func TestGridConfigParser_Parse_errors(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"invalid json", `{"class_id": "AP", "columns": [`},
		{"missing class", `{"columns": [{"key": "name"}]}`},
		{"no columns", `{"class_id": "AP", "columns": []}`},
		{"invalid class id", `{"class_id": "AP'; --", "columns": [{"key": "name"}]}`},
		{"unknown operator", `{"class_id": "AP", "columns": [{"operator": "anagram"}]}`},
		{"value without key", `{"class_id": "AP", "columns": [{"label": "Name"}]}`},
		{"half coordinate", `{"class_id": "AP", "columns": [{"key": "teststore", "group_id": 1}]}`},
		{"classification store without coordinate", `{"class_id": "AP", "columns": [{"key": "teststore", "type": "classificationstore"}]}`},
		{"invalid locale", `{"class_id": "AP", "columns": [{"operator": "localeswitch", "locale": "not a locale", "children": [{"key": "name"}]}]}`},
		{"hyphenated locale", `{"class_id": "AP", "columns": [{"key": "name", "locale": "de-AT"}]}`},
		{"locale switch without locale", `{"class_id": "AP", "columns": [{"operator": "localeswitch", "children": [{"key": "name"}]}]}`},
		{"unknown case mode", `{"class_id": "AP", "columns": [{"operator": "caseconverter", "mode": "sponge", "children": [{"key": "name"}]}]}`},
		{"negative substring", `{"class_id": "AP", "columns": [{"operator": "substring", "start": -1, "children": [{"key": "name"}]}]}`},
		{"children on a leaf", `{"class_id": "AP", "columns": [{"key": "name", "children": [{"key": "sku"}]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := newTestGridConfigParser(t)
			_, err := parser.Parse(context.Background(), []byte(tt.json))
			assert.ErrorIs(t, err, models.ErrConfiguration)
			assert.ErrorIs(t, err, models.BadParameterError)
			assert.Equal(t, 0, parser.cache.Len())
		})
	}
}

func TestGridConfigParser_unknownOperator(t *testing.T) {
	parser := newTestGridConfigParser(t)
	_, err := parser.Parse(context.Background(),
		[]byte(`{"class_id": "AP", "columns": [{"operator": "alias", "children": [{"operator": "anagram"}]}]}`))
	assert.ErrorIs(t, err, models.ErrUndefinedOperator)
}

func TestGridConfigParser_AdaptListingRequest(t *testing.T) {
	parser := newTestGridConfigParser(t)
	input := dto.GridRowsInput{
		Config: json.RawMessage(`{"name": "products", "class_id": "AP", "columns": [
			{"label": "Name", "key": "name", "localized": true},
			{"label": "Color", "key": "teststore", "group_id": 1, "key_id": 1}
		]}`),
		Locale:  "de",
		Filters: []dto.GridFilterDto{{Column: 1, Operator: "eq", Value: "teal"}},
		OrderBy: []string{"o_id DESC"},
		Limit:   50,
		Offset:  100,
	}

	request, err := parser.AdaptListingRequest(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, "de", request.Locale)
	assert.Equal(t, []string{"Name", "Color"}, request.Config.Labels())
	assert.Equal(t, []models.GridFilter{
		{Column: 1, Operator: models.FilterOperatorEqual, Value: "teal"},
	}, request.Filters)
	assert.Equal(t, []string{"o_id DESC"}, request.OrderBy)
	assert.Equal(t, uint64(50), request.Limit)
	assert.Equal(t, uint64(100), request.Offset)
}

func TestGridConfigParser_AdaptListingRequest_usesCache(t *testing.T) {
	parser := newTestGridConfigParser(t)
	input := dto.GridRowsInput{Config: json.RawMessage(productGridJson)}

	first, err := parser.AdaptListingRequest(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, 1, parser.cache.Len())

	input.Locale = "de"
	second, err := parser.AdaptListingRequest(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, 1, parser.cache.Len())
	assert.Equal(t, first.Config, second.Config)

	cached, ok := parser.cache.Peek(configCacheKey([]byte(productGridJson)))
	require.True(t, ok)
	assert.Equal(t, first.Config, cached)
}

func TestGridConfigParser_AdaptListingRequest_errors(t *testing.T) {
	config := json.RawMessage(`{"class_id": "AP", "columns": [{"key": "name"}]}`)
	tests := []struct {
		name  string
		input dto.GridRowsInput
	}{
		{"unknown column", dto.GridRowsInput{Config: config, Filters: []dto.GridFilterDto{{Column: 1, Operator: "="}}}},
		{"negative column", dto.GridRowsInput{Config: config, Filters: []dto.GridFilterDto{{Column: -1, Operator: "="}}}},
		{"unknown operator", dto.GridRowsInput{Config: config, Filters: []dto.GridFilterDto{{Column: 0, Operator: "~"}}}},
		{"missing operator", dto.GridRowsInput{Config: config, Filters: []dto.GridFilterDto{{Column: 0}}}},
		{"limit too large", dto.GridRowsInput{Config: config, Limit: 5000}},
		{"invalid locale", dto.GridRowsInput{Config: config, Locale: "x y"}},
		{"invalid config", dto.GridRowsInput{Config: json.RawMessage(`{"class_id": "AP"}`)}},
		{"missing config", dto.GridRowsInput{}},
		{"malformed config", dto.GridRowsInput{Config: json.RawMessage(`{"class_id": `)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestGridConfigParser(t).AdaptListingRequest(context.Background(), tt.input)
			assert.ErrorIs(t, err, models.ErrConfiguration)
		})
	}
}
