package repositories

import (
	"testing"

	"github.com/guregu/null/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pimcore/admin-ui-classic-bundle-sub003/models"
	"github.com/pimcore/admin-ui-classic-bundle-sub003/models/grid"
)

func TestFeatureFilterCondition(t *testing.T) {
	tests := []struct {
		name     string
		operator models.FilterOperator
		value    any
		expected string
	}{
		{"like", models.FilterOperatorLike, "t", "cskey_teststore_1_1 LIKE '%t%'"},
		{"like quotes", models.FilterOperatorLike, "O'Neil", "cskey_teststore_1_1 LIKE '%O''Neil%'"},
		{"like wildcards are literal", models.FilterOperatorLike, "100%_off", `cskey_teststore_1_1 LIKE '%100\%\_off%'`},
		{"like backslash", models.FilterOperatorLike, `a\b`, `cskey_teststore_1_1 LIKE '%a\\b%'`},
		{"equal string", models.FilterOperatorEqual, "red", "cskey_teststore_1_1 = 'red'"},
		{"greater int", models.FilterOperatorGreater, 5, "cskey_teststore_1_1 > 5"},
		{"lower float", models.FilterOperatorLessEq, 2.5, "cskey_teststore_1_1 <= 2.5"},
		{"bool", models.FilterOperatorNotEqual, true, "cskey_teststore_1_1 != 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			condition, err := FeatureFilterCondition("cskey_teststore_1_1", tt.operator, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, condition)
		})
	}
}

func TestFeatureFilterCondition_errors(t *testing.T) {
	_, err := FeatureFilterCondition("cskey teststore", models.FilterOperatorLike, "t")
	assert.ErrorIs(t, err, models.ErrConfiguration)

	_, err = FeatureFilterCondition("cskey_teststore_1_1", models.FilterOperatorEqual, []string{"a"})
	assert.ErrorIs(t, err, models.ErrConfiguration)
}

func TestSlugFilterCondition(t *testing.T) {
	condition, err := SlugFilterCondition("slug_urlslug_en", "/Summer Sale/Tops")
	require.NoError(t, err)
	assert.Equal(t, "slug_urlslug_en LIKE '%/summer-sale/tops%'", condition)

	_, err = SlugFilterCondition("slug-urlslug", "x")
	assert.ErrorIs(t, err, models.ErrConfiguration)
}

func testGridConfig() grid.GridConfig {
	return grid.GridConfig{
		Name:     "products",
		ClassId:  "AP",
		Language: "en",
		Columns: []grid.Node{
			grid.NewValueNode("Name", models.ColumnSpec{Key: "name", Localized: true}),
			grid.NewValueNode("Color", models.ColumnSpec{
				Key:       "teststore",
				FieldType: models.FieldTypeClassificationStore,
				GroupId:   null.IntFrom(1),
				KeyId:     null.IntFrom(1),
			}),
			grid.NewPassThroughNode("Slug",
				grid.NewValueNode("", models.ColumnSpec{Key: "urlslug", FieldType: models.FieldTypeSlug, Localized: true})),
			grid.NewTextNode("Note", "static"),
			grid.NewValueNode("Price", models.ColumnSpec{Key: "price"}),
		},
	}
}

func TestCompileGridFilters(t *testing.T) {
	listing := NewListing("AP", "en")
	conditions, err := CompileGridFilters(listing, testGridConfig(), []models.GridFilter{
		{Column: 1, Operator: models.FilterOperatorLike, Value: "t"},
		{Column: 2, Operator: models.FilterOperatorLike, Value: "Summer"},
		{Column: 0, Operator: models.FilterOperatorLike, Value: "Hose"},
		{Column: 4, Operator: models.FilterOperatorGreater, Value: 10},
		{Column: 1, Operator: models.FilterOperatorNotEqual, Value: "tea"},
	})
	require.NoError(t, err)

	assert.Equal(t, models.FilterConditions{
		"cskey_teststore_1_1": "cskey_teststore_1_1 LIKE '%t%' AND cskey_teststore_1_1 != 'tea'",
		"slug_urlslug_en":     "slug_urlslug_en LIKE '%summer%'",
	}, conditions)

	qb, err := listing.NewQueryBuilder()
	require.NoError(t, err)
	sql, args, err := qb.ToSql()
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT object_localized_AP_en.* FROM object_localized_AP_en "+
			"WHERE object_localized_AP_en.name LIKE $1 AND object_localized_AP_en.price > $2",
		sql)
	assert.Equal(t, []any{"%Hose%", 10}, args)
}

func TestCompileGridFilters_errors(t *testing.T) {
	tests := []struct {
		name   string
		filter models.GridFilter
	}{
		{"unknown column", models.GridFilter{Column: 9, Operator: models.FilterOperatorLike, Value: "x"}},
		{"negative column", models.GridFilter{Column: -1, Operator: models.FilterOperatorLike, Value: "x"}},
		{"column without field", models.GridFilter{Column: 3, Operator: models.FilterOperatorLike, Value: "x"}},
		{"unknown operator", models.GridFilter{Column: 0, Operator: "~", Value: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CompileGridFilters(NewListing("AP", "en"), testGridConfig(), []models.GridFilter{tt.filter})
			assert.ErrorIs(t, err, models.ErrConfiguration)
		})
	}
}

func TestCompileGridFilters_feedsJoinCompilers(t *testing.T) {
	config := testGridConfig()
	listing := NewListing("AP", "en")
	classDefinition := &models.ClassDefinition{Id: "AP", Name: "Product"}

	conditions, err := CompileGridFilters(listing, config, []models.GridFilter{
		{Column: 1, Operator: models.FilterOperatorLike, Value: "t"},
		{Column: 2, Operator: models.FilterOperatorLike, Value: "summer"},
	})
	require.NoError(t, err)
	require.NoError(t, AddGridFeatureJoins(listing, config.FeatureJoins(), classDefinition, conditions))
	require.NoError(t, AddSlugJoins(listing, config.SlugJoins(), classDefinition, conditions))

	qb, err := listing.NewQueryBuilder()
	require.NoError(t, err)
	assert.Equal(t, "cskey_teststore_1_1 LIKE '%t%' AND slug_urlslug_en LIKE '%summer%'", qb.Having())
	assert.Equal(t, []string{
		"cskey_teststore_1_1.value AS cskey_teststore_1_1",
		"slug_urlslug_en.slug AS slug_urlslug_en",
	}, qb.Selects())
}

func TestCompileGridFilters_likeWildcardsAreLiteral(t *testing.T) {
	listing := NewListing("AP", "en")
	_, err := CompileGridFilters(listing, testGridConfig(), []models.GridFilter{
		{Column: 0, Operator: models.FilterOperatorLike, Value: "%"},
		{Column: 4, Operator: models.FilterOperatorLike, Value: "1_0"},
	})
	require.NoError(t, err)

	qb, err := listing.NewQueryBuilder()
	require.NoError(t, err)
	_, args, err := qb.ToSql()
	require.NoError(t, err)
	assert.Equal(t, []any{`%\%%`, `%1\_0%`}, args)
}

func TestCompileGridFilters_localeSwitchColumns(t *testing.T) {
	teststore := models.ColumnSpec{
		Key:       "teststore",
		FieldType: models.FieldTypeClassificationStore,
		GroupId:   null.IntFrom(1),
		KeyId:     null.IntFrom(1),
		Localized: true,
	}
	config := grid.GridConfig{
		ClassId:  "AP",
		Language: "en",
		Columns: []grid.Node{
			grid.NewLocaleSwitchNode("Name (de)", "de", grid.NewValueNode("", models.ColumnSpec{Key: "name", Localized: true})),
			grid.NewLocaleSwitchNode("Color (de)", "de", grid.NewValueNode("", teststore)),
			grid.NewLocaleSwitchNode("Slug (de)", "de",
				grid.NewValueNode("", models.ColumnSpec{Key: "urlslug", FieldType: models.FieldTypeSlug, Localized: true})),
		},
	}
	listing := NewListing("AP", "en")

	conditions, err := CompileGridFilters(listing, config, []models.GridFilter{
		{Column: 0, Operator: models.FilterOperatorLike, Value: "Hose"},
		{Column: 1, Operator: models.FilterOperatorEqual, Value: "blau"},
		{Column: 2, Operator: models.FilterOperatorLike, Value: "hose"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.FilterConditions{
		"cskey_teststore_1_1_de": "cskey_teststore_1_1_de = 'blau'",
		"slug_urlslug_de":        "slug_urlslug_de LIKE '%hose%'",
	}, conditions)

	classDefinition := &models.ClassDefinition{Id: "AP", Name: "Product"}
	require.NoError(t, AddGridFeatureJoins(listing, config.FeatureJoins(), classDefinition, conditions))
	require.NoError(t, AddLocalizedFieldJoins(listing, config.LocalizedFieldJoins(), classDefinition))

	qb, err := listing.NewQueryBuilder()
	require.NoError(t, err)
	sql, args, err := qb.ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "WHERE localized_de.name LIKE $1")
	assert.Contains(t, sql, "cskey_teststore_1_1_de.language = 'de'")
	assert.Equal(t, "cskey_teststore_1_1_de = 'blau'", qb.Having())
	assert.Equal(t, []any{"%Hose%"}, args)
}
