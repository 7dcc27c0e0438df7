package grid

import (
	"testing"

	"github.com/guregu/null/v5"
	"github.com/stretchr/testify/assert"

	"github.com/pimcore/admin-ui-classic-bundle-sub003/models"
)

func teststoreSpec(keyId int64) models.ColumnSpec {
	return models.ColumnSpec{
		Key:       "teststore",
		FieldType: models.FieldTypeClassificationStore,
		GroupId:   null.IntFrom(1),
		KeyId:     null.IntFrom(keyId),
	}
}

func TestGridConfig_FeatureJoins(t *testing.T) {
	localized := teststoreSpec(3)
	localized.Localized = true
	fixedLocale := teststoreSpec(2)
	fixedLocale.Locale = "fr"

	config := GridConfig{
		Language: "de",
		Columns: []Node{
			NewValueNode("Name", models.ColumnSpec{Key: "name"}),
			NewValueNode("Key 1", teststoreSpec(1)),
			NewConcatenatorNode("Keys", " ",
				NewValueNode("", teststoreSpec(2)),
				NewValueNode("", teststoreSpec(1))),
			NewLocaleSwitchNode("Key 3", "fr", NewValueNode("", localized)),
			NewValueNode("Key 3 de", localized),
			NewLocaleSwitchNode("Key 1 fr", "fr", NewValueNode("", teststoreSpec(1))),
			NewValueNode("Key 2 fr", fixedLocale),
		},
	}

	assert.Equal(t, []models.FeatureJoin{
		{Fieldname: "teststore", GroupId: 1, KeyId: 1, Language: "default"},
		{Fieldname: "teststore", GroupId: 1, KeyId: 2, Language: "default"},
		{Fieldname: "teststore", GroupId: 1, KeyId: 3, Language: "fr", LocaleScoped: true},
		{Fieldname: "teststore", GroupId: 1, KeyId: 3, Language: "de"},
		{Fieldname: "teststore", GroupId: 1, KeyId: 2, Language: "fr", LocaleScoped: true},
	}, config.FeatureJoins())
	assert.Equal(t, "cskey_teststore_1_3_fr", config.FeatureJoins()[2].Alias())
	assert.Equal(t, "cskey_teststore_1_3", config.FeatureJoins()[3].Alias())
}

func TestGridConfig_LocalizedFieldJoins(t *testing.T) {
	name := models.ColumnSpec{Key: "name", Localized: true}
	config := GridConfig{
		Language: "en",
		Columns: []Node{
			NewValueNode("Name", name),
			NewLocaleSwitchNode("Name (de)", "de", NewValueNode("", name)),
			NewLocaleSwitchNode("Name (en)", "en", NewValueNode("", name)),
			NewLocaleSwitchNode("Sku", "de", NewValueNode("", models.ColumnSpec{Key: "sku"})),
			NewValueNode("Description (fr)", models.ColumnSpec{Key: "description", Locale: "fr"}),
			NewPassThroughNode("Again", NewLocaleSwitchNode("", "fr",
				NewLocaleSwitchNode("", "de", NewValueNode("", name)))),
		},
	}

	assert.Equal(t, []models.LocalizedFieldJoin{
		{Fieldname: "name", Language: "de"},
		{Fieldname: "description", Language: "fr"},
	}, config.LocalizedFieldJoins())

	config.Language = ""
	assert.Equal(t, []models.LocalizedFieldJoin{
		{Fieldname: "name", Language: "de"},
		{Fieldname: "name", Language: "en"},
		{Fieldname: "description", Language: "fr"},
	}, config.LocalizedFieldJoins())
}

func TestNode_FirstValueLeafWithLocale(t *testing.T) {
	name := models.ColumnSpec{Key: "name", Localized: true}

	spec, locale, ok := NewPassThroughNode("", NewLocaleSwitchNode("", "de", NewValueNode("", name))).
		FirstValueLeafWithLocale()
	assert.True(t, ok)
	assert.Equal(t, name, spec)
	assert.Equal(t, "de", locale)

	_, locale, ok = NewValueNode("", name).FirstValueLeafWithLocale()
	assert.True(t, ok)
	assert.Equal(t, "", locale)

	_, _, ok = NewLocaleSwitchNode("", "de", NewTextNode("", "x")).FirstValueLeafWithLocale()
	assert.False(t, ok)
}

func TestGridConfig_SlugJoins(t *testing.T) {
	config := GridConfig{
		Language: "en",
		Columns: []Node{
			NewValueNode("Slug", models.ColumnSpec{Key: "urlslug", FieldType: models.FieldTypeSlug, Localized: true}),
			NewValueNode("Slug fr", models.ColumnSpec{Key: "urlslug", FieldType: models.FieldTypeSlug, Locale: "fr"}),
			NewValueNode("Shop slug", models.ColumnSpec{Key: "shopslug", FieldType: models.FieldTypeSlug}),
			NewValueNode("Slug again", models.ColumnSpec{Key: "urlslug", FieldType: models.FieldTypeSlug, Localized: true}),
			NewLocaleSwitchNode("Slug de", "de",
				NewValueNode("", models.ColumnSpec{Key: "urlslug", FieldType: models.FieldTypeSlug, Localized: true})),
		},
	}

	assert.Equal(t, []models.SlugJoin{
		{Fieldname: "urlslug", Language: "en"},
		{Fieldname: "urlslug", Language: "fr"},
		{Fieldname: "shopslug", Language: "default"},
		{Fieldname: "urlslug", Language: "de"},
	}, config.SlugJoins())
}

func TestGridConfig_Validate(t *testing.T) {
	tests := []struct {
		name  string
		node  Node
		valid bool
	}{
		{"value", NewValueNode("Name", models.ColumnSpec{Key: "name"}), true},
		{"nested", NewPassThroughNode("Alias", NewLocaleSwitchNode("", "de", NewValueNode("", models.ColumnSpec{Key: "name"}))), true},
		{"undefined operator", Node{Label: "broken"}, false},
		{"value with children", NewValueNode("Name", models.ColumnSpec{Key: "name"}).AddChild(NewTextNode("", "x")), false},
		{"value without key", NewValueNode("Name", models.ColumnSpec{}), false},
		{"half coordinate", NewValueNode("Key", models.ColumnSpec{Key: "teststore", GroupId: null.IntFrom(1)}), false},
		{"locale switch without locale", NewLocaleSwitchNode("Switch", ""), false},
		{"negative substring", NewSubstringNode("Sub", -1, 2, false), false},
		{"invalid nested child", NewPassThroughNode("Alias", Node{Operator: Operator(99)}), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := GridConfig{Columns: []Node{tt.node}}.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, models.ErrConfiguration)
			}
		})
	}
}

func TestOperatorFromName(t *testing.T) {
	assert.Equal(t, OPERATOR_PASS_THROUGH, OperatorFromName("alias"))
	assert.Equal(t, OPERATOR_LOCALE_SWITCH, OperatorFromName("localeswitch"))
	assert.Equal(t, OPERATOR_WORKFLOW_STATE, OperatorFromName("workflowstate"))
	assert.Equal(t, OPERATOR_UNDEFINED, OperatorFromName("anagram"))
	assert.Equal(t, OPERATOR_UNDEFINED, OperatorFromName(""))
}
