package models

import (
	"regexp"
	"strconv"

	"github.com/guregu/null/v5"
)

type FieldType string

const (
	FieldTypeDefault             FieldType = ""
	FieldTypeClassificationStore FieldType = "classificationstore"
	FieldTypeSlug                FieldType = "urlSlug"
	FieldTypeRelation            FieldType = "manyToOneRelation"
)

const DefaultLanguage = "default"

var identifierRegexp = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// IsValidIdentifier reports whether s can be spliced into a table name or an alias.
func IsValidIdentifier(s string) bool {
	return identifierRegexp.MatchString(s)
}

// ColumnSpec identifies the field a grid column reads. GroupId and KeyId form the
// classification store coordinate and are either both set or both null.
type ColumnSpec struct {
	Key       string
	FieldType FieldType
	GroupId   null.Int
	KeyId     null.Int
	Locale    string
	Localized bool
}

func (spec ColumnSpec) IsClassificationStoreKey() bool {
	return spec.GroupId.Valid && spec.KeyId.Valid
}

func (spec ColumnSpec) Validate() error {
	if spec.Key == "" {
		return ConfigurationError("column spec has no key")
	}
	if spec.GroupId.Valid != spec.KeyId.Valid {
		return ConfigurationError("column %s: groupId and keyId must be set together", spec.Key)
	}
	if spec.FieldType == FieldTypeClassificationStore && !spec.IsClassificationStoreKey() {
		return ConfigurationError("column %s: classification store column without groupId/keyId", spec.Key)
	}
	if spec.IsClassificationStoreKey() && (spec.GroupId.Int64 <= 0 || spec.KeyId.Int64 <= 0) {
		return ConfigurationError("column %s: invalid classification store coordinate %d/%d",
			spec.Key, spec.GroupId.Int64, spec.KeyId.Int64)
	}
	return nil
}

// FeatureJoin addresses one classification store key to be joined onto a listing.
// LocaleScoped joins read the key in a language other than the listing's own.
type FeatureJoin struct {
	Fieldname    string
	GroupId      int64
	KeyId        int64
	Language     string
	LocaleScoped bool
}

// Alias is derived from the coordinate only, so the same key always maps to the same alias.
// Locale scoped joins append their language.
func (j FeatureJoin) Alias() string {
	alias := "cskey_" + j.Fieldname + "_" + strconv.FormatInt(j.GroupId, 10) + "_" + strconv.FormatInt(j.KeyId, 10)
	if j.LocaleScoped {
		alias += "_" + j.Language
	}
	return alias
}

func (j FeatureJoin) Validate() error {
	if !IsValidIdentifier(j.Fieldname) {
		return ConfigurationError("feature join: invalid fieldname %q", j.Fieldname)
	}
	if j.GroupId <= 0 || j.KeyId <= 0 {
		return ConfigurationError("feature join %s: missing groupId/keyId", j.Fieldname)
	}
	if j.Language == "" {
		return ConfigurationError("feature join %s: missing language", j.Fieldname)
	}
	if j.LocaleScoped && !IsValidIdentifier(j.Language) {
		return ConfigurationError("feature join %s: invalid language %q", j.Fieldname, j.Language)
	}
	return nil
}

// SlugJoin addresses one url slug field to be joined onto a listing.
type SlugJoin struct {
	Fieldname string
	Language  string
}

func (j SlugJoin) language() string {
	if j.Language == "" {
		return DefaultLanguage
	}
	return j.Language
}

func (j SlugJoin) Alias() string {
	return "slug_" + j.Fieldname + "_" + j.language()
}

func (j SlugJoin) IsLocalized() bool {
	return j.language() != DefaultLanguage
}

func (j SlugJoin) Validate() error {
	if !IsValidIdentifier(j.Fieldname) {
		return ConfigurationError("slug join: invalid fieldname %q", j.Fieldname)
	}
	if !IsValidIdentifier(j.language()) {
		return ConfigurationError("slug join %s: invalid language %q", j.Fieldname, j.Language)
	}
	return nil
}

// LocalizedFieldJoin reads a localized field from the localized table of another language
// than the listing's.
type LocalizedFieldJoin struct {
	Fieldname string
	Language  string
}

func (j LocalizedFieldJoin) TableAlias() string {
	return "localized_" + j.Language
}

func (j LocalizedFieldJoin) Alias() string {
	return j.TableAlias() + "_" + j.Fieldname
}

func (j LocalizedFieldJoin) Validate() error {
	if !IsValidIdentifier(j.Fieldname) {
		return ConfigurationError("localized field join: invalid fieldname %q", j.Fieldname)
	}
	if j.Language == "" || j.Language == DefaultLanguage || !IsValidIdentifier(j.Language) {
		return ConfigurationError("localized field join %s: invalid language %q", j.Fieldname, j.Language)
	}
	return nil
}

// FilterConditions holds pre-built HAVING predicates keyed by the alias they filter.
type FilterConditions map[string]string

// ClassDefinition is the part of a data object class the grid compiler needs.
type ClassDefinition struct {
	Id   string
	Name string
}
