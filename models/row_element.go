package models

// RowElement is an Element backed by one fetched listing row. Localized holds values per
// locale, Attributes the values of the row itself, joined aliases included.
type RowElement struct {
	ElementId   int64
	ElementType ElementType
	Attributes  map[string]any
	Localized   map[string]map[string]any
}

func (e RowElement) Id() int64 { return e.ElementId }

func (e RowElement) Type() ElementType { return e.ElementType }

func (e RowElement) GetAttribute(key string, locale string) (any, error) {
	if locale != "" {
		if value, ok := e.Localized[locale][key]; ok {
			return value, nil
		}
	}
	if value, ok := e.Attributes[key]; ok {
		return value, nil
	}
	return nil, ErrAttributeNotFound
}

// GetClassificationStoreValue reads the column a feature join added to the row: the join
// scoped to locale when there is one, the join in the listing language otherwise.
func (e RowElement) GetClassificationStoreValue(fieldname string, groupId int64, keyId int64, locale string) (any, error) {
	join := FeatureJoin{Fieldname: fieldname, GroupId: groupId, KeyId: keyId, Language: locale}
	if locale != "" {
		join.LocaleScoped = true
		if value, ok := e.Attributes[join.Alias()]; ok {
			return value, nil
		}
		join.LocaleScoped = false
	}
	if value, ok := e.Attributes[join.Alias()]; ok {
		return value, nil
	}
	return nil, ErrAttributeNotFound
}
