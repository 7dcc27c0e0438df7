package models

import "fmt"

type ElementType string

const (
	ElementTypeAsset    ElementType = "asset"
	ElementTypeObject   ElementType = "object"
	ElementTypeDocument ElementType = "document"
)

func ElementTypeFromString(s string) ElementType {
	switch s {
	case "asset":
		return ElementTypeAsset
	case "object":
		return ElementTypeObject
	case "document":
		return ElementTypeDocument
	}
	return ""
}

// Element is a read-only handle on a CMS record (asset, data object or document).
// An empty locale asks for the non-localized value.
type Element interface {
	Id() int64
	Type() ElementType
	GetAttribute(key string, locale string) (any, error)
}

// ClassificationStoreElement is implemented by elements able to read classification store values.
type ClassificationStoreElement interface {
	GetClassificationStoreValue(fieldname string, groupId int64, keyId int64, locale string) (any, error)
}

// ElementDescriptor is implemented by relation values pointing at another element.
type ElementDescriptor interface {
	Id() int64
	Type() ElementType
	FullPath() string
}

// RelationValue is the grid representation of a related element.
type RelationValue struct {
	Id    int64       `json:"id"`
	Type  ElementType `json:"type"`
	Label string      `json:"label"`
}

func (r RelationValue) String() string {
	return r.Label
}

func NewRelationValue(d ElementDescriptor) RelationValue {
	return RelationValue{Id: d.Id(), Type: d.Type(), Label: d.FullPath()}
}

// ElementReference is a plain ElementDescriptor, used when relations come from a listing row.
type ElementReference struct {
	ElementId   int64
	ElementType ElementType
	Path        string
}

func (r ElementReference) Id() int64 { return r.ElementId }

func (r ElementReference) Type() ElementType { return r.ElementType }

func (r ElementReference) FullPath() string {
	if r.Path == "" {
		return fmt.Sprintf("%s #%d", r.ElementType, r.ElementId)
	}
	return r.Path
}
