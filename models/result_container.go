package models

import (
	"fmt"
	"strings"
	"time"
)

// ResultContainer is the labelled value produced by a grid operator. It is kept distinct from
// raw values so that grid cells and exports can tell a constructed pair from an unlabelled object.
type ResultContainer struct {
	Label string
	// Value is a scalar, a *ResultContainer, a []any of those, or nil.
	Value any
}

func NewResultContainer(label string, value any) *ResultContainer {
	return &ResultContainer{Label: label, Value: value}
}

func (r *ResultContainer) IsEmpty() bool {
	return r == nil || r.Value == nil
}

// IsLabeled reports whether the value is a nested container rather than a raw value.
func (r *ResultContainer) IsLabeled() bool {
	if r == nil {
		return false
	}
	_, ok := r.Value.(*ResultContainer)
	return ok
}

// Unwrap follows nested containers down to the first raw value.
func (r *ResultContainer) Unwrap() any {
	if r == nil {
		return nil
	}
	if inner, ok := r.Value.(*ResultContainer); ok {
		return inner.Unwrap()
	}
	return r.Value
}

// CellValue flattens any grid value into the plain string used by CSV exports.
func CellValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case *ResultContainer:
		if v == nil {
			return ""
		}
		return CellValue(v.Value)
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			if s := CellValue(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	case []RelationValue:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, item.Label)
		}
		return strings.Join(parts, ", ")
	case RelationValue:
		return v.Label
	case string:
		return v
	case time.Time:
		return v.Format(time.RFC3339)
	case *time.Time:
		if v == nil {
			return ""
		}
		return v.Format(time.RFC3339)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// GridRow holds the evaluated columns of one element, in column order.
type GridRow struct {
	ElementId int64
	Cells     []*ResultContainer
}
