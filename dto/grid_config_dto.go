package dto

import (
	"github.com/guregu/null/v5"
)

type GridConfigDto struct {
	Name     string        `json:"name"`
	ClassId  string        `json:"class_id" validate:"required,max=64"`
	Language string        `json:"language" validate:"max=16"`
	Columns  []GridNodeDto `json:"columns" validate:"required,min=1,dive"`
}

// GridNodeDto is one node of a column tree. Operator defaults to "value" for leaves.
type GridNodeDto struct {
	Operator string `json:"operator" validate:"max=32"`
	Label    string `json:"label"`

	// value leaves
	Key       string   `json:"key" validate:"max=128"`
	Type      string   `json:"type"`
	GroupId   null.Int `json:"group_id"`
	KeyId     null.Int `json:"key_id"`
	Locale    string   `json:"locale" validate:"max=16"`
	Localized bool     `json:"localized"`

	Text     string `json:"text"`
	Glue     string `json:"glue"`
	Mode     string `json:"mode"`
	Start    int    `json:"start" validate:"gte=0"`
	Length   int    `json:"length" validate:"gte=0"`
	Ellipses bool   `json:"ellipses"`

	Children []GridNodeDto `json:"children" validate:"dive"`
}
