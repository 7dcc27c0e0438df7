package dto

import (
	"encoding/json"

	"github.com/pimcore/admin-ui-classic-bundle-sub003/models"
	"github.com/pimcore/admin-ui-classic-bundle-sub003/pure_utils"
)

type GridCell struct {
	Label string `json:"label"`
	Value any    `json:"value"`
}

// AdaptGridCell keeps nested containers as nested cells, so labels chosen by inner nodes
// reach the client.
func AdaptGridCell(container *models.ResultContainer) GridCell {
	if container == nil {
		return GridCell{}
	}
	return GridCell{Label: container.Label, Value: adaptCellValue(container.Value)}
}

func adaptCellValue(value any) any {
	switch v := value.(type) {
	case *models.ResultContainer:
		if v == nil {
			return nil
		}
		return AdaptGridCell(v)
	case []any:
		return pure_utils.Map(v, adaptCellValue)
	case models.RelationValue:
		return GridRelation{Id: v.Id, Type: string(v.Type), Label: v.Label}
	case []models.RelationValue:
		return pure_utils.Map(v, func(r models.RelationValue) any { return adaptCellValue(r) })
	}
	return value
}

type GridRelation struct {
	Id    int64  `json:"id"`
	Type  string `json:"type"`
	Label string `json:"label"`
}

type GridRow struct {
	Id    int64      `json:"id"`
	Cells []GridCell `json:"cells"`
}

func AdaptGridRow(row models.GridRow) GridRow {
	return GridRow{
		Id:    row.ElementId,
		Cells: pure_utils.Map(row.Cells, AdaptGridCell),
	}
}

type GridFilterDto struct {
	Column   int    `json:"column" validate:"gte=0"`
	Operator string `json:"operator" validate:"required"`
	Value    any    `json:"value"`
}

// GridRowsInput carries the grid configuration undecoded, so identical configurations
// are parsed once.
type GridRowsInput struct {
	Config  json.RawMessage `json:"config" validate:"required"`
	Locale  string          `json:"locale" validate:"max=16"`
	Filters []GridFilterDto `json:"filters" validate:"dive"`
	OrderBy []string        `json:"order_by"`
	Limit   uint64          `json:"limit" validate:"lte=1000"`
	Offset  uint64          `json:"offset"`
}

type GridRowsResponse struct {
	Labels []string  `json:"labels"`
	Rows   []GridRow `json:"rows"`
}
