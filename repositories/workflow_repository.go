package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/pimcore/admin-ui-classic-bundle-sub003/models"
)

const (
	workflowStateTable  = "element_workflow_state"
	workflowPlacesTable = "workflow_places"
)

type WorkflowRepository interface {
	ListPlaces(ctx context.Context, exec Executor, elementId int64, elementType models.ElementType) ([]models.WorkflowPlace, error)
}

type WorkflowRepositoryPostgresql struct{}

type dbWorkflowPlace struct {
	Workflow      string  `db:"workflow"`
	Place         string  `db:"place"`
	WorkflowLabel *string `db:"workflow_label"`
	PlaceLabel    *string `db:"place_label"`
	Color         *string `db:"color"`
}

var selectWorkflowPlaceColumns = []string{
	"ews.workflow AS workflow",
	"ews.place AS place",
	"wp.workflow_label AS workflow_label",
	"wp.label AS place_label",
	"wp.color AS color",
}

func adaptWorkflowPlace(db dbWorkflowPlace) models.WorkflowPlace {
	place := models.WorkflowPlace{
		Workflow:      db.Workflow,
		WorkflowLabel: db.Workflow,
		Place:         db.Place,
		PlaceLabel:    db.Place,
	}
	if db.WorkflowLabel != nil && *db.WorkflowLabel != "" {
		place.WorkflowLabel = *db.WorkflowLabel
	}
	if db.PlaceLabel != nil && *db.PlaceLabel != "" {
		place.PlaceLabel = *db.PlaceLabel
	}
	if db.Color != nil {
		place.Color = *db.Color
	}
	return place
}

// ListPlaces returns the places the element currently holds, ordered by workflow. Labels
// fall back to the workflow and place names when no place definition exists.
func (repo *WorkflowRepositoryPostgresql) ListPlaces(
	ctx context.Context,
	exec Executor,
	elementId int64,
	elementType models.ElementType,
) ([]models.WorkflowPlace, error) {
	query := NewQueryBuilder().
		Select(selectWorkflowPlaceColumns...).
		From(workflowStateTable + " AS ews").
		LeftJoin(workflowPlacesTable + " AS wp ON wp.workflow = ews.workflow AND wp.place = ews.place").
		Where(squirrel.Eq{"ews.cid": elementId, "ews.ctype": string(elementType)}).
		OrderBy("ews.workflow", "ews.place")

	return SqlToListOfRow(ctx, exec, query, func(row pgx.CollectableRow) (models.WorkflowPlace, error) {
		db, err := pgx.RowToStructByName[dbWorkflowPlace](row)
		if err != nil {
			return models.WorkflowPlace{}, err
		}
		return adaptWorkflowPlace(db), nil
	})
}
