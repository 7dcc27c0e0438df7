package usecases

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pimcore/admin-ui-classic-bundle-sub003/models"
	"github.com/pimcore/admin-ui-classic-bundle-sub003/models/grid"
	"github.com/pimcore/admin-ui-classic-bundle-sub003/repositories"
	"github.com/pimcore/admin-ui-classic-bundle-sub003/usecases/executor_factory"
	"github.com/pimcore/admin-ui-classic-bundle-sub003/usecases/grid_eval"
	"github.com/pimcore/admin-ui-classic-bundle-sub003/utils"
)

type elementListingRepository interface {
	ListRows(ctx context.Context, exec repositories.Executor, listing *repositories.Listing) ([]models.RowElement, error)
}

type GridUsecase struct {
	executorFactory        executor_factory.ExecutorFactory
	listingRepository      elementListingRepository
	workflowStatusProvider grid_eval.WorkflowStatusProvider
	defaultLocale          string
}

func NewGridUsecase(
	executorFactory executor_factory.ExecutorFactory,
	listingRepository elementListingRepository,
	workflowStatusProvider grid_eval.WorkflowStatusProvider,
	defaultLocale string,
) GridUsecase {
	return GridUsecase{
		executorFactory:        executorFactory,
		listingRepository:      listingRepository,
		workflowStatusProvider: workflowStatusProvider,
		defaultLocale:          defaultLocale,
	}
}

// RenderRows evaluates every column of the config for each element. All rows of one call
// share the ambient locale, which starts at locale (or the default locale).
func (usecase GridUsecase) RenderRows(
	ctx context.Context,
	config grid.GridConfig,
	elements []models.Element,
	locale string,
	purpose models.EvaluationPurpose,
) ([]models.GridRow, error) {
	logger := utils.LoggerFromContext(ctx)
	start := time.Now()

	env := grid_eval.NewEvaluationEnvironment(usecase.locale(locale), purpose, usecase.workflowStatusProvider)
	rows := make([]models.GridRow, 0, len(elements))
	for _, element := range elements {
		cells, err := grid_eval.EvaluateColumns(ctx, env, config, element)
		if err != nil {
			return nil, errors.Wrapf(err, "error rendering grid %s for element %d", config.Name, element.Id())
		}
		rows = append(rows, models.GridRow{ElementId: element.Id(), Cells: cells})
	}

	labels := prometheus.Labels{"purpose": string(purpose)}
	utils.MetricGridRowsRendered.With(labels).Add(float64(len(rows)))
	utils.MetricGridRenderLatency.With(labels).Observe(time.Since(start).Seconds())
	logger.DebugContext(ctx, fmt.Sprintf("rendered %d rows of grid %s", len(rows), config.Name),
		slog.String("purpose", string(purpose)),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()))
	return rows, nil
}

// ExportCsv writes a header of column labels followed by one flattened line per element.
func (usecase GridUsecase) ExportCsv(
	ctx context.Context,
	w io.Writer,
	config grid.GridConfig,
	elements []models.Element,
	locale string,
) error {
	rows, err := usecase.RenderRows(ctx, config, elements, locale, models.PurposeExport)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(config.Labels()); err != nil {
		return errors.Wrap(err, "error writing csv header")
	}
	for _, row := range rows {
		record := make([]string, len(row.Cells))
		for i, cell := range row.Cells {
			record[i] = models.CellValue(cell)
		}
		if err := writer.Write(record); err != nil {
			return errors.Wrap(err, "error writing csv record")
		}
	}
	writer.Flush()
	return errors.Wrap(writer.Error(), "error flushing csv")
}

// ListRows compiles the joins and filters of the request onto a listing of the config's
// class, fetches one page of rows and renders them for the grid view.
func (usecase GridUsecase) ListRows(ctx context.Context, request grid.ListingRequest) ([]models.GridRow, error) {
	config, elements, err := usecase.listElements(ctx, request)
	if err != nil {
		return nil, err
	}
	return usecase.RenderRows(ctx, config, elements, config.Language, models.PurposeGridView)
}

// ExportListingCsv is the csv export of the rows ListRows would return.
func (usecase GridUsecase) ExportListingCsv(ctx context.Context, w io.Writer, request grid.ListingRequest) error {
	config, elements, err := usecase.listElements(ctx, request)
	if err != nil {
		return err
	}
	return usecase.ExportCsv(ctx, w, config, elements, config.Language)
}

func (usecase GridUsecase) listElements(
	ctx context.Context,
	request grid.ListingRequest,
) (grid.GridConfig, []models.Element, error) {
	logger := utils.LoggerFromContext(ctx)
	start := time.Now()

	config := request.Config
	config.Language = usecase.locale(request.Locale)
	if config.Language == models.DefaultLanguage {
		config.Language = ""
	}

	listing := repositories.NewListing(config.ClassId, config.Language)
	listing.OrderBy = request.OrderBy
	listing.Limit = request.Limit
	listing.Offset = request.Offset

	conditions, err := repositories.CompileGridFilters(listing, config, request.Filters)
	if err != nil {
		return config, nil, err
	}
	classDefinition := &models.ClassDefinition{Id: config.ClassId, Name: config.Name}
	if err := repositories.AddGridFeatureJoins(listing, config.FeatureJoins(), classDefinition, conditions); err != nil {
		return config, nil, err
	}
	if err := repositories.AddSlugJoins(listing, config.SlugJoins(), classDefinition, conditions); err != nil {
		return config, nil, err
	}
	if err := repositories.AddLocalizedFieldJoins(listing, config.LocalizedFieldJoins(), classDefinition); err != nil {
		return config, nil, err
	}

	rowElements, err := usecase.listingRepository.ListRows(ctx, usecase.executorFactory.NewExecutor(), listing)
	if err != nil {
		return config, nil, errors.Wrapf(err, "error listing rows of grid %s", config.Name)
	}
	utils.MetricGridListingLatency.Observe(time.Since(start).Seconds())
	logger.DebugContext(ctx, fmt.Sprintf("listed %d rows of class %s", len(rowElements), config.ClassId),
		slog.String("table", listing.TableName()),
		slog.Int("filters", len(request.Filters)))

	elements := make([]models.Element, len(rowElements))
	for i, row := range rowElements {
		elements[i] = row
	}
	return config, elements, nil
}

func (usecase GridUsecase) locale(locale string) string {
	if locale != "" {
		return locale
	}
	return usecase.defaultLocale
}
