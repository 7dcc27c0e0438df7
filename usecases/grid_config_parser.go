package usecases

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/language"

	"github.com/pimcore/admin-ui-classic-bundle-sub003/dto"
	"github.com/pimcore/admin-ui-classic-bundle-sub003/models"
	"github.com/pimcore/admin-ui-classic-bundle-sub003/models/grid"
	"github.com/pimcore/admin-ui-classic-bundle-sub003/pure_utils"
	"github.com/pimcore/admin-ui-classic-bundle-sub003/utils"
)

const DEFAULT_GRID_CONFIG_CACHE_SIZE = 128

// GridConfigParser turns stored grid configurations into validated operator trees. Parsed
// configurations are cached by content hash and must be treated as read only.
type GridConfigParser struct {
	validate *validator.Validate
	cache    *lru.Cache[string, grid.GridConfig]
}

func NewGridConfigParser(cacheSize int) (*GridConfigParser, error) {
	if cacheSize <= 0 {
		cacheSize = DEFAULT_GRID_CONFIG_CACHE_SIZE
	}
	cache, err := lru.New[string, grid.GridConfig](cacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "error creating grid config cache")
	}
	return &GridConfigParser{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		cache:    cache,
	}, nil
}

func configCacheKey(raw []byte) string {
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

func (parser *GridConfigParser) Parse(ctx context.Context, raw []byte) (grid.GridConfig, error) {
	key := configCacheKey(raw)
	if config, ok := parser.cache.Get(key); ok {
		return config, nil
	}

	var configDto dto.GridConfigDto
	if err := json.Unmarshal(raw, &configDto); err != nil {
		return grid.GridConfig{}, errors.Wrap(models.ErrConfiguration, err.Error())
	}
	config, err := parser.AdaptGridConfig(configDto)
	if err != nil {
		return grid.GridConfig{}, err
	}

	utils.LoggerFromContext(ctx).DebugContext(ctx, "parsed grid configuration",
		slog.String("grid", config.Name), slog.Int("columns", len(config.Columns)))
	parser.cache.Add(key, config)
	return config, nil
}

// AdaptGridConfig validates a decoded configuration and builds its operator trees.
func (parser *GridConfigParser) AdaptGridConfig(configDto dto.GridConfigDto) (grid.GridConfig, error) {
	if err := parser.validate.Struct(configDto); err != nil {
		return grid.GridConfig{}, errors.Wrap(models.ErrConfiguration, err.Error())
	}
	if !models.IsValidIdentifier(configDto.ClassId) {
		return grid.GridConfig{}, models.ConfigurationError("invalid class id %q", configDto.ClassId)
	}
	locale, err := parseLocale(configDto.Language)
	if err != nil {
		return grid.GridConfig{}, err
	}

	columns, err := pure_utils.MapErr(configDto.Columns, adaptGridNode)
	if err != nil {
		return grid.GridConfig{}, err
	}
	config := grid.GridConfig{
		Name:     configDto.Name,
		ClassId:  configDto.ClassId,
		Language: locale,
		Columns:  columns,
	}
	if err := config.Validate(); err != nil {
		return grid.GridConfig{}, err
	}
	return config, nil
}

// AdaptListingRequest validates a grid rows request, parses its configuration through the
// cache and resolves its filters against the columns of the configuration.
func (parser *GridConfigParser) AdaptListingRequest(ctx context.Context, input dto.GridRowsInput) (grid.ListingRequest, error) {
	if err := parser.validate.Struct(input); err != nil {
		return grid.ListingRequest{}, errors.Wrap(models.ErrConfiguration, err.Error())
	}
	config, err := parser.Parse(ctx, input.Config)
	if err != nil {
		return grid.ListingRequest{}, err
	}
	locale, err := parseLocale(input.Locale)
	if err != nil {
		return grid.ListingRequest{}, err
	}

	filters, err := pure_utils.MapErr(input.Filters, func(filterDto dto.GridFilterDto) (models.GridFilter, error) {
		if filterDto.Column >= len(config.Columns) {
			return models.GridFilter{}, models.ConfigurationError("filter on unknown column %d", filterDto.Column)
		}
		operator, err := models.FilterOperatorFromString(filterDto.Operator)
		if err != nil {
			return models.GridFilter{}, err
		}
		return models.GridFilter{Column: filterDto.Column, Operator: operator, Value: filterDto.Value}, nil
	})
	if err != nil {
		return grid.ListingRequest{}, err
	}

	return grid.ListingRequest{
		Config:  config,
		Locale:  locale,
		Filters: filters,
		OrderBy: input.OrderBy,
		Limit:   input.Limit,
		Offset:  input.Offset,
	}, nil
}

func adaptGridNode(nodeDto dto.GridNodeDto) (grid.Node, error) {
	operatorName := nodeDto.Operator
	if operatorName == "" {
		operatorName = "value"
	}
	operator := grid.OperatorFromName(operatorName)
	if operator == grid.OPERATOR_UNDEFINED {
		return grid.Node{}, errors.Wrapf(models.ErrUndefinedOperator, "operator %q", nodeDto.Operator)
	}

	node := grid.Node{
		Operator: operator,
		Label:    nodeDto.Label,
	}
	if len(nodeDto.Children) > 0 {
		children, err := pure_utils.MapErr(nodeDto.Children, adaptGridNode)
		if err != nil {
			return grid.Node{}, err
		}
		node.Children = children
	}

	switch operator {
	case grid.OPERATOR_VALUE:
		spec, err := adaptColumnSpec(nodeDto)
		if err != nil {
			return grid.Node{}, err
		}
		node.Config.Column = spec
	case grid.OPERATOR_LOCALE_SWITCH:
		locale, err := parseLocale(nodeDto.Locale)
		if err != nil {
			return grid.Node{}, err
		}
		node.Config.Locale = locale
	case grid.OPERATOR_TEXT:
		node.Config.Text = nodeDto.Text
	case grid.OPERATOR_CONCATENATOR:
		node.Config.Glue = nodeDto.Glue
	case grid.OPERATOR_CASE_CONVERTER:
		mode, ok := grid.CaseModeFromString(nodeDto.Mode)
		if !ok {
			return grid.Node{}, models.ConfigurationError("unknown case mode %q", nodeDto.Mode)
		}
		node.Config.CaseMode = mode
	case grid.OPERATOR_TRIMMER:
		mode, ok := grid.TrimModeFromString(nodeDto.Mode)
		if !ok {
			return grid.Node{}, models.ConfigurationError("unknown trim mode %q", nodeDto.Mode)
		}
		node.Config.TrimMode = mode
	case grid.OPERATOR_SUBSTRING:
		node.Config.Start = nodeDto.Start
		node.Config.Length = nodeDto.Length
		node.Config.Ellipses = nodeDto.Ellipses
	}
	return node, nil
}

func adaptColumnSpec(nodeDto dto.GridNodeDto) (models.ColumnSpec, error) {
	locale, err := parseLocale(nodeDto.Locale)
	if err != nil {
		return models.ColumnSpec{}, err
	}
	if !models.IsValidIdentifier(nodeDto.Key) {
		return models.ColumnSpec{}, models.ConfigurationError("invalid column key %q", nodeDto.Key)
	}
	fieldType := models.FieldType(nodeDto.Type)
	if nodeDto.GroupId.Valid && nodeDto.KeyId.Valid {
		fieldType = models.FieldTypeClassificationStore
	}
	return models.ColumnSpec{
		Key:       nodeDto.Key,
		FieldType: fieldType,
		GroupId:   nodeDto.GroupId,
		KeyId:     nodeDto.KeyId,
		Locale:    locale,
		Localized: nodeDto.Localized,
	}, nil
}

// parseLocale checks a locale is a known language tag and keeps the underscore spelling
// used in table names.
func parseLocale(locale string) (string, error) {
	if locale == "" || locale == models.DefaultLanguage {
		return locale, nil
	}
	if _, err := language.Parse(locale); err != nil {
		return "", models.ConfigurationError("invalid locale %q", locale)
	}
	if !models.IsValidIdentifier(locale) {
		return "", models.ConfigurationError("invalid locale %q", locale)
	}
	return locale, nil
}
