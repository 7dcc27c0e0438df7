package grid

import "github.com/pimcore/admin-ui-classic-bundle-sub003/models"

// ListingRequest asks for one page of rows of the class a grid config is built on.
type ListingRequest struct {
	Config  GridConfig
	Locale  string
	Filters []models.GridFilter
	OrderBy []string
	Limit   uint64
	Offset  uint64
}
