package dto

type APIErrorResponse struct {
	Message   string    `json:"message"`
	ErrorCode ErrorCode `json:"error_code,omitempty"`
}

type ErrorCode string

const (
	InvalidGridConfiguration ErrorCode = "invalid_grid_configuration"
	ValueResolutionFailed    ErrorCode = "value_resolution_failed"
)
