package models

type FilterOperator string

const (
	FilterOperatorLike      FilterOperator = "like"
	FilterOperatorEqual     FilterOperator = "="
	FilterOperatorNotEqual  FilterOperator = "!="
	FilterOperatorLess      FilterOperator = "<"
	FilterOperatorLessEq    FilterOperator = "<="
	FilterOperatorGreater   FilterOperator = ">"
	FilterOperatorGreaterEq FilterOperator = ">="
)

func FilterOperatorFromString(s string) (FilterOperator, error) {
	switch op := FilterOperator(s); op {
	case FilterOperatorLike, FilterOperatorEqual, FilterOperatorNotEqual, FilterOperatorLess,
		FilterOperatorLessEq, FilterOperatorGreater, FilterOperatorGreaterEq:
		return op, nil
	case "eq":
		return FilterOperatorEqual, nil
	case "lt":
		return FilterOperatorLess, nil
	case "gt":
		return FilterOperatorGreater, nil
	}
	return "", ConfigurationError("unknown filter operator %q", s)
}

// GridFilter filters the rows of a listing on the value of one grid column.
type GridFilter struct {
	// Column is the index of the filtered column in the grid configuration.
	Column   int
	Operator FilterOperator
	Value    any
}
