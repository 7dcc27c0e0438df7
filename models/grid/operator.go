package grid

import "fmt"

type Operator int

const (
	OPERATOR_UNDEFINED Operator = iota
	OPERATOR_VALUE
	OPERATOR_PASS_THROUGH
	OPERATOR_LOCALE_SWITCH
	OPERATOR_WORKFLOW_STATE
	OPERATOR_TEXT
	OPERATOR_CONCATENATOR
	OPERATOR_CASE_CONVERTER
	OPERATOR_TRIMMER
	OPERATOR_SUBSTRING
)

type OperatorAttributes struct {
	DebugName string
	// Name is the identifier used in stored grid configurations.
	Name string
	// MaxChildren is -1 when the operator accepts any number of children.
	MaxChildren int
}

var operatorAttributes = map[Operator]OperatorAttributes{
	OPERATOR_UNDEFINED:      {DebugName: "UNDEFINED", Name: "", MaxChildren: -1},
	OPERATOR_VALUE:          {DebugName: "OPERATOR_VALUE", Name: "value", MaxChildren: 0},
	OPERATOR_PASS_THROUGH:   {DebugName: "OPERATOR_PASS_THROUGH", Name: "alias", MaxChildren: -1},
	OPERATOR_LOCALE_SWITCH:  {DebugName: "OPERATOR_LOCALE_SWITCH", Name: "localeswitch", MaxChildren: -1},
	OPERATOR_WORKFLOW_STATE: {DebugName: "OPERATOR_WORKFLOW_STATE", Name: "workflowstate", MaxChildren: 0},
	OPERATOR_TEXT:           {DebugName: "OPERATOR_TEXT", Name: "text", MaxChildren: 0},
	OPERATOR_CONCATENATOR:   {DebugName: "OPERATOR_CONCATENATOR", Name: "concatenator", MaxChildren: -1},
	OPERATOR_CASE_CONVERTER: {DebugName: "OPERATOR_CASE_CONVERTER", Name: "caseconverter", MaxChildren: -1},
	OPERATOR_TRIMMER:        {DebugName: "OPERATOR_TRIMMER", Name: "trimmer", MaxChildren: -1},
	OPERATOR_SUBSTRING:      {DebugName: "OPERATOR_SUBSTRING", Name: "substring", MaxChildren: -1},
}

func (o Operator) Attributes() (OperatorAttributes, error) {
	if attributes, ok := operatorAttributes[o]; ok {
		return attributes, nil
	}
	return OperatorAttributes{}, fmt.Errorf("unknown operator: %d", o)
}

func (o Operator) DebugString() string {
	attributes, err := o.Attributes()
	if err != nil {
		return fmt.Sprintf("Invalid operator: %d", o)
	}
	return attributes.DebugName
}

func OperatorFromName(name string) Operator {
	if name == "" {
		return OPERATOR_UNDEFINED
	}
	for operator, attributes := range operatorAttributes {
		if attributes.Name == name {
			return operator
		}
	}
	return OPERATOR_UNDEFINED
}

type CaseMode int

const (
	CASE_UPPER CaseMode = iota
	CASE_LOWER
	CASE_TITLE
)

type TrimMode int

const (
	TRIM_BOTH TrimMode = iota
	TRIM_LEFT
	TRIM_RIGHT
)

var caseModeNames = map[string]CaseMode{
	"upper": CASE_UPPER,
	"lower": CASE_LOWER,
	"title": CASE_TITLE,
}

func CaseModeFromString(s string) (CaseMode, bool) {
	mode, ok := caseModeNames[s]
	return mode, ok
}

var trimModeNames = map[string]TrimMode{
	"":      TRIM_BOTH,
	"both":  TRIM_BOTH,
	"left":  TRIM_LEFT,
	"right": TRIM_RIGHT,
}

func TrimModeFromString(s string) (TrimMode, bool) {
	mode, ok := trimModeNames[s]
	return mode, ok
}
