package models

// EvaluationPurpose is the rendering target of a grid evaluation.
type EvaluationPurpose string

const (
	PurposeGridView EvaluationPurpose = "gridview"
	PurposeExport   EvaluationPurpose = "export"
)

func EvaluationPurposeFromString(s string) EvaluationPurpose {
	if s == string(PurposeGridView) {
		return PurposeGridView
	}
	return PurposeExport
}

// WorkflowPlace is one place an element currently holds in a workflow.
type WorkflowPlace struct {
	Workflow      string
	WorkflowLabel string
	Place         string
	PlaceLabel    string
	Color         string
}
