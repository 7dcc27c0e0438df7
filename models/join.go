package models

type JoinType string

const (
	JoinTypeLeft  JoinType = "LEFT"
	JoinTypeInner JoinType = "INNER"
)

// JoinDescriptor is one join produced by a grid compilation.
type JoinDescriptor struct {
	Type      JoinType
	Table     string
	Alias     string
	Condition string
}

// Clause is the part following the JOIN keyword.
func (j JoinDescriptor) Clause() string {
	return j.Table + " " + j.Alias + " ON " + j.Condition
}
