package grid

import (
	"fmt"

	"github.com/pimcore/admin-ui-classic-bundle-sub003/models"
)

// NodeConfig is the variant specific payload of a node. Only the fields of the node's
// operator are read.
type NodeConfig struct {
	// OPERATOR_VALUE
	Column models.ColumnSpec
	// OPERATOR_LOCALE_SWITCH
	Locale string
	// OPERATOR_TEXT
	Text string
	// OPERATOR_CONCATENATOR
	Glue string
	// OPERATOR_CASE_CONVERTER
	CaseMode CaseMode
	// OPERATOR_TRIMMER
	TrimMode TrimMode
	// OPERATOR_SUBSTRING
	Start    int
	Length   int
	Ellipses bool
}

type Node struct {
	Operator Operator
	Label    string
	Config   NodeConfig

	Children []Node
}

func (node *Node) DebugString() string {
	return fmt.Sprintf("Node %s %q with %d children", node.Operator.DebugString(), node.Label, len(node.Children))
}

func (node Node) AddChild(child Node) Node {
	node.Children = append(node.Children, child)
	return node
}

// Walk visits the node and its descendants depth first, in declaration order.
func (node Node) Walk(fn func(Node)) {
	fn(node)
	for _, child := range node.Children {
		child.Walk(fn)
	}
}

// FirstValueLeaf returns the column spec of the first value leaf, depth first.
func (node Node) FirstValueLeaf() (models.ColumnSpec, bool) {
	spec, _, ok := node.FirstValueLeafWithLocale()
	return spec, ok
}

// FirstValueLeafWithLocale also returns the target of the innermost locale switch above
// the leaf, empty when there is none.
func (node Node) FirstValueLeafWithLocale() (models.ColumnSpec, string, bool) {
	return node.firstValueLeaf("")
}

func (node Node) firstValueLeaf(switchLocale string) (models.ColumnSpec, string, bool) {
	switch node.Operator {
	case OPERATOR_VALUE:
		return node.Config.Column, switchLocale, true
	case OPERATOR_LOCALE_SWITCH:
		switchLocale = node.Config.Locale
	}
	for _, child := range node.Children {
		if spec, locale, ok := child.firstValueLeaf(switchLocale); ok {
			return spec, locale, true
		}
	}
	return models.ColumnSpec{}, "", false
}

func NewValueNode(label string, spec models.ColumnSpec) Node {
	return Node{Operator: OPERATOR_VALUE, Label: label, Config: NodeConfig{Column: spec}}
}

func NewPassThroughNode(label string, children ...Node) Node {
	return Node{Operator: OPERATOR_PASS_THROUGH, Label: label, Children: children}
}

func NewLocaleSwitchNode(label string, locale string, children ...Node) Node {
	return Node{
		Operator: OPERATOR_LOCALE_SWITCH,
		Label:    label,
		Config:   NodeConfig{Locale: locale},
		Children: children,
	}
}

func NewWorkflowStateNode(label string) Node {
	return Node{Operator: OPERATOR_WORKFLOW_STATE, Label: label}
}

func NewTextNode(label string, text string) Node {
	return Node{Operator: OPERATOR_TEXT, Label: label, Config: NodeConfig{Text: text}}
}

func NewConcatenatorNode(label string, glue string, children ...Node) Node {
	return Node{
		Operator: OPERATOR_CONCATENATOR,
		Label:    label,
		Config:   NodeConfig{Glue: glue},
		Children: children,
	}
}

func NewCaseConverterNode(label string, mode CaseMode, children ...Node) Node {
	return Node{
		Operator: OPERATOR_CASE_CONVERTER,
		Label:    label,
		Config:   NodeConfig{CaseMode: mode},
		Children: children,
	}
}

func NewTrimmerNode(label string, mode TrimMode, children ...Node) Node {
	return Node{
		Operator: OPERATOR_TRIMMER,
		Label:    label,
		Config:   NodeConfig{TrimMode: mode},
		Children: children,
	}
}

func NewSubstringNode(label string, start int, length int, ellipses bool, children ...Node) Node {
	return Node{
		Operator: OPERATOR_SUBSTRING,
		Label:    label,
		Config:   NodeConfig{Start: start, Length: length, Ellipses: ellipses},
		Children: children,
	}
}
