package langspec

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"

	"github.com/hotspot-dev/hotspot/internal/model"
)

func init() {
	register(&Spec{
		Language: model.Go,
		grammar:  golang.GetLanguage,

		FunctionKinds: newKindSet("function_declaration"),
		MethodKinds:   newKindSet("method_declaration"),
		ClassKinds:    newKindSet("type_spec"),

		// expression_switch_statement/type_switch_statement/select_statement
		// are the switch/select containers; only their arms contribute to
		// cyclomatic complexity (a switch with N cases and no default
		// contributes N, not N+1 for the container).
		ControlFlowKinds: newKindSet(
			"if_statement", "for_statement", "expression_case", "type_case", "communication_case",
		),
		LogicalOperatorKinds: newKindSet("&&", "||"),
		CommentKinds:         newKindSet("comment"),

		NestingWrapperKinds: newKindSet(
			"if_statement", "for_statement", "expression_switch_statement", "type_switch_statement",
		),
		NestingBodyBlockKind: "block",

		IsClassNode: goIsClassNode,
	})
}

// goIsClassNode restricts type_spec matches to struct and interface type
// declarations, excluding plain type aliases (type ID = string) and defined
// non-struct/interface types (type Count int).
func goIsClassNode(n *sitter.Node, source []byte) bool {
	for i := 0; i < int(n.ChildCount()); i++ {
		switch n.Child(i).Type() {
		case "struct_type", "interface_type":
			return true
		}
	}
	return false
}
