package langspec

import (
	"github.com/smacker/go-tree-sitter/c"

	"github.com/hotspot-dev/hotspot/internal/model"
)

func init() {
	register(&Spec{
		Language: model.C,
		grammar:  c.GetLanguage,

		FunctionKinds: newKindSet("function_definition"),
		MethodKinds:   newKindSet(),
		ClassKinds:    newKindSet("struct_specifier", "union_specifier", "enum_specifier"),

		ControlFlowKinds: newKindSet(
			"if_statement", "for_statement", "while_statement", "do_statement", "case_statement",
		),
		LogicalOperatorKinds: newKindSet("&&", "||"),
		CommentKinds:         newKindSet("comment"),

		NestingWrapperKinds:  newKindSet("if_statement", "for_statement", "while_statement", "switch_statement"),
		NestingBodyBlockKind: "compound_statement",
	})
}
