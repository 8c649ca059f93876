package langspec

import (
	"github.com/smacker/go-tree-sitter/rust"

	"github.com/hotspot-dev/hotspot/internal/model"
)

func init() {
	register(&Spec{
		Language: model.Rust,
		grammar:  rust.GetLanguage,

		// function_item is used for both free functions and methods; the
		// walker disambiguates by whether it's nested inside an impl_item.
		FunctionKinds: newKindSet("function_item"),
		MethodKinds:   newKindSet("function_item"),
		ClassKinds:    newKindSet("struct_item", "enum_item", "union_item", "trait_item", "impl_item"),

		ControlFlowKinds: newKindSet(
			"if_expression", "match_arm", "while_expression", "while_let_expression",
			"for_expression", "loop_expression", "try_expression",
		),
		LogicalOperatorKinds: newKindSet("&&", "||"),
		CommentKinds:         newKindSet("line_comment", "block_comment"),

		NestingWrapperKinds: newKindSet(
			"if_expression", "match_expression", "while_expression", "while_let_expression",
			"for_expression", "loop_expression",
		),
		NestingBodyBlockKind: "block",
		SuppressFunctionBody: true,
	})
}
