package langspec

import (
	"github.com/smacker/go-tree-sitter/java"

	"github.com/hotspot-dev/hotspot/internal/model"
)

func init() {
	register(&Spec{
		Language: model.Java,
		grammar:  java.GetLanguage,

		// Java has no free functions: every method_declaration lives inside
		// a class-like declaration, so function_kinds is empty and every
		// method or constructor declaration counts as a method by its node
		// kind alone.
		FunctionKinds: newKindSet(),
		MethodKinds:   newKindSet("method_declaration", "constructor_declaration"),
		ClassKinds:    newKindSet("class_declaration", "interface_declaration", "enum_declaration", "record_declaration"),

		ControlFlowKinds: newKindSet(
			"if_statement", "for_statement", "enhanced_for_statement", "while_statement",
			"do_statement", "switch_label", "catch_clause",
		),
		LogicalOperatorKinds: newKindSet("&&", "||", "ternary_expression"),
		CommentKinds:         newKindSet("line_comment", "block_comment"),

		NestingWrapperKinds: newKindSet(
			"if_statement", "for_statement", "enhanced_for_statement", "while_statement",
			"do_statement", "catch_clause", "switch_block",
		),
		NestingBodyBlockKind: "block",
	})
}
