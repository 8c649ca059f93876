package langspec

import (
	"github.com/smacker/go-tree-sitter/javascript"

	"github.com/hotspot-dev/hotspot/internal/model"
)

func init() {
	register(&Spec{
		Language: model.JavaScript,
		grammar:  javascript.GetLanguage,

		FunctionKinds: newKindSet(
			"function_declaration", "function_expression", "arrow_function",
			"generator_function_declaration",
		),
		MethodKinds: newKindSet("method_definition"),
		ClassKinds:  newKindSet("class_declaration"),

		// ternary_expression counts toward cyclomatic complexity the same way
		// && and || do (a conditional branch, not a control-flow statement),
		// so it belongs in LogicalOperatorKinds rather than ControlFlowKinds.
		ControlFlowKinds: newKindSet(
			"if_statement", "for_statement", "for_in_statement", "for_of_statement",
			"while_statement", "do_statement", "switch_case", "catch_clause",
		),
		LogicalOperatorKinds: newKindSet("&&", "||", "??", "ternary_expression"),
		CommentKinds:         newKindSet("comment"),

		NestingWrapperKinds: newKindSet(
			"if_statement", "for_statement", "for_in_statement", "for_of_statement",
			"while_statement", "do_statement", "switch_case", "catch_clause",
		),
		NestingBodyBlockKind: "statement_block",
	})
}
