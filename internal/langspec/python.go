package langspec

import (
	"github.com/smacker/go-tree-sitter/python"

	"github.com/hotspot-dev/hotspot/internal/model"
)

func init() {
	register(&Spec{
		Language: model.Python,
		grammar:  python.GetLanguage,

		// function_definition covers both free functions and methods; the
		// walker disambiguates by whether it's nested inside a class body.
		FunctionKinds: newKindSet("function_definition"),
		MethodKinds:   newKindSet("function_definition"),
		ClassKinds:    newKindSet("class_definition"),

		ControlFlowKinds: newKindSet(
			"if_statement", "elif_clause", "for_statement", "while_statement",
			"try_statement", "except_clause", "conditional_expression",
			"match_statement", "case_clause",
		),
		LogicalOperatorKinds: newKindSet("and", "or"),
		CommentKinds:         newKindSet("comment"),

		NestingWrapperKinds: newKindSet(
			"if_statement", "for_statement", "while_statement", "try_statement", "with_statement",
		),
		NestingBodyBlockKind: "block",
	})
}
