package langspec

import (
	"github.com/smacker/go-tree-sitter/cpp"

	"github.com/hotspot-dev/hotspot/internal/model"
)

func init() {
	register(&Spec{
		Language: model.Cpp,
		grammar:  cpp.GetLanguage,

		// function_definition covers free functions and methods alike; the
		// walker disambiguates by whether it's nested inside a
		// class_specifier/struct_specifier body.
		FunctionKinds: newKindSet("function_definition"),
		MethodKinds:   newKindSet("function_definition"),
		ClassKinds:    newKindSet("class_specifier", "struct_specifier", "union_specifier", "enum_specifier"),

		ControlFlowKinds: newKindSet(
			"if_statement", "for_statement", "while_statement", "do_statement", "case_statement", "catch_clause",
		),
		LogicalOperatorKinds: newKindSet("&&", "||"),
		CommentKinds:         newKindSet("comment"),

		NestingWrapperKinds: newKindSet(
			"if_statement", "for_statement", "while_statement", "switch_statement", "catch_clause",
		),
		NestingBodyBlockKind: "compound_statement",
	})
}
