package langspec

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/hotspot-dev/hotspot/internal/model"
)

// typeScriptSpec builds the shared TypeScript/TSX node-kind table: the JS
// set plus interface/enum/type-alias declarations and function/method
// signature nodes, per spec section 4.A. TSX parses with its own grammar
// but uses identical node names.
func typeScriptSpec(lang model.Language, grammar func() *sitter.Language) *Spec {
	return &Spec{
		Language: lang,
		grammar:  grammar,

		FunctionKinds: newKindSet(
			"function_declaration", "function_expression", "arrow_function",
			"generator_function_declaration", "function_signature",
		),
		MethodKinds: newKindSet("method_definition", "method_signature"),
		ClassKinds: newKindSet(
			"class_declaration", "interface_declaration", "enum_declaration", "type_alias_declaration",
		),

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
	}
}

func init() {
	register(typeScriptSpec(model.TypeScript, typescript.GetLanguage))
	register(typeScriptSpec(model.TSX, tsx.GetLanguage))
}
