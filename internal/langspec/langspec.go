// Package langspec is the Language Registry: it maps file extensions to a
// Language and exposes, for each Language, a static Spec naming which
// grammar node kinds realize functions, methods, classes, control-flow
// branches, logical operators, comments, and nesting scopes.
//
// Specs are immutable and built once at init time; Get never allocates, and
// Detect allocates only to lower-case an extension with upper-case letters.
package langspec

import (
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/hotspot-dev/hotspot/internal/model"
)

// kindSet is an unordered, deduplicated collection of grammar node-kind names.
type kindSet map[string]struct{}

func newKindSet(kinds ...string) kindSet {
	s := make(kindSet, len(kinds))
	for _, k := range kinds {
		s[k] = struct{}{}
	}
	return s
}

func (s kindSet) Has(kind string) bool {
	_, ok := s[kind]
	return ok
}

// Spec is the immutable per-language node-kind table described in spec
// section 4.A.
type Spec struct {
	Language model.Language

	grammar func() *sitter.Language

	FunctionKinds         kindSet
	MethodKinds           kindSet
	ClassKinds            kindSet
	ControlFlowKinds      kindSet
	LogicalOperatorKinds  kindSet
	CommentKinds          kindSet

	// NestingWrapperKinds are nesting_kinds entries that introduce a scope
	// AND whose immediate child may duplicate that scope as a generic body
	// block (if_statement followed by its own compound_statement, etc).
	// Entering one of these counts once and suppresses the next nesting
	// node encountered so the wrapper and its body aren't both counted.
	NestingWrapperKinds kindSet

	// NestingBodyBlockKind is the language's generic lexical-scope body
	// node (block, statement_block, compound_statement, ...). It counts as
	// nesting on its own (e.g. a class body, or a function body after the
	// function-boundary reset) unless immediately suppressed by an
	// enclosing NestingWrapperKinds entry.
	NestingBodyBlockKind string

	// SuppressFunctionBody is true only for Rust: its function_item body
	// block is explicitly excluded from nesting_kinds by spec, unlike every
	// other language's function body.
	SuppressFunctionBody bool

	// IsClassNode reports whether a node of a ClassKinds kind should
	// actually count as a class. Defaults to "yes" for every ClassKinds
	// match; Go overrides it because type_spec also covers plain type
	// aliases that are not struct/interface declarations.
	IsClassNode func(n *sitter.Node, source []byte) bool
}

// FunctionOrMethodKind reports whether kind denotes a node that is ever a
// function_kinds or method_kinds match, and whether the two sets are the
// same grammar symbol for this language (Rust/Python/C++ style ambiguity
// resolved by walk-time parent context).
func (s *Spec) FunctionOrMethodKind(kind string) (isFunction, isMethod bool) {
	isFunction = s.FunctionKinds.Has(kind)
	isMethod = s.MethodKinds.Has(kind)
	return
}

// IsNestingKind reports whether kind is any nesting_kinds entry (wrapper or
// generic body block).
func (s *Spec) IsNestingKind(kind string) bool {
	return kind == s.NestingBodyBlockKind || s.NestingWrapperKinds.Has(kind)
}

// IsWrapperKind reports whether kind is a "control construct" nesting entry
// that should suppress its own immediately-following body block.
func (s *Spec) IsWrapperKind(kind string) bool {
	return s.NestingWrapperKinds.Has(kind)
}

// NewParser constructs a fresh *sitter.Parser bound to this language's
// grammar. Parser objects are not safe to share across goroutines; callers
// must not cache the result beyond one worker.
func (s *Spec) NewParser() *sitter.Parser {
	p := sitter.NewParser()
	p.SetLanguage(s.grammar())
	return p
}

var registry = map[model.Language]*Spec{}

func register(s *Spec) {
	registry[s.Language] = s
}

// extensions maps a lowercased file extension (including the leading dot) to
// a Language, per spec section 4.A's fixed table.
var extensions = map[string]model.Language{
	".rs":   model.Rust,
	".js":   model.JavaScript,
	".mjs":  model.JavaScript,
	".cjs":  model.JavaScript,
	".jsx":  model.JavaScript,
	".ts":   model.TypeScript,
	".tsx":  model.TSX,
	".py":   model.Python,
	".pyw":  model.Python,
	".java": model.Java,
	".c":    model.C,
	".h":    model.C,
	".cc":   model.Cpp,
	".cpp":  model.Cpp,
	".cxx":  model.Cpp,
	".hpp":  model.Cpp,
	".hxx":  model.Cpp,
	".go":   model.Go,
}

// Detect maps a file path's extension to a Language. The second return
// value is false for unsupported extensions; callers should filter the file
// out rather than treat this as an error.
func Detect(path string) (model.Language, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	lang, ok := extensions[ext]
	return lang, ok
}

// IsSupported reports whether path's extension maps to a known Language.
func IsSupported(path string) bool {
	_, ok := Detect(path)
	return ok
}

// Get returns the static Spec for lang, or nil if lang is not registered.
// TSX is registered with its own grammar handle but shares TypeScript's
// node-kind vocabulary; the TSX designation only changes whether the
// Sanitizer runs before parsing.
func Get(lang model.Language) *Spec {
	return registry[lang]
}

