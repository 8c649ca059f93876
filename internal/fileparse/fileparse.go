// Package fileparse implements the File Parser: it turns a (path,
// language, source bytes) triple into a model.FileAnalysis plus any
// model.ParseWarning, per spec section 4.C.
package fileparse

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/hotspot-dev/hotspot/internal/langspec"
	"github.com/hotspot-dev/hotspot/internal/model"
	"github.com/hotspot-dev/hotspot/internal/sanitize"
)

const maxErrorLocations = 5

// Result is what Parse returns: either a FileAnalysis (possibly derived from
// a best-effort partial tree) or none at all, plus zero or more warnings.
// A file contributes no FileAnalysis only when it fails UTF-8 validation,
// its language has no registered Spec, or the grammar produces no tree
// whatsoever.
type Result struct {
	Analysis *model.FileAnalysis
	Warnings []model.ParseWarning
}

// Parser owns one lazily-constructed *sitter.Parser per language. It is NOT
// safe for concurrent use: callers running a worker pool must give each
// goroutine its own Parser, exactly as spec section 5 requires ("each
// worker thread owns a cache keyed by Language").
type Parser struct {
	parsers map[model.Language]*sitter.Parser
}

// New returns a Parser with an empty, lazily-populated cache.
func New() *Parser {
	return &Parser{parsers: make(map[model.Language]*sitter.Parser)}
}

func (p *Parser) parserFor(spec *langspec.Spec) *sitter.Parser {
	if sp, ok := p.parsers[spec.Language]; ok {
		return sp
	}
	sp := spec.NewParser()
	p.parsers[spec.Language] = sp
	return sp
}

// Parse implements the File Parser's public contract.
func (p *Parser) Parse(path string, lang model.Language, source []byte) Result {
	if !utf8.Valid(source) {
		return Result{Warnings: []model.ParseWarning{{
			Path:    path,
			Kind:    model.UnsupportedEncoding,
			Message: "file is not valid UTF-8",
		}}}
	}

	spec := langspec.Get(lang)
	if spec == nil {
		return Result{Warnings: []model.ParseWarning{{
			Path:    path,
			Kind:    model.ParseError,
			Message: fmt.Sprintf("no language spec registered for %q", lang),
		}}}
	}

	sanitized := sanitize.For(lang, source)
	var warnings []model.ParseWarning
	if lang == model.TSX && len(sanitized) != len(source) {
		warnings = append(warnings, model.ParseWarning{
			Path:    path,
			Kind:    model.SanitizationNote,
			Message: "escaped bare & in JSX text before parsing",
		})
	}

	parser := p.parserFor(spec)
	tree := parser.Parse(nil, sanitized)
	if tree == nil {
		return Result{Warnings: append(warnings, model.ParseWarning{
			Path:    path,
			Kind:    model.ParseError,
			Message: "grammar produced no concrete syntax tree",
		})}
	}
	defer tree.Close()
	root := tree.RootNode()

	w := newWalker(spec, sanitized)
	w.walk(root)

	if root.HasError() {
		msg := "partial parse: syntax errors present"
		if len(w.errorLocations) > 0 {
			msg += " at " + strings.Join(w.errorLocations, ", ")
		}
		warnings = append(warnings, model.ParseWarning{Path: path, Kind: model.ParseError, Message: msg})
	}

	lines := countLines(source)
	blank := countBlankLines(source)
	comment := len(w.commentLines)
	loc := lines - blank - comment
	if loc < 0 {
		loc = 0
	}

	cc := 1 + w.controlFlowCount + w.logicalOpCount
	functions := w.functionCount
	methods := w.methodCount
	classes := w.classCount
	nesting := w.maxNestDepth

	score := complexityScore(loc, functions+methods, classes, cc, nesting)

	analysis := &model.FileAnalysis{
		Path:                 path,
		Language:             lang,
		LinesOfCode:          loc,
		BlankLines:           blank,
		CommentLines:         comment,
		Functions:            functions,
		Methods:              methods,
		Classes:              classes,
		CyclomaticComplexity: cc,
		ComplexityScore:      score,
		MaxNestingDepth:      nesting,
	}

	return Result{Analysis: analysis, Warnings: warnings}
}

// complexityScore implements spec section 4.C's composite formula:
// (L/100) + 0.5*sqrt(F) + 0.3*sqrt(K) + 0.4*C + 0.3*N.
func complexityScore(linesOfCode, functionsAndMethods, classes, cyclomatic, nesting int) float64 {
	l := float64(linesOfCode)
	f := float64(functionsAndMethods)
	k := float64(classes)
	c := float64(cyclomatic)
	n := float64(nesting)
	return (l / 100) + 0.5*math.Sqrt(f) + 0.3*math.Sqrt(k) + 0.4*c + 0.3*n
}

// countLines counts physical lines: the number of '\n' bytes, plus one more
// if the file doesn't end with a trailing newline and isn't empty.
func countLines(source []byte) int {
	if len(source) == 0 {
		return 0
	}
	n := 0
	for _, b := range source {
		if b == '\n' {
			n++
		}
	}
	if source[len(source)-1] != '\n' {
		n++
	}
	return n
}

// countBlankLines counts lines containing only whitespace (or nothing).
func countBlankLines(source []byte) int {
	text := string(source)
	if text == "" {
		return 0
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	n := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			n++
		}
	}
	return n
}
