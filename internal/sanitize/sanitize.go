// Package sanitize pre-processes source text before parsing when a
// grammar needs it. The only current case is TSX: tree-sitter's TSX
// grammar rejects a bare "&" in JSX text positions, so the sanitizer
// escapes it to "&amp;" there while leaving attribute values, expression
// braces, already-well-formed entities, and tag syntax untouched.
package sanitize

import "github.com/hotspot-dev/hotspot/internal/model"

type state int

const (
	stNormal state = iota
	stInTag
	stInText
	stInExpr
)

// TSX runs the four-state ampersand sanitizer described in spec section
// 4.B. It returns src unmodified (same slice, no copy) when no substitution
// is required.
func TSX(src []byte) []byte {
	var out []byte // allocated lazily, only if we actually change something
	st := stNormal
	returnState := stNormal
	exprDepth := 0
	tagDepth := 0
	closingTag := false

	flushUnchangedPrefix := func(i int) {
		if out == nil {
			out = make([]byte, 0, len(src)+8)
			out = append(out, src[:i]...)
		}
	}
	appendByte := func(i int, c byte) {
		if out != nil {
			out = append(out, c)
		}
	}

	for i := 0; i < len(src); i++ {
		c := src[i]
		switch st {
		case stNormal:
			if c == '<' && isTagStart(src, i+1) {
				closingTag = i+1 < len(src) && src[i+1] == '/'
				st = stInTag
			}
			appendByte(i, c)

		case stInTag:
			switch c {
			case '"', '\'':
				quote := c
				appendByte(i, c)
				i++
				for i < len(src) && src[i] != quote {
					appendByte(i, src[i])
					i++
				}
				if i < len(src) {
					appendByte(i, src[i])
				}
			case '>':
				if closingTag {
					tagDepth--
				} else if i > 0 && src[i-1] != '/' {
					tagDepth++
				}
				if tagDepth <= 0 {
					tagDepth = 0
					st = stNormal
				} else {
					st = stInText
				}
				appendByte(i, c)
			case '{':
				returnState = stInTag
				st = stInExpr
				exprDepth = 1
				appendByte(i, c)
			default:
				appendByte(i, c)
			}

		case stInText:
			switch c {
			case '&':
				if isWellFormedEntity(src, i) {
					appendByte(i, c)
				} else {
					flushUnchangedPrefix(i)
					out = append(out, "&amp;"...)
				}
			case '<':
				if isTagStart(src, i+1) {
					closingTag = i+1 < len(src) && src[i+1] == '/'
					st = stInTag
				}
				appendByte(i, c)
			case '{':
				returnState = stInText
				st = stInExpr
				exprDepth = 1
				appendByte(i, c)
			default:
				appendByte(i, c)
			}

		case stInExpr:
			switch c {
			case '{':
				exprDepth++
			case '}':
				exprDepth--
				if exprDepth == 0 {
					st = returnState
				}
			}
			appendByte(i, c)
		}
	}

	if out == nil {
		return src
	}
	return out
}

// isTagStart reports whether the byte at src[i] (the position right after a
// '<') looks like the start of a JSX tag name, a closing-tag slash, or the
// '>' of a fragment opener "<>", as opposed to a comparison operator like
// "a < b".
func isTagStart(src []byte, i int) bool {
	if i >= len(src) {
		return false
	}
	c := src[i]
	return c == '/' || c == '>' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isWellFormedEntity reports whether src[i:] (src[i] == '&') begins a
// well-formed HTML entity reference: &name;, &#NN;, or &#xHH;.
func isWellFormedEntity(src []byte, i int) bool {
	j := i + 1
	if j >= len(src) {
		return false
	}
	if src[j] == '#' {
		j++
		if j < len(src) && (src[j] == 'x' || src[j] == 'X') {
			j++
			start := j
			for j < len(src) && isHexDigit(src[j]) {
				j++
			}
			return j > start && j < len(src) && src[j] == ';'
		}
		start := j
		for j < len(src) && src[j] >= '0' && src[j] <= '9' {
			j++
		}
		return j > start && j < len(src) && src[j] == ';'
	}
	start := j
	for j < len(src) && isAlnum(src[j]) {
		j++
	}
	return j > start && j < len(src) && src[j] == ';'
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// For is the dispatch entry point the File Parser calls: every language but
// TSX is the identity function, so callers avoid copying when no
// sanitization is needed.
func For(lang model.Language, src []byte) []byte {
	if lang == model.TSX {
		return TSX(src)
	}
	return src
}
