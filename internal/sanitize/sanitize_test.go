package sanitize

import (
	"strings"
	"testing"

	"github.com/hotspot-dev/hotspot/internal/model"
)

func TestTSXEscapesBareAmpersandInText(t *testing.T) {
	t.Parallel()
	in := []byte(`const x = <div>Tom & Jerry</div>;`)
	out := string(TSX(in))
	if !strings.Contains(out, "Tom &amp; Jerry") {
		t.Errorf("expected bare & escaped in text, got %q", out)
	}
}

func TestTSXLeavesAttributeAmpersandAlone(t *testing.T) {
	t.Parallel()
	in := []byte(`const x = <a href="a&b">link</a>;`)
	out := string(TSX(in))
	if !strings.Contains(out, `href="a&b"`) {
		t.Errorf("expected attribute & left alone, got %q", out)
	}
}

func TestTSXLeavesExpressionAmpersandAlone(t *testing.T) {
	t.Parallel()
	in := []byte(`const x = <div>{a && b}</div>;`)
	out := string(TSX(in))
	if !strings.Contains(out, "{a && b}") {
		t.Errorf("expected expression && left alone, got %q", out)
	}
}

func TestTSXLeavesWellFormedEntitiesAlone(t *testing.T) {
	t.Parallel()
	in := []byte(`const x = <div>&amp; &#65; &#x41;</div>;`)
	out := string(TSX(in))
	if strings.Contains(out, "&amp;amp;") {
		t.Errorf("should not double-escape an existing entity, got %q", out)
	}
	if !strings.Contains(out, "&#65;") || !strings.Contains(out, "&#x41;") {
		t.Errorf("numeric entities should survive untouched, got %q", out)
	}
}

func TestTSXCodeOutsideJSXUntouched(t *testing.T) {
	t.Parallel()
	in := []byte("if (a && b) {\n  return <div>hi</div>;\n}\n")
	out := string(TSX(in))
	if !strings.Contains(out, "if (a && b)") {
		t.Errorf("logical && in plain code should never be escaped, got %q", out)
	}
}

func TestTSXIdentityWhenNoAmpersand(t *testing.T) {
	t.Parallel()
	in := []byte(`const x = <div>hello</div>;`)
	out := TSX(in)
	if &out[0] != &in[0] {
		t.Error("expected the same underlying slice when nothing changed")
	}
}

func TestForDispatchesByLanguage(t *testing.T) {
	t.Parallel()
	in := []byte(`<div>a & b</div>`)
	if string(For(model.TSX, in)) == string(in) {
		t.Error("expected TSX dispatch to sanitize")
	}
	if string(For(model.JavaScript, in)) != string(in) {
		t.Error("expected non-TSX languages to pass through unchanged")
	}
}
