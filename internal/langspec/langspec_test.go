package langspec

import (
	"testing"

	"github.com/hotspot-dev/hotspot/internal/model"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	cases := []struct {
		path string
		want model.Language
		ok   bool
	}{
		{"lib.rs", model.Rust, true},
		{"a.js", model.JavaScript, true},
		{"a.mjs", model.JavaScript, true},
		{"a.jsx", model.JavaScript, true},
		{"a.ts", model.TypeScript, true},
		{"a.tsx", model.TSX, true},
		{"m.py", model.Python, true},
		{"m.pyw", model.Python, true},
		{"Main.java", model.Java, true},
		{"a.c", model.C, true},
		{"a.h", model.C, true},
		{"a.cpp", model.Cpp, true},
		{"a.hpp", model.Cpp, true},
		{"s.go", model.Go, true},
		{"README.md", "", false},
		{"no_extension", "", false},
		{"A.RS", model.Rust, true},
	}

	for _, c := range cases {
		t.Run(c.path, func(t *testing.T) {
			t.Parallel()
			got, ok := Detect(c.path)
			if ok != c.ok {
				t.Fatalf("Detect(%q) ok = %v, want %v", c.path, ok, c.ok)
			}
			if ok && got != c.want {
				t.Errorf("Detect(%q) = %q, want %q", c.path, got, c.want)
			}
		})
	}
}

func TestIsSupported(t *testing.T) {
	t.Parallel()
	if !IsSupported("main.go") {
		t.Error("main.go should be supported")
	}
	if IsSupported("image.png") {
		t.Error("image.png should not be supported")
	}
}

func TestGetEveryLanguageRegistered(t *testing.T) {
	t.Parallel()
	langs := []model.Language{
		model.Rust, model.JavaScript, model.TypeScript, model.TSX,
		model.Python, model.Java, model.C, model.Cpp, model.Go,
	}
	for _, l := range langs {
		if spec := Get(l); spec == nil {
			t.Errorf("Get(%q) = nil, want a registered spec", l)
		} else if spec.Language != l {
			t.Errorf("Get(%q).Language = %q", l, spec.Language)
		}
	}
}

func TestJavaHasNoFreeFunctions(t *testing.T) {
	t.Parallel()
	spec := Get(model.Java)
	if len(spec.FunctionKinds) != 0 {
		t.Errorf("Java function_kinds should be empty, got %v", spec.FunctionKinds)
	}
}

func TestGoSpecOverridesClassNodeFilter(t *testing.T) {
	t.Parallel()
	spec := Get(model.Go)
	if spec.IsClassNode == nil {
		t.Fatal("Go spec should override IsClassNode")
	}
}

func TestRustSuppressesFunctionBody(t *testing.T) {
	t.Parallel()
	if !Get(model.Rust).SuppressFunctionBody {
		t.Error("Rust should suppress its own function body from nesting")
	}
	if Get(model.Cpp).SuppressFunctionBody {
		t.Error("C++ should not suppress its own function body from nesting")
	}
}

func TestAmbiguousFunctionMethodKinds(t *testing.T) {
	t.Parallel()
	for _, l := range []model.Language{model.Rust, model.Python, model.Cpp} {
		spec := Get(l)
		isFn, isMethod := spec.FunctionOrMethodKind(spec.FunctionKinds.sampleOrEmpty())
		if spec.FunctionKinds.sampleOrEmpty() == "" {
			continue
		}
		if !isFn || !isMethod {
			t.Errorf("%s: expected the same grammar symbol to be both function and method kind", l)
		}
	}
}

func (s kindSet) sampleOrEmpty() string {
	for k := range s {
		return k
	}
	return ""
}
