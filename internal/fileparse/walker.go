package fileparse

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/hotspot-dev/hotspot/internal/langspec"
)

// frame is one entry in the explicit traversal stack. The walk is iterative
// (no Go call-stack recursion) so that a pathologically deep or adversarial
// tree can't blow the goroutine stack, per spec section 5's walking rule.
type frame struct {
	node     *sitter.Node
	childIdx int
	entered  bool

	isClassFrame       bool
	isFunctionFrame    bool
	isNestingFrame     bool
	setPendingSuppress bool
}

// walker accumulates every structural metric in a single pass over the tree.
type walker struct {
	spec   *langspec.Spec
	source []byte

	classDepth   int
	nestDepth    int
	maxNestDepth int
	depthStack   []int

	pendingSuppressNesting bool

	functionCount    int
	methodCount      int
	classCount       int
	controlFlowCount int
	logicalOpCount   int

	commentLines   map[int]struct{}
	errorLocations []string
}

func newWalker(spec *langspec.Spec, source []byte) *walker {
	return &walker{
		spec:         spec,
		source:       source,
		commentLines: make(map[int]struct{}),
	}
}

func (w *walker) walk(root *sitter.Node) {
	stack := []*frame{{node: root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if !top.entered {
			top.entered = true
			w.enter(top)
		}

		if int(top.childIdx) < int(top.node.ChildCount()) {
			child := top.node.Child(top.childIdx)
			top.childIdx++
			stack = append(stack, &frame{node: child})
			continue
		}

		w.exit(top)
		stack = stack[:len(stack)-1]
	}
}

func (w *walker) enter(f *frame) {
	n := f.node
	kind := n.Type()

	if len(w.errorLocations) < maxErrorLocations && (n.IsError() || n.IsMissing()) {
		p := n.StartPoint()
		w.errorLocations = append(w.errorLocations, fmt.Sprintf("%d:%d", p.Row+1, p.Column+1))
	}

	if w.spec.CommentKinds.Has(kind) {
		start := int(n.StartPoint().Row)
		end := int(n.EndPoint().Row)
		for row := start; row <= end; row++ {
			w.commentLines[row] = struct{}{}
		}
	}

	if w.spec.ControlFlowKinds.Has(kind) {
		w.controlFlowCount++
	}
	if w.spec.LogicalOperatorKinds.Has(kind) {
		w.logicalOpCount++
	}

	if w.spec.ClassKinds.Has(kind) {
		counts := w.spec.IsClassNode == nil || w.spec.IsClassNode(n, w.source)
		if counts {
			w.classCount++
			w.classDepth++
			f.isClassFrame = true
		}
	}

	isFn, isMethod := w.spec.FunctionOrMethodKind(kind)
	switch {
	case isFn && isMethod:
		if w.classDepth > 0 {
			w.methodCount++
		} else {
			w.functionCount++
		}
	case isMethod:
		w.methodCount++
	case isFn:
		w.functionCount++
	}

	if isFn || isMethod {
		w.depthStack = append(w.depthStack, w.nestDepth)
		w.nestDepth = 0
		f.isFunctionFrame = true
		if w.spec.SuppressFunctionBody {
			w.pendingSuppressNesting = true
		}
		return
	}

	if w.spec.IsNestingKind(kind) {
		if w.pendingSuppressNesting {
			w.pendingSuppressNesting = false
			return
		}
		w.nestDepth++
		if w.nestDepth > w.maxNestDepth {
			w.maxNestDepth = w.nestDepth
		}
		f.isNestingFrame = true
		if w.spec.IsWrapperKind(kind) {
			w.pendingSuppressNesting = true
			f.setPendingSuppress = true
		}
	}
}

func (w *walker) exit(f *frame) {
	switch {
	case f.isNestingFrame:
		w.nestDepth--
	case f.isFunctionFrame:
		last := len(w.depthStack) - 1
		w.nestDepth = w.depthStack[last]
		w.depthStack = w.depthStack[:last]
	}
	if f.isClassFrame {
		w.classDepth--
	}
	// A wrapper whose body never materialized as a generic body-block node
	// (a brace-less if/for arm) leaves its one-shot suppression unconsumed;
	// clear it here so it can't leak out and suppress an unrelated sibling.
	if f.setPendingSuppress && w.pendingSuppressNesting {
		w.pendingSuppressNesting = false
	}
}
