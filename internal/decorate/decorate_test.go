package decorate

import (
	"testing"

	"github.com/telepilot/telepilot/internal/component"
	"github.com/telepilot/telepilot/internal/markup"
)

const layoutDoc = `
id: root
classes: [container]
attrs: {orientation: vertical}
children:
  - id: row
    classes: [container]
    attrs: {orientation: horizontal, scroll: middle}
    children:
      - {id: a, classes: [item], label: A}
      - {id: b, classes: [item], label: B, attrs: {selected: "true"}}
      - {id: c, classes: [item], label: C, attrs: {disabled: "true"}}
  - id: ornament
    classes: [sparkle]
    children:
      - {id: ghost, classes: [item]}
  - id: hidden-row
    classes: [container]
    attrs: {orientation: horizontal, hidden: "true"}
    children:
      - {id: d, classes: [item]}
`

func decorateDoc(t *testing.T) (*component.Context, *component.Container) {
	t.Helper()
	node, err := markup.Parse([]byte(layoutDoc))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	ctx := component.NewContext()
	comp := NewRegistry().Decorate(ctx, node)
	if comp == nil {
		t.Fatalf("expected the root to decorate")
	}
	root := comp.AsContainer()
	if root == nil {
		t.Fatalf("expected a container root")
	}
	return ctx, root
}

func TestDecorateBuildsTypedTree(t *testing.T) {
	_, root := decorateDoc(t)

	if root.Orientation() != component.OrientationVertical {
		t.Fatalf("expected vertical root, got %s", root.Orientation())
	}
	// The sparkle node has no registered class: it and its subtree are
	// skipped, leaving two children.
	if len(root.Children()) != 2 {
		t.Fatalf("expected unmatched classes skipped, got %d children", len(root.Children()))
	}

	row := root.Children()[0].AsContainer()
	if row == nil || row.ID() != "row" {
		t.Fatalf("expected row container first, got %v", root.Children()[0].ID())
	}
	if row.Orientation() != component.OrientationHorizontal {
		t.Fatalf("expected horizontal row, got %s", row.Orientation())
	}
	if row.ScrollPolicyValue() != component.ScrollMiddle {
		t.Fatalf("expected middle scroll policy, got %s", row.ScrollPolicyValue())
	}
}

func TestDecorateAppliesMarks(t *testing.T) {
	_, root := decorateDoc(t)
	row := root.Children()[0].AsContainer()

	if got := row.SelectedChild(); got == nil || got.ID() != "b" {
		t.Fatalf("expected the selected mark to win, got %v", got)
	}
	var disabled component.Component
	for _, child := range row.Children() {
		if child.ID() == "c" {
			disabled = child
		}
	}
	if disabled == nil || disabled.Enabled() {
		t.Fatalf("expected c disabled")
	}
	hiddenRow := root.Children()[1]
	if hiddenRow.Visible() {
		t.Fatalf("expected hidden-row invisible")
	}
}

func TestDecorateBindsNodes(t *testing.T) {
	_, root := decorateDoc(t)
	row := root.Children()[0].AsContainer()
	leaf := row.Children()[0]

	n := leaf.Node()
	if n == nil || n.Label != "A" {
		t.Fatalf("expected the markup node bound, got %v", n)
	}
}

func TestDecorateUnmatchedRootReturnsNil(t *testing.T) {
	node, err := markup.Parse([]byte("id: x\nclasses: [nothing]\n"))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if comp := NewRegistry().Decorate(component.NewContext(), node); comp != nil {
		t.Fatalf("expected nil for an unmatched root, got %v", comp)
	}
}

func TestRegisterCustomClass(t *testing.T) {
	r := NewRegistry()
	r.Register("banner", func(ctx *component.Context, node *markup.Node) component.Component {
		return component.NewLeaf(ctx, node.ID)
	})
	node, err := markup.Parse([]byte("id: hello\nclasses: [banner]\n"))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	comp := r.Decorate(component.NewContext(), node)
	if comp == nil || comp.ID() != "hello" {
		t.Fatalf("expected the custom constructor to run, got %v", comp)
	}
	if comp.Node() == nil {
		t.Fatalf("expected Decorate to bind the node")
	}
}
