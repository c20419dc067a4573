package component_test

import (
	"testing"

	"github.com/telepilot/telepilot/internal/component"
	"github.com/telepilot/telepilot/internal/keys"
	"github.com/telepilot/telepilot/internal/testutil"
)

// twoPanes builds root(col){left(row: left-0, left-1), right(row: right-0, right-1)}.
func twoPanes(ctx *component.Context) (root, left, right *component.Container, leftLeaves, rightLeaves []*component.Leaf) {
	left, leftLeaves = testutil.Row(ctx, "left", 2)
	right, rightLeaves = testutil.Row(ctx, "right", 2)
	root = testutil.Column(ctx, "root", left, right)
	return root, left, right, leftLeaves, rightLeaves
}

func collectAll(c component.Component, out *[]component.Component) {
	*out = append(*out, c)
	if container := c.AsContainer(); container != nil {
		for _, child := range container.Children() {
			collectAll(child, out)
		}
	}
}

func TestSingleActiveFocus(t *testing.T) {
	ctx := component.NewContext()
	root, _, _, leftLeaves, rightLeaves := twoPanes(ctx)

	targets := []component.Component{leftLeaves[0], rightLeaves[1], leftLeaves[1], rightLeaves[0]}
	for _, target := range targets {
		ctx.SetFocused(target)
		var all []component.Component
		collectAll(root, &all)
		focused := 0
		for _, c := range all {
			if c.Focused() {
				focused++
				if c != target {
					t.Fatalf("expected focus on %s, found it on %s", target.ID(), c.ID())
				}
			}
		}
		if focused != 1 {
			t.Fatalf("expected exactly one focused component, got %d", focused)
		}
	}
}

func TestSelectionChainConsistency(t *testing.T) {
	ctx := component.NewContext()
	root, _, right, _, rightLeaves := twoPanes(ctx)

	ctx.SetFocused(rightLeaves[1])

	if root.SelectedChild() != right {
		t.Fatalf("expected root selection %q, got %v", "right", root.SelectedChild())
	}
	if right.SelectedChild() != rightLeaves[1] {
		t.Fatalf("expected right selection %q, got %v", rightLeaves[1].ID(), right.SelectedChild())
	}
}

func TestBlurBeforeFocusOrdering(t *testing.T) {
	ctx := component.NewContext()
	_, left, right, leftLeaves, rightLeaves := twoPanes(ctx)

	ctx.SetFocused(leftLeaves[0])

	rec := &testutil.Recorder{}
	rec.Observe(leftLeaves[0], component.EventBlur)
	rec.Observe(left, component.EventBlur)
	rec.Observe(right, component.EventFocus)
	rec.Observe(rightLeaves[1], component.EventFocus)

	ctx.SetFocused(rightLeaves[1])

	want := []string{"blur:left-0", "blur:left", "focus:right", "focus:right-1"}
	if len(rec.Entries) != len(want) {
		t.Fatalf("expected %d events, got %v", len(want), rec.Entries)
	}
	for i, entry := range want {
		if rec.Entries[i] != entry {
			t.Fatalf("event %d: expected %q, got %q (all: %v)", i, entry, rec.Entries[i], rec.Entries)
		}
	}
}

func TestReentrantFocusCollapse(t *testing.T) {
	ctx := component.NewContext()
	row, leaves := testutil.Row(ctx, "row", 3)
	_ = row
	a, b, c := leaves[0], leaves[1], leaves[2]

	ctx.SetFocused(a)

	bFocusCount := 0
	b.On(component.EventFocus, func(component.Event) {
		bFocusCount++
		ctx.SetFocused(c)
	})

	rec := &testutil.Recorder{}
	rec.Observe(b, component.EventBlur)
	rec.Observe(c, component.EventFocus)

	ctx.SetFocused(b)

	if ctx.Focused() != c {
		t.Fatalf("expected transfer to settle on %q, got %v", c.ID(), ctx.Focused())
	}
	if bFocusCount != 1 {
		t.Fatalf("expected b's focus handlers to run exactly once, got %d", bFocusCount)
	}
	want := []string{"blur:row-1", "focus:row-2"}
	if len(rec.Entries) != len(want) || rec.Entries[0] != want[0] || rec.Entries[1] != want[1] {
		t.Fatalf("expected %v after collapse, got %v", want, rec.Entries)
	}
}

func TestReentrantCollapseLastWriterWins(t *testing.T) {
	ctx := component.NewContext()
	_, leaves := testutil.Row(ctx, "row", 4)

	leaves[1].On(component.EventFocus, func(component.Event) {
		ctx.SetFocused(leaves[2])
		ctx.SetFocused(leaves[3])
	})

	ctx.SetFocused(leaves[1])

	if ctx.Focused() != leaves[3] {
		t.Fatalf("expected last pending target %q to win, got %v", leaves[3].ID(), ctx.Focused())
	}
}

func TestDisposeFocusedRetargetsBeforeDetach(t *testing.T) {
	ctx := component.NewContext()
	_, _, _, leftLeaves, _ := twoPanes(ctx)

	ctx.SetFocused(leftLeaves[0])
	leftLeaves[0].Dispose()

	if ctx.Focused() != leftLeaves[1] {
		t.Fatalf("expected focus to retarget to %q, got %v", leftLeaves[1].ID(), ctx.Focused())
	}
}

func TestHidingFocusedLeafRetargets(t *testing.T) {
	ctx := component.NewContext()
	_, _, _, leftLeaves, _ := twoPanes(ctx)

	ctx.SetFocused(leftLeaves[0])
	leftLeaves[0].SetVisible(false)

	if ctx.Focused() != leftLeaves[1] {
		t.Fatalf("expected focus to retarget to %q, got %v", leftLeaves[1].ID(), ctx.Focused())
	}
}

func TestHidingLastSelectableClearsFocus(t *testing.T) {
	ctx := component.NewContext()
	row, leaves := testutil.Row(ctx, "row", 1)
	_ = row

	ctx.SetFocused(leaves[0])
	leaves[0].SetEnabled(false)

	if ctx.Focused() != nil {
		t.Fatalf("expected focus cleared, got %v", ctx.Focused())
	}
}

func TestHandleKeyCrossesSubtreeBoundary(t *testing.T) {
	ctx := component.NewContext()
	_, _, _, leftLeaves, rightLeaves := twoPanes(ctx)

	// Left row is exhausted going down; the column carries focus across.
	ctx.SetFocused(leftLeaves[1])
	ev := component.NewKeyEvent(keys.Down, keys.Modifiers{})
	if got := ctx.HandleKey(ev); got != component.Handled {
		t.Fatalf("expected key handled, got %v", got)
	}
	if ctx.Focused() != rightLeaves[0] {
		t.Fatalf("expected focus on %q, got %v", rightLeaves[0].ID(), ctx.Focused())
	}
}

func TestHandleKeyAtEdgeStaysUnhandled(t *testing.T) {
	ctx := component.NewContext()
	_, _, _, leftLeaves, _ := twoPanes(ctx)

	ctx.SetFocused(leftLeaves[0])
	ev := component.NewKeyEvent(keys.Up, keys.Modifiers{})
	if got := ctx.HandleKey(ev); got != component.NotHandled {
		t.Fatalf("expected key unhandled at the top edge, got %v", got)
	}
	if ctx.Focused() != leftLeaves[0] {
		t.Fatalf("expected focus unchanged, got %v", ctx.Focused())
	}
}

func TestStopPropagationShortCircuits(t *testing.T) {
	ctx := component.NewContext()
	_, _, _, leftLeaves, _ := twoPanes(ctx)

	ctx.SetFocused(leftLeaves[0])
	leftLeaves[0].On(component.EventKey, func(ev component.Event) {
		ev.Key.StopPropagation()
	})

	ev := component.NewKeyEvent(keys.Right, keys.Modifiers{})
	if got := ctx.HandleKey(ev); got != component.Handled {
		t.Fatalf("expected stopped event reported as handled, got %v", got)
	}
	if ctx.Focused() != leftLeaves[0] {
		t.Fatalf("expected focus unchanged after stop, got %v", ctx.Focused())
	}
}
