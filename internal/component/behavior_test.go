package component_test

import (
	"testing"

	"github.com/telepilot/telepilot/internal/component"
	"github.com/telepilot/telepilot/internal/testutil"
)

func TestTabSyncMirrorsSelectionByIndex(t *testing.T) {
	ctx := component.NewContext()
	tabs, tabLeaves := testutil.Row(ctx, "tabs", 3)
	pages := component.NewContainer(ctx, "pages", component.OrientationStack)
	pageLeaves := make([]*component.Leaf, 3)
	for i := range pageLeaves {
		pageLeaves[i] = component.NewLeaf(ctx, "page-"+string(rune('a'+i)))
		pages.AddChild(pageLeaves[i])
	}

	component.NewTabSync(tabs, pages)

	tabs.SetSelectedChild(tabLeaves[2])
	if pages.SelectedChild() != pageLeaves[2] {
		t.Fatalf("expected page %q selected, got %v", pageLeaves[2].ID(), pages.SelectedChild())
	}

	tabs.SetSelectedChild(tabLeaves[1])
	if pages.SelectedChild() != pageLeaves[1] {
		t.Fatalf("expected page %q selected, got %v", pageLeaves[1].ID(), pages.SelectedChild())
	}
}

func TestTabSyncRequiresStackPages(t *testing.T) {
	ctx := component.NewContext()
	tabs, _ := testutil.Row(ctx, "tabs", 2)
	pages, _ := testutil.Row(ctx, "pages", 2)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for non-stack pages")
		}
	}()
	component.NewTabSync(tabs, pages)
}
