package component_test

import (
	"testing"

	"github.com/telepilot/telepilot/internal/component"
	"github.com/telepilot/telepilot/internal/testutil"
)

func TestScheduleRenderIsImmediateOutsideScope(t *testing.T) {
	log := &testutil.RenderLog{}
	ctx := component.NewContext(component.WithRenderer(log))
	leaf := component.NewLeaf(ctx, "leaf")

	ctx.ScheduleRender(leaf)
	ctx.ScheduleRender(leaf)

	if len(log.IDs) != 2 {
		t.Fatalf("expected two immediate renders, got %v", log.IDs)
	}
}

func TestPostponeDeduplicatesRenders(t *testing.T) {
	log := &testutil.RenderLog{}
	ctx := component.NewContext(component.WithRenderer(log))
	a := component.NewLeaf(ctx, "a")
	b := component.NewLeaf(ctx, "b")

	ctx.Postpone(func() {
		ctx.ScheduleRender(a)
		ctx.ScheduleRender(b)
		ctx.ScheduleRender(a)
		if len(log.IDs) != 0 {
			t.Fatalf("expected renders deferred inside the scope, got %v", log.IDs)
		}
	})

	if len(log.IDs) != 2 || log.IDs[0] != "a" || log.IDs[1] != "b" {
		t.Fatalf("expected deduplicated flush [a b], got %v", log.IDs)
	}
}

func TestNestedPostponeFlushesOnceAtOutermostExit(t *testing.T) {
	log := &testutil.RenderLog{}
	ctx := component.NewContext(component.WithRenderer(log))
	leaf := component.NewLeaf(ctx, "leaf")

	ctx.Postpone(func() {
		ctx.Postpone(func() {
			ctx.ScheduleRender(leaf)
		})
		if len(log.IDs) != 0 {
			t.Fatalf("expected no flush at the inner exit, got %v", log.IDs)
		}
		ctx.ScheduleRender(leaf)
	})

	if len(log.IDs) != 1 {
		t.Fatalf("expected a single flushed render, got %v", log.IDs)
	}
}

func TestPostponeFlushesOnPanic(t *testing.T) {
	log := &testutil.RenderLog{}
	ctx := component.NewContext(component.WithRenderer(log))
	leaf := component.NewLeaf(ctx, "leaf")

	func() {
		defer func() {
			if recover() == nil {
				t.Fatalf("expected the panic to propagate")
			}
		}()
		ctx.Postpone(func() {
			ctx.ScheduleRender(leaf)
			panic("boom")
		})
	}()

	if len(log.IDs) != 1 || log.IDs[0] != "leaf" {
		t.Fatalf("expected queued render flushed despite panic, got %v", log.IDs)
	}
}
