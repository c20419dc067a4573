package ui

import "github.com/telepilot/telepilot/internal/component"

// renderTracker is the render sink for the component tree. Bubble Tea
// repaints the whole view after every update, so there is no partial redraw
// to drive; the tracker records which components were invalidated so tests
// and traces can observe coalescing, and counts frames for the view.
type renderTracker struct {
	counts map[string]int
	frames int
}

func newRenderTracker() *renderTracker {
	return &renderTracker{counts: make(map[string]int)}
}

func (r *renderTracker) Render(c component.Component) {
	r.counts[c.ID()]++
	r.frames++
}

// Count returns how many render requests the component with the given ID has
// received.
func (r *renderTracker) Count(id string) int { return r.counts[id] }
