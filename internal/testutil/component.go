// Package testutil provides shared helpers for exercising the component
// tree in tests: canned tree builders and an event recorder that captures
// notification order.
package testutil

import (
	"fmt"

	"github.com/telepilot/telepilot/internal/component"
)

// Recorder captures event notifications in arrival order as "type:id"
// strings, so tests can assert exact sequencing (blur before focus, leaf to
// root, and so on).
type Recorder struct {
	Entries []string
}

// Observe subscribes the recorder to the given event types on c.
func (r *Recorder) Observe(c component.Component, types ...component.EventType) {
	for _, t := range types {
		eventType := t
		c.On(eventType, func(ev component.Event) {
			r.Entries = append(r.Entries, fmt.Sprintf("%s:%s", eventType, ev.Target.ID()))
		})
	}
}

// Reset drops the recorded entries.
func (r *Recorder) Reset() {
	r.Entries = nil
}

// Row builds a horizontal container with n leaves named "<id>-0".."<id>-n".
func Row(ctx *component.Context, id string, n int) (*component.Container, []*component.Leaf) {
	row := component.NewContainer(ctx, id, component.OrientationHorizontal)
	leaves := make([]*component.Leaf, 0, n)
	for i := 0; i < n; i++ {
		leaf := component.NewLeaf(ctx, fmt.Sprintf("%s-%d", id, i))
		row.AddChild(leaf)
		leaves = append(leaves, leaf)
	}
	return row, leaves
}

// Column builds a vertical container holding the given children.
func Column(ctx *component.Context, id string, children ...component.Component) *component.Container {
	col := component.NewContainer(ctx, id, component.OrientationVertical)
	for _, child := range children {
		col.AddChild(child)
	}
	return col
}

// RenderLog is a Renderer that appends rendered component IDs.
type RenderLog struct {
	IDs []string
}

func (r *RenderLog) Render(c component.Component) {
	r.IDs = append(r.IDs, c.ID())
}

// Reset drops the log.
func (r *RenderLog) Reset() { r.IDs = nil }
