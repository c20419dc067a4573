// Package decorate maps markup classes to component constructors and builds
// component trees from layout documents.
package decorate

import (
	"github.com/telepilot/telepilot/internal/component"
	"github.com/telepilot/telepilot/internal/markup"
)

// Constructor builds a component for a markup node. The registry calls
// Decorate on the result; constructors must not.
type Constructor func(ctx *component.Context, node *markup.Node) component.Component

// Registry resolves markup classes to constructors. Classes on a node are
// tried in order; the first registered class wins. A node whose classes all
// miss is skipped along with its subtree — an unmatched class is a normal
// outcome, not an error.
type Registry struct {
	constructors map[string]Constructor
}

// NewRegistry returns a registry preloaded with the built-in classes:
// "container" (orientation/scroll attrs) and "item" (leaf).
func NewRegistry() *Registry {
	r := &Registry{constructors: make(map[string]Constructor)}
	r.Register("container", newContainer)
	r.Register("item", newLeaf)
	return r
}

// Register adds or replaces a class constructor.
func (r *Registry) Register(class string, fn Constructor) {
	if class == "" || fn == nil {
		return
	}
	r.constructors[class] = fn
}

// Find returns the constructor for the first matching class on the node.
func (r *Registry) Find(node *markup.Node) (Constructor, bool) {
	for _, class := range node.Classes {
		if fn, ok := r.constructors[class]; ok {
			return fn, true
		}
	}
	return nil, false
}

// Decorate builds the component subtree for node. It returns nil when no
// class matches. Children that fail to decorate are skipped; children of a
// leaf are ignored.
func (r *Registry) Decorate(ctx *component.Context, node *markup.Node) component.Component {
	if node == nil {
		return nil
	}
	fn, ok := r.Find(node)
	if !ok {
		return nil
	}
	comp := fn(ctx, node)
	if comp == nil {
		return nil
	}
	comp.Decorate(node)
	applyMarks(comp, node)
	if container := comp.AsContainer(); container != nil {
		for _, childNode := range node.Children {
			if child := r.Decorate(ctx, childNode); child != nil {
				container.AddChild(child)
			}
		}
	}
	return comp
}

// applyMarks reads the shared construction attrs every component honours.
// Marks are applied before the node's children decorate, so AddChild sees
// the disabled/hidden state when it picks an initial selection.
func applyMarks(comp component.Component, node *markup.Node) {
	if node.BoolAttr("selected") {
		comp.SetDefaultSelected(true)
	}
	if node.BoolAttr("disabled") {
		comp.SetEnabled(false)
	}
	if node.BoolAttr("hidden") {
		comp.SetVisible(false)
	}
}

func newContainer(ctx *component.Context, node *markup.Node) component.Component {
	orientation := component.OrientationNone
	if o, ok := component.ParseOrientation(node.Attr("orientation")); ok {
		orientation = o
	}
	c := component.NewContainer(ctx, node.ID, orientation)
	if p, ok := component.ParseScrollPolicy(node.Attr("scroll")); ok && p != component.ScrollNone {
		c.SetScrollPolicy(p)
	}
	return c
}

func newLeaf(ctx *component.Context, node *markup.Node) component.Component {
	return component.NewLeaf(ctx, node.ID)
}
