package ui

import (
	"fmt"

	"github.com/telepilot/telepilot/internal/component"
	"github.com/telepilot/telepilot/internal/decorate"
	"github.com/telepilot/telepilot/internal/markup"
)

// newRegistry extends the built-in decorator classes with the demo's widget
// kinds. A shelf is a horizontal container with middle scrolling unless the
// markup overrides it; a card is a plain leaf.
func newRegistry() *decorate.Registry {
	r := decorate.NewRegistry()
	r.Register("shelf", func(ctx *component.Context, node *markup.Node) component.Component {
		c := component.NewContainer(ctx, node.ID, component.OrientationHorizontal)
		policy := component.ScrollMiddle
		if p, ok := component.ParseScrollPolicy(node.Attr("scroll")); ok {
			policy = p
		}
		c.SetScrollPolicy(policy)
		return c
	})
	r.Register("card", func(ctx *component.Context, node *markup.Node) component.Component {
		return component.NewLeaf(ctx, node.ID)
	})
	return r
}

// buildTree decorates the layout into a component tree rooted at a container.
func buildTree(ctx *component.Context, root *markup.Node) (*component.Container, error) {
	comp := newRegistry().Decorate(ctx, root)
	if comp == nil {
		return nil, fmt.Errorf("layout root matched no component class")
	}
	container := comp.AsContainer()
	if container == nil {
		return nil, fmt.Errorf("layout root %q is not a container", comp.ID())
	}
	return container, nil
}

// labelOf resolves a component's display label from its markup node.
func labelOf(c component.Component) string {
	if c == nil {
		return ""
	}
	if n := c.Node(); n != nil && n.Label != "" {
		return n.Label
	}
	return c.ID()
}

// walkContainers visits every container in the subtree, depth first.
func walkContainers(c component.Component, fn func(*component.Container)) {
	container := c.AsContainer()
	if container == nil {
		return
	}
	fn(container)
	for _, child := range container.Children() {
		walkContainers(child, fn)
	}
}

// collectLeaves gathers every leaf in the subtree in layout order.
func collectLeaves(c component.Component, out *[]component.Component) {
	if container := c.AsContainer(); container != nil {
		for _, child := range container.Children() {
			collectLeaves(child, out)
		}
		return
	}
	*out = append(*out, c)
}
