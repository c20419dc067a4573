// Package component implements the focus/selection core for remote-control
// navigated interfaces: a tree of leaves and containers, a per-context focus
// manager, directional selection, and measurement-driven viewport scrolling.
//
// The package owns state transitions only. Rendering, geometry, and styling
// belong to the presentation layer, which plugs in through the Metrics and
// Renderer interfaces on Context.
package component

import (
	"fmt"

	"github.com/telepilot/telepilot/internal/keys"
	"github.com/telepilot/telepilot/internal/markup"
)

// Component is the closed set of tree participants: *Leaf and *Container.
// The unexported base method keeps the set closed; structural role checks go
// through AsContainer instead of type inspection.
type Component interface {
	ID() string
	Context() *Context
	Parent() *Container

	// AsContainer returns the receiver as a container, or nil for leaves.
	AsContainer() *Container

	Enabled() bool
	SetEnabled(enabled bool)
	Visible() bool
	SetVisible(visible bool)

	// Focused reports whether this component is the context's single
	// focused component.
	Focused() bool

	// Selectable reports whether the component itself is enabled and
	// visible. Containers additionally need a selectable descendant to be
	// the target of navigation; use SelectedDescendantOrSelf for that.
	Selectable() bool

	// SelectedDescendantOrSelf resolves the component the focus manager
	// would land on when entering this subtree. Leaves return themselves
	// when selectable. Containers recurse through their selected child and,
	// when entered directionally while not holding focus, first move their
	// selection to the matching edge child (hint keys.None never mutates).
	SelectedDescendantOrSelf(hint keys.Code) Component

	// RequestFocus resolves SelectedDescendantOrSelf and, when non-nil,
	// hands it to the context's focus-transfer algorithm. Returns false
	// with no side effect when the subtree has nothing selectable.
	RequestFocus() bool

	// SetDefaultSelected marks the component as the initially-selected
	// child; AddChild honours the mark even when a sibling is already
	// selected.
	SetDefaultSelected(selected bool)
	DefaultSelected() bool

	// HandleKey is one layer of the leaf-to-root key dispatch walk.
	HandleKey(ev *KeyEvent) HandleResult

	// On subscribes an external observer for the given event type.
	On(t EventType, fn Listener)

	// Decorate binds the component to the markup node it was built from.
	// It must be called exactly once per instance; a second call panics.
	Decorate(node *markup.Node)

	// Node returns the markup node bound by Decorate, if any.
	Node() *markup.Node

	// Dispose removes the component from the tree. Focus held inside the
	// disposed subtree is retargeted away before teardown completes.
	Dispose()

	base() *Base
	teardown()
}

// Base carries the state shared by leaves and containers.
type Base struct {
	self      Component
	ctx       *Context
	id        string
	parent    *Container
	node      *markup.Node
	enabled   bool
	visible   bool
	defSelect bool
	listeners map[EventType][]Listener

	// Data is an opaque slot for presentation-layer payloads.
	Data interface{}
}

func (b *Base) init(ctx *Context, id string, self Component) {
	b.ctx = ctx
	b.id = id
	b.self = self
	b.enabled = true
	b.visible = true
}

func (b *Base) base() *Base { return b }

// ID returns the component identifier used in trace logs and lookups.
func (b *Base) ID() string { return b.id }

// Context returns the owning focus context.
func (b *Base) Context() *Context { return b.ctx }

// Parent returns the containing container, or nil at the root.
func (b *Base) Parent() *Container { return b.parent }

// AsContainer returns nil; *Container shadows this.
func (b *Base) AsContainer() *Container { return nil }

// Enabled reports whether the component accepts selection.
func (b *Base) Enabled() bool { return b.enabled }

// SetEnabled toggles the enabled flag. A no-op set does not re-notify the
// parent.
func (b *Base) SetEnabled(enabled bool) {
	if b.enabled == enabled {
		return
	}
	b.enabled = enabled
	b.selectabilityChanged()
}

// Visible reports whether the component participates in navigation.
func (b *Base) Visible() bool { return b.visible }

// SetVisible toggles visibility. Idempotent: setting the current value does
// not notify the parent.
func (b *Base) SetVisible(visible bool) {
	if b.visible == visible {
		return
	}
	b.visible = visible
	b.selectabilityChanged()
}

// selectabilityChanged runs the shared repair path after an enabled or
// visibility flip: re-render, let the parent repair its selection, then
// retarget focus if this subtree held it and can no longer.
func (b *Base) selectabilityChanged() {
	if b.ctx != nil {
		b.ctx.ScheduleRender(b.self)
	}
	if b.parent != nil {
		b.parent.childSelectabilityChanged(b.self)
	}
	if b.ctx != nil && b.ctx.containsFocus(b.self) && b.self.SelectedDescendantOrSelf(keys.None) == nil {
		b.ctx.retargetFocusFrom(b.self)
	}
}

// Focused reports whether this component is the single focused component.
func (b *Base) Focused() bool {
	return b.ctx != nil && b.ctx.focused == b.self
}

// Selectable reports enabled && visible.
func (b *Base) Selectable() bool { return b.enabled && b.visible }

// SelectedDescendantOrSelf returns the leaf itself when selectable.
// *Container shadows this with the recursive form.
func (b *Base) SelectedDescendantOrSelf(hint keys.Code) Component {
	if b.self.Selectable() {
		return b.self
	}
	return nil
}

// RequestFocus asks the context to focus this subtree's selected descendant.
func (b *Base) RequestFocus() bool {
	if b.ctx == nil {
		return false
	}
	target := b.self.SelectedDescendantOrSelf(keys.None)
	if target == nil {
		return false
	}
	b.ctx.SetFocused(target)
	return true
}

// HandleKey is the leaf layer of key dispatch: nothing to do.
func (b *Base) HandleKey(ev *KeyEvent) HandleResult { return NotHandled }

// SetDefaultSelected implements the initially-selected mark.
func (b *Base) SetDefaultSelected(selected bool) { b.defSelect = selected }

// DefaultSelected reports whether the component carries the
// initially-selected mark.
func (b *Base) DefaultSelected() bool { return b.defSelect }

// On subscribes an external observer.
func (b *Base) On(t EventType, fn Listener) {
	if fn == nil {
		return
	}
	if b.listeners == nil {
		b.listeners = make(map[EventType][]Listener)
	}
	b.listeners[t] = append(b.listeners[t], fn)
}

// dispatch delivers an event to external observers. Callers mutate internal
// state first, so observers never read a half-updated component.
func (b *Base) dispatch(ev Event) {
	for _, fn := range b.listeners[ev.Type] {
		fn(ev)
	}
}

// fireFocus and fireBlur are invoked by the focus-transfer loop along the
// focus chain. The render schedule (internal) runs before observers.

func (b *Base) fireFocus() {
	if b.ctx != nil {
		b.ctx.ScheduleRender(b.self)
	}
	b.dispatch(Event{Type: EventFocus, Target: b.self})
}

func (b *Base) fireBlur() {
	if b.ctx != nil {
		b.ctx.ScheduleRender(b.self)
	}
	b.dispatch(Event{Type: EventBlur, Target: b.self})
}

// Decorate binds the markup node. Double decoration is a caller bug and
// fails fast.
func (b *Base) Decorate(node *markup.Node) {
	if b.node != nil {
		panic(fmt.Sprintf("component: %q decorated twice", b.id))
	}
	b.node = node
}

// Node returns the bound markup node, if any.
func (b *Base) Node() *markup.Node { return b.node }

// Dispose removes the component from the tree.
func (b *Base) Dispose() {
	if b.parent != nil {
		b.parent.RemoveChild(b.self)
	} else if b.ctx != nil && b.ctx.containsFocus(b.self) {
		b.ctx.SetFocused(nil)
	}
	b.self.teardown()
}

func (b *Base) teardown() {
	b.listeners = nil
	b.Data = nil
}

// Leaf is a non-container component: a card, button, or other terminal
// navigation target.
type Leaf struct {
	Base
}

// NewLeaf constructs a leaf owned by ctx.
func NewLeaf(ctx *Context, id string) *Leaf {
	l := &Leaf{}
	l.init(ctx, id, l)
	return l
}
