package component

import (
	"github.com/telepilot/telepilot/internal/keys"
	"github.com/telepilot/telepilot/internal/logging/events"
)

// Context owns the single focused component for one component tree. It
// replaces an ambient per-document singleton: callers construct one
// explicitly and pass it to every component constructor, and tear it down
// with the tree.
type Context struct {
	focused Component

	// pending/hasPending form the re-entrant transfer slot: a SetFocused
	// call arriving while a transfer is in flight overwrites the pending
	// target and returns; the in-progress loop picks it up.
	pending      Component
	hasPending   bool
	transferring bool

	metrics  Metrics
	renderer Renderer

	postponeDepth int
	renderQueue   []Component
	queued        map[Component]struct{}
}

// Option configures a Context.
type Option func(*Context)

// WithMetrics supplies the measurement collaborator used for viewport
// scrolling. Without one, scroll passes are skipped.
func WithMetrics(m Metrics) Option {
	return func(c *Context) { c.metrics = m }
}

// WithRenderer supplies the render sink. Without one, render scheduling is a
// no-op.
func WithRenderer(r Renderer) Option {
	return func(c *Context) { c.renderer = r }
}

// NewContext constructs an empty focus context.
func NewContext(opts ...Option) *Context {
	ctx := &Context{}
	for _, opt := range opts {
		opt(ctx)
	}
	return ctx
}

// Focused returns the currently focused component, or nil.
func (ctx *Context) Focused() Component { return ctx.focused }

// SetFocused transfers focus to target (nil blurs everything). Re-entrant
// calls from blur/focus observers collapse into the pending slot: the last
// writer wins and the loop settles once.
func (ctx *Context) SetFocused(target Component) {
	if ctx.transferring {
		ctx.pending = target
		ctx.hasPending = true
		return
	}
	ctx.transferring = true
	ctx.pending = target
	ctx.hasPending = true
	for ctx.hasPending {
		next := ctx.pending
		ctx.hasPending = false
		if next == ctx.focused {
			continue
		}
		ctx.transfer(next)
	}
	ctx.pending = nil
	ctx.transferring = false
}

// transfer executes one blur/focus pass from the settled focused component
// to target. Blur runs leaf-to-root over the old chain up to (excluding) the
// lowest common ancestor, the selected-child links along the new chain are
// repaired, then focus runs root-to-leaf.
func (ctx *Context) transfer(target Component) {
	oldChain := focusChain(ctx.focused)
	newChain := focusChain(target)
	highestBlur, highestFocus := chainDivergence(oldChain, newChain)

	events.Focus.Transfer(componentID(ctx.focused), componentID(target))

	for i := 0; i < highestBlur; i++ {
		oldChain[i].base().fireBlur()
	}
	ctx.focused = target
	for i := highestFocus - 1; i >= 0; i-- {
		if p := newChain[i].Parent(); p != nil {
			p.SetSelectedChild(newChain[i])
		}
	}
	for i := highestFocus - 1; i >= 0; i-- {
		newChain[i].base().fireFocus()
	}
}

// focusChain returns [c, parent, ..., root]; nil input yields an empty chain.
func focusChain(c Component) []Component {
	if c == nil {
		return nil
	}
	chain := []Component{c}
	for cur := c; ; {
		p := cur.Parent()
		if p == nil {
			break
		}
		chain = append(chain, p)
		cur = p
	}
	return chain
}

// chainDivergence compares two chains from the root end inward and returns
// how many leaf-ward entries of each lie strictly below the lowest common
// ancestor.
func chainDivergence(oldChain, newChain []Component) (highestBlur, highestFocus int) {
	oi, ni := len(oldChain)-1, len(newChain)-1
	for oi >= 0 && ni >= 0 && oldChain[oi] == newChain[ni] {
		oi--
		ni--
	}
	return oi + 1, ni + 1
}

// containsFocus reports whether the focused component sits at or below c.
func (ctx *Context) containsFocus(c Component) bool {
	if ctx.focused == nil || c == nil {
		return false
	}
	for _, link := range focusChain(ctx.focused) {
		if link == c {
			return true
		}
	}
	return false
}

// retargetFocusFrom finds the nearest selectable target at or above c and
// focuses it, clearing focus entirely when no ancestor has one. Callers run
// it after selection repair so the walk sees repaired state.
func (ctx *Context) retargetFocusFrom(c Component) {
	for cur := c; cur != nil; {
		if target := cur.SelectedDescendantOrSelf(keys.None); target != nil {
			ctx.SetFocused(target)
			return
		}
		p := cur.Parent()
		if p == nil {
			break
		}
		cur = p
	}
	ctx.SetFocused(nil)
}

// HandleKey walks the handler layers from the focused leaf to the root.
// Each layer first sees the event as an observer (and may stop propagation),
// then as a handler with a Handled/NotHandled short-circuit.
func (ctx *Context) HandleKey(ev *KeyEvent) HandleResult {
	if ev == nil || ctx.focused == nil {
		return NotHandled
	}
	for cur := ctx.focused; cur != nil; {
		cur.base().dispatch(Event{Type: EventKey, Target: cur, Key: ev})
		if ev.Stopped() {
			return Handled
		}
		if cur.HandleKey(ev) == Handled {
			events.Focus.Key(ev.Code.String(), componentID(cur))
			return Handled
		}
		p := cur.Parent()
		if p == nil {
			break
		}
		cur = p
	}
	return NotHandled
}
