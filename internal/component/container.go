package component

import (
	"fmt"

	"github.com/telepilot/telepilot/internal/keys"
	"github.com/telepilot/telepilot/internal/logging/events"
)

// Orientation decides which key pair a container answers to.
type Orientation int

const (
	// OrientationNone containers hold children without directional entry.
	OrientationNone Orientation = iota
	// OrientationHorizontal maps left/right to previous/next.
	OrientationHorizontal
	// OrientationVertical maps up/down to previous/next.
	OrientationVertical
	// OrientationStack containers never navigate from key input; an
	// external controller (a tab bar, say) drives SetSelectedChild.
	OrientationStack
)

var orientationNames = map[Orientation]string{
	OrientationNone:       "none",
	OrientationHorizontal: "horizontal",
	OrientationVertical:   "vertical",
	OrientationStack:      "stack",
}

func (o Orientation) String() string {
	if name, ok := orientationNames[o]; ok {
		return name
	}
	return "unknown"
}

// ParseOrientation maps a markup attribute value to an orientation.
func ParseOrientation(s string) (Orientation, bool) {
	for o, name := range orientationNames {
		if name == s {
			return o, true
		}
	}
	return OrientationNone, false
}

// SelectOption tweaks a single SetSelectedChild call.
type SelectOption func(*selectOptions)

type selectOptions struct {
	noScroll bool
}

// NoScroll suppresses the viewport-scroll pass for this selection change,
// used when focus was already positioned visually (a pointer tap, say).
func NoScroll() SelectOption {
	return func(o *selectOptions) { o.noScroll = true }
}

// Container is an ordered collection of components owning the navigation
// cursor for its children.
type Container struct {
	Base
	orientation Orientation
	children    []Component
	selected    Component

	policy       ScrollPolicy
	scrollOffset int
	startSlit    bool
	endSlit      bool
}

// NewContainer constructs an empty container owned by ctx.
func NewContainer(ctx *Context, id string, orientation Orientation) *Container {
	c := &Container{orientation: orientation}
	c.init(ctx, id, c)
	return c
}

// AsContainer returns the receiver.
func (c *Container) AsContainer() *Container { return c }

// Orientation returns the container's navigation axis.
func (c *Container) Orientation() Orientation { return c.orientation }

// Children returns the child sequence in navigation order.
func (c *Container) Children() []Component { return c.children }

// SelectedChild returns the current navigation cursor, or nil.
func (c *Container) SelectedChild() Component { return c.selected }

// AddChild appends child. The child becomes selected when it carries the
// initially-selected mark, or when nothing is selected yet and the child has
// a selectable descendant.
func (c *Container) AddChild(child Component) {
	if child == nil {
		return
	}
	cb := child.base()
	if cb.parent != nil {
		panic(fmt.Sprintf("component: %q already has parent %q", child.ID(), cb.parent.ID()))
	}
	cb.parent = c
	if cb.ctx == nil {
		cb.ctx = c.ctx
	}
	c.children = append(c.children, child)
	if cb.defSelect || (c.selected == nil && child.SelectedDescendantOrSelf(keys.None) != nil) {
		c.SetSelectedChild(child)
	}
	if c.ctx != nil {
		c.ctx.ScheduleRender(c.self)
	}
}

// RemoveChild detaches child, repairing the selection and retargeting focus
// held inside the removed subtree before the detach completes.
func (c *Container) RemoveChild(child Component) {
	idx := c.indexOf(child)
	if idx < 0 {
		return
	}
	hadFocus := c.ctx != nil && c.ctx.containsFocus(child)
	if c.selected == child {
		repl := c.findNextSelectableChild(idx)
		if repl == nil {
			repl = c.findPreviousSelectableChild(idx)
		}
		c.SetSelectedChild(repl)
	}
	if hadFocus {
		c.ctx.retargetFocusFrom(c.self)
	}
	c.children = append(c.children[:idx], c.children[idx+1:]...)
	child.base().parent = nil
	if c.ctx != nil {
		c.ctx.ScheduleRender(c.self)
	}
}

// RemoveAllChildren clears the selection, disposes every child, and empties
// the sequence.
func (c *Container) RemoveAllChildren() {
	hadFocus := c.ctx != nil && c.ctx.focused != nil && c.ctx.containsFocus(c.self) && c.ctx.focused != c.self
	c.SetSelectedChild(nil)
	if hadFocus {
		c.ctx.retargetFocusFrom(c.self)
	}
	kids := c.children
	c.children = nil
	for _, child := range kids {
		child.base().parent = nil
		child.teardown()
	}
	if c.ctx != nil {
		c.ctx.ScheduleRender(c.self)
	}
}

func (c *Container) teardown() {
	kids := c.children
	c.children = nil
	c.selected = nil
	for _, child := range kids {
		child.base().parent = nil
		child.teardown()
	}
	c.Base.teardown()
}

func (c *Container) indexOf(child Component) int {
	for i, cur := range c.children {
		if cur == child {
			return i
		}
	}
	return -1
}

// SetScrollPolicy configures how the viewport follows the selection.
// Scrolling needs an axis, so stack and none orientations reject a policy.
func (c *Container) SetScrollPolicy(p ScrollPolicy) {
	if p != ScrollNone && c.orientation != OrientationHorizontal && c.orientation != OrientationVertical {
		panic(fmt.Sprintf("component: scroll policy on %s container %q", c.orientation, c.id))
	}
	c.policy = p
}

// ScrollPolicyValue returns the configured policy.
func (c *Container) ScrollPolicyValue() ScrollPolicy { return c.policy }

// navigationKeys returns the previous/next key pair for the orientation.
// Stack and none containers answer to neither.
func (c *Container) navigationKeys() (prev, next keys.Code) {
	switch c.orientation {
	case OrientationHorizontal:
		return keys.Left, keys.Right
	case OrientationVertical:
		return keys.Up, keys.Down
	default:
		return keys.None, keys.None
	}
}

// SelectedDescendantOrSelf recurses through the selected child. When probed
// directionally while focus is elsewhere, the selection first jumps to the
// matching edge child so directional entry lands on the correct side.
func (c *Container) SelectedDescendantOrSelf(hint keys.Code) Component {
	if !c.Selectable() {
		return nil
	}
	if hint != keys.None && (c.ctx == nil || !c.ctx.containsFocus(c.self)) {
		c.adjustSelectionFromKey(hint)
	}
	if c.selected == nil {
		return nil
	}
	return c.selected.SelectedDescendantOrSelf(hint)
}

// adjustSelectionFromKey moves the selection to the entry edge for the given
// key: entering via "next" lands on the first selectable child, via
// "previous" on the last. Keys on the other axis leave the saved position.
func (c *Container) adjustSelectionFromKey(hint keys.Code) {
	prev, next := c.navigationKeys()
	switch hint {
	case next:
		if child := c.findNextSelectableChild(-1); child != nil {
			c.SetSelectedChild(child)
		}
	case prev:
		if child := c.findPreviousSelectableChild(len(c.children)); child != nil {
			c.SetSelectedChild(child)
		}
	}
}

// SelectNext scans forward from the current selection for the first child
// with a selectable descendant. It returns the match without mutating the
// selection; callers commit via SetSelectedChild.
func (c *Container) SelectNext(hint keys.Code) Component {
	return c.scanSelectable(c.indexOf(c.selected), +1, hint)
}

// SelectPrevious is the backward counterpart of SelectNext.
func (c *Container) SelectPrevious(hint keys.Code) Component {
	start := c.indexOf(c.selected)
	if start < 0 {
		start = len(c.children)
	}
	return c.scanSelectable(start, -1, hint)
}

func (c *Container) scanSelectable(start, step int, hint keys.Code) Component {
	for i := start + step; i >= 0 && i < len(c.children); i += step {
		if c.children[i].SelectedDescendantOrSelf(hint) != nil {
			return c.children[i]
		}
	}
	return nil
}

func (c *Container) findNextSelectableChild(idx int) Component {
	return c.scanSelectable(idx, +1, keys.None)
}

func (c *Container) findPreviousSelectableChild(idx int) Component {
	return c.scanSelectable(idx, -1, keys.None)
}

// SetSelectedChild moves the navigation cursor. Passing the current child is
// a no-op; passing nil clears the selection and propagates the selectability
// change upward.
func (c *Container) SetSelectedChild(child Component, opts ...SelectOption) {
	if child == c.selected {
		return
	}
	if child != nil && c.indexOf(child) < 0 {
		panic(fmt.Sprintf("component: %q is not a child of %q", child.ID(), c.id))
	}
	var o selectOptions
	for _, opt := range opts {
		opt(&o)
	}
	old := c.selected
	c.selected = child
	if c.ctx != nil {
		if old != nil {
			c.ctx.ScheduleRender(old)
		}
		if child != nil {
			c.ctx.ScheduleRender(child)
		}
		c.ctx.ScheduleRender(c.self)
	}
	if child != nil && !o.noScroll {
		c.updateScroll()
	}
	if c.parent != nil {
		c.parent.childSelectabilityChanged(c.self)
	}
	events.Select.Child(c.id, componentID(child))
	c.dispatch(Event{Type: EventSelectChild, Target: c.self, Child: child})
}

// childSelectabilityChanged repairs the selection after a child (or its
// subtree) flipped between selectable and unselectable.
func (c *Container) childSelectabilityChanged(child Component) {
	selectable := child.SelectedDescendantOrSelf(keys.None) != nil
	switch {
	case c.selected == nil && selectable:
		c.SetSelectedChild(child)
	case c.selected == child && !selectable:
		idx := c.indexOf(child)
		repl := c.findNextSelectableChild(idx)
		if repl == nil {
			repl = c.findPreviousSelectableChild(idx)
		}
		events.Select.Repair(c.id, componentID(repl))
		c.SetSelectedChild(repl)
	}
}

// HandleKey moves the selection along the container's axis. When the scan
// exhausts the sequence the event stays unhandled so an ancestor container
// can carry focus across subtree boundaries.
func (c *Container) HandleKey(ev *KeyEvent) HandleResult {
	prev, next := c.navigationKeys()
	if ev.Code == keys.None || (ev.Code != prev && ev.Code != next) {
		return NotHandled
	}
	var cand Component
	if ev.Code == next {
		cand = c.SelectNext(ev.Code)
	} else {
		cand = c.SelectPrevious(ev.Code)
	}
	if cand == nil {
		return NotHandled
	}
	target := cand.SelectedDescendantOrSelf(ev.Code)
	if target == nil {
		return NotHandled
	}
	if c.ctx != nil {
		c.ctx.SetFocused(target)
	}
	return Handled
}

func componentID(c Component) string {
	if c == nil {
		return ""
	}
	return c.ID()
}
