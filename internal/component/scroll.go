package component

import "github.com/telepilot/telepilot/internal/logging/events"

// Axis identifies the measurement direction for the Metrics queries.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Metrics is the measurement collaborator supplied by the presentation
// layer. The core treats every value as an opaque number: Offset and Size
// describe a child within its container's content, Size of a container is
// its viewport extent, and ScrollExtent of a container is its total content
// extent.
type Metrics interface {
	Offset(c Component, axis Axis) int
	Size(c Component, axis Axis) int
	ScrollExtent(c Component, axis Axis) int
}

// ScrollPolicy selects how the viewport tracks the selected child.
type ScrollPolicy int

const (
	// ScrollNone disables viewport tracking.
	ScrollNone ScrollPolicy = iota
	// ScrollStart pins the selected child to the leading edge.
	ScrollStart
	// ScrollMiddle keeps the selected child near the viewport middle
	// without scrolling past the end of the content.
	ScrollMiddle
)

var scrollPolicyNames = map[ScrollPolicy]string{
	ScrollNone:   "none",
	ScrollStart:  "start",
	ScrollMiddle: "middle",
}

func (p ScrollPolicy) String() string {
	if name, ok := scrollPolicyNames[p]; ok {
		return name
	}
	return "unknown"
}

// ParseScrollPolicy maps a markup attribute value to a policy.
func ParseScrollPolicy(s string) (ScrollPolicy, bool) {
	for p, name := range scrollPolicyNames {
		if name == s {
			return p, true
		}
	}
	return ScrollNone, false
}

// ScrollOffset returns the translation the presentation layer should apply
// to the container content (zero or negative).
func (c *Container) ScrollOffset() int { return c.scrollOffset }

// StartSlit reports whether content exists before the visible window.
func (c *Container) StartSlit() bool { return c.startSlit }

// EndSlit reports whether content exists after the visible window.
func (c *Container) EndSlit() bool { return c.endSlit }

// scrollAxis returns the measurement axis for the orientation.
func (c *Container) scrollAxis() (Axis, bool) {
	switch c.orientation {
	case OrientationHorizontal:
		return AxisX, true
	case OrientationVertical:
		return AxisY, true
	default:
		return 0, false
	}
}

// RefreshScroll recomputes the scroll offset for the current selection, for
// use after the presentation layer's geometry changed (a resize, say).
func (c *Container) RefreshScroll() { c.updateScroll() }

// updateScroll recomputes the viewport offset and the slit indicators from
// the measurement collaborator. Without metrics or a policy it is a no-op;
// scrolling is optional structure, not an error.
func (c *Container) updateScroll() {
	if c.ctx == nil || c.ctx.metrics == nil || c.policy == ScrollNone {
		return
	}
	axis, ok := c.scrollAxis()
	if !ok {
		return
	}
	sel := c.selected
	if sel == nil {
		c.scrollOffset = 0
		c.startSlit = false
		c.endSlit = false
		return
	}
	m := c.ctx.metrics
	viewport := m.Size(c.self, axis)
	content := m.ScrollExtent(c.self, axis)
	selOffset := m.Offset(sel, axis)

	var lead int
	switch c.policy {
	case ScrollStart:
		lead = selOffset
	case ScrollMiddle:
		lead = c.middleLeadingEdge(axis, selOffset, viewport)
	}
	c.scrollOffset = -lead
	c.startSlit = lead > 0
	c.endSlit = lead+viewport < content

	c.ctx.ScheduleRender(c.self)
	events.Scroll.Update(c.id, c.scrollOffset, c.startSlit, c.endSlit)
	c.dispatch(Event{Type: EventUpdateHighlight, Target: c.self, Child: sel})
}

// middleLeadingEdge finds the sibling that becomes the viewport's leading
// edge under the middle policy: keep the selection near viewport/2, clamped
// so the window never scrolls past the end of the content.
func (c *Container) middleLeadingEdge(axis Axis, selOffset, viewport int) int {
	m := c.ctx.metrics
	content := m.ScrollExtent(c.self, axis)
	spaceBefore := viewport / 2
	if tail := content - selOffset; tail < spaceBefore {
		spaceBefore = viewport - tail
	}
	lead := selOffset
	for i := c.indexOf(c.selected) - 1; i >= 0; i-- {
		sib := c.children[i]
		if !sib.Visible() {
			continue
		}
		off := m.Offset(sib, axis)
		if selOffset-off > spaceBefore {
			break
		}
		lead = off
	}
	return lead
}
