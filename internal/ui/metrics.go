package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/telepilot/telepilot/internal/component"
)

// Layout constants for the cell grid. Cards are one row tall and as wide as
// their padded label; shelves occupy a title row plus a card row.
const (
	sideNavWidth = 16
	cardGap      = 1
	shelfRows    = 3
	chromeRows   = 2
)

// cellMetrics measures the component tree in terminal cells. It implements
// the measurement contract the core scrolls by: Size and ScrollExtent of a
// container are its viewport and content extents, Offset and Size of a child
// are its position and span within that content.
type cellMetrics struct {
	width  int
	height int
}

func (m *cellMetrics) Resize(width, height int) {
	m.width = width
	m.height = height
}

func (m *cellMetrics) Offset(c component.Component, axis component.Axis) int {
	parent := c.Parent()
	if parent == nil {
		return 0
	}
	offset := 0
	for _, sib := range parent.Children() {
		if sib == c {
			break
		}
		if !sib.Visible() {
			continue
		}
		offset += m.childSize(sib, axis) + cardGap
	}
	return offset
}

func (m *cellMetrics) Size(c component.Component, axis component.Axis) int {
	if c.AsContainer() != nil {
		return m.viewport(c, axis)
	}
	return m.childSize(c, axis)
}

func (m *cellMetrics) ScrollExtent(c component.Component, axis component.Axis) int {
	container := c.AsContainer()
	if container == nil {
		return m.childSize(c, axis)
	}
	extent := 0
	for _, child := range container.Children() {
		if !child.Visible() {
			continue
		}
		if extent > 0 {
			extent += cardGap
		}
		extent += m.childSize(child, axis)
	}
	return extent
}

// viewport is the window a scrolling container shows: shelves get the width
// left of the side nav, vertical containers get the rows under the header.
func (m *cellMetrics) viewport(c component.Component, axis component.Axis) int {
	if axis == component.AxisX {
		w := m.width - sideNavWidth - 2
		if w < 0 {
			w = 0
		}
		return w
	}
	h := m.height - chromeRows
	if h < 0 {
		h = 0
	}
	return h
}

// childSize is a child's span within its parent's content.
func (m *cellMetrics) childSize(c component.Component, axis component.Axis) int {
	if c.AsContainer() != nil {
		if axis == component.AxisY {
			return shelfRows
		}
		return m.viewport(c, component.AxisX)
	}
	if axis == component.AxisY {
		return 1
	}
	return lipgloss.Width(labelOf(c)) + 2
}
