package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/telepilot/telepilot/internal/component"
)

const (
	startSlitGlyph = "‹"
	endSlitGlyph   = "›"
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")
	if m.variant == VariantZones {
		b.WriteString(m.viewZones())
	} else {
		b.WriteString(m.viewShelves())
	}
	if m.infoMsg != "" {
		b.WriteString("\n")
		b.WriteString(styles.Info.Render(m.infoMsg))
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(styles.Error.Render(m.errMsg))
	}
	if m.showFooter {
		b.WriteString("\n")
		b.WriteString(styles.Footer.Render(m.keymap.footerHelp()))
	}
	return b.String()
}

func (m *Model) header() string {
	if m.filtering || m.filterInput.Value() != "" {
		return m.filterInput.View()
	}
	title := "telepilot"
	if m.variant == VariantZones {
		title += " · zones"
	}
	return styles.Header.Render(title)
}

// viewShelves renders the side nav column next to the shelf stack.
func (m *Model) viewShelves() string {
	nav := m.viewSideNav()
	shelves := m.viewShelfStack()
	return lipgloss.JoinHorizontal(lipgloss.Top, nav, shelves)
}

func (m *Model) viewSideNav() string {
	sidenav := m.container("sidenav")
	if sidenav == nil {
		return ""
	}
	lines := make([]string, 0, len(sidenav.Children()))
	for _, item := range sidenav.Children() {
		if !item.Visible() {
			continue
		}
		label := truncate.StringWithTail(labelOf(item), uint(sideNavWidth-2), "…")
		style := styles.SideNavItem
		if item.Focused() {
			style = styles.SideNavFocus
		}
		lines = append(lines, style.Width(sideNavWidth).Render(label))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) viewShelfStack() string {
	column := m.container("shelves")
	if column == nil {
		return ""
	}
	blocks := make([]string, 0, len(column.Children()))
	for _, child := range column.Children() {
		if !child.Visible() {
			continue
		}
		shelf := child.AsContainer()
		if shelf == nil {
			continue
		}
		blocks = append(blocks, m.viewShelf(shelf))
	}
	return strings.Join(blocks, "\n")
}

// viewShelf renders one title row and one card row, windowed by the shelf's
// scroll offset with slit glyphs marking off-screen content.
func (m *Model) viewShelf(shelf *component.Container) string {
	width := m.metrics.viewport(shelf, component.AxisX)
	title := styles.ShelfTitle.Render(labelOf(shelf))

	lead := -shelf.ScrollOffset()
	cells := make([]string, 0, len(shelf.Children()))
	for _, card := range shelf.Children() {
		if !card.Visible() {
			continue
		}
		if m.metrics.Offset(card, component.AxisX) < lead {
			continue
		}
		cells = append(cells, m.viewCard(card))
	}
	row := strings.Join(cells, strings.Repeat(" ", cardGap))
	row = truncate.String(row, uint(width))
	if shelf.StartSlit() {
		row = styles.Slit.Render(startSlitGlyph) + " " + row
	}
	if shelf.EndSlit() {
		row = row + " " + styles.Slit.Render(endSlitGlyph)
	}
	return styles.Shelf.Render(title + "\n" + row + "\n")
}

func (m *Model) viewCard(card component.Component) string {
	label := labelOf(card)
	switch {
	case !card.Enabled():
		return styles.DisabledCard.Render(label)
	case card.Focused():
		return styles.FocusedCard.Render(label)
	case isSelected(card):
		return styles.SelectedCard.Render(label)
	default:
		return styles.Card.Render(label)
	}
}

// isSelected reports whether the card is its shelf's cursor without holding
// focus.
func isSelected(card component.Component) bool {
	p := card.Parent()
	return p != nil && p.SelectedChild() == card && !card.Focused()
}

func (m *Model) container(id string) *component.Container {
	if m.root == nil {
		return nil
	}
	var found *component.Container
	walkContainers(m.root, func(c *component.Container) {
		if c.ID() == id {
			found = c
		}
	})
	return found
}

// viewZones renders the menu row, the title grid placed by item geometry,
// and the player bar when the playback layer is active.
func (m *Model) viewZones() string {
	var b strings.Builder
	b.WriteString(m.viewZoneRow("menu"))
	b.WriteString("\n\n")
	b.WriteString(m.viewGrid())
	if m.zones.ActiveLayer() == layerPlayback {
		b.WriteString("\n\n")
		b.WriteString(m.viewPlayer())
	}
	return b.String()
}

func (m *Model) viewZoneRow(name string) string {
	z := m.zones.Zone(name)
	if z == nil {
		return ""
	}
	cells := make([]string, 0, len(z.Items()))
	for _, item := range z.Items() {
		if item.Hidden {
			continue
		}
		style := styles.Card
		if z == m.zones.Current() && z.Current() == item {
			style = styles.FocusedCard
		}
		cells = append(cells, style.Render(itemLabel(item)))
	}
	return strings.Join(cells, " ")
}

func (m *Model) viewGrid() string {
	z := m.zones.Zone("grid")
	if z == nil {
		return ""
	}
	// Paint items onto a rune canvas at their rectangle origins; geometry is
	// the navigation model here, so the view honours it too.
	height := 0
	for _, item := range z.Items() {
		if bottom := item.Rect.Y + item.Rect.H; bottom > height {
			height = bottom
		}
	}
	rows := make([]string, height)
	for _, item := range z.Items() {
		if item.Hidden {
			continue
		}
		style := styles.Card
		if z == m.zones.Current() && z.Current() == item {
			style = styles.FocusedCard
		}
		cell := style.Render(itemLabel(item))
		line := item.Rect.Y + item.Rect.H/2
		if line >= len(rows) {
			continue
		}
		pad := item.Rect.X - lipgloss.Width(rows[line])
		if pad < 0 {
			pad = 1
		}
		rows[line] += strings.Repeat(" ", pad) + cell
	}
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, truncate.String(row, uint(m.width)))
	}
	return strings.Join(out, "\n")
}

func (m *Model) viewPlayer() string {
	z := m.zones.Zone("player")
	if z == nil {
		return ""
	}
	cells := make([]string, 0, len(z.Items()))
	for _, item := range z.Items() {
		style := styles.PlayerControl
		if z == m.zones.Current() && z.Current() == item {
			style = styles.PlayerFocus
		}
		cells = append(cells, style.Render(itemLabel(item)))
	}
	status := "paused"
	if m.playing {
		status = "playing"
	}
	bar := styles.PlayerBar.Render(strings.Repeat("─", maxInt(0, m.width-4)))
	line := strings.Join(cells, " ")
	if m.nowPlaying != "" {
		line += "  " + styles.Info.Render(fmt.Sprintf("%s · %s", m.nowPlaying, status))
	}
	return bar + "\n" + line
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
