package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/telepilot/telepilot/internal/component"
	"github.com/telepilot/telepilot/internal/logging/events"
)

// handleFilterInput routes key messages while the filter field is open.
// Esc closes and clears the filter; enter closes it keeping the matches.
func (m *Model) handleFilterInput(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.closeFilter(true)
		return nil
	case tea.KeyEnter:
		m.closeFilter(false)
		return nil
	}
	before := m.filterInput.Value()
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	after := m.filterInput.Value()
	if after != before {
		if len(after) < len(before) {
			events.Filter.Backspace(after)
		} else {
			events.Filter.Append(after)
		}
		m.applyFilter(after)
	}
	return cmd
}

func (m *Model) openFilter() {
	m.filtering = true
	m.filterInput.Focus()
}

func (m *Model) closeFilter(clear bool) {
	m.filtering = false
	m.filterInput.Blur()
	if clear && m.filterInput.Value() != "" {
		m.filterInput.SetValue("")
		events.Filter.Cleared()
		m.applyFilter("")
	}
}

// applyFilter toggles card visibility from the fuzzy match set. The whole
// sweep runs in one postpone scope so each affected component renders once,
// and the selection/focus repair inside the core settles before the flush.
func (m *Model) applyFilter(query string) {
	query = strings.TrimSpace(query)
	visible := 0
	m.ctx.Postpone(func() {
		for _, card := range m.cards {
			match := query == "" || fuzzy.MatchNormalizedFold(query, labelOf(card))
			card.SetVisible(match)
			if match {
				visible++
			}
		}
	})
	walkContainers(m.root, func(c *component.Container) {
		c.RefreshScroll()
	})
	events.Filter.Matches(query, visible, len(m.cards))
}
