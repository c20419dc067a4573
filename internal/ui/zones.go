package ui

import (
	"github.com/telepilot/telepilot/internal/component"
	"github.com/telepilot/telepilot/internal/keys"
	"github.com/telepilot/telepilot/internal/logging/events"
	"github.com/telepilot/telepilot/internal/zone"
)

// Layer names for the zones variant. Browsing owns the menu row and the
// grid; starting a title switches to playback, which owns the player bar.
const (
	layerBrowse   = "browse"
	layerPlayback = "playback"
)

// buildZones wires the zones demo: a horizontal menu row, a geometric grid
// of titles, and a media player bar on its own layer.
func (m *Model) buildZones() *zone.Controller {
	ctrl := zone.NewController()

	ctrl.Register(zone.Config{
		Name:   "menu",
		Layers: []string{layerBrowse},
		Items: []zone.Item{
			{ID: "menu-home", Row: 0, Data: "Home"},
			{ID: "menu-search", Row: 0, Data: "Search"},
			{ID: "menu-library", Row: 0, Data: "Library"},
		},
		Click: func(z *zone.Zone, item *zone.Item) {
			m.infoMsg = "menu: " + itemLabel(item)
			events.UI.Activate(item.ID, itemLabel(item))
		},
	})

	// The grid navigates by geometry: the rectangles are deliberately
	// misaligned across rows so nearest-neighbor search is observable.
	ctrl.Register(zone.Config{
		Name:        "grid",
		Layers:      []string{layerBrowse},
		UseGeometry: true,
		Items: []zone.Item{
			{ID: "title-aurora", Rect: zone.Rect{X: 0, Y: 0, W: 14, H: 3}, Data: "Aurora"},
			{ID: "title-basalt", Rect: zone.Rect{X: 15, Y: 0, W: 18, H: 3}, Data: "Basalt"},
			{ID: "title-cinder", Rect: zone.Rect{X: 34, Y: 0, W: 12, H: 3}, Data: "Cinder"},
			{ID: "title-dunes", Rect: zone.Rect{X: 0, Y: 4, W: 20, H: 3}, Data: "Dunes"},
			{ID: "title-eddy", Rect: zone.Rect{X: 21, Y: 4, W: 11, H: 3}, Data: "Eddy"},
			{ID: "title-fjord", Rect: zone.Rect{X: 33, Y: 4, W: 14, H: 3}, Data: "Fjord"},
		},
		ScrollIntoView: func(z *zone.Zone, item *zone.Item) {
			// The grid fits the viewport; nothing to reveal.
		},
		Click: func(z *zone.Zone, item *zone.Item) {
			m.nowPlaying = itemLabel(item)
			m.playing = true
			events.UI.Activate(item.ID, itemLabel(item))
			ctrl.ActivateLayer(layerPlayback)
			ctrl.EnterZone("player")
		},
	})

	ctrl.Register(zone.Config{
		Name:            "player",
		Layers:          []string{layerPlayback},
		SaveRowPosition: true,
		Items: []zone.Item{
			{ID: "player-rewind", Row: 0, Data: "⏪"},
			{ID: "player-toggle", Row: 0, Data: "⏯"},
			{ID: "player-stop", Row: 0, Data: "⏹"},
			{ID: "player-forward", Row: 0, Data: "⏩"},
		},
		Keys: map[keys.Code]zone.KeyHandler{
			keys.Play: func(z *zone.Zone, code keys.Code) component.HandleResult {
				m.playing = !m.playing
				return component.Handled
			},
			keys.Back: func(z *zone.Zone, code keys.Code) component.HandleResult {
				ctrl.ActivateLayer(layerBrowse)
				ctrl.EnterZone("grid")
				return component.Handled
			},
		},
		Click: func(z *zone.Zone, item *zone.Item) {
			switch item.ID {
			case "player-toggle":
				m.playing = !m.playing
			case "player-stop":
				m.playing = false
				m.nowPlaying = ""
				ctrl.ActivateLayer(layerBrowse)
				ctrl.EnterZone("grid")
			case "player-rewind":
				m.infoMsg = "rewind"
			case "player-forward":
				m.infoMsg = "fast forward"
			}
		},
	})

	ctrl.ActivateLayer(layerBrowse)
	ctrl.EnterZone("menu")
	return ctrl
}

// handleZoneKey dispatches to the controller and carries unhandled
// directional presses across zone boundaries within the active layer.
func (m *Model) handleZoneKey(code keys.Code) {
	if m.zones.HandleKey(code) == component.Handled {
		return
	}
	current := m.zones.Current()
	if current == nil {
		return
	}
	switch {
	case current.Name() == "menu" && code == keys.Down:
		m.zones.EnterZone("grid")
	case current.Name() == "grid" && code == keys.Up:
		m.zones.EnterZone("menu")
	}
}

func itemLabel(item *zone.Item) string {
	if s, ok := item.Data.(string); ok {
		return s
	}
	return item.ID
}
