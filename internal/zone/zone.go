// Package zone implements the markup-oriented navigation variant: named
// regions with their own key maps and item lists, grouped into layers.
// It covers interfaces that are not modeled as a component tree — media
// player bars, side navs, free-form grids — where navigation is driven by
// item geometry or row assignment instead of container orientation.
package zone

import (
	"fmt"

	"github.com/telepilot/telepilot/internal/component"
	"github.com/telepilot/telepilot/internal/keys"
	"github.com/telepilot/telepilot/internal/logging/events"
)

// Rect is an item's bounding box in whatever units the presentation layer
// measures in (cells for terminal UIs).
type Rect struct {
	X, Y, W, H int
}

// CenterX returns the horizontal midpoint.
func (r Rect) CenterX() int { return r.X + r.W/2 }

// CenterY returns the vertical midpoint.
func (r Rect) CenterY() int { return r.Y + r.H/2 }

// Item is one navigable element of a zone.
type Item struct {
	ID       string
	Row      int
	Rect     Rect
	Hidden   bool
	Disabled bool

	// Data is an opaque slot for presentation-layer payloads.
	Data interface{}
}

// KeyHandler is a zone-specific override for one key. Returning NotHandled
// falls through to the built-in directional movement.
type KeyHandler func(z *Zone, code keys.Code) component.HandleResult

// Config declares a zone: its layer memberships, key overrides, lifecycle
// callbacks, and navigation flags. All callbacks are optional.
type Config struct {
	Name   string
	Layers []string

	Keys map[keys.Code]KeyHandler

	// EnterZone and LeaveZone fire when the zone gains or loses currency.
	EnterZone func(z *Zone)
	LeaveZone func(z *Zone)

	// ScrollIntoView fires after every selection change so the presentation
	// layer can reveal the new item.
	ScrollIntoView func(z *Zone, item *Item)

	// MoveSelected fires on selection changes; from is nil when the zone
	// had no selection.
	MoveSelected func(z *Zone, from, to *Item)

	// Click fires on Enter for the current item.
	Click func(z *Zone, item *Item)

	Items []Item

	// SaveRowPosition remembers the column per row, so vertical movement
	// returns to where the row was left.
	SaveRowPosition bool

	// UseGeometry navigates by item rectangles (nearest neighbor in the
	// pressed direction) instead of row/linear order.
	UseGeometry bool

	// SelectHidden allows hidden items to be selected; by default they are
	// skipped like disabled ones.
	SelectHidden bool
}

// Zone is a registered navigable region. At most one zone is current per
// controller, and it must belong to the active layer.
type Zone struct {
	cfg     Config
	ctrl    *Controller
	items   []*Item
	current int
	rowCols map[int]int
}

func newZone(ctrl *Controller, cfg Config) *Zone {
	z := &Zone{
		cfg:     cfg,
		ctrl:    ctrl,
		current: -1,
		rowCols: make(map[int]int),
	}
	z.items = make([]*Item, len(cfg.Items))
	for i := range cfg.Items {
		item := cfg.Items[i]
		z.items[i] = &item
	}
	return z
}

// Name returns the zone's registered name.
func (z *Zone) Name() string { return z.cfg.Name }

// Items returns the zone's item list. The slice is live: mutating an item's
// Hidden/Disabled flags takes effect on the next navigation step.
func (z *Zone) Items() []*Item { return z.items }

// Item returns the item with the given ID, or nil.
func (z *Zone) Item(id string) *Item {
	for _, item := range z.items {
		if item.ID == id {
			return item
		}
	}
	return nil
}

// Current returns the selected item, or nil when the zone has none.
func (z *Zone) Current() *Item {
	if z.current < 0 || z.current >= len(z.items) {
		return nil
	}
	return z.items[z.current]
}

// CurrentIndex returns the selected index, or -1.
func (z *Zone) CurrentIndex() int {
	if z.Current() == nil {
		return -1
	}
	return z.current
}

func (z *Zone) selectable(item *Item) bool {
	if item == nil || item.Disabled {
		return false
	}
	if item.Hidden && !z.cfg.SelectHidden {
		return false
	}
	return true
}

// Select moves the selection to the item at index. Out-of-range or
// unselectable targets are ignored and reported as false.
func (z *Zone) Select(index int) bool {
	if index < 0 || index >= len(z.items) || !z.selectable(z.items[index]) {
		return false
	}
	if index == z.current {
		return true
	}
	from := z.Current()
	z.current = index
	to := z.items[index]
	if z.cfg.SaveRowPosition {
		z.rowCols[to.Row] = index
	}
	events.Zone.Move(z.cfg.Name, indexOf(z.items, from), index)
	if z.cfg.MoveSelected != nil {
		z.cfg.MoveSelected(z, from, to)
	}
	if z.cfg.ScrollIntoView != nil {
		z.cfg.ScrollIntoView(z, to)
	}
	return true
}

// SelectID moves the selection to the item with the given ID.
func (z *Zone) SelectID(id string) bool {
	for i, item := range z.items {
		if item.ID == id {
			return z.Select(i)
		}
	}
	return false
}

// selectFirst picks the first selectable item; used when a zone becomes
// current without a remembered selection.
func (z *Zone) selectFirst() bool {
	for i := range z.items {
		if z.Select(i) {
			return true
		}
	}
	return false
}

// Click invokes the click callback for the current item.
func (z *Zone) Click() component.HandleResult {
	item := z.Current()
	if item == nil || z.cfg.Click == nil {
		return component.NotHandled
	}
	z.cfg.Click(z, item)
	return component.Handled
}

func (z *Zone) enter() {
	if z.Current() == nil {
		z.selectFirst()
	}
	events.Zone.Enter(z.cfg.Name)
	if z.cfg.EnterZone != nil {
		z.cfg.EnterZone(z)
	}
}

func (z *Zone) leave() {
	events.Zone.Leave(z.cfg.Name)
	if z.cfg.LeaveZone != nil {
		z.cfg.LeaveZone(z)
	}
}

func (z *Zone) inLayer(layer string) bool {
	for _, l := range z.cfg.Layers {
		if l == layer {
			return true
		}
	}
	return false
}

func indexOf(items []*Item, item *Item) int {
	for i, it := range items {
		if it == item {
			return i
		}
	}
	return -1
}

func (z *Zone) String() string {
	return fmt.Sprintf("zone(%s)", z.cfg.Name)
}
