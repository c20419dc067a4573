package zone

import (
	"fmt"

	"github.com/telepilot/telepilot/internal/component"
	"github.com/telepilot/telepilot/internal/keys"
	"github.com/telepilot/telepilot/internal/logging/events"
)

// Controller owns the zone registry, the layer state, and key dispatch.
// Exactly one layer is active at a time; at most one zone in that layer is
// current. Looking up a zone that was never registered returns nil rather
// than failing: absent zones are a normal condition.
type Controller struct {
	zones   map[string]*Zone
	order   []*Zone
	active  string
	current *Zone
}

// NewController returns an empty controller with no active layer.
func NewController() *Controller {
	return &Controller{zones: make(map[string]*Zone)}
}

// Register adds a zone from its config. Registering the same name twice is
// a caller bug and panics.
func (c *Controller) Register(cfg Config) *Zone {
	if cfg.Name == "" {
		panic("zone: config without a name")
	}
	if _, ok := c.zones[cfg.Name]; ok {
		panic(fmt.Sprintf("zone: %q registered twice", cfg.Name))
	}
	z := newZone(c, cfg)
	c.zones[cfg.Name] = z
	c.order = append(c.order, z)
	return z
}

// Zone returns the named zone, or nil.
func (c *Controller) Zone(name string) *Zone { return c.zones[name] }

// ActiveLayer returns the active layer name, or "".
func (c *Controller) ActiveLayer() string { return c.active }

// Current returns the current zone, or nil.
func (c *Controller) Current() *Zone { return c.current }

// ActivateLayer switches the active layer. A current zone that does not
// belong to the new layer is left; if none survives, the first registered
// zone of the new layer becomes current.
func (c *Controller) ActivateLayer(name string) {
	if c.active == name {
		return
	}
	c.active = name
	events.Zone.Layer(name)
	if c.current != nil && !c.current.inLayer(name) {
		c.current.leave()
		c.current = nil
	}
	if c.current == nil {
		for _, z := range c.order {
			if z.inLayer(name) {
				c.setCurrent(z)
				break
			}
		}
	}
}

// EnterZone makes the named zone current. The zone must exist and belong to
// the active layer; otherwise nothing changes and false is returned.
func (c *Controller) EnterZone(name string) bool {
	z := c.zones[name]
	if z == nil || !z.inLayer(c.active) {
		return false
	}
	if z == c.current {
		return true
	}
	c.setCurrent(z)
	return true
}

// LeaveZone clears the current zone.
func (c *Controller) LeaveZone() {
	if c.current == nil {
		return
	}
	c.current.leave()
	c.current = nil
}

func (c *Controller) setCurrent(z *Zone) {
	if c.current != nil {
		c.current.leave()
	}
	c.current = z
	z.enter()
}

// HandleKey dispatches a key press: the current zone's key map first, then
// the built-in directional movement, then NotHandled so the caller can move
// across zones or fall back to application bindings.
func (c *Controller) HandleKey(code keys.Code) component.HandleResult {
	z := c.current
	if z == nil {
		return component.NotHandled
	}
	if handler, ok := z.cfg.Keys[code]; ok {
		if res := handler(z, code); res == component.Handled {
			events.Zone.Key(z.cfg.Name, code.String(), true)
			return component.Handled
		}
	}
	res := c.builtin(z, code)
	events.Zone.Key(z.cfg.Name, code.String(), res == component.Handled)
	return res
}

func (c *Controller) builtin(z *Zone, code keys.Code) component.HandleResult {
	switch code {
	case keys.Left, keys.Right, keys.Up, keys.Down:
		if z.move(code) {
			return component.Handled
		}
		return component.NotHandled
	case keys.Enter:
		return z.Click()
	}
	return component.NotHandled
}
