package component

import "github.com/telepilot/telepilot/internal/keys"

// EventType names the notifications dispatched by the core.
type EventType int

const (
	EventFocus EventType = iota
	EventBlur
	EventKey
	EventSelectChild
	EventUpdateHighlight
)

var eventNames = map[EventType]string{
	EventFocus:           "focus",
	EventBlur:            "blur",
	EventKey:             "key",
	EventSelectChild:     "select-child",
	EventUpdateHighlight: "update-highlight",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "unknown"
}

// Event is delivered to externally-subscribed observers. Internal state
// mutation always completes before observers see the event, so handlers can
// rely on Target reflecting the post-transition state.
type Event struct {
	Type   EventType
	Target Component
	// Child is the newly selected child for EventSelectChild, nil when the
	// selection was cleared.
	Child Component
	// Key is set for EventKey.
	Key *KeyEvent
}

// Listener observes events on a single component.
type Listener func(Event)

// HandleResult is the short-circuit return value of a key handler layer.
type HandleResult int

const (
	NotHandled HandleResult = iota
	Handled
)

// KeyEvent carries a remote key press through the handler layers, from the
// focused leaf up through its ancestors.
type KeyEvent struct {
	Code keys.Code
	Mods keys.Modifiers

	stopped          bool
	defaultPrevented bool
}

// NewKeyEvent builds a key event for dispatch through Context.HandleKey.
func NewKeyEvent(code keys.Code, mods keys.Modifiers) *KeyEvent {
	return &KeyEvent{Code: code, Mods: mods}
}

// StopPropagation prevents the event from reaching ancestor handler layers.
func (e *KeyEvent) StopPropagation() { e.stopped = true }

// Stopped reports whether propagation has been stopped.
func (e *KeyEvent) Stopped() bool { return e.stopped }

// PreventDefault marks the event so the presentation layer skips its own
// default behaviour for the key.
func (e *KeyEvent) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (e *KeyEvent) DefaultPrevented() bool { return e.defaultPrevented }
