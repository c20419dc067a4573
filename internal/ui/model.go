package ui

import (
	"reflect"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/telepilot/telepilot/internal/component"
	"github.com/telepilot/telepilot/internal/keys"
	"github.com/telepilot/telepilot/internal/logging/events"
	"github.com/telepilot/telepilot/internal/markup"
	"github.com/telepilot/telepilot/internal/theme"
	"github.com/telepilot/telepilot/internal/zone"
)

// Variant selects which demo the model runs.
const (
	VariantShelves = "shelves"
	VariantZones   = "zones"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the navigation demo. The shelves
// variant drives a component tree through the focus context; the zones
// variant drives the zone controller.
type Model struct {
	variant     string
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool
	errMsg      string
	infoMsg     string

	handlers map[reflect.Type]msgHandler
	keymap   keyMap

	// shelves variant
	ctx         *component.Context
	root        *component.Container
	metrics     *cellMetrics
	tracker     *renderTracker
	cards       []component.Component
	filterInput textinput.Model
	filtering   bool

	// zones variant
	zones      *zone.Controller
	nowPlaying string
	playing    bool
}

// NewModel initialises the demo from a parsed layout and configuration.
func NewModel(variant string, layout *markup.Node, width, height int, showFooter, verbose bool) (*Model, error) {
	m := &Model{
		variant:    variant,
		showFooter: showFooter,
		verbose:    verbose,
		keymap:     newKeyMap(),
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}

	events.UI.Variant(variant)

	switch variant {
	case VariantZones:
		m.zones = m.buildZones()
	default:
		m.metrics = &cellMetrics{width: m.width, height: m.height}
		m.tracker = newRenderTracker()
		m.ctx = component.NewContext(
			component.WithMetrics(m.metrics),
			component.WithRenderer(m.tracker),
		)
		root, err := buildTree(m.ctx, layout)
		if err != nil {
			return nil, err
		}
		m.root = root
		collectCards(root, &m.cards)
		root.RequestFocus()

		ti := textinput.New()
		ti.Placeholder = "type to filter"
		ti.Prompt = "/ "
		if styles.FilterPrompt != nil {
			ti.PromptStyle = *styles.FilterPrompt
		}
		if styles.Filter != nil {
			ti.TextStyle = *styles.Filter
		}
		m.filterInput = ti
	}

	m.registerHandlers()
	return m, nil
}

// collectCards gathers the filterable leaves: the cards on the shelves, not
// the side nav entries.
func collectCards(root *component.Container, out *[]component.Component) {
	for _, child := range root.Children() {
		if child.ID() == "sidenav" {
			continue
		}
		collectLeaves(child, out)
	}
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.variant == VariantZones {
		return nil
	}
	return textinput.Blink
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.filtering {
		return m.handleFilterInput(keyMsg)
	}
	switch keyMsg.String() {
	case "q", "ctrl+c":
		return tea.Quit
	case "/":
		if m.variant == VariantShelves {
			m.openFilter()
			return nil
		}
	}
	code, mods, ok := keys.FromTea(keyMsg)
	if !ok {
		return nil
	}
	m.infoMsg = ""
	if m.variant == VariantZones {
		m.handleZoneKey(code)
		return nil
	}
	ev := component.NewKeyEvent(code, mods)
	if m.ctx.HandleKey(ev) == component.Handled || ev.DefaultPrevented() {
		return nil
	}
	if code == keys.Enter {
		m.activateFocused()
	}
	return nil
}

// activateFocused is the default action for an Enter press no handler layer
// claimed: open the focused card.
func (m *Model) activateFocused() {
	focused := m.ctx.Focused()
	if focused == nil {
		return
	}
	label := labelOf(focused)
	m.infoMsg = "playing " + label
	events.UI.Activate(focused.ID(), label)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	sizeMsg, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = sizeMsg.Width
	}
	if !m.fixedHeight {
		m.height = sizeMsg.Height
	}
	events.UI.Resize(m.width, m.height)
	if m.variant == VariantShelves {
		m.metrics.Resize(m.width, m.height)
		m.ctx.Postpone(func() {
			walkContainers(m.root, func(c *component.Container) {
				c.RefreshScroll()
			})
		})
	}
	return nil
}
