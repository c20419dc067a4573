package component

import "fmt"

// TabSync links a tab-bar container to a stack of pages by index: selecting
// tab i selects page i. It is a standalone behaviour attached to two sibling
// containers rather than a widget subclass.
type TabSync struct {
	tabs  *Container
	pages *Container
}

// NewTabSync wires the behaviour. The pages container must be a stack, since
// anything else would fight the synchronisation with its own key handling.
func NewTabSync(tabs, pages *Container) *TabSync {
	if tabs == nil || pages == nil {
		panic("component: TabSync requires both containers")
	}
	if pages.Orientation() != OrientationStack {
		panic(fmt.Sprintf("component: TabSync pages %q must be a stack, got %s", pages.ID(), pages.Orientation()))
	}
	ts := &TabSync{tabs: tabs, pages: pages}
	tabs.On(EventSelectChild, ts.onTabSelected)
	return ts
}

func (ts *TabSync) onTabSelected(ev Event) {
	if ev.Child == nil {
		return
	}
	idx := ts.tabs.indexOf(ev.Child)
	if idx < 0 || idx >= len(ts.pages.children) {
		return
	}
	ts.pages.SetSelectedChild(ts.pages.children[idx])
}
