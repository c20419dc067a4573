package events

import "github.com/telepilot/telepilot/internal/logging"

type FocusTracer struct{}

type SelectTracer struct{}

type ScrollTracer struct{}

var (
	Focus  = FocusTracer{}
	Select = SelectTracer{}
	Scroll = ScrollTracer{}
)

func (FocusTracer) Transfer(from, to string) {
	logging.Trace("focus.transfer", map[string]interface{}{"from": from, "to": to})
}

func (FocusTracer) Key(key, handler string) {
	logging.Trace("focus.key", map[string]interface{}{"key": key, "handler": handler})
}

func (SelectTracer) Child(container, child string) {
	logging.Trace("select.child", map[string]interface{}{"container": container, "child": child})
}

func (SelectTracer) Repair(container, child string) {
	logging.Trace("select.repair", map[string]interface{}{"container": container, "child": child})
}

func (ScrollTracer) Update(container string, offset int, startSlit, endSlit bool) {
	logging.Trace("scroll.update", map[string]interface{}{
		"container": container,
		"offset":    offset,
		"start":     startSlit,
		"end":       endSlit,
	})
}
