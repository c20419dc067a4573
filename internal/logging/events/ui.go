package events

import "github.com/telepilot/telepilot/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

var (
	UI     = UITracer{}
	Filter = FilterTracer{}
)

func (UITracer) Variant(name string) {
	logging.Trace("ui.variant", map[string]interface{}{"variant": name})
}

func (UITracer) Activate(id, label string) {
	logging.Trace("ui.activate", map[string]interface{}{"item": id, "label": label})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (FilterTracer) Append(query string) {
	logging.Trace("filter.append", map[string]interface{}{"filter": query})
}

func (FilterTracer) Backspace(query string) {
	logging.Trace("filter.backspace", map[string]interface{}{"filter": query})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (FilterTracer) Matches(query string, visible, total int) {
	logging.Trace("filter.matches", map[string]interface{}{
		"filter":  query,
		"visible": visible,
		"total":   total,
	})
}
