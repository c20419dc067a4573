package events

import "github.com/telepilot/telepilot/internal/logging"

type ZoneTracer struct{}

var Zone = ZoneTracer{}

func (ZoneTracer) Enter(zone string) {
	logging.Trace("zone.enter", map[string]interface{}{"zone": zone})
}

func (ZoneTracer) Leave(zone string) {
	logging.Trace("zone.leave", map[string]interface{}{"zone": zone})
}

func (ZoneTracer) Layer(name string) {
	logging.Trace("zone.layer", map[string]interface{}{"layer": name})
}

func (ZoneTracer) Key(zone, key string, handled bool) {
	logging.Trace("zone.key", map[string]interface{}{"zone": zone, "key": key, "handled": handled})
}

func (ZoneTracer) Move(zone string, from, to int) {
	logging.Trace("zone.move", map[string]interface{}{"zone": zone, "from": from, "to": to})
}
