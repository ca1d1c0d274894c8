package events

import "github.com/atomicstack/places-popup/internal/logging"

type LaunchTracer struct{}

var Launch = LaunchTracer{}

func (LaunchTracer) Spawn(name, arg string) {
	logging.Trace("launch.spawn", map[string]interface{}{"name": name, "arg": arg})
}

func (LaunchTracer) Failed(name, arg string, err error) {
	if err == nil {
		return
	}
	logging.Trace("launch.failed", map[string]interface{}{"name": name, "arg": arg, "error": err.Error()})
}
