package events

import "github.com/atomicstack/places-popup/internal/logging"

type PlacesTracer struct{}

var Places = PlacesTracer{}

func (PlacesTracer) Rebuild(generation uint64, entries int, legacy bool) {
	logging.Trace("places.rebuild", map[string]interface{}{
		"generation": generation,
		"entries":    entries,
		"legacy":     legacy,
	})
}

func (PlacesTracer) Activate(generation uint64, index int, label, location string) {
	logging.Trace("places.activate", map[string]interface{}{
		"generation": generation,
		"index":      index,
		"label":      label,
		"location":   location,
	})
}

func (PlacesTracer) StaleActivation(generation, current uint64, index int) {
	logging.Trace("places.activate.stale", map[string]interface{}{
		"generation": generation,
		"current":    current,
		"index":      index,
	})
}
