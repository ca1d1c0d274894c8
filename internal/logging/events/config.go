package events

import "github.com/atomicstack/places-popup/internal/logging"

type ConfigTracer struct{}

var Config = ConfigTracer{}

func (ConfigTracer) Display(showIcon, changed bool) {
	logging.Trace("config.display", map[string]interface{}{"showIcon": showIcon, "changed": changed})
}

func (ConfigTracer) Favorites(count int, changed bool) {
	logging.Trace("config.favorites", map[string]interface{}{"count": count, "changed": changed})
}

func (ConfigTracer) Trash(full, changed bool) {
	logging.Trace("config.trash", map[string]interface{}{"full": full, "changed": changed})
}

func (ConfigTracer) LoadErrors(namespace string, keys []string, err error) {
	if err == nil {
		return
	}
	logging.Trace("config.load-errors", map[string]interface{}{
		"namespace": namespace,
		"keys":      keys,
		"error":     err.Error(),
	})
}
