package events

import "github.com/atomicstack/places-popup/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Filter  = FilterTracer{}
	Command = CommandTracer{}
)

func (UITracer) Cursor(popupID string, cursor int) {
	logging.Trace("popup.cursor", map[string]interface{}{"popup": popupID, "cursor": cursor})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (FilterTracer) Cleared(popupID string) {
	logging.Trace("filter.clear", map[string]interface{}{"popup": popupID})
}

func (FilterTracer) WordBackspace(popupID, filter string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"popup": popupID, "filter": filter})
}

func (FilterTracer) Cursor(popupID string, pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"popup": popupID, "cursor": pos})
}

func (FilterTracer) Append(popupID, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"popup": popupID, "filter": filter})
}

func (FilterTracer) Backspace(popupID, filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"popup": popupID, "filter": filter})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, location string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "location": location})
}
