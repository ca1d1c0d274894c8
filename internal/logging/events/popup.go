package events

import "github.com/atomicstack/places-popup/internal/logging"

type PopupTracer struct{}

type popupReason string

const (
	PopupReasonToggle   popupReason = "toggle"
	PopupReasonExternal popupReason = "external"
)

var Popup = PopupTracer{}

func (PopupTracer) Open(id string, limits interface{}) {
	logging.Trace("popup.open", map[string]interface{}{"id": id, "limits": limits})
}

func (PopupTracer) Close(id string, reason popupReason) {
	logging.Trace("popup.close", map[string]interface{}{"id": id, "reason": string(reason)})
}

func (PopupTracer) StaleClose(id, current string) {
	logging.Trace("popup.close.stale", map[string]interface{}{"id": id, "current": current})
}
