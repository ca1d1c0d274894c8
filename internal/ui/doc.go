// Package ui contains the Bubble Tea program that renders the places applet:
// a panel button and the popup list it toggles.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with one message at a time, so the model
//     doubles as the sequential dispatcher for every event source. Messages
//     are routed through a typed handler registry.
//   - TogglePopupMsg and the toggle keys drive popup.Lifecycle. A create builds
//     a fresh list from the controller, a destroy drops it.
//   - PopupClosedMsg reports a popup that went away on its own (focus loss).
//     Notifications for an id other than the live one are ignored.
//   - ActivateMsg carries the list generation it was derived from. When the
//     controller has rebuilt since, the activation is dropped.
//
// State ownership:
//   - The configuration documents and the entry list live in state.Controller.
//   - Cursor, viewport and filter live in internal/ui/state.List.
//   - Launches run through internal/ui/command so they never block Update.
//
// Backend interactions:
//   - A backend.Watcher streams config and trash events; Update waits for
//     them and hands them to the dispatcher, which updates the controller.
//     An open list is refreshed when the entries were rebuilt.
package ui
