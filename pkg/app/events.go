// Package app is the interactive timeline: a bubbletea model that owns the
// viewport controller, routes keyboard and mouse input to it, and composes
// the render surfaces into a full-screen view.
//
// Surfaces are pure functions of the current viewport, so the model only
// keeps interaction state (hover, selection, drag, modal) alongside the
// controller.
package app

import "time"

// NoticeEvent shows a transient message on the status line.
type NoticeEvent struct {
	Text string
}

// noticeExpiredEvent clears the status line if no newer notice replaced it.
type noticeExpiredEvent struct {
	seq int
}

// ArtworkLoadedEvent carries a rendered artwork preview back into the update
// loop. Err is set when the image could not be read or decoded.
type ArtworkLoadedEvent struct {
	EventID   int
	Art       string
	Err       error
	Timestamp time.Time
}

// ThemeChangeEvent switches the active colour theme.
type ThemeChangeEvent struct {
	Theme string
}

// LayoutPresetEvent switches to a named layout preset ("full", "compact",
// "canvas").
type LayoutPresetEvent struct {
	Preset string
}

// WindowPresetEvent moves the viewport to a named window preset.
type WindowPresetEvent struct {
	Preset string
}
