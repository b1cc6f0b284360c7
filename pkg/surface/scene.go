// Package surface draws the timeline's terminal surfaces: the ruler, the
// swimlane canvas, the range indicator, the era detail panel and the event
// modal. Every surface is a pure function of a Scene, and the same Scene
// answers hit tests, so what is drawn and what is clicked always agree.
package surface

import (
	"gitlab.com/tinyland/lab/art-timeline/pkg/dataset"
	"gitlab.com/tinyland/lab/art-timeline/pkg/theme"
	"gitlab.com/tinyland/lab/art-timeline/pkg/viewport"
)

// TargetKind says what a Target points at.
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetMovement
	TargetEvent
	TargetEra
)

// Target is a hovered, selected or clicked item.
type Target struct {
	Kind       TargetKind
	MovementID string
	EventID    int
	EraID      string
}

// None is the empty target.
var None = Target{}

// MovementTarget returns a target for movement id.
func MovementTarget(id string) Target {
	return Target{Kind: TargetMovement, MovementID: id}
}

// EventTarget returns a target for event id.
func EventTarget(id int) Target {
	return Target{Kind: TargetEvent, EventID: id}
}

// IsEvent reports whether t is the event with id.
func (t Target) IsEvent(id int) bool {
	return t.Kind == TargetEvent && t.EventID == id
}

// IsMovement reports whether t is the movement with id.
func (t Target) IsMovement(id string) bool {
	return t.Kind == TargetMovement && t.MovementID == id
}

// Scene is everything a frame depends on.
type Scene struct {
	Viewport viewport.Viewport
	Data     *dataset.Dataset
	Styles   theme.Styles
	// Width is the surface width in cells.
	Width int
	// LaneHeight is the number of rows per swimlane (at least 1).
	LaneHeight int
	Hover      Target
	Selected   Target
}

func (s Scene) laneHeight() int {
	return max(s.LaneHeight, 1)
}

// hoveredMovement returns the hovered movement, if any.
func (s Scene) hoveredMovement() (dataset.ArtMovement, bool) {
	if s.Hover.Kind != TargetMovement || s.Data == nil {
		return dataset.ArtMovement{}, false
	}
	return s.Data.MovementByID(s.Hover.MovementID)
}

// hoveredEvent returns the hovered event, if any.
func (s Scene) hoveredEvent() (dataset.EventRef, bool) {
	if s.Hover.Kind != TargetEvent || s.Data == nil {
		return dataset.EventRef{}, false
	}
	return s.Data.EventByID(s.Hover.EventID)
}
