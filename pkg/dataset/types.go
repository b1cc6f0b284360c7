// Package dataset holds the static content the timeline displays: eras,
// their events, and art movements laid out in swimlanes. A Dataset is loaded
// once at startup and treated as read-only afterwards.
package dataset

import "strings"

// TimelineEvent is a single dated work or occurrence.
type TimelineEvent struct {
	ID          int     `yaml:"id"`
	Year        float64 `yaml:"year"`
	Label       string  `yaml:"label"`
	Artist      string  `yaml:"artist,omitempty"`
	Description string  `yaml:"description,omitempty"`
	ImageURL    string  `yaml:"image_url,omitempty"`
}

// ArtMovement is a span drawn as a bar in its era's swimlanes. Lane is
// assigned in the data, never computed.
type ArtMovement struct {
	ID        string  `yaml:"id"`
	Name      string  `yaml:"name"`
	StartYear float64 `yaml:"start_year"`
	EndYear   float64 `yaml:"end_year"`
	Color     string  `yaml:"color"`
	Lane      int     `yaml:"lane"`
	EraID     string  `yaml:"era_id"`
}

// EraColumn groups a year span, its display colours and its events in
// display order.
type EraColumn struct {
	ID              string          `yaml:"id"`
	Title           string          `yaml:"title"`
	ColorHex        string          `yaml:"color_hex"`
	ColorBackground string          `yaml:"color_background"`
	StartYear       float64         `yaml:"start_year"`
	EndYear         float64         `yaml:"end_year"`
	Events          []TimelineEvent `yaml:"events"`
}

// Dataset is the full content set.
type Dataset struct {
	Eras      []EraColumn   `yaml:"eras"`
	Movements []ArtMovement `yaml:"movements"`
}

// Bilingual splits a "primary / secondary" string. secondary is empty when
// there is no separator.
func Bilingual(s string) (primary, secondary string) {
	p, sec, ok := strings.Cut(s, "/")
	if !ok {
		return strings.TrimSpace(s), ""
	}
	return strings.TrimSpace(p), strings.TrimSpace(sec)
}

// SplitDescription splits an event description into its first line and the
// optional translated remainder.
func (e TimelineEvent) SplitDescription() (primary, secondary string) {
	p, sec, _ := strings.Cut(e.Description, "\n")
	return strings.TrimSpace(p), strings.TrimSpace(sec)
}

// Title returns the primary-language part of the event label.
func (e TimelineEvent) Title() string {
	p, _ := Bilingual(e.Label)
	return p
}

// ShortTitle returns the primary-language part of the era title.
func (e EraColumn) ShortTitle() string {
	p, _ := Bilingual(e.Title)
	return p
}

// ShortName returns the primary-language part of the movement name.
func (m ArtMovement) ShortName() string {
	p, _ := Bilingual(m.Name)
	return p
}
