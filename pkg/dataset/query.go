package dataset

import (
	"math"
	"sort"

	"gitlab.com/tinyland/lab/art-timeline/pkg/viewport"
)

// EventRef locates an event together with the era it belongs to.
type EventRef struct {
	Event TimelineEvent
	Era   *EraColumn
}

// AllEvents returns every event in era order, then event order.
func (d *Dataset) AllEvents() []EventRef {
	var out []EventRef
	for i := range d.Eras {
		era := &d.Eras[i]
		for _, ev := range era.Events {
			out = append(out, EventRef{Event: ev, Era: era})
		}
	}
	return out
}

// EventsByYear returns every event sorted by year, ties kept in dataset
// order.
func (d *Dataset) EventsByYear() []EventRef {
	all := d.AllEvents()
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Event.Year < all[j].Event.Year
	})
	return all
}

// EventByID returns the first event with id.
func (d *Dataset) EventByID(id int) (EventRef, bool) {
	for i := range d.Eras {
		for _, ev := range d.Eras[i].Events {
			if ev.ID == id {
				return EventRef{Event: ev, Era: &d.Eras[i]}, true
			}
		}
	}
	return EventRef{}, false
}

// EraByID returns the era with id.
func (d *Dataset) EraByID(id string) (*EraColumn, bool) {
	for i := range d.Eras {
		if d.Eras[i].ID == id {
			return &d.Eras[i], true
		}
	}
	return nil, false
}

// MovementByID returns the movement with id.
func (d *Dataset) MovementByID(id string) (ArtMovement, bool) {
	for _, m := range d.Movements {
		if m.ID == id {
			return m, true
		}
	}
	return ArtMovement{}, false
}

// ActiveEras reports, per era in dataset order, whether it overlaps v.
func (d *Dataset) ActiveEras(v viewport.Viewport) []bool {
	out := make([]bool, len(d.Eras))
	for i, era := range d.Eras {
		out[i] = v.Overlaps(era.StartYear, era.EndYear)
	}
	return out
}

// VisibleEvents returns the events whose year lies in v, sorted by year.
func (d *Dataset) VisibleEvents(v viewport.Viewport) []EventRef {
	var out []EventRef
	for _, ref := range d.EventsByYear() {
		if v.Contains(ref.Event.Year) {
			out = append(out, ref)
		}
	}
	return out
}

// VisibleMovements returns the movements that intersect v.
func (d *Dataset) VisibleMovements(v viewport.Viewport) []ArtMovement {
	var out []ArtMovement
	for _, m := range d.Movements {
		if m.EndYear >= v.StartYear && m.StartYear <= v.EndYear {
			out = append(out, m)
		}
	}
	return out
}

// Lanes returns the number of swimlanes needed: one more than the highest
// lane index in use.
func (d *Dataset) Lanes() int {
	n := 0
	for _, m := range d.Movements {
		if m.Lane+1 > n {
			n = m.Lane + 1
		}
	}
	return n
}

// Extent returns the earliest and latest year any era, movement or event
// covers. ok is false for an empty dataset.
func (d *Dataset) Extent() (start, end float64, ok bool) {
	start, end = math.Inf(1), math.Inf(-1)
	grow := func(a, b float64) {
		start = math.Min(start, a)
		end = math.Max(end, b)
	}
	for _, era := range d.Eras {
		grow(era.StartYear, era.EndYear)
		for _, ev := range era.Events {
			grow(ev.Year, ev.Year)
		}
	}
	for _, m := range d.Movements {
		grow(m.StartYear, m.EndYear)
	}
	if math.IsInf(start, 0) {
		return 0, 0, false
	}
	return start, end, true
}
