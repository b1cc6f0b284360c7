package viewport

import (
	"log/slog"
)

// Listener is called after the current viewport has been replaced.
type Listener func(old, current Viewport)

// Options configures a Controller.
type Options struct {
	Initial Viewport
	Wheel   Factors
	Button  Factors
	Logger  *slog.Logger
}

// Controller is the single owner of the current viewport. It is not safe for
// concurrent use; all calls are expected on the UI event loop.
type Controller struct {
	current   Viewport
	initial   Viewport
	wheel     Factors
	button    Factors
	listeners []Listener
	atLimit   bool
	logger    *slog.Logger
}

// NewController creates a controller. Zero-valued option fields fall back to
// Default(), WheelFactors, ButtonFactors and slog.Default().
func NewController(opts Options) *Controller {
	initial := opts.Initial
	if initial == (Viewport{}) {
		initial = Default()
	}
	initial = Normalize(initial)

	wheel := opts.Wheel
	if wheel == (Factors{}) {
		wheel = WheelFactors
	}
	button := opts.Button
	if button == (Factors{}) {
		button = ButtonFactors
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Controller{
		current: initial,
		initial: initial,
		wheel:   wheel,
		button:  button,
		logger:  logger,
	}
}

// Current returns a snapshot of the viewport.
func (c *Controller) Current() Viewport {
	return c.current
}

// Initial returns the window Reset restores.
func (c *Controller) Initial() Viewport {
	return c.initial
}

// AtLimit reports whether the most recent zoom was stopped by the range
// clamp.
func (c *Controller) AtLimit() bool {
	return c.atLimit
}

// Subscribe registers fn to be called after every change.
func (c *Controller) Subscribe(fn Listener) {
	if fn != nil {
		c.listeners = append(c.listeners, fn)
	}
}

// Set replaces the viewport after normalising it.
func (c *Controller) Set(v Viewport) {
	c.atLimit = false
	c.replace(Normalize(v), "set")
}

// Reset restores the initial window.
func (c *Controller) Reset() {
	c.Set(c.initial)
}

// ZoomAt applies one wheel step anchored at cursorRatio.
func (c *Controller) ZoomAt(cursorRatio float64, d Direction) {
	before := c.current.Range()
	next := ZoomAt(c.current, cursorRatio, d, c.wheel)
	c.atLimit = rangeClamped(before, d, c.wheel)
	c.replace(next, "wheel zoom "+d.String())
}

// ZoomButton applies one button step anchored at the window centre.
func (c *Controller) ZoomButton(d Direction) {
	before := c.current.Range()
	next := ZoomCentered(c.current, d, c.button)
	c.atLimit = rangeClamped(before, d, c.button)
	c.replace(next, "button zoom "+d.String())
}

// PanBy translates by a pixel delta on a surface of the given width.
func (c *Controller) PanBy(deltaPixels, surfaceWidth float64) {
	c.atLimit = false
	c.replace(PanBy(c.current, deltaPixels, surfaceWidth), "pan")
}

// PanFraction translates by a fraction of the current range, for keyboard
// panning.
func (c *Controller) PanFraction(fraction float64) {
	c.atLimit = false
	c.replace(PanYears(c.current, c.current.Range()*fraction), "pan")
}

// Focus centres the window on year keeping the range.
func (c *Controller) Focus(year float64) {
	c.atLimit = false
	c.replace(CenterOn(c.current, year), "focus")
}

func (c *Controller) replace(next Viewport, reason string) {
	old := c.current
	if next == old {
		return
	}
	c.current = next
	c.logger.Debug("viewport changed",
		"reason", reason,
		"start", next.StartYear,
		"end", next.EndYear,
		"range", next.Range(),
	)
	for _, fn := range c.listeners {
		fn(old, next)
	}
}

// rangeClamped reports whether one step from a range of before would leave
// [MinZoomRange, MaxZoomRange], meaning a zoom limit was hit.
func rangeClamped(before float64, d Direction, f Factors) bool {
	want := before * f.For(d)
	return want < MinZoomRange || want > MaxZoomRange
}
