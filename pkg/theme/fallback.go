package theme

import (
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// Adapt converts all hex colors in a theme to palette indices when the
// terminal color depth is less than 24-bit. Returns the theme unchanged if
// the terminal supports 24-bit color (colorDepth >= 24).
func Adapt(t Theme, colorDepth int) Theme {
	if colorDepth >= 24 {
		return t
	}
	for _, f := range t.thColorFields() {
		*f.ptr = AdaptColor(*f.ptr, colorDepth)
	}
	return t
}

// AdaptColor converts a single dataset colour the same way Adapt does:
// 16-colour terminals get an ANSI index, everything else below 24-bit the
// nearest 256-colour entry. Unparseable input is returned as is.
func AdaptColor(hex string, colorDepth int) string {
	if colorDepth >= 24 {
		return hex
	}
	p := termenv.ANSI256
	if colorDepth == 4 {
		p = termenv.ANSI
	} else if idx, ok := greyIndex(hex); ok {
		return strconv.Itoa(idx)
	}
	switch c := p.Color(hex).(type) {
	case termenv.ANSI256Color:
		return strconv.Itoa(int(c))
	case termenv.ANSIColor:
		return strconv.Itoa(int(c))
	}
	return hex
}

// cubeLevels are the channel values of the 6x6x6 part of the 256-colour
// palette.
var cubeLevels = [6]int{0, 95, 135, 175, 215, 255}

// greyIndex returns the grey-ramp entry (232-255) for hex when it is
// strictly nearer in RGB than the nearest colour-cube entry. Mid greys
// such as #808080 land on the ramp exactly; black and white stay in the
// cube.
func greyIndex(hex string) (int, bool) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0, false
	}
	r, g, b := c.RGB255()
	rgb := [3]int{int(r), int(g), int(b)}

	cubeDist := 0
	for _, v := range rgb {
		d := v - cubeLevels[nearestCubeLevel(v)]
		cubeDist += d * d
	}

	avg := (rgb[0] + rgb[1] + rgb[2]) / 3
	step := (avg - 8 + 5) / 10
	step = max(0, min(23, step))
	level := 8 + 10*step
	greyDist := 0
	for _, v := range rgb {
		d := v - level
		greyDist += d * d
	}
	if greyDist < cubeDist {
		return 232 + step, true
	}
	return 0, false
}

func nearestCubeLevel(v int) int {
	best, bestDist := 0, 256
	for i, l := range cubeLevels {
		d := v - l
		if d < 0 {
			d = -d
		}
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// thTo256Color maps a hex colour to its 256-colour index.
func thTo256Color(hex string) string {
	return AdaptColor(hex, 8)
}

// ColorDepth maps a termenv profile to a bit depth for Adapt.
func ColorDepth(p termenv.Profile) int {
	switch p {
	case termenv.TrueColor:
		return 24
	case termenv.ANSI256:
		return 8
	case termenv.ANSI:
		return 4
	default:
		return 1
	}
}

// Contrast returns whichever of light and dark stands out more against bg,
// compared by CIE lightness. Invalid input returns light.
func Contrast(bg, light, dark string) string {
	b, err := colorful.Hex(bg)
	if err != nil {
		return light
	}
	l, errL := colorful.Hex(light)
	d, errD := colorful.Hex(dark)
	if errL != nil || errD != nil {
		return light
	}
	bl, _, _ := b.Lab()
	ll, _, _ := l.Lab()
	dl, _, _ := d.Lab()
	if abs(bl-dl) > abs(bl-ll) {
		return dark
	}
	return light
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
