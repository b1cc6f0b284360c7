package ticks

import (
	"math"
	"testing"

	"gitlab.com/tinyland/lab/art-timeline/pkg/calendar"
)

const eps = 1e-9

func TestChooseIntervalTable(t *testing.T) {
	tests := []struct {
		rng  float64
		want float64
	}{
		{50000, 1000},
		{15000, 1000},
		{10000, 500},
		{6050, 500},
		{2000, 100},
		{300, 20},
		{500, 20},
		{101, 20},
		{100, 5},
		{41, 5},
		{40, 1},
		{11, 1},
		{5, 0.25},
		{2, 1.0 / 12},
		{0.6, 1.0 / 12},
		{0.5, 1.0 / 52},
		{0.2, 1.0 / 52},
		{0.1, 1.0 / 365},
		{0.05, 1.0 / 365},
		{0.003, 1.0 / 365},
	}

	for _, tt := range tests {
		got := ChooseInterval(tt.rng)
		if math.Abs(got-tt.want) > eps {
			t.Errorf("ChooseInterval(%v) = %v, want %v", tt.rng, got, tt.want)
		}
	}
}

func TestChooseIntervalMonotonic(t *testing.T) {
	prev := math.Inf(1)
	// Walk from the widest range down to the narrowest.
	for r := 60000.0; r > 0.001; r *= 0.97 {
		got := ChooseInterval(r)
		if got > prev+eps {
			t.Fatalf("ChooseInterval(%v) = %v, larger than interval %v for a wider range", r, got, prev)
		}
		prev = got
	}
}

func TestGenerateAlignsToInterval(t *testing.T) {
	got := Generate(-4000, 2050, 500)
	if len(got) == 0 {
		t.Fatal("Generate returned no ticks")
	}
	if got[0] != -4000 {
		t.Errorf("first tick = %v, want -4000", got[0])
	}
	if last := got[len(got)-1]; last != 2000 {
		t.Errorf("last tick = %v, want 2000", last)
	}
	if len(got) != 13 {
		t.Errorf("len = %d, want 13", len(got))
	}
}

func TestGenerateFirstTickIsCeiling(t *testing.T) {
	got := Generate(1901.3, 1910, 1)
	if len(got) == 0 || got[0] != 1902 {
		t.Fatalf("Generate(1901.3, 1910, 1) first = %v, want 1902", got)
	}
	for _, tick := range got {
		if tick < 1901.3 || tick > 1910 {
			t.Errorf("tick %v outside [1901.3, 1910]", tick)
		}
	}

	neg := Generate(-1234.5, -1200, 20)
	if len(neg) == 0 || neg[0] != -1220 {
		t.Fatalf("Generate(-1234.5, -1200, 20) = %v, want first -1220", neg)
	}
}

func TestGenerateCapsAtMaxTicks(t *testing.T) {
	tests := []struct {
		name            string
		start, end, itv float64
	}{
		{"tiny interval", 0, 1000, 1e-9},
		{"huge range", -1e6, 1e6, 1},
		{"day ticks over a millennium", 1000, 2000, Day},
	}

	for _, tt := range tests {
		got := Generate(tt.start, tt.end, tt.itv)
		if len(got) > MaxTicks {
			t.Errorf("%s: len = %d, want <= %d", tt.name, len(got), MaxTicks)
		}
	}
}

func TestGenerateDegenerateInputs(t *testing.T) {
	cases := [][3]float64{
		{0, 10, 0},
		{0, 10, -1},
		{0, 10, math.NaN()},
		{0, 10, math.Inf(1)},
		{10, 0, 1},
		{math.NaN(), 10, 1},
	}
	for _, c := range cases {
		if got := Generate(c[0], c[1], c[2]); got != nil {
			t.Errorf("Generate(%v, %v, %v) = %v, want nil", c[0], c[1], c[2], got)
		}
	}
}

func TestIsMajor(t *testing.T) {
	tests := []struct {
		tick, interval float64
		want           bool
	}{
		{2000, 500, true},
		{2020, 1, true},
		{2020.25, 0.25, true}, // quarters fall on month boundaries
		{2020.3, 1, false},
		{2020 + 1.0/12, 1.0 / 12, true},
		{2020 + 1.0/52, 1.0 / 52, false},
		{2021 - 1e-12, 1.0 / 12, true},
		{-1500, 100, true},
		{-1500.5, 0.25, true}, // July boundary is a whole month
	}

	for _, tt := range tests {
		if got := IsMajor(tt.tick, tt.interval); got != tt.want {
			t.Errorf("IsMajor(%v, %v) = %v, want %v", tt.tick, tt.interval, got, tt.want)
		}
	}
}

func TestLabelPrecision(t *testing.T) {
	tests := []struct {
		interval float64
		want     calendar.Precision
	}{
		{1000, calendar.Year},
		{1, calendar.Year},
		{Quarter, calendar.Month},
		{Month, calendar.Month},
		{Week, calendar.Day},
		{Day, calendar.Day},
	}
	for _, tt := range tests {
		if got := LabelPrecision(tt.interval); got != tt.want {
			t.Errorf("LabelPrecision(%v) = %v, want %v", tt.interval, got, tt.want)
		}
	}
}

func TestPlanMonthLabels(t *testing.T) {
	ticks, interval := Plan(2019.99, 2020.9)
	if math.Abs(interval-Month) > eps {
		t.Fatalf("interval = %v, want one month", interval)
	}
	if len(ticks) < 2 {
		t.Fatalf("Plan returned %d ticks", len(ticks))
	}
	if ticks[0].Label != "Jan 2020" {
		t.Errorf("ticks[0].Label = %q, want %q", ticks[0].Label, "Jan 2020")
	}
	if ticks[1].Label != "Feb 2020" {
		t.Errorf("ticks[1].Label = %q, want %q", ticks[1].Label, "Feb 2020")
	}
	for _, tk := range ticks {
		if !tk.Major {
			t.Errorf("month tick %v should be major", tk.Year)
		}
	}
}

func TestPlanBCELabels(t *testing.T) {
	ticks, _ := Plan(-4000, 2050)
	if len(ticks) == 0 || ticks[0].Label != "4000 BCE" {
		t.Fatalf("first label = %v, want 4000 BCE", ticks)
	}
}
