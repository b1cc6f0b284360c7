package calendar

import (
	"math"
	"strings"
	"testing"
)

func TestToCalendar(t *testing.T) {
	tests := []struct {
		in   float64
		want Date
	}{
		{2020, Date{Year: 2020, MonthIndex: 0, Day: 1}},
		{2020.5, Date{Year: 2020, MonthIndex: 6, Day: 1}},
		{2020.25, Date{Year: 2020, MonthIndex: 3, Day: 1}},
		{1999.999, Date{Year: 1999, MonthIndex: 11, Day: 31}},
		{-2000.5, Date{Year: -2001, MonthIndex: 6, Day: 1}},
		{-500, Date{Year: -500, MonthIndex: 0, Day: 1}},
	}

	for _, tt := range tests {
		got := ToCalendar(tt.in)
		if got != tt.want {
			t.Errorf("ToCalendar(%v) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestToCalendarDayWithinMonth(t *testing.T) {
	// 2020 + 1/24 is half a month in: 0.5 * 30.44 = 15.22 -> day 16.
	got := ToCalendar(2020 + 1.0/24)
	if got.MonthIndex != 0 || got.Day != 16 {
		t.Errorf("ToCalendar(2020+1/24) = %+v, want Jan 16", got)
	}
}

func TestFormatPrecisions(t *testing.T) {
	tests := []struct {
		year float64
		p    Precision
		want string
	}{
		{2020.5, Year, "2020"},
		{2020.5, Month, "Jul 2020"},
		{2020.5, Day, "Jul 1, 2020"},
		{-500, Year, "500 BCE"},
		{-500, Month, "Jan 500 BCE"},
		{0, Year, "0"},
		{1434, Year, "1434"},
	}

	for _, tt := range tests {
		got := Format(tt.year, tt.p)
		if got != tt.want {
			t.Errorf("Format(%v, %v) = %q, want %q", tt.year, tt.p, got, tt.want)
		}
	}
}

func TestFormatYearPrecisionHasNoMonth(t *testing.T) {
	got := Format(-500, Year)
	for _, name := range monthNames {
		if strings.Contains(got, name) {
			t.Errorf("Format(-500, Year) = %q, should not mention %s", got, name)
		}
	}
	if strings.Contains(got, ",") {
		t.Errorf("Format(-500, Year) = %q, should carry no day", got)
	}
}

func TestFormatNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got := Format(v, Day); got != "?" {
			t.Errorf("Format(%v) = %q, want %q", v, got, "?")
		}
	}
}

func TestMonthIndexAlwaysInRange(t *testing.T) {
	inputs := []float64{
		-0.0001, -0.5, -0.9999, -1.25, -40000.75, -1e9 + 0.3,
		0, 0.9999999, 12345.678, 1e9 + 0.1,
	}
	for _, in := range inputs {
		d := ToCalendar(in)
		if d.MonthIndex < 0 || d.MonthIndex > 11 {
			t.Errorf("ToCalendar(%v).MonthIndex = %d, out of [0,11]", in, d.MonthIndex)
		}
		// Must not panic.
		_ = Format(in, Day)
	}
}

func TestMonthName(t *testing.T) {
	tests := map[int]string{
		0:   "Jan",
		6:   "Jul",
		11:  "Dec",
		12:  "Jan",
		-1:  "Dec",
		-13: "Dec",
	}
	for in, want := range tests {
		if got := MonthName(in); got != want {
			t.Errorf("MonthName(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatYear(t *testing.T) {
	if got := FormatYear(-24000); got != "24000 BCE" {
		t.Errorf("FormatYear(-24000) = %q", got)
	}
	if got := FormatYear(1889); got != "1889" {
		t.Errorf("FormatYear(1889) = %q", got)
	}
	if got, want := FormatYear(-450.5), Format(-450.5, Year); got != "451 BCE" || got != want {
		t.Errorf("FormatYear(-450.5) = %q, Format = %q, want 451 BCE", got, want)
	}
	if got := FormatSpan(-800, 400); got != "800 BCE – 400" {
		t.Errorf("FormatSpan(-800, 400) = %q", got)
	}
}

func TestParsePrecision(t *testing.T) {
	for in, want := range map[string]Precision{"year": Year, "Month": Month, " day ": Day, "": Year} {
		got, err := ParsePrecision(in)
		if err != nil {
			t.Fatalf("ParsePrecision(%q) error: %v", in, err)
		}
		if got != want {
			t.Errorf("ParsePrecision(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParsePrecision("week"); err == nil {
		t.Error("ParsePrecision(\"week\") should fail")
	}
}

func TestPrecisionString(t *testing.T) {
	if Day.String() != "day" || Precision(42).String() != "unknown" {
		t.Errorf("unexpected Precision.String output: %q %q", Day.String(), Precision(42).String())
	}
}
