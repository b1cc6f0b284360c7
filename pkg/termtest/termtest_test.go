package termtest

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/art-timeline/pkg/dataset"
	"gitlab.com/tinyland/lab/art-timeline/pkg/surface"
	"gitlab.com/tinyland/lab/art-timeline/pkg/terminal"
	"gitlab.com/tinyland/lab/art-timeline/pkg/theme"
	"gitlab.com/tinyland/lab/art-timeline/pkg/viewport"
)

// applyProfile clears every terminal variable and sets the profile's own.
func applyProfile(t *testing.T, p TerminalProfile) {
	t.Helper()
	for _, k := range EnvKeys() {
		t.Setenv(k, "")
	}
	for k, v := range p.EnvVars {
		t.Setenv(k, v)
	}
}

// --- Profile Tests ---

func TestProfiles_ReturnsAtLeast8(t *testing.T) {
	profiles := Profiles()
	if len(profiles) < 8 {
		t.Errorf("Profiles() returned %d profiles, want >= 8", len(profiles))
	}
}

func TestProfiles_NonEmptyNameAndEnvVars(t *testing.T) {
	for _, p := range Profiles() {
		if p.Name == "" {
			t.Error("profile has empty Name")
		}
		if len(p.EnvVars) == 0 {
			t.Errorf("profile %q has empty EnvVars", p.Name)
		}
	}
}

func TestProfileByName(t *testing.T) {
	p := ProfileByName("Ghostty")
	if p == nil {
		t.Fatal("Ghostty profile not found")
	}
	if p.Protocol != terminal.ProtocolKitty || p.Profile != termenv.TrueColor {
		t.Errorf("Ghostty = %+v", *p)
	}
	if ProfileByName("teletype") != nil {
		t.Error("unknown name should return nil")
	}
}

func TestEnvKeysCoverProfiles(t *testing.T) {
	keys := map[string]bool{}
	for _, k := range EnvKeys() {
		if keys[k] {
			t.Errorf("EnvKeys lists %q twice", k)
		}
		keys[k] = true
	}
	for _, p := range Profiles() {
		for k := range p.EnvVars {
			if !keys[k] {
				t.Errorf("EnvKeys misses %q from %s", k, p.Name)
			}
		}
	}
}

// --- Detection Tests ---

func TestProfilesMatchDetection(t *testing.T) {
	for _, p := range Profiles() {
		t.Run(p.Name, func(t *testing.T) {
			applyProfile(t, p)
			got := terminal.Detect()
			if got != p.Term {
				t.Fatalf("Detect() = %v, want %v", got, p.Term)
			}
			if proto := terminal.SelectProtocol(got, false); proto != p.Protocol {
				t.Errorf("SelectProtocol = %v, want %v", proto, p.Protocol)
			}
			if got.SupportsMouseMotion() != p.MouseMotion {
				t.Errorf("SupportsMouseMotion = %v, want %v", got.SupportsMouseMotion(), p.MouseMotion)
			}
		})
	}
}

func TestSSHDegradesArtwork(t *testing.T) {
	p := ttKittyProfile()
	applyProfile(t, p)
	t.Setenv("SSH_TTY", "/dev/pts/3")

	caps := terminal.DetectCapabilities(terminal.Options{Protocol: "auto"})
	if caps.Protocol != terminal.ProtocolHalfblocks {
		t.Fatalf("Protocol over ssh = %v, want halfblocks", caps.Protocol)
	}
	got := FromCapabilities(caps)
	if !got.SSH || got.Name != "kitty" {
		t.Errorf("FromCapabilities = %+v", got)
	}
	r := ttCheckFeature("artwork", got)
	if r.Status != "degraded" || !strings.Contains(r.Workaround, "ssh") {
		t.Errorf("artwork over ssh = %+v", r)
	}
}

// --- Compat Tests ---

func TestCheckCompat_ReturnsAllFeatures(t *testing.T) {
	results := CheckCompat(ttGhosttyProfile())
	features := Features()

	if len(results) != len(features) {
		t.Fatalf("CheckCompat returned %d results, want %d", len(results), len(features))
	}
	for i, r := range results {
		if r.Feature != features[i] {
			t.Errorf("result %d is %q, want %q", i, r.Feature, features[i])
		}
		if r.Status != "full" {
			t.Errorf("Ghostty %s = %q, want full", r.Feature, r.Status)
		}
	}
}

func TestCheckCompat_Degradations(t *testing.T) {
	tests := []struct {
		profile string
		feature string
		want    string
	}{
		{"Tilix", "truecolor", "degraded"},
		{"Tilix", "artwork", "degraded"},
		{"Apple Terminal", "hover", "unsupported"},
		{"Apple Terminal", "drag_pan", "partial"},
		{"iTerm2", "artwork", "full"},
		{"tmux", "ruler_glyphs", "full"},
	}
	for _, tt := range tests {
		p := ProfileByName(tt.profile)
		if p == nil {
			t.Fatalf("profile %q not found", tt.profile)
		}
		r := ttCheckFeature(tt.feature, *p)
		if r.Status != tt.want {
			t.Errorf("%s %s = %q, want %q", tt.profile, tt.feature, r.Status, tt.want)
		}
		if r.Status != "full" && r.Workaround == "" && r.Notes == "" {
			t.Errorf("%s %s has no explanation", tt.profile, tt.feature)
		}
	}
}

func TestCheckCompat_NoColorAndNoImages(t *testing.T) {
	p := TerminalProfile{Name: "dumb", Profile: termenv.Ascii, Protocol: terminal.ProtocolNone}
	for _, r := range CheckCompat(p) {
		switch r.Feature {
		case "truecolor", "artwork", "hover":
			if r.Status != "unsupported" {
				t.Errorf("%s = %q, want unsupported", r.Feature, r.Status)
			}
		case "ruler_glyphs":
			if r.Status != "degraded" {
				t.Errorf("ruler_glyphs = %q, want degraded", r.Status)
			}
		}
	}
	if r := ttCheckFeature("clipboard", p); r.Status != "unsupported" {
		t.Errorf("unknown feature = %+v", r)
	}
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	Report(&buf, ttTilixProfile())
	out := buf.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != len(Features())+1 {
		t.Fatalf("report has %d lines:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "terminal: Tilix  colour: 256  artwork: halfblocks") {
		t.Errorf("header = %q", lines[0])
	}
	for i, f := range Features() {
		if !strings.HasPrefix(strings.TrimSpace(lines[i+1]), f) {
			t.Errorf("line %d = %q, want feature %q", i+1, lines[i+1], f)
		}
	}
	if !strings.Contains(out, "nearest 256-colour") {
		t.Error("report lacks the truecolor workaround")
	}
}

// --- Snapshot Tests ---

func TestCompareSnapshots(t *testing.T) {
	a := Snapshot{Content: "one\ntwo"}
	if d := CompareSnapshots(a, a); d != nil {
		t.Errorf("identical snapshots differ: %+v", d)
	}
	b := Snapshot{Content: "one\nTWO\nthree"}
	d := CompareSnapshots(a, b)
	if len(d) != 2 || d[0].Line != 2 || d[1].Line != 3 || d[1].Expected != "" {
		t.Errorf("diffs = %+v", d)
	}
	if d := CompareSnapshots(Snapshot{}, Snapshot{Content: ""}); d != nil {
		t.Errorf("empty snapshots differ: %+v", d)
	}
	if got := (Diff{Line: 3, Expected: "a", Actual: "b"}).String(); got != `line 3: want "a", got "b"` {
		t.Errorf("Diff.String() = %s", got)
	}
}

func TestCaptureSnapshotStripsStyling(t *testing.T) {
	s := CaptureSnapshot("styled", "test", func(w, h int) string {
		return "\x1b[1mbold\x1b[0m"
	}, 10, 1)
	if s.Content != "bold" {
		t.Errorf("Content = %q", s.Content)
	}
	if o := Overflow(s); o != nil {
		t.Errorf("Overflow = %v", o)
	}
	if o := Overflow(Snapshot{Width: 2, Content: "ok\ntoo wide"}); len(o) != 1 || o[0] != 2 {
		t.Errorf("Overflow = %v, want [2]", o)
	}
}

// The frame layout must not depend on the colour profile.
func TestFrameLayoutAcrossProfiles(t *testing.T) {
	data := dataset.Default()
	render := func(p TerminalProfile) Snapshot {
		st := theme.NewStyles(theme.Get("default"), theme.ColorDepth(p.Profile))
		return CaptureSnapshot("frame", p.Name, func(w, h int) string {
			return surface.Frame(surface.Scene{
				Viewport:   viewport.Viewport{StartYear: 1400, EndYear: 1700},
				Data:       data,
				Styles:     st,
				Width:      w,
				LaneHeight: 1,
			}, true)
		}, 100, 0)
	}

	base := render(ttGhosttyProfile())
	if o := Overflow(base); o != nil {
		t.Fatalf("lines wider than 100: %v", o)
	}
	for _, p := range Profiles()[1:] {
		got := render(p)
		if d := CompareSnapshots(base, got); d != nil {
			t.Errorf("%s differs from %s, %s", p.Name, base.Terminal, d[0])
		}
	}
}
