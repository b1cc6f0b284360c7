package termtest

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Snapshot is one rendered frame, stored without escape sequences so that
// frames drawn under different colour profiles compare on layout alone.
type Snapshot struct {
	Name     string
	Terminal string
	Width    int
	Height   int
	Content  string
}

// CaptureSnapshot calls render at width x height and keeps the stripped
// result.
func CaptureSnapshot(name, terminal string, render func(w, h int) string, width, height int) Snapshot {
	return Snapshot{
		Name:     name,
		Terminal: terminal,
		Width:    width,
		Height:   height,
		Content:  ansi.Strip(render(width, height)),
	}
}

// Lines returns the snapshot rows. An empty snapshot has one empty row.
func (s Snapshot) Lines() []string {
	return strings.Split(s.Content, "\n")
}

// Diff is a row that differs between two snapshots.
type Diff struct {
	Line     int // 1-based
	Expected string
	Actual   string
}

func (d Diff) String() string {
	return fmt.Sprintf("line %d: want %q, got %q", d.Line, d.Expected, d.Actual)
}

// CompareSnapshots lists the differing rows, or nil when the snapshots
// match. A row missing on one side compares as empty.
func CompareSnapshots(expected, actual Snapshot) []Diff {
	want, got := expected.Lines(), actual.Lines()
	var diffs []Diff
	for i := range max(len(want), len(got)) {
		w, g := rowAt(want, i), rowAt(got, i)
		if w != g {
			diffs = append(diffs, Diff{Line: i + 1, Expected: w, Actual: g})
		}
	}
	return diffs
}

// Overflow returns the 1-based rows wider than the snapshot width.
func Overflow(s Snapshot) []int {
	var rows []int
	for i, l := range s.Lines() {
		if ansi.StringWidth(l) > s.Width {
			rows = append(rows, i+1)
		}
	}
	return rows
}

func rowAt(rows []string, i int) string {
	if i < len(rows) {
		return rows[i]
	}
	return ""
}
