package output

import (
	"strings"
	"testing"
)

func TestVisualLen(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"plain", "hello", 5},
		{"empty", "", 0},
		{"ansi color", "\x1b[32mgreen\x1b[0m", 5},
		{"ansi only", "\x1b[1m\x1b[0m", 0},
		{"multibyte runes", "日本語", 3},
		{"bar glyphs", "████░░", 6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := visualLen(tc.in); got != tc.want {
				t.Errorf("visualLen(%q) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}

func TestPad(t *testing.T) {
	if got := pad("ab", 5); got != "ab   " {
		t.Errorf("pad = %q", got)
	}
	if got := pad("abcdef", 3); got != "abcdef" {
		t.Errorf("pad should not truncate: %q", got)
	}
	// Styled text pads to its visible width, not its byte length.
	styled := "\x1b[32mab\x1b[0m"
	if got := pad(styled, 4); got != styled+"  " {
		t.Errorf("styled pad = %q", got)
	}
}

func TestTableRender(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tbl := NewTable("ID", "NAME")
	tbl.AddRow("lead-magnet-basic", "Classic Lead Magnet")
	tbl.AddRow("webinar-basic", "Webinar Registration")

	got := tbl.Render()
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want header + separator + 2 rows:\n%s", len(lines), got)
	}
	if !strings.HasPrefix(lines[0], "ID") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[2], "lead-magnet-basic") || !strings.Contains(lines[2], "Classic Lead Magnet") {
		t.Errorf("row = %q", lines[2])
	}

	// Columns align: both data rows place the second column at the same
	// visible offset.
	idx2 := strings.Index(lines[2], "Classic")
	idx3 := strings.Index(lines[3], "Webinar")
	if idx2 != idx3 {
		t.Errorf("columns misaligned: %d vs %d\n%s", idx2, idx3, got)
	}
}

func TestTableRender_ShortRow(t *testing.T) {
	tbl := NewTable("A", "B", "C")
	tbl.AddRow("1") // missing cells render empty

	got := tbl.Render()
	if !strings.Contains(got, "1") {
		t.Errorf("render = %q", got)
	}
}

func TestTableRender_Empty(t *testing.T) {
	tbl := NewTable()
	if got := tbl.Render(); got != "" {
		t.Errorf("empty table render = %q", got)
	}
}
