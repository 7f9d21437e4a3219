package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/evalizada/manat/internal/ledger"
)

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(1.389); got != "1.4%" {
		t.Errorf("FormatPercent(1.389) = %q, want 1.4%%", got)
	}
	if got := FormatPercent(120); got != "120.0%" {
		t.Errorf("FormatPercent(120) = %q, want 120.0%%", got)
	}
}

func TestFormatMonth_HumanMonthName(t *testing.T) {
	if got := FormatMonth(2024, time.November); got != "November 2024" {
		t.Errorf("FormatMonth = %q", got)
	}
}

func TestDayOfWeek(t *testing.T) {
	if got := DayOfWeek(0); got != "Sun" {
		t.Errorf("DayOfWeek(0) = %q", got)
	}
	if got := DayOfWeek(9); got != "???" {
		t.Errorf("DayOfWeek(9) = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		limit int
		want  string
	}{
		{"short", 10, "short"},
		{"a long description", 7, "a long…"},
		{"anything", 0, ""},
	}
	for _, tc := range cases {
		if got := Truncate(tc.in, tc.limit); got != tc.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
		}
	}
}

func TestRenderSummary_ContainsSeedFigures(t *testing.T) {
	out := RenderSummary(ledger.New())
	for _, want := range []string{"$5000.00", "$69.45", "$4930.55", "1.4%", "Netflix", "$25.98"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary output missing %q", want)
		}
	}
}
