package components

import (
	"strings"
	"testing"
)

func TestLayoutRow_SumsToTotal(t *testing.T) {
	cases := []struct {
		total, n int
	}{
		{100, 3},
		{99, 4},
		{7, 7},
		{10, 1},
	}
	for _, tc := range cases {
		widths := LayoutRow(tc.total, tc.n)
		if len(widths) != tc.n {
			t.Fatalf("LayoutRow(%d, %d) returned %d widths", tc.total, tc.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tc.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d", tc.total, tc.n, sum)
		}
	}
}

func TestLayoutRow_ZeroItems(t *testing.T) {
	if got := LayoutRow(100, 0); got != nil {
		t.Errorf("LayoutRow(100, 0) = %v, want nil", got)
	}
}

func TestUsageBar_LabelNotClamped(t *testing.T) {
	got := UsageBar(120, 20)
	if !strings.Contains(got, "120.0%") {
		t.Errorf("over-budget bar must show the unclamped percentage, got %q", got)
	}
	// Fill is clamped: there must be no empty cells at 120%.
	if strings.Contains(got, "░") {
		t.Error("bar fill should be full at 120%")
	}
}

func TestUsageBar_PartialFill(t *testing.T) {
	got := UsageBar(50, 20)
	if strings.Count(got, "█") != 10 {
		t.Errorf("50%% of 20 cells should fill 10, got %q", got)
	}
	if !strings.Contains(got, "50.0%") {
		t.Errorf("label missing, got %q", got)
	}
}

func TestTabIdxByKey(t *testing.T) {
	if idx := TabIdxByKey('b'); idx != 1 {
		t.Errorf("TabIdxByKey('b') = %d, want 1", idx)
	}
	if idx := TabIdxByKey('z'); idx != -1 {
		t.Errorf("TabIdxByKey('z') = %d, want -1", idx)
	}
}

func TestTabs_UniqueKeys(t *testing.T) {
	seen := map[rune]string{}
	for _, tab := range Tabs {
		if other, dup := seen[tab.Key]; dup {
			t.Errorf("tab key %q used by both %s and %s", tab.Key, other, tab.Name)
		}
		seen[tab.Key] = tab.Name
	}
}
