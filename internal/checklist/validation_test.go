package checklist

import (
	"testing"

	"github.com/chatcont39-glitch/educheck/internal/models"
)

func TestClampQuantityNeverNegative(t *testing.T) {
	qty := 1
	deltas := []int{-1, -1, -5, 2, -10, 1}
	for _, d := range deltas {
		qty = ClampQuantity(qty + d)
		if qty < 0 {
			t.Fatalf("quantity went negative after delta %d: %d", d, qty)
		}
	}
	if qty != 1 {
		t.Errorf("expected final quantity 1, got %d", qty)
	}
}

func TestParseQuantity(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"5", 5},
		{" 7 ", 7},
		{"0", 0},
		{"", 0},
		{"abc", 0},
		{"12x", 0},
		{"-3", 0}, // clamped, not negative
	}
	for _, tc := range cases {
		if got := ParseQuantity(tc.raw); got != tc.want {
			t.Errorf("ParseQuantity(%q) = %d, want %d", tc.raw, got, tc.want)
		}
	}
}

func TestHasDiscrepancyBaseline(t *testing.T) {
	items := Baseline()
	if HasDiscrepancy(items) {
		t.Error("unmodified baseline should have no discrepancy")
	}

	items[4].CurrentQuantity = 0 // Cabo HDMI
	if !HasDiscrepancy(items) {
		t.Error("expected discrepancy after zeroing an item")
	}
}

func TestHasDiscrepancyOverCount(t *testing.T) {
	items := Baseline()
	items[1].CurrentQuantity = 2
	if !HasDiscrepancy(items) {
		t.Error("counting more than expected is also a discrepancy")
	}
}

func TestIsSubmittable(t *testing.T) {
	sig := "data:image/png;base64,aGk="
	cases := []struct {
		name           string
		teacherName    string
		signature      string
		hasDiscrepancy bool
		justification  string
		want           bool
	}{
		{"all valid no discrepancy", "Carlos", sig, false, "", true},
		{"empty name", "", sig, false, "", false},
		{"empty name with everything else", "", sig, true, "a very long justification", false},
		{"missing signature", "Carlos", "", false, "", false},
		{"discrepancy without justification", "Ana", sig, true, "", false},
		{"justification exactly 10 chars", "Ana", sig, true, "0123456789", false},
		{"justification 11 chars", "Ana", sig, true, "cable broke", true},
		{"accented justification too short", "Ana", sig, true, "çéçéçéç", false},
		{"accented justification exactly 10 chars", "Ana", sig, true, "força caiu", false}, // 11 bytes, 10 characters
		{"accented justification 11 chars", "Ana", sig, true, "força caiu!", true},
		{"long justification no discrepancy", "Ana", sig, false, "irrelevant here", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := IsSubmittable(tc.teacherName, tc.signature, tc.hasDiscrepancy, tc.justification)
			if got != tc.want {
				t.Errorf("IsSubmittable(%q, sig=%v, disc=%v, %q) = %v, want %v",
					tc.teacherName, tc.signature != "", tc.hasDiscrepancy, tc.justification, got, tc.want)
			}
		})
	}
}

func TestBaselineIsCloned(t *testing.T) {
	a := Baseline()
	a[0].CurrentQuantity = 0
	b := Baseline()
	if b[0].CurrentQuantity != b[0].ExpectedQuantity {
		t.Error("mutating one baseline copy leaked into another")
	}
	if HasDiscrepancy(b) {
		t.Error("fresh baseline copy should be discrepancy-free")
	}
}

func TestBaselineContents(t *testing.T) {
	items := Baseline()
	if len(items) != 7 {
		t.Fatalf("expected 7 baseline items, got %d", len(items))
	}
	byName := map[string]models.InventoryItem{}
	for _, item := range items {
		byName[item.Name] = item
	}
	cabo, ok := byName["Cabo HDMI"]
	if !ok {
		t.Fatal("baseline missing Cabo HDMI")
	}
	if cabo.ExpectedQuantity != 1 || cabo.Category != models.CategoryCables {
		t.Errorf("unexpected Cabo HDMI baseline: %+v", cabo)
	}
	if byName["Case Completo (35 unid)"].ExpectedQuantity != 35 {
		t.Error("expected 35 units for the computer cases")
	}
}
