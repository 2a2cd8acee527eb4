package periodic

import (
	"strings"
	"testing"
)

func TestElements_Integrity(t *testing.T) {
	if len(Elements) != 118 {
		t.Fatalf("expected 118 elements, got %d", len(Elements))
	}

	symbols := make(map[string]bool)
	for i, e := range Elements {
		if e.AtomicNumber != i+1 {
			t.Errorf("element %d: atomic number %d out of order", i, e.AtomicNumber)
		}
		if e.Symbol == "" || e.Name == "" {
			t.Errorf("element %d: missing symbol or name", e.AtomicNumber)
		}
		if symbols[e.Symbol] {
			t.Errorf("duplicate symbol %q", e.Symbol)
		}
		symbols[e.Symbol] = true
		if e.AtomicMass <= 0 {
			t.Errorf("%s: non-positive mass %f", e.Symbol, e.AtomicMass)
		}
		fBlock := e.Category == CategoryLanthanide || e.Category == CategoryActinide
		if fBlock {
			if e.Group != 0 {
				t.Errorf("%s: f-block element has group %d", e.Symbol, e.Group)
			}
		} else if e.Group < 1 || e.Group > 18 {
			t.Errorf("%s: group %d out of range", e.Symbol, e.Group)
		}
		if e.Period < 1 || e.Period > 7 {
			t.Errorf("%s: period %d out of range", e.Symbol, e.Period)
		}
	}
}

func TestElements_LiquidsAndStates(t *testing.T) {
	var liquids []string
	for _, e := range Elements {
		switch e.State {
		case StateSolid, StateLiquid, StateGas, StateUnknown:
		default:
			t.Errorf("%s: unexpected state %q", e.Symbol, e.State)
		}
		if e.State == StateLiquid {
			liquids = append(liquids, e.Symbol)
		}
	}
	// Bromine and mercury are the only room-temperature liquids.
	if len(liquids) != 2 {
		t.Fatalf("expected 2 liquids, got %v", liquids)
	}
}

func TestByNumber(t *testing.T) {
	if e := ByNumber(1); e == nil || e.Symbol != "H" {
		t.Errorf("ByNumber(1) = %v, want hydrogen", e)
	}
	if e := ByNumber(118); e == nil || e.Symbol != "Og" {
		t.Errorf("ByNumber(118) = %v, want oganesson", e)
	}
	if e := ByNumber(0); e != nil {
		t.Errorf("ByNumber(0) = %v, want nil", e)
	}
	if e := ByNumber(119); e != nil {
		t.Errorf("ByNumber(119) = %v, want nil", e)
	}
}

func TestPositionOf_Layout(t *testing.T) {
	// Hydrogen top-left, helium top-right.
	if p := PositionOf(*ByNumber(1)); p.Row != 1 || p.Col != 1 {
		t.Errorf("hydrogen at %+v", p)
	}
	if p := PositionOf(*ByNumber(2)); p.Row != 1 || p.Col != 18 {
		t.Errorf("helium at %+v", p)
	}
	// Lanthanum opens the detached lanthanide row.
	if p := PositionOf(*ByNumber(57)); p.Row != 9 || p.Col != 3 {
		t.Errorf("lanthanum at %+v", p)
	}
	// Uranium sits in the actinide row.
	if p := PositionOf(*ByNumber(92)); p.Row != 10 || p.Col != 6 {
		t.Errorf("uranium at %+v", p)
	}
}

func TestGrid_AllElementsPlacedUniquely(t *testing.T) {
	grid := Grid()
	seen := make(map[int]bool)
	for row := 1; row <= GridRows; row++ {
		for col := 1; col <= GridCols; col++ {
			n := grid[row][col]
			if n == 0 {
				continue
			}
			if seen[n] {
				t.Errorf("element %d placed twice", n)
			}
			seen[n] = true
		}
	}
	if len(seen) != len(Elements) {
		t.Errorf("placed %d of %d elements", len(seen), len(Elements))
	}
}

func TestSearch(t *testing.T) {
	tests := []struct {
		query string
		want  string // symbol of first result, "" for none
	}{
		{"26", "Fe"},
		{"fe", "Fe"},
		{"Iron", "Fe"},
		{"iron", "Fe"},
		{"999", ""},
		{"", ""},
		{"xyzzy", ""},
	}
	for _, tt := range tests {
		got := Search(tt.query)
		if tt.want == "" {
			if len(got) != 0 {
				t.Errorf("Search(%q) = %d results, want none", tt.query, len(got))
			}
			continue
		}
		if len(got) == 0 || got[0].Symbol != tt.want {
			t.Errorf("Search(%q) first = %v, want %s", tt.query, got, tt.want)
		}
	}
}

func TestSearch_CategorySubstring(t *testing.T) {
	got := Search("noble")
	if len(got) == 0 {
		t.Fatal("expected noble gas matches")
	}
	for _, e := range got {
		if !strings.Contains(string(e.Category), "noble") && !strings.Contains(strings.ToLower(e.Name), "noble") {
			t.Errorf("unexpected match %s", e.Symbol)
		}
	}
}

func TestCategoriesInPool(t *testing.T) {
	cats := CategoriesInPool(Elements)
	if len(cats) < 9 {
		t.Errorf("full table yields %d categories, want at least 9", len(cats))
	}

	pool := []Element{*ByNumber(1), *ByNumber(2), *ByNumber(3)}
	got := CategoriesInPool(pool)
	if len(got) != 3 {
		t.Errorf("got %v, want 3 distinct categories", got)
	}
}
