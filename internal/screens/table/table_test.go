package table

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ducnm/elementary/internal/i18n"
	"github.com/ducnm/elementary/internal/router"
	"github.com/ducnm/elementary/internal/screens/detail"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestTableScreen_StartsOnHydrogen(t *testing.T) {
	s := New(i18n.New(i18n.LangEN))
	e := s.selected()
	if e == nil || e.Symbol != "H" {
		t.Fatalf("initial selection = %v", e)
	}
}

func TestTableScreen_CursorSkipsEmptyCells(t *testing.T) {
	s := New(i18n.New(i18n.LangEN))

	// Period 1 has a 16-column gap: moving right from hydrogen must land
	// on helium, not an empty cell.
	s.Update(specialKey(tea.KeyRight))
	if e := s.selected(); e == nil || e.Symbol != "He" {
		t.Errorf("right from hydrogen = %v", e)
	}

	// Moving off the edge leaves the cursor in place.
	s.Update(specialKey(tea.KeyRight))
	if e := s.selected(); e == nil || e.Symbol != "He" {
		t.Errorf("right from helium = %v", e)
	}
	s.Update(specialKey(tea.KeyUp))
	if e := s.selected(); e == nil || e.Symbol != "He" {
		t.Errorf("up from helium = %v", e)
	}
}

func TestTableScreen_EnterOpensDetail(t *testing.T) {
	s := New(i18n.New(i18n.LangEN))

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("enter produced no navigation")
	}
	raw := cmd()
	push, ok := raw.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("navigation is %T", raw)
	}
	if _, ok := push.Screen.(*detail.DetailScreen); !ok {
		t.Errorf("pushed screen is %T", push.Screen)
	}
}

func TestTableScreen_EscPops(t *testing.T) {
	s := New(i18n.New(i18n.LangEN))

	_, cmd := s.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("esc produced no navigation")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("esc did not pop")
	}
}
