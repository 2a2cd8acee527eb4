package i18n

import (
	"testing"

	"github.com/ducnm/elementary/internal/periodic"
)

func TestParseLang(t *testing.T) {
	tests := []struct {
		code string
		want Lang
	}{
		{"en", LangEN},
		{"vi", LangVI},
		{"", LangEN},
		{"fr", LangEN},
	}
	for _, tt := range tests {
		if got := ParseLang(tt.code); got != tt.want {
			t.Errorf("ParseLang(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestTranslator_Lookup(t *testing.T) {
	en := New(LangEN)
	vi := New(LangVI)

	if got := en.T("home.quiz"); got != "QUIZ" {
		t.Errorf("en home.quiz = %q", got)
	}
	if got := vi.T("home.quiz"); got == "QUIZ" || got == "" {
		t.Errorf("vi home.quiz not translated: %q", got)
	}
}

func TestTranslator_Fallbacks(t *testing.T) {
	vi := New(LangVI)

	// Unknown keys come back verbatim rather than blanking the UI.
	if got := vi.T("no.such.key"); got != "no.such.key" {
		t.Errorf("missing key = %q", got)
	}
}

func TestTranslator_Tf(t *testing.T) {
	en := New(LangEN)
	got := en.Tf("quiz.q.symbol", "Iron")
	want := "What is the chemical symbol for Iron?"
	if got != want {
		t.Errorf("Tf = %q, want %q", got, want)
	}
}

func TestTranslator_CategoryAndStateNames(t *testing.T) {
	en := New(LangEN)
	vi := New(LangVI)

	if got := en.CategoryName(periodic.CategoryNobleGas); got != "Noble Gas" {
		t.Errorf("en noble gas = %q", got)
	}
	if got := vi.CategoryName(periodic.CategoryNobleGas); got != "Khí Hiếm" {
		t.Errorf("vi noble gas = %q", got)
	}
	if got := en.StateName(periodic.StateLiquid); got != "Liquid" {
		t.Errorf("en liquid = %q", got)
	}
}

func TestCatalogs_SameKeys(t *testing.T) {
	for key := range catalogEN {
		if _, ok := catalogVI[key]; !ok {
			t.Errorf("key %q missing from Vietnamese catalog", key)
		}
	}
	for key := range catalogVI {
		if _, ok := catalogEN[key]; !ok {
			t.Errorf("key %q missing from English catalog", key)
		}
	}
}
