package historyview

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ducnm/elementary/internal/history"
	"github.com/ducnm/elementary/internal/i18n"
	"github.com/ducnm/elementary/internal/router"
	"github.com/ducnm/elementary/internal/screen"
	"github.com/ducnm/elementary/internal/ui/layout"
	"github.com/ducnm/elementary/internal/ui/theme"
)

const loadTimeout = 5 * time.Second

// visibleRows caps the list; the most recent attempts win.
const visibleRows = 15

type loadedMsg struct {
	records []history.ScoreRecord
	err     error
}

// HistoryScreen lists past quiz attempts, newest first, with a best/last
// summary on top.
type HistoryScreen struct {
	tr      *i18n.Translator
	hist    history.Store
	records []history.ScoreRecord
	loaded  bool
	loadErr error
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates the history screen; records load asynchronously on Init.
func New(tr *i18n.Translator, hist history.Store) *HistoryScreen {
	return &HistoryScreen{tr: tr, hist: hist}
}

func (h *HistoryScreen) Init() tea.Cmd {
	hist := h.hist
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		records, err := hist.All(ctx)
		return loadedMsg{records: records, err: err}
	}
}

func (h *HistoryScreen) Title() string {
	return h.tr.T("screen.history")
}

func (h *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "esc", Description: h.tr.T("hint.back")},
	}
}

func (h *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		h.loaded = true
		h.records = msg.records
		h.loadErr = msg.err
		return h, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc", "enter":
			return h, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return h, nil
}

func (h *HistoryScreen) View(width, height int) string {
	tr := h.tr

	if !h.loaded {
		return ""
	}
	if h.loadErr != nil {
		return "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Incorrect.Render(h.loadErr.Error()))
	}
	if len(h.records) == 0 {
		return "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render(tr.T("history.empty")))
	}

	best := history.BestOf(h.records)
	last := h.records[len(h.records)-1]

	summary := fmt.Sprintf("%s: %d/%d   %s: %d/%d   %s: %d",
		tr.T("history.best"), best.Score, best.TotalQuestions,
		tr.T("history.last"), last.Score, last.TotalQuestions,
		tr.T("history.total"), len(h.records))

	var body strings.Builder
	body.WriteString(theme.Body.Bold(true).Render(summary))
	body.WriteString("\n\n")

	shown := h.records
	if len(shown) > visibleRows {
		shown = shown[len(shown)-visibleRows:]
	}

	// Newest first.
	for i := len(shown) - 1; i >= 0; i-- {
		r := shown[i]
		line := fmt.Sprintf("%s   %2d/%-2d   %3d%%   %s",
			r.Date.Format("2006-01-02 15:04"),
			r.Score, r.TotalQuestions,
			int(r.Accuracy*100),
			formatSeconds(r.TimeSpent))

		style := theme.Unselected
		if best != nil && r == *best {
			style = theme.Correct
		}
		body.WriteString(style.Render(line))
		body.WriteString("\n")
	}

	card := theme.Card.Render(body.String())
	return "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}

func formatSeconds(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
