// Package tui runs the interactive finder: a query line, a ranked match
// list, and key handling for editing, selection and exit. Ranking runs off
// the event loop; every keystroke bumps a generation counter and results
// from superseded scans are discarded instead of displayed.
package tui

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/bastiangx/fuzzdict/pkg/config"
	"github.com/bastiangx/fuzzdict/pkg/dictionary"
	"github.com/bastiangx/fuzzdict/pkg/rank"
)

// App owns the event loop state. All fields are touched only from Run's
// goroutine; scan goroutines communicate exclusively through posted events.
type App struct {
	screen  tcell.Screen
	store   *dictionary.Store
	workers int
	rows    int

	query    []rune
	selected int
	matches  []rank.Match

	generation int64
	cancelScan context.CancelFunc
}

// matchesEvent carries a finished scan back into the event loop.
type matchesEvent struct {
	tcell.EventTime
	generation int64
	matches    []rank.Match
}

// New creates an App on an initialized screen.
func New(screen tcell.Screen, store *dictionary.Store, cfg *config.Config) *App {
	return &App{
		screen:  screen,
		store:   store,
		workers: cfg.Rank.Workers,
		rows:    cfg.TUI.Rows,
	}
}

// Run drives the event loop until the user accepts a word or quits.
// It returns the selected word, or "" when the session was dismissed.
func (a *App) Run() (string, error) {
	defer a.stopScan()

	a.draw()
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return "", nil
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			word, done := a.handleKey(ev)
			if done {
				return word, nil
			}
		case *matchesEvent:
			a.applyResult(ev)
		case *tcell.EventResize:
			a.screen.Sync()
			a.requestScan()
		}
		a.draw()
	}
}

// handleKey mutates the query or selection for one key event. The second
// return value is true when the session is over.
func (a *App) handleKey(ev *tcell.EventKey) (string, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC, tcell.KeyCtrlD, tcell.KeyCtrlZ:
		return "", true
	case tcell.KeyEnter:
		if len(a.matches) > 0 {
			return a.matches[a.selected].Word, true
		}
	case tcell.KeyUp, tcell.KeyCtrlP:
		if a.selected > 0 {
			a.selected--
		}
	case tcell.KeyDown, tcell.KeyCtrlN:
		if a.selected < len(a.matches)-1 {
			a.selected++
		}
	case tcell.KeyTab:
		if completions := a.store.CompletePrefix(string(a.query), 1); len(completions) > 0 {
			a.query = []rune(completions[0])
			a.requestScan()
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(a.query) > 0 {
			a.query = a.query[:len(a.query)-1]
			a.requestScan()
		}
	case tcell.KeyRune:
		a.query = append(a.query, ev.Rune())
		a.requestScan()
	}
	return "", false
}

// requestScan cancels any in-flight scan and starts a new one for the
// current query. The result is posted back as a matchesEvent tagged with
// this scan's generation.
func (a *App) requestScan() {
	a.stopScan()
	a.generation++
	gen := a.generation

	ctx, cancel := context.WithCancel(context.Background())
	a.cancelScan = cancel

	query := string(a.query)
	limit := a.listRows()
	go func() {
		matches, err := rank.RankParallel(ctx, a.store, query, limit, a.workers)
		if err != nil {
			// Cancelled scans are superseded; nothing to show.
			return
		}
		result := &matchesEvent{generation: gen, matches: matches}
		result.SetEventNow()
		_ = a.screen.PostEvent(result)
	}()
}

// applyResult installs a scan result unless a newer query superseded it.
func (a *App) applyResult(ev *matchesEvent) {
	if ev.generation != a.generation {
		return
	}
	a.matches = ev.matches
	if a.selected >= len(a.matches) {
		a.selected = len(a.matches) - 1
	}
	if a.selected < 0 {
		a.selected = 0
	}
}

func (a *App) stopScan() {
	if a.cancelScan != nil {
		a.cancelScan()
		a.cancelScan = nil
	}
}

// listRows is the match list capacity, which doubles as the rank limit.
func (a *App) listRows() int {
	if a.rows > 0 {
		return a.rows
	}
	_, height := a.screen.Size()
	rows := height - 2
	if rows < 1 {
		rows = 1
	}
	return rows
}
