package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

var (
	styleDefault  = tcell.StyleDefault
	styleBold     = tcell.StyleDefault.Bold(true)
	styleScore    = tcell.StyleDefault.Dim(true)
	styleSelected = tcell.StyleDefault.Bold(true)
)

const queryPrompt = "Query: "

// draw renders the query line, a separator, and the match list.
func (a *App) draw() {
	a.screen.Clear()
	width, height := a.screen.Size()

	drawText(a.screen, 0, 0, queryPrompt, styleDefault)
	drawText(a.screen, len(queryPrompt), 0, string(a.query), styleBold)
	a.screen.ShowCursor(len(queryPrompt)+len(a.query), 0)

	for x := 0; x < width; x++ {
		a.screen.SetContent(x, 1, tcell.RuneHLine, nil, styleDefault)
	}

	for i, m := range a.matches {
		y := i + 2
		if y >= height {
			break
		}
		if i == a.selected {
			drawText(a.screen, 0, y, "> ", styleSelected)
			drawText(a.screen, 2, y, m.Word, styleSelected)
		} else {
			drawText(a.screen, 2, y, m.Word, styleDefault)
		}

		score := fmt.Sprintf("%.3f", m.Score)
		if x := width - len(score) - 1; x > 2+len(m.Word) {
			drawText(a.screen, x, y, score, styleScore)
		}
	}

	a.screen.Show()
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}
