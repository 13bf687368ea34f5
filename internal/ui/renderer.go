package ui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/diegok/pong/internal/protocol"
)

const (
	BallChar   = '\u2B24' // ⬤
	PaddleChar = '\u2588' // █

	MinTermWidth  = 40
	MinTermHeight = 12
)

var errNoScreen = errors.New("renderer has no screen")

// Renderer draws frames on the terminal
type Renderer struct {
	screen       *Screen
	lastW, lastH int
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws one frame. Court coordinates are scaled to the terminal,
// with the top row for scores and the bottom row for the status bar.
func (r *Renderer) Render(f protocol.Frame) error {
	if r.screen == nil {
		return errNoScreen
	}
	if f.CourtWidth <= 0 || f.CourtHeight <= 0 {
		return fmt.Errorf("invalid court %dx%d", f.CourtWidth, f.CourtHeight)
	}

	screenW, screenH := r.screen.Size()
	if screenW != r.lastW || screenH != r.lastH {
		r.lastW, r.lastH = screenW, screenH
		r.screen.Sync()
	}
	r.screen.Clear()

	if screenW < MinTermWidth || screenH < MinTermHeight {
		msg := fmt.Sprintf("Terminal too small (%dx%d)", screenW, screenH)
		r.screen.DrawText(max(centerX(msg, screenW), 0), screenH/2, msg, tcell.StyleDefault.Foreground(tcell.ColorRed))
		r.screen.Show()
		return nil
	}

	c := court{x: 0, y: 1, w: screenW, h: screenH - 2, courtW: f.CourtWidth, courtH: f.CourtHeight}

	// Draw court background (black)
	r.screen.FillRect(0, 1, screenW, screenH-2, tcell.StyleDefault.Background(tcell.ColorBlack), ' ')

	if f.Phase == protocol.PhaseReplaySelect {
		r.renderMenu(f.Menu, screenW, screenH)
		r.renderStatus(f, screenW, screenH)
		r.screen.Show()
		return nil
	}

	// Draw center dashed line
	centerCol := screenW / 2
	lineStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	for y := 1; y < screenH-1; y += 2 {
		r.screen.SetCell(centerCol, y, lineStyle, '|')
	}

	r.renderScores(f, screenW)

	paddleStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	r.renderRect(c, f.Player, paddleStyle, PaddleChar)
	r.renderRect(c, f.AI, paddleStyle, PaddleChar)

	// Ball is a single cell at its centre
	bx, by := c.cell(f.Ball.X+f.Ball.W/2, f.Ball.Y+f.Ball.H/2)
	if bx >= 0 && bx < screenW && by >= 1 && by < screenH-1 {
		r.screen.SetCell(bx, by, tcell.StyleDefault.Foreground(tcell.ColorWhite), BallChar)
	}

	if f.Winner != "" {
		winnerStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
		r.screen.DrawText(centerX(f.Winner, screenW), screenH/2, f.Winner, winnerStyle)
	}

	r.renderStatus(f, screenW, screenH)
	r.screen.Show()
	return nil
}

func (r *Renderer) renderRect(c court, rect protocol.Rect, style tcell.Style, ch rune) {
	x0, y0 := c.cell(rect.Left(), rect.Top())
	x1, y1 := c.cell(rect.Right(), rect.Bottom())
	// Anything visible gets at least one cell
	x1 = max(x1, x0+1)
	y1 = max(y1, y0+1)
	for y := max(y0, c.y); y < min(y1, c.y+c.h); y++ {
		for x := max(x0, c.x); x < min(x1, c.x+c.w); x++ {
			r.screen.SetCell(x, y, style, ch)
		}
	}
}

func (r *Renderer) renderScores(f protocol.Frame, screenW int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	player := fmt.Sprintf("%d", f.PlayerScore)
	ai := fmt.Sprintf("%d", f.AIScore)
	r.screen.DrawText(screenW/4, 0, player, style)
	r.screen.DrawText(screenW*3/4, 0, ai, style)
}

func (r *Renderer) renderMenu(lines []string, screenW, screenH int) {
	boxW := 0
	for _, line := range lines {
		boxW = max(boxW, uniseg.StringWidth(line))
	}
	boxW = min(boxW+6, screenW)
	boxH := len(lines) + 4
	boxX := (screenW - boxW) / 2
	boxY := (screenH - boxH) / 2
	r.screen.DrawBox(boxX, boxY, boxW, boxH, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	for i, line := range lines {
		style := tcell.StyleDefault.Foreground(tcell.ColorGreen)
		if i == 0 {
			style = tcell.StyleDefault.Foreground(tcell.ColorTeal).Bold(true)
		}
		r.screen.DrawText(centerX(line, screenW), boxY+2+i, line, style)
	}
}

func (r *Renderer) renderStatus(f protocol.Frame, screenW, screenH int) {
	statusY := screenH - 1
	statusStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
	for x := 0; x < screenW; x++ {
		r.screen.SetCell(x, statusY, statusStyle, ' ')
	}
	statusText := fmt.Sprintf(" W/S or arrows to move | q to quit | First to %d wins", f.WinningScore)
	r.screen.DrawText(0, statusY, statusText, statusStyle)
}

// court maps court units onto a block of terminal cells
type court struct {
	x, y, w, h     int
	courtW, courtH int
}

func (c court) cell(x, y int) (int, int) {
	return c.x + scale(x, c.courtW, c.w), c.y + scale(y, c.courtH, c.h)
}

// scale maps v in [0, from] onto [0, to], rounding toward negative infinity
func scale(v, from, to int) int {
	n := v * to
	q := n / from
	if n%from != 0 && n < 0 {
		q--
	}
	return q
}

// centerX returns the column that centres text in a row of the given width
func centerX(text string, width int) int {
	return (width - uniseg.StringWidth(text)) / 2
}
