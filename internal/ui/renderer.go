package ui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/pongsim/internal/protocol"
)

const (
	BallChar   = '\u2B24' // ⬤
	PaddleChar = '\u2588' // █
)

// Viewport maps field coordinates (origin at the centre, y up) onto the
// terminal rows between the scoreboard and the status bar (origin top-left,
// y down).
type Viewport struct {
	ScreenW, ScreenH        int
	FieldWidth, FieldHeight float64
}

// courtRows is the number of terminal rows available to the field
func (v Viewport) courtRows() int {
	return v.ScreenH - 2
}

// ToScreen converts a field point to a terminal cell
func (v Viewport) ToScreen(x, y float64) (int, int) {
	nx := (x + v.FieldWidth/2) / v.FieldWidth
	ny := (v.FieldHeight/2 - y) / v.FieldHeight

	col := int(math.Floor(nx * float64(v.ScreenW)))
	row := int(math.Floor(ny*float64(v.courtRows()))) + 1 // +1 for the scoreboard row

	if col > v.ScreenW-1 {
		col = v.ScreenW - 1
	}
	if row > v.courtRows() {
		row = v.courtRows()
	}
	return col, row
}

// Rows returns how many terminal rows a field height spans, at least one
func (v Viewport) Rows(h float64) int {
	rows := int(math.Round(h / v.FieldHeight * float64(v.courtRows())))
	if rows < 1 {
		rows = 1
	}
	return rows
}

// Renderer handles rendering the game screen
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// RenderGame displays one simulation frame
func (r *Renderer) RenderGame(state protocol.Frame) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()
	vp := Viewport{
		ScreenW:     screenW,
		ScreenH:     screenH,
		FieldWidth:  state.FieldWidth,
		FieldHeight: state.FieldHeight,
	}

	// Draw court background (black)
	courtStyle := tcell.StyleDefault.Background(tcell.ColorBlack)
	r.screen.FillRect(0, 1, screenW, screenH-2, courtStyle, ' ')

	// Draw center dashed line
	centerX, _ := vp.ToScreen(0, 0)
	lineStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	for y := 1; y < screenH-1; y += 2 {
		r.screen.SetCell(centerX, y, lineStyle, '|')
	}

	r.renderScoreboard(state, screenW)

	for _, paddle := range state.Paddles {
		paddleStyle := GetSideStyle(int(paddle.Side))
		col, row := vp.ToScreen(paddle.X, paddle.Y)
		height := vp.Rows(paddle.Height)

		top := row - height/2
		for dy := 0; dy < height; dy++ {
			py := top + dy
			if py >= 1 && py < screenH-1 {
				r.screen.SetCell(col, py, paddleStyle, PaddleChar)
			}
		}
	}

	ballX, ballY := vp.ToScreen(state.Ball.X, state.Ball.Y)
	if ballX >= 0 && ballX < screenW && ballY >= 1 && ballY < screenH-1 {
		ballStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
		r.screen.SetCell(ballX, ballY, ballStyle, BallChar)
	}

	// Status bar at bottom
	statusY := screenH - 1
	statusStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
	for x := 0; x < screenW; x++ {
		r.screen.SetCell(x, statusY, statusStyle, ' ')
	}
	statusText := fmt.Sprintf(" Tick: %d | Left: W/S  Right: ↑/↓ | r: reset  q: quit", state.Tick)
	r.screen.DrawText(0, statusY, statusText, statusStyle)

	r.screen.Show()
}

// renderScoreboard draws a stadium-style scoreboard at top center
func (r *Renderer) renderScoreboard(state protocol.Frame, screenW int) {
	// Scoreboard format: [ LEFT  3 - 2  RIGHT ]
	leftLabel := "LEFT"
	rightLabel := "RIGHT"
	scores := fmt.Sprintf(" %d - %d ", state.LeftScore, state.RightScore)

	scoreboardText := "[ " + leftLabel + scores + rightLabel + " ]"
	x := (screenW - len(scoreboardText)) / 2

	scoreboardStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite).Bold(true)
	leftStyle := scoreboardStyle.Foreground(SideColors[protocol.SideLeft])
	rightStyle := scoreboardStyle.Foreground(SideColors[protocol.SideRight])

	r.screen.DrawText(x, 0, "[ ", scoreboardStyle)
	x += 2
	r.screen.DrawText(x, 0, leftLabel, leftStyle)
	x += len(leftLabel)
	r.screen.DrawText(x, 0, scores, scoreboardStyle)
	x += len(scores)
	r.screen.DrawText(x, 0, rightLabel, rightStyle)
	x += len(rightLabel)
	r.screen.DrawText(x, 0, " ]", scoreboardStyle)
}

// RenderError displays an error screen
func (r *Renderer) RenderError(err string) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()

	title := "ERROR"
	titleX := (screenW - len(title)) / 2
	titleStyle := tcell.StyleDefault.Bold(true).Foreground(tcell.ColorRed)
	r.screen.DrawText(titleX, screenH/2-2, title, titleStyle)

	// Truncate if too long
	maxErrLen := screenW - 4
	errMsg := err
	if len(errMsg) > maxErrLen && maxErrLen > 3 {
		errMsg = errMsg[:maxErrLen-3] + "..."
	}
	errX := (screenW - len(errMsg)) / 2
	r.screen.DrawText(errX, screenH/2, errMsg, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	hintText := "Press any key to continue"
	hintX := (screenW - len(hintText)) / 2
	r.screen.DrawText(hintX, screenH/2+3, hintText, tcell.StyleDefault.Foreground(tcell.ColorGray))

	r.screen.Show()
}
