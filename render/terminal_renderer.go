package render

import (
	"math"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dippid-pong/game"
	"github.com/lixenwraith/dippid-pong/parameter"
)

const (
	scoreOffset = 15
	blockRune   = '█'
	muteText    = "[muted]"
)

// TerminalRenderer draws match snapshots onto a tcell screen
// It only reads snapshots, nothing flows back into the simulation
type TerminalRenderer struct {
	screen tcell.Screen
	width  int
	height int
}

// NewTerminalRenderer creates a renderer sized to the current screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	r := &TerminalRenderer{screen: screen}
	r.Resize()
	return r
}

// Resize picks up the current terminal size
func (r *TerminalRenderer) Resize() {
	r.width, r.height = r.screen.Size()
}

// fieldRows is the number of rows below the HUD
func (r *TerminalRenderer) fieldRows() int {
	rows := r.height - parameter.HUDRows
	if rows < 1 {
		return 1
	}
	return rows
}

// CellOf maps a field point to a screen cell, y up becomes rows down
func (r *TerminalRenderer) CellOf(snap *game.Snapshot, x, y float64) (col, row int) {
	rows := r.fieldRows()
	col = int(math.Floor(x / snap.Width * float64(r.width)))
	fromBottom := int(math.Floor(y / snap.Height * float64(rows)))
	row = parameter.HUDRows + rows - 1 - fromBottom
	return col, row
}

// RenderFrame draws one snapshot, nil draws an empty frame
func (r *TerminalRenderer) RenderFrame(snap *game.Snapshot, muted bool) {
	r.screen.Clear()
	base := tcell.StyleDefault.Background(RgbBackground)
	r.fill(base)

	if snap != nil && snap.Width > 0 && snap.Height > 0 {
		for _, e := range snap.Entities {
			if e.Visible {
				r.drawEntity(snap, e, base)
			}
		}
		r.drawHUD(snap, base)
	}

	if muted {
		r.drawText(r.width-len(muteText), 0, muteText, base.Foreground(RgbMuted))
	}
	r.screen.Show()
}

func (r *TerminalRenderer) fill(style tcell.Style) {
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// drawEntity fills the cells covered by an entity, clipped to the field area
// Every entity inside the field covers at least one cell
func (r *TerminalRenderer) drawEntity(snap *game.Snapshot, e game.EntityView, base tcell.Style) {
	rows := r.fieldRows()
	sx := float64(r.width) / snap.Width
	sy := float64(rows) / snap.Height

	c0 := int(math.Floor(e.X * sx))
	c1 := int(math.Ceil((e.X + e.W) * sx))
	if c1 <= c0 {
		c1 = c0 + 1
	}
	b0 := int(math.Floor(e.Y * sy))
	b1 := int(math.Ceil((e.Y+e.H)*sy)) - 1
	if b1 < b0 {
		b1 = b0
	}

	style := base.Foreground(toColor(e.Color))
	for fb := b0; fb <= b1; fb++ {
		if fb < 0 || fb >= rows {
			continue
		}
		row := parameter.HUDRows + rows - 1 - fb
		if e.Dashed && dashGap(snap, row, rows) {
			continue
		}
		for col := c0; col < c1; col++ {
			if col < 0 || col >= r.width {
				continue
			}
			r.screen.SetContent(col, row, blockRune, nil, style)
		}
	}
}

// dashGap reports whether a row falls into a gap of the dashed center line
func dashGap(snap *game.Snapshot, row, rows int) bool {
	fromBottom := parameter.HUDRows + rows - 1 - row
	y := (float64(fromBottom) + 0.5) / float64(rows) * snap.Height
	return int(y/parameter.SeparatorDash)%2 == 1
}

func (r *TerminalRenderer) drawHUD(snap *game.Snapshot, base tcell.Style) {
	center := r.width / 2
	anyConnected := snap.Left.Connected || snap.Right.Connected

	r.drawCentered(center, 0, snap.Status, base.Foreground(statusColor(snap.State, anyConnected)))

	scoreStyle := base.Foreground(RgbScore).Bold(true)
	r.drawCentered(center-scoreOffset, 1, strconv.Itoa(snap.Left.Score), scoreStyle)
	r.drawCentered(center+scoreOffset, 1, strconv.Itoa(snap.Right.Score), scoreStyle)

	labelStyle := base.Foreground(RgbPortLabel)
	r.drawCentered(center-scoreOffset, 2, snap.Left.Label, labelStyle)
	r.drawCentered(center+scoreOffset, 2, snap.Right.Label, labelStyle)
}

func (r *TerminalRenderer) drawCentered(cx, y int, text string, style tcell.Style) {
	r.drawText(cx-len([]rune(text))/2, y, text, style)
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	if y < 0 || y >= r.height {
		return
	}
	for i, ch := range []rune(text) {
		if col := x + i; col >= 0 && col < r.width {
			r.screen.SetContent(col, y, ch, nil, style)
		}
	}
}
