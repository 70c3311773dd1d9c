package laneshift

import (
	"fmt"
	"math"

	"github.com/vovakirdan/lane-shift/internal/core"
)

// Visual characters for rendering
const (
	ObstacleChar  = '▓'
	SeparatorChar = '┆'
	CatchLineChar = '─'
	PlayerChar    = '█'
)

// obstacleHeight is the vertical size of an obstacle in percent.
const obstacleHeight = 10.0

// shapeArt is the text art used for each built-in shape.
var shapeArt = map[Shape][]string{
	ShapeSquare:    {"████", "████"},
	ShapeCircle:    {"▄██▄", "▀██▀"},
	ShapeRectangle: {"███", "███", "███"},
}

// field maps percent coordinates onto the screen area below the HUD.
type field struct {
	top, height, width int
}

func newField(dst *core.Screen) field {
	return field{top: 1, height: core.Max(dst.Height()-1, 1), width: dst.Width()}
}

// col converts a horizontal percentage to a column.
func (f field) col(pct float64) int {
	return int(math.Round(pct / 100 * float64(f.width-1)))
}

// row converts a vertical percentage (0 bottom, 100 top) to a row.
func (f field) row(pct float64) int {
	return f.top + int(math.Round((100-pct)/100*float64(f.height-1)))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	f := newField(dst)

	g.drawLanes(dst, f)
	for _, o := range g.state.Obstacles {
		g.drawObstacle(dst, f, o)
	}
	g.drawPlayer(dst, f)
	g.drawHUD(dst)

	switch {
	case g.paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case g.state.Run.Over:
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Best: %d", g.state.Run.Score, g.state.Best))
	case !g.state.Run.Running:
		drawCenteredMessage(dst, "LANE SHIFT", "Press Enter to start")
	}
}

// drawLanes draws separators halfway between lane centers and the catch-line.
func (g *Game) drawLanes(dst *core.Screen, f field) {
	for l := 0; l < LaneCount-1; l++ {
		mid := (g.params.Lanes.Position(Lane(l)) + g.params.Lanes.Position(Lane(l+1))) / 2
		dst.DrawVLine(f.col(mid), f.top, f.height, SeparatorChar, core.ColorGray)
	}
	dst.DrawHLine(0, f.row(g.params.CollisionBand), f.width, CatchLineChar, core.ColorGray)
}

// drawObstacle draws one obstacle spanning its lane, bottom edge at o.Y.
func (g *Game) drawObstacle(dst *core.Screen, f field, o Obstacle) {
	left := f.col(g.params.Lanes.Left(o.Lane)) + 1
	right := f.col(g.params.Lanes.Left(o.Lane)+g.params.Lanes.Width()) - 1
	top := f.row(o.Y + obstacleHeight)
	bottom := f.row(o.Y)

	for y := core.Max(top, f.top); y <= bottom; y++ {
		dst.DrawHLine(left, y, right-left+1, ObstacleChar, core.ColorOrange)
	}
}

// drawPlayer draws the player's sprite or shape centered on its lane,
// resting on the bottom row.
func (g *Game) drawPlayer(dst *core.Screen, f field) {
	art := g.state.Player.Look.Sprite
	if len(art) == 0 {
		art = shapeArt[g.state.Player.Look.Shape]
	}
	if len(art) == 0 {
		art = shapeArt[ShapeSquare]
	}

	width := 0
	for _, line := range art {
		width = core.Max(width, len([]rune(line)))
	}

	cx := f.col(g.params.Lanes.Position(g.state.Player.Lane))
	x0 := cx - width/2
	y0 := f.top + f.height - len(art)
	color := g.state.Player.Look.Color
	for dy, line := range art {
		dst.DrawTextColored(x0, y0+dy, line, color)
	}
}

// drawHUD draws score, best and speed on the top row.
func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.state.Run.Score))

	right := fmt.Sprintf(" Best: %d  Spd: %.2f ", g.state.Best, g.state.Run.Speed)
	dst.DrawTextColored(dst.Width()-len(right)-2, 0, right, core.ColorBrightYellow)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
