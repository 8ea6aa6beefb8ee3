package scene

import (
	"fmt"
	"math"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// View projects track coordinates onto screen cells. Depth 0 (the player)
// maps to the bottom row and the track narrows toward the horizon.
type View struct {
	Width   int
	Height  int
	Horizon int     // first track row
	Bottom  int     // row of the player
	Half    float64 // world half-width of the road
	Focal   float64 // larger values flatten the perspective
	MaxDist float64 // nothing farther ahead is drawn
}

// NewView sizes a view for a screen, leaving row 0 for the HUD.
func NewView(width, height int, half float64) View {
	return View{
		Width:   width,
		Height:  height,
		Horizon: 3,
		Bottom:  height - 2,
		Half:    half,
		Focal:   12,
		MaxDist: 150,
	}
}

// Row returns the screen row for depth and whether it is on screen.
func (v View) Row(depth float64) (int, bool) {
	dist := -depth
	if dist < -0.5 || dist > v.MaxDist {
		return 0, false
	}
	dist = math.Max(dist, 0)

	span := float64(v.Bottom - v.Horizon)
	row := float64(v.Horizon) + span*v.Focal/(dist+v.Focal)
	return int(math.Round(row)), true
}

// Scale returns the perspective shrink at row: 1 at the player, 0 at the horizon.
func (v View) Scale(row int) float64 {
	span := float64(v.Bottom - v.Horizon)
	if span <= 0 {
		return 1
	}
	return core.ClampF(float64(row-v.Horizon)/span, 0, 1)
}

// RoadHalf returns the road half-width in cells at row.
func (v View) RoadHalf(row int) float64 {
	return float64(v.Width) * 0.45 * v.Scale(row)
}

// Column returns the screen column for a lateral position at row.
func (v View) Column(lateral float64, row int) int {
	center := float64(v.Width) / 2
	if v.Half <= 0 {
		return int(center)
	}
	return int(math.Round(center + lateral/v.Half*v.RoadHalf(row)))
}

// DrawRoad draws the road edges and dotted dividers at the given lateral
// positions. phase scrolls the dots.
func (v View) DrawRoad(dst *core.Screen, dividers []float64, phase float64, edge core.Color) {
	dst.DrawHLine(0, v.Horizon-1, v.Width, '─')

	for row := v.Horizon; row <= v.Bottom; row++ {
		left := v.Column(-v.Half, row)
		right := v.Column(v.Half, row)
		dst.SetColored(left, row, '/', edge)
		dst.SetColored(right, row, '\\', edge)

		// Dots drift toward the player as phase grows.
		if (row+int(phase))%3 != 0 {
			continue
		}
		for _, d := range dividers {
			dst.SetColored(v.Column(d, row), row, '┊', core.ColorGray)
		}
	}
}

// DrawSprite draws a sprite of lines centered on (col, row) with its last
// line on row.
func DrawSprite(dst *core.Screen, col, row int, lines []string, c core.Color) {
	for i, line := range lines {
		y := row - (len(lines) - 1 - i)
		x := col - len([]rune(line))/2
		for j, r := range line {
			if r != ' ' {
				dst.SetColored(x+j, y, r, c)
			}
		}
	}
}

// DrawHUD draws the score line.
func DrawHUD(dst *core.Screen, title string, st core.GameState, right string) {
	dst.DrawTextColored(2, 0, title, core.ColorBrightMagenta)
	score := fmt.Sprintf(" Score: %d  Best: %d ", st.Score, st.HighScore)
	dst.DrawText(len([]rune(title))+4, 0, score)
	if right != "" {
		dst.DrawText(dst.Width()-len([]rune(right))-2, 0, right)
	}
}

// DrawOverlay draws the idle and game-over boxes. Nothing is drawn while playing.
func DrawOverlay(dst *core.Screen, title string, st core.GameState, hint string) {
	switch st.Phase {
	case core.PhaseIdle:
		dst.DrawMessageBox(title, hint, "Press Enter to start")
	case core.PhaseGameOver:
		dst.DrawMessageBox("GAME OVER",
			fmt.Sprintf("Score: %d  |  Best: %d", st.Score, st.HighScore),
			"R restart  |  B back to hub")
	}
}
