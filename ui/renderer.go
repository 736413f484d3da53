package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-classic/game/session"
	"snake-classic/game/types"
	"snake-classic/ui/layout"
)

const (
	borderPadding = 10 // Padding around game area
	hudHeight     = 40
)

var (
	colorBackground = rl.Black
	colorNight      = rl.Color{R: 20, G: 20, B: 60, A: 255}
	colorGridBorder = rl.DarkGray
	colorHead       = rl.Color{R: 0, G: 255, B: 0, A: 255}
	colorBody       = rl.Color{R: 0, G: 200, B: 0, A: 255}
	colorOutline    = rl.Color{R: 0, G: 150, B: 0, A: 255}
	colorApple      = rl.Color{R: 220, G: 20, B: 20, A: 255}
	colorAppleRim   = rl.Color{R: 180, G: 0, B: 0, A: 255}
	colorStem       = rl.Color{R: 101, G: 67, B: 33, A: 255}
	colorLeaf       = rl.Color{R: 50, G: 150, B: 50, A: 255}
	colorOverlay    = rl.Color{R: 0, G: 0, B: 0, A: 128}
	colorGraphBar   = rl.Color{R: 0, G: 180, B: 0, A: 180}
)

type Renderer struct {
	screenWidth  int32
	screenHeight int32
	layout       layout.Layout
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

func (r *Renderer) Draw(f session.Frame) {
	r.UpdateDimensions()
	r.layout = layout.Fit(int(r.screenWidth), int(r.screenHeight), borderPadding, hudHeight, f.Grid)

	rl.BeginDrawing()
	defer rl.EndDrawing()

	background := colorBackground
	if f.NightMode() {
		background = colorNight
	}
	rl.ClearBackground(background)

	fontSize := r.screenHeight / 30
	if !r.layout.Fits {
		rl.DrawText("Window too small", borderPadding, borderPadding, fontSize, rl.White)
		return
	}

	// Draw grid border
	l := r.layout
	rl.DrawRectangleLines(int32(l.OffsetX-1), int32(l.OffsetY-1), int32(l.Width+2), int32(l.Height+2), colorGridBorder)

	if f.HasFood {
		r.drawApple(f.Food)
	}
	r.drawSnake(f.Body, f.Direction)
	r.drawHUD(f, fontSize)

	switch f.Status {
	case types.Paused:
		r.drawOverlay("PAUSED", rl.Blue, "Press P to resume", fontSize)
	case types.GameOver:
		title := "GAME OVER"
		if f.Cause == types.NoCollision {
			title = "BOARD CLEARED"
		}
		r.drawOverlay(title, rl.Red, fmt.Sprintf("Final Score: %d - press SPACE to restart", f.Score), fontSize)
	}
}

func (r *Renderer) cellRect(p types.Point) (int32, int32, int32) {
	x, y := r.layout.Origin(p)
	return int32(x), int32(y), int32(r.layout.CellW)
}

func (r *Renderer) drawSnake(body []types.Point, direction types.Direction) {
	for i := len(body) - 1; i >= 0; i-- {
		x, y, size := r.cellRect(body[i])
		color := colorBody
		if i == 0 {
			color = colorHead
		}
		rl.DrawRectangle(x, y, size, size, color)
		rl.DrawRectangleLines(x, y, size, size, colorOutline)
	}
	if len(body) > 0 {
		r.drawHeadMarker(body[0], direction)
	}
}

// drawHeadMarker draws a small triangle pointing where the head is going.
func (r *Renderer) drawHeadMarker(head types.Point, direction types.Direction) {
	headX, headY, size := r.cellRect(head)
	cx := float32(headX + size/2)
	cy := float32(headY + size/2)
	q := float32(size) / 4
	d := direction.ToPoint()
	dx, dy := float32(d.X), float32(d.Y)

	// tip ahead of the center, base corners behind it; counter-clockwise for raylib
	tip := rl.Vector2{X: cx + dx*q, Y: cy + dy*q}
	left := rl.Vector2{X: cx - dx*q + dy*q, Y: cy - dy*q - dx*q}
	right := rl.Vector2{X: cx - dx*q - dy*q, Y: cy - dy*q + dx*q}
	rl.DrawTriangle(tip, left, right, rl.Yellow)
}

func (r *Renderer) drawApple(food types.Point) {
	x, y, size := r.cellRect(food)
	center := rl.Vector2{X: float32(x + size/2), Y: float32(y + size/2)}
	radius := float32(size)/2 - 2

	rl.DrawCircleV(center, radius, colorApple)
	rl.DrawCircleLines(int32(center.X), int32(center.Y), radius, colorAppleRim)

	stemW, stemH := int32(3), size/3
	rl.DrawRectangle(int32(center.X)-stemW/2, int32(center.Y-radius)-stemH+2, stemW, stemH, colorStem)
	rl.DrawEllipse(int32(center.X)+4, int32(center.Y-radius), float32(size)/6, float32(size)/10, colorLeaf)
}

func (r *Renderer) drawHUD(f session.Frame, fontSize int32) {
	yOffset := int32(r.layout.OffsetY+r.layout.Height) + borderPadding
	xOffset := int32(r.layout.OffsetX)
	spacing := int32(180)

	rl.DrawText(fmt.Sprintf("Score: %d", f.Score), xOffset, yOffset, fontSize, rl.White)
	xOffset += spacing
	rl.DrawText(fmt.Sprintf("Best: %d", f.BestScore), xOffset, yOffset, fontSize, rl.Green)
	xOffset += spacing
	rl.DrawText(fmt.Sprintf("Games: %d", f.GamesPlayed), xOffset, yOffset, fontSize, rl.Purple)
	xOffset += spacing

	r.drawScoreGraph(f.RecentScores, xOffset, yOffset, int32(r.layout.OffsetX+r.layout.Width)-xOffset, hudHeight-borderPadding)
}

// drawScoreGraph draws one bar per recent game, scaled to the best of them,
// joined by a line through the bar tops.
func (r *Renderer) drawScoreGraph(scores []int, x, y, width, height int32) {
	if len(scores) == 0 || width < 40 {
		return
	}
	rl.DrawRectangle(x, y, width, height, rl.DarkGray)

	maxScore := 0
	for _, score := range scores {
		maxScore = max(maxScore, score)
	}
	if maxScore == 0 {
		return
	}

	const barWidth = float32(4)
	scaleY := float32(height-4) / float32(maxScore)
	spacing := float32(width) / float32(session.HistoryLen)
	bottom := float32(y + height)

	var prev rl.Vector2
	for i, score := range scores {
		cx := float32(x) + spacing*(float32(i)+0.5)
		top := bottom - float32(score)*scaleY
		rl.DrawRectangle(int32(cx-barWidth/2), int32(top), int32(barWidth), int32(bottom-top), colorGraphBar)

		point := rl.Vector2{X: cx, Y: top}
		if i > 0 {
			rl.DrawLineV(prev, point, rl.Green)
		}
		prev = point
	}
}

func (r *Renderer) drawOverlay(title string, titleColor rl.Color, hint string, fontSize int32) {
	rl.DrawRectangle(0, 0, r.screenWidth, r.screenHeight, colorOverlay)

	bigFont := fontSize * 2
	titleWidth := rl.MeasureText(title, bigFont)
	rl.DrawText(title, (r.screenWidth-titleWidth)/2, r.screenHeight/2-bigFont, bigFont, titleColor)

	hintWidth := rl.MeasureText(hint, fontSize)
	rl.DrawText(hint, (r.screenWidth-hintWidth)/2, r.screenHeight/2+fontSize, fontSize, rl.White)
}
