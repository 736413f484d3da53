// Package term plays the game in a terminal through tcell.
package term

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"snake-classic/game/session"
	"snake-classic/game/types"
	"snake-classic/ui/layout"
)

// Each grid cell is two columns wide so cells look roughly square.
const (
	cellCols = 2
	hudRows  = 1
)

var (
	styleDefault = tcell.StyleDefault
	styleNight   = tcell.StyleDefault.Background(tcell.NewRGBColor(20, 20, 60))
	styleBorder  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHead    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0, 255, 0))
	styleBody    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0, 200, 0))
	styleApple   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(220, 20, 20))
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	stylePaused  = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	styleOver    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

const (
	glyphBody  = '█'
	glyphApple = '●'
)

var headGlyphs = map[types.Direction]rune{
	types.UP:    '▲',
	types.DOWN:  '▼',
	types.LEFT:  '◀',
	types.RIGHT: '▶',
}

// Terminal renders frames on a tcell screen.
type Terminal struct {
	screen tcell.Screen
}

func New(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Draw renders one frame and shows it.
func (t *Terminal) Draw(f session.Frame) error {
	t.screen.Clear()
	cols, rows := t.screen.Size()
	l := layout.Center(cols, rows, hudRows, cellCols, f.Grid)

	if !l.Fits {
		t.text(0, 0, fmt.Sprintf("Terminal too small: need %dx%d", l.Width+2, l.Height+2+hudRows), styleHUD)
		t.screen.Show()
		return nil
	}

	background := styleDefault
	if f.NightMode() {
		background = styleNight
	}
	t.fill(l.OffsetX, l.OffsetY, l.Width, l.Height, background)
	t.border(l)

	if f.HasFood {
		x, y := l.Origin(f.Food)
		t.cell(x, y, glyphApple, ' ', styleApple.Background(bgOf(background)))
	}
	for i := len(f.Body) - 1; i >= 0; i-- {
		x, y := l.Origin(f.Body[i])
		if i == 0 {
			t.cell(x, y, headGlyphs[f.Direction], ' ', styleHead.Background(bgOf(background)))
			continue
		}
		t.cell(x, y, glyphBody, glyphBody, styleBody)
	}

	hud := fmt.Sprintf("Score: %d  Best: %d  Games: %d", f.Score, f.BestScore, f.GamesPlayed)
	t.text(hudColumn(l, cols, hud), l.OffsetY-1-hudRows, hud, styleHUD)

	midY := l.OffsetY + l.Height/2
	switch f.Status {
	case types.Paused:
		t.centered(l, midY-1, "PAUSED", stylePaused)
		t.centered(l, midY+1, "Press P to resume", styleHUD)
	case types.GameOver:
		title := "GAME OVER"
		if f.Cause == types.NoCollision {
			title = "BOARD CLEARED"
		}
		t.centered(l, midY-1, title, styleOver)
		t.centered(l, midY, fmt.Sprintf("Final Score: %d", f.Score), styleHUD)
		t.centered(l, midY+1, "Press SPACE to restart", styleHUD)
	}

	t.screen.Show()
	return nil
}

func bgOf(style tcell.Style) tcell.Color {
	_, bg, _ := style.Decompose()
	return bg
}

func (t *Terminal) cell(x, y int, left, right rune, style tcell.Style) {
	t.screen.SetContent(x, y, left, nil, style)
	t.screen.SetContent(x+1, y, right, nil, style)
}

func (t *Terminal) fill(x, y, w, h int, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			t.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

func (t *Terminal) border(l layout.Layout) {
	left, top := l.OffsetX-1, l.OffsetY-1
	right, bottom := l.OffsetX+l.Width, l.OffsetY+l.Height
	for x := left + 1; x < right; x++ {
		t.screen.SetContent(x, top, '─', nil, styleBorder)
		t.screen.SetContent(x, bottom, '─', nil, styleBorder)
	}
	for y := top + 1; y < bottom; y++ {
		t.screen.SetContent(left, y, '│', nil, styleBorder)
		t.screen.SetContent(right, y, '│', nil, styleBorder)
	}
	t.screen.SetContent(left, top, '┌', nil, styleBorder)
	t.screen.SetContent(right, top, '┐', nil, styleBorder)
	t.screen.SetContent(left, bottom, '└', nil, styleBorder)
	t.screen.SetContent(right, bottom, '┘', nil, styleBorder)
}

func (t *Terminal) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// hudColumn aligns the HUD with the left border, shifting it left when the
// board is narrower than the text.
func hudColumn(l layout.Layout, cols int, hud string) int {
	x := l.OffsetX - 1
	if over := x + len([]rune(hud)) - cols; over > 0 {
		x -= over
	}
	return max(x, 0)
}

// centered writes s centered inside the board, clipped to its width.
func (t *Terminal) centered(l layout.Layout, y int, s string, style tcell.Style) {
	runes := []rune(s)
	if len(runes) > l.Width {
		runes = runes[:l.Width]
	}
	x := l.OffsetX + (l.Width-len(runes))/2
	t.text(x, y, string(runes), style)
}

// Translate maps a tcell event to a game command.
func Translate(ev tcell.Event) (types.Command, bool) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return types.CommandNone, false
	}

	switch key.Key() {
	case tcell.KeyUp:
		return types.CommandUp, true
	case tcell.KeyDown:
		return types.CommandDown, true
	case tcell.KeyLeft:
		return types.CommandLeft, true
	case tcell.KeyRight:
		return types.CommandRight, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return types.CommandQuit, true
	case tcell.KeyRune:
		switch key.Rune() {
		case 'w', 'W':
			return types.CommandUp, true
		case 's', 'S':
			return types.CommandDown, true
		case 'a', 'A':
			return types.CommandLeft, true
		case 'd', 'D':
			return types.CommandRight, true
		case 'p', 'P':
			return types.CommandTogglePause, true
		case ' ':
			return types.CommandReset, true
		case 'q', 'Q':
			return types.CommandQuit, true
		}
	}
	return types.CommandNone, false
}

// Pump reads screen events until the context ends, forwarding game commands
// to out. A resize is forwarded as CommandNone so the next frame is redrawn.
func Pump(ctx context.Context, screen tcell.Screen, out chan<- types.Command) error {
	defer close(out)
	for {
		ev := screen.PollEvent()
		if ev == nil || ctx.Err() != nil {
			return nil
		}

		var cmd types.Command
		if _, ok := ev.(*tcell.EventResize); ok {
			screen.Sync()
			cmd = types.CommandNone
		} else if c, ok := Translate(ev); ok {
			cmd = c
		} else {
			continue
		}

		select {
		case out <- cmd:
		case <-ctx.Done():
			return nil
		}
	}
}

// Run plays the session on screen until the player quits or ctx ends.
func Run(ctx context.Context, sess *session.Session, screen tcell.Screen, tick time.Duration) error {
	term := New(screen)
	commands := make(chan types.Command, 8)

	g, ctx := errgroup.WithContext(ctx)
	ctx, cancel := context.WithCancel(ctx)

	g.Go(func() error {
		return Pump(ctx, screen, commands)
	})

	g.Go(func() error {
		defer func() {
			cancel()
			// Wake PollEvent so the pump sees the cancelled context.
			_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
		}()

		ticker := time.NewTicker(tick)
		defer ticker.Stop()

		err := sess.Run(ctx, ticker.C, commands, term.Draw)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	return g.Wait()
}
