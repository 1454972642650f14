package breakout

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Minimum screen size the playfield can be drawn on.
const (
	MinScreenW = 30
	MinScreenH = 12
)

// hudRows is the number of rows above the playfield.
const hudRows = 1

// Style is how one kind of entity is drawn.
type Style struct {
	Glyph rune
	Color core.Color
}

// Skin holds a Style for every drawable entity kind.
type Skin struct {
	Bricks   [MaxBrickType + 1]Style
	Paddle   [sizeCount]Style // Indexed by SizeState
	Ball     Style
	PowerUps [kindCount]Style // Indexed by Kind
}

// DefaultSkin returns the built-in glyphs and colors.
func DefaultSkin() Skin {
	return Skin{
		Bricks: [MaxBrickType + 1]Style{
			{'█', core.ColorBrightRed},
			{'█', core.ColorOrange},
			{'█', core.ColorBrightYellow},
			{'█', core.ColorBrightGreen},
			{'█', core.ColorBrightCyan},
			{'█', core.ColorBrightBlue},
			{'█', core.ColorBrightMagenta},
			{'▓', core.ColorGray},
		},
		Paddle: [sizeCount]Style{
			SizeNormal:   {'▀', core.ColorBrightBlue},
			SizeExpanded: {'▀', core.ColorBrightCyan},
			SizeShrunk:   {'▀', core.ColorBlue},
		},
		Ball: Style{'●', core.ColorBrightWhite},
		PowerUps: [kindCount]Style{
			KindExpandPaddle: {'W', core.ColorBrightMagenta},
			KindShrinkPaddle: {'N', core.ColorBrightRed},
			KindSlowBall:     {'-', core.ColorBrightGreen},
			KindFastBall:     {'+', core.ColorBrightYellow},
			KindMultiBall:    {'M', core.ColorBrightCyan},
			KindExtraLife:    {'♥', core.ColorBrightMagenta},
		},
	}
}

// viewport maps surface coordinates to screen cells below the HUD.
type viewport struct {
	sx, sy float64
	top    int
}

func newViewport(dst *core.Screen, surfaceW, surfaceH float64) viewport {
	return viewport{
		sx:  float64(dst.Width()) / surfaceW,
		sy:  float64(dst.Height()-hudRows) / surfaceH,
		top: hudRows,
	}
}

// span converts an interval on one axis to a first cell and a cell count.
// Every non-empty interval covers at least one cell.
func span(pos, size, scale float64) (int, int) {
	first := int(math.Floor(pos * scale))
	last := int(math.Floor((pos + size) * scale))
	return first, max(last-first, 1)
}

func (v viewport) rect(r core.RectF) core.Rect {
	x, w := span(r.X, r.W, v.sx)
	y, h := span(r.Y, r.H, v.sy)
	return core.NewRect(x, y+v.top, w, h)
}

func (v viewport) point(x, y float64) (int, int) {
	return int(math.Floor(x * v.sx)), int(math.Floor(y*v.sy)) + v.top
}

// PointerToWorld converts a screen column to a surface x coordinate,
// taking the center of the cell.
func (s *Session) PointerToWorld(col, screenW int) float64 {
	if screenW <= 0 {
		return 0
	}
	x := (float64(col) + 0.5) * s.cfg.Surface.Width / float64(screenW)
	return core.ClampF(x, 0, s.cfg.Surface.Width)
}

// Render draws the session onto dst using skin.
func (s *Session) Render(dst *core.Screen, skin Skin) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	v := newViewport(dst, s.cfg.Surface.Width, s.cfg.Surface.Height)

	s.renderHUD(dst)
	s.renderBricks(dst, v, skin)
	s.renderPowerUps(dst, v, skin)
	s.renderPaddle(dst, v, skin)
	s.renderBalls(dst, v, skin)
	s.renderOverlay(dst)
}

// renderHUD draws score, lives and active modifiers on the top row.
func (s *Session) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", s.score))
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d", s.lives))

	right := s.modifierSummary()
	if right == "" {
		right = fmt.Sprintf("Bricks: %d", countAlive(s.bricks))
	}
	dst.DrawText(dst.Width()-len([]rune(right))-1, 0, right)
}

// modifierSummary lists active timed effects with whole seconds left.
func (s *Session) modifierSummary() string {
	var parts []string
	if m := s.paddle.Modifier(); m.Active {
		parts = append(parts, modifierLabel(m, s.clock))
	}
	for _, b := range s.balls {
		if m := b.Modifier(); m.Active && b.InPlay {
			parts = append(parts, modifierLabel(m, s.clock))
			break
		}
	}
	return strings.Join(parts, " ")
}

func modifierLabel(m Modifier, now time.Duration) string {
	secs := int(math.Ceil(m.Remaining(now).Seconds()))
	return fmt.Sprintf("%s %ds", m.Kind.Label(), secs)
}

func (s *Session) renderBricks(dst *core.Screen, v viewport, skin Skin) {
	for _, br := range s.bricks {
		if !br.Alive {
			continue
		}
		st := skin.Bricks[core.Clamp(br.Type, 0, MaxBrickType)]
		dst.DrawRect(v.rect(br.Rect()), st.Glyph, st.Color)
	}
}

func (s *Session) renderPowerUps(dst *core.Screen, v viewport, skin Skin) {
	for _, p := range s.powerUps {
		if !p.Active {
			continue
		}
		st := skin.PowerUps[p.Kind]
		r := v.rect(p.Rect())
		if r.W >= 3 {
			dst.SetColored(r.X, r.Y, '[', st.Color)
			dst.DrawHLine(r.X+1, r.Y, r.W-2, st.Glyph, st.Color)
			dst.SetColored(r.Right()-1, r.Y, ']', st.Color)
			continue
		}
		dst.DrawHLine(r.X, r.Y, r.W, st.Glyph, st.Color)
	}
}

func (s *Session) renderPaddle(dst *core.Screen, v viewport, skin Skin) {
	st := skin.Paddle[s.paddle.Size]
	r := v.rect(s.paddle.Rect())
	dst.DrawHLine(r.X, r.Y, r.W, st.Glyph, st.Color)
}

func (s *Session) renderBalls(dst *core.Screen, v viewport, skin Skin) {
	for _, b := range s.balls {
		if !b.InPlay && s.status == StatusGameOver {
			continue
		}
		x, y := v.point(b.X, b.Y)
		dst.SetColored(x, y, skin.Ball.Glyph, skin.Ball.Color)
	}
}

// renderOverlay draws status messages.
func (s *Session) renderOverlay(dst *core.Screen) {
	switch s.status {
	case StatusPlaying:
		if s.inPlay() == 0 {
			dst.DrawTextCentered(dst.Height()-1, "Press SPACE to launch")
		}

	case StatusPaused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StatusGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press SPACE to restart", s.score)
		drawCenteredBox(dst, "GAME OVER", subtitle)

	case StatusLevelComplete:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press SPACE to play again", s.score)
		drawCenteredBox(dst, "LEVEL COMPLETE", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := min(max(len([]rune(title)), len([]rune(subtitle)))+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)

	titleX := boxX + (boxW-len([]rune(title)))/2
	dst.DrawTextColored(titleX, boxY+1, title, core.ColorBrightWhite)

	subtitleX := boxX + (boxW-len([]rune(subtitle)))/2
	dst.DrawText(max(subtitleX, boxX+1), boxY+3, subtitle)
}
