package paddlerush

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/paddle-rush/internal/boss"
	"github.com/vovakirdan/paddle-rush/internal/core"
	"github.com/vovakirdan/paddle-rush/internal/entity"
	"github.com/vovakirdan/paddle-rush/internal/world"
)

// Visual characters for rendering
const (
	StarChar       = '.'
	BrightStarChar = '*'
	BulletChar     = '•'
	BallChar       = '●'
	ProjectileChar = '¤'
	PaddleChar     = '█'
	BrickChar      = '▓'
	WarningChar    = '!'
	TargetChar     = '+'
)

// shipGlyphs indexes the ship's heading in 45 degree steps, starting up and
// turning clockwise.
var shipGlyphs = []rune{'▲', '◥', '▶', '◢', '▼', '◣', '◀', '◤'}

var asteroidGlyphs = map[world.AsteroidSize]rune{
	world.AsteroidLarge:  '@',
	world.AsteroidMedium: 'O',
	world.AsteroidSmall:  'o',
}

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// projector maps world units onto screen cells below the HUD.
type projector struct {
	sx, sy float64
}

func newProjector(dst *core.Screen, w *world.World) projector {
	ww, wh := w.Size()
	return projector{
		sx: float64(dst.Width()) / ww,
		sy: float64(max(1, dst.Height()-hudRows)) / wh,
	}
}

func (p projector) cell(v core.Vec2) (int, int) {
	return int(math.Floor(v.X * p.sx)), hudRows + int(math.Floor(v.Y*p.sy))
}

// rect returns the cells covered by b, never smaller than one cell.
func (p projector) rect(b core.Box) core.Rect {
	x0, y0 := p.cell(core.V(b.X, b.Y))
	x1, y1 := p.cell(core.V(b.Right(), b.Bottom()))
	return core.NewRect(x0, y0, max(1, x1-x0), max(1, y1-y0))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		dst.DrawTextCentered(dst.Height()/2, "paddle-rush failed to start: check the config", core.ColorBrightRed)
		return
	}
	w := g.world
	proj := newProjector(dst, w)

	for _, s := range w.Stars() {
		x, y := proj.cell(s.Position)
		if s.Bright {
			dst.SetColored(x, y, BrightStarChar, core.ColorWhite)
		} else {
			dst.SetColored(x, y, StarChar, core.ColorGray)
		}
	}

	switch w.Phase() {
	case world.PhaseMenu:
		g.drawMenu(dst)
	case world.PhaseAsteroids:
		g.drawField(dst, proj)
	case world.PhaseBoss:
		g.drawBoss(dst, proj)
		g.drawField(dst, proj)
	case world.PhaseWin:
		g.drawCenteredMessage(dst, "BOSS DEFEATED", fmt.Sprintf("Score %d  |  High %d  |  Enter for menu", w.Score(), w.HighScore()), fadeColor(w.Fade(), core.ColorBrightGreen))
	case world.PhaseLose:
		g.drawCenteredMessage(dst, "YOU DIED", "Enter - retry  |  Esc - menu", fadeColor(w.Fade(), core.ColorBrightRed))
	}

	g.drawHUD(dst)
	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorBrightWhite)
	}
}

// fadeColor dims c while a screen is fading.
func fadeColor(fade float64, c core.Color) core.Color {
	if fade < 0.5 {
		return core.ColorGray
	}
	return c
}

func (g *Game) drawMenu(dst *core.Screen) {
	w := g.world
	c := fadeColor(w.Fade(), core.ColorBrightCyan)
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-3, "P A D D L E   R U S H", c)
	dst.DrawTextCentered(mid-1, "SPACE / ENTER - START", fadeColor(w.Fade(), core.ColorWhite))
	dst.DrawTextCentered(mid, "ESC - QUIT", fadeColor(w.Fade(), core.ColorWhite))
	dst.DrawTextCentered(mid+2, "A/D rotate  W thrust  SPACE fire  C debug", core.ColorGray)
	if hs := w.HighScore(); hs > 0 {
		dst.DrawTextCentered(mid+4, fmt.Sprintf("HIGH SCORE %d", hs), core.ColorYellow)
	}
}

// drawField draws what the player owns: rocks, bullets and the ship.
func (g *Game) drawField(dst *core.Screen, proj projector) {
	w := g.world
	w.Asteroids(func(a *world.Asteroid) {
		r := proj.rect(a.Collision)
		dst.DrawRect(r, asteroidGlyphs[a.Variant], core.ColorGray)
		if g.debug {
			dst.DrawBox(r, core.ColorGreen)
		}
	})
	w.Bullets(func(b *world.Bullet) {
		x, y := proj.cell(b.Position)
		dst.SetColored(x, y, BulletChar, b.Tint.Color())
	})

	p := w.Player()
	if !p.Active {
		return
	}
	x, y := proj.cell(p.Position)
	dst.SetColored(x, y, shipGlyph(p.Rotation), core.ColorBrightWhite)
	if p.Thrusting {
		h := p.Heading()
		fx, fy := proj.cell(p.Position.Sub(h.Scale(p.Size.Y * 0.5)))
		if fx != x || fy != y {
			dst.SetColored(fx, fy, '*', core.ColorOrange)
		}
	}
	if g.debug {
		dst.DrawBox(proj.rect(p.Collision), core.ColorGreen)
	}
}

func shipGlyph(rotation float64) rune {
	deg := math.Mod(rotation, 360)
	if deg < 0 {
		deg += 360
	}
	i := int(math.Round(deg/45)) % len(shipGlyphs)
	return shipGlyphs[i]
}

func (g *Game) drawBoss(dst *core.Screen, proj projector) {
	e := g.world.Boss()
	if e == nil {
		return
	}
	sc := e.Scenario()
	if sc.Has(boss.ScenarioWarning) && (g.ticks/8)%2 == 0 {
		for _, wb := range sc.Warnings {
			if wb.Empty() {
				continue
			}
			dst.DrawRect(proj.rect(wb), WarningChar, core.ColorRed)
		}
	}

	e.Bricks(func(b *boss.Paddle) {
		g.drawPaddle(dst, proj, b, BrickChar)
	})
	for i := range e.Paddles() {
		g.drawPaddle(dst, proj, &e.Paddles()[i], PaddleChar)
	}

	for _, b := range e.Balls() {
		if !b.Active && !sc.Has(boss.ScenarioBallEnter) {
			continue
		}
		x, y := proj.cell(b.Position)
		c := core.ColorBrightWhite
		if !b.Active {
			c = core.ColorGray
		}
		dst.SetColored(x, y, BallChar, c)
	}
	e.Projectiles(func(p *entity.Entity) {
		x, y := proj.cell(p.Position)
		dst.SetColored(x, y, ProjectileChar, core.ColorBrightRed)
	})
}

// drawPaddle fills the sprite area of a paddle or brick. Rotated paddles
// lie on their side.
func (g *Game) drawPaddle(dst *core.Screen, proj projector, p *boss.Paddle, glyph rune) {
	if !p.Active {
		return
	}
	size := p.Size
	if r := math.Mod(math.Abs(p.Rotation), 180); r > 45 && r < 135 {
		size = core.V(size.Y, size.X)
	}
	color := p.Tint.Color()
	switch {
	case p.Flashing():
		color = core.ColorBrightWhite
	case p.Damaged:
		color = core.ColorOrange
	}
	dst.DrawRect(proj.rect(core.BoxFromCenter(p.Position, size.X, size.Y)), glyph, color)

	if !g.debug {
		return
	}
	if p.Collidable() {
		dst.DrawBox(proj.rect(p.Collision), core.ColorGreen)
	}
	if !p.Brick {
		// Side paddles steer along Y, the floor paddle along X.
		target := core.V(p.Position.X, p.Target)
		if p.Rotation != 0 {
			target = core.V(p.Target, p.Position.Y)
		}
		x, y := proj.cell(target)
		dst.SetColored(x, y, TargetChar, core.ColorBrightYellow)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	w := g.world
	left := fmt.Sprintf(" SCORE %d  HI %d", w.Score(), w.HighScore())
	dst.DrawTextColored(0, 0, left, core.ColorBrightWhite)

	e := w.Boss()
	if e == nil {
		return
	}
	const barW = 20
	filled := int(math.Round(core.ClampF(e.HealthRatio(), 0, 1) * barW))
	bar := fmt.Sprintf("BOSS [%s%s] %s ", strings.Repeat("█", filled), strings.Repeat("·", barW-filled), e.PhaseName())
	dst.DrawTextColored(dst.Width()-len([]rune(bar)), 0, bar, core.ColorBrightRed)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	r := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, c)
	dst.DrawTextCentered(boxY+1, title, c)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorWhite)
}
