package seed

import (
	"fmt"
	"math"

	"github.com/vovakirdan/seed-of-life/internal/core"
	"github.com/vovakirdan/seed-of-life/internal/physics"
	"github.com/vovakirdan/seed-of-life/internal/sim"
)

// Visual characters for rendering
const (
	SeedChar   = '●'
	IntroChar  = '•'
	GlowChar   = '·'
	SunChar    = '█'
	SunEdge    = '▓'
	RockChar   = '▒'
	RockEdge   = '░'
	TrailChar  = '•'
	TrailFaint = '·'
	WarnChar   = '█'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.loop == nil {
		return
	}

	snap := g.loop.Snapshot()
	vp := core.FitViewport(g.params.Width, g.params.Height, dst.Width(), dst.Height())

	g.drawStars(dst)
	g.drawSun(dst, vp, snap.Origin)
	g.drawDestination(dst, vp, snap)
	g.drawTails(dst, vp, snap)

	if snap.Phase == sim.PhaseStart {
		g.drawIntro(dst, vp, snap)
	} else {
		x, y := vp.ToCell(snap.Player.Pos.X, snap.Player.Pos.Y)
		dst.SetColor(x, y, SeedChar, core.ColorSeed)
	}

	g.drawHUD(dst, snap)

	switch {
	case g.paused:
		drawCenteredMessage(dst, core.ColorHUD, "PAUSED", "Press P to resume")
	case snap.Phase == sim.PhaseWin:
		drawCenteredMessage(dst, core.ColorWin, "You win!", "Seed planted", "Press R to play again")
	case snap.Phase == sim.PhaseLose:
		drawCenteredMessage(dst, core.ColorLose, snap.Reason.String(), "Press R to try again")
	}
}

// drawStars scatters a fixed starfield over empty space.
func (g *Game) drawStars(dst *core.Screen) {
	salt := int(g.config.Seed & 0xffff)
	for y := range dst.Height() {
		for x := range dst.Width() {
			h := hash01(x+salt, y)
			switch {
			case h < 0.006:
				dst.SetColor(x, y, '*', core.ColorStar)
			case h < 0.03:
				dst.SetColor(x, y, '.', core.ColorDim)
			}
		}
	}
}

// disc calls fn for every cell whose centre lies inside the body, always
// including the centre cell so tiny bodies stay visible.
func disc(dst *core.Screen, vp core.Viewport, b physics.MassiveBody, fn func(cx, cy int, dx, dy float64)) {
	x0, y0 := vp.ToCell(b.Pos.X-b.Radius, b.Pos.Y-b.Radius)
	x1, y1 := vp.ToCell(b.Pos.X+b.Radius, b.Pos.Y+b.Radius)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			wx, wy := vp.ToWorld(cx, cy)
			dx, dy := wx-b.Pos.X, wy-b.Pos.Y
			if math.Hypot(dx, dy) <= b.Radius {
				fn(cx, cy, dx, dy)
			}
		}
	}
	cx, cy := vp.ToCell(b.Pos.X, b.Pos.Y)
	fn(cx, cy, 0, 0)
}

func (g *Game) drawSun(dst *core.Screen, vp core.Viewport, sun physics.MassiveBody) {
	disc(dst, vp, sun, func(cx, cy int, dx, dy float64) {
		if math.Hypot(dx, dy) > sun.Radius*0.7 {
			dst.SetColor(cx, cy, SunEdge, core.ColorSun)
			return
		}
		dst.SetColor(cx, cy, SunChar, core.ColorSunCore)
	})
}

func (g *Game) drawDestination(dst *core.Screen, vp core.Viewport, snap sim.Snapshot) {
	planet := snap.Destination
	since := 0.0
	if snap.Phase == sim.PhaseWin {
		since = snap.ElapsedMs - g.winAt()
	}

	disc(dst, vp, planet, func(cx, cy int, dx, dy float64) {
		if snap.Phase == sim.PhaseWin {
			if r, c, ok := g.painter.paint(dx, dy, planet.Radius, since, snap.TerraformProgress); ok {
				dst.SetColor(cx, cy, r, c)
				return
			}
		}
		if math.Hypot(dx, dy) > planet.Radius*0.7 {
			dst.SetColor(cx, cy, RockEdge, core.ColorRock)
			return
		}
		dst.SetColor(cx, cy, RockChar, core.ColorRock)
	})
}

// winAt returns when the destination was reached.
func (g *Game) winAt() float64 {
	res, ok := g.loop.Result()
	if !ok {
		return 0
	}
	return res.ElapsedMs
}

// drawTails streams a tapered comet tail behind the seed for each recent
// thrust, fading with age.
func (g *Game) drawTails(dst *core.Screen, vp core.Viewport, snap sim.Snapshot) {
	heading := snap.Player.Vel.Normalize()
	if heading.IsZero() || snap.Phase == sim.PhaseStart {
		return
	}
	for _, t := range g.tails {
		age := snap.ElapsedMs - t.createdAt
		if age < 0 || age >= tailLifeMs {
			continue
		}
		alpha := 1 - age/tailLifeMs
		length := tailLength * (0.9 + 0.1*alpha)
		for s := 1; s < int(length); s++ {
			frac := float64(s) / length
			if alpha*(1-frac) < 0.15 {
				break
			}
			p := snap.Player.Pos.Sub(heading.Scale(float64(s)))
			x, y := vp.ToCell(p.X, p.Y)
			ch := TrailFaint
			if alpha*(1-frac) > 0.5 {
				ch = TrailChar
			}
			if dst.Get(x, y) == SeedChar {
				continue
			}
			dst.SetColor(x, y, ch, core.ColorTrail)
		}
	}
}

// drawIntro animates the seed rising from the sun's surface to its spawn
// point, sweeping a quarter turn with an ease-in-out.
func (g *Game) drawIntro(dst *core.Screen, vp core.Viewport, snap sim.Snapshot) {
	t := snap.IntroProgress
	ease := 2 * t * t
	if t >= 0.5 {
		ease = 1 - math.Pow(-2*t+2, 2)/2
	}

	origin := snap.Origin
	ang := core.Lerp(math.Pi/2, 0, ease)
	rStart := origin.Radius + 1
	rEnd := snap.Player.Pos.Distance(origin.Pos)
	r := core.Lerp(rStart, rEnd, ease)
	p := origin.Pos.Add(physics.V(math.Cos(ang)*r, math.Sin(ang)*r))

	x, y := vp.ToCell(p.X, p.Y)
	glow := int(1 + 2*ease)
	for k := 1; k <= glow; k++ {
		dst.SetColor(x-k, y, GlowChar, core.ColorSeed)
		dst.SetColor(x+k, y, GlowChar, core.ColorSeed)
	}
	dst.SetColor(x, y, IntroChar, core.ColorSeed)

	if t >= 1 {
		dst.DrawTextCentered(dst.Height()-2, "Press SPACE or click to start", core.ColorHUD)
	}
}

func (g *Game) drawHUD(dst *core.Screen, snap sim.Snapshot) {
	if snap.Phase == sim.PhaseStart {
		dst.DrawTextColor(1, 0, g.title, core.ColorHUD)
		return
	}

	hud := fmt.Sprintf(" %.1fs  thrusts: %d ", snap.ElapsedMs/1000, snap.Thrusts)
	dst.DrawTextColor(1, 0, hud, core.ColorHUD)

	if snap.Phase != sim.PhasePlay || snap.UnboundAccumMs <= 0 || snap.UnboundGraceMs <= 0 {
		return
	}
	label := " ESCAPING "
	barW := dst.Width() / 3
	x := dst.Width() - barW - len(label) - 1
	dst.DrawTextColor(x, 0, label, core.ColorWarning)
	filled := int(float64(barW) * core.ClampF(snap.UnboundAccumMs/snap.UnboundGraceMs, 0, 1))
	dst.DrawHLine(x+len(label), 0, barW, GlowChar, core.ColorDim)
	dst.DrawHLine(x+len(label), 0, filled, WarnChar, core.ColorWarning)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, c core.Color, title string, lines ...string) {
	w := len([]rune(title))
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	boxW := w + 4
	boxH := len(lines) + 4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	dst.DrawTextCentered(box.Y+1, title, c)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+3+i, l, core.ColorHUD)
	}
}
