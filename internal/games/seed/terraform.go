package seed

import (
	"math"
	"math/rand/v2"
	"sort"

	"github.com/vovakirdan/seed-of-life/internal/core"
)

// hash01 returns a stable pseudo-random value in [0, 1) for integer
// coordinates.
func hash01(ix, iy int) float64 {
	n := int32(int64(float64(ix)*374761393 + float64(iy)*668265263))
	n ^= int32(uint32(n) >> 13)
	// This multiply rounds through float64; the reveal order depends on it.
	n = int32(int64(float64(n) * 1274126177))
	return float64(uint32(n)%1000) / 1000
}

// painter draws the destination's transformation. dx and dy are offsets
// from the planet's centre in design units, sinceMs is the time since the
// win and progress runs from 0 to 1 over the terraform duration.
type painter interface {
	paint(dx, dy, radius, sinceMs, progress float64) (rune, core.Color, bool)
}

const (
	tileCols     = 8
	tileRows     = 8
	tileJitterMs = 800
)

// tileReveal uncovers a green planet in an 8x8 grid of pieces. Pieces
// appear in row-major order, each delayed by a fixed hash jitter.
type tileReveal struct {
	appearAt [tileRows][tileCols]float64
	order    []tilePiece
}

type tilePiece struct {
	I, J     int
	AppearAt float64
}

func newTileReveal(durationMs float64) *tileReveal {
	t := &tileReveal{}
	step := durationMs / (tileCols * tileRows)
	for j := range tileRows {
		for i := range tileCols {
			order := i + j*tileCols
			jitter := math.Floor(hash01(i, j) * tileJitterMs)
			at := float64(order)*step + jitter
			t.appearAt[j][i] = at
			t.order = append(t.order, tilePiece{I: i, J: j, AppearAt: at})
		}
	}
	sort.SliceStable(t.order, func(a, b int) bool {
		return t.order[a].AppearAt < t.order[b].AppearAt
	})
	return t
}

// Revealed counts the pieces visible sinceMs after the win.
func (t *tileReveal) Revealed(sinceMs float64) int {
	return sort.Search(len(t.order), func(k int) bool {
		return t.order[k].AppearAt > sinceMs
	})
}

func (t *tileReveal) paint(dx, dy, radius, sinceMs, _ float64) (rune, core.Color, bool) {
	if radius <= 0 {
		return 0, 0, false
	}
	i := core.Clamp(int((dx+radius)/(2*radius)*tileCols), 0, tileCols-1)
	j := core.Clamp(int((dy+radius)/(2*radius)*tileRows), 0, tileRows-1)
	if sinceMs < t.appearAt[j][i] {
		return 0, 0, false
	}

	// Fixed continents on the finished planet.
	u := int(math.Floor(dx))
	v := int(math.Floor(dy))
	if hash01(u+64, v+64) < 0.3 {
		return '≈', core.ColorOcean, true
	}
	return '█', core.ColorGrass, true
}

type circle struct {
	X, Y, R float64
}

type vine struct {
	Start   float64
	MaxSpan float64
	Wiggle  float64
}

// biome grows oceans, lakes, vines and leaves over the planet. The layout
// is generated once per run from the game's RNG seed.
type biome struct {
	oceans []circle
	lakes  []circle
	vines  []vine
	leaves []float64
}

func newBiome(seed int64, radius float64) *biome {
	rng := rand.New(rand.NewPCG(uint64(seed), 0x5eed))
	b := &biome{}

	polar := func(minFrac, spanFrac float64) (float64, float64) {
		ang := rng.Float64() * 2 * math.Pi
		rad := radius * (minFrac + rng.Float64()*spanFrac)
		return math.Round(math.Cos(ang) * rad), math.Round(math.Sin(ang) * rad)
	}

	for range 3 {
		x, y := polar(0.15, 0.25)
		b.oceans = append(b.oceans, circle{X: x, Y: y, R: float64(5 + rng.IntN(3))})
	}
	for range 8 {
		x, y := polar(0.25, 0.45)
		b.lakes = append(b.lakes, circle{X: x, Y: y, R: float64(3 + rng.IntN(3))})
	}
	for range 6 {
		b.vines = append(b.vines, vine{
			Start:   rng.Float64() * 2 * math.Pi,
			MaxSpan: (0.6 + rng.Float64()*1.1) * math.Pi,
			Wiggle:  rng.Float64() * 2 * math.Pi,
		})
	}
	for range 24 {
		b.leaves = append(b.leaves, rng.Float64()*2*math.Pi)
	}
	return b
}

func easeOut(t float64) float64 {
	t = core.ClampF(t, 0, 1)
	return 1 - (1-t)*(1-t)
}

func (b *biome) paint(dx, dy, radius, _, progress float64) (rune, core.Color, bool) {
	if progress <= 0 {
		return 0, 0, false
	}
	rho := math.Hypot(dx, dy)
	theta := math.Atan2(dy, dx)
	if theta < 0 {
		theta += 2 * math.Pi
	}

	// Rim first so foliage sits on top of the water.
	if rho >= radius-1.5 {
		for k, ang := range b.leaves {
			if progress < float64(k+1)/float64(len(b.leaves)) {
				break
			}
			if angleDist(theta, ang) < 0.12 {
				return '♣', core.ColorLeaf, true
			}
		}
		for _, v := range b.vines {
			span := v.MaxSpan * easeOut(progress)
			off := math.Mod(theta-v.Start+4*math.Pi, 2*math.Pi)
			if off <= span && math.Sin(off*6+v.Wiggle) > 0 {
				return '╎', core.ColorVine, true
			}
		}
	}

	grow := easeOut(progress)
	for _, o := range b.oceans {
		if math.Hypot(dx-o.X, dy-o.Y) <= o.R*grow {
			return '≈', core.ColorOcean, true
		}
	}
	lakeGrow := easeOut((progress - 0.2) / 0.8)
	for _, l := range b.lakes {
		if math.Hypot(dx-l.X, dy-l.Y) <= l.R*lakeGrow {
			return '~', core.ColorLake, true
		}
	}

	// Grass spreads from the centre outwards.
	if rho <= radius*grow {
		return '▓', core.ColorGrass, true
	}
	return 0, 0, false
}

func angleDist(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 2*math.Pi)
	return math.Min(d, 2*math.Pi-d)
}
