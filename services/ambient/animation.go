package ambient

import (
	"math"
	"math/rand"
	"time"

	"envbadge/types"
	"envbadge/x/mathx"
)

// Animation advances one frame per Step and reports when a full cycle has
// just completed. Reset rewinds it to the start of a cycle.
type Animation interface {
	Step(dt time.Duration) bool
	Reset()
}

// Breathing fills the strip with one colour and swings its level along a
// sine wave.
type Breathing struct {
	c     *Canvas
	Color types.RGBW
	Rate  float64 // degrees per second
	angle float64
}

func NewBreathing(c *Canvas, col types.RGBW, rate float64) *Breathing {
	return &Breathing{c: c, Color: col, Rate: rate}
}

func (b *Breathing) Reset() { b.angle = 0 }

// Factor is the level for the current angle, in [0, 1].
func (b *Breathing) Factor() float32 {
	return float32((math.Sin(b.angle*math.Pi/180) + 1) / 2)
}

func (b *Breathing) Step(dt time.Duration) bool {
	b.c.Level(b.Factor())
	b.c.Fill(b.Color)
	b.angle += b.Rate * dt.Seconds()
	if b.angle >= 360 {
		b.angle = math.Mod(b.angle, 360)
		return true
	}
	return false
}

// Comet sweeps a head with a fading tail along the strip. With more than
// one colour, each sweep uses the next colour and a cycle is one sweep per
// colour.
type Comet struct {
	c      *Canvas
	Colors []types.RGBW
	Tail   int
	Speed  float64 // cells per second

	pos   float64
	phase int
}

func NewComet(c *Canvas, tail int, speed float64, colors ...types.RGBW) *Comet {
	if tail < 1 {
		tail = 1
	}
	if len(colors) == 0 {
		colors = []types.RGBW{types.White}
	}
	return &Comet{c: c, Colors: colors, Tail: tail, Speed: speed}
}

func (m *Comet) Reset() { m.pos, m.phase = 0, 0 }

func (m *Comet) Step(dt time.Duration) bool {
	n := m.c.Len()
	col := m.Colors[m.phase]
	head := int(m.pos)
	m.c.Level(1)
	for i := 0; i < n; i++ {
		k := head - i
		if k < 0 || k >= m.Tail {
			m.c.Set(i, types.Off)
			continue
		}
		f := float32(m.Tail-k) / float32(m.Tail)
		m.c.Set(i, types.RGBW{
			R: mathx.ScaleU8(col.R, f),
			G: mathx.ScaleU8(col.G, f),
			B: mathx.ScaleU8(col.B, f),
			W: mathx.ScaleU8(col.W, f),
		})
	}

	m.pos += m.Speed * dt.Seconds()
	// The sweep ends once the tail has left the strip.
	if m.pos < float64(n+m.Tail) {
		return false
	}
	m.pos = 0
	m.phase++
	if m.phase < len(m.Colors) {
		return false
	}
	m.phase = 0
	return true
}

// Pulse fades one colour up and back down once per Period.
type Pulse struct {
	c      *Canvas
	Color  types.RGBW
	Period time.Duration
	t      time.Duration
}

func NewPulse(c *Canvas, col types.RGBW, period time.Duration) *Pulse {
	if period <= 0 {
		period = time.Second
	}
	return &Pulse{c: c, Color: col, Period: period}
}

func (p *Pulse) Reset() { p.t = 0 }

func (p *Pulse) Step(dt time.Duration) bool {
	x := float64(p.t) / float64(p.Period)
	p.c.Level(float32(math.Sin(x * math.Pi)))
	p.c.Fill(p.Color)
	p.t += dt
	if p.t < p.Period {
		return false
	}
	p.t = 0
	return true
}

// SparklePulse lights random cells in palette colours, lets them decay, and
// breathes the whole strip's level. A cycle is one level period.
type SparklePulse struct {
	c       *Canvas
	Palette []types.RGBW
	Chance  float64 // per-frame probability of a new spark
	Decay   float32 // fraction kept per frame
	Period  time.Duration

	rng   *rand.Rand
	cells []types.RGBW
	t     time.Duration
}

func NewSparklePulse(c *Canvas, seed int64, period time.Duration, palette ...types.RGBW) *SparklePulse {
	if len(palette) == 0 {
		palette = []types.RGBW{types.White}
	}
	if period <= 0 {
		period = 4 * time.Second
	}
	return &SparklePulse{
		c:       c,
		Palette: palette,
		Chance:  0.35,
		Decay:   0.8,
		Period:  period,
		rng:     rand.New(rand.NewSource(seed)),
		cells:   make([]types.RGBW, c.Len()),
	}
}

func (s *SparklePulse) Reset() {
	s.t = 0
	for i := range s.cells {
		s.cells[i] = types.Off
	}
}

func (s *SparklePulse) Step(dt time.Duration) bool {
	for i, v := range s.cells {
		s.cells[i] = types.RGBW{
			R: mathx.ScaleU8(v.R, s.Decay),
			G: mathx.ScaleU8(v.G, s.Decay),
			B: mathx.ScaleU8(v.B, s.Decay),
			W: mathx.ScaleU8(v.W, s.Decay),
		}
	}
	if len(s.cells) > 0 && s.rng.Float64() < s.Chance {
		s.cells[s.rng.Intn(len(s.cells))] = s.Palette[s.rng.Intn(len(s.Palette))]
	}
	for i, v := range s.cells {
		s.c.Set(i, v)
	}

	x := float64(s.t) / float64(s.Period)
	s.c.Level(float32(0.5 + 0.5*math.Sin(2*math.Pi*x)))
	s.t += dt
	if s.t < s.Period {
		return false
	}
	s.t -= s.Period
	return true
}
