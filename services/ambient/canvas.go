package ambient

import (
	"envbadge/types"
	"envbadge/x/mathx"
)

// Strip is the pixel strip as the animator needs it.
type Strip interface {
	Len() int
	Set(i int, c types.RGBW)
	Fill(c types.RGBW)
	SetBrightness(f float32)
	Show() error
}

// Canvas is the strip seen through a brightness ceiling. Animations set a
// level in [0, 1] and the strip receives level*ceiling.
type Canvas struct {
	strip   Strip
	ceiling float32
	level   float32
}

func NewCanvas(s Strip, ceiling float32) *Canvas {
	return &Canvas{strip: s, ceiling: mathx.Unit(ceiling), level: 1}
}

func (c *Canvas) Len() int                  { return c.strip.Len() }
func (c *Canvas) Set(i int, col types.RGBW) { c.strip.Set(i, col) }
func (c *Canvas) Fill(col types.RGBW)       { c.strip.Fill(col) }
func (c *Canvas) Ceiling() float32          { return c.ceiling }

// Level sets the relative brightness.
func (c *Canvas) Level(f float32) {
	c.level = mathx.Unit(f)
	c.strip.SetBrightness(c.ceiling * c.level)
}

// SetCeiling rescales the current level to a new ceiling.
func (c *Canvas) SetCeiling(v float32) {
	c.ceiling = mathx.Unit(v)
	c.strip.SetBrightness(c.ceiling * c.level)
}
