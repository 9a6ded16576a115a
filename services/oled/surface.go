// Package oled keeps the retained text fields of every page and draws the
// active page onto a monochrome panel.
package oled

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"envbadge/errcode"
	"envbadge/types"
)

var (
	on  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	off = color.RGBA{A: 0xff}
)

// clearer is implemented by panels with a cheap buffer reset (ssd1306).
type clearer interface{ ClearBuffer() }

type field struct {
	types.Field
	x int16
}

// Surface implements the renderer's text surface over a tinyfont panel.
type Surface struct {
	panel  drivers.Displayer
	font   tinyfont.Fonter
	fields []field
	index  map[types.FieldID]int
	active types.PageID
	width  int16
	height int16
}

// New registers every field up front; unknown IDs are ignored later.
func New(panel drivers.Displayer, font tinyfont.Fonter, fields []types.Field) *Surface {
	w, h := panel.Size()
	s := &Surface{
		panel:  panel,
		font:   font,
		fields: make([]field, len(fields)),
		index:  make(map[types.FieldID]int, len(fields)),
		width:  w,
		height: h,
	}
	for i, f := range fields {
		s.fields[i] = field{Field: f}
		s.index[f.ID] = i
	}
	return s
}

func (s *Surface) get(id types.FieldID) *field {
	i, ok := s.index[id]
	if !ok {
		return nil
	}
	return &s.fields[i]
}

func (s *Surface) Width() int16                  { return s.width }
func (s *Surface) Active() types.PageID          { return s.active }
func (s *Surface) SetActivePage(id types.PageID) { s.active = id }

func (s *Surface) SetText(id types.FieldID, text string) {
	if f := s.get(id); f != nil {
		f.Text = text
	}
}

// Text returns a field's current content.
func (s *Surface) Text(id types.FieldID) string {
	if f := s.get(id); f != nil {
		return f.Text
	}
	return ""
}

func (s *Surface) MoveTo(id types.FieldID, x int16) {
	if f := s.get(id); f != nil {
		f.x = x
	}
}

// MeasureWidth is the advance width of the field's text at its scale.
func (s *Surface) MeasureWidth(id types.FieldID) int16 {
	f := s.get(id)
	if f == nil || f.Text == "" {
		return 0
	}
	_, outbox := tinyfont.LineWidth(s.font, f.Text)
	return int16(outbox) * scaleOf(f.Field)
}

func scaleOf(f types.Field) int16 {
	if f.Scale < 2 {
		return 1
	}
	return int16(f.Scale)
}

// Flush redraws the active page and pushes it to the panel.
func (s *Surface) Flush() error {
	if c, ok := s.panel.(clearer); ok {
		c.ClearBuffer()
	} else {
		for y := int16(0); y < s.height; y++ {
			for x := int16(0); x < s.width; x++ {
				s.panel.SetPixel(x, y, off)
			}
		}
	}
	for i := range s.fields {
		f := &s.fields[i]
		if f.Page != s.active || f.Text == "" {
			continue
		}
		k := scaleOf(f.Field)
		// Field Y is the text's vertical centre; tinyfont wants a baseline.
		base := f.Y + 3*k
		if k == 1 {
			tinyfont.WriteLine(s.panel, s.font, f.x, base, f.Text, on)
			continue
		}
		sc := &scaled{d: s.panel, k: k, ox: f.x, oy: base}
		tinyfont.WriteLine(sc, s.font, f.x, base, f.Text, on)
	}
	if err := s.panel.Display(); err != nil {
		return errcode.Wrap("oled.Flush", err)
	}
	return nil
}

// scaled magnifies glyphs by k around the text origin.
type scaled struct {
	d      drivers.Displayer
	k      int16
	ox, oy int16
}

func (s *scaled) Size() (int16, int16) { return s.d.Size() }
func (s *scaled) Display() error       { return nil }

func (s *scaled) SetPixel(x, y int16, c color.RGBA) {
	bx := s.ox + (x-s.ox)*s.k
	by := s.oy + (y-s.oy)*s.k
	for dy := int16(0); dy < s.k; dy++ {
		for dx := int16(0); dx < s.k; dx++ {
			s.d.SetPixel(bx+dx, by+dy, c)
		}
	}
}
