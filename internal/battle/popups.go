package battle

import (
	"strconv"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// PopupKind selects how a popup number is drawn.
type PopupKind int

const (
	PopupDamage PopupKind = iota
	PopupHeal
	PopupMagic
)

// Popup and effect timings.
const (
	PopupSeconds = 0.9
	PopupRise    = 2
	FireSeconds  = 0.9
	FireFrames   = 4
)

// clock converts frame timestamps into tween deltas.
type clock struct {
	last    int64
	started bool
}

func (c *clock) step(now int64) float32 {
	var dt float32
	if c.started && now > c.last {
		dt = float32(now-c.last) / 1000
	}
	c.last = now
	c.started = true
	return dt
}

// Popup is a number that floats up from a combatant and disappears.
type Popup struct {
	Text string
	Kind PopupKind
	X, Y int

	rise    *gween.Tween
	offset  float32
	expired bool
	clock   clock
}

func newPopup(value int, kind PopupKind, x, y int) *Popup {
	return &Popup{
		Text: strconv.Itoa(value),
		Kind: kind,
		X:    x,
		Y:    y,
		rise: gween.New(0, -PopupRise, PopupSeconds, ease.OutQuad),
	}
}

func (p *Popup) update(now int64) {
	value, finished := p.rise.Update(p.clock.step(now))
	p.offset = value
	p.expired = finished
}

// Row returns the row the popup is currently drawn on.
func (p *Popup) Row() int {
	return p.Y + int(p.offset)
}

// FireEffect is the flame drawn over an enemy hit by Fire Blast.
type FireEffect struct {
	X, Y int

	frames  *gween.Tween
	frame   int
	expired bool
	clock   clock
}

func newFireEffect(x, y int) *FireEffect {
	return &FireEffect{
		X:      x,
		Y:      y,
		frames: gween.New(0, FireFrames, FireSeconds, ease.Linear),
	}
}

func (f *FireEffect) update(now int64) {
	value, finished := f.frames.Update(f.clock.step(now))
	f.frame = int(value)
	if f.frame >= FireFrames {
		f.frame = FireFrames - 1
	}
	f.expired = finished
}

// Frame returns the animation frame in [0, FireFrames).
func (f *FireEffect) Frame() int {
	return f.frame
}
