package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/crownquest/internal/battle"
	"github.com/samdwyer/crownquest/internal/entity"
)

// Layout below the battle field.
const (
	infoBoxWidth   = 50
	panelHeight    = 7
	logPanelX      = battle.FieldWidth + 2
	logPanelMinCol = logPanelX + 24
)

var (
	fieldBackground = tcell.NewRGBColor(10, 10, 40)
	fireGlyphs      = []rune{'^', '*', '#', '~'}
)

// ExploreView is what the overworld screen shows.
type ExploreView struct {
	PartyX, PartyY int
	Symbol         rune
	Width, Height  int // Size of the field
	ZoneName       string
	BattleCounter  int
	Health, Magic  entity.Meter
	Level          int
	CrownQuest     bool
	Message        string
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	log    *CombatLog
}

// NewRenderer creates a new renderer for the given screen. The combat log
// is optional; it is drawn beside the battle when the terminal is wide
// enough.
func NewRenderer(screen *Screen, log *CombatLog) *Renderer {
	return &Renderer{screen: screen, log: log}
}

// PaintBattle draws one battle frame. It implements battle.Painter.
func (r *Renderer) PaintBattle(v battle.View) {
	r.screen.Clear()

	bg := tcell.StyleDefault.Background(fieldBackground)
	r.screen.Fill(0, 0, battle.FieldWidth, battle.FieldHeight, ' ', bg)

	for _, e := range v.Enemies {
		r.drawActor(e, bg)
	}
	for _, f := range v.Fires {
		r.drawFire(f, bg)
	}
	r.drawPlayer(v, bg)
	if v.Overlay.Mode == battle.ModeEnemies {
		r.drawTargetArrow(v.Overlay, bg)
	}

	r.drawInfoBox(v)
	r.drawSelectBox(v.Overlay)
	r.drawPopups(v.Popups, bg)
	r.drawLog()

	r.screen.Show()
}

func (r *Renderer) drawActor(a battle.ActorView, bg tcell.Style) {
	if a.State == entity.Gone {
		return
	}
	color := a.Color
	if a.Alpha < 0.5 {
		color = tcell.ColorDarkGray
	}
	style := bg.Foreground(color).Bold(a.Alpha >= 1)
	r.screen.SetContent(a.X, a.Y, a.Symbol, style)
}

func (r *Renderer) drawPlayer(v battle.View, bg tcell.Style) {
	color := tcell.ColorYellow
	switch {
	case v.Damaged:
		color = tcell.ColorRed
	case v.Healing:
		color = tcell.ColorGreen
	}
	p := v.Player
	r.screen.SetContent(p.X, p.Y, p.Symbol, bg.Foreground(color).Bold(true))
}

func (r *Renderer) drawFire(f battle.FireView, bg tcell.Style) {
	glyph := fireGlyphs[f.Frame%len(fireGlyphs)]
	style := bg.Foreground(tcell.ColorOrange)
	r.screen.SetContent(f.X-1, f.Y, glyph, style)
	r.screen.SetContent(f.X+1, f.Y, glyph, style)
	r.screen.SetContent(f.X, f.Y-1, glyph, style)
}

func (r *Renderer) drawTargetArrow(o battle.OverlayView, bg tcell.Style) {
	if o.Index >= len(o.Targets) {
		return
	}
	t := o.Targets[o.Index]
	r.screen.SetContent(t.X-2, t.Y, '▶', bg.Foreground(tcell.ColorWhite).Bold(true))
}

func (r *Renderer) drawPopups(popups []battle.PopupView, bg tcell.Style) {
	for _, p := range popups {
		color := tcell.ColorRed
		switch p.Kind {
		case battle.PopupHeal:
			color = tcell.ColorGreen
		case battle.PopupMagic:
			color = tcell.ColorBlue
		}
		r.screen.SetText(p.X, p.Y, p.Text, bg.Foreground(color).Bold(true))
	}
}

func (r *Renderer) drawInfoBox(v battle.View) {
	y := battle.FieldHeight
	r.drawBox(0, y, infoBoxWidth, panelHeight)

	text := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	r.screen.SetText(2, y+1, v.Message, text)

	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)
	x := r.screen.SetText(2, y+panelHeight-3, "HP ", dim)
	r.screen.SetText(x, y+panelHeight-3, fmt.Sprintf("%d/%d", v.Health.Current, v.Health.Maximum), meterStyle(v.Health))
	x = r.screen.SetText(2, y+panelHeight-2, "MP ", dim)
	x = r.screen.SetText(x, y+panelHeight-2, fmt.Sprintf("%d/%d", v.Magic.Current, v.Magic.Maximum), text)
	r.screen.SetText(x+3, y+panelHeight-2, fmt.Sprintf("Level %d", v.Level), dim)
}

func (r *Renderer) drawSelectBox(o battle.OverlayView) {
	x, y := infoBoxWidth, battle.FieldHeight
	r.drawBox(x, y, battle.FieldWidth-infoBoxWidth, panelHeight)

	if o.Mode == battle.ModeHidden || o.Mode == battle.ModeEnemies {
		return
	}

	text := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	// Keep the arrow on screen when the list is taller than the box
	first := 0
	if rows := panelHeight - 2; o.Index >= rows {
		first = o.Index - rows + 1
	}
	for i := first; i < len(o.Entries) && i-first < panelHeight-2; i++ {
		row := y + 1 + i - first
		if i == o.Index {
			r.screen.SetContent(x+2, row, '▶', text.Bold(true))
		}
		r.screen.SetText(x+4, row, o.Entries[i], text)
	}
}

func (r *Renderer) drawLog() {
	if r.log == nil {
		return
	}
	if w, _ := r.screen.Size(); w < logPanelMinCol {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	r.screen.SetText(logPanelX, 0, "Combat log", style.Bold(true))
	for i, line := range r.log.Lines() {
		r.screen.SetText(logPanelX, i+1, line, style)
	}
}

// drawBox draws a single-line border.
func (r *Renderer) drawBox(x, y, w, h int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for col := x + 1; col < x+w-1; col++ {
		r.screen.SetContent(col, y, tcell.RuneHLine, style)
		r.screen.SetContent(col, y+h-1, tcell.RuneHLine, style)
	}
	for row := y + 1; row < y+h-1; row++ {
		r.screen.SetContent(x, row, tcell.RuneVLine, style)
		r.screen.SetContent(x+w-1, row, tcell.RuneVLine, style)
	}
	r.screen.SetContent(x, y, tcell.RuneULCorner, style)
	r.screen.SetContent(x+w-1, y, tcell.RuneURCorner, style)
	r.screen.SetContent(x, y+h-1, tcell.RuneLLCorner, style)
	r.screen.SetContent(x+w-1, y+h-1, tcell.RuneLRCorner, style)
}

// meterStyle colors a meter by how full it is.
func meterStyle(m entity.Meter) tcell.Style {
	style := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	switch {
	case m.Maximum <= 0 || m.Current*4 <= m.Maximum:
		style = style.Foreground(tcell.ColorRed)
	case m.Current*2 <= m.Maximum:
		style = style.Foreground(tcell.ColorYellow)
	}
	return style
}

// RenderExplore draws the overworld field and the party.
func (r *Renderer) RenderExplore(v ExploreView) {
	r.screen.Clear()

	grass := tcell.StyleDefault.Foreground(tcell.ColorDarkGreen)
	for y := 0; y < v.Height; y++ {
		for x := 0; x < v.Width; x++ {
			r.screen.SetContent(x, y, '.', grass)
		}
	}
	partyStyle := tcell.StyleDefault.
		Foreground(tcell.ColorYellow).
		Bold(true)
	r.screen.SetContent(v.PartyX, v.PartyY, v.Symbol, partyStyle)

	status := fmt.Sprintf("%s  HP %d/%d  MP %d/%d  Level %d  Encounter in %d",
		v.ZoneName, v.Health.Current, v.Health.Maximum, v.Magic.Current, v.Magic.Maximum, v.Level, v.BattleCounter)
	if v.CrownQuest {
		status += "  [Crown]"
	}
	r.RenderMessage(status, v.Height+1)
	r.RenderMessage("arrows move  1-5 zone  b boss  q quit", v.Height+2)
	if v.Message != "" {
		r.RenderMessage(v.Message, v.Height+3)
	}

	r.screen.Show()
}

// RenderMessage displays a message at the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	r.screen.SetText(0, y, msg, style)
}
