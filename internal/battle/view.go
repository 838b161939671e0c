package battle

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/crownquest/internal/entity"
)

// Painter draws a battle frame.
type Painter interface {
	PaintBattle(v View)
}

// ActorView is a combatant as it should be drawn this frame.
type ActorView struct {
	ID     int
	Name   string
	Symbol rune
	Color  tcell.Color
	X, Y   int // Resting position plus the animation offset
	Alpha  float32
	State  entity.AnimState
	HP     int
	MaxHP  int
}

// PopupView is a floating number.
type PopupView struct {
	Text string
	Kind PopupKind
	X, Y int
}

// FireView is one frame of a fire effect.
type FireView struct {
	X, Y  int
	Frame int
}

// OverlayView is the selection arrow and its menu.
type OverlayView struct {
	Mode    Mode
	Index   int
	Entries []string
	Targets []Target
}

// View is a read-only snapshot of everything the renderer needs.
type View struct {
	BattleID string
	Zone     string
	State    State
	Message  string

	Player  ActorView
	Enemies []ActorView // Live enemies first, then those still fading
	Overlay OverlayView
	Popups  []PopupView
	Fires   []FireView

	Health  entity.Meter
	Magic   entity.Meter
	Level   int
	Healing bool // The player is recovering health or magic
	Damaged bool // The player took damage from the last enemy hit
	Done    bool
}

func actorView(a *entity.Actor, color tcell.Color, hp, maxHP int) ActorView {
	dx, dy := a.Offset()
	return ActorView{
		ID:     a.ID,
		Name:   a.Name,
		Symbol: a.Symbol,
		Color:  color,
		X:      a.X + dx,
		Y:      a.Y + dy,
		Alpha:  a.Alpha(),
		State:  a.State(),
		HP:     hp,
		MaxHP:  maxHP,
	}
}

// View returns the snapshot of the current frame.
func (s *Session) View() View {
	stats := s.data.Stats
	v := View{
		BattleID: s.id,
		Zone:     s.zone,
		State:    s.state,
		Message:  s.info.Message(),
		Player:   actorView(&s.player.Actor, tcell.ColorYellow, stats.Health.Current, stats.Health.Maximum),
		Overlay: OverlayView{
			Mode:    s.overlay.Mode(),
			Index:   s.overlay.Index(),
			Entries: s.overlay.Entries(),
			Targets: s.overlay.Targets(),
		},
		Health:  stats.Health,
		Magic:   stats.Magic,
		Level:   stats.Level,
		Healing: s.player.Healing,
		Damaged: s.player.Damaged,
		Done:    s.done,
	}

	for _, e := range s.enemies {
		v.Enemies = append(v.Enemies, actorView(&e.Actor, e.Color(), e.HP, e.MaxHP))
	}
	for _, e := range s.fading {
		if e.Visible() {
			v.Enemies = append(v.Enemies, actorView(&e.Actor, e.Color(), e.HP, e.MaxHP))
		}
	}
	for _, p := range s.popups {
		v.Popups = append(v.Popups, PopupView{Text: p.Text, Kind: p.Kind, X: p.X, Y: p.Row()})
	}
	for _, f := range s.fires {
		v.Fires = append(v.Fires, FireView{X: f.X, Y: f.Y, Frame: f.Frame()})
	}
	return v
}
