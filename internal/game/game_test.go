package game

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/crownquest/internal/battle"
	"github.com/samdwyer/crownquest/internal/progress"
	"github.com/samdwyer/crownquest/internal/ui"
)

const frame = 33

// fakeDisplay counts what the game asked to draw.
type fakeDisplay struct {
	battleFrames  int
	exploreFrames int
	lastExplore   ui.ExploreView
}

func (d *fakeDisplay) PaintBattle(battle.View) { d.battleFrames++ }

func (d *fakeDisplay) RenderExplore(v ui.ExploreView) {
	d.exploreFrames++
	d.lastExplore = v
}

func newTestGame(t *testing.T) (*Game, *fakeDisplay) {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = 42
	cfg.Persist = false

	d := &fakeDisplay{}
	g, err := newGame(cfg, d, ui.NewCombatLog(0), progress.Disabled())
	if err != nil {
		t.Fatalf("newGame() error: %v", err)
	}
	return g, d
}

// tick runs one frame with the given input.
func tick(g *Game, in frameInput, now int64) int64 {
	now += frame
	g.update(context.Background(), in, now)
	return now
}

func idle(g *Game, now int64, n int) int64 {
	for i := 0; i < n; i++ {
		now = tick(g, frameInput{}, now)
	}
	return now
}

func walkRight(n int) frameInput {
	var in frameInput
	for i := 0; i < n; i++ {
		in.steps = append(in.steps, step{1, 0})
	}
	return in
}

// runAway picks Run from the action menu and waits for the battle to end.
func runAway(t *testing.T, g *Game, now int64) int64 {
	t.Helper()
	now = idle(g, now, 2)
	for i := 0; i < 3; i++ {
		now = tick(g, frameInput{keys: battle.Keys{Down: true}}, now)
		now = idle(g, now, 1)
	}
	now = tick(g, frameInput{keys: battle.Keys{Confirm: true}}, now)

	for i := 0; i < 1000 && g.state == StateBattle; i++ {
		now = idle(g, now, 1)
	}
	if g.state != StateExplore {
		t.Fatalf("battle did not end, state = %v", g.state)
	}
	return now
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateExplore, "explore"},
		{StateBattle, "battle"},
		{State(9), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.expected {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.expected)
		}
	}
}

func TestAddKey(t *testing.T) {
	tests := []struct {
		name  string
		ev    *tcell.EventKey
		check func(frameInput) bool
	}{
		{"space confirms", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone),
			func(in frameInput) bool { return in.keys.Confirm && len(in.runes) == 0 }},
		{"enter cancels", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone),
			func(in frameInput) bool { return in.keys.Cancel }},
		{"up steps and moves the cursor", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone),
			func(in frameInput) bool { return in.keys.Up && len(in.steps) == 1 && in.steps[0] == step{0, -1} }},
		{"left only steps", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone),
			func(in frameInput) bool { return !in.keys.Up && !in.keys.Down && in.steps[0] == step{-1, 0} }},
		{"escape quits", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
			func(in frameInput) bool { return in.quit }},
		{"letters are kept", tcell.NewEventKey(tcell.KeyRune, 'b', tcell.ModNone),
			func(in frameInput) bool { return len(in.runes) == 1 && in.runes[0] == 'b' }},
	}

	for _, tt := range tests {
		var in frameInput
		in.addKey(tt.ev)
		if !tt.check(in) {
			t.Errorf("%s: got %+v", tt.name, in)
		}
	}
}

func TestNewGameStartsInExplore(t *testing.T) {
	g, d := newTestGame(t)

	if g.state != StateExplore {
		t.Errorf("state = %v, want explore", g.state)
	}
	if g.data.Zone != "overworld" {
		t.Errorf("zone = %q, want overworld", g.data.Zone)
	}

	idle(g, 0, 1)
	if d.exploreFrames != 1 {
		t.Fatalf("explore frames = %d, want 1", d.exploreFrames)
	}
	if d.lastExplore.ZoneName != "Overworld" || d.lastExplore.BattleCounter != 50 {
		t.Errorf("explore view = %+v, want Overworld with 50 steps to go", d.lastExplore)
	}
}

func TestWalkCountsDownToBattle(t *testing.T) {
	g, d := newTestGame(t)
	g.data.BattleCounter = 3

	now := tick(g, walkRight(2), 0)
	if g.state != StateExplore || g.data.BattleCounter != 1 {
		t.Fatalf("after 2 steps: state %v, counter %d; want explore, 1", g.state, g.data.BattleCounter)
	}
	if g.party.X != FieldWidth/2+2 {
		t.Errorf("party x = %d, want %d", g.party.X, FieldWidth/2+2)
	}

	tick(g, walkRight(5), now)
	if g.state != StateBattle || g.battle == nil {
		t.Fatalf("state = %v, want battle after the counter reached zero", g.state)
	}
	// Remaining steps in the frame are dropped once the battle starts
	if g.party.X != FieldWidth/2+3 {
		t.Errorf("party x = %d, want %d", g.party.X, FieldWidth/2+3)
	}
	if d.battleFrames != 0 {
		t.Errorf("battle frames = %d, want 0 before the first battle update", d.battleFrames)
	}
}

func TestWalkStopsAtEdge(t *testing.T) {
	g, _ := newTestGame(t)
	g.party.X = FieldWidth - 1
	counter := g.data.BattleCounter

	tick(g, walkRight(1), 0)
	if g.party.X != FieldWidth-1 {
		t.Errorf("party x = %d, want %d", g.party.X, FieldWidth-1)
	}
	if g.data.BattleCounter != counter {
		t.Errorf("counter = %d, want %d (blocked steps are free)", g.data.BattleCounter, counter)
	}
}

func TestSelectZone(t *testing.T) {
	g, _ := newTestGame(t)
	ids := g.zones.IDs()

	tick(g, frameInput{runes: []rune{'3'}}, 0)
	if g.data.Zone != ids[2] {
		t.Errorf("zone = %q, want %q", g.data.Zone, ids[2])
	}

	tick(g, frameInput{runes: []rune{'9'}}, 0)
	if g.data.Zone != ids[2] {
		t.Errorf("zone = %q, want unchanged %q", g.data.Zone, ids[2])
	}
}

func TestChallengeBoss(t *testing.T) {
	g, _ := newTestGame(t)

	tick(g, frameInput{runes: []rune{'b'}}, 0)
	if g.state != StateExplore || g.message != "There is no boss here." {
		t.Fatalf("overworld boss: state %v, message %q", g.state, g.message)
	}

	g.data.Zone = "dungeon4"
	tick(g, frameInput{runes: []rune{'b'}}, 0)
	if g.state != StateBattle {
		t.Fatalf("state = %v, want battle", g.state)
	}
	enemies := g.battle.Enemies()
	if len(enemies) != 1 || enemies[0].Def.ID != "evilwizard" {
		t.Errorf("boss battle enemies = %d, want one evilwizard", len(enemies))
	}
}

func TestUnknownZoneKeepsExploring(t *testing.T) {
	g, _ := newTestGame(t)
	g.data.Zone = "castle"
	g.data.BattleCounter = 1

	tick(g, walkRight(1), 0)
	if g.state != StateExplore {
		t.Fatalf("state = %v, want explore", g.state)
	}
	if g.message != "Nothing stirs here." {
		t.Errorf("message = %q", g.message)
	}
	if c := g.data.BattleCounter; c < minEncounterSteps || c > maxEncounterSteps {
		t.Errorf("counter = %d, want re-rolled within [%d, %d]", c, minEncounterSteps, maxEncounterSteps)
	}
}

func TestRunAwayReturnsToExplore(t *testing.T) {
	g, d := newTestGame(t)
	g.data.Zone = "dungeon"
	g.data.BattleCounter = 1

	now := tick(g, walkRight(1), 0)
	runAway(t, g, now)

	if g.battle != nil {
		t.Error("battle session should be released")
	}
	if g.data.LastState != progress.StateBattle {
		t.Errorf("LastState = %q, want battle", g.data.LastState)
	}
	if c := g.data.BattleCounter; c < minEncounterSteps || c > maxEncounterSteps {
		t.Errorf("counter = %d, want re-rolled", c)
	}
	if d.battleFrames == 0 {
		t.Error("battle frames should have been painted")
	}
	if len(g.log.Lines()) == 0 {
		t.Error("combat log should hold the battle's events")
	}
}

func TestDefeatRevives(t *testing.T) {
	g, _ := newTestGame(t)
	g.data.Zone = "dungeon"
	g.data.BattleCounter = 1

	now := tick(g, walkRight(1), 0)
	g.data.Stats.Health.Current = 0
	runAway(t, g, now)

	if g.data.Stats.Health.Current != g.data.Stats.Health.Maximum {
		t.Errorf("health = %d, want revived to %d", g.data.Stats.Health.Current, g.data.Stats.Health.Maximum)
	}
	if g.data.Stats.Magic.Current != g.data.Stats.Magic.Maximum {
		t.Errorf("magic = %d, want full", g.data.Stats.Magic.Current)
	}
	if g.message != "You collapse, and wake up restored." {
		t.Errorf("message = %q", g.message)
	}
}

func TestQuit(t *testing.T) {
	g, _ := newTestGame(t)
	tick(g, frameInput{runes: []rune{'q'}}, 0)
	if g.running {
		t.Error("q should stop the game in explore")
	}

	g, _ = newTestGame(t)
	g.data.BattleCounter = 1
	tick(g, walkRight(1), 0)
	tick(g, frameInput{quit: true}, frame)
	if g.running {
		t.Error("escape should stop the game during a battle")
	}
}
