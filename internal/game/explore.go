package game

import (
	"context"
	"fmt"
	"log"

	"github.com/samdwyer/crownquest/internal/ui"
)

// Overworld field size in cells.
const (
	FieldWidth  = 60
	FieldHeight = 16
)

// Encounter counter bounds, in steps.
const (
	minEncounterSteps = 50
	maxEncounterSteps = 255
)

// updateExplore handles one overworld frame.
func (g *Game) updateExplore(ctx context.Context, in frameInput, now int64) {
	for _, r := range in.runes {
		switch {
		case r == 'q' || r == 'Q':
			g.running = false
			return
		case r >= '1' && r <= '9':
			g.selectZone(int(r - '1'))
		case r == 'b' || r == 'B':
			g.challengeBoss(ctx, now)
		}
		if g.state != StateExplore {
			return
		}
	}

	for _, s := range in.steps {
		if !g.walk(s.dx, s.dy) {
			continue
		}
		g.data.BattleCounter--
		if g.data.BattleCounter <= 0 {
			g.startBattle(ctx, now)
			return
		}
	}

	g.display.RenderExplore(g.exploreView())
}

// walk moves the party by one cell if the target is inside the field.
func (g *Game) walk(dx, dy int) bool {
	x, y := g.party.X+dx, g.party.Y+dy
	if x < 0 || y < 0 || x >= FieldWidth || y >= FieldHeight {
		return false
	}
	g.party.Move(dx, dy)
	return true
}

// selectZone switches to the i-th zone in sorted order.
func (g *Game) selectZone(i int) {
	ids := g.zones.IDs()
	if i < 0 || i >= len(ids) {
		return
	}
	g.data.Zone = ids[i]
	g.message = fmt.Sprintf("Entered %s.", g.zoneName())
}

// challengeBoss starts the scripted boss battle of the current zone.
func (g *Game) challengeBoss(ctx context.Context, now int64) {
	zone, err := g.zones.Get(g.data.Zone)
	if err != nil || zone.Boss == "" {
		g.message = "There is no boss here."
		return
	}
	g.data.BattleType = zone.Boss
	g.startBattle(ctx, now)
}

func (g *Game) rollEncounter() {
	g.data.BattleCounter = g.resolver.Range(minEncounterSteps, maxEncounterSteps)
}

func (g *Game) zoneName() string {
	zone, err := g.zones.Get(g.data.Zone)
	if err != nil {
		log.Printf("Warning: %v", err)
		return g.data.Zone
	}
	return zone.Name
}

func (g *Game) exploreView() ui.ExploreView {
	return ui.ExploreView{
		PartyX:        g.party.X,
		PartyY:        g.party.Y,
		Symbol:        g.party.Symbol,
		Width:         FieldWidth,
		Height:        FieldHeight,
		ZoneName:      g.zoneName(),
		BattleCounter: g.data.BattleCounter,
		Health:        g.data.Stats.Health,
		Magic:         g.data.Stats.Magic,
		Level:         g.data.Stats.Level,
		CrownQuest:    g.data.CrownQuest,
		Message:       g.message,
	}
}
