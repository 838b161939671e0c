package game

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/crownquest/internal/battle"
	"github.com/samdwyer/crownquest/internal/combat"
	"github.com/samdwyer/crownquest/internal/entity"
	"github.com/samdwyer/crownquest/internal/gamedata"
	"github.com/samdwyer/crownquest/internal/notify"
	"github.com/samdwyer/crownquest/internal/progress"
	"github.com/samdwyer/crownquest/internal/telemetry"
	"github.com/samdwyer/crownquest/internal/ui"
)

// display is everything the game draws to. *ui.Renderer implements it.
type display interface {
	battle.Painter
	RenderExplore(v ui.ExploreView)
}

// Game holds the entire game state.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	display  display
	log      *ui.CombatLog
	store    *progress.Store
	rng      *rand.Rand
	resolver *combat.Resolver

	zones   *gamedata.ZoneRegistry
	enemies *gamedata.EnemyRegistry
	items   *gamedata.ItemRegistry

	data    *progress.GameData
	party   *entity.Party
	battle  *battle.Session
	state   State
	message string
	running bool
}

// New creates a new game instance on the terminal.
func New(cfg Config) (*Game, error) {
	store := progress.Disabled()
	if cfg.Persist {
		s, err := progress.Open(cfg.AppName)
		if err != nil {
			// Not fatal - the game runs without saves
			log.Printf("Warning: save store unavailable: %v", err)
		} else {
			store = s
		}
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	combatLog := ui.NewCombatLog(ui.DefaultLogLines)
	g, err := newGame(cfg, ui.NewRenderer(screen, combatLog), combatLog, store)
	if err != nil {
		screen.Close()
		return nil, err
	}
	g.screen = screen
	return g, nil
}

// newGame loads the data tables and the save, and places the party.
func newGame(cfg Config, d display, combatLog *ui.CombatLog, store *progress.Store) (*Game, error) {
	zones, err := gamedata.LoadZoneRegistry()
	if err != nil {
		return nil, err
	}
	enemies, err := gamedata.LoadEnemyRegistry()
	if err != nil {
		return nil, err
	}
	items, err := gamedata.LoadItemRegistry()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(zones); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	data, err := store.Load()
	if err != nil {
		log.Printf("Warning: starting a new game: %v", err)
	}
	if data == nil {
		def, err := gamedata.LoadNewGame()
		if err != nil {
			return nil, err
		}
		if data, err = progress.NewGame(def, items); err != nil {
			return nil, err
		}
	}
	if cfg.Zone != "" {
		data.Zone = cfg.Zone
	}
	data.BattleType = ""
	data.LastState = progress.StateExplore

	g := &Game{
		cfg:      cfg,
		display:  d,
		log:      combatLog,
		store:    store,
		rng:      rng,
		resolver: combat.NewResolver(rng),
		zones:    zones,
		enemies:  enemies,
		items:    items,
		data:     data,
		party:    entity.NewParty(FieldWidth/2, FieldHeight/2),
		state:    StateExplore,
		running:  true,
	}
	if g.data.BattleCounter <= 0 {
		g.rollEncounter()
	}
	return g, nil
}

// Run executes the main game loop until the player quits or ctx ends.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	// Initialize game (traced)
	_, initSpan := tracer.Start(ctx, "game.init")
	initSpan.SetAttributes(
		attribute.String("zone", g.data.Zone),
		attribute.Int("player.level", g.data.Stats.Level),
		attribute.Int("battle_counter", g.data.BattleCounter),
		attribute.Bool("persist", g.store.Enabled()),
		attribute.Int("frame_rate", g.cfg.FrameRate),
	)
	initSpan.End()

	// Terminal events are pumped into a channel so the frame ticker never
	// blocks on input.
	events := make(chan tcell.Event, 64)
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-stop:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(g.cfg.FrameRate))
	defer ticker.Stop()

	start := time.Now()
	var in frameInput
	for g.running {
		select {
		case <-ctx.Done():
			g.running = false

		case ev, ok := <-events:
			if !ok {
				g.running = false
				break
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				in.addKey(ev)
			case *tcell.EventResize:
				g.screen.Sync()
			}

		case <-ticker.C:
			g.update(ctx, in, time.Since(start).Milliseconds())
			in = frameInput{}
		}
	}

	g.save()
	g.Close()
	return nil
}

// update runs one frame of the current state.
func (g *Game) update(ctx context.Context, in frameInput, now int64) {
	if in.quit {
		g.running = false
		return
	}

	switch g.state {
	case StateExplore:
		g.updateExplore(ctx, in, now)
	case StateBattle:
		g.battle.Update(g.display, in.keys, now)
		if g.battle.Done() {
			g.finishBattle()
		}
	}
}

// startBattle opens a battle in the current zone. A zone missing from the
// difficulty table is a data error; it is logged and the party keeps walking.
func (g *Game) startBattle(ctx context.Context, now int64) {
	g.log.Clear()
	g.data.LastState = progress.StateExplore

	session, err := battle.New(ctx, battle.Deps{
		Data:      g.data,
		Zones:     g.zones,
		Enemies:   g.enemies,
		Rng:       g.rng,
		Listeners: []notify.Listener{g.log},
	}, now)
	if err != nil {
		log.Printf("Warning: could not start battle: %v", err)
		g.message = "Nothing stirs here."
		g.data.BattleType = ""
		g.rollEncounter()
		return
	}

	g.battle = session
	g.state = StateBattle
}

// finishBattle returns to the overworld once the session is done.
func (g *Game) finishBattle() {
	outcome := g.battle.Outcome()
	log.Printf("Battle %s %s after %d turns (%d experience)",
		outcome.BattleID, outcome.Result, outcome.Turns, outcome.Experience)

	switch {
	case g.data.Stats.Health.Current <= 0:
		// The battle itself has no defeat phase
		g.data.Revive()
		g.rollEncounter()
		g.message = "You collapse, and wake up restored."
	case outcome.BossDefeated:
		g.message = "The evil wizard is defeated! The crown is yours."
	case outcome.Result == battle.ResultWon:
		g.message = fmt.Sprintf("Victory! %d experience.", outcome.Experience)
	default:
		g.message = "You got away."
	}

	g.battle = nil
	g.state = StateExplore
	g.save()
}

func (g *Game) save() {
	if err := g.store.Save(g.data); err != nil {
		g.message = "Could not save progress."
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
		g.screen = nil
	}
}
