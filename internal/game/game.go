package game

import (
	"context"
	"fmt"
	"time"

	"delve/internal/config"
	"delve/internal/logger"
	"delve/internal/render"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

// Game drives an Engine from a tcell screen.
type Game struct {
	screen  tcell.Screen
	display *render.Screen
	engine  *Engine
	cfg     *config.Config
	seed    int64
	runID   string
	started time.Time
}

// New generates a dungeon and binds it to an initialised screen.
// The caller keeps ownership of the screen.
func New(ctx context.Context, screen tcell.Screen, cfg *config.Config, seed int64) (*Game, error) {
	gen, opts, err := buildOptions(cfg, seed)
	if err != nil {
		return nil, err
	}
	g := &Game{
		screen:  screen,
		engine:  NewEngine(ctx, gen, opts),
		cfg:     cfg,
		seed:    seed,
		runID:   newRunID(),
		started: time.Now(),
	}
	g.display = render.NewScreen(screen, cfg.Map.Width, cfg.Map.Height)
	g.engine.addMessage("Welcome to the dungeon. Arrows or hjkl move, f toggles the status bar, q quits.")
	logger.Log.WithFields(logrus.Fields{"run_id": g.runID, "seed": seed}).Info("run started")
	return g, nil
}

// Engine exposes the underlying turn engine.
func (g *Game) Engine() *Engine { return g.engine }

// Run is the main game loop. It returns when the player quits, the screen is
// finalised, or ctx is cancelled.
func (g *Game) Run(ctx context.Context) error {
	defer g.finish()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		g.draw()

		ev := g.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			g.screen.Sync()
		case *tcell.EventKey:
			action := KeyToAction(ev)
			if action == ActionToggleDisplayMode {
				g.display.ToggleFullscreen()
			}
			if g.engine.Step(ctx, action) == OutcomeExit {
				return nil
			}
		}
	}
}

func (g *Game) draw() {
	pos := g.engine.Player().Pos
	g.display.CenterOn(pos.X, pos.Y)
	render.DrawFrame(g.display, g.engine.World(), g.engine.Map(), g.engine.FOV(), render.DefaultPalette)
	g.display.SetStatus(statusLines(g.engine, 3))
	g.display.Present()
}

func (g *Game) finish() {
	g.engine.Close()
	if g.cfg.RunLog.Enabled {
		_ = saveRunLog(buildRunLog(g.runID, g.seed, g.started, g.engine))
	}
}

// statusLines renders the HUD text: a stat line and the last n messages.
func statusLines(e *Engine, n int) []string {
	p := e.Player()
	line := fmt.Sprintf("HP: %d/%d  ATK:%d DEF:%d  Turn: %d",
		p.Fighter.HP, p.Fighter.MaxHP, p.Fighter.Power, p.Fighter.Defense, e.Stats().Turns)
	if e.Status() == StatusPlayerDead {
		line += "  You are dead. Press q to quit."
	}
	lines := []string{line}
	msgs := e.Messages()
	start := max(len(msgs)-n, 0)
	return append(lines, msgs[start:]...)
}
