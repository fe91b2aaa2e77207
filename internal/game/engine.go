package game

import (
	"context"
	"fmt"
	"maps"
	"strings"

	"delve/internal/component"
	"delve/internal/ecs"
	"delve/internal/factory"
	"delve/internal/fov"
	"delve/internal/gamemap"
	"delve/internal/generate"
	"delve/internal/logger"
	"delve/internal/system"
	"delve/internal/telemetry"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// maxMessages bounds the message log.
const maxMessages = 50

// State is the turn engine's position in the turn cycle.
type State uint8

const (
	StateAwaitingInput State = iota
	StateResolvingPlayerAction
	StateResolvingAIPhase
	StateExited
)

func (s State) String() string {
	switch s {
	case StateAwaitingInput:
		return "awaiting-input"
	case StateResolvingPlayerAction:
		return "resolving-player-action"
	case StateResolvingAIPhase:
		return "resolving-ai-phase"
	case StateExited:
		return "exited"
	}
	return fmt.Sprintf("State(%d)", s)
}

// Outcome is the result of one player action.
type Outcome uint8

const (
	OutcomeTookTurn Outcome = iota
	OutcomeDidntTakeTurn
	OutcomeExit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeTookTurn:
		return "took-turn"
	case OutcomeDidntTakeTurn:
		return "didnt-take-turn"
	case OutcomeExit:
		return "exit"
	}
	return fmt.Sprintf("Outcome(%d)", o)
}

// Status is what the outside world sees of a running game.
type Status uint8

const (
	StatusPlaying Status = iota
	StatusPlayerDead
	StatusExited
)

// Options configure an Engine.
type Options struct {
	FOVRadius  int
	LightWalls bool
	Algorithm  fov.Algorithm
	// Cache, when set, memoises visible sets and is closed by Engine.Close.
	Cache *fov.Cache
}

// FieldOfView is the visibility collaborator the engine recomputes after the
// player moves. *fov.Map implements it.
type FieldOfView interface {
	Compute(ox, oy, radius int, lightWalls bool, algo fov.Algorithm)
	InFov(x, y int) bool
	VisibleCount() int
	Close()
}

// RunStats accumulates statistics for the run log.
type RunStats struct {
	Turns        int
	Kills        map[string]int // species name → kill count
	DamageDealt  int
	DamageTaken  int
	CauseOfDeath string
}

// Engine owns one game: the map, the entity registry and the turn cycle.
// It is not safe for concurrent use.
type Engine struct {
	world    *ecs.World
	gmap     *gamemap.GameMap
	fovMap   FieldOfView
	playerID ecs.EntityID
	opts     Options
	state    State

	fovOrigin component.Position
	fovValid  bool

	messages []string
	stats    RunStats
}

// NewEngine generates a dungeon from gen and places the player and monsters.
func NewEngine(ctx context.Context, gen *generate.Config, opts Options) *Engine {
	gmap, placement := generate.Generate(ctx, gen)
	return NewFromMap(gmap, placement, opts)
}

// NewFromMap builds an Engine around an existing map. The player is
// registered first, then the monsters in placement order.
func NewFromMap(gmap *gamemap.GameMap, placement generate.Placement, opts Options) *Engine {
	w := ecs.NewWorld()
	playerID := factory.NewPlayer(w, placement.PlayerX, placement.PlayerY)
	for _, m := range placement.Monsters {
		factory.NewMonster(w, m.Species, m.X, m.Y)
	}

	fovMap := fov.FromGameMap(gmap)
	if opts.Cache != nil {
		fovMap.WithCache(opts.Cache)
	}
	e := &Engine{
		world:    w,
		gmap:     gmap,
		fovMap:   fovMap,
		playerID: playerID,
		opts:     opts,
		state:    StateAwaitingInput,
		stats:    RunStats{Kills: make(map[string]int)},
	}
	e.refreshFOV()

	logger.Log.WithFields(logrus.Fields{
		"rooms":    len(gmap.Rooms),
		"entities": w.Len(),
		"spawn_x":  placement.PlayerX,
		"spawn_y":  placement.PlayerY,
	}).Info("dungeon ready")
	return e
}

// Close releases the visibility cache.
func (e *Engine) Close() {
	e.fovMap.Close()
}

// World returns the entity registry.
func (e *Engine) World() *ecs.World { return e.world }

// Map returns the dungeon grid.
func (e *Engine) Map() *gamemap.GameMap { return e.gmap }

// FOV returns the player's current field of view.
func (e *Engine) FOV() FieldOfView { return e.fovMap }

// PlayerID returns the player's registry handle.
func (e *Engine) PlayerID() ecs.EntityID { return e.playerID }

// State returns the position in the turn cycle.
func (e *Engine) State() State { return e.state }

// Stats returns a snapshot of the run statistics. The kill map is a copy.
func (e *Engine) Stats() RunStats {
	s := e.stats
	s.Kills = maps.Clone(e.stats.Kills)
	return s
}

// Player returns the player entity.
func (e *Engine) Player() *ecs.Entity { return e.world.Get(e.playerID) }

// Messages returns the message log, oldest first.
func (e *Engine) Messages() []string { return e.messages }

// Status reports whether the game is running, lost or over.
func (e *Engine) Status() Status {
	switch {
	case e.state == StateExited:
		return StatusExited
	case !e.Player().Alive:
		return StatusPlayerDead
	}
	return StatusPlaying
}

// Step resolves one player action and, when it cost a turn and the player
// lives, one AI phase. Once the engine has exited every Step returns OutcomeExit.
func (e *Engine) Step(ctx context.Context, a Action) Outcome {
	if e.state == StateExited {
		return OutcomeExit
	}
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "turn.step")
	defer span.End()

	e.state = StateResolvingPlayerAction
	outcome := e.handleAction(a)

	switch outcome {
	case OutcomeExit:
		e.state = StateExited
	case OutcomeTookTurn:
		e.stats.Turns++
		e.refreshFOV()
		if e.Player().Alive {
			e.state = StateResolvingAIPhase
			e.runAIPhase()
		}
		e.state = StateAwaitingInput
	default:
		e.state = StateAwaitingInput
	}

	span.SetAttributes(
		attribute.String("turn.action", a.String()),
		attribute.String("turn.outcome", outcome.String()),
		attribute.Int("turn.number", e.stats.Turns),
		attribute.Int("player.hp", e.Player().Fighter.HP),
		attribute.Int("fov.visible", e.fovMap.VisibleCount()),
	)
	logger.Log.WithFields(logrus.Fields{
		"turn":    e.stats.Turns,
		"action":  a.String(),
		"outcome": outcome.String(),
	}).Debug("step")
	return outcome
}

func (e *Engine) handleAction(a Action) Outcome {
	switch a {
	case ActionQuit:
		return OutcomeExit
	case ActionToggleDisplayMode:
		return OutcomeDidntTakeTurn
	case ActionMoveUp, ActionMoveDown, ActionMoveLeft, ActionMoveRight:
		if !e.Player().Alive {
			return OutcomeDidntTakeTurn
		}
		dx, dy := actionToDelta(a)
		e.playerMoveOrAttack(dx, dy)
		return OutcomeTookTurn
	}
	return OutcomeDidntTakeTurn
}

// playerMoveOrAttack attacks a fighter standing on the destination, or moves there.
// Walking into a wall still costs the turn.
func (e *Engine) playerMoveOrAttack(dx, dy int) {
	p := e.Player()
	x, y := p.Pos.X+dx, p.Pos.Y+dy
	if target, ok := e.world.FighterAt(x, y); ok && target != e.playerID {
		e.resolveAttack(e.playerID, target)
		return
	}
	system.MoveBy(e.world, e.gmap, e.playerID, dx, dy)
}

// runAIPhase gives every entity holding an AI marker, in registration order,
// one reflex decision.
func (e *Engine) runAIPhase() {
	for _, id := range e.world.IDs() {
		if id == e.playerID || e.world.Get(id).AI == nil {
			continue
		}
		res, attacked := system.ReflexTurn(e.world, e.gmap, e.fovMap, id, e.playerID)
		if attacked {
			e.recordAttack(id, e.playerID, res)
		}
	}
}

func (e *Engine) resolveAttack(attacker, target ecs.EntityID) {
	res := system.Attack(e.world, attacker, target)
	e.recordAttack(attacker, target, res)
}

// recordAttack updates messages and stats after an attack. Names are read
// after the fact, so a killed monster already reads "corpse of <name>".
func (e *Engine) recordAttack(attacker, target ecs.EntityID, res system.AttackResult) {
	e.addMessage(res.Message)
	fields := logrus.Fields{
		"turn":     e.stats.Turns,
		"attacker": e.world.Get(attacker).Name,
		"target":   e.world.Get(target).Name,
		"damage":   res.Damage,
	}
	logger.Log.WithFields(fields).Debug("attack")

	switch {
	case attacker == e.playerID:
		e.stats.DamageDealt += res.Damage
	case target == e.playerID:
		e.stats.DamageTaken += res.Damage
		if res.Damage > 0 {
			e.stats.CauseOfDeath = e.world.Get(attacker).Name
		}
	}

	if res.Killed {
		e.addMessage(res.Death)
		logger.Log.WithFields(fields).Info("death")
		if target != e.playerID {
			e.stats.Kills[speciesOf(e.world.Get(target).Name)]++
		}
	}
}

func speciesOf(name string) string {
	species, _ := strings.CutPrefix(name, "corpse of ")
	return species
}

// refreshFOV recomputes visibility when the player has moved since the last
// computation, and marks every visible tile explored.
func (e *Engine) refreshFOV() {
	pos := e.Player().Pos
	if e.fovValid && pos == e.fovOrigin {
		return
	}
	e.fovMap.Compute(pos.X, pos.Y, e.opts.FOVRadius, e.opts.LightWalls, e.opts.Algorithm)
	e.fovOrigin, e.fovValid = pos, true

	for y := 0; y < e.gmap.Height; y++ {
		for x := 0; x < e.gmap.Width; x++ {
			if e.fovMap.InFov(x, y) {
				e.gmap.At(x, y).Explored = true
			}
		}
	}
}

func (e *Engine) addMessage(msg string) {
	if msg == "" {
		return
	}
	e.messages = append(e.messages, msg)
	if len(e.messages) > maxMessages {
		e.messages = e.messages[len(e.messages)-maxMessages:]
	}
}
