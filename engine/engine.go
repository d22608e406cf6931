package engine

import (
	"battle/experiments/metrics"
	"battle/game"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

func WithMetrics() Option {
	return func(e *Engine) {
		e.metrics = metrics.NewCollector()
	}
}

func WithCollector(c metrics.Collector) Option {
	return func(e *Engine) {
		if c != nil {
			e.metrics = c
		}
	}
}

// Engine conducts one battle between two armies until either force is empty.
type Engine struct {
	Armies  [2]*game.Army
	logger  zerolog.Logger
	metrics metrics.Collector
	rounds  int
}

func New(army1, army2 *game.Army, options ...Option) *Engine {
	if army1 == nil || army2 == nil {
		panic("need two armies")
	}

	e := &Engine{
		Armies:  [2]*game.Army{army1, army2},
		logger:  log.Logger,
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	e.metrics.Start()
	return e
}

// Run fights rounds until at least one army is empty and returns the outcome.
// Termination is only checked between rounds. The metric covers every round
// the engine has fought, including those of earlier calls.
func (e *Engine) Run() (game.Outcome, metrics.BattleMetric, error) {
	army1, army2 := e.Armies[0], e.Armies[1]

	e.logger.Info().
		Str("army1", army1.Name).Int("size1", army1.Size()).
		Str("army2", army2.Name).Int("size2", army2.Size()).
		Msg("battle started")

	for !army1.IsDefeated() && !army2.IsDefeated() {
		if err := e.round(); err != nil {
			return game.Draw, metrics.BattleMetric{}, fmt.Errorf("round %d: %w", e.rounds, err)
		}
	}

	outcome := Result(army1, army2)
	metric := e.metrics.Complete()
	metric.Outcome = outcome
	metric.Rounds = e.rounds
	metric.Remaining1 = army1.Size()
	metric.Remaining2 = army2.Size()

	e.logger.Info().
		Stringer("outcome", outcome).
		Int("rounds", e.rounds).
		Int("remaining1", metric.Remaining1).
		Int("remaining2", metric.Remaining2).
		Msg("battle resolved")

	return outcome, metric, nil
}

func (e *Engine) round() error {
	army1, army2 := e.Armies[0], e.Armies[1]
	e.rounds++

	u1 := withdraw(army1)
	u2 := withdraw(army2)
	kind1, kind2 := u1.Kind(), u2.Kind()

	reenter1, reenter2, err := Fight(u1, u2)
	if err != nil {
		// living units go back so both armies keep their remaining strength
		if u1.IsAlive() {
			deploy(army1, u1)
		}
		if u2.IsAlive() {
			deploy(army2, u2)
		}
		return err
	}

	if reenter1 {
		deploy(army1, u1)
	}
	if reenter2 {
		deploy(army2, u2)
	}

	e.metrics.AddRound(metrics.RoundMetric{
		Round:  e.rounds,
		Unit1:  kind1,
		Unit2:  kind2,
		Alive1: reenter1,
		Alive2: reenter2,
	})

	e.logger.Debug().
		Int("round", e.rounds).
		Stringer("unit1", u1).
		Stringer("unit2", u2).
		Bool("alive1", reenter1).
		Bool("alive2", reenter2).
		Msg("round fought")
	return nil
}

// withdraw takes the next unit out of a non-empty army.
func withdraw(a *game.Army) game.Unit {
	u, err := a.Force.Remove()
	if err != nil {
		panic(fmt.Sprintf("army %s: %v", a.Name, err))
	}
	return u
}

// deploy puts a survivor back. Units only return to a container they just
// left, so a full container is a logic error.
func deploy(a *game.Army, u game.Unit) {
	if err := a.Force.Insert(u); err != nil {
		panic(fmt.Sprintf("army %s: %v", a.Name, err))
	}
}
