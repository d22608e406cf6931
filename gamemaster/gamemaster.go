package gamemaster

import (
	"battle/communication"
	"battle/engine"
	"battle/experiments/metrics"
	"battle/game"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Option func(gm *GameMaster)

func WithLogger(logger zerolog.Logger) Option {
	return func(gm *GameMaster) {
		gm.logger = logger
	}
}

func WithRules(rules game.Rules) Option {
	return func(gm *GameMaster) {
		if rules != nil {
			gm.Rules = rules
		}
	}
}

// WithEngineOptions are passed to every battle engine the game master starts.
func WithEngineOptions(options ...engine.Option) Option {
	return func(gm *GameMaster) {
		gm.engineOptions = append(gm.engineOptions, options...)
	}
}

// GameMaster collects both armies and runs the battle between them.
type GameMaster struct {
	Communicator  communication.Communicator
	Rules         game.Rules
	logger        zerolog.Logger
	engineOptions []engine.Option
}

// Report describes a finished battle. Armies hold the survivors.
type Report struct {
	Players      [2]string
	Compositions [2]game.Composition
	Armies       [2]*game.Army
	Metric       metrics.BattleMetric
}

// NewGameMaster initializes a new GameMaster with the standard rules.
func NewGameMaster(comm communication.Communicator, options ...Option) *GameMaster {
	gm := &GameMaster{
		Communicator: comm,
		Rules:        game.NewStandardRules(),
		logger:       log.Logger,
	}
	for _, option := range options {
		option(gm)
	}
	return gm
}

// RequestComposition asks the player until a composition within the rules is
// proposed. Rejected proposals are reported back and asked for again with no
// retry limit; a communicator failure ends the request.
func (gm *GameMaster) RequestComposition(player string) (game.Composition, error) {
	for {
		c, err := gm.Communicator.ProposeComposition(player, gm.Rules.Budget())
		if err == nil {
			err = gm.Rules.Validate(c)
		}
		if err == nil {
			gm.Communicator.AcceptComposition(player, c)
			return c, nil
		}
		if !errors.Is(err, game.ErrInvalidArmyComposition) {
			return game.Composition{}, fmt.Errorf("army of player %s: %w", player, err)
		}

		gm.logger.Warn().Str("player", player).Err(err).Msg("composition rejected")
		gm.Communicator.RejectComposition(player, err)
	}
}

// BattleInFormation builds both armies in the given formation and fights
// them to a result.
func (gm *GameMaster) BattleInFormation(formation game.Formation, playerOne, playerTwo string) (game.Outcome, Report, error) {
	report := Report{Players: [2]string{playerOne, playerTwo}}

	for i, player := range report.Players {
		c, err := gm.RequestComposition(player)
		if err != nil {
			return game.Draw, report, err
		}
		army, err := game.NewArmy(player, formation, c, gm.Rules)
		if err != nil {
			return game.Draw, report, err
		}
		report.Compositions[i] = c
		report.Armies[i] = army
	}

	gm.logger.Info().
		Stringer("formation", formation).
		Str("player1", playerOne).Stringer("army1", report.Compositions[0]).
		Str("player2", playerTwo).Stringer("army2", report.Compositions[1]).
		Msg("armies assembled")

	options := append([]engine.Option{engine.WithLogger(gm.logger)}, gm.engineOptions...)
	e := engine.New(report.Armies[0], report.Armies[1], options...)

	outcome, metric, err := e.Run()
	if err != nil {
		return game.Draw, report, err
	}
	report.Metric = metric
	return outcome, report, nil
}

// GladiatorialCombat fights in stack formation: survivors go straight back
// into the fight.
func (gm *GameMaster) GladiatorialCombat(playerOne, playerTwo string) (game.Outcome, Report, error) {
	return gm.BattleInFormation(game.Stack, playerOne, playerTwo)
}

// FairerCombat fights in queue formation: survivors rejoin at the rear.
func (gm *GameMaster) FairerCombat(playerOne, playerTwo string) (game.Outcome, Report, error) {
	return gm.BattleInFormation(game.Queue, playerOne, playerTwo)
}
