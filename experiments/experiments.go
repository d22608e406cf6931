package experiments

import (
	"battle/communication/random"
	"battle/engine"
	"battle/experiments/metrics"
	"battle/game"
	"battle/gamemaster"
	"battle/meta"
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// seedStride spreads the per-battle seeds derived from the base seed.
const seedStride = 7919

type Config struct {
	Battles   int
	Workers   int
	Seed      uint64
	Formation game.Formation
}

type Summary struct {
	Battles    int
	Draws      int
	Player1    int
	Player2    int
	MeanRounds float64
	MaxRounds  int
}

type Result struct {
	Setup   metrics.Setup
	Records []metrics.BattleRecord // ordered by ID
	Summary Summary
	Dir     string // output directory, empty when nothing was written
}

type Option func(r *runner)

func WithLogger(logger zerolog.Logger) Option {
	return func(r *runner) {
		r.logger = logger
	}
}

// WithOutput stores the setup and battle records under a timestamped
// directory of root.
func WithOutput(root string) Option {
	return func(r *runner) {
		r.output = root
	}
}

type runner struct {
	config Config
	logger zerolog.Logger
	output string

	mu      sync.Mutex
	records []metrics.BattleRecord
	err     error
}

// Run fights cfg.Battles independent battles between randomly composed armies
// on a pool of workers. Cancelling ctx stops new battles from starting; the
// records of finished battles are returned along with the context error.
func Run(ctx context.Context, cfg Config, options ...Option) (Result, error) {
	if cfg.Battles < 0 {
		return Result{}, fmt.Errorf("number of battles %d cannot be negative", cfg.Battles)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = meta.WORKERS
	}

	r := &runner{config: cfg, logger: log.Logger}
	for _, option := range options {
		option(r)
	}

	setup := metrics.Setup{
		Battles:   cfg.Battles,
		Workers:   cfg.Workers,
		Seed:      cfg.Seed,
		Formation: cfg.Formation.String(),
		StartTime: time.Now(),
	}
	r.logger.Info().
		Int("battles", cfg.Battles).
		Int("workers", cfg.Workers).
		Uint64("seed", cfg.Seed).
		Stringer("formation", cfg.Formation).
		Msg("starting simulation")

	r.dispatch(ctx)

	setup.EndTime = time.Now()
	setup.Duration = setup.EndTime.Sub(setup.StartTime)

	slices.SortFunc(r.records, func(a, b metrics.BattleRecord) int {
		return cmp.Compare(a.ID, b.ID)
	})
	result := Result{
		Setup:   setup,
		Records: r.records,
		Summary: summarize(r.records),
	}

	if r.err != nil {
		return result, r.err
	}
	if err := ctx.Err(); err != nil {
		r.logger.Warn().Int("completed", len(r.records)).Msg("simulation cancelled")
		return result, err
	}

	r.logger.Info().
		Int("draws", result.Summary.Draws).
		Int("player1", result.Summary.Player1).
		Int("player2", result.Summary.Player2).
		Dur("duration", setup.Duration).
		Msg("completed simulation")

	if r.output != "" {
		dir, err := r.store(result)
		if err != nil {
			return result, err
		}
		result.Dir = dir
	}
	return result, nil
}

func (r *runner) dispatch(ctx context.Context) {
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < r.config.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				record, err := r.battle(i)

				r.mu.Lock()
				if err != nil {
					if r.err == nil {
						r.err = err
					}
				} else {
					r.records = append(r.records, record)
				}
				r.mu.Unlock()
			}
		}()
	}

	for i := 0; i < r.config.Battles; i++ {
		if ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()
}

// battle runs the i-th battle. Its armies depend only on the base seed and i.
func (r *runner) battle(i int) (metrics.BattleRecord, error) {
	id := i + 1
	seed := r.config.Seed + uint64(i)*seedStride
	logger := r.logger.With().Int("battle", id).Logger()

	gm := gamemaster.NewGameMaster(
		random.NewCommunicator(seed),
		gamemaster.WithLogger(logger),
		gamemaster.WithEngineOptions(engine.WithMetrics()),
	)
	_, report, err := gm.BattleInFormation(r.config.Formation, "player1", "player2")
	if err != nil {
		return metrics.BattleRecord{}, fmt.Errorf("battle %d: %w", id, err)
	}

	return metrics.BattleRecord{
		ID:           id,
		Seed:         seed,
		Formation:    r.config.Formation,
		Army1:        report.Compositions[0],
		Army2:        report.Compositions[1],
		BattleMetric: report.Metric,
	}, nil
}

func (r *runner) store(result Result) (string, error) {
	writer, err := metrics.NewWriter(r.output)
	if err != nil {
		return "", fmt.Errorf("failed to create simulation writer: %w", err)
	}
	if err := writer.WriteSetup(result.Setup); err != nil {
		return "", err
	}
	if err := writer.WriteBattleRecords(result.Records); err != nil {
		return "", err
	}
	r.logger.Info().Str("dir", writer.Dir()).Msg("stored battle records")
	return writer.Dir(), nil
}

func summarize(records []metrics.BattleRecord) Summary {
	s := Summary{Battles: len(records)}
	total := 0
	for _, record := range records {
		switch record.Outcome {
		case game.Draw:
			s.Draws++
		case game.Player1:
			s.Player1++
		case game.Player2:
			s.Player2++
		}
		total += record.Rounds
		s.MaxRounds = max(s.MaxRounds, record.Rounds)
	}
	if len(records) > 0 {
		s.MeanRounds = float64(total) / float64(len(records))
	}
	return s
}
