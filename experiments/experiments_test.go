package experiments

import (
	"battle/game"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func life(c game.Composition) int {
	return 3*c.Soldiers + 3*c.Archers + 4*c.Cavalry
}

func TestRun(t *testing.T) {
	quiet := WithLogger(zerolog.Nop())

	t.Run("one record per battle", func(t *testing.T) {
		result, err := Run(context.Background(), Config{Battles: 25, Workers: 4, Seed: 7, Formation: game.Stack}, quiet)
		require.NoError(t, err)

		require.Len(t, result.Records, 25)
		s := result.Summary
		require.Equal(t, 25, s.Battles)
		require.Equal(t, 25, s.Draws+s.Player1+s.Player2)

		for i, record := range result.Records {
			require.Equal(t, i+1, record.ID)
			require.Equal(t, game.Stack, record.Formation)
			require.NoError(t, game.NewStandardRules().Validate(record.Army1))
			require.NoError(t, game.NewStandardRules().Validate(record.Army2))
			require.LessOrEqual(t, record.Rounds, life(record.Army1)+life(record.Army2))
			require.LessOrEqual(t, record.Rounds, s.MaxRounds)
			require.Len(t, record.RoundLog, record.Rounds)
		}
		require.Empty(t, result.Dir)
	})

	t.Run("same seed gives the same battles", func(t *testing.T) {
		first, err := Run(context.Background(), Config{Battles: 10, Workers: 1, Seed: 42, Formation: game.Queue}, quiet)
		require.NoError(t, err)
		second, err := Run(context.Background(), Config{Battles: 10, Workers: 8, Seed: 42, Formation: game.Queue}, quiet)
		require.NoError(t, err)

		for i := range first.Records {
			a, b := first.Records[i], second.Records[i]
			require.Equal(t, a.Seed, b.Seed)
			require.Equal(t, a.Army1, b.Army1)
			require.Equal(t, a.Army2, b.Army2)
			require.Equal(t, a.Outcome, b.Outcome)
			require.Equal(t, a.Rounds, b.Rounds)
		}
	})

	t.Run("default workers", func(t *testing.T) {
		result, err := Run(context.Background(), Config{Battles: 3}, quiet)
		require.NoError(t, err)
		require.Positive(t, result.Setup.Workers)
		require.Len(t, result.Records, 3)
	})

	t.Run("no battles", func(t *testing.T) {
		result, err := Run(context.Background(), Config{}, quiet)
		require.NoError(t, err)
		require.Empty(t, result.Records)
		require.Zero(t, result.Summary.MeanRounds)
	})

	t.Run("negative battles", func(t *testing.T) {
		_, err := Run(context.Background(), Config{Battles: -1}, quiet)
		require.Error(t, err)
	})

	t.Run("cancelled before start", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		result, err := Run(ctx, Config{Battles: 50, Workers: 2}, quiet)
		require.ErrorIs(t, err, context.Canceled)
		require.Empty(t, result.Records)
	})

	t.Run("writes records", func(t *testing.T) {
		root := t.TempDir()
		result, err := Run(context.Background(), Config{Battles: 5, Workers: 2, Seed: 1}, quiet, WithOutput(root))
		require.NoError(t, err)

		require.Equal(t, root, filepath.Dir(result.Dir))
		for _, name := range []string{"setup.json", "battles.csv"} {
			_, err := os.Stat(filepath.Join(result.Dir, name))
			require.NoError(t, err)
		}
	})
}
