package engine

import (
	"battle/container"
	"battle/game"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newArmy(t *testing.T, name string, formation game.Formation, c game.Composition) *game.Army {
	t.Helper()
	a, err := game.NewArmy(name, formation, c, game.NewStandardRules())
	require.NoError(t, err)
	return a
}

func newEngine(army1, army2 *game.Army) *Engine {
	return New(army1, army2, WithLogger(zerolog.Nop()), WithMetrics())
}

func totalLife(c game.Composition) int {
	return 3*c.Soldiers + 3*c.Archers + 4*c.Cavalry
}

func TestEngineRun(t *testing.T) {
	t.Run("lone soldiers draw on round two", func(t *testing.T) {
		army1 := newArmy(t, "p1", game.Stack, game.Composition{Soldiers: 1})
		army2 := newArmy(t, "p2", game.Stack, game.Composition{Soldiers: 1})
		e := newEngine(army1, army2)

		require.NoError(t, e.round())
		s1, err := army1.Force.Peek()
		require.NoError(t, err)
		require.Equal(t, 1, s1.Life(), "Life after round 1")

		outcome, metric, err := e.Run()
		require.NoError(t, err)

		require.Equal(t, game.Draw, outcome)
		require.Equal(t, 2, metric.Rounds)
		require.Len(t, metric.RoundLog, 2)
		require.Equal(t, 1, metric.RoundLog[0].Round)
		require.False(t, s1.IsAlive())
		require.Equal(t, 0, s1.Life(), "Dead units skip attrition")
	})

	t.Run("empty armies draw without fighting", func(t *testing.T) {
		army1 := newArmy(t, "p1", game.Stack, game.Composition{})
		army2 := newArmy(t, "p2", game.Stack, game.Composition{})

		outcome, metric, err := newEngine(army1, army2).Run()
		require.NoError(t, err)

		require.Equal(t, game.Draw, outcome)
		require.Equal(t, 0, metric.Rounds)
	})

	t.Run("empty side loses immediately", func(t *testing.T) {
		full := newArmy(t, "p1", game.Queue, game.Composition{Archers: 1})
		empty := newArmy(t, "p2", game.Queue, game.Composition{})
		outcome, metric, err := newEngine(full, empty).Run()
		require.NoError(t, err)
		require.Equal(t, game.Player1, outcome)
		require.Equal(t, 0, metric.Rounds)

		full = newArmy(t, "p1", game.Queue, game.Composition{Archers: 1})
		empty = newArmy(t, "p2", game.Queue, game.Composition{})
		outcome, _, err = newEngine(empty, full).Run()
		require.NoError(t, err)
		require.Equal(t, game.Player2, outcome)
	})

	t.Run("cavalry outlasts a soldier", func(t *testing.T) {
		army1 := newArmy(t, "p1", game.Queue, game.Composition{Cavalry: 1})
		army2 := newArmy(t, "p2", game.Queue, game.Composition{Soldiers: 1})

		outcome, metric, err := newEngine(army1, army2).Run()
		require.NoError(t, err)

		require.Equal(t, game.Player1, outcome)
		require.Equal(t, 2, metric.Rounds)
		require.Equal(t, 1, metric.Remaining1)
		require.Equal(t, 0, metric.Remaining2)
		require.Equal(t, 1, metric.Kills1)
		require.Equal(t, 0, metric.Kills2)

		survivor, err := army1.Force.Peek()
		require.NoError(t, err)
		require.Equal(t, 2, survivor.Life())
		require.Equal(t, 1, survivor.Experience())
	})

	t.Run("survivors re-enter by formation", func(t *testing.T) {
		comp := game.Composition{Soldiers: 2}

		stack := newEngine(newArmy(t, "p1", game.Stack, comp), newArmy(t, "p2", game.Stack, comp))
		require.NoError(t, stack.round())
		top, err := stack.Armies[0].Force.Peek()
		require.NoError(t, err)
		require.Equal(t, 1, top.Life(), "Stack should fight the veteran again")

		queue := newEngine(newArmy(t, "p1", game.Queue, comp), newArmy(t, "p2", game.Queue, comp))
		require.NoError(t, queue.round())
		front, err := queue.Armies[0].Force.Peek()
		require.NoError(t, err)
		require.Equal(t, 3, front.Life(), "Queue should send a fresh soldier next")

		for _, e := range []*Engine{stack, queue} {
			outcome, metric, err := e.Run()
			require.NoError(t, err)
			require.Equal(t, game.Draw, outcome)
			require.Equal(t, 4, metric.Rounds)
			require.Len(t, metric.RoundLog, 4)
		}
	})

	t.Run("round log follows engagement order", func(t *testing.T) {
		army1 := newArmy(t, "p1", game.Queue, game.Composition{Soldiers: 1, Cavalry: 1})
		army2 := newArmy(t, "p2", game.Queue, game.Composition{Archers: 1})

		_, metric, err := newEngine(army1, army2).Run()
		require.NoError(t, err)

		require.NotEmpty(t, metric.RoundLog)
		require.Equal(t, game.Soldier, metric.RoundLog[0].Unit1)
		require.Equal(t, game.Archer, metric.RoundLog[0].Unit2)
		require.Equal(t, 1, metric.RoundLog[0].Round)
	})
}

func TestEngineInvariants(t *testing.T) {
	compositions := []game.Composition{
		{},
		{Soldiers: 1},
		{Archers: 1},
		{Cavalry: 1},
		{Soldiers: 30},
		{Archers: 15},
		{Cavalry: 10},
		{Soldiers: 3, Archers: 2, Cavalry: 1},
		{Soldiers: 10, Archers: 5, Cavalry: 3},
		{Soldiers: 1, Archers: 1, Cavalry: 9},
		{Soldiers: 7, Archers: 7, Cavalry: 3},
		{Archers: 6, Cavalry: 6},
	}

	for _, formation := range []game.Formation{game.Stack, game.Queue} {
		for _, c1 := range compositions {
			for _, c2 := range compositions {
				army1 := newArmy(t, "p1", formation, c1)
				army2 := newArmy(t, "p2", formation, c2)

				outcome, metric, err := newEngine(army1, army2).Run()
				require.NoError(t, err)

				label := formation.String() + " " + c1.String() + " vs " + c2.String()
				require.LessOrEqual(t, metric.Rounds, totalLife(c1)+totalLife(c2), label)
				require.Equal(t, c2.Total()-metric.Remaining2, metric.Kills1, label)
				require.Equal(t, c1.Total()-metric.Remaining1, metric.Kills2, label)
				require.Equal(t, metric.Rounds, len(metric.RoundLog), label)

				switch outcome {
				case game.Draw:
					require.Zero(t, metric.Remaining1, label)
					require.Zero(t, metric.Remaining2, label)
				case game.Player1:
					require.Positive(t, metric.Remaining1, label)
					require.Zero(t, metric.Remaining2, label)
				case game.Player2:
					require.Zero(t, metric.Remaining1, label)
					require.Positive(t, metric.Remaining2, label)
				}

				for _, u := range army1.Force.Items() {
					require.True(t, u.IsAlive(), "Only living units stay in an army")
				}
			}
		}
	}
}

func TestMixedFormations(t *testing.T) {
	c := game.Composition{Soldiers: 4, Archers: 2, Cavalry: 2}
	army1 := newArmy(t, "stack", game.Stack, c)
	army2 := newArmy(t, "queue", game.Queue, c)

	outcome, metric, err := newEngine(army1, army2).Run()
	require.NoError(t, err)

	require.Equal(t, outcome, Result(army1, army2))
	require.LessOrEqual(t, metric.Rounds, 2*totalLife(c))
	require.Equal(t, game.Stack, army1.Formation)
	require.Equal(t, game.Queue, army2.Formation)
}

func TestEngineRunTwice(t *testing.T) {
	army1 := newArmy(t, "p1", game.Queue, game.Composition{Cavalry: 1})
	army2 := newArmy(t, "p2", game.Queue, game.Composition{Soldiers: 1})
	e := newEngine(army1, army2)

	_, first, err := e.Run()
	require.NoError(t, err)
	outcome, second, err := e.Run()
	require.NoError(t, err)

	require.Equal(t, game.Player1, outcome)
	require.Equal(t, first.Rounds, second.Rounds)
	require.Len(t, second.RoundLog, second.Rounds)
}

func TestEngineRoundError(t *testing.T) {
	broken := &game.Army{Name: "broken", Formation: game.Stack, Force: container.NewStack[game.Unit](1)}
	require.NoError(t, broken.Force.Insert(brokenUnit{fighter(t, game.Soldier, 3, 0)}))
	healthy := newArmy(t, "healthy", game.Stack, game.Composition{Soldiers: 1})

	_, _, err := newEngine(broken, healthy).Run()
	require.ErrorIs(t, err, game.ErrNegativeArgument)
	require.ErrorContains(t, err, "round 1")

	require.Equal(t, 1, broken.Size(), "Units are put back after a failed round")
	require.Equal(t, 1, healthy.Size())
	u, err := healthy.Force.Peek()
	require.NoError(t, err)
	require.Equal(t, 3, u.Life())
}

func TestEnginePanics(t *testing.T) {
	t.Run("needs two armies", func(t *testing.T) {
		require.Panics(t, func() { New(nil, nil) })
	})

	t.Run("reinsertion into a full force is fatal", func(t *testing.T) {
		army := &game.Army{Name: "full", Force: container.NewStack[game.Unit](0)}
		require.Panics(t, func() { deploy(army, game.NewSoldier()) })
	})
}

func TestResult(t *testing.T) {
	empty := func() *game.Army { return newArmy(t, "e", game.Stack, game.Composition{}) }
	one := func() *game.Army { return newArmy(t, "o", game.Stack, game.Composition{Soldiers: 1}) }

	require.Equal(t, game.Draw, Result(empty(), empty()))
	require.Equal(t, game.Player1, Result(one(), empty()))
	require.Equal(t, game.Player2, Result(empty(), one()))
}
