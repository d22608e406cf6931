package game

import (
	"battle/meta"
	"fmt"
)

type StandardRules struct {
	MaxBudget int
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		MaxBudget: meta.BUDGET,
	}
}

func (sr *StandardRules) Budget() int {
	return sr.MaxBudget
}

// Validate rejects negative counts and compositions costing more than the budget.
// Each count is bounded on its own first so that Cost cannot overflow.
func (sr *StandardRules) Validate(c Composition) error {
	if c.Soldiers < 0 || c.Archers < 0 || c.Cavalry < 0 {
		return fmt.Errorf("%w: negative unit count in %s", ErrInvalidArmyComposition, c)
	}
	for _, kind := range []Kind{Soldier, Archer, Cavalry} {
		if n := c.Count(kind); n > sr.MaxBudget/kind.Cost() {
			return fmt.Errorf("%w: %d %s units exceed budget %d", ErrInvalidArmyComposition, n, kind, sr.MaxBudget)
		}
	}
	if cost := c.Cost(); cost > sr.MaxBudget {
		return fmt.Errorf("%w: cost %d exceeds budget %d", ErrInvalidArmyComposition, cost, sr.MaxBudget)
	}
	return nil
}
