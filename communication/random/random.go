package random

import (
	"battle/game"
	"fmt"

	"golang.org/x/exp/rand"
)

// Communicator draws each unit count uniformly from what the budget could
// afford on its own. Draws over budget are left for the caller to reject.
type Communicator struct {
	rng      *rand.Rand
	Attempts int
	Rejects  int
}

func NewCommunicator(seed uint64) *Communicator {
	return &Communicator{rng: rand.New(rand.NewSource(seed))}
}

func (c *Communicator) ProposeComposition(player string, budget int) (game.Composition, error) {
	if budget < 0 {
		return game.Composition{}, fmt.Errorf("budget %d cannot be negative", budget)
	}
	c.Attempts++
	return game.Composition{
		Soldiers: c.rng.Intn(budget/game.SoldierCost + 1),
		Archers:  c.rng.Intn(budget/game.ArcherCost + 1),
		Cavalry:  c.rng.Intn(budget/game.CavalryCost + 1),
	}, nil
}

func (c *Communicator) RejectComposition(player string, reason error) {
	c.Rejects++
}

func (c *Communicator) AcceptComposition(player string, comp game.Composition) {}
