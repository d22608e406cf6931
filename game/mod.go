package game

import "fmt"

// Unit is a single combat entity. Fighter is the built-in implementation;
// the engine only relies on this interface.
type Unit interface {
	fmt.Stringer
	Kind() Kind
	Life() int
	Experience() int
	IsAlive() bool
	Speed() int
	AttackDamage() int
	Cost() int
	// Defend applies the variant's damage rule to the unit's life
	Defend(damage int) error
	LoseLife(amount int) error
	GainExperience(amount int) error
}

// Outcome is the terminal result of a battle.
type Outcome int

const (
	Draw Outcome = iota
	Player1
	Player2
)

func (o Outcome) String() string {
	switch o {
	case Draw:
		return "draw"
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Formation is the container discipline governing engagement order.
type Formation int

const (
	Stack Formation = iota // last in, first out
	Queue                  // first in, first out
)

func (f Formation) String() string {
	switch f {
	case Stack:
		return "stack"
	case Queue:
		return "queue"
	}
	return fmt.Sprintf("Formation(%d)", int(f))
}

func ParseFormation(s string) (Formation, error) {
	switch s {
	case "stack", "lifo":
		return Stack, nil
	case "queue", "fifo":
		return Queue, nil
	}
	return 0, fmt.Errorf("unknown formation %q", s)
}
