package game

import (
	"battle/container"
	"fmt"
	"strings"
)

// Composition is the number of units of each kind a player asks for.
type Composition struct {
	Soldiers int `yaml:"soldiers" json:"soldiers"`
	Archers  int `yaml:"archers" json:"archers"`
	Cavalry  int `yaml:"cavalry" json:"cavalry"`
}

func (c Composition) Cost() int {
	return SoldierCost*c.Soldiers + ArcherCost*c.Archers + CavalryCost*c.Cavalry
}

func (c Composition) Total() int {
	return c.Soldiers + c.Archers + c.Cavalry
}

func (c Composition) Count(k Kind) int {
	switch k {
	case Soldier:
		return c.Soldiers
	case Archer:
		return c.Archers
	case Cavalry:
		return c.Cavalry
	}
	return 0
}

func (c Composition) String() string {
	return fmt.Sprintf("%d soldiers, %d archers, %d cavalry", c.Soldiers, c.Archers, c.Cavalry)
}

// Army is a named force of units held in the container its formation dictates.
type Army struct {
	Name      string
	Formation Formation
	Force     container.Sequential[Unit]
}

// deployOrder lists kinds in insertion order so that soldiers are always
// removed first, then archers, then cavalry.
var deployOrder = map[Formation][]Kind{
	Stack: {Cavalry, Archer, Soldier},
	Queue: {Soldier, Archer, Cavalry},
}

// NewArmy validates the composition against the rules and fills a container
// sized to exactly the requested number of units.
func NewArmy(name string, formation Formation, c Composition, rules Rules) (*Army, error) {
	if err := rules.Validate(c); err != nil {
		return nil, err
	}

	order, ok := deployOrder[formation]
	if !ok {
		return nil, fmt.Errorf("unknown formation %d", int(formation))
	}

	capacity := c.Total()
	var force container.Sequential[Unit]
	if formation == Stack {
		force = container.NewStack[Unit](capacity)
	} else {
		force = container.NewQueue[Unit](capacity)
	}

	for _, kind := range order {
		for i := 0; i < c.Count(kind); i++ {
			if err := force.Insert(newRecruit(kind)); err != nil {
				// capacity is the exact unit total
				panic(err)
			}
		}
	}

	return &Army{Name: name, Formation: formation, Force: force}, nil
}

// Size is the number of units still in the army.
func (a *Army) Size() int {
	return a.Force.Len()
}

func (a *Army) IsDefeated() bool {
	return a.Force.IsEmpty()
}

// Roster counts the remaining units by kind.
func (a *Army) Roster() Composition {
	var c Composition
	for _, u := range a.Force.Items() {
		switch u.Kind() {
		case Soldier:
			c.Soldiers++
		case Archer:
			c.Archers++
		case Cavalry:
			c.Cavalry++
		}
	}
	return c
}

func (a *Army) String() string {
	items := a.Force.Items()
	lines := make([]string, len(items))
	for i, u := range items {
		lines[i] = u.String()
	}
	return strings.Join(lines, "\n")
}
