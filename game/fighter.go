package game

import "fmt"

// Kind tags the Fighter variant.
type Kind int

const (
	Soldier Kind = iota
	Archer
	Cavalry
)

const (
	SoldierCost = 1
	ArcherCost  = 2
	CavalryCost = 3
)

var kindNames = map[Kind]string{
	Soldier: "Soldier",
	Archer:  "Archer",
	Cavalry: "Cavalry",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) Cost() int {
	switch k {
	case Soldier:
		return SoldierCost
	case Archer:
		return ArcherCost
	case Cavalry:
		return CavalryCost
	}
	panic("unknown unit kind")
}

func (k Kind) startingLife() int {
	if k == Cavalry {
		return 4
	}
	return 3
}

// Fighter holds the mutable state shared by every variant; behaviour is
// selected by its kind.
type Fighter struct {
	kind       Kind
	life       int
	experience int
}

// NewFighter builds a fighter with explicit starting values.
func NewFighter(kind Kind, life, experience int) (*Fighter, error) {
	if _, ok := kindNames[kind]; !ok {
		return nil, fmt.Errorf("%w: unknown kind %d", ErrInvalidFighterState, int(kind))
	}
	if life < 0 || experience < 0 {
		return nil, fmt.Errorf("%w: life %d and experience %d must not be negative",
			ErrInvalidFighterState, life, experience)
	}
	return &Fighter{kind: kind, life: life, experience: experience}, nil
}

func newRecruit(kind Kind) *Fighter {
	return &Fighter{kind: kind, life: kind.startingLife()}
}

func NewSoldier() *Fighter { return newRecruit(Soldier) }
func NewArcher() *Fighter  { return newRecruit(Archer) }
func NewCavalry() *Fighter { return newRecruit(Cavalry) }

func (f *Fighter) Kind() Kind      { return f.kind }
func (f *Fighter) Life() int       { return f.life }
func (f *Fighter) Experience() int { return f.experience }
func (f *Fighter) IsAlive() bool   { return f.life > 0 }
func (f *Fighter) Cost() int       { return f.kind.Cost() }

func (f *Fighter) Speed() int {
	switch f.kind {
	case Soldier:
		return 1 - f.experience
	case Archer:
		return 3
	case Cavalry:
		return 2 + f.experience
	}
	panic("unknown unit kind")
}

func (f *Fighter) AttackDamage() int {
	switch f.kind {
	case Soldier, Cavalry:
		return 1 + f.experience
	case Archer:
		return 2*f.experience + 1
	}
	panic("unknown unit kind")
}

func (f *Fighter) Defend(damage int) error {
	if damage < 0 {
		return fmt.Errorf("%w: damage %d", ErrNegativeArgument, damage)
	}

	hit := false
	switch f.kind {
	case Soldier:
		hit = damage > f.experience
	case Archer:
		hit = true
	case Cavalry:
		// damage > experience/2 over the reals
		hit = 2*damage > f.experience
	default:
		panic("unknown unit kind")
	}

	if hit {
		return f.LoseLife(1)
	}
	return nil
}

func (f *Fighter) LoseLife(amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: lost life %d", ErrNegativeArgument, amount)
	}
	f.life -= amount
	return nil
}

func (f *Fighter) GainExperience(amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: gained experience %d", ErrNegativeArgument, amount)
	}
	f.experience += amount
	return nil
}

func (f *Fighter) String() string {
	return fmt.Sprintf("%s's life = %d and experience = %d", f.kind, f.life, f.experience)
}
