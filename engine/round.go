package engine

import "battle/game"

// Engage resolves the attack and defence exchange between two opposing units.
// The faster unit strikes first and only takes retaliation if its opponent
// survives. Units of equal speed always strike each other.
func Engage(u1, u2 game.Unit) error {
	switch {
	case u1.Speed() > u2.Speed():
		return strike(u1, u2, true)
	case u2.Speed() > u1.Speed():
		return strike(u2, u1, true)
	default:
		return strike(u1, u2, false)
	}
}

// strike has the defender take the attacker's damage, then the attacker take
// the defender's. With gated set, the counter only happens if the defender lives.
func strike(attacker, defender game.Unit, gated bool) error {
	if err := defender.Defend(attacker.AttackDamage()); err != nil {
		return err
	}
	if gated && !defender.IsAlive() {
		return nil
	}
	return attacker.Defend(defender.AttackDamage())
}

// Settle applies attrition and experience after Engage and reports which of
// the two units go back into their army.
func Settle(u1, u2 game.Unit) (reenter1, reenter2 bool, err error) {
	if u1.IsAlive() && u2.IsAlive() {
		if err := u1.LoseLife(1); err != nil {
			return false, false, err
		}
		if err := u2.LoseLife(1); err != nil {
			return false, false, err
		}
	}

	alive1, alive2 := u1.IsAlive(), u2.IsAlive()
	switch {
	case alive1 && alive2:
		return true, true, nil
	case alive1:
		return true, false, u1.GainExperience(1)
	case alive2:
		return false, true, u2.GainExperience(1)
	}
	return false, false, nil
}

// Fight runs one full round between two units.
func Fight(u1, u2 game.Unit) (reenter1, reenter2 bool, err error) {
	if err := Engage(u1, u2); err != nil {
		return false, false, err
	}
	return Settle(u1, u2)
}

// Result declares the outcome from the final state of both armies.
func Result(army1, army2 *game.Army) game.Outcome {
	switch {
	case army1.IsDefeated() && army2.IsDefeated():
		return game.Draw
	case army2.IsDefeated():
		return game.Player1
	default:
		return game.Player2
	}
}
