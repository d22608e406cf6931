package communication

import "battle/game"

// Communicator is an interface that abstracts where army compositions come from.
type Communicator interface {
	// ProposeComposition asks the player for a candidate composition. An error
	// wrapping game.ErrInvalidArmyComposition means the input was unusable but
	// the player may try again; any other error ends the request.
	ProposeComposition(player string, budget int) (game.Composition, error)
	RejectComposition(player string, reason error)
	AcceptComposition(player string, c game.Composition)
}
