package game

import "errors"

var (
	ErrInvalidFighterState    = errors.New("invalid fighter state")
	ErrNegativeArgument       = errors.New("negative argument")
	ErrInvalidArmyComposition = errors.New("invalid army composition")
)
