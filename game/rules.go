package game

// Rules decides which compositions a player may field.
type Rules interface {
	Budget() int
	Validate(c Composition) error
}
