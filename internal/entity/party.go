package entity

// Party represents the player's party on the overworld, displayed as a
// single symbol.
type Party struct {
	X, Y   int  // Current position on the field
	Symbol rune // Display symbol
	Steps  int  // Steps walked since the game started
}

// NewParty creates a new party at the given position.
func NewParty(x, y int) *Party {
	return &Party{
		X:      x,
		Y:      y,
		Symbol: '@',
	}
}

// Move updates the party position by the given delta and counts the step.
func (p *Party) Move(dx, dy int) {
	p.X += dx
	p.Y += dy
	p.Steps++
}

// Position returns the current x, y coordinates.
func (p *Party) Position() (int, int) {
	return p.X, p.Y
}
