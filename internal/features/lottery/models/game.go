package models

// Game is a lottery game contestants can enter.
// The name identifies the game for registration; the *Game pointer identifies
// it for charged participants.
type Game struct {
	name            string
	cost            int
	nationalDrawing bool
}

// NewGame creates a game. nationalDrawing defaults to false.
func NewGame(name string, cost int, nationalDrawing ...bool) *Game {
	g := &Game{name: name, cost: cost}
	if len(nationalDrawing) > 0 {
		g.nationalDrawing = nationalDrawing[0]
	}
	return g
}

func (g *Game) Name() string { return g.name }
func (g *Game) Cost() int    { return g.cost }

// IsNationalDrawing reports whether out-of-state contestants may enter.
func (g *Game) IsNationalDrawing() bool { return g.nationalDrawing }
