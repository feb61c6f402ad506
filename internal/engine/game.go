package engine

// Game owns the single authoritative table state and its history. All
// mutation goes through the operations below; each one commits the
// resulting state synchronously, so the history tail always equals the
// current table.
type Game struct {
	seed    int64
	table   Table
	history History
}

// NewGame shuffles two merged decks with the seed, deals the initial
// layout, and records it as the history floor.
func NewGame(seed int64) *Game {
	t := NewTable()
	t.Stack = Shuffle(BuildDeck(), seed)
	DealInitial(&t)

	g := &Game{seed: seed, table: t}
	g.history.Push(g.table)
	return g
}

func (g *Game) Seed() int64 {
	return g.seed
}

// Table returns a snapshot for rendering; mutating it does not affect
// the game.
func (g *Game) Table() Table {
	return g.table.Clone()
}

func (g *Game) StackSize() int {
	return len(g.table.Stack)
}

func (g *Game) Won() bool {
	return Won(g.table)
}

func (g *Game) Stuck() bool {
	return Stuck(g.table)
}

func (g *Game) HistoryLen() int {
	return g.history.Len()
}

// HandleCardClick feeds one click through the interaction protocol and
// commits the outcome.
func (g *Game) HandleCardClick(id CardID) {
	HandleCardClick(&g.table, id)
	g.history.Push(g.table)
}

// ServeNewCards is the "hit me" action.
func (g *Game) ServeNewCards() {
	ServeNewCards(&g.table)
	g.history.Push(g.table)
}

// Undo steps back to the previous committed state. Undoing past the
// initial deal is refused.
func (g *Game) Undo() {
	if t, ok := g.history.Undo(); ok {
		g.table = t
	}
}

// Apply dispatches an Action envelope onto the matching operation.
// Unknown or malformed actions are ignored.
func (g *Game) Apply(a Action) {
	switch a.Type {
	case ActionClickCard:
		if a.Card != nil {
			g.HandleCardClick(*a.Card)
		}
	case ActionServe:
		g.ServeNewCards()
	case ActionUndo:
		g.Undo()
	}
}
