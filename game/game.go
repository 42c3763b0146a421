package game

import (
	"fmt"
	"time"
)

// Stats accumulates counters over the lifetime of one game.
type Stats struct {
	PiecesPlaced     int
	Passes           int
	LongestCascade   int
	CellsRemoved     int
	ColorPurges      int
	BoardClears      int
	AreaBlasts       int
	SpecialsFired    int
	HiddenCellsLost  int
	RejectedCommands int
}

// Game owns the board, the falling and queued pieces, the score and the loop
// state. It is driven by a single goroutine: the host calls Tick with the
// elapsed time and Apply for player commands, and reads the views between
// calls. A landing is resolved completely inside the call that caused it.
type Game struct {
	opts    Options
	catalog *Catalog
	board   *Board
	gen     *Generator

	current *Piece
	next    *Piece

	score   int
	state   State
	paused  bool
	elapsed time.Duration
	resets  uint64

	stats  Stats
	events []Event
}

// New validates the options and starts a game with the first piece falling.
func New(opts Options) (*Game, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return newGame(opts, NewBoard(opts.Width, opts.Height)), nil
}

// NewWithBoard starts a game on a copy of a pre-filled board, used for
// puzzles and tests. The board dimensions override opts.Width and
// opts.Height.
func NewWithBoard(opts Options, board *Board) (*Game, error) {
	opts.Width, opts.Height = board.width, board.height
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return newGame(opts, board.Clone()), nil
}

func newGame(opts Options, board *Board) *Game {
	catalog, _ := LookupCatalog(opts.Catalog)
	g := &Game{
		opts:    opts,
		catalog: catalog,
		board:   board,
	}
	g.start()
	return g
}

func (g *Game) start() {
	g.gen = NewGenerator(g.catalog, Palette(g.opts.Colors), g.opts.SpecialChance, g.opts.Width, g.opts.Seed+g.resets)
	g.current = g.gen.Next()
	g.next = g.gen.Next()
	g.checkSpawn()
}

// Reset clears the board and score and starts over with a fresh sequence.
func (g *Game) Reset() {
	g.resets++
	g.board.Reset()
	g.score = 0
	g.paused = false
	g.elapsed = 0
	g.stats = Stats{}
	g.emit(Event{Kind: EventReset})
	g.start()
}

func (g *Game) Options() Options { return g.opts }
func (g *Game) Score() int       { return g.score }
func (g *Game) State() State     { return g.state }
func (g *Game) Paused() bool     { return g.paused }
func (g *Game) Stats() Stats     { return g.stats }

// Snapshot returns a read-only copy of the board.
func (g *Game) Snapshot() Snapshot { return g.board.Snapshot() }

// Current returns a copy of the falling piece, or nil after game over.
func (g *Game) Current() *Piece {
	if g.state == StateGameOver {
		return nil
	}
	return g.current.Clone()
}

// Next returns a copy of the queued piece.
func (g *Game) Next() *Piece { return g.next.Clone() }

// GhostY returns the anchor row the falling piece would land at.
func (g *Game) GhostY() int {
	return g.current.Y + DropDistance(g.current, g.board)
}

// DrainEvents returns and forgets the events emitted since the last call.
func (g *Game) DrainEvents() []Event {
	ev := g.events
	g.events = nil
	return ev
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}

// Tick advances the fall timer by dt. Every full drop interval moves the
// piece down one row or lands it. Ticks are ignored while paused or after
// game over.
func (g *Game) Tick(dt time.Duration) {
	if g.paused || g.state != StateFalling {
		return
	}
	g.elapsed += dt
	for g.elapsed >= g.opts.DropInterval && g.state == StateFalling {
		g.elapsed -= g.opts.DropInterval
		g.Step()
	}
}

// Step performs one fall step immediately, independent of the timer.
func (g *Game) Step() {
	if g.paused || g.state != StateFalling {
		return
	}
	if TryMove(g.current, 0, 1, g.board) {
		return
	}
	g.land()
}

// Apply executes a player command and reports whether it changed anything.
// Only Pause and Restart are accepted while paused; nothing but Restart is
// accepted after game over.
func (g *Game) Apply(cmd Command) bool {
	ok := g.apply(cmd)
	if !ok {
		g.stats.RejectedCommands++
	}
	return ok
}

func (g *Game) apply(cmd Command) bool {
	switch cmd {
	case CommandRestart:
		g.Reset()
		return true
	case CommandPause:
		if g.state == StateGameOver {
			return false
		}
		g.paused = !g.paused
		if g.paused {
			g.emit(Event{Kind: EventPaused})
		} else {
			g.emit(Event{Kind: EventResumed})
		}
		return true
	}

	if g.paused || g.state != StateFalling {
		return false
	}

	switch cmd {
	case CommandMoveLeft:
		return TryMove(g.current, -1, 0, g.board)
	case CommandMoveRight:
		return TryMove(g.current, 1, 0, g.board)
	case CommandSoftDrop:
		return TryMove(g.current, 0, 1, g.board)
	case CommandRotate:
		return TryRotate(g.current, g.board)
	case CommandHardDrop:
		g.current.Y += DropDistance(g.current, g.board)
		g.elapsed = 0
		g.land()
		return true
	default:
		return false
	}
}

// land freezes the falling piece, resolves the cascade and spawns the next
// piece.
func (g *Game) land() {
	g.state = StateResolving

	written := Freeze(g.current, g.board)
	g.stats.PiecesPlaced++
	g.stats.HiddenCellsLost += len(g.current.Cells) - written
	g.emit(Event{Kind: EventLanded, Cells: written, Shape: g.current.Shape.Name})

	res := Resolve(g.board)
	for i, pass := range res.Passes {
		g.score += pass.Match.Score
		g.record(pass)
		g.emit(Event{
			Kind:         EventCleared,
			Pass:         i + 1,
			Cells:        pass.Removed,
			Score:        pass.Match.Score,
			Flags:        pass.Match.Flags,
			PurgedColors: pass.Match.PurgedColors,
		})
	}
	if len(res.Passes) > 0 {
		g.stats.LongestCascade = max(g.stats.LongestCascade, len(res.Passes))
		g.emit(Event{Kind: EventCascadeFinished, Pass: len(res.Passes), Cells: res.Removed(), Score: res.Score})
	}

	g.state = StateSpawning
	g.current = g.next
	g.next = g.gen.Next()
	g.checkSpawn()
}

func (g *Game) record(pass Pass) {
	g.stats.Passes++
	g.stats.CellsRemoved += pass.Removed
	g.stats.ColorPurges += len(pass.Match.PurgedColors)
	g.stats.SpecialsFired += len(pass.Match.Triggered)
	if pass.Match.Flags.Has(EscalateBoardClear) {
		g.stats.BoardClears++
	}
	if pass.Match.Flags.Has(EscalateArea) {
		g.stats.AreaBlasts++
	}
}

// checkSpawn ends the game if the newly promoted piece overlaps the board.
func (g *Game) checkSpawn() {
	for _, p := range g.current.Positions() {
		if p.Y >= 0 && g.board.IsOccupied(p.X, p.Y) {
			g.state = StateGameOver
			g.emit(Event{Kind: EventGameOver, Score: g.score})
			return
		}
	}
	g.state = StateFalling
	g.emit(Event{Kind: EventSpawned, Shape: g.current.Shape.Name})
}

func (g *Game) String() string {
	return fmt.Sprintf("game{state=%s score=%d paused=%t}", g.state, g.score, g.paused)
}
