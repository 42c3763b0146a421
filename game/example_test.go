package game_test

import (
	"fmt"

	"github.com/plus3/candytris/game"
)

func ExampleResolve() {
	board := game.MustParseBoard(`
. . . . .
. G . . .
. R . . .
. R . . .
G R G . .
`)

	res := game.Resolve(board)

	fmt.Println("passes:", len(res.Passes))
	fmt.Println("score:", res.Score)
	fmt.Println("left:", board.Occupied())
	// Output:
	// passes: 2
	// score: 600
	// left: 0
}

func ExampleDetect() {
	board := game.MustParseBoard(`
. . . .
. . . .
Y Y Y Y
`)

	m := game.Detect(board)

	fmt.Println(m.Score, m.Flags, m.Removed.Len())
	// Output: 400 area 8
}
