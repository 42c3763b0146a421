package termui

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/candytris/game"
)

// CommandFor maps a key to a player command. ch is only consulted for
// tcell.KeyRune.
func CommandFor(key tcell.Key, ch rune) (game.Command, bool) {
	switch key {
	case tcell.KeyLeft:
		return game.CommandMoveLeft, true
	case tcell.KeyRight:
		return game.CommandMoveRight, true
	case tcell.KeyUp:
		return game.CommandRotate, true
	case tcell.KeyDown:
		return game.CommandSoftDrop, true
	case tcell.KeyRune:
	default:
		return 0, false
	}

	switch unicode.ToLower(ch) {
	case 'a':
		return game.CommandMoveLeft, true
	case 'd':
		return game.CommandMoveRight, true
	case 'w', 'x':
		return game.CommandRotate, true
	case 's':
		return game.CommandSoftDrop, true
	case ' ':
		return game.CommandHardDrop, true
	case 'p':
		return game.CommandPause, true
	case 'r':
		return game.CommandRestart, true
	}
	return 0, false
}

// KeyCommand is CommandFor applied to a key event.
func KeyCommand(ev *tcell.EventKey) (game.Command, bool) {
	return CommandFor(ev.Key(), ev.Rune())
}

// IsQuit reports whether the key ends the session: Esc, Ctrl+C or q.
func IsQuit(key tcell.Key, ch rune) bool {
	return key == tcell.KeyEscape || key == tcell.KeyCtrlC ||
		(key == tcell.KeyRune && unicode.ToLower(ch) == 'q')
}

// IsCopy reports whether the key requests a board dump on the clipboard.
func IsCopy(key tcell.Key) bool {
	return key == tcell.KeyF2
}
