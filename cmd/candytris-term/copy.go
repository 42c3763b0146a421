package main

import (
	"log"
	"sync/atomic"

	"github.com/atotto/clipboard"
	"github.com/plus3/candytris/loop"
)

// copySystem writes the board dump to the clipboard on the loop goroutine
// after the input goroutine requested it.
type copySystem struct {
	requested atomic.Bool
	write     func(string) error
}

func (c *copySystem) Request() {
	c.requested.Store(true)
}

func (c *copySystem) Execute(frame *loop.Frame) {
	if !c.requested.Swap(false) {
		return
	}

	write := c.write
	if write == nil {
		write = clipboard.WriteAll
	}
	if err := write(frame.Game.Snapshot().String()); err != nil {
		log.Printf("Failed to copy board: %v", err)
		return
	}
	log.Println("Board copied to clipboard")
}
