package loop

// System is one step of the frame loop. Systems run in registration order on
// the loop goroutine and may keep their own state between frames.
type System interface {
	Execute(frame *Frame)
}
