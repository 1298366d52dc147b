package peck

// ControlFlow carries the loop continuation decision out of an event
// callback. The zero value means "keep running".
type ControlFlow struct {
	exit bool
	code int
}

// Exit asks the loop to terminate with exit code 0.
func (f *ControlFlow) Exit() {
	f.ExitWithCode(0)
}

// ExitWithCode asks the loop to terminate with the given process exit
// code.
func (f *ControlFlow) ExitWithCode(code int) {
	f.exit = true
	f.code = code
}

// Exiting reports whether termination has been requested.
func (f *ControlFlow) Exiting() bool {
	return f.exit
}

// DefaultEventPolicy is the event handling applied when no event
// callback is attached: CloseRequested terminates the loop, everything
// else is ignored. Callbacks that only want to intercept a few events
// can delegate the rest here.
func DefaultEventPolicy(ev Event, flow *ControlFlow) {
	if _, ok := ev.(CloseRequested); ok {
		flow.Exit()
	}
}
