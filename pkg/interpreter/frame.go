package interpreter

// FrameKind tags a control frame as a FOR loop or a GOSUB call. Both share
// one stack so that an unqualified NEXT always refers to the innermost open
// loop and RETURN discards loops opened inside the subroutine.
type FrameKind int

const (
	FrameLoop FrameKind = iota
	FrameCall
)

// Frame is one entry on the control stack.
type Frame struct {
	Kind FrameKind

	// Loop frames: control variable, end bound, step, and the line number
	// of the FOR statement itself. Re-entry jumps to the FOR line's index
	// and the dispatcher's increment lands on the first body line.
	Var  string
	End  float64
	Step float64
	Line int

	// Call frames: the index of the GOSUB statement. RETURN jumps there
	// and the increment resumes at the following line.
	ReturnIndex int
}

// pushFrame adds a frame to the control stack.
func (i *Interpreter) pushFrame(f Frame) {
	i.stack = append(i.stack, f)
}

// topFrame returns the innermost frame, or nil if the stack is empty.
func (i *Interpreter) topFrame() *Frame {
	if len(i.stack) == 0 {
		return nil
	}
	return &i.stack[len(i.stack)-1]
}

// popFrame removes the innermost frame.
func (i *Interpreter) popFrame() {
	i.stack = i.stack[:len(i.stack)-1]
}

// popToCall pops frames up to and including the innermost call frame,
// returning it. Loop frames opened after the call are discarded with it.
func (i *Interpreter) popToCall() (Frame, bool) {
	for idx := len(i.stack) - 1; idx >= 0; idx-- {
		if i.stack[idx].Kind == FrameCall {
			f := i.stack[idx]
			i.stack = i.stack[:idx]
			return f, true
		}
	}
	return Frame{}, false
}
