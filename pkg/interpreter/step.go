package interpreter

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// execStatement classifies one statement by its leading keyword and runs
// the handler. Returns (halted, error); a handler may also move the counter
// (GOTO, GOSUB, RETURN, a continuing NEXT) knowing the run loop increments
// it afterwards.
func (i *Interpreter) execStatement(stmt string) (bool, error) {
	stmt = strings.TrimSpace(stmt)

	switch {
	case strings.HasPrefix(stmt, "PRINT"):
		return false, i.execPrint(stmt[5:])
	case strings.HasPrefix(stmt, "LET"):
		return false, i.execLet(stmt[3:])
	case strings.HasPrefix(stmt, "GOSUB"):
		return false, i.execGosub(stmt[5:])
	case strings.HasPrefix(stmt, "GOTO"):
		return false, i.execGoto(stmt[4:])
	case strings.HasPrefix(stmt, "IF"):
		return i.execIf(stmt[2:])
	case strings.HasPrefix(stmt, "FOR"):
		return false, i.execFor(stmt[3:])
	case strings.HasPrefix(stmt, "NEXT"):
		return false, i.execNext(stmt[4:])
	case strings.HasPrefix(stmt, "INPUT"):
		return false, i.execInput(stmt[5:])
	case strings.HasPrefix(stmt, "RETURN"):
		return false, i.execReturn()
	case strings.HasPrefix(stmt, "REM"):
		return false, nil
	case strings.HasPrefix(stmt, "END"):
		return true, nil
	default:
		return false, fmt.Errorf("%w: unknown command %q", ErrSyntax, stmt)
	}
}

// execLet evaluates the right-hand side and binds it, creating the
// variable if absent.
func (i *Interpreter) execLet(args string) error {
	parts := strings.SplitN(args, "=", 2)
	if len(parts) != 2 {
		return fmt.Errorf("%w: invalid LET syntax", ErrSyntax)
	}

	v, err := i.Eval(parts[1])
	if err != nil {
		return err
	}

	i.vars[strings.TrimSpace(parts[0])] = v
	return nil
}

// jumpTarget parses a jump argument and resolves it to an index in the
// line sequence.
func (i *Interpreter) jumpTarget(args, cmd string) (int, error) {
	target, err := strconv.Atoi(strings.TrimSpace(args))
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s syntax", ErrSyntax, cmd)
	}

	idx, ok := i.program.IndexOf(target)
	if !ok {
		return 0, fmt.Errorf("%w %d in %s statement", ErrUndefinedLine, target, cmd)
	}

	return idx, nil
}

// execGoto jumps unconditionally. The counter is set one before the target
// index so the run loop's blanket increment lands on it.
func (i *Interpreter) execGoto(args string) error {
	idx, err := i.jumpTarget(args, "GOTO")
	if err != nil {
		return err
	}

	i.pc = idx - 1
	return nil
}

// execGosub jumps like GOTO after recording where RETURN should resume.
func (i *Interpreter) execGosub(args string) error {
	idx, err := i.jumpTarget(args, "GOSUB")
	if err != nil {
		return err
	}

	i.pushFrame(Frame{Kind: FrameCall, ReturnIndex: i.pc})
	i.pc = idx - 1
	return nil
}

// execReturn resumes after the innermost GOSUB. Loop frames opened inside
// the subroutine are discarded with the call frame.
func (i *Interpreter) execReturn() error {
	f, ok := i.popToCall()
	if !ok {
		return ErrReturnStack
	}

	i.pc = f.ReturnIndex
	return nil
}

// execIf evaluates one relational comparison; on true the consequent runs
// as a nested statement, jumps and END included.
func (i *Interpreter) execIf(args string) (bool, error) {
	parts := strings.SplitN(args, " THEN ", 2)
	if len(parts) != 2 {
		return false, fmt.Errorf("%w: invalid IF syntax", ErrSyntax)
	}

	ok, err := i.evalCondition(parts[0])
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	return i.execStatement(parts[1])
}

// evalCondition splits on the first relational operator, trying > then <
// then =. No operator means the condition is false.
func (i *Interpreter) evalCondition(cond string) (bool, error) {
	cond = strings.TrimSpace(cond)

	for _, op := range []byte{'>', '<', '='} {
		idx := strings.IndexByte(cond, op)
		if idx < 0 {
			continue
		}

		left, err := i.Eval(cond[:idx])
		if err != nil {
			return false, err
		}
		right, err := i.Eval(cond[idx+1:])
		if err != nil {
			return false, err
		}

		return compareValues(left, right, op)
	}

	return false, nil
}

func compareValues(a, b Value, op byte) (bool, error) {
	if a.Kind == KindString && b.Kind == KindString {
		switch op {
		case '>':
			return a.Str > b.Str, nil
		case '<':
			return a.Str < b.Str, nil
		default:
			return a.Str == b.Str, nil
		}
	}

	if a.IsNumeric() && b.IsNumeric() {
		af, _ := a.AsFloat64()
		bf, _ := b.AsFloat64()
		switch op {
		case '>':
			return af > bf, nil
		case '<':
			return af < bf, nil
		default:
			return af == bf, nil
		}
	}

	// Mixed kinds: never equal, and ordering is undefined.
	if op == '=' {
		return false, nil
	}
	return false, fmt.Errorf("%w comparison between number and text", ErrEvaluation)
}

// execFor parses FOR var = start TO end [STEP step], binds the loop
// variable to start, and pushes a loop frame recording this line.
func (i *Interpreter) execFor(args string) error {
	fields := strings.Fields(args)
	if len(fields) < 5 || fields[1] != "=" || fields[3] != "TO" {
		return fmt.Errorf("%w: invalid FOR syntax", ErrSyntax)
	}

	start, err := i.Eval(fields[2])
	if err != nil {
		return err
	}

	endV, err := i.Eval(fields[4])
	if err != nil {
		return err
	}
	end, err := endV.AsFloat64()
	if err != nil {
		return err
	}

	step := 1.0
	if len(fields) >= 7 && fields[5] == "STEP" {
		sv, err := i.Eval(fields[6])
		if err != nil {
			return err
		}
		step, err = sv.AsFloat64()
		if err != nil {
			return err
		}
	}

	name := fields[0]
	i.vars[name] = start

	line, _ := i.program.Line(i.pc)
	i.pushFrame(Frame{Kind: FrameLoop, Var: name, End: end, Step: step, Line: line})
	return nil
}

// execNext advances the innermost loop. On continuation the counter jumps
// to the FOR line's index and the increment re-enters the body; on
// termination the frame pops and execution falls through.
func (i *Interpreter) execNext(args string) error {
	name := strings.TrimSpace(args)

	top := i.topFrame()
	if top == nil || top.Kind != FrameLoop {
		return ErrLoopStack
	}
	if name != "" && name != top.Var {
		return fmt.Errorf("NEXT %s %w %s", name, ErrLoopMismatch, top.Var)
	}

	cur, ok := i.vars[top.Var]
	if !ok {
		return fmt.Errorf("%w expression %q", ErrEvaluation, top.Var)
	}
	cf, err := cur.AsFloat64()
	if err != nil {
		return err
	}

	nf := cf + top.Step
	if cur.Kind == KindInt && top.Step == math.Trunc(top.Step) {
		i.vars[top.Var] = newInt(int64(nf))
	} else {
		i.vars[top.Var] = newFloat(nf)
	}

	if (top.Step > 0 && nf <= top.End) || (top.Step < 0 && nf >= top.End) {
		idx, ok := i.program.IndexOf(top.Line)
		if !ok {
			return fmt.Errorf("%w %d in NEXT statement", ErrUndefinedLine, top.Line)
		}
		i.pc = idx
		return nil
	}

	i.popFrame()
	return nil
}
