package interpreter

import (
	"fmt"
	"strings"
)

// Eval resolves an expression against the current variables: a quoted
// literal, an exact variable match, a numeric literal, or an arithmetic
// expression. Fails with ErrEvaluation naming the sub-expression that
// could not be resolved.
func (i *Interpreter) Eval(expr string) (Value, error) {
	expr = strings.TrimSpace(expr)

	if isQuoted(expr) {
		return newString(expr[1 : len(expr)-1]), nil
	}

	if v, ok := i.vars[expr]; ok {
		return v, nil
	}

	if v, ok := parseNumber(expr); ok {
		return v, nil
	}

	return i.evalArithmetic(expr)
}

func isQuoted(s string) bool {
	return len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"'
}

// unaryContext reports whether a +/- following this character is a sign
// rather than a binary operator.
func unaryContext(c byte) bool {
	switch c {
	case '*', '/', '+', '-', '(', '=', '<', '>':
		return true
	}
	return false
}

// evalArithmetic scans for operators by precedence, lowest first, splitting
// the expression text at the operator and recursing on both halves. No
// tokenizer: expressions are short enough that re-scanning is cheap.
func (i *Interpreter) evalArithmetic(expr string) (Value, error) {
	// Additive operators, scanned right to left so the split keeps
	// left-to-right evaluation order for +/- chains. Operators nested in
	// parentheses are skipped; the group resolves as a unit below.
	depth := 0
	for idx := len(expr) - 1; idx > 0; idx-- {
		c := expr[idx]
		if c == ')' {
			depth++
			continue
		}
		if c == '(' {
			depth--
			continue
		}
		if depth == 0 && (c == '+' || c == '-') && !unaryContext(expr[idx-1]) {
			left, err := i.Eval(expr[:idx])
			if err != nil {
				return Value{}, err
			}
			right, err := i.Eval(expr[idx+1:])
			if err != nil {
				return Value{}, err
			}
			if c == '+' {
				return addValues(left, right)
			}
			return subValues(left, right)
		}
	}

	// Multiplicative operators. Never unary, so no position test.
	depth = 0
	for idx := len(expr) - 1; idx >= 0; idx-- {
		c := expr[idx]
		if c == ')' {
			depth++
			continue
		}
		if c == '(' {
			depth--
			continue
		}
		if depth == 0 && (c == '*' || c == '/') {
			left, err := i.Eval(expr[:idx])
			if err != nil {
				return Value{}, err
			}
			right, err := i.Eval(expr[idx+1:])
			if err != nil {
				return Value{}, err
			}
			if c == '*' {
				return mulValues(left, right)
			}
			return divValues(left, right)
		}
	}

	// Resolve one matched parenthesized group by evaluating the interior
	// and substituting the result back into the text. The no-change guard
	// stops malformed input from recursing forever.
	if start := strings.IndexByte(expr, '('); start >= 0 && strings.IndexByte(expr, ')') >= 0 {
		depth := 1
		end := start + 1
		for end < len(expr) && depth > 0 {
			switch expr[end] {
			case '(':
				depth++
			case ')':
				depth--
			}
			end++
		}

		if depth == 0 {
			inner, err := i.Eval(expr[start+1 : end-1])
			if err != nil {
				return Value{}, err
			}
			next := expr[:start] + inner.String() + expr[end:]
			if next != expr {
				return i.Eval(next)
			}
		}
	}

	if v, ok := i.vars[expr]; ok {
		return v, nil
	}
	if v, ok := parseNumber(expr); ok {
		return v, nil
	}

	return Value{}, fmt.Errorf("%w expression %q", ErrEvaluation, expr)
}

func addValues(a, b Value) (Value, error) {
	if a.Kind == KindString && b.Kind == KindString {
		return newString(a.Str + b.Str), nil
	}
	if a.Kind == KindInt && b.Kind == KindInt {
		return newInt(a.I64 + b.I64), nil
	}
	af, err := a.AsFloat64()
	if err != nil {
		return Value{}, err
	}
	bf, err := b.AsFloat64()
	if err != nil {
		return Value{}, err
	}
	return newFloat(af + bf), nil
}

func subValues(a, b Value) (Value, error) {
	if a.Kind == KindInt && b.Kind == KindInt {
		return newInt(a.I64 - b.I64), nil
	}
	af, err := a.AsFloat64()
	if err != nil {
		return Value{}, err
	}
	bf, err := b.AsFloat64()
	if err != nil {
		return Value{}, err
	}
	return newFloat(af - bf), nil
}

func mulValues(a, b Value) (Value, error) {
	if a.Kind == KindInt && b.Kind == KindInt {
		return newInt(a.I64 * b.I64), nil
	}
	af, err := a.AsFloat64()
	if err != nil {
		return Value{}, err
	}
	bf, err := b.AsFloat64()
	if err != nil {
		return Value{}, err
	}
	return newFloat(af * bf), nil
}

// divValues performs true division: the result is always the float kind,
// rendered without the fractional part when it is integral.
func divValues(a, b Value) (Value, error) {
	af, err := a.AsFloat64()
	if err != nil {
		return Value{}, err
	}
	bf, err := b.AsFloat64()
	if err != nil {
		return Value{}, err
	}
	if bf == 0 {
		return Value{}, ErrDivisionByZero
	}
	return newFloat(af / bf), nil
}
