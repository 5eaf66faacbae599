package interpreter

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type ValueKind int

const (
	KindUnknown ValueKind = iota
	KindInt
	KindFloat
	KindString
)

// Value represents a dynamically-typed BASIC value: an integer, a float, or
// a text string. Variables ending in $ conventionally hold strings, but the
// suffix is not enforced.
type Value struct {
	Kind ValueKind
	I64  int64
	F64  float64
	Str  string
}

// String renders the value the way PRINT displays it: floats with no
// fractional part print as integers.
func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.I64, 10)
	case KindFloat:
		if v.F64 == math.Trunc(v.F64) && math.Abs(v.F64) < 1e15 {
			return strconv.FormatInt(int64(v.F64), 10)
		}
		return strconv.FormatFloat(v.F64, 'g', -1, 64)
	case KindString:
		return v.Str
	default:
		return "<nil>"
	}
}

// IsNumeric reports whether the value is an int or a float.
func (v Value) IsNumeric() bool {
	return v.Kind == KindInt || v.Kind == KindFloat
}

// AsFloat64 converts a numeric value to float64.
func (v Value) AsFloat64() (float64, error) {
	switch v.Kind {
	case KindFloat:
		return v.F64, nil
	case KindInt:
		return float64(v.I64), nil
	default:
		return 0, fmt.Errorf("%w: expected a number, got %q", ErrEvaluation, v.Str)
	}
}

func newInt(i int64) Value {
	return Value{Kind: KindInt, I64: i}
}

func newFloat(f float64) Value {
	return Value{Kind: KindFloat, F64: f}
}

func newString(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// parseNumber parses a numeric literal: a radix point selects the float
// kind, anything else must be an integer. Mirrors the evaluator's literal
// rule, so "1e5" is not a number here.
func parseNumber(s string) (Value, bool) {
	if strings.Contains(s, ".") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Value{}, false
		}
		return newFloat(f), true
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Value{}, false
	}
	return newInt(i), true
}
