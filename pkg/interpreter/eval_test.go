package interpreter

import (
	"errors"
	"testing"
)

func TestEvalArithmetic(t *testing.T) {
	tests := []struct {
		input       string
		expected    string
		description string
	}{
		{"42", "42", "integer literal"},
		{"3.14", "3.14", "float literal"},
		{"-5", "-5", "negative literal"},
		{"\"hello\"", "hello", "quoted string literal"},

		{"2 + 3 * 4", "14", "multiplication binds tighter than addition"},
		{"(2 + 3) * 4", "20", "parentheses override precedence"},
		{"2 + 3 + 4", "9", "addition chain"},
		{"10 - 3 - 2", "5", "subtraction chains left to right"},
		{"100 / 10 / 2", "5", "division chains left to right"},
		{"2 * 3 + 4 * 5", "26", "two products"},

		{"10 / 2", "5", "integral quotient renders without decimal point"},
		{"7 / 2", "3.5", "fractional quotient"},
		{"0.5 + 1", "1.5", "float addition"},
		{"10 / 4 * 2", "5", "division result feeds multiplication"},

		{"2*-3", "-6", "unary minus after operator"},
		{"1 +-2", "-1", "signed right operand"},
		{"-(2+3)", "-5", "negated group"},
		{"((2+3)*(4+1))", "25", "nested parentheses"},
		{"(7)", "7", "redundant parentheses"},
	}

	for _, test := range tests {
		i := New()
		v, err := i.Eval(test.input)
		if err != nil {
			t.Errorf("Eval(%q) (%s): unexpected error: %v", test.input, test.description, err)
			continue
		}
		if got := v.String(); got != test.expected {
			t.Errorf("Eval(%q) (%s): expected %s, got %s", test.input, test.description, test.expected, got)
		}
	}
}

func TestEvalVariables(t *testing.T) {
	tests := []struct {
		input       string
		expected    string
		description string
	}{
		{"X", "10", "bare numeric variable"},
		{"X + 5", "15", "variable in arithmetic"},
		{"X * X", "100", "variable on both sides"},
		{"A$", "foo", "string variable with $ suffix"},
		{"A$ + B$", "foobar", "string concatenation"},
		{"PI + 1", "4.14", "float variable"},
	}

	for _, test := range tests {
		i := New()
		i.vars["X"] = newInt(10)
		i.vars["PI"] = newFloat(3.14)
		i.vars["A$"] = newString("foo")
		i.vars["B$"] = newString("bar")

		v, err := i.Eval(test.input)
		if err != nil {
			t.Errorf("Eval(%q) (%s): unexpected error: %v", test.input, test.description, err)
			continue
		}
		if got := v.String(); got != test.expected {
			t.Errorf("Eval(%q) (%s): expected %s, got %s", test.input, test.description, test.expected, got)
		}
	}
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		input       string
		sentinel    error
		description string
	}{
		{"10 / 0", ErrDivisionByZero, "division by exact zero"},
		{"2 / (3 - 3)", ErrDivisionByZero, "division by zero after group resolution"},
		{"FOO + 1", ErrEvaluation, "undefined variable in arithmetic"},
		{"BAR", ErrEvaluation, "bare undefined variable"},
		{"A$ - 1", ErrEvaluation, "subtraction on text"},
		{"1 + ", ErrEvaluation, "dangling operator"},
	}

	for _, test := range tests {
		i := New()
		i.vars["A$"] = newString("foo")

		_, err := i.Eval(test.input)
		if err == nil {
			t.Errorf("Eval(%q) (%s): expected error, got none", test.input, test.description)
			continue
		}
		if !errors.Is(err, test.sentinel) {
			t.Errorf("Eval(%q) (%s): expected %v, got %v", test.input, test.description, test.sentinel, err)
		}
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		value       Value
		expected    string
		description string
	}{
		{newInt(42), "42", "integer"},
		{newFloat(5), "5", "integral float drops the decimal point"},
		{newFloat(3.5), "3.5", "fractional float"},
		{newFloat(-2), "-2", "negative integral float"},
		{newString("hi"), "hi", "string"},
	}

	for _, test := range tests {
		if got := test.value.String(); got != test.expected {
			t.Errorf("%s: expected %s, got %s", test.description, test.expected, got)
		}
	}
}
