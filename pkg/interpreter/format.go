package interpreter

import (
	"fmt"
	"strings"
)

// execPrint renders a PRINT argument list: segments split on semicolons
// outside quoted spans, quoted segments emitted literally, the rest
// evaluated, all joined by a single space. No arguments prints a blank
// line.
func (i *Interpreter) execPrint(args string) error {
	args = strings.TrimSpace(args)
	if args == "" {
		fmt.Fprintln(i.out)
		return nil
	}

	var out []string
	for _, part := range splitPrintArgs(args) {
		if part == ";" {
			continue
		}

		if isQuoted(part) {
			out = append(out, part[1:len(part)-1])
			continue
		}

		v, err := i.Eval(part)
		if err != nil {
			return fmt.Errorf("error evaluating expression %q: %w", part, err)
		}
		out = append(out, v.String())
	}

	fmt.Fprintln(i.out, strings.Join(out, " "))
	return nil
}

// splitPrintArgs splits on semicolons, ignoring semicolons inside quoted
// spans. Empty segments are dropped.
func splitPrintArgs(s string) []string {
	var parts []string
	var cur strings.Builder
	inQuotes := false

	for k := 0; k < len(s); k++ {
		c := s[k]
		switch {
		case c == '"':
			inQuotes = !inQuotes
			cur.WriteByte(c)
		case c == ';' && !inQuotes:
			if p := strings.TrimSpace(cur.String()); p != "" {
				parts = append(parts, p)
			}
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}

	if p := strings.TrimSpace(cur.String()); p != "" {
		parts = append(parts, p)
	}
	return parts
}

// execInput requests one line of text, with either a quoted prompt
// (INPUT "prompt"; var) or the generic "? " marker (INPUT var), and binds
// the reply: a number when it parses as one, text otherwise.
func (i *Interpreter) execInput(args string) error {
	args = strings.TrimSpace(args)

	var name, reply string
	var err error

	if idx := strings.IndexByte(args, ';'); idx >= 0 {
		prompt := strings.TrimSpace(args[:idx])
		name = strings.TrimSpace(args[idx+1:])
		if isQuoted(prompt) {
			reply, err = i.readLine(prompt[1 : len(prompt)-1])
		} else {
			reply, err = i.readLine("")
		}
	} else {
		name = args
		reply, err = i.readLine("? ")
	}
	if err != nil {
		return err
	}

	if v, ok := parseNumber(reply); ok {
		i.vars[name] = v
	} else {
		i.vars[name] = newString(reply)
	}
	return nil
}

// readLine writes the prompt without a newline and blocks for one line.
func (i *Interpreter) readLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(i.out, prompt)
	}

	line, err := i.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("%w: %v", ErrInput, err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
