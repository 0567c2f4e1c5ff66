// Package parser turns VM source into an ordered sequence of validated
// command records for a downstream code generator.
//
// Each logical line is classified by its leading keyword, then its
// remaining tokens are decoded against the format registered for that
// command type. Lines that fail any check contribute no record but do
// not stop the scan: every per-line error is collected, and the parse
// as a whole fails only after the input is exhausted. A failed parse
// means the command sequence is unusable, even though parts of it may
// have decoded cleanly.
//
// The generator may assume every record it receives is well formed:
// argument counts and types match the command's format, pop never
// targets the constant segment, and segment indexes are in range.
package parser

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"

	"vmparser/pkg/lexer"
)

// Segment index bounds for push and pop.
const (
	maxTempIndex    = 7
	maxSegmentIndex = 32767
)

// Parse reads VM source to exhaustion and returns the commands of every
// line that parsed cleanly, in source order.
//
// If any line failed, Parse returns the accumulated per-line errors and
// the caller must discard the sequence. A failure of the underlying
// stream is reported immediately as an error matching ErrRead.
func Parse(r io.Reader) ([]Command, error) {
	lr := lexer.NewLineReader(r)

	var cmds []Command
	var errs *multierror.Error

	for {
		line, err := lr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRead, err)
		}

		cmd, err := parseLine(line)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		cmds = append(cmds, cmd)
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return cmds, nil
}

// ParseString parses VM source held in memory.
func ParseString(src string) ([]Command, error) {
	return Parse(strings.NewReader(src))
}

// parseLine decodes one logical line into a command record. All errors
// found on the line are reported together, not just the first.
func parseLine(line lexer.Line) (Command, error) {
	tokens := line.Tokens()
	keyword := tokens[0] // a logical line is never empty

	typ := Classify(keyword)
	if typ == Unknown {
		return Command{}, lineErr(line, fmt.Errorf("%w %q", ErrUnknownCommand, keyword))
	}

	format := formats[typ]
	args := make([]Arg, 0, len(format.Args))
	rest := tokens[1:]

	var errs *multierror.Error

	// Remembered across slots: the number range check depends on the
	// segment parsed earlier on the same line.
	var seg Segment

	for _, kind := range format.Args {
		if kind == KindOp {
			args = append(args, OpArg{Op: ops[keyword]})
			continue
		}

		if len(rest) == 0 {
			errs = multierror.Append(errs, lineErr(line, ErrMissingToken))
			return Command{}, errs.ErrorOrNil()
		}
		tok := rest[0]
		rest = rest[1:]

		switch kind {
		case KindSegment:
			s, ok := segments[tok]
			if !ok {
				errs = multierror.Append(errs, lineErr(line, fmt.Errorf("%w %q", ErrUnknownSegment, tok)))
				continue
			}
			if typ == Pop && s == SegConstant {
				errs = multierror.Append(errs, lineErr(line, ErrPopConstant))
			}
			seg = s
			args = append(args, SegmentArg{Segment: s})

		case KindNumber:
			n, err := strconv.Atoi(tok)
			if err != nil {
				errs = multierror.Append(errs, lineErr(line, fmt.Errorf("%w %q", ErrBadNumber, tok)))
				continue
			}
			if typ == Push || typ == Pop {
				limit := maxSegmentIndex
				if seg == SegTemp {
					limit = maxTempIndex
				}
				if n < 0 || n > limit {
					errs = multierror.Append(errs, lineErr(line,
						fmt.Errorf("%w: %d is not between 0 and %d", ErrNumberRange, n, limit)))
				}
			}
			args = append(args, NumberArg{Value: n})

		case KindName:
			args = append(args, NameArg{Name: tok})
		}
	}

	if err := errs.ErrorOrNil(); err != nil {
		return Command{}, err
	}
	return Command{Type: typ, Args: args, Line: line.Num}, nil
}
