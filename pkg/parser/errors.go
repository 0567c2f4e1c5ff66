package parser

import (
	"errors"
	"fmt"

	"vmparser/pkg/lexer"
)

// Per-line error categories. Each is recoverable: the offending line
// contributes no command, and scanning continues with the next line.
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingToken   = errors.New("missing token")
	ErrUnknownSegment = errors.New("unknown memory segment")
	ErrPopConstant    = errors.New("cannot pop to the constant segment")
	ErrBadNumber      = errors.New("malformed number")
	ErrNumberRange    = errors.New("number out of range")
)

// ErrRead marks a failure of the underlying stream. Unlike the per-line
// categories it is fatal: the scan aborts immediately and no command
// sequence is produced.
var ErrRead = errors.New("read error")

// lineErr ties a per-line error to the offending source line so the
// aggregate report reads standalone.
func lineErr(line lexer.Line, err error) error {
	return fmt.Errorf("line %d: %q: %w", line.Num, line.Text, err)
}
