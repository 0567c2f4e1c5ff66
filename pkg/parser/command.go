package parser

import (
	"strconv"
	"strings"
)

// CommandType identifies the kind of a VM command.
type CommandType string

const (
	Arithmetic CommandType = "arithmetic"
	Push       CommandType = "push"
	Pop        CommandType = "pop"
	Label      CommandType = "label"
	Goto       CommandType = "goto"
	IfGoto     CommandType = "if-goto"
	Function   CommandType = "function"
	Return     CommandType = "return"
	Call       CommandType = "call"
	Unknown    CommandType = "unknown"
)

// Segment names a memory segment addressable by push and pop.
type Segment string

const (
	SegArgument Segment = "argument"
	SegLocal    Segment = "local"
	SegStatic   Segment = "static"
	SegConstant Segment = "constant"
	SegThis     Segment = "this"
	SegThat     Segment = "that"
	SegPointer  Segment = "pointer"
	SegTemp     Segment = "temp"
)

// Op is one of the nine stack arithmetic/logic operations.
type Op string

const (
	OpAdd Op = "add"
	OpSub Op = "sub"
	OpNeg Op = "neg"
	OpEq  Op = "eq"
	OpGt  Op = "gt"
	OpLt  Op = "lt"
	OpAnd Op = "and"
	OpOr  Op = "or"
	OpNot Op = "not"
)

// Arg is one decoded command argument. Exactly one concrete type is
// valid for each argument slot, as declared by the command's format.
type Arg interface {
	argNode()
	String() string
}

// OpArg carries the operator of an arithmetic command.
type OpArg struct {
	Op Op `json:"op"`
}

func (OpArg) argNode() {}

func (a OpArg) String() string { return string(a.Op) }

// SegmentArg carries the memory segment of a push or pop.
type SegmentArg struct {
	Segment Segment `json:"segment"`
}

func (SegmentArg) argNode() {}

func (a SegmentArg) String() string { return string(a.Segment) }

// NumberArg carries a segment index or an argument count.
type NumberArg struct {
	Value int `json:"number"`
}

func (NumberArg) argNode() {}

func (a NumberArg) String() string { return strconv.Itoa(a.Value) }

// NameArg carries a label or function name, recorded verbatim. The name
// is not resolved here; that is the symbol table's job downstream.
type NameArg struct {
	Name string `json:"name"`
}

func (NameArg) argNode() {}

func (a NameArg) String() string { return a.Name }

// Command is one validated VM command record. Its argument count and
// per-slot types always match the format registered for its type.
type Command struct {
	Type CommandType `json:"command"`
	Args []Arg       `json:"args"`
	Line int         `json:"line"`
}

// String reconstructs the canonical source text of the command, e.g.
// "push constant 17" or "add".
func (c Command) String() string {
	if c.Type == Arithmetic && len(c.Args) == 1 {
		return c.Args[0].String()
	}
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, string(c.Type))
	for _, a := range c.Args {
		parts = append(parts, a.String())
	}
	return strings.Join(parts, " ")
}
