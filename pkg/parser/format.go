package parser

import "fmt"

// ArgKind declares what one format slot must decode to.
type ArgKind int

const (
	// KindOp is derived from the keyword itself and consumes no token.
	KindOp ArgKind = iota
	// KindSegment must exactly match a memory segment keyword.
	KindSegment
	// KindNumber is a signed decimal integer.
	KindNumber
	// KindName is a label or function name, taken verbatim.
	KindName
)

// Format declares the ordered argument kinds that follow a command's
// keyword. It is the single source of truth for how many tokens a
// command takes and what each must decode to.
type Format struct {
	Args []ArgKind
}

var formats = map[CommandType]Format{
	Arithmetic: {Args: []ArgKind{KindOp}},
	Push:       {Args: []ArgKind{KindSegment, KindNumber}},
	Pop:        {Args: []ArgKind{KindSegment, KindNumber}},
	Label:      {Args: []ArgKind{KindName}},
	Goto:       {Args: []ArgKind{KindName}},
	IfGoto:     {Args: []ArgKind{KindName}},
	Function:   {Args: []ArgKind{KindName, KindNumber}},
	Return:     {},
	Call:       {Args: []ArgKind{KindName, KindNumber}},
	Unknown:    {},
}

// allCommandTypes enumerates the closed CommandType set for the
// exhaustiveness check below and for table-driven tests.
var allCommandTypes = []CommandType{
	Arithmetic, Push, Pop, Label, Goto, IfGoto, Function, Return, Call, Unknown,
}

func init() {
	// A command type without a format is a programming error; refuse to
	// start rather than misparse.
	for _, t := range allCommandTypes {
		if _, ok := formats[t]; !ok {
			panic(fmt.Sprintf("parser: no format registered for command type %q", t))
		}
	}
}
