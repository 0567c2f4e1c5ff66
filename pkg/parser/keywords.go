package parser

// Keyword tables. Built once at process start and never mutated, so
// concurrent parses can share them without locking.

var commandTypes = map[string]CommandType{
	"push":     Push,
	"pop":      Pop,
	"label":    Label,
	"goto":     Goto,
	"if-goto":  IfGoto,
	"function": Function,
	"return":   Return,
	"call":     Call,

	// The nine arithmetic mnemonics all classify to Arithmetic; the
	// operator itself is recovered from the keyword during parsing.
	"add": Arithmetic,
	"sub": Arithmetic,
	"neg": Arithmetic,
	"eq":  Arithmetic,
	"gt":  Arithmetic,
	"lt":  Arithmetic,
	"and": Arithmetic,
	"or":  Arithmetic,
	"not": Arithmetic,
}

var segments = map[string]Segment{
	"argument": SegArgument,
	"local":    SegLocal,
	"static":   SegStatic,
	"constant": SegConstant,
	"this":     SegThis,
	"that":     SegThat,
	"pointer":  SegPointer,
	"temp":     SegTemp,
}

var ops = map[string]Op{
	"add": OpAdd,
	"sub": OpSub,
	"neg": OpNeg,
	"eq":  OpEq,
	"gt":  OpGt,
	"lt":  OpLt,
	"and": OpAnd,
	"or":  OpOr,
	"not": OpNot,
}

// Classify maps the leading keyword of a line to its command type.
// Matching is exact and case sensitive; anything unrecognized is Unknown.
func Classify(keyword string) CommandType {
	if t, ok := commandTypes[keyword]; ok {
		return t
	}
	return Unknown
}
