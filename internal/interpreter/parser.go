package interpreter

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Instruction is one parsed turn-and-move step.
type Instruction struct {
	Turn  Turn
	Steps int
}

func (in Instruction) String() string {
	return in.Turn.String() + strconv.Itoa(in.Steps)
}

// Route is the ordered list of instructions read from the input.
type Route struct {
	Instructions []Instruction
}

type routeAST struct {
	Words []*word `parser:"(@@ (',' @@)*)?"`
}

type word struct {
	Pos  lexer.Position
	Text string `parser:"@Word"`
}

var routeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comma", Pattern: `,`},
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Word", Pattern: `[^,\s]+`},
})

var parser = participle.MustBuild[routeAST](
	participle.Lexer(routeLexer),
	participle.Elide("Whitespace"),
)

// Parse splits comma-separated instructions and parses each one. name is used
// in error positions.
func Parse(name, data string) (*Route, error) {
	ast, err := parser.ParseString(name, data)
	if err != nil {
		return nil, fmt.Errorf("parse route: %w", err)
	}
	route := &Route{Instructions: make([]Instruction, 0, len(ast.Words))}
	for _, w := range ast.Words {
		in, err := ParseInstruction(w.Text)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", w.Pos, err)
		}
		route.Instructions = append(route.Instructions, in)
	}
	return route, nil
}

// ParseInstruction parses a single token such as "R8" or "l3".
func ParseInstruction(raw string) (Instruction, error) {
	tok := strings.TrimSpace(raw)
	if tok == "" {
		return Instruction{}, fmt.Errorf("%w: empty token", ErrMalformedInstruction)
	}
	r, size := utf8.DecodeRuneInString(tok)
	var in Instruction
	switch r {
	case 'R', 'r':
		in.Turn = Right
	case 'L', 'l':
		in.Turn = Left
	default:
		return Instruction{}, fmt.Errorf("%w %q: unknown turn %q", ErrMalformedInstruction, tok, r)
	}
	digits := tok[size:]
	if digits == "" || strings.TrimLeft(digits, "0123456789") != "" {
		return Instruction{}, fmt.Errorf("%w %q: %q is not a non-negative integer", ErrInvalidStepCount, tok, digits)
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return Instruction{}, fmt.Errorf("%w %q: %w", ErrInvalidStepCount, tok, err)
	}
	in.Steps = n
	return in, nil
}
