package pipeline

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/gogpu/picture"
)

// Parse errors.
var (
	// ErrInvalidCommand is returned for an unknown command keyword.
	ErrInvalidCommand = errors.New("invalid command")

	// ErrInvalidArgument is returned for a missing or malformed argument.
	ErrInvalidArgument = errors.New("invalid argument")
)

// CommandError reports the token that could not be parsed.
type CommandError struct {
	Pos   int    // index of the token in the command list
	Token string // offending token; empty when an argument is missing
	Err   error  // ErrInvalidCommand or ErrInvalidArgument
	Msg   string
}

func (e *CommandError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("pipeline: %v at token %d: %s", e.Err, e.Pos, e.Msg)
	}
	return fmt.Sprintf("pipeline: %v %q at token %d: %s", e.Err, e.Token, e.Pos, e.Msg)
}

func (e *CommandError) Unwrap() error { return e.Err }

// parser walks an immutable token list with a cursor.
type parser struct {
	tokens []string
	pos    int
}

// Parse turns a command list into typed commands.
//
// blend takes every remaining token as a path, so it always ends the
// pipeline: nothing after it is parsed as a command.
func Parse(tokens []string) ([]Command, error) {
	ps := &parser{tokens: tokens}

	var cmds []Command
	for !ps.done() {
		cmd, err := ps.command()
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}

func (ps *parser) done() bool {
	return ps.pos >= len(ps.tokens)
}

func (ps *parser) next() (string, bool) {
	if ps.done() {
		return "", false
	}
	tok := ps.tokens[ps.pos]
	ps.pos++
	return tok, true
}

func (ps *parser) command() (Command, error) {
	start := ps.pos
	name, _ := ps.next()

	switch name {
	case "invert":
		return Invert{}, nil
	case "grayscale":
		return Grayscale{}, nil
	case "blur":
		return Blur{}, nil
	case "rotate":
		deg, err := ps.float("angle")
		if err != nil {
			return nil, err
		}
		return Rotate{Degrees: deg}, nil
	case "flip":
		return ps.flip()
	case "matrix":
		rows := [][]float64{make([]float64, 2), make([]float64, 2)}
		for i, arg := range [...]string{"a", "b", "c", "d"} {
			f, err := ps.float(arg)
			if err != nil {
				return nil, err
			}
			rows[i/2][i%2] = f
		}
		m, err := picture.MatrixFromRows(rows)
		if err != nil {
			return nil, &CommandError{Pos: start, Token: name, Err: ErrInvalidArgument, Msg: err.Error()}
		}
		return Transform{Matrix: m}, nil
	case "blend":
		paths := append([]string(nil), ps.tokens[ps.pos:]...)
		ps.pos = len(ps.tokens)
		return Blend{Paths: paths}, nil
	default:
		return nil, &CommandError{Pos: start, Token: name, Err: ErrInvalidCommand, Msg: "unknown command"}
	}
}

func (ps *parser) flip() (Command, error) {
	pos := ps.pos
	tok, ok := ps.next()
	if !ok {
		return nil, &CommandError{Pos: pos, Err: ErrInvalidArgument, Msg: "flip needs H or V"}
	}
	switch tok {
	case "H":
		return Flip{Axis: picture.Horizontal}, nil
	case "V":
		return Flip{Axis: picture.Vertical}, nil
	default:
		return nil, &CommandError{Pos: pos, Token: tok, Err: ErrInvalidArgument, Msg: "flip direction must be H or V"}
	}
}

func (ps *parser) float(arg string) (float64, error) {
	pos := ps.pos
	tok, ok := ps.next()
	if !ok {
		return 0, &CommandError{Pos: pos, Err: ErrInvalidArgument, Msg: "missing " + arg}
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, &CommandError{Pos: pos, Token: tok, Err: ErrInvalidArgument, Msg: arg + " is not a number"}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &CommandError{Pos: pos, Token: tok, Err: ErrInvalidArgument, Msg: arg + " must be finite"}
	}
	return f, nil
}
