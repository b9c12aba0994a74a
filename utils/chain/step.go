// File: step.go
// Title: Chain Steps
// Description: A Step turns one Text into another. Steps are built from
//              recipe entries through the op table below, or wrapped from
//              plain functions with Func.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-17 v0.1.0: Text ops
// - 2026-10-18 v0.2.0: resplit and hex ops

package chain

import (
	"sort"

	"github.com/msto63/stringext/core/config"
	"github.com/msto63/stringext/core/errors"
	"github.com/msto63/stringext/utils/hexx"
	"github.com/msto63/stringext/utils/textx"
)

// Step is a single named transformation
type Step interface {
	Name() string
	Apply(in textx.Text) (textx.Text, error)
}

type funcStep struct {
	name string
	fn   func(textx.Text) (textx.Text, error)
}

func (s funcStep) Name() string { return s.name }

func (s funcStep) Apply(in textx.Text) (textx.Text, error) { return s.fn(in) }

// Func wraps fn as a Step called name
func Func(name string, fn func(textx.Text) (textx.Text, error)) Step {
	return funcStep{name: name, fn: fn}
}

// pure adapts an operation that cannot fail
func pure(name string, fn func(textx.Text) textx.Text) Step {
	return Func(name, func(in textx.Text) (textx.Text, error) { return fn(in), nil })
}

type builder func(op string, s config.Step) (Step, error)

var ops = map[string]builder{
	"trim":       func(op string, _ config.Step) (Step, error) { return pure(op, textx.Trim), nil },
	"trim_left":  func(op string, _ config.Step) (Step, error) { return pure(op, textx.TrimLeft), nil },
	"trim_right": func(op string, _ config.Step) (Step, error) { return pure(op, textx.TrimRight), nil },
	"lower":      func(op string, _ config.Step) (Step, error) { return pure(op, textx.ToLowerCase), nil },
	"upper":      func(op string, _ config.Step) (Step, error) { return pure(op, textx.ToUpperCase), nil },
	"reverse":    func(op string, _ config.Step) (Step, error) { return pure(op, textx.Reverse), nil },

	"replace":     buildReplace(textx.ReplaceFirst),
	"replace_all": buildReplace(textx.ReplaceAll),

	"substr": func(op string, s config.Step) (Step, error) {
		return Func(op, func(in textx.Text) (textx.Text, error) {
			return textx.Substr(in, s.Start, s.Count)
		}), nil
	},
	"substring": func(op string, s config.Step) (Step, error) {
		return Func(op, func(in textx.Text) (textx.Text, error) {
			return textx.Substring(in, s.Start, s.End)
		}), nil
	},

	"left_justify":   buildJustify(textx.LeftJustify),
	"right_justify":  buildJustify(textx.RightJustify),
	"center_justify": buildJustify(textx.CenterJustify),

	"append": func(op string, s config.Step) (Step, error) {
		suffix := textx.New(s.Text)
		return Func(op, func(in textx.Text) (textx.Text, error) {
			return textx.Concat(in, suffix)
		}), nil
	},
	"prepend": func(op string, s config.Step) (Step, error) {
		prefix := textx.New(s.Text)
		return Func(op, func(in textx.Text) (textx.Text, error) {
			return textx.Concat(prefix, in)
		}), nil
	},

	"resplit": func(op string, s config.Step) (Step, error) {
		if s.Delimiter == "" {
			return nil, errors.InvalidArgument(errors.ModuleChain, "build", "delimiter", s.Delimiter, "non-empty delimiter for "+op)
		}
		delim, joiner := textx.New(s.Delimiter), textx.New(s.Joiner)
		return Func(op, func(in textx.Text) (textx.Text, error) {
			tokens, err := textx.Split(in, delim)
			if err != nil {
				return textx.Text{}, err
			}
			return textx.Join(tokens, joiner)
		}), nil
	},

	"hex_encode": func(op string, _ config.Step) (Step, error) {
		return Func(op, func(in textx.Text) (textx.Text, error) {
			return hexx.Encode(in.Bytes())
		}), nil
	},
	"hex_decode": func(op string, _ config.Step) (Step, error) {
		return Func(op, func(in textx.Text) (textx.Text, error) {
			b, err := hexx.Decode(in)
			if err != nil {
				return textx.Text{}, err
			}
			return textx.FromBytes(b), nil
		}), nil
	},
}

func buildReplace(fn func(str, old, new textx.Text) (textx.Text, error)) builder {
	return func(op string, s config.Step) (Step, error) {
		old, repl := textx.New(s.Old), textx.New(s.New)
		return Func(op, func(in textx.Text) (textx.Text, error) {
			return fn(in, old, repl)
		}), nil
	}
}

func buildJustify(fn func(str textx.Text, width int, fill byte) (textx.Text, error)) builder {
	return func(op string, s config.Step) (Step, error) {
		if len(s.Fill) > 1 {
			return nil, errors.InvalidArgument(errors.ModuleChain, "build", "fill", s.Fill, "a single byte")
		}
		width, fill := s.Width, s.FillByte()
		return Func(op, func(in textx.Text) (textx.Text, error) {
			return fn(in, width, fill)
		}), nil
	}
}

// BuildStep creates the step described by s. index is the position of s
// in its recipe and appears in errors.
func BuildStep(index int, s config.Step) (Step, error) {
	build, ok := ops[s.Op]
	if !ok {
		return nil, errors.ChainUnknownOp(s.Op, index)
	}
	step, err := build(s.Op, s)
	if err != nil {
		return nil, errors.ChainStepFailed("", index, s.Op, err)
	}
	return step, nil
}

// Ops returns the names of all recipe operations, sorted
func Ops() []string {
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
