// File: chain.go
// Title: Text Transformation Chain
// Description: Runs an ordered list of steps over a Text. Each run gets
//              its own ID, logs every step at debug level and stops at the
//              first failing step.
// Author: msto63
// Version: v0.2.1
// Created: 2026-10-17
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-17 v0.1.0: Initial chain implementation
// - 2026-10-18 v0.2.0: Recipes, run IDs, context cancellation
// - 2026-10-19 v0.2.1: Reject nil recipes, nil logger means silent

package chain

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/msto63/stringext/core/config"
	"github.com/msto63/stringext/core/errors"
	"github.com/msto63/stringext/core/log"
	"github.com/msto63/stringext/utils/textx"
)

// Chain applies its steps in order. Build it with New and Add, or with
// FromRecipe; after that it is safe to Run concurrently.
type Chain struct {
	name   string
	steps  []Step
	policy textx.PalindromePolicy
	logger *log.Logger
}

// Result describes one completed run
type Result struct {
	Output     textx.Text
	RunID      string
	Applied    []string
	Palindrome bool
	Duration   time.Duration
}

// New creates an empty chain that logs nothing
func New(name string) *Chain {
	return &Chain{
		name:   name,
		steps:  make([]Step, 0),
		policy: textx.DefaultPalindromePolicy,
		logger: log.Discard(),
	}
}

// FromRecipe builds a chain from a validated recipe. A nil logger is
// replaced by the one the recipe's log section describes, writing to
// stderr.
func FromRecipe(recipe *config.Recipe, logger *log.Logger) (*Chain, error) {
	if recipe == nil {
		return nil, errors.InvalidArgument(errors.ModuleChain, "build", "recipe", nil, "non-nil recipe")
	}
	if err := recipe.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = recipe.Logger(nil)
	}

	c := New(recipe.Name).
		WithPolicy(recipe.Policy()).
		WithLogger(logger)

	for i, s := range recipe.Steps {
		step, err := BuildStep(i, s)
		if err != nil {
			return nil, err
		}
		c.Add(step)
	}

	c.logger.Debug("chain built", log.Int("steps", len(c.steps)))
	return c, nil
}

// Add appends a step
func (c *Chain) Add(step Step) *Chain {
	c.steps = append(c.steps, step)
	return c
}

// WithLogger sets the logger; the chain name is used as logger name.
// A nil logger silences the chain.
func (c *Chain) WithLogger(logger *log.Logger) *Chain {
	if logger == nil {
		logger = log.Discard()
	}
	c.logger = logger.WithName(c.name)
	return c
}

// WithPolicy sets the palindrome policy used for Result.Palindrome
func (c *Chain) WithPolicy(policy textx.PalindromePolicy) *Chain {
	c.policy = policy
	return c
}

// Name returns the chain name
func (c *Chain) Name() string {
	return c.name
}

// Len returns the number of steps
func (c *Chain) Len() int {
	return len(c.steps)
}

// Steps returns the step names in order
func (c *Chain) Steps() []string {
	names := make([]string, len(c.steps))
	for i, s := range c.steps {
		names[i] = s.Name()
	}
	return names
}

// Run applies all steps to in
func (c *Chain) Run(in textx.Text) (*Result, error) {
	return c.RunContext(context.Background(), in)
}

// RunContext applies all steps to in, checking ctx before each step
func (c *Chain) RunContext(ctx context.Context, in textx.Text) (*Result, error) {
	runID := uuid.New().String()
	logger := c.logger.WithRequestID(runID)
	timer := logger.StartTimer("chain run").WithField("steps", len(c.steps))

	result := &Result{
		RunID:   runID,
		Applied: make([]string, 0, len(c.steps)),
	}

	current := in
	for i, step := range c.steps {
		if err := ctx.Err(); err != nil {
			err = errors.ChainStepFailed(runID, i, step.Name(), err)
			logger.WarnWithErr("run cancelled", err, log.Int("step", i))
			timer.StopWithError(err)
			return nil, err
		}

		out, err := step.Apply(current)
		if err != nil {
			err = errors.ChainStepFailed(runID, i, step.Name(), err)
			logger.ErrorWithErr("step failed", err, log.Int("step", i), log.String("op", step.Name()))
			timer.StopWithError(err)
			return nil, err
		}

		logger.Debug("step applied", log.Fields{
			"step":    i,
			"op":      step.Name(),
			"in_len":  current.Len(),
			"out_len": out.Len(),
		})

		result.Applied = append(result.Applied, step.Name())
		current = out
	}

	result.Output = current
	result.Palindrome = textx.IsPalindromeWithPolicy(current, c.policy)
	result.Duration = timer.Stop()
	return result, nil
}
