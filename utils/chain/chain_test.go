// File: chain_test.go
// Title: Chain Tests
// Description: Recipe-built and hand-built chains, step logging, run IDs
//              and failure reporting.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-18

package chain

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/stringext/core/config"
	mdwerror "github.com/msto63/stringext/core/error"
	"github.com/msto63/stringext/core/log"
	"github.com/msto63/stringext/utils/textx"
)

func newBufferLogger() (*log.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatJSON, Output: buf}), buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var lines []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		lines = append(lines, m)
	}
	return lines
}

func recipe(steps ...config.Step) *config.Recipe {
	r := config.NewRecipe()
	r.Name = "test"
	r.Steps = steps
	return r
}

func runRecipe(t *testing.T, input string, steps ...config.Step) string {
	t.Helper()
	c, err := FromRecipe(recipe(steps...), log.Discard())
	require.NoError(t, err)
	res, err := c.Run(textx.New(input))
	require.NoError(t, err)
	return res.Output.String()
}

func TestOps(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		step     config.Step
		expected string
	}{
		{"trim", "  a  ", config.Step{Op: "trim"}, "a"},
		{"trim_left", "  a  ", config.Step{Op: "trim_left"}, "a  "},
		{"trim_right", "  a  ", config.Step{Op: "trim_right"}, "  a"},
		{"lower", "AbC", config.Step{Op: "lower"}, "abc"},
		{"upper", "AbC", config.Step{Op: "upper"}, "ABC"},
		{"reverse", "abc", config.Step{Op: "reverse"}, "cba"},
		{"replace", "a-b-c", config.Step{Op: "replace", Old: "-", New: "+"}, "a+b-c"},
		{"replace_all", "aaaa", config.Step{Op: "replace_all", Old: "aa", New: "a"}, "aa"},
		{"substr", "hello", config.Step{Op: "substr", Start: 1, Count: 3}, "ell"},
		{"substring", "hello", config.Step{Op: "substring", Start: 1, End: 3}, "el"},
		{"left_justify", "x", config.Step{Op: "left_justify", Width: 3, Fill: "."}, "x.."},
		{"right_justify", "x", config.Step{Op: "right_justify", Width: 3}, "  x"},
		{"center_justify", "x", config.Step{Op: "center_justify", Width: 4, Fill: "*"}, "*x**"},
		{"append", "foo", config.Step{Op: "append", Text: "bar"}, "foobar"},
		{"prepend", "foo", config.Step{Op: "prepend", Text: "bar"}, "barfoo"},
		{"resplit", "a,b,,c", config.Step{Op: "resplit", Delimiter: ",", Joiner: " | "}, "a | b |  | c"},
		{"hex_encode", "Hi", config.Step{Op: "hex_encode"}, "4869"},
		{"hex_decode", "4869", config.Step{Op: "hex_decode"}, "Hi"},
	}

	covered := make(map[string]bool)
	for _, tt := range tests {
		covered[tt.step.Op] = true
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, runRecipe(t, tt.input, tt.step))
		})
	}

	for _, op := range Ops() {
		assert.True(t, covered[op], "op %s has no test", op)
	}
}

func TestRunAppliesStepsInOrder(t *testing.T) {
	out := runRecipe(t, "  hello world  ",
		config.Step{Op: "trim"},
		config.Step{Op: "upper"},
		config.Step{Op: "replace_all", Old: " ", New: "_"},
		config.Step{Op: "center_justify", Width: 15, Fill: "="},
	)
	assert.Equal(t, "==HELLO_WORLD==", out)
}

func TestHexRoundTripThroughChain(t *testing.T) {
	out := runRecipe(t, "round trip",
		config.Step{Op: "hex_encode"},
		config.Step{Op: "lower"},
		config.Step{Op: "hex_decode"},
	)
	assert.Equal(t, "round trip", out)
}

func TestResult(t *testing.T) {
	r := recipe(config.Step{Op: "trim"})
	r.PalindromePolicy = textx.ShortIsNotPalindrome.String()

	c, err := FromRecipe(r, log.Discard())
	require.NoError(t, err)

	res, err := c.Run(textx.New(" a "))
	require.NoError(t, err)
	assert.Equal(t, "a", res.Output.String())
	assert.False(t, res.Palindrome)
	assert.Equal(t, []string{"trim"}, res.Applied)

	_, err = uuid.Parse(res.RunID)
	assert.NoError(t, err)

	res, err = c.Run(textx.New(" abba "))
	require.NoError(t, err)
	assert.True(t, res.Palindrome)
}

func TestRunIDsAreUnique(t *testing.T) {
	c := New("ids").Add(pure("upper", textx.ToUpperCase))

	first, err := c.Run(textx.New("a"))
	require.NoError(t, err)
	second, err := c.Run(textx.New("a"))
	require.NoError(t, err)
	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestFromRecipeUnknownOp(t *testing.T) {
	_, err := FromRecipe(recipe(config.Step{Op: "trim"}, config.Step{Op: "shout"}), log.Discard())
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeNotFound))

	var mdwErr *mdwerror.Error
	require.ErrorAs(t, err, &mdwErr)
	step, ok := mdwErr.Detail("step")
	require.True(t, ok)
	assert.Equal(t, 1, step)
}

func TestFromRecipeInvalidArguments(t *testing.T) {
	t.Run("resplit without delimiter", func(t *testing.T) {
		_, err := FromRecipe(recipe(config.Step{Op: "resplit"}), log.Discard())
		require.Error(t, err)
		assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidArgument))
	})

	t.Run("invalid recipe", func(t *testing.T) {
		_, err := FromRecipe(recipe(), log.Discard())
		require.Error(t, err)
		assert.True(t, mdwerror.HasCode(err, mdwerror.CodeConfigError))
	})
}

func TestFromRecipeNilRecipe(t *testing.T) {
	c, err := FromRecipe(nil, log.Discard())
	require.Error(t, err)
	assert.Nil(t, c)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidArgument))
}

func TestWithNilLogger(t *testing.T) {
	c := New("quiet").WithLogger(nil).Add(pure("upper", textx.ToUpperCase))

	res, err := c.Run(textx.New("abc"))
	require.NoError(t, err)
	assert.Equal(t, "ABC", res.Output.String())
}

func TestBuildStepFillTooLong(t *testing.T) {
	_, err := BuildStep(0, config.Step{Op: "left_justify", Width: 4, Fill: "ab"})
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidArgument))
}

func TestRunFailingStep(t *testing.T) {
	logger, buf := newBufferLogger()
	c, err := FromRecipe(recipe(
		config.Step{Op: "trim"},
		config.Step{Op: "substr", Start: 2, Count: 10},
		config.Step{Op: "upper"},
	), logger)
	require.NoError(t, err)

	res, err := c.Run(textx.New("short"))
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidArgument))

	var mdwErr *mdwerror.Error
	require.ErrorAs(t, err, &mdwErr)
	assert.NotEmpty(t, mdwErr.RequestID())
	op, _ := mdwErr.Detail("op")
	assert.Equal(t, "substr", op)
	step, _ := mdwErr.Detail("step")
	assert.Equal(t, 1, step)

	var failed map[string]interface{}
	for _, line := range decodeLines(t, buf) {
		if line["message"] == "step failed" {
			failed = line
		}
	}
	require.NotNil(t, failed)
	assert.Equal(t, mdwErr.RequestID(), failed["request_id"])
	assert.Equal(t, "test", failed["logger"])
}

func TestRunLogsEachStep(t *testing.T) {
	logger, buf := newBufferLogger()
	c, err := FromRecipe(recipe(
		config.Step{Op: "trim"},
		config.Step{Op: "left_justify", Width: 8},
	), logger)
	require.NoError(t, err)

	res, err := c.Run(textx.New(" abc "))
	require.NoError(t, err)

	var steps []map[string]interface{}
	for _, line := range decodeLines(t, buf) {
		if line["message"] == "step applied" {
			steps = append(steps, line)
		}
	}
	require.Len(t, steps, 2)

	assert.Equal(t, "trim", steps[0]["op"])
	assert.Equal(t, float64(5), steps[0]["in_len"])
	assert.Equal(t, float64(3), steps[0]["out_len"])
	assert.Equal(t, "left_justify", steps[1]["op"])
	assert.Equal(t, float64(8), steps[1]["out_len"])
	assert.Equal(t, res.RunID, steps[1]["request_id"])
}

func TestRunContextCancelled(t *testing.T) {
	logger, buf := newBufferLogger()
	c := New("cancel").WithLogger(logger).Add(pure("trim", textx.Trim))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.RunContext(ctx, textx.New(" x "))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	var messages []interface{}
	for _, line := range decodeLines(t, buf) {
		messages = append(messages, line["message"])
	}
	assert.Equal(t, []interface{}{"run cancelled", "chain run failed"}, messages)
}

func TestHandBuiltChain(t *testing.T) {
	c := New("manual").
		Add(Func("shout", func(in textx.Text) (textx.Text, error) {
			return textx.Concat(textx.ToUpperCase(in), textx.New("!"))
		})).
		Add(pure("reverse", textx.Reverse))

	assert.Equal(t, "manual", c.Name())
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []string{"shout", "reverse"}, c.Steps())

	res, err := c.Run(textx.New("hi"))
	require.NoError(t, err)
	assert.Equal(t, "!IH", res.Output.String())
}

func TestEmptyChainReturnsInput(t *testing.T) {
	res, err := New("empty").Run(textx.New(""))
	require.NoError(t, err)
	assert.True(t, res.Output.IsEmpty())
	assert.True(t, res.Palindrome)
	assert.Empty(t, res.Applied)
}

func TestConcurrentRuns(t *testing.T) {
	c, err := FromRecipe(recipe(
		config.Step{Op: "upper"},
		config.Step{Op: "resplit", Delimiter: ",", Joiner: ";"},
	), log.Discard())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := c.Run(textx.New("a,b,c"))
			assert.NoError(t, err)
			assert.Equal(t, "A;B;C", res.Output.String())
		}()
	}
	wg.Wait()
}
