// File: timer.go
// Title: Operation Timer
// Description: Measures an operation and logs its duration on completion.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-13
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation with performance timing
// - 2026-10-19 v0.2.0: Completion always at debug, failure at warn

package log

import (
	"time"
)

// Timer logs "<operation> completed" at debug or "<operation> failed" at
// warn, with the elapsed time in duration_ms. Only the first Stop or
// StopWithError logs.
type Timer struct {
	logger    *Logger
	operation string
	start     time.Time
	fields    Fields
	done      bool
}

// NewTimer starts a timer for operation that reports to logger
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		start:     time.Now(),
		fields:    Fields{"operation": operation},
	}
}

// WithField attaches key=value to the completion entry
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the time since the timer started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Stop ends the timer and returns the elapsed time, or 0 if it had
// already been stopped
func (t *Timer) Stop() time.Duration {
	return t.finish(LevelDebug, "completed", nil)
}

// StopWithError ends the timer and logs err with success=false
func (t *Timer) StopWithError(err error) time.Duration {
	return t.finish(LevelWarn, "failed", err)
}

func (t *Timer) finish(level Level, outcome string, err error) time.Duration {
	if t.done {
		return 0
	}
	t.done = true
	elapsed := t.Elapsed()

	if t.logger != nil {
		timing := Fields{"duration_ms": float64(elapsed.Nanoseconds()) / 1e6}
		if err != nil {
			timing["success"] = false
		}
		t.logger.log(level, t.operation+" "+outcome, err, t.fields.Merge(timing))
	}
	return elapsed
}
