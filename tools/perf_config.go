package tools

import (
	"errors"
	"fmt"
	"time"
)

// PerfConfig configures the deque performance harness.
type PerfConfig struct {
	// Logging level
	LogLevel string `json:"log_level"`
	// Logging format (text or json)
	LogFormat string `json:"log_format"`

	// Number of goroutines mutating the deque
	Threads int `json:"threads"`
	// How long the mutators run
	Duration time.Duration `json:"duration"`
	// Number of values the deque starts with
	InitialCount int `json:"initial_count"`
	// Counter container: none or slim
	Counters string `json:"counters"`
	// Check the deque after the run
	Verify bool `json:"verify"`

	// Relative weights of the four operations
	Mix struct {
		PushLeft  int `json:"push_left"`
		PushRight int `json:"push_right"`
		PopLeft   int `json:"pop_left"`
		PopRight  int `json:"pop_right"`
	} `json:"mix"`
}

// DefaultPerfConfig returns the configuration used when no file is given.
func DefaultPerfConfig() *PerfConfig {
	c := &PerfConfig{}
	c.LogLevel = "INFO"
	c.LogFormat = "text"

	c.Threads = 4
	c.Duration = 10 * time.Second
	c.InitialCount = 100000
	c.Counters = "none"
	c.Verify = true

	c.Mix.PushLeft = 1
	c.Mix.PushRight = 1
	c.Mix.PopLeft = 1
	c.Mix.PopRight = 1

	return c
}

// Validate checks the configuration for values the harness cannot run with.
func (c *PerfConfig) Validate() error {
	if c.Threads < 1 {
		return fmt.Errorf("threads must be positive: %d", c.Threads)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be positive: %s", c.Duration)
	}
	if c.InitialCount < 0 {
		return fmt.Errorf("initial count must not be negative: %d", c.InitialCount)
	}
	if c.Counters != "none" && c.Counters != "slim" {
		return fmt.Errorf("unknown counters: %s", c.Counters)
	}

	m := c.Mix
	if m.PushLeft < 0 || m.PushRight < 0 || m.PopLeft < 0 || m.PopRight < 0 {
		return errors.New("operation weights must not be negative")
	}
	if m.PushLeft+m.PushRight+m.PopLeft+m.PopRight == 0 {
		return errors.New("at least one operation weight must be positive")
	}
	return nil
}

// perfOp is one of the four deque mutations.
type perfOp uint8

const (
	opPushLeft perfOp = iota
	opPushRight
	opPopLeft
	opPopRight
)

// schedule expands the mix into a repeating cycle of operations,
// interleaving them so that no operation runs in long bursts.
func (c *PerfConfig) schedule() []perfOp {
	left := []int{c.Mix.PushLeft, c.Mix.PushRight, c.Mix.PopLeft, c.Mix.PopRight}
	ops := []perfOp{}
	for {
		added := false
		for op, n := range left {
			if n > 0 {
				ops = append(ops, perfOp(op))
				left[op]--
				added = true
			}
		}
		if !added {
			return ops
		}
	}
}
