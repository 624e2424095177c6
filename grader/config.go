// Package grader runs classroom exercises against an autograding.json
// configuration: each test pipes input to a shell command, captures its
// stdout, and judges it against the expected output.
package grader

import (
	"fmt"
	"os"
	"time"

	"github.com/segmentio/encoding/json"
)

// Comparison selects how a test's captured stdout is judged against its
// expected output.
type Comparison string

const (
	ComparisonIncluded Comparison = "included"
	ComparisonExact    Comparison = "exact"
	ComparisonRegex    Comparison = "regex"
)

func (c Comparison) valid() bool {
	switch c {
	case ComparisonIncluded, ComparisonExact, ComparisonRegex:
		return true
	}
	return false
}

// DefaultTimeout applies to tests that don't declare one.
const DefaultTimeout = 10 * time.Minute

// TestCase is one entry of an autograding.json tests array. Timeout is in
// minutes, GitHub Classroom style.
type TestCase struct {
	Name       string     `json:"name"`
	Setup      string     `json:"setup,omitempty"`
	Run        string     `json:"run"`
	Input      string     `json:"input"`
	Output     string     `json:"output"`
	Comparison Comparison `json:"comparison"`
	Timeout    int        `json:"timeout"`
	Points     int        `json:"points,omitempty"`
}

// Deadline returns the per-command time budget.
func (tc *TestCase) Deadline() time.Duration {
	if tc.Timeout <= 0 {
		return DefaultTimeout
	}
	return time.Duration(tc.Timeout) * time.Minute
}

// Config is the root of an autograding.json file.
type Config struct {
	Tests []TestCase `json:"tests"`
}

// LoadConfig reads and validates an autograding configuration.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not find the autograding configuration: %w", err)
	}
	defer f.Close()

	var cfg Config
	if err := json.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("could not read the autograding configuration file as JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	for i := range c.Tests {
		tc := &c.Tests[i]
		if tc.Name == "" {
			return fmt.Errorf("test %d: missing name", i)
		}
		if tc.Run == "" {
			return fmt.Errorf("test %q: missing run command", tc.Name)
		}
		if !tc.Comparison.valid() {
			return fmt.Errorf("test %q: unknown comparison %q", tc.Name, tc.Comparison)
		}
		if tc.Timeout < 0 {
			return fmt.Errorf("test %q: negative timeout", tc.Name)
		}
		if tc.Points < 0 {
			return fmt.Errorf("test %q: negative points", tc.Name)
		}
	}
	return nil
}

// TotalPoints sums the points declared across all tests.
func (c *Config) TotalPoints() int {
	total := 0
	for i := range c.Tests {
		total += c.Tests[i].Points
	}
	return total
}
