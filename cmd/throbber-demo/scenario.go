// scenario.go
package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mordant23/throbber"
)

// frameTables maps scenario/flag names to the library's frame tables.
var frameTables = map[string][]string{
	"default":       throbber.DefaultFrames,
	"circle":        throbber.CircleFrames,
	"rotate":        throbber.RotateFrames,
	"move-eq":       throbber.MoveEqFrames,
	"move-min":      throbber.MoveMinFrames,
	"move-eq-long":  throbber.MoveEqLongFrames,
	"move-min-long": throbber.MoveMinLongFrames,
}

// Duration parses YAML values like "150ms" or "2s".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %v", s, err)
	}
	*d = Duration(parsed)
	return nil
}

type Step struct {
	Message  string   `yaml:"message"`
	Duration Duration `yaml:"duration"`
	Outcome  string   `yaml:"outcome"` // "success" (default) or "fail"
	Done     string   `yaml:"done"`    // status line text; defaults to Message
}

type Scenario struct {
	Interval Duration `yaml:"interval"`
	Frames   string   `yaml:"frames"`
	Steps    []Step   `yaml:"steps"`
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}

	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (s *Scenario) Validate() error {
	if len(s.Steps) == 0 {
		return fmt.Errorf("scenario has no steps")
	}
	if s.Frames != "" {
		if _, ok := frameTables[s.Frames]; !ok {
			return fmt.Errorf("unknown frame table %q (have: default, circle, rotate, move-eq, move-min, move-eq-long, move-min-long)", s.Frames)
		}
	}
	for i, st := range s.Steps {
		if st.Message == "" {
			return fmt.Errorf("step %d: message is required", i+1)
		}
		switch st.Outcome {
		case "", "success", "fail":
		default:
			return fmt.Errorf("step %d: outcome must be \"success\" or \"fail\", got %q", i+1, st.Outcome)
		}
	}
	return nil
}

// defaultScenario is used when no scenario file is given: two phases of
// pretend work, one succeeding and one failing.
func defaultScenario() *Scenario {
	return &Scenario{
		Steps: []Step{
			{Message: "calculating stuff", Duration: Duration(2 * time.Second), Outcome: "success", Done: "Success"},
			{Message: "calculating more stuff", Duration: Duration(2 * time.Second), Outcome: "fail", Done: "Fail"},
		},
	}
}
