package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings is the stlc.yaml configuration. Command-line flags override it.
type Settings struct {
	// Strategy is cbv or cbn.
	Strategy string `yaml:"strategy,omitempty"`

	// TypeCheck gates evaluation on a successful type check. Absent means true.
	TypeCheck *bool `yaml:"type_check,omitempty"`

	// MaxSteps bounds reductions per input. 0 or absent means
	// DefaultMaxSteps; UnboundedSteps turns the bound off.
	MaxSteps int `yaml:"max_steps,omitempty"`

	Prompt string `yaml:"prompt,omitempty"`

	// Trace prints each reduction after the result.
	Trace         bool `yaml:"trace,omitempty"`
	TraceCapacity int  `yaml:"trace_capacity,omitempty"`

	// Verbose logs pipeline stages to stderr.
	Verbose bool `yaml:"verbose,omitempty"`
}

// Default returns the built-in settings.
func Default() *Settings {
	s := &Settings{}
	s.setDefaults()
	return s
}

// LoadSettings reads and parses a stlc.yaml file.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseSettings(data, path)
}

// ParseSettings parses stlc.yaml content from bytes.
// The path argument is used only for error messages.
func ParseSettings(data []byte, path string) (*Settings, error) {
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := s.validate(path); err != nil {
		return nil, err
	}
	s.setDefaults()
	return &s, nil
}

// FindSettings searches for stlc.yaml (or stlc.yml) starting from dir and
// walking up to parent directories.
// Returns the path to the file and nil error if found,
// or empty string and nil error if not found.
func FindSettings(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		for _, name := range SettingsFileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", nil
		}
		dir = parent
	}
}

// validate checks the settings for semantic errors.
func (s *Settings) validate(path string) error {
	switch s.Strategy {
	case "", StrategyCallByValue, StrategyCallByName:
	default:
		return fmt.Errorf("%s: strategy %q: want %s or %s", path, s.Strategy, StrategyCallByValue, StrategyCallByName)
	}
	if s.MaxSteps < UnboundedSteps {
		return fmt.Errorf("%s: max_steps %d: must be positive, 0 for the default, or %d for no bound",
			path, s.MaxSteps, UnboundedSteps)
	}
	if s.TraceCapacity < 0 {
		return fmt.Errorf("%s: trace_capacity %d: must not be negative", path, s.TraceCapacity)
	}
	return nil
}

func (s *Settings) setDefaults() {
	if s.Strategy == "" {
		s.Strategy = StrategyCallByValue
	}
	if s.TypeCheck == nil {
		on := true
		s.TypeCheck = &on
	}
	if s.MaxSteps == 0 {
		s.MaxSteps = DefaultMaxSteps
	}
	if s.Prompt == "" {
		s.Prompt = DefaultPrompt
	}
	if s.TraceCapacity == 0 {
		s.TraceCapacity = DefaultTraceCapacity
	}
}

// TypeChecking reports whether the type gate is on.
func (s *Settings) TypeChecking() bool {
	return s.TypeCheck == nil || *s.TypeCheck
}

// SetTypeChecking overrides the type gate.
func (s *Settings) SetTypeChecking(on bool) {
	s.TypeCheck = &on
}

// StepLimit is the bound to hand to the machine, where 0 means none.
func (s *Settings) StepLimit() int {
	if s.MaxSteps == UnboundedSteps {
		return 0
	}
	return s.MaxSteps
}
