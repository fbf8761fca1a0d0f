package maze

import (
	"errors"
	"fmt"
)

// DefaultClosureBias attempts a vertical closure on two of the four outcomes.
const DefaultClosureBias = 2

// ErrInvalidSize is returned for negative maze dimensions.
var ErrInvalidSize = errors.New("maze: invalid size")

// ErrInvalidBias is returned for a closure bias outside [0, 4].
var ErrInvalidBias = errors.New("maze: invalid closure bias")

// Config describes one generation run.
type Config struct {
	Width       int   `mapstructure:"width"`
	Height      int   `mapstructure:"height"`
	Seed        int64 `mapstructure:"seed"`
	ClosureBias int   `mapstructure:"closure_bias"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: 16, Height: 16, Seed: 42, ClosureBias: DefaultClosureBias}
}

// Validate rejects dimensions and biases the generator cannot honour.
func (c Config) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	if c.ClosureBias < 0 || c.ClosureBias > closureOutcomes {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidBias, c.ClosureBias, closureOutcomes)
	}
	return nil
}
