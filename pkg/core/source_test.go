package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"labyrinth/internal/maze"
	"labyrinth/pkg/core"
)

var _ maze.Source = (*core.RNG)(nil)

func TestRNGDrivesGenerator(t *testing.T) {
	a := maze.Generate(6, 6, core.NewRNG(21))
	b := maze.NewGenerator(core.NewRNG(21)).Generate(6, 6)
	assert.Equal(t, a, b)
}
