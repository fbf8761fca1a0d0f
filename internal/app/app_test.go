package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"labyrinth/internal/maze"
)

func TestOptionsNormalized(t *testing.T) {
	o := Options{Scale: 0}.normalized()
	assert.Equal(t, 1, o.Scale)

	o = Options{Scale: 6}.normalized()
	assert.Equal(t, 6, o.Scale)
}

func TestOptionsTitle(t *testing.T) {
	o := Options{Maze: maze.Config{Width: 4, Height: 3, Seed: 9}}
	assert.Equal(t, "labyrinth 4x3 seed 9", o.title())
}
