// Package app hosts the interactive maze viewer. The GUI needs the ebiten
// build tag; headless builds compile a stub that reports the missing tag.
package app

import (
	"errors"
	"fmt"

	"labyrinth/internal/maze"
)

// ErrNoGUI is returned by Run in builds without the ebiten tag.
var ErrNoGUI = errors.New("app: the viewer requires building with -tags ebiten")

// Options configures the viewer.
type Options struct {
	Maze       maze.Config
	Scale      int
	RevealRate int
}

func (o Options) title() string {
	return fmt.Sprintf("labyrinth %dx%d seed %d", o.Maze.Width, o.Maze.Height, o.Maze.Seed)
}

func (o Options) normalized() Options {
	if o.Scale <= 0 {
		o.Scale = 1
	}
	return o
}
