//go:build !ebiten

package app

// Run reports that the GUI build tag is missing.
func Run(Options) error { return ErrNoGUI }
