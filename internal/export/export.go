// Package export writes generated floors in the supported output formats.
// Each format registers itself from an init function.
package export

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"labyrinth/internal/maze"
)

// ErrUnknownFormat is returned by Lookup for unregistered format names.
var ErrUnknownFormat = errors.New("export: unknown format")

// Options carries per-call settings shared by all encoders.
type Options struct {
	Seed  int64
	Color bool
}

// Encoder writes a floor to w.
type Encoder func(w io.Writer, f *maze.Floor, opts Options) error

var encoders = map[string]Encoder{}

// Register adds an encoder under the provided name.
func Register(name string, enc Encoder) {
	if name == "" || enc == nil {
		return
	}
	encoders[name] = enc
}

// Lookup returns the encoder registered under name.
func Lookup(name string) (Encoder, error) {
	enc, ok := encoders[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (want one of %s)", ErrUnknownFormat, name, strings.Join(Formats(), ", "))
	}
	return enc, nil
}

// Formats lists the registered format names in sorted order.
func Formats() []string {
	names := make([]string, 0, len(encoders))
	for name := range encoders {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Write encodes f with the named format.
func Write(w io.Writer, format string, f *maze.Floor, opts Options) error {
	enc, err := Lookup(format)
	if err != nil {
		return err
	}
	if err := enc(w, f, opts); err != nil {
		return fmt.Errorf("export %s: %w", format, err)
	}
	return nil
}
