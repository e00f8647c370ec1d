package keys

import (
	"github.com/rs/zerolog"
)

// Emulator delivers keystrokes to the paired host. Write is an atomic
// press+release of a single key, so a command ending in a bare Write leaves
// no key held down. Delivery is best-effort; callers log errors and move on.
type Emulator interface {
	Press(key KeyCode) error
	Write(key KeyCode) error
	ReleaseAll() error
}

// Op is one recorded emulator operation.
type Op struct {
	Kind string // "press", "write", "release_all"
	Key  KeyCode
}

// Recorder is an Emulator that captures the exact operation sequence.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) Press(key KeyCode) error {
	r.Ops = append(r.Ops, Op{Kind: "press", Key: key})
	return nil
}

func (r *Recorder) Write(key KeyCode) error {
	r.Ops = append(r.Ops, Op{Kind: "write", Key: key})
	return nil
}

func (r *Recorder) ReleaseAll() error {
	r.Ops = append(r.Ops, Op{Kind: "release_all"})
	return nil
}

// Reset discards recorded operations.
func (r *Recorder) Reset() {
	r.Ops = nil
}

// Null is a dry-run Emulator that only logs what it would inject.
type Null struct {
	Log *zerolog.Logger
}

func (n Null) Press(key KeyCode) error {
	n.Log.Info().Str("key", key.String()).Msg("dry-run press")
	return nil
}

func (n Null) Write(key KeyCode) error {
	n.Log.Info().Str("key", key.String()).Msg("dry-run write")
	return nil
}

func (n Null) ReleaseAll() error {
	n.Log.Info().Msg("dry-run release all")
	return nil
}
