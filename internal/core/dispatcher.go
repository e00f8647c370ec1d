package core

import (
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/avolkhin/keydeck-server/internal/announce"
	"github.com/avolkhin/keydeck-server/internal/keys"
)

// routes maps request targets to commands. Paths are matched exactly so a
// new command can never be shadowed by a prefix of another.
var routes = map[string]Command{
	"/cmd_terminal": CommandOpenTerminal,
	"/cmd_lock":     CommandLockScreen,
	"/cmd_run":      CommandRunDialog,
	"/cmd_home":     CommandHome,
	"/cmd_back":     CommandBack,
	"/cmd_apps":     CommandRecentApps,
}

// Dispatcher turns recognized request lines into keystroke sequences.
type Dispatcher struct {
	emu keys.Emulator
	ann announce.Announcer
	log *zerolog.Logger
}

// NewDispatcher builds a dispatcher over the given emulator and announcer.
func NewDispatcher(emu keys.Emulator, ann announce.Announcer, logger *zerolog.Logger) *Dispatcher {
	if ann == nil {
		ann = announce.Nop{}
	}
	return &Dispatcher{emu: emu, ann: ann, log: logger}
}

// Dispatch inspects one completed request line. On a recognized GET target
// it emits exactly one keystroke sequence and reports true. Anything else
// (headers, other methods, unknown paths) is a silent no-op. No state is
// carried between calls.
func (d *Dispatcher) Dispatch(session, line string) bool {
	target, ok := requestTarget(line)
	if !ok {
		return false
	}
	cmd, ok := routes[target]
	if !ok {
		return false
	}

	d.log.Info().
		Str("session", session).
		Str("command", cmd.String()).
		Msg("dispatching command")

	d.Emit(cmd)
	d.ann.Announce(announce.Event{
		Command: cmd.String(),
		Session: session,
		At:      time.Now().UTC(),
	})
	return true
}

// Emit plays the command's keystroke sequence through the emulator.
// Delivery is best-effort: errors are logged and the sequence continues,
// since no acknowledgment channel back to the host exists.
func (d *Dispatcher) Emit(cmd Command) {
	for _, step := range cmd.Sequence() {
		var err error
		switch step.Kind {
		case StepPress:
			err = d.emu.Press(step.Key)
		case StepWrite:
			err = d.emu.Write(step.Key)
		case StepReleaseAll:
			err = d.emu.ReleaseAll()
		}
		if err != nil {
			d.log.Warn().Err(err).Str("command", cmd.String()).Msg("emulator step failed")
		}
	}
}

// requestTarget extracts the target of a GET request line,
// e.g. "GET /cmd_lock HTTP/1.1" -> "/cmd_lock".
func requestTarget(line string) (string, bool) {
	rest, ok := strings.CutPrefix(line, "GET ")
	if !ok {
		return "", false
	}
	if i := strings.IndexByte(rest, ' '); i >= 0 {
		rest = rest[:i]
	}
	if rest == "" {
		return "", false
	}
	return rest, true
}
