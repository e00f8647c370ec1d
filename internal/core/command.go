package core

import "github.com/avolkhin/keydeck-server/internal/keys"

// Command is one recognized remote action.
type Command int

const (
	CommandOpenTerminal Command = iota
	CommandLockScreen
	CommandRunDialog
	CommandHome
	CommandBack
	CommandRecentApps
)

func (c Command) String() string {
	switch c {
	case CommandOpenTerminal:
		return "open_terminal"
	case CommandLockScreen:
		return "lock_screen"
	case CommandRunDialog:
		return "run_dialog"
	case CommandHome:
		return "home"
	case CommandBack:
		return "back"
	case CommandRecentApps:
		return "recent_apps"
	default:
		return "unknown"
	}
}

// StepKind is one emulator operation kind within a command sequence.
type StepKind int

const (
	StepPress StepKind = iota
	StepWrite
	StepReleaseAll
)

// Step is a single emulator operation of a command's keystroke sequence.
type Step struct {
	Kind StepKind
	Key  keys.KeyCode
}

// Sequence returns the fixed keystroke sequence of the command. Home and
// Back end on a bare write with no release: Write is an atomic press+release,
// so nothing is left held down.
func (c Command) Sequence() []Step {
	switch c {
	case CommandOpenTerminal:
		return []Step{
			{Kind: StepPress, Key: keys.KeyLeftCtrl},
			{Kind: StepPress, Key: keys.KeyLeftAlt},
			{Kind: StepWrite, Key: keys.KeyT},
			{Kind: StepReleaseAll},
		}
	case CommandLockScreen:
		return []Step{
			{Kind: StepPress, Key: keys.KeyLeftMeta},
			{Kind: StepWrite, Key: keys.KeyL},
			{Kind: StepReleaseAll},
		}
	case CommandRunDialog:
		return []Step{
			{Kind: StepPress, Key: keys.KeyLeftMeta},
			{Kind: StepWrite, Key: keys.KeyR},
			{Kind: StepReleaseAll},
		}
	case CommandHome:
		return []Step{
			{Kind: StepWrite, Key: keys.KeyHome},
		}
	case CommandBack:
		return []Step{
			{Kind: StepWrite, Key: keys.KeyEsc},
		}
	case CommandRecentApps:
		return []Step{
			{Kind: StepPress, Key: keys.KeyLeftAlt},
			{Kind: StepWrite, Key: keys.KeyTab},
			{Kind: StepReleaseAll},
		}
	default:
		return nil
	}
}

// CommandForName resolves a command by its String name. Used by the CLI
// send surface.
func CommandForName(name string) (Command, bool) {
	for _, c := range Commands() {
		if c.String() == name {
			return c, true
		}
	}
	return 0, false
}

// Commands returns all recognized commands in dispatch order.
func Commands() []Command {
	return []Command{
		CommandOpenTerminal,
		CommandLockScreen,
		CommandRunDialog,
		CommandHome,
		CommandBack,
		CommandRecentApps,
	}
}
