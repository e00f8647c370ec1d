package keys

import (
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/rs/zerolog"
)

const runTimeout = 2 * time.Second

// Runner executes one key-injection tool invocation. Injected in tests.
type Runner func(ctx context.Context, argv []string) error

// Tool is an Emulator that shells out to a key-injection tool such as
// `ydotool key`. It tracks pressed modifiers so ReleaseAll can release them
// in reverse press order.
type Tool struct {
	argv    []string
	run     Runner
	log     *zerolog.Logger
	pressed []KeyCode
}

// NewTool builds a Tool emulator around the given argv prefix.
func NewTool(argv []string, logger *zerolog.Logger) *Tool {
	return &Tool{
		argv: argv,
		run:  runCommand,
		log:  logger,
	}
}

func runCommand(ctx context.Context, argv []string) error {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("run %s: %w: %s", argv[0], err, out)
	}
	return nil
}

func (t *Tool) Press(key KeyCode) error {
	if err := t.invoke(keyEvent(key, true)); err != nil {
		return err
	}
	t.pressed = append(t.pressed, key)
	return nil
}

func (t *Tool) Write(key KeyCode) error {
	return t.invoke(keyEvent(key, true), keyEvent(key, false))
}

func (t *Tool) ReleaseAll() error {
	if len(t.pressed) == 0 {
		return nil
	}
	events := make([]string, 0, len(t.pressed))
	for i := len(t.pressed) - 1; i >= 0; i-- {
		events = append(events, keyEvent(t.pressed[i], false))
	}
	t.pressed = t.pressed[:0]
	return t.invoke(events...)
}

func (t *Tool) invoke(events ...string) error {
	argv := make([]string, 0, len(t.argv)+len(events))
	argv = append(argv, t.argv...)
	argv = append(argv, events...)

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	if err := t.run(ctx, argv); err != nil {
		t.log.Warn().Err(err).Strs("argv", argv).Msg("key injection failed")
		return err
	}
	return nil
}

// keyEvent renders one key transition in the tool's code:state form,
// e.g. "29:1" presses left ctrl.
func keyEvent(key KeyCode, down bool) string {
	state := 0
	if down {
		state = 1
	}
	return fmt.Sprintf("%d:%d", key.EventCode(), state)
}
