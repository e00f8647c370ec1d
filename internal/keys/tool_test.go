package keys

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTool(t *testing.T) (*Tool, *[][]string) {
	t.Helper()

	var calls [][]string
	logger := zerolog.Nop()
	tool := NewTool([]string{"ydotool", "key"}, &logger)
	tool.run = func(_ context.Context, argv []string) error {
		calls = append(calls, argv)
		return nil
	}
	return tool, &calls
}

func TestToolPressEmitsDownEvent(t *testing.T) {
	tool, calls := newTestTool(t)

	require.NoError(t, tool.Press(KeyLeftCtrl))
	require.Len(t, *calls, 1)
	assert.Equal(t, []string{"ydotool", "key", "29:1"}, (*calls)[0])
}

func TestToolWriteEmitsDownThenUp(t *testing.T) {
	tool, calls := newTestTool(t)

	require.NoError(t, tool.Write(KeyT))
	require.Len(t, *calls, 1)
	assert.Equal(t, []string{"ydotool", "key", "20:1", "20:0"}, (*calls)[0])
}

func TestToolReleaseAllReversesPressOrder(t *testing.T) {
	tool, calls := newTestTool(t)

	require.NoError(t, tool.Press(KeyLeftCtrl))
	require.NoError(t, tool.Press(KeyLeftAlt))
	require.NoError(t, tool.ReleaseAll())

	require.Len(t, *calls, 3)
	assert.Equal(t, []string{"ydotool", "key", "56:0", "29:0"}, (*calls)[2])

	// Nothing held anymore: a second release is a no-op.
	require.NoError(t, tool.ReleaseAll())
	assert.Len(t, *calls, 3)
}

func TestToolPropagatesRunnerError(t *testing.T) {
	logger := zerolog.Nop()
	tool := NewTool([]string{"ydotool", "key"}, &logger)

	injected := errors.New("tool unavailable")
	tool.run = func(_ context.Context, _ []string) error { return injected }

	assert.ErrorIs(t, tool.Write(KeyL), injected)
}

func TestKeyCodeEventMapping(t *testing.T) {
	for _, k := range []KeyCode{KeyLeftCtrl, KeyLeftAlt, KeyLeftMeta, KeyTab, KeyEsc, KeyHome, KeyT, KeyL, KeyR} {
		assert.Positive(t, k.EventCode(), "key %s must map to an input-event code", k)
		assert.NotEqual(t, "unknown", k.String())
	}
	assert.Equal(t, -1, KeyCode(200).EventCode())
}
