package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidateRejectsShortPassphrase(t *testing.T) {
	cfg := Default()
	cfg.AccessPoint = AccessPoint{SSID: "keydeck", Passphrase: "short"}
	assert.ErrorContains(t, cfg.Validate(), "passphrase")

	cfg.AccessPoint.Passphrase = "longenough"
	assert.NoError(t, cfg.Validate())
}

func TestValidateRejectsNonPositiveWindowAndCap(t *testing.T) {
	cfg := Default()
	cfg.ReadWindow = 0
	assert.ErrorContains(t, cfg.Validate(), "read_window")

	cfg = Default()
	cfg.MaxLineBytes = -1
	assert.ErrorContains(t, cfg.Validate(), "max_line_bytes")
}

func TestValidateAnnounceNeedsBroker(t *testing.T) {
	cfg := Default()
	cfg.Announce.Enabled = true
	cfg.Announce.Broker = ""
	assert.ErrorContains(t, cfg.Validate(), "broker")
}

func TestValidateEmulatorNeedsToolUnlessDryRun(t *testing.T) {
	cfg := Default()
	cfg.Emulator.Tool = nil
	assert.ErrorContains(t, cfg.Validate(), "emulator.tool")

	cfg.Emulator.DryRun = true
	assert.NoError(t, cfg.Validate())
}

func TestUpdateFromOverwritesOnlyNonZeroValues(t *testing.T) {
	cfg := Default()
	cfg.UpdateFrom(Config{
		Addr:       ":8080",
		ReadWindow: 3 * time.Second,
	})

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 3*time.Second, cfg.ReadWindow)
	// Untouched fields keep their defaults.
	assert.Equal(t, Default().ShutdownTimeout, cfg.ShutdownTimeout)
	assert.Equal(t, Default().MaxLineBytes, cfg.MaxLineBytes)
	assert.Equal(t, Default().LogLevel, cfg.LogLevel)
}
