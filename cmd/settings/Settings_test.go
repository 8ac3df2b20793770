package settings

import (
	"bytes"
	"testing"

	"github.com/lavrovcoin/lavrovd/chaincfg"
	"github.com/lavrovcoin/lavrovd/settings"
	"github.com/stretchr/testify/assert"
)

func TestCmdSettings(t *testing.T) {
	tSettings := settings.NewSettings()

	var buf bytes.Buffer

	tSettings.RPC.Password = ""
	CmdSettings(&buf, "v1.2.3", "abcdef", tSettings, chaincfg.ProfileFor(chaincfg.Main))
	assert.Contains(t, buf.String(), "v1.2.3 (abcdef)")
	assert.Contains(t, buf.String(), "rpc_password")

	buf.Reset()
	CmdSettings(&buf, "v1.2.3", "abcdef", tSettings, chaincfg.ProfileFor(chaincfg.RegTest))
	assert.Contains(t, buf.String(), "RPC\n---\nlistener: disabled\nok")
}

func TestCmdSettingsClientAndListener(t *testing.T) {
	t.Setenv("clientName", "lavrov-test")
	t.Setenv("rpc_listener_url", "http://127.0.0.1:8645")
	t.Setenv("checkpoints_enabled", "false")

	tSettings := settings.NewSettings()

	var buf bytes.Buffer

	CmdSettings(&buf, "v1.2.3", "abcdef", tSettings, chaincfg.ProfileFor(chaincfg.RegTest))
	assert.Contains(t, buf.String(), "CLIENT\n------\nlavrov-test")
	assert.Contains(t, buf.String(), "listener: http://127.0.0.1:8645")
	assert.Contains(t, buf.String(), "checkpoints enabled: false")
}
