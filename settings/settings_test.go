package settings

import (
	"testing"

	"github.com/lavrovcoin/lavrovd/chaincfg"
	"github.com/lavrovcoin/lavrovd/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// check settings object is initialised
func TestInitialiseSettings(t *testing.T) {
	tSettings := NewSettings()

	require.NotNil(t, tSettings.ChainCfgParams)
	assert.Equal(t, tSettings.Network, tSettings.ChainCfgParams.Kind)
	assert.Same(t, chaincfg.ProfileFor(tSettings.Network), tSettings.ChainCfgParams)
	assert.NotEmpty(t, tSettings.LogLevel)
	assert.NotEmpty(t, tSettings.LoggerType)
}

func TestNetworkSetting(t *testing.T) {
	tests := []struct {
		value string
		kind  chaincfg.NetworkKind
		port  int
	}{
		{"main", chaincfg.Main, 8644},
		{"testnet", chaincfg.Test, 9333},
		{"regtest", chaincfg.RegTest, 19444},
		{"unittest", chaincfg.UnitTest, 18445},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("network", tt.value)

			tSettings := NewSettings()
			assert.Equal(t, tt.kind, tSettings.Network)
			assert.Equal(t, tt.kind, tSettings.ChainCfgParams.Kind)
			assert.Equal(t, tt.port, tSettings.P2P.ListenPort)
		})
	}
}

func TestUnknownNetworkPanics(t *testing.T) {
	t.Setenv("network", "signet")

	assert.Panics(t, func() { NewSettings() })
}

func TestListenPortOverride(t *testing.T) {
	t.Setenv("network", "regtest")
	t.Setenv("p2p_listen_port", "20000")

	assert.Equal(t, 20000, NewSettings().P2P.ListenPort)
}

func TestRPCPasswordPolicy(t *testing.T) {
	main := chaincfg.ProfileFor(chaincfg.Main)
	regTest := chaincfg.ProfileFor(chaincfg.RegTest)

	t.Run("missing on main", func(t *testing.T) {
		err := RPCSettings{User: "user"}.Validate(main)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrConfiguration))
		assert.Contains(t, err.Error(), "rpc_password")
	})

	t.Run("missing on regtest", func(t *testing.T) {
		require.NoError(t, RPCSettings{}.Validate(regTest))
	})

	t.Run("set", func(t *testing.T) {
		require.NoError(t, RPCSettings{User: "user", Password: "c2VjcmV0"}.Validate(main))
	})

	t.Run("same as user", func(t *testing.T) {
		err := RPCSettings{User: "lavrov", Password: "lavrov"}.Validate(regTest)
		require.Error(t, err)
		assert.True(t, errors.IsConfigurationError(err))
	})
}

func TestSeedSources(t *testing.T) {
	main := chaincfg.ProfileFor(chaincfg.Main)

	hosts, _ := P2PSettings{DNSSeed: true, FixedSeeds: true}.SeedSources(main)
	assert.Len(t, hosts, 8)

	hosts, addrs := P2PSettings{DNSSeed: false, FixedSeeds: true}.SeedSources(main)
	assert.Empty(t, hosts)
	assert.Empty(t, addrs)

	hosts, _ = P2PSettings{DNSSeed: true}.SeedSources(chaincfg.ProfileFor(chaincfg.RegTest))
	assert.Empty(t, hosts)
}

func TestNewLogger(t *testing.T) {
	tSettings := NewSettings()
	tSettings.LoggerType = "gocore"

	assert.NotNil(t, tSettings.NewLogger("test"))
}

func TestClientAndRPCListenerSettings(t *testing.T) {
	t.Setenv("clientName", "lavrov-test")
	t.Setenv("checkpoints_enabled", "false")
	t.Setenv("rpc_listener_url", "http://localhost:8645")

	tSettings := NewSettings()
	assert.Equal(t, "lavrov-test", tSettings.ClientName)
	assert.False(t, tSettings.CheckpointsEnabled)
	require.NotNil(t, tSettings.RPC.ListenerURL)
	assert.Equal(t, "localhost:8645", tSettings.RPC.ListenerURL.Host)
}
