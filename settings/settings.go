package settings

import (
	"github.com/bsv-blockchain/go-wire"
	"github.com/lavrovcoin/lavrovd/chaincfg"
	"github.com/lavrovcoin/lavrovd/errors"
	"github.com/lavrovcoin/lavrovd/ulogger"
)

// NewSettings reads the node settings from the gocore config. It panics when
// the configured network is unknown.
func NewSettings() *Settings {
	network, err := chaincfg.ParseNetworkKind(getString("network", chaincfg.Main.String()))
	if err != nil {
		panic(err)
	}

	params := chaincfg.ProfileFor(network)

	return &Settings{
		ClientName:         getString("clientName", "defaultClientName"),
		Network:            network,
		ChainCfgParams:     params,
		LogLevel:           getString("logLevel", "INFO"),
		LoggerType:         getString("logger_type", ulogger.LoggerTypeZerolog),
		PrettyLogs:         getBool("PRETTY_LOGS", true),
		PrometheusEndpoint: getString("prometheusEndpoint", ""),
		CheckpointsEnabled: getBool("checkpoints_enabled", true),
		RPC: RPCSettings{
			User:        getString("rpc_user", ""),
			Password:    getString("rpc_password", ""),
			ListenerURL: getURL("rpc_listener_url", ""),
		},
		P2P: P2PSettings{
			ListenPort: getInt("p2p_listen_port", int(params.DefaultPort)),
			DNSSeed:    getBool("p2p_dns_seed", true),
			FixedSeeds: getBool("p2p_fixed_seeds", true),
		},
	}
}

// NewLogger creates a logger for service with the configured level, type and
// console format.
func (s *Settings) NewLogger(service string, options ...ulogger.Option) ulogger.Logger {
	opts := append([]ulogger.Option{
		ulogger.WithLevel(s.LogLevel),
		ulogger.WithLoggerType(s.LoggerType),
		ulogger.WithPrettyLogs(s.PrettyLogs),
	}, options...)

	return ulogger.New(service, opts...)
}

// Validate applies the RPC password policy of profile.
func (r RPCSettings) Validate(profile *chaincfg.Params) error {
	if r.Password != "" && r.Password == r.User {
		return errors.NewConfigurationError("rpc_password must not be the same as rpc_user")
	}

	if !profile.Flags.RequireRPCPassword || r.Password != "" {
		return nil
	}

	return errors.NewConfigurationError("to use the RPC server on %s you must set rpc_password in settings_local.conf, "+
		"it is recommended to use a long random password", profile.Name)
}

// SeedSources returns the DNS seeds and fixed addresses of profile that the
// P2P switches allow.
func (p P2PSettings) SeedSources(profile *chaincfg.Params) ([]string, []*wire.NetAddress) {
	hosts, addrs := chaincfg.ResolveSeeds(profile)

	if !p.DNSSeed {
		hosts = nil
	}

	if !p.FixedSeeds {
		addrs = nil
	}

	return hosts, addrs
}
