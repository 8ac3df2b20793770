package settings

import (
	"net/url"

	"github.com/lavrovcoin/lavrovd/chaincfg"
)

type RPCSettings struct {
	User        string
	Password    string
	ListenerURL *url.URL
}

type P2PSettings struct {
	ListenPort int
	DNSSeed    bool
	FixedSeeds bool
}

type Settings struct {
	ClientName         string
	Network            chaincfg.NetworkKind
	ChainCfgParams     *chaincfg.Params
	LogLevel           string
	LoggerType         string
	PrettyLogs         bool
	PrometheusEndpoint string
	CheckpointsEnabled bool
	RPC                RPCSettings
	P2P                P2PSettings
}
