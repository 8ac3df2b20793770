// Package netparams is the operator command line for inspecting the network
// profiles compiled into lavrovd.
//
// Usage:
//
//	lavrovd [--network <name> | --testnet | --regtest] [--json] <command>
//
// Commands:
//   - show: summary of the selected profile
//   - genesis: genesis block hash, merkle root and optionally the raw block
//   - checkpoints: the checkpoint table, or a single height check
//   - seeds: DNS seeds and fixed seed addresses
//   - verify: genesis and consensus self-check of every network
//   - settings: gocore settings and the RPC password policy
package netparams

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	"github.com/davecgh/go-spew/spew"
	jsoniter "github.com/json-iterator/go"
	"github.com/lavrovcoin/lavrovd/chaincfg"
	cmdSettings "github.com/lavrovcoin/lavrovd/cmd/settings"
	"github.com/lavrovcoin/lavrovd/errors"
	"github.com/lavrovcoin/lavrovd/settings"
	"github.com/lavrovcoin/lavrovd/ulogger"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// runner holds what the commands share once the Before hook has run.
type runner struct {
	logger    ulogger.Logger
	tSettings *settings.Settings
	registry  *chaincfg.Registry
	profile   *chaincfg.Params
	version   string
	commit    string
	asJSON    bool
}

// NewApp builds the command line application. The network is selected on
// registry before any command runs, from the flags or else from the network
// setting. Output goes to w.
func NewApp(logger ulogger.Logger, tSettings *settings.Settings, registry *chaincfg.Registry, w io.Writer, version, commit string) *cli.App {
	r := &runner{
		logger:    logger,
		tSettings: tSettings,
		registry:  registry,
		version:   version,
		commit:    commit,
	}

	return &cli.App{
		Name:      "lavrovd",
		Usage:     "inspect the Lavrovcoin network parameters",
		Version:   fmt.Sprintf("%s (%s)", version, commit),
		Writer:    w,
		ErrWriter: w,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "network",
				Usage: "network to select: main, test, regtest or unittest",
			},
			&cli.BoolFlag{
				Name:  "testnet",
				Usage: "use the test network",
			},
			&cli.BoolFlag{
				Name:  "regtest",
				Usage: "use the regression test network",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print JSON instead of text",
			},
		},
		Before: r.before,
		Commands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "show the selected network profile",
				Action: r.show,
			},
			{
				Name:  "genesis",
				Usage: "show the genesis block",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "dump", Usage: "dump the whole block structure"},
					&cli.BoolFlag{Name: "raw", Usage: "print the serialized block as hex"},
				},
				Action: r.genesis,
			},
			{
				Name:  "checkpoints",
				Usage: "list checkpoints or check a block against them",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "height", Value: -1, Usage: "checkpoint height to look up"},
					&cli.StringFlag{Name: "hash", Usage: "block hash expected at --height"},
				},
				Action: r.checkpoints,
			},
			{
				Name:   "seeds",
				Usage:  "list the DNS seeds and fixed seed addresses",
				Action: r.seeds,
			},
			{
				Name:   "verify",
				Usage:  "verify the genesis block and consensus values of every network",
				Action: r.verify,
			},
			{
				Name:   "settings",
				Usage:  "show the gocore settings and the RPC password policy",
				Action: r.settings,
			},
		},
	}
}

// Start runs the command line with args, which exclude the program name.
func Start(args []string, version, commit string) {
	tSettings := settings.NewSettings()
	logger := tSettings.NewLogger("lavrovd")

	// settings.NewSettings has already built the process registry
	app := NewApp(logger, tSettings, chaincfg.DefaultRegistry(), os.Stdout, version, commit)

	if err := app.Run(append([]string{"lavrovd"}, args...)); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

func (r *runner) before(c *cli.Context) error {
	kind, err := networkFromContext(c, r.tSettings.Network)
	if err != nil {
		return err
	}

	r.asJSON = c.Bool("json")

	if err = r.registry.Select(kind); err != nil {
		return err
	}

	r.profile, err = r.registry.Current()

	return err
}

// networkFromContext resolves --network, --testnet and --regtest, falling
// back to configured when none is given. The name and the switches are
// mutually exclusive.
func networkFromContext(c *cli.Context, configured chaincfg.NetworkKind) (chaincfg.NetworkKind, error) {
	testnet, regtest := c.Bool("testnet"), c.Bool("regtest")

	if !c.IsSet("network") && !testnet && !regtest {
		return configured, nil
	}

	if name := c.String("network"); name != "" {
		if testnet || regtest {
			return 0, errors.NewInvalidNetworkSelectionError("--network cannot be combined with --testnet or --regtest")
		}

		return chaincfg.ParseNetworkKind(name)
	}

	return chaincfg.NetworkFromFlags(testnet, regtest)
}

func (r *runner) print(c *cli.Context, v interface{}, text func(w io.Writer)) error {
	w := c.App.Writer

	if !r.asJSON {
		text(w)
		return nil
	}

	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.NewProcessingError("failed to encode output", err)
	}

	_, err = fmt.Fprintln(w, string(b))

	return err
}

type profileSummary struct {
	Name                        string   `json:"name"`
	Magic                       string   `json:"magic"`
	DefaultPort                 uint16   `json:"defaultPort"`
	GenesisHash                 string   `json:"genesisHash"`
	PowLimit                    string   `json:"powLimit"`
	SubsidyHalvingInterval      int32    `json:"subsidyHalvingInterval"`
	InitialSubsidy              int64    `json:"initialSubsidy"`
	EnforceBlockUpgradeMajority int32    `json:"enforceBlockUpgradeMajority"`
	RejectBlockOutdatedMajority int32    `json:"rejectBlockOutdatedMajority"`
	ToCheckBlockUpgradeMajority int32    `json:"toCheckBlockUpgradeMajority"`
	TargetTimespan              string   `json:"targetTimespan"`
	ShortTargetTimespan         string   `json:"shortTargetTimespan"`
	TargetSpacing               string   `json:"targetSpacing"`
	RetargetInterval            int64    `json:"retargetInterval"`
	MaxTipAge                   string   `json:"maxTipAge"`
	EnforceV2AfterHeight        int32    `json:"enforceV2AfterHeight"`
	Checkpoints                 int      `json:"checkpoints"`
	DNSSeeds                    int      `json:"dnsSeeds"`
	PubKeyHashAddrID            byte     `json:"pubKeyHashAddrID"`
	ScriptHashAddrID            byte     `json:"scriptHashAddrID"`
	PrivateKeyID                byte     `json:"privateKeyID"`
	HDPublicKeyID               string   `json:"hdPublicKeyID"`
	HDPrivateKeyID              string   `json:"hdPrivateKeyID"`
	MinerThreads                int      `json:"minerThreads"`
	Flags                       []string `json:"flags"`
}

func summarize(p *chaincfg.Params) profileSummary {
	magic := p.MessageStart()

	return profileSummary{
		Name:                        p.Name,
		Magic:                       hex.EncodeToString(magic[:]),
		DefaultPort:                 p.DefaultPort,
		GenesisHash:                 p.GenesisHash.String(),
		PowLimit:                    fmt.Sprintf("%064x", p.Consensus.PowLimit),
		SubsidyHalvingInterval:      p.Consensus.SubsidyHalvingInterval,
		InitialSubsidy:              p.Consensus.InitialSubsidy,
		EnforceBlockUpgradeMajority: p.Consensus.EnforceBlockUpgradeMajority,
		RejectBlockOutdatedMajority: p.Consensus.RejectBlockOutdatedMajority,
		ToCheckBlockUpgradeMajority: p.Consensus.ToCheckBlockUpgradeMajority,
		TargetTimespan:              p.Consensus.TargetTimespan.String(),
		ShortTargetTimespan:         p.Consensus.ShortTargetTimespan.String(),
		TargetSpacing:               p.Consensus.TargetSpacing.String(),
		RetargetInterval:            p.Consensus.Interval(),
		MaxTipAge:                   p.Consensus.MaxTipAge.String(),
		EnforceV2AfterHeight:        p.Consensus.EnforceV2AfterHeight,
		Checkpoints:                 p.Checkpoints.Len(),
		DNSSeeds:                    len(p.Seeds.DNSSeeds),
		PubKeyHashAddrID:            p.Prefixes.PubKeyHashAddrID,
		ScriptHashAddrID:            p.Prefixes.ScriptHashAddrID,
		PrivateKeyID:                p.Prefixes.PrivateKeyID,
		HDPublicKeyID:               hex.EncodeToString(p.Prefixes.HDPublicKeyID[:]),
		HDPrivateKeyID:              hex.EncodeToString(p.Prefixes.HDPrivateKeyID[:]),
		MinerThreads:                p.MinerThreads,
		Flags:                       enabledFlags(p.Flags),
	}
}

func enabledFlags(f chaincfg.Flags) []string {
	flags := make([]string, 0, 8)

	for _, flag := range []struct {
		name string
		on   bool
	}{
		{"RequireRPCPassword", f.RequireRPCPassword},
		{"MiningRequiresPeers", f.MiningRequiresPeers},
		{"AllowMinDifficultyBlocks", f.AllowMinDifficultyBlocks},
		{"DefaultConsistencyChecks", f.DefaultConsistencyChecks},
		{"RequireStandard", f.RequireStandard},
		{"MineBlocksOnDemand", f.MineBlocksOnDemand},
		{"SkipProofOfWorkCheck", f.SkipProofOfWorkCheck},
		{"TestnetToBeDeprecatedFieldRPC", f.TestnetToBeDeprecatedFieldRPC},
	} {
		if flag.on {
			flags = append(flags, flag.name)
		}
	}

	return flags
}

func (r *runner) show(c *cli.Context) error {
	s := summarize(r.profile)

	return r.print(c, s, func(w io.Writer) {
		fmt.Fprintf(w, "network:            %s\n", s.Name)
		fmt.Fprintf(w, "magic:              %s\n", s.Magic)
		fmt.Fprintf(w, "port:               %d\n", s.DefaultPort)
		fmt.Fprintf(w, "genesis:            %s\n", s.GenesisHash)
		fmt.Fprintf(w, "pow limit:          %s\n", s.PowLimit)
		fmt.Fprintf(w, "halving interval:   %d\n", s.SubsidyHalvingInterval)
		fmt.Fprintf(w, "initial subsidy:    %d\n", s.InitialSubsidy)
		fmt.Fprintf(w, "majorities:         %d/%d of %d\n", s.EnforceBlockUpgradeMajority, s.RejectBlockOutdatedMajority, s.ToCheckBlockUpgradeMajority)
		fmt.Fprintf(w, "target timespan:    %s (short %s)\n", s.TargetTimespan, s.ShortTargetTimespan)
		fmt.Fprintf(w, "target spacing:     %s (%d blocks per retarget)\n", s.TargetSpacing, s.RetargetInterval)
		fmt.Fprintf(w, "max tip age:        %s\n", s.MaxTipAge)
		fmt.Fprintf(w, "v2 enforced after:  %d\n", s.EnforceV2AfterHeight)
		fmt.Fprintf(w, "checkpoints:        %d\n", s.Checkpoints)
		fmt.Fprintf(w, "dns seeds:          %d\n", s.DNSSeeds)
		fmt.Fprintf(w, "prefixes:           p2pkh=%d p2sh=%d wif=%d xpub=%s xprv=%s\n",
			s.PubKeyHashAddrID, s.ScriptHashAddrID, s.PrivateKeyID, s.HDPublicKeyID, s.HDPrivateKeyID)
		fmt.Fprintf(w, "miner threads:      %d\n", s.MinerThreads)
		fmt.Fprintf(w, "flags:              %v\n", s.Flags)
	})
}

type genesisInfo struct {
	Hash       string `json:"hash"`
	MerkleRoot string `json:"merkleRoot"`
	Time       int64  `json:"time"`
	Bits       string `json:"bits"`
	Nonce      uint32 `json:"nonce"`
	Raw        string `json:"raw,omitempty"`
}

func (r *runner) genesis(c *cli.Context) error {
	block := r.profile.GenesisBlock
	hash := block.BlockHash()

	info := genesisInfo{
		Hash:       hash.String(),
		MerkleRoot: block.Header.MerkleRoot.String(),
		Time:       block.Header.Timestamp.Unix(),
		Bits:       fmt.Sprintf("%08x", block.Header.Bits),
		Nonce:      block.Header.Nonce,
	}

	if c.Bool("raw") {
		var buf bytes.Buffer
		if err := block.Serialize(&buf); err != nil {
			return errors.NewProcessingError("failed to serialize genesis block", err)
		}

		info.Raw = hex.EncodeToString(buf.Bytes())
	}

	if c.Bool("dump") && !r.asJSON {
		spew.Fdump(c.App.Writer, block)
		return nil
	}

	return r.print(c, info, func(w io.Writer) {
		fmt.Fprintf(w, "hash:        %s\n", info.Hash)
		fmt.Fprintf(w, "merkle root: %s\n", info.MerkleRoot)
		fmt.Fprintf(w, "time:        %s\n", time.Unix(info.Time, 0).UTC().Format(time.RFC3339))
		fmt.Fprintf(w, "bits:        %s\n", info.Bits)
		fmt.Fprintf(w, "nonce:       %d\n", info.Nonce)

		if info.Raw != "" {
			fmt.Fprintf(w, "raw:         %s\n", info.Raw)
		}
	})
}

type checkpointInfo struct {
	Height int32  `json:"height"`
	Hash   string `json:"hash"`
}

type checkpointsInfo struct {
	Enabled            bool             `json:"enabled"`
	Checkpoints        []checkpointInfo `json:"checkpoints"`
	TotalBlocks        int32            `json:"totalBlocksEstimate"`
	LastCheckpointTime int64            `json:"lastCheckpointTime"`
	Transactions       int64            `json:"transactionsLastCheckpoint"`
	TransactionsPerDay float64          `json:"transactionsPerDay"`
}

func (r *runner) checkpoints(c *cli.Context) error {
	set := r.profile.Checkpoints

	if height := c.Int64("height"); height >= 0 {
		return r.checkHeight(c, set, int32(height), c.String("hash"))
	}

	if c.String("hash") != "" {
		return errors.NewInvalidArgumentError("--hash needs --height")
	}

	info := checkpointsInfo{
		Enabled:            r.tSettings.CheckpointsEnabled,
		LastCheckpointTime: set.LastCheckpointTime().Unix(),
		Transactions:       set.TransactionsLastCheckpoint(),
		TransactionsPerDay: set.TransactionsPerDay(),
	}

	if info.Enabled {
		info.TotalBlocks = set.TotalBlocksEstimate()
	}

	for _, cp := range set.Checkpoints() {
		info.Checkpoints = append(info.Checkpoints, checkpointInfo{Height: cp.Height, Hash: cp.Hash.String()})
	}

	return r.print(c, info, func(w io.Writer) {
		if !info.Enabled {
			fmt.Fprintf(w, "checkpoints are disabled by checkpoints_enabled\n")
		}

		for _, cp := range info.Checkpoints {
			fmt.Fprintf(w, "%8d %s\n", cp.Height, cp.Hash)
		}

		fmt.Fprintf(w, "total blocks estimate: %d\n", info.TotalBlocks)

		fmt.Fprintf(w, "last checkpoint time: %d, transactions: %d, per day: %.1f\n",
			info.LastCheckpointTime, info.Transactions, info.TransactionsPerDay)
	})
}

func (r *runner) checkHeight(c *cli.Context, set *chaincfg.CheckpointSet, height int32, hashStr string) error {
	expected, ok := set.Lookup(height)
	if !ok {
		return errors.NewNotFoundError("no %s checkpoint at height %d", r.profile.Name, height)
	}

	if hashStr == "" {
		return r.print(c, checkpointInfo{Height: height, Hash: expected.String()}, func(w io.Writer) {
			fmt.Fprintf(w, "%8d %s\n", height, expected)
		})
	}

	hash, err := chainhash.NewHashFromStr(hashStr)
	if err != nil {
		return errors.NewInvalidArgumentError("invalid block hash %q", hashStr, err)
	}

	// with checkpoints disabled every block passes
	if !r.tSettings.CheckpointsEnabled {
		return r.print(c, checkpointInfo{Height: height, Hash: hash.String()}, func(w io.Writer) {
			fmt.Fprintf(w, "%8d %s accepted, checkpoints are disabled\n", height, hash)
		})
	}

	if !set.CheckBlock(height, hash) {
		return errors.NewInvalidArgumentError("block %s at height %d conflicts with checkpoint %s", hash, height, expected)
	}

	return r.print(c, checkpointInfo{Height: height, Hash: hash.String()}, func(w io.Writer) {
		fmt.Fprintf(w, "%8d %s matches checkpoint\n", height, hash)
	})
}

type seedAddress struct {
	Address  string `json:"address"`
	LastSeen int64  `json:"lastSeen"`
}

type seedsInfo struct {
	DNSSeeds []string      `json:"dnsSeeds"`
	Fixed    []seedAddress `json:"fixed"`
}

func (r *runner) seeds(c *cli.Context) error {
	hosts, addrs := chaincfg.ResolveSeeds(r.profile)

	info := seedsInfo{DNSSeeds: hosts}
	for _, na := range addrs {
		info.Fixed = append(info.Fixed, seedAddress{
			Address:  fmt.Sprintf("[%s]:%d", na.IP, na.Port),
			LastSeen: na.Timestamp.Unix(),
		})
	}

	return r.print(c, info, func(w io.Writer) {
		for _, host := range info.DNSSeeds {
			fmt.Fprintf(w, "dns   %s\n", host)
		}

		for _, a := range info.Fixed {
			fmt.Fprintf(w, "fixed %s last seen %s\n", a.Address, time.Unix(a.LastSeen, 0).UTC().Format(time.RFC3339))
		}

		if len(info.DNSSeeds) == 0 && len(info.Fixed) == 0 {
			fmt.Fprintf(w, "%s has no seeds\n", r.profile.Name)
		}
	})
}

type verifyResult struct {
	Network string `json:"network"`
	OK      bool   `json:"ok"`
	Error   string `json:"error,omitempty"`
}

func (r *runner) verify(c *cli.Context) error {
	kinds := chaincfg.AllNetworkKinds()
	results := make([]verifyResult, len(kinds))

	g := errgroup.Group{}

	for i, kind := range kinds {
		p := r.registry.ProfileFor(kind)

		g.Go(func() error {
			results[i] = verifyResult{Network: p.Name, OK: true}

			err := p.VerifyGenesis()
			if err == nil {
				err = p.Consensus.Validate()
			}

			if err != nil {
				results[i].OK = false
				results[i].Error = err.Error()

				return err
			}

			return nil
		})
	}

	err := g.Wait()

	if printErr := r.print(c, results, func(w io.Writer) {
		for _, res := range results {
			if res.OK {
				fmt.Fprintf(w, "%-9s ok\n", res.Network)
			} else {
				fmt.Fprintf(w, "%-9s FAILED: %s\n", res.Network, res.Error)
			}
		}
	}); printErr != nil {
		return printErr
	}

	return err
}

func (r *runner) settings(c *cli.Context) error {
	cmdSettings.CmdSettings(c.App.Writer, r.version, r.commit, r.tSettings, r.profile)
	return nil
}
