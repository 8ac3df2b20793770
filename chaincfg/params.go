package chaincfg

import (
	"encoding/binary"
	"math/big"
	"time"

	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	"github.com/bsv-blockchain/go-wire"
	"github.com/lavrovcoin/lavrovd/errors"
)

const (
	// MainNet is the magic of the main network, fb c0 b6 db on the wire.
	MainNet wire.BitcoinNet = 0xdbb6c0fb

	// TestNet shares the main network magic; the networks are kept apart
	// by port and address prefixes only.
	TestNet wire.BitcoinNet = 0xdbb6c0fb

	// RegTestNet is the magic of the regression test network, fa bf b5 da
	// on the wire.
	RegTestNet wire.BitcoinNet = 0xdab5bffa
)

var (
	// ErrUnknownHDKeyID describes an error where the provided id which
	// is intended to identify the network for a hierarchical deterministic
	// private extended key is not registered.
	ErrUnknownHDKeyID = errors.New(errors.ERR_NOT_FOUND, "unknown hd private extended key bytes")
)

// Flags are the behavioural switches of a network read by the RPC, mining and
// validation policy code.
type Flags struct {
	// RequireRPCPassword refuses to start the RPC server without a password.
	RequireRPCPassword bool

	// MiningRequiresPeers stops the miner while the node has no peers.
	MiningRequiresPeers bool

	// AllowMinDifficultyBlocks permits minimum difficulty blocks after a
	// long gap.
	AllowMinDifficultyBlocks bool

	// DefaultConsistencyChecks turns on expensive internal consistency
	// checks by default.
	DefaultConsistencyChecks bool

	// RequireStandard rejects non standard transactions from the mempool.
	RequireStandard bool

	// MineBlocksOnDemand lets the generate RPC mine blocks immediately.
	MineBlocksOnDemand bool

	// SkipProofOfWorkCheck accepts blocks without checking their proof of
	// work.
	SkipProofOfWorkCheck bool

	// TestnetToBeDeprecatedFieldRPC reports the legacy "testnet" field in
	// getinfo style RPC responses.
	TestnetToBeDeprecatedFieldRPC bool
}

// Params defines a network by its parameters.  These parameters may be
// used by applications to differentiate networks as well as addresses
// and keys for one network from those intended for use on another network.
//
// A Params value is built once by NewRegistry and never changed afterwards,
// with the exception of the UnitTest profile through UnitTestParams. The
// fields are exported for reading only; callers must not modify a profile
// obtained from a Registry.
type Params struct {
	// Kind is the registry key of the network.
	Kind NetworkKind

	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net wire.BitcoinNet

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort uint16

	// AlertPubKey verifies network alert messages.
	AlertPubKey []byte

	// MinerThreads is the default number of mining threads, 0 means one
	// per CPU.
	MinerThreads int

	Consensus ConsensusParams

	// GenesisSpec is the input the genesis block was built from.
	GenesisSpec GenesisSpec

	// GenesisBlock defines the first block of the chain.
	GenesisBlock *wire.MsgBlock

	// GenesisHash is the hard-coded hash of the genesis block.
	GenesisHash *chainhash.Hash

	// GenesisMerkleRoot is the hard-coded merkle root of the genesis block.
	GenesisMerkleRoot *chainhash.Hash

	// Checkpoints ordered from oldest to newest.
	Checkpoints *CheckpointSet

	Seeds SeedSet

	Prefixes AddressPrefixes

	Flags Flags
}

// MessageStart returns the four magic bytes in wire order.
func (p *Params) MessageStart() [4]byte {
	var b [4]byte

	binary.LittleEndian.PutUint32(b[:], uint32(p.Net))

	return b
}

// VerifyGenesis checks the built genesis block against the hard-coded hash
// and merkle root.
func (p *Params) VerifyGenesis() error {
	return VerifyGenesis(p.Name, p.GenesisBlock, p.GenesisHash, p.GenesisMerkleRoot)
}

// clone returns a deep copy of p without its genesis block, which has to be
// rebuilt from the copied GenesisSpec. Only the checkpoint set, which is never
// modified, is shared.
func (p *Params) clone() *Params {
	c := *p
	c.AlertPubKey = append([]byte(nil), p.AlertPubKey...)
	c.Consensus = p.Consensus.clone()
	c.GenesisSpec = p.GenesisSpec.clone()
	c.Seeds = p.Seeds.clone()
	c.GenesisBlock = nil

	if p.GenesisHash != nil {
		h := *p.GenesisHash
		c.GenesisHash = &h
	}

	if p.GenesisMerkleRoot != nil {
		h := *p.GenesisMerkleRoot
		c.GenesisMerkleRoot = &h
	}

	return &c
}

// profileOverride describes how a network differs from the profile it is
// derived from.
type profileOverride func(p *Params) error

// deriveProfile copies base and applies the overrides in order, then
// rebuilds the genesis block from the resulting genesis spec.
func deriveProfile(base *Params, overrides ...profileOverride) (*Params, error) {
	p := base.clone()

	for _, o := range overrides {
		if err := o(p); err != nil {
			return nil, err
		}
	}

	block, err := BuildGenesisBlock(p.GenesisSpec)
	if err != nil {
		return nil, errors.NewProcessingError("[%s] failed to build genesis block", p.Name, err)
	}

	p.GenesisBlock = block

	if err = p.Consensus.Validate(); err != nil {
		return nil, errors.NewInvalidArgumentError("[%s] invalid consensus parameters", p.Name, err)
	}

	return p, nil
}

// fixedSeedsMain holds the compiled fallback peers of the main network.
var fixedSeedsMain []SeedSpec

// fixedSeedsTest holds the compiled fallback peers of the test network.
var fixedSeedsTest []SeedSpec

var mainDNSSeeds = []DNSSeed{
	{Name: "king.odj.ru", Host: "king.odj.ru"},
	{Name: "king1.odj.ru", Host: "king1.odj.ru"},
	{Name: "king2.odj.ru", Host: "king2.odj.ru"},
	{Name: "king3.odj.ru", Host: "king3.odj.ru"},

	{Name: "node1.exip.net", Host: "node1.exip.net"},
	{Name: "node2.exip.net", Host: "node2.exip.net"},
	{Name: "node3.exip.net", Host: "node3.exip.net"},
	{Name: "node4.exip.net", Host: "node4.exip.net"},
}

// mainGenesisHash is the hash of the first block in the block chain for the
// main network (genesis block).
var mainGenesisHash = newHashFromStr("b4e5b2790a490485f66f85f72bef41bd53911a1673faaea48675bf82532e233e")

// genesisMerkleRoot is the hash of the first transaction in the genesis block
// for the main network. The regression test network shares it.
var genesisMerkleRoot = newHashFromStr("a67314dde6a69568e3e047fa7c3c0622557ec68f02a297db0af1788024e6d239")

// regTestGenesisHash is the hash of the first block in the block chain for the
// regression test network (genesis block).
var regTestGenesisHash = newHashFromStr("73c4fd3f16b8185aa8c5f61d5e79b11da22ca24f6cd02f6cb21f85ac8fd7923f")

// newMainParams builds the main network profile every other profile is
// derived from.
func newMainParams(now time.Time, rng Int63nSource) (*Params, error) {
	checkpoints, err := NewCheckpointSet([]Checkpoint{
		{0, newHashFromStr("b4e5b2790a490485f66f85f72bef41bd53911a1673faaea48675bf82532e233e")},
		{100, newHashFromStr("3ac76fccef7d1e2da6f2d44df348fe5578a03362ccd4cecbebd340de0c26a575")},
		{200, newHashFromStr("4666fccebc32e66c0e8270a46952534777fe7a8e7b5112583c833bf1747d260b")},
		{600, newHashFromStr("b377accb94bb103aeb2302e03f2541bca61973163dcab9a61fd9eff580bf7602")},
	},
		time.Unix(1486574638, 0), // block d77cb63a40042d73a83142383c7872c123cda7253db1d9c0effc8a029ca857b2
		602,
		1152.0,
	)
	if err != nil {
		return nil, err
	}

	consensus := ConsensusParams{
		PowLimit:                    new(big.Int).Set(mainPowLimit),
		SubsidyHalvingInterval:      210000,
		InitialSubsidy:              126_000_000,
		EnforceBlockUpgradeMajority: 750,
		RejectBlockOutdatedMajority: 950,
		ToCheckBlockUpgradeMajority: 1000,
		TargetTimespan:              time.Hour * 24 * 7 / 2, // 3.5 days
		ShortTargetTimespan:         time.Minute * 10,
		TargetSpacing:               time.Second * 150, // 2.5 minutes
		MaxTipAge:                   time.Hour * 24,
		EnforceV2AfterHeight:        710000,
	}

	p := &Params{
		Kind:         Main,
		Name:         Main.String(),
		Net:          MainNet,
		DefaultPort:  8644,
		AlertPubKey:  mustDecodeHex("043014c67b78f95c8964ba4f10bc83ce6dbee8d6afeb0570552e2f7562f83a5ae6cc937900545ab5c30a84565315d55107d5269e816c50e4080ca89dc2cc64e9c2"),
		MinerThreads: 0,
		Consensus:    consensus,
		GenesisSpec: GenesisSpec{
			TimestampMessage: "Monday, 06-Feb-17 18:00:00 UTC",
			RewardPubKey:     mustDecodeHex("04a15fddd04020b22f44bb5688d5104532d93b5503ee7bcb998a334390ef584c1199267f67d324b2c6b843ab350260bde25671952299af57d084085cd2a73dfe0d"),
			Reward:           consensus.InitialSubsidySatoshis(),
			Version:          1,
			Timestamp:        time.Unix(1486404000, 0), // 2017-02-06 18:00:00 +0000 UTC
			Bits:             0x1e0ffff0,
			Nonce:            995063,
		},
		GenesisHash:       mainGenesisHash,
		GenesisMerkleRoot: genesisMerkleRoot,
		Checkpoints:       checkpoints,
		Seeds: SeedSet{
			DNSSeeds:       mainDNSSeeds,
			FixedSeeds:     fixedSeedsMain,
			FixedAddresses: ConvertFixedSeeds(fixedSeedsMain, now, rng),
		},
		Prefixes: AddressPrefixes{
			PubKeyHashAddrID: 0,
			ScriptHashAddrID: 5,
			PrivateKeyID:     128,
			HDPrivateKeyID:   hdPrivateKeyID,
			HDPublicKeyID:    hdPublicKeyID,
		},
		Flags: Flags{
			RequireRPCPassword:            true,
			MiningRequiresPeers:           true,
			AllowMinDifficultyBlocks:      false,
			DefaultConsistencyChecks:      false,
			RequireStandard:               true,
			MineBlocksOnDemand:            false,
			SkipProofOfWorkCheck:          false,
			TestnetToBeDeprecatedFieldRPC: false,
		},
	}

	return deriveProfile(p)
}

// newTestParams derives the public test network from main. It keeps the main
// genesis block and magic and differs in port, alert key, prefixes and
// checkpoints.
func newTestParams(main *Params, now time.Time, rng Int63nSource) (*Params, error) {
	checkpoints, err := NewCheckpointSet([]Checkpoint{
		{0, mainGenesisHash},
	},
		time.Unix(1486339200, 0),
		0,
		630,
	)
	if err != nil {
		return nil, err
	}

	return deriveProfile(main, func(p *Params) error {
		p.Kind = Test
		p.Name = Test.String()
		p.Net = TestNet
		p.DefaultPort = 9333
		p.AlertPubKey = mustDecodeHex("04c3a87437918ba20792e662b1331412198b30811addbaf7a51df3c793590f8711899ac32507a4813fa8b165283e5fda113aa34558c0c0b837fea1c4dcd63a5e8a")
		p.Checkpoints = checkpoints
		p.Seeds = SeedSet{
			DNSSeeds:       append([]DNSSeed(nil), mainDNSSeeds...),
			FixedSeeds:     fixedSeedsTest,
			FixedAddresses: ConvertFixedSeeds(fixedSeedsTest, now, rng),
		}
		p.Prefixes.PubKeyHashAddrID = 48
		p.Prefixes.ScriptHashAddrID = 5
		p.Prefixes.PrivateKeyID = 176
		p.Flags = Flags{
			RequireRPCPassword:  true,
			MiningRequiresPeers: true,
			RequireStandard:     true,
		}
		p.Consensus.EnforceV2AfterHeight = 710000

		return nil
	})
}

// newRegTestParams derives the regression test network from the test
// network: its own magic and genesis, trivial difficulty and no seeds.
func newRegTestParams(test *Params) (*Params, error) {
	checkpoints, err := NewCheckpointSet([]Checkpoint{
		{0, regTestGenesisHash},
	},
		time.Unix(0, 0),
		0,
		0,
	)
	if err != nil {
		return nil, err
	}

	return deriveProfile(test, func(p *Params) error {
		p.Kind = RegTest
		p.Name = RegTest.String()
		p.Net = RegTestNet
		p.DefaultPort = 19444
		p.MinerThreads = 1

		p.Consensus.SubsidyHalvingInterval = 150
		p.Consensus.EnforceBlockUpgradeMajority = 750
		p.Consensus.RejectBlockOutdatedMajority = 950
		p.Consensus.ToCheckBlockUpgradeMajority = 1000
		p.Consensus.PowLimit = new(big.Int).Set(regressionPowLimit)
		p.Consensus.EnforceV2AfterHeight = NoEnforceV2Height

		p.GenesisSpec.Timestamp = time.Unix(1486339200, 0) // 2017-02-06 00:00:00 +0000 UTC
		p.GenesisSpec.Bits = 0x207fffff
		p.GenesisSpec.Nonce = 0
		p.GenesisHash = regTestGenesisHash
		p.GenesisMerkleRoot = genesisMerkleRoot

		p.Checkpoints = checkpoints
		p.Seeds = SeedSet{}
		p.Flags = Flags{
			AllowMinDifficultyBlocks: true,
			DefaultConsistencyChecks: true,
			MineBlocksOnDemand:       true,
		}

		return nil
	})
}

// newUnitTestParams derives the unit test network from main. It shares the
// main checkpoints and genesis, listens on its own port and has no seeds.
func newUnitTestParams(main *Params) (*Params, error) {
	return deriveProfile(main, func(p *Params) error {
		p.Kind = UnitTest
		p.Name = UnitTest.String()
		p.DefaultPort = 18445
		p.Seeds = SeedSet{}

		p.Flags.RequireRPCPassword = false
		p.Flags.MiningRequiresPeers = false
		p.Flags.DefaultConsistencyChecks = true
		p.Flags.AllowMinDifficultyBlocks = false
		p.Flags.MineBlocksOnDemand = true

		p.Consensus.EnforceV2AfterHeight = NoEnforceV2Height

		return nil
	})
}
