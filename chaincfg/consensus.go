package chaincfg

import (
	"math/big"
	"time"

	"github.com/lavrovcoin/lavrovd/errors"
)

// NoEnforceV2Height disables the height based version 2 block rule. It is
// below every valid block height.
const NoEnforceV2Height int32 = -1

// COIN is the number of satoshi in one coin.
const COIN int64 = 100_000_000

var (
	// bigOne is 1 represented as a big.Int.  It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// mainPowLimit is the highest proof of work value a block can have on
	// the main network.  It is the value 2^236 - 1.
	mainPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 236), bigOne)

	// regressionPowLimit is the highest proof of work value a block can have
	// on the regression test network.  It is the value 2^255 - 1.
	regressionPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)
)

// ConsensusParams holds the consensus constants of a network. The values are
// read by the validation, mining and chain sync code; nothing in this package
// executes the rules they describe.
type ConsensusParams struct {
	// PowLimit defines the highest allowed proof of work value for a block
	// as a uint256.
	PowLimit *big.Int

	// SubsidyHalvingInterval is the interval of blocks before the subsidy
	// is reduced.
	SubsidyHalvingInterval int32

	// InitialSubsidy is the block reward, in whole coins, before the first
	// halving. The genesis coinbase pays this amount.
	InitialSubsidy int64

	// EnforceBlockUpgradeMajority is the number of blocks in the last
	// ToCheckBlockUpgradeMajority blocks that must signal a new version
	// before its rules are enforced on blocks of that version.
	EnforceBlockUpgradeMajority int32

	// RejectBlockOutdatedMajority is the number of blocks in the last
	// ToCheckBlockUpgradeMajority blocks that must signal a new version
	// before blocks of older versions are rejected.
	RejectBlockOutdatedMajority int32

	// ToCheckBlockUpgradeMajority is the size of the signalling window.
	ToCheckBlockUpgradeMajority int32

	// TargetTimespan is the desired amount of time that should elapse
	// before the block difficulty requirement is examined.
	TargetTimespan time.Duration

	// ShortTargetTimespan is the second, ten minute, retarget timespan
	// carried by the reference client next to TargetTimespan.
	ShortTargetTimespan time.Duration

	// TargetSpacing is the desired amount of time to generate each block.
	TargetSpacing time.Duration

	// MaxTipAge is how old the chain tip may be before the node considers
	// itself to be in initial block download.
	MaxTipAge time.Duration

	// EnforceV2AfterHeight is the height from which version 2 blocks are
	// mandatory. NoEnforceV2Height leaves the rule to the supermajority
	// signalling instead.
	EnforceV2AfterHeight int32
}

// Interval returns the number of blocks between difficulty retargets.
func (c *ConsensusParams) Interval() int64 {
	if c.TargetSpacing <= 0 {
		return 0
	}

	return int64(c.TargetTimespan / c.TargetSpacing)
}

// EnforcesV2At reports whether version 2 blocks are mandatory at height.
func (c *ConsensusParams) EnforcesV2At(height int32) bool {
	return c.EnforceV2AfterHeight != NoEnforceV2Height && height > c.EnforceV2AfterHeight
}

// InitialSubsidySatoshis returns the pre-halving block reward in satoshi.
func (c *ConsensusParams) InitialSubsidySatoshis() int64 {
	return c.InitialSubsidy * COIN
}

// Validate checks the parameters for values no network can use.
func (c *ConsensusParams) Validate() error {
	if c.PowLimit == nil || c.PowLimit.Sign() <= 0 {
		return errors.NewInvalidArgumentError("proof of work limit must be positive")
	}

	for _, f := range []struct {
		name  string
		value int64
	}{
		{"subsidy halving interval", int64(c.SubsidyHalvingInterval)},
		{"initial subsidy", c.InitialSubsidy},
		{"enforce block upgrade majority", int64(c.EnforceBlockUpgradeMajority)},
		{"reject block outdated majority", int64(c.RejectBlockOutdatedMajority)},
		{"block upgrade window", int64(c.ToCheckBlockUpgradeMajority)},
		{"target timespan", int64(c.TargetTimespan)},
		{"short target timespan", int64(c.ShortTargetTimespan)},
		{"target spacing", int64(c.TargetSpacing)},
		{"max tip age", int64(c.MaxTipAge)},
	} {
		if f.value < 0 {
			return errors.NewInvalidArgumentError("%s must not be negative, got %d", f.name, f.value)
		}
	}

	if c.EnforceBlockUpgradeMajority > c.ToCheckBlockUpgradeMajority ||
		c.RejectBlockOutdatedMajority > c.ToCheckBlockUpgradeMajority {
		return errors.NewInvalidArgumentError("block upgrade majorities %d/%d exceed the window of %d",
			c.EnforceBlockUpgradeMajority, c.RejectBlockOutdatedMajority, c.ToCheckBlockUpgradeMajority)
	}

	if c.EnforceV2AfterHeight < NoEnforceV2Height {
		return errors.NewInvalidArgumentError("v2 enforcement height %d is below the disabled sentinel", c.EnforceV2AfterHeight)
	}

	return nil
}

// clone returns a deep copy; PowLimit is not shared.
func (c ConsensusParams) clone() ConsensusParams {
	if c.PowLimit != nil {
		c.PowLimit = new(big.Int).Set(c.PowLimit)
	}

	return c
}
