package chaincfg

import (
	"github.com/lavrovcoin/lavrovd/errors"
)

// UnitTestParams is the only way to change a profile after construction. It
// wraps the UnitTest profile of a registry and every setter first checks that
// this profile is still the selected one. It is meant for single threaded
// test setup; the setters do not synchronize with readers.
type UnitTestParams struct {
	registry *Registry
	params   *Params
}

// Params returns the wrapped profile.
func (u *UnitTestParams) Params() *Params {
	u.mustBeSelected("Params")
	return u.params
}

func (u *UnitTestParams) mustBeSelected(field string) {
	current := u.registry.current.Load()
	if current == nil || current != u.params {
		panic(errors.NewInvalidNetworkSelectionError("cannot modify %s: %s is no longer the selected network", field, UnitTest))
	}
}

func (u *UnitTestParams) changed(field string, from, to interface{}) {
	prometheusChaincfgUnitTestChanges.WithLabelValues(field).Inc()
	u.registry.logger.Warnf("[chaincfg] %s %s changed from %v to %v", UnitTest, field, from, to)
}

func (u *UnitTestParams) SetSubsidyHalvingInterval(v int32) {
	u.mustBeSelected("SubsidyHalvingInterval")
	u.changed("SubsidyHalvingInterval", u.params.Consensus.SubsidyHalvingInterval, v)
	u.params.Consensus.SubsidyHalvingInterval = v
}

func (u *UnitTestParams) SetEnforceBlockUpgradeMajority(v int32) {
	u.mustBeSelected("EnforceBlockUpgradeMajority")
	u.changed("EnforceBlockUpgradeMajority", u.params.Consensus.EnforceBlockUpgradeMajority, v)
	u.params.Consensus.EnforceBlockUpgradeMajority = v
}

func (u *UnitTestParams) SetRejectBlockOutdatedMajority(v int32) {
	u.mustBeSelected("RejectBlockOutdatedMajority")
	u.changed("RejectBlockOutdatedMajority", u.params.Consensus.RejectBlockOutdatedMajority, v)
	u.params.Consensus.RejectBlockOutdatedMajority = v
}

func (u *UnitTestParams) SetToCheckBlockUpgradeMajority(v int32) {
	u.mustBeSelected("ToCheckBlockUpgradeMajority")
	u.changed("ToCheckBlockUpgradeMajority", u.params.Consensus.ToCheckBlockUpgradeMajority, v)
	u.params.Consensus.ToCheckBlockUpgradeMajority = v
}

func (u *UnitTestParams) SetDefaultConsistencyChecks(v bool) {
	u.mustBeSelected("DefaultConsistencyChecks")
	u.changed("DefaultConsistencyChecks", u.params.Flags.DefaultConsistencyChecks, v)
	u.params.Flags.DefaultConsistencyChecks = v
}

func (u *UnitTestParams) SetAllowMinDifficultyBlocks(v bool) {
	u.mustBeSelected("AllowMinDifficultyBlocks")
	u.changed("AllowMinDifficultyBlocks", u.params.Flags.AllowMinDifficultyBlocks, v)
	u.params.Flags.AllowMinDifficultyBlocks = v
}

// SetSkipProofOfWorkCheck lets tests connect blocks with arbitrary headers.
func (u *UnitTestParams) SetSkipProofOfWorkCheck(v bool) {
	u.mustBeSelected("SkipProofOfWorkCheck")
	u.changed("SkipProofOfWorkCheck", u.params.Flags.SkipProofOfWorkCheck, v)
	u.params.Flags.SkipProofOfWorkCheck = v
}
