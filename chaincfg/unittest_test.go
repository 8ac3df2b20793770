package chaincfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selectedUnitTest(t *testing.T) (*Registry, *UnitTestParams) {
	t.Helper()

	r := newTestRegistry(t)
	require.NoError(t, r.Select(UnitTest))

	u, err := r.UnitTestParams()
	require.NoError(t, err)

	return r, u
}

func TestUnitTestParamsChangeOnlyTheirField(t *testing.T) {
	tests := []struct {
		name   string
		set    func(u *UnitTestParams)
		expect func(p *Params)
	}{
		{"SubsidyHalvingInterval", func(u *UnitTestParams) { u.SetSubsidyHalvingInterval(150) }, func(p *Params) { p.Consensus.SubsidyHalvingInterval = 150 }},
		{"EnforceBlockUpgradeMajority", func(u *UnitTestParams) { u.SetEnforceBlockUpgradeMajority(51) }, func(p *Params) { p.Consensus.EnforceBlockUpgradeMajority = 51 }},
		{"RejectBlockOutdatedMajority", func(u *UnitTestParams) { u.SetRejectBlockOutdatedMajority(75) }, func(p *Params) { p.Consensus.RejectBlockOutdatedMajority = 75 }},
		{"ToCheckBlockUpgradeMajority", func(u *UnitTestParams) { u.SetToCheckBlockUpgradeMajority(100) }, func(p *Params) { p.Consensus.ToCheckBlockUpgradeMajority = 100 }},
		{"DefaultConsistencyChecks", func(u *UnitTestParams) { u.SetDefaultConsistencyChecks(false) }, func(p *Params) { p.Flags.DefaultConsistencyChecks = false }},
		{"AllowMinDifficultyBlocks", func(u *UnitTestParams) { u.SetAllowMinDifficultyBlocks(true) }, func(p *Params) { p.Flags.AllowMinDifficultyBlocks = true }},
		{"SkipProofOfWorkCheck", func(u *UnitTestParams) { u.SetSkipProofOfWorkCheck(true) }, func(p *Params) { p.Flags.SkipProofOfWorkCheck = true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, u := selectedUnitTest(t)

			expected := r.ProfileFor(UnitTest).clone()
			tt.expect(expected)

			tt.set(u)

			actual := r.ProfileFor(UnitTest)
			assert.Equal(t, expected.Consensus, actual.Consensus)
			assert.Equal(t, expected.Flags, actual.Flags)
			assert.Equal(t, expected.Prefixes, actual.Prefixes)
			assert.Equal(t, expected.DefaultPort, actual.DefaultPort)

			// the other profiles keep their values
			assert.Equal(t, int32(210000), r.ProfileFor(Main).Consensus.SubsidyHalvingInterval)
			assert.False(t, r.ProfileFor(Main).Flags.SkipProofOfWorkCheck)
		})
	}
}

func TestUnitTestParamsVisibleThroughCurrent(t *testing.T) {
	r, u := selectedUnitTest(t)

	u.SetSkipProofOfWorkCheck(true)

	p, err := r.Current()
	require.NoError(t, err)
	assert.True(t, p.Flags.SkipProofOfWorkCheck)
	assert.Same(t, p, u.Params())
}

func TestUnitTestParamsUnderAnotherNetwork(t *testing.T) {
	r := newTestRegistry(t)
	require.NoError(t, r.Select(RegTest))

	_, err := r.UnitTestParams()
	require.Error(t, err)

	// a handle built for the unittest profile refuses to write either
	u := &UnitTestParams{registry: r, params: r.ProfileFor(UnitTest)}
	assert.Panics(t, func() { u.SetSubsidyHalvingInterval(1) })
	assert.Equal(t, int32(210000), r.ProfileFor(UnitTest).Consensus.SubsidyHalvingInterval)
}
