package chaincfg

import (
	"sync"
	"testing"
	"time"

	"github.com/lavrovcoin/lavrovd/errors"
	"github.com/lavrovcoin/lavrovd/ulogger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()

	r, err := NewRegistry(&ulogger.TestLogger{}, WithClock(func() time.Time {
		return time.Unix(1_700_000_000, 0)
	}))
	require.NoError(t, err)

	return r
}

func TestRegistryCurrentBeforeSelect(t *testing.T) {
	r := newTestRegistry(t)

	_, err := r.Current()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidNetworkSelection))

	_, err = r.UnitTestParams()
	assert.True(t, errors.Is(err, errors.ErrInvalidNetworkSelection))
}

func TestRegistrySelect(t *testing.T) {
	for _, kind := range AllNetworkKinds() {
		t.Run(kind.String(), func(t *testing.T) {
			r := newTestRegistry(t)

			require.NoError(t, r.Select(kind))

			p, err := r.Current()
			require.NoError(t, err)
			assert.Equal(t, kind, p.Kind)
			assert.Same(t, r.ProfileFor(kind), p)
		})
	}
}

func TestRegistrySelectIsIdempotent(t *testing.T) {
	r := newTestRegistry(t)

	require.NoError(t, r.Select(RegTest))
	require.NoError(t, r.Select(RegTest))

	p, err := r.Current()
	require.NoError(t, err)
	assert.Equal(t, RegTest, p.Kind)
}

func TestRegistrySelectDifferentKind(t *testing.T) {
	r := newTestRegistry(t)

	require.NoError(t, r.Select(Main))

	err := r.Select(Test)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidNetworkSelection))

	p, err := r.Current()
	require.NoError(t, err)
	assert.Equal(t, Main, p.Kind)
}

func TestRegistrySelectUnknownKind(t *testing.T) {
	r := newTestRegistry(t)

	err := r.Select(NetworkKind(42))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidNetworkSelection))

	_, err = r.Current()
	assert.Error(t, err)
}

func TestRegistrySelectBrokenGenesis(t *testing.T) {
	r := newTestRegistry(t)

	// corrupt the constant the genesis block is checked against
	broken := r.ProfileFor(RegTest)
	hash := *broken.GenesisHash
	hash[0] ^= 0xff
	broken.GenesisHash = &hash

	err := r.Select(RegTest)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrConfigurationIntegrity))
	assert.True(t, errors.IsFatalConfigurationError(err))

	// nothing was published, another network can still be chosen
	_, err = r.Current()
	require.Error(t, err)
	require.NoError(t, r.Select(Main))
}

func TestRegistrySelectConcurrently(t *testing.T) {
	r := newTestRegistry(t)

	var wg sync.WaitGroup

	errs := make([]error, len(AllNetworkKinds())*10)
	for i := range errs {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()
			errs[i] = r.Select(AllNetworkKinds()[i%len(AllNetworkKinds())])
		}(i)
	}

	wg.Wait()

	p, err := r.Current()
	require.NoError(t, err)

	for i, err := range errs {
		if AllNetworkKinds()[i%len(AllNetworkKinds())] == p.Kind {
			assert.NoError(t, err)
		} else {
			assert.Error(t, err)
		}
	}
}

func TestRegistryReset(t *testing.T) {
	r := newTestRegistry(t)

	require.NoError(t, r.Reset())
	require.NoError(t, r.Select(UnitTest))

	u, err := r.UnitTestParams()
	require.NoError(t, err)
	u.SetSubsidyHalvingInterval(10)

	require.NoError(t, r.Reset())

	_, err = r.Current()
	require.Error(t, err)

	require.NoError(t, r.Select(Test))
	assert.Equal(t, int32(210000), r.ProfileFor(UnitTest).Consensus.SubsidyHalvingInterval)

	// a handle from before the reset no longer works
	assert.Panics(t, func() { u.SetSubsidyHalvingInterval(20) })
}

func TestRegistryResetWhileReading(t *testing.T) {
	r := newTestRegistry(t)

	done := make(chan struct{})

	var wg sync.WaitGroup

	for i := 0; i < 4; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for {
				select {
				case <-done:
					return
				default:
				}

				assert.Equal(t, UnitTest, r.ProfileFor(UnitTest).Kind)
				assert.True(t, r.IsPubKeyHashAddrID(48))
			}
		}()
	}

	for i := 0; i < 20; i++ {
		require.NoError(t, r.Select(UnitTest))
		require.NoError(t, r.Reset())
	}

	close(done)
	wg.Wait()
}

func TestProfileFor(t *testing.T) {
	r := newTestRegistry(t)

	for _, kind := range AllNetworkKinds() {
		assert.Same(t, r.ProfileFor(kind), r.ProfileFor(kind))
	}

	assert.Panics(t, func() { r.ProfileFor(numNetworkKinds) })
}

func TestProfilesShareNoMutableState(t *testing.T) {
	r := newTestRegistry(t)

	main := r.ProfileFor(Main)
	unitTest := r.ProfileFor(UnitTest)

	assert.NotSame(t, main.Consensus.PowLimit, unitTest.Consensus.PowLimit)
	assert.NotSame(t, main.GenesisBlock, unitTest.GenesisBlock)
	assert.NotSame(t, main.GenesisHash, unitTest.GenesisHash)

	unitTest.Consensus.PowLimit.SetInt64(1)
	unitTest.AlertPubKey[0] ^= 0xff
	unitTest.GenesisSpec.RewardPubKey[0] ^= 0xff

	assert.Equal(t, 0, main.Consensus.PowLimit.Cmp(mainPowLimit))
	assert.Equal(t, byte(0x04), main.AlertPubKey[0])
	assert.Equal(t, byte(0x04), main.GenesisSpec.RewardPubKey[0])

	other := newTestRegistry(t)
	assert.NotSame(t, main, other.ProfileFor(Main))
}

func TestProcessRegistry(t *testing.T) {
	t.Cleanup(ResetSelection)

	ResetSelection()

	assert.Panics(t, func() { CurrentProfile() })
	assert.Panics(t, func() { ModifiableParams() })

	SelectNetwork(RegTest)
	SelectNetwork(RegTest)

	assert.Equal(t, RegTest, CurrentProfile().Kind)
	assert.Same(t, ProfileFor(RegTest), CurrentProfile())

	assert.Panics(t, func() { SelectNetwork(Main) })
	assert.Panics(t, func() { ModifiableParams() })

	defer func() {
		recovered := recover()
		require.NotNil(t, recovered)

		err, ok := recovered.(*errors.Error)
		require.True(t, ok)
		assert.Equal(t, errors.ERR_INVALID_NETWORK_SELECTION, err.Code())
	}()

	SelectNetwork(Test)
}
