package chaincfg

import (
	"net"
	"testing"
	"time"

	"github.com/bsv-blockchain/go-wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRand always returns the same draw, clamped to the requested range.
type fixedRand int64

func (f fixedRand) Int63n(n int64) int64 {
	if int64(f) >= n {
		return n - 1
	}

	return int64(f)
}

func ipv4Seed(a, b, c, d byte, port uint16) SeedSpec {
	var spec SeedSpec

	copy(spec.Addr[:], net.IPv4(a, b, c, d).To16())
	spec.Port = port

	return spec
}

func TestConvertFixedSeedsWindow(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	specs := make([]SeedSpec, 1000)
	for i := range specs {
		specs[i] = ipv4Seed(10, 0, byte(i>>8), byte(i), 8644)
	}

	addrs := ConvertFixedSeeds(specs, now, nil)
	require.Len(t, addrs, len(specs))

	earliest := now.Add(-2 * oneWeek)
	latest := now.Add(-oneWeek)

	for i, na := range addrs {
		assert.False(t, na.Timestamp.Before(earliest), "address %d seen before the window: %s", i, na.Timestamp)
		assert.False(t, na.Timestamp.After(latest), "address %d seen after the window: %s", i, na.Timestamp)
		assert.Equal(t, wire.SFNodeNetwork, na.Services)
		assert.Equal(t, uint16(8644), na.Port)
		assert.True(t, na.IP.Equal(net.IPv4(10, 0, byte(i>>8), byte(i))))
	}
}

func TestConvertFixedSeedsBounds(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	specs := []SeedSpec{ipv4Seed(127, 0, 0, 1, 9333)}

	newest := ConvertFixedSeeds(specs, now, fixedRand(0))
	assert.Equal(t, now.Add(-oneWeek).Unix(), newest[0].Timestamp.Unix())

	oldest := ConvertFixedSeeds(specs, now, fixedRand(oneWeekSeconds))
	assert.Equal(t, now.Add(-2*oneWeek).Unix()+1, oldest[0].Timestamp.Unix())
}

func TestConvertFixedSeedsFractionalNow(t *testing.T) {
	now := time.Unix(1_700_000_000, 500_000_000)
	specs := []SeedSpec{ipv4Seed(127, 0, 0, 1, 9333)}

	for _, rng := range []Int63nSource{fixedRand(0), fixedRand(oneWeekSeconds), nil} {
		addrs := ConvertFixedSeeds(specs, now, rng)
		require.Len(t, addrs, 1)

		assert.False(t, addrs[0].Timestamp.Before(now.Add(-2*oneWeek)), "seen before the window: %s", addrs[0].Timestamp)
		assert.False(t, addrs[0].Timestamp.After(now.Add(-oneWeek)), "seen after the window: %s", addrs[0].Timestamp)
	}
}

func TestConvertFixedSeedsEmpty(t *testing.T) {
	assert.Empty(t, ConvertFixedSeeds(nil, time.Now(), nil))
}

func TestResolveSeeds(t *testing.T) {
	r := newTestRegistry(t)

	hosts, addrs := ResolveSeeds(r.ProfileFor(Main))
	assert.Equal(t, []string{
		"king.odj.ru", "king1.odj.ru", "king2.odj.ru", "king3.odj.ru",
		"node1.exip.net", "node2.exip.net", "node3.exip.net", "node4.exip.net",
	}, hosts)
	assert.Empty(t, addrs)

	testHosts, _ := ResolveSeeds(r.ProfileFor(Test))
	assert.Equal(t, hosts, testHosts)

	for _, kind := range []NetworkKind{RegTest, UnitTest} {
		hosts, addrs := ResolveSeeds(r.ProfileFor(kind))
		assert.Empty(t, hosts, kind.String())
		assert.Empty(t, addrs, kind.String())
	}
}

func TestResolveSeedsReturnsCopies(t *testing.T) {
	p := &Params{
		Seeds: SeedSet{
			FixedAddresses: ConvertFixedSeeds([]SeedSpec{ipv4Seed(192, 168, 1, 1, 8644)}, time.Unix(1_700_000_000, 0), fixedRand(0)),
		},
	}

	_, addrs := ResolveSeeds(p)
	require.Len(t, addrs, 1)

	addrs[0].Port = 1
	addrs[0].IP[15] = 2

	assert.Equal(t, uint16(8644), p.Seeds.FixedAddresses[0].Port)
	assert.True(t, p.Seeds.FixedAddresses[0].IP.Equal(net.IPv4(192, 168, 1, 1)))
}

func TestDNSSeedString(t *testing.T) {
	assert.Equal(t, "king.odj.ru", DNSSeed{Name: "king", Host: "king.odj.ru"}.String())
}
