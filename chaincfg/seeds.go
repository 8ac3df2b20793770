package chaincfg

import (
	"net"
	"time"

	"github.com/bsv-blockchain/go-wire"
	"golang.org/x/exp/rand"
)

// oneWeek bounds the synthetic last seen time of fixed seeds. Every fixed seed
// appears to have been seen between one and two weeks ago, so nodes spread
// their first connections instead of all preferring the same peer.
const oneWeek = 7 * 24 * time.Hour

const oneWeekSeconds = int64(oneWeek / time.Second)

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	// Name is the label shown to operators.
	Name string

	// Host defines the hostname of the seed.
	Host string
}

// String returns the hostname of the DNS seed in human-readable form.
func (d DNSSeed) String() string {
	return d.Host
}

// SeedSpec is a compiled fixed seed: a 16 byte IPv6 (or IPv4 mapped) address
// and a port.
type SeedSpec struct {
	Addr [16]byte
	Port uint16
}

// Int63nSource is the randomness used for seed timestamps. *rand.Rand from
// golang.org/x/exp/rand satisfies it.
type Int63nSource interface {
	Int63n(n int64) int64
}

// globalRand draws from the locked top level x/exp/rand source.
type globalRand struct{}

func (globalRand) Int63n(n int64) int64 {
	return rand.Int63n(n)
}

// SeedSet is the peer discovery data of a network.
type SeedSet struct {
	// DNSSeeds are resolved by the networking code; nothing here performs
	// lookups.
	DNSSeeds []DNSSeed

	// FixedSeeds are the compiled fallback addresses.
	FixedSeeds []SeedSpec

	// FixedAddresses are FixedSeeds converted when the profile was built.
	FixedAddresses []*wire.NetAddress
}

func (s SeedSet) clone() SeedSet {
	out := SeedSet{
		DNSSeeds:   append([]DNSSeed(nil), s.DNSSeeds...),
		FixedSeeds: append([]SeedSpec(nil), s.FixedSeeds...),
	}

	for _, na := range s.FixedAddresses {
		c := *na
		c.IP = append(net.IP(nil), na.IP...)
		out.FixedAddresses = append(out.FixedAddresses, &c)
	}

	return out
}

// ConvertFixedSeeds turns compiled seeds into network addresses advertising
// full node service. Each address gets a last seen time drawn uniformly from
// (now-2 weeks, now-1 week], in whole seconds. A nil rng uses the shared x/exp/rand source.
func ConvertFixedSeeds(specs []SeedSpec, now time.Time, rng Int63nSource) []*wire.NetAddress {
	if rng == nil {
		rng = globalRand{}
	}

	addrs := make([]*wire.NetAddress, 0, len(specs))

	for _, spec := range specs {
		ip := make(net.IP, net.IPv6len)
		copy(ip, spec.Addr[:])

		lastSeen := now.Unix() - oneWeekSeconds - rng.Int63n(oneWeekSeconds)

		addrs = append(addrs, &wire.NetAddress{
			Timestamp: time.Unix(lastSeen, 0),
			Services:  wire.SFNodeNetwork,
			IP:        ip,
			Port:      spec.Port,
		})
	}

	return addrs
}

// ResolveSeeds returns the DNS seed hosts and the fixed seed addresses of a
// profile. The addresses are copies; callers may change them.
func ResolveSeeds(p *Params) ([]string, []*wire.NetAddress) {
	hosts := make([]string, 0, len(p.Seeds.DNSSeeds))
	for _, seed := range p.Seeds.DNSSeeds {
		hosts = append(hosts, seed.Host)
	}

	return hosts, p.Seeds.clone().FixedAddresses
}
