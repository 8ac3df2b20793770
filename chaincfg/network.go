package chaincfg

import (
	"strconv"
	"strings"

	"github.com/lavrovcoin/lavrovd/errors"
)

// NetworkKind identifies one of the networks the node knows how to join. It
// is the only key into the profile registry.
type NetworkKind uint8

const (
	// Main is the production network.
	Main NetworkKind = iota

	// Test is the public test network.
	Test

	// RegTest is the local regression test network. Blocks are mined on
	// demand and difficulty is trivial.
	RegTest

	// UnitTest is the in-process network used by unit tests. It is the only
	// network whose parameters may be changed after construction.
	UnitTest

	numNetworkKinds
)

// networkNames holds the network ids used in config files and on the command
// line.
var networkNames = [numNetworkKinds]string{
	Main:     "main",
	Test:     "test",
	RegTest:  "regtest",
	UnitTest: "unittest",
}

var networkAliases = map[string]NetworkKind{
	"main":     Main,
	"mainnet":  Main,
	"test":     Test,
	"testnet":  Test,
	"testnet3": Test,
	"regtest":  RegTest,
	"regnet":   RegTest,
	"unittest": UnitTest,
}

// AllNetworkKinds returns every network kind in declaration order.
func AllNetworkKinds() []NetworkKind {
	return []NetworkKind{Main, Test, RegTest, UnitTest}
}

// IsValid reports whether k is a member of the closed set of network kinds.
func (k NetworkKind) IsValid() bool {
	return k < numNetworkKinds
}

func (k NetworkKind) String() string {
	if !k.IsValid() {
		return "unknown(" + strconv.Itoa(int(k)) + ")"
	}

	return networkNames[k]
}

// ParseNetworkKind maps a network name to its kind. Names are case
// insensitive; the btcd style aliases mainnet, testnet, testnet3 and regnet
// are accepted as well.
func ParseNetworkKind(name string) (NetworkKind, error) {
	kind, ok := networkAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, errors.NewInvalidNetworkSelectionError("unknown network %q", name)
	}

	return kind, nil
}

// NetworkFromFlags applies the command line rule of the reference client:
// -testnet and -regtest are mutually exclusive and neither means Main.
func NetworkFromFlags(testnet, regtest bool) (NetworkKind, error) {
	switch {
	case testnet && regtest:
		return 0, errors.NewInvalidNetworkSelectionError("invalid combination of -regtest and -testnet")
	case regtest:
		return RegTest, nil
	case testnet:
		return Test, nil
	default:
		return Main, nil
	}
}
