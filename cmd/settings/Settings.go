package settings

import (
	"fmt"
	"io"

	"github.com/lavrovcoin/lavrovd/chaincfg"
	"github.com/lavrovcoin/lavrovd/settings"
	"github.com/ordishs/gocore"
)

// CmdSettings prints the gocore config stats, the version, the client and
// network settings, the RPC listener and the outcome of the RPC password
// policy for profile.
func CmdSettings(w io.Writer, version string, commit string, tSettings *settings.Settings, profile *chaincfg.Params) {
	stats := gocore.Config().Stats()
	fmt.Fprintf(w, "STATS\n%s\nVERSION\n-------\n%s (%s)\n\n", stats, version, commit)

	fmt.Fprintf(w, "CLIENT\n------\n%s\n\n", tSettings.ClientName)
	fmt.Fprintf(w, "NETWORK\n-------\n%s (configured: %s, checkpoints enabled: %t)\n\n",
		profile.Name, tSettings.Network, tSettings.CheckpointsEnabled)

	listener := "disabled"
	if tSettings.RPC.ListenerURL != nil && tSettings.RPC.ListenerURL.Host != "" {
		listener = tSettings.RPC.ListenerURL.String()
	}

	fmt.Fprintf(w, "RPC\n---\nlistener: %s\n", listener)

	if err := tSettings.RPC.Validate(profile); err != nil {
		fmt.Fprintf(w, "%v\n", err)
		return
	}

	fmt.Fprintf(w, "ok\n")
}
