package main

import (
	"net/http"
	_ "net/http/pprof" //nolint:gosec // profiling is only served when profilerAddr is set
	"os"

	"github.com/lavrovcoin/lavrovd/cmd/netparams"
	"github.com/lavrovcoin/lavrovd/settings"
	"github.com/ordishs/gocore"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Name used by build script for the binaries. (Please keep on single line)
const progname = "lavrovd"

// // Version & commit strings injected at build with -ldflags -X...
var version string
var commit string

func init() {
	gocore.SetInfo(progname, version, commit)
}

func main() {
	tSettings := settings.NewSettings()
	logger := tSettings.NewLogger(progname)

	if tSettings.PrometheusEndpoint != "" {
		logger.Infof("Registering prometheus endpoint on %s", tSettings.PrometheusEndpoint)
		http.Handle(tSettings.PrometheusEndpoint, promhttp.Handler())
	}

	go func() {
		profilerAddr, ok := gocore.Config().Get("profilerAddr")
		if ok {
			logger.Infof("Starting profile on http://%s/debug/pprof", profilerAddr)
			logger.Fatalf("%v", http.ListenAndServe(profilerAddr, nil)) //nolint:gosec // local profiling listener
		}
	}()

	netparams.Start(os.Args[1:], version, commit)
}
