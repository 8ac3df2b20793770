package chaincfg

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	prometheusChaincfgSelected        *prometheus.GaugeVec
	prometheusChaincfgSelectErrors    *prometheus.CounterVec
	prometheusChaincfgGenesisChecks   *prometheus.CounterVec
	prometheusChaincfgUnitTestChanges *prometheus.CounterVec

	prometheusMetricsInitOnce sync.Once
)

func initPrometheusMetrics() {
	prometheusMetricsInitOnce.Do(_initPrometheusMetrics)
}

func _initPrometheusMetrics() {
	prometheusChaincfgSelected = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "lavrovd",
			Subsystem: "chaincfg",
			Name:      "selected_network",
			Help:      "1 for the network selected by this process",
		},
		[]string{"network"},
	)
	prometheusChaincfgSelectErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lavrovd",
			Subsystem: "chaincfg",
			Name:      "select_errors",
			Help:      "Number of rejected network selections",
		},
		[]string{"reason"},
	)
	prometheusChaincfgGenesisChecks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lavrovd",
			Subsystem: "chaincfg",
			Name:      "genesis_checks",
			Help:      "Number of genesis block verifications",
		},
		[]string{"network"},
	)
	prometheusChaincfgUnitTestChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lavrovd",
			Subsystem: "chaincfg",
			Name:      "unittest_param_changes",
			Help:      "Number of changes made to the unittest network parameters",
		},
		[]string{"field"},
	)
}
