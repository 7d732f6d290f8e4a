package acyc

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	runsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "acyc_runs_total",
		Help: "Total number of Acyclify invocations.",
	})

	// edgesCutByCause counts original edges marked cut, labeled by which
	// stage cut them: basic (CutBasic self-loop), backward (CutBackward
	// A->B->A), placement (Placer rollback), or forced (the
	// circular-non-cutable recovery path in simplifyOut).
	edgesCutByCause = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "acyc_edges_cut_total",
		Help: "Total number of original edges marked cut, by cause.",
	}, []string{"cause"})

	// ruleFiredTotal counts firings of each reduction/cut rule, labeled by
	// the rule name, mirroring the original's UINFO(8, ...) call sites at
	// each rule (SimplifyNoneRemove, SimplifyOneRemove, SimplifyOutRemove,
	// DelDupEdge/DelDupPrev/DelDupComb, CutBasic, CutBackward, CutLoop).
	ruleFiredTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "acyc_rule_fired_total",
		Help: "Total number of times each reduction/cut rule fired.",
	}, []string{"rule"})

	forcedCutableTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "acyc_forced_cutable_total",
		Help: "Total number of forced-cutable recoveries from circular non-cutable logic.",
	})

	runDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "acyc_run_duration_seconds",
		Help:    "Wall-clock duration of a single Acyclify invocation.",
		Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 10},
	})

	breakGraphSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "acyc_break_graph_vertices",
		Help:    "Number of break vertices materialized per invocation.",
		Buckets: []float64{1, 10, 100, 1000, 10000},
	})
)
