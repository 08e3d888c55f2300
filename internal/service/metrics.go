package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Метрики движка. Регистрируются в дефолтном реестре prometheus;
// наружу отдаются через /metrics в cmd.
var (
	feedCycles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "miniblog_feed_cycles_total",
		Help: "Feed aggregation cycles by category filter and outcome.",
	}, []string{"category", "result"})

	feedSourceFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "miniblog_feed_source_failures_total",
		Help: "Per-category page fetches degraded to an empty page.",
	}, []string{"category"})

	feedEnrichFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "miniblog_feed_enrich_failures_total",
		Help: "Per-item enrichment calls degraded to a default value.",
	}, []string{"call"})

	commentMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "miniblog_comment_mutations_total",
		Help: "Comment mutations by operation and outcome.",
	}, []string{"op", "result"})
)

const (
	resultAppended  = "appended"
	resultExhausted = "exhausted"
	resultStale     = "stale"

	resultOK     = "ok"
	resultDenied = "denied"
	resultFailed = "failed"
)
