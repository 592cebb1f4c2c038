package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeApplied   = "applied"
	outcomeDenied    = "denied"
	outcomeNoSession = "no_session"
	outcomeFailed    = "failed"
)

var (
	// IntentsTotal counts intents by name and outcome.
	IntentsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "protrain_intents_total",
		Help: "Total number of intents processed by outcome",
	}, []string{"intent", "outcome"})

	// SessionWritesFailed counts session store writes that did not land.
	SessionWritesFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "protrain_session_write_failures_total",
		Help: "Total number of failed session store writes",
	})
)

func recordIntent(intent, outcome string) {
	IntentsTotal.WithLabelValues(intent, outcome).Inc()
}
