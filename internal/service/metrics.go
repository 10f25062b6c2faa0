package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	settlementRuns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tripsplit_settlement_runs_total",
		Help: "Number of settlement calculations performed.",
	})

	danglingExpenses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tripsplit_dangling_expenses_total",
		Help: "Number of expenses skipped because their payer was no longer a participant.",
	})
)
