package v1

import "github.com/prometheus/client_golang/prometheus"

// Metrics are the domain metrics of the v1 API.
var Metrics = []prometheus.Collector{
	uploadCount,
	uploadedTransactions,
	adjustmentCount,
}

var uploadCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "expense_uploads_total",
		Help: "How many CSV uploads were processed, partitioned by result.",
	},
	[]string{"result"},
)

var uploadedTransactions = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "expense_uploaded_transactions_total",
		Help: "How many transactions were stored from CSV uploads.",
	},
)

var adjustmentCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "budget_goal_adjustments_total",
		Help: "How many budget goal adjustments were requested, partitioned by result.",
	},
	[]string{"result"},
)

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
