package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RepairsTotal counts custom work name repairs by mode (read, bulk) and result.
	RepairsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "estimator_custom_name_repairs_total",
		Help: "Projects whose unnamed custom work items were repaired, by mode and result",
	}, []string{"mode", "result"})

	// ValidationFailuresTotal counts rejected writes by failure reason.
	ValidationFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "estimator_validation_failures_total",
		Help: "Project writes rejected by validation, by reason",
	}, []string{"reason"})

	// UnitWarningsTotal counts surfaces skipped because their measurement type was unknown.
	UnitWarningsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "estimator_unit_warnings_total",
		Help: "Surfaces that contributed no units because of an unknown measurement type",
	})
)

const (
	RepairModeRead = "read"
	RepairModeBulk = "bulk"

	ResultSuccess = "success"
	ResultFailure = "failure"
)
