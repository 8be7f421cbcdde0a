package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	clockInCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "timbrapp",
		Subsystem: "attendance",
		Name:      "clock_ins_total",
		Help:      "Number of successful clock-ins.",
	})
	clockOutCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "timbrapp",
		Subsystem: "attendance",
		Name:      "clock_outs_total",
		Help:      "Number of successful clock-outs.",
	})
	rejectedClockCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "timbrapp",
		Subsystem: "attendance",
		Name:      "clock_rejections_total",
		Help:      "Clock actions rejected by the state machine, by reason.",
	}, []string{"reason"})
	authFailureCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "timbrapp",
		Subsystem: "auth",
		Name:      "failures_total",
		Help:      "Number of failed login attempts.",
	})
	exportCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "timbrapp",
		Subsystem: "reports",
		Name:      "exports_total",
		Help:      "Number of report exports generated.",
	})
)

func init() {
	prometheus.MustRegister(
		clockInCounter,
		clockOutCounter,
		rejectedClockCounter,
		authFailureCounter,
		exportCounter,
	)
}

func RecordClockIn()  { clockInCounter.Inc() }
func RecordClockOut() { clockOutCounter.Inc() }

// RecordClockRejection counts AlreadyOnDuty/NotOnDuty/InactiveEmployee
// rejections; the reason label keeps cardinality at three.
func RecordClockRejection(reason string) { rejectedClockCounter.WithLabelValues(reason).Inc() }

func RecordAuthFailure() { authFailureCounter.Inc() }
func RecordExport()      { exportCounter.Inc() }
