package metrics

import "github.com/prometheus/client_golang/prometheus"

// Dashboard submission outcomes.
const (
	OutcomeSuccess       = "success"
	OutcomeInvalidInput  = "invalid_input"
	OutcomeNotConfigured = "not_configured"
	OutcomeUnreachable   = "unreachable"
	OutcomeServerError   = "server_error"
	OutcomeBadResponse   = "bad_response"
	OutcomeFailed        = "failed"
)

var DashboardSubmissions = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "dashboard_submissions_total",
	Help: "Total number of dashboard form submissions by outcome",
}, []string{"outcome"})

func InitDashboard() {
	prometheus.MustRegister(DashboardSubmissions)
}
