package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	candidatesDiscovered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "outreach_candidates_discovered_total",
			Help: "Total number of candidates that survived the discovery filter",
		},
	)

	emailsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outreach_emails_total",
			Help: "Total number of outbound emails by outcome",
		},
		[]string{"outcome"}, // sent | failed | no_address
	)

	repliesProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outreach_replies_total",
			Help: "Total number of inbound replies by outcome",
		},
		[]string{"outcome"}, // matched | dropped
	)

	leadsPromoted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outreach_leads_promoted_total",
			Help: "Total number of records promoted to lead",
		},
		[]string{"classification"},
	)

	integrationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outreach_integration_errors_total",
			Help: "Total number of external integration errors",
		},
		[]string{"service"},
	)
)

func RecordCandidates(n int) {
	candidatesDiscovered.Add(float64(n))
}

func RecordEmail(outcome string) {
	emailsSent.WithLabelValues(outcome).Inc()
}

func RecordReply(outcome string) {
	repliesProcessed.WithLabelValues(outcome).Inc()
}

func RecordLead(classification string) {
	leadsPromoted.WithLabelValues(classification).Inc()
}

func RecordIntegrationError(service string) {
	integrationErrors.WithLabelValues(service).Inc()
}
