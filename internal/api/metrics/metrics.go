// Package metrics defines and registers all custom Prometheus metrics for
// the website API. It is the single source of truth for metric names,
// labels, and help strings.
//
// All metrics self-register with the default Prometheus registry via
// promauto at package load time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "website"

// AdminSignupsTotal counts successfully created admin accounts.
var AdminSignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admin_signups_total",
		Help:      "Total number of admin accounts created.",
	},
)

// AdminLoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var AdminLoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admin_logins_total",
		Help:      "Total number of admin login attempts, by result.",
	},
	[]string{"result"},
)

// ContactSubmissionsTotal counts stored contact-form submissions.
var ContactSubmissionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_submissions_total",
		Help:      "Total number of contact-form submissions stored.",
	},
)

// ContactRateLimitedTotal counts submissions rejected by the rate limiter.
var ContactRateLimitedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_rate_limited_total",
		Help:      "Total number of contact-form submissions rejected by the rate limiter.",
	},
)

// ContactDeletesTotal counts admin deletions of contact submissions.
var ContactDeletesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_deletes_total",
		Help:      "Total number of contact submissions deleted by an admin.",
	},
)

// ContentUpdatesTotal counts content-section updates.
// Label:
//   - section: the section name being replaced (e.g. "hero")
var ContentUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "content_updates_total",
		Help:      "Total number of website content section updates, by section.",
	},
	[]string{"section"},
)
