package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	// Accounts
	RegistrationsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "registrations_total",
			Help: "Total successful registrations",
		},
	)
	LoginsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logins_total",
			Help: "Total login attempts",
		},
		[]string{"outcome"}, // success|failure
	)
	RoleElevationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "role_elevations_total",
			Help: "Total role elevations",
		},
		[]string{"role"}, // Developer|Publisher
	)

	// OTP mail
	OTPEmailsSent = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "otp_emails_sent_total",
			Help: "Total OTP emails handed to the transport",
		},
	)
	OTPEmailsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "otp_emails_failed_total",
			Help: "Total OTP emails the transport rejected",
		},
	)
)

// /metrics endpoint handler
var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(RegistrationsTotal)
	prometheus.MustRegister(LoginsTotal)
	prometheus.MustRegister(RoleElevationsTotal)
	prometheus.MustRegister(OTPEmailsSent)
	prometheus.MustRegister(OTPEmailsFailed)
}
