package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ordersIngested = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "kafka_consumer",
			Name:      "orders_ingested_total",
			Help:      "Total number of successfully ingested orders",
		},
	)

	ordersFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "kafka_consumer",
			Name:      "orders_failed_total",
			Help:      "Total number of failed order ingestion attempts",
		},
	)

	ordersDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "kafka_consumer",
			Name:      "orders_dlq_total",
			Help:      "Total number of orders written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)
)

var (
	transitionsApplied = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "lifecycle",
			Name:      "transitions_applied_total",
			Help:      "Total number of applied status transitions by target status",
		},
		[]string{"target"},
	)

	transitionsRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "lifecycle",
			Name:      "transitions_rejected_total",
			Help:      "Total number of rejected status transitions by rejection reason",
		},
		[]string{"reason"},
	)

	cancellationRequests = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "lifecycle",
			Name:      "cancellation_requests_total",
			Help:      "Total number of accepted customer cancellation requests",
		},
	)

	cancellationRequestsRejected = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "lifecycle",
			Name:      "cancellation_requests_rejected_total",
			Help:      "Total number of rejected customer cancellation requests",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		ordersIngested,
		ordersFailed,
		ordersDLQ,
		commitErrors,

		transitionsApplied,
		transitionsRejected,
		cancellationRequests,
		cancellationRequestsRejected,
	)
}
