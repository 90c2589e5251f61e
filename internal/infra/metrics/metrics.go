// Package metrics registers the Prometheus collectors of the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "product_interest"

// Bulk action results.
const (
	ResultSuccess  = "success"
	ResultBadNonce = "bad_nonce"
	ResultNoIDs    = "no_ids"
)

// Cache namespaces.
const (
	CacheCustomer = "customer"
	CacheProduct  = "product"
)

var BulkActions = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "admin",
	Name:      "bulk_actions_total",
	Help:      "Bulk unsubscribe submissions by result",
}, []string{"result"})

var RelationshipsDeleted = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "relationships",
	Name:      "deleted_total",
	Help:      "Relationships removed by bulk unsubscribe",
})

var RelationshipDeleteFailures = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "relationships",
	Name:      "delete_failures_total",
	Help:      "Relationship deletions that failed in storage",
})

var RelationshipsCreated = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "relationships",
	Name:      "created_total",
	Help:      "Relationships created from completed orders",
})

var CacheInvalidations = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "cache",
	Name:      "invalidations_total",
	Help:      "Transient cache keys invalidated by namespace",
}, []string{"namespace"})

var CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "cache",
	Name:      "lookups_total",
	Help:      "Read-through cache lookups by namespace and result",
}, []string{"namespace", "result"})

// HTTPRequestDuration observes handled requests by server and route template.
var HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: namespace,
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "Latency of handled HTTP requests",
	Buckets:   prometheus.DefBuckets,
}, []string{"server", "method", "route", "status"})
