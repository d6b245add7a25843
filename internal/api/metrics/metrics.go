// Package metrics defines and registers all custom Prometheus metrics for the
// commerce-book API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register themselves with the default Prometheus registry at init
// time via promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "commerce"

// ProductsCreatedTotal counts successfully inserted product listings.
var ProductsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_created_total",
		Help:      "Total number of product listings created.",
	},
)

// LikesTotal counts like-array mutations.
// Label:
//   - action: "like" or "dislike"
var LikesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "likes_total",
		Help:      "Total number of like and dislike operations applied.",
	},
	[]string{"action"},
)

// CartMutationsTotal counts cart writes.
// Label:
//   - op: "add" or "remove"
var CartMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_mutations_total",
		Help:      "Total number of cart rows added and removed.",
	},
	[]string{"op"},
)

// PaymentIntentsTotal counts payment intents requested from the processor.
// Label:
//   - result: "ok" or "error"
var PaymentIntentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_intents_total",
		Help:      "Total number of payment intent creations, by result.",
	},
	[]string{"result"},
)

// PaymentAmountCents observes the requested charge amounts in minor units.
var PaymentAmountCents = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "payment_amount_cents",
		Help:      "Distribution of requested payment intent amounts in cents.",
		Buckets:   prometheus.ExponentialBuckets(100, 4, 8), // $1 .. ~$160k
	},
)
