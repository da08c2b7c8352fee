package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ListingsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "foodshare_listings_created_total",
		Help: "Total number of food listings created.",
	})

	ListingsReservedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "foodshare_listings_reserved_total",
		Help: "Total number of food listings reserved.",
	})

	ListingsCollectedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "foodshare_listings_collected_total",
		Help: "Total number of food listings collected.",
	})

	ListingsExpiredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "foodshare_listings_expired_total",
		Help: "Total number of listings moved to Expired by the expiry scanner.",
	})

	NotificationsEmittedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "foodshare_notifications_emitted_total",
		Help: "Total number of notifications emitted, by type.",
	},
		[]string{"type"},
	)

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "foodshare_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	ListingStoreItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "foodshare_listing_store_items",
		Help: "Current number of listings held in the in-memory store.",
	})
)
