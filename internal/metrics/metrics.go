// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PriceCalculationsTotal counts pricing runs by recipe source.
	PriceCalculationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "brewstation_price_calculations_total",
		Help: "Number of price calculations performed, by recipe source.",
	}, []string{"source"})

	// BrewfatherSyncsTotal counts Brewfather sync runs by outcome.
	BrewfatherSyncsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "brewstation_brewfather_syncs_total",
		Help: "Number of Brewfather sync runs, by status.",
	}, []string{"status"})

	// CatalogExportsTotal counts spreadsheet exports and imports.
	CatalogExportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "brewstation_catalog_transfers_total",
		Help: "Number of catalog spreadsheet exports and imports.",
	}, []string{"direction"})
)
