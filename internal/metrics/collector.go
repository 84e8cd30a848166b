package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type Collector struct {
	fetches           *prometheus.CounterVec
	fetchDuration     prometheus.Histogram
	deliveries        prometheus.Counter
	droppedDeliveries *prometheus.CounterVec
	releases          prometheus.Counter
}

// NewCollector creates the collectors and registers them with reg.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:      "fetches_total",
			Namespace: namespacePokedex,
			Subsystem: subsystemPokeAPI,
			Help:      "number of listing requests by outcome",
		}, []string{LabelOutcome}),
		fetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:      "fetch_duration_seconds",
			Namespace: namespacePokedex,
			Subsystem: subsystemPokeAPI,
			Help:      "duration of listing requests",
			Buckets:   prometheus.DefBuckets,
		}),
		deliveries: prometheus.NewCounter(prometheus.CounterOpts{
			Name:      "deliveries_total",
			Namespace: namespacePokedex,
			Subsystem: subsystemComponent,
			Help:      "number of listings applied to a component",
		}),
		droppedDeliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:      "dropped_deliveries_total",
			Namespace: namespacePokedex,
			Subsystem: subsystemComponent,
			Help:      "number of results that did not reach a component, by reason",
		}, []string{LabelReason}),
		releases: prometheus.NewCounter(prometheus.CounterOpts{
			Name:      "subscription_releases_total",
			Namespace: namespacePokedex,
			Subsystem: subsystemComponent,
			Help:      "number of subscription handles released",
		}),
	}

	for _, col := range []prometheus.Collector{c.fetches, c.fetchDuration, c.deliveries, c.droppedDeliveries, c.releases} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Collector) FetchFinished(outcome string, duration time.Duration) {
	c.fetches.With(prometheus.Labels{LabelOutcome: outcome}).Inc()
	c.fetchDuration.Observe(duration.Seconds())
}

func (c *Collector) DeliveryApplied() {
	c.deliveries.Inc()
}

func (c *Collector) DeliveryDropped(reason string) {
	c.droppedDeliveries.With(prometheus.Labels{LabelReason: reason}).Inc()
}

func (c *Collector) SubscriptionReleased() {
	c.releases.Inc()
}
