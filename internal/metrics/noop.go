package metrics

import "time"

type NoopCollector struct{}

func NewNoopCollector() *NoopCollector {
	return &NoopCollector{}
}

func (nc *NoopCollector) FetchFinished(outcome string, duration time.Duration) {}
func (nc *NoopCollector) DeliveryApplied()                                      {}
func (nc *NoopCollector) DeliveryDropped(reason string)                         {}
func (nc *NoopCollector) SubscriptionReleased()                                 {}
