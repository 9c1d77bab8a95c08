package testutil

import (
	"maps"
	"sync"
	"time"
)

// MetricRecord is one captured call of a MetricsCollector method.
type MetricRecord struct {
	Metric   string
	Duration time.Duration
	Value    float64
	Labels   map[string]string
}

// MetricsCollectorSpy captures all metric calls. It is safe for concurrent use.
type MetricsCollectorSpy struct {
	mu        sync.Mutex
	durations []MetricRecord
	counters  []MetricRecord
	values    []MetricRecord
}

// NewMetricsCollectorSpy creates an empty MetricsCollectorSpy.
func NewMetricsCollectorSpy() *MetricsCollectorSpy {
	return &MetricsCollectorSpy{}
}

func (s *MetricsCollectorSpy) RecordDuration(metric string, duration time.Duration, labels map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.durations = append(s.durations, MetricRecord{Metric: metric, Duration: duration, Labels: maps.Clone(labels)})
}

func (s *MetricsCollectorSpy) IncrementCounter(metric string, labels map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counters = append(s.counters, MetricRecord{Metric: metric, Labels: maps.Clone(labels)})
}

func (s *MetricsCollectorSpy) RecordValue(metric string, value float64, labels map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values = append(s.values, MetricRecord{Metric: metric, Value: value, Labels: maps.Clone(labels)})
}

// Durations returns the captured RecordDuration calls for metric.
func (s *MetricsCollectorSpy) Durations(metric string) []MetricRecord {
	return s.filter(func() []MetricRecord { return s.durations }, metric)
}

// Counters returns the captured IncrementCounter calls for metric.
func (s *MetricsCollectorSpy) Counters(metric string) []MetricRecord {
	return s.filter(func() []MetricRecord { return s.counters }, metric)
}

// Values returns the captured RecordValue calls for metric.
func (s *MetricsCollectorSpy) Values(metric string) []MetricRecord {
	return s.filter(func() []MetricRecord { return s.values }, metric)
}

func (s *MetricsCollectorSpy) filter(records func() []MetricRecord, metric string) []MetricRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	matching := make([]MetricRecord, 0)
	for _, record := range records() {
		if record.Metric == metric {
			matching = append(matching, record)
		}
	}

	return matching
}
