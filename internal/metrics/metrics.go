// Package metrics records contact book activity in a private Prometheus registry.
package metrics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

// Namespace prefixes every metric name.
const Namespace = "contactbook"

// Operation result labels.
const (
	ResultSuccess  = "success"
	ResultNotFound = "not_found"
	ResultEmpty    = "empty"
	ResultInvalid  = "invalid"
)

// Invalid input kinds.
const (
	InputNumber       = "number"
	InputText         = "text"
	InputPhone        = "phone"
	InputOperation    = "operation"
	InputSearchMethod = "search_method"
)

// Recorder collects counters and gauges for one session.
// A nil *Recorder discards everything.
type Recorder struct {
	registry     *prometheus.Registry
	operations   *prometheus.CounterVec
	invalidInput *prometheus.CounterVec
	contacts     prometheus.Gauge
}

// NewRecorder creates a Recorder backed by a fresh registry.
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Recorder{
		registry: registry,
		operations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "operations_total",
				Help:      "Total number of menu operations by outcome",
			},
			[]string{"operation", "result"},
		),
		invalidInput: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "invalid_input_total",
				Help:      "Total number of rejected user inputs",
			},
			[]string{"kind"},
		),
		contacts: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: Namespace,
				Name:      "contacts",
				Help:      "Number of contacts currently stored",
			},
		),
	}
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// Operation counts a finished menu operation.
func (r *Recorder) Operation(operation, result string) {
	if r == nil {
		return
	}
	r.operations.WithLabelValues(operation, result).Inc()
}

// InvalidInput counts a rejected input of the given kind.
func (r *Recorder) InvalidInput(kind string) {
	if r == nil {
		return
	}
	r.invalidInput.WithLabelValues(kind).Inc()
}

// SetContacts records the current store size.
func (r *Recorder) SetContacts(n int) {
	if r == nil {
		return
	}
	r.contacts.Set(float64(n))
}

// Summary gathers every series into a map keyed by
// "name{label=value,...}". Keys without labels are the bare metric name.
func (r *Recorder) Summary() (map[string]float64, error) {
	if r == nil {
		return map[string]float64{}, nil
	}

	families, err := r.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("gathering metrics: %w", err)
	}

	summary := make(map[string]float64)
	for _, family := range families {
		for _, m := range family.GetMetric() {
			summary[seriesKey(family.GetName(), m.GetLabel())] = metricValue(family.GetType(), m)
		}
	}

	return summary, nil
}

// seriesKey renders a metric name with its sorted labels.
func seriesKey(name string, labels []*dto.LabelPair) string {
	if len(labels) == 0 {
		return name
	}

	pairs := make([]string, 0, len(labels))
	for _, l := range labels {
		pairs = append(pairs, l.GetName()+"="+l.GetValue())
	}
	sort.Strings(pairs)

	return name + "{" + strings.Join(pairs, ",") + "}"
}

func metricValue(kind dto.MetricType, m *dto.Metric) float64 {
	switch kind {
	case dto.MetricType_COUNTER:
		return m.GetCounter().GetValue()
	case dto.MetricType_GAUGE:
		return m.GetGauge().GetValue()
	default:
		return m.GetUntyped().GetValue()
	}
}
