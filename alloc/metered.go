// SPDX-License-Identifier: MIT
//
// File: metered.go
// Role: Prometheus decorator. Counts every step of the wrapped strategy and
// tracks live bytes.

package alloc

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirkon/errors"
)

const (
	metricsSubsystem = "alloc"

	stepAllocate  = "allocate"
	stepConstruct = "construct"
)

type meters struct {
	allocations   prometheus.Counter
	deallocations prometheus.Counter
	constructs    prometheus.Counter
	destroys      prometheus.Counter
	failures      *prometheus.CounterVec
	liveBytes     prometheus.Gauge
}

func newMeters(namespace string, reg prometheus.Registerer) (*meters, error) {
	m := &meters{
		allocations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: metricsSubsystem,
			Name:      "allocations_total",
			Help:      "number of granted allocations",
		}),
		deallocations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: metricsSubsystem,
			Name:      "deallocations_total",
			Help:      "number of released allocations",
		}),
		constructs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: metricsSubsystem,
			Name:      "constructs_total",
			Help:      "number of successful element constructions",
		}),
		destroys: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: metricsSubsystem,
			Name:      "destroys_total",
			Help:      "number of element destructions",
		}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: metricsSubsystem,
			Name:      "failures_total",
			Help:      "number of failed allocator steps",
		}, []string{"step"}),
		liveBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: metricsSubsystem,
			Name:      "live_bytes",
			Help:      "bytes allocated and not yet released",
		}),
	}

	collectors := []prometheus.Collector{
		m.allocations,
		m.deallocations,
		m.constructs,
		m.destroys,
		m.failures,
		m.liveBytes,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrap(err, "register allocator metrics").Str("namespace", namespace)
		}
	}

	return m, nil
}

// Metered publishes the traffic of a wrapped strategy as Prometheus metrics.
type Metered struct {
	base   Allocator
	meters *meters
}

// NewMetered wraps base and registers its collectors on reg under namespace.
func NewMetered(base Allocator, namespace string, reg prometheus.Registerer) (*Metered, error) {
	if base == nil {
		panic(panicNilBase)
	}

	m, err := newMeters(namespace, reg)
	if err != nil {
		return nil, err
	}

	return &Metered{base: base, meters: m}, nil
}

// Allocate forwards and counts the outcome.
func (m *Metered) Allocate(n int, size uintptr) (Block, error) {
	b, err := m.base.Allocate(n, size)
	if err != nil {
		m.meters.failures.WithLabelValues(stepAllocate).Inc()
		return Block{}, err
	}
	m.meters.allocations.Inc()
	m.meters.liveBytes.Add(float64(b.Bytes()))

	return b, nil
}

// Deallocate forwards and counts.
func (m *Metered) Deallocate(b Block) {
	m.base.Deallocate(b)
	m.meters.deallocations.Inc()
	m.meters.liveBytes.Sub(float64(b.Bytes()))
}

// Construct forwards and counts the outcome.
func (m *Metered) Construct(b Block, ctor func() error) error {
	if err := m.base.Construct(b, ctor); err != nil {
		m.meters.failures.WithLabelValues(stepConstruct).Inc()
		return err
	}
	m.meters.constructs.Inc()

	return nil
}

// Destroy forwards and counts.
func (m *Metered) Destroy(b Block, dtor func()) {
	m.base.Destroy(b, dtor)
	m.meters.destroys.Inc()
}

// Unwrap to satisfy Unwrapper.
func (m *Metered) Unwrap() Allocator { return m.base }

// SelectOnCopy to satisfy CopySelector. Copies share the collectors.
func (m *Metered) SelectOnCopy() Allocator {
	sel, fresh := reselect(m.base)
	if !fresh {
		return m
	}

	return &Metered{base: sel, meters: m.meters}
}

// PropagateOnCopyAssignment to satisfy Propagator.
func (m *Metered) PropagateOnCopyAssignment() bool { return PropagatesOnCopyAssignment(m.base) }

// Equal to satisfy Equaler.
func (m *Metered) Equal(other Allocator) bool { return Equal(m.base, Base(other)) }
