package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/validext/pkg/validator"
)

const (
	namespace = "validext"

	OutcomeValid   = "valid"
	OutcomeInvalid = "invalid"
)

// ErrRegistration is returned when the collectors cannot be registered.
var ErrRegistration = errors.New("metrics: failed to register collectors")

// Collector counts validation outcomes and failure codes.
type Collector struct {
	validations *prometheus.CounterVec
	failures    *prometheus.CounterVec
}

// New creates the counters and registers them with reg. A nil reg uses
// prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &Collector{
		validations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "validations_total",
				Help:      "Total number of validations by validator and outcome",
			},
			[]string{"validator", "outcome"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "failures_total",
				Help:      "Total number of failure messages by validator and code",
			},
			[]string{"validator", "code"},
		),
	}

	for _, col := range []prometheus.Collector{c.validations, c.failures} {
		if err := reg.Register(col); err != nil {
			return nil, errors.Join(ErrRegistration, err)
		}
	}
	return c, nil
}

// Instrument wraps v so that every call is counted under name. The outcome
// of v is returned unchanged.
func (c *Collector) Instrument(name string, v validator.Validator) validator.Validator {
	return &instrumented{name: name, origin: v, c: c}
}

type instrumented struct {
	name   string
	origin validator.Validator
	c      *Collector
}

func (i *instrumented) Validate(value any) validator.Result {
	res := i.origin.Validate(value)
	if res.Valid() {
		i.c.validations.WithLabelValues(i.name, OutcomeValid).Inc()
		return res
	}

	i.c.validations.WithLabelValues(i.name, OutcomeInvalid).Inc()
	for _, msg := range res.Messages {
		i.c.failures.WithLabelValues(i.name, msg.Code).Inc()
	}
	return res
}
