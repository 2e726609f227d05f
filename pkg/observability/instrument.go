package observability

import (
	"time"

	"github.com/aretw0/typedef/pkg/schema"
)

// Instrumented is a definition whose Valid and Cast calls are recorded.
type Instrumented struct {
	schema.Definition
	metrics *Metrics
}

// Instrument wraps def so that its calls are recorded in m.
// Wrapping an instrumented definition again returns it unchanged.
func Instrument(def schema.Definition, m *Metrics) schema.Definition {
	if i, ok := def.(*Instrumented); ok && i.metrics == m {
		return i
	}
	return &Instrumented{Definition: def, metrics: m}
}

func (i *Instrumented) Valid(input any) bool {
	ok := i.Definition.Valid(input)
	result := ResultInvalid
	if ok {
		result = ResultValid
	}
	i.metrics.Validations.WithLabelValues(i.String(), result).Inc()
	return ok
}

func (i *Instrumented) Cast(input any) (any, error) {
	start := time.Now()
	out, err := i.Definition.Cast(input)
	i.metrics.CastDuration.WithLabelValues(i.String()).Observe(time.Since(start).Seconds())

	result := ResultOK
	if err != nil {
		result = ResultError
	}
	i.metrics.Casts.WithLabelValues(i.String(), result).Inc()
	return out, err
}

func (i *Instrumented) Nilable() schema.Definition {
	if i.IsNilable() {
		return i
	}
	return Instrument(i.Definition.Nilable(), i.metrics)
}

func (i *Instrumented) Refine(name string, configure func(*schema.Rules)) schema.Definition {
	return Instrument(i.Definition.Refine(name, configure), i.metrics)
}

// Unwrap returns the uninstrumented definition.
func (i *Instrumented) Unwrap() schema.Definition { return i.Definition }
