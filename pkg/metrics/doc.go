// Package metrics exposes Prometheus counters for validators.
//
// A Collector registers two counter vectors:
//
//	validext_validations_total{validator, outcome}   outcome is "valid" or "invalid"
//	validext_failures_total{validator, code}         one increment per failure message
//
// Wrap any validator with Collector.Instrument to count its calls:
//
//	col, err := metrics.New(prometheus.NewRegistry())
//	if err != nil {
//	    return err
//	}
//	adult := col.Instrument("age", ageValidator)
package metrics
