package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts hook outcomes. A nil *Metrics is valid and records nothing.
type Metrics struct {
	// RUT checks by result: "valid", "invalid", "skipped"
	TaxIDChecks *prometheus.CounterVec

	// Rows whose amount was raised by rounding
	RoundedRows prometheus.Counter

	// Documents recalculated after rounding
	Recalculations prometheus.Counter
}

// New registers the module metrics on reg under namespace.
func New(reg prometheus.Registerer, namespace string) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		TaxIDChecks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tax_id_checks_total",
			Help:      "RUT validations performed by the tax_id hooks, by result",
		}, []string{"hook", "result"}),

		RoundedRows: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tax_rows_rounded_total",
			Help:      "Tax rows whose amount was rounded up",
		}),

		Recalculations: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tax_recalculations_total",
			Help:      "Documents recalculated after row-level rounding",
		}),
	}
}

func (m *Metrics) IncTaxIDCheck(hook, result string) {
	if m != nil {
		m.TaxIDChecks.WithLabelValues(hook, result).Inc()
	}
}

func (m *Metrics) AddRoundedRows(n int) {
	if m != nil {
		m.RoundedRows.Add(float64(n))
	}
}

func (m *Metrics) IncRecalculation() {
	if m != nil {
		m.Recalculations.Inc()
	}
}
