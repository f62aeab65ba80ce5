// Package metrics counts checkout outcomes with Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	ResultCompleted = "completed"
)

// Checkout implements the checkout package's Recorder.
type Checkout struct {
	Attempts     *prometheus.CounterVec
	Amount       prometheus.Counter
	ShippedUnits prometheus.Counter
}

// NewCheckout builds the collectors and registers them on reg.
func NewCheckout(reg prometheus.Registerer) (*Checkout, error) {
	m := &Checkout{
		Attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shop",
			Name:      "checkouts_total",
			Help:      "Checkout attempts by result (completed or rejection reason).",
		}, []string{"result"}),
		Amount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "shop",
			Name:      "checkout_amount_total",
			Help:      "Sum of amounts charged by completed checkouts.",
		}),
		ShippedUnits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "shop",
			Name:      "shipped_units_total",
			Help:      "Units handed to shipping by completed checkouts.",
		}),
	}

	for _, c := range []prometheus.Collector{m.Attempts, m.Amount, m.ShippedUnits} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Checkout) Completed(amount float64, shippedUnits int) {
	m.Attempts.WithLabelValues(ResultCompleted).Inc()
	m.Amount.Add(amount)
	m.ShippedUnits.Add(float64(shippedUnits))
}

func (m *Checkout) Rejected(reason string) {
	m.Attempts.WithLabelValues(reason).Inc()
}
