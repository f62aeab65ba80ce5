package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// LogSnapshot writes every gathered counter as one log entry.
func LogSnapshot(logger *zap.Logger, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			fields := []zap.Field{
				zap.String("metric", mf.GetName()),
				zap.Float64("value", m.GetCounter().GetValue()),
			}
			for _, lp := range m.GetLabel() {
				fields = append(fields, zap.String(lp.GetName(), lp.GetValue()))
			}
			logger.Info("metric", fields...)
		}
	}
	return nil
}
