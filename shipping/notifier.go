package shipping

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Notifier receives the shipment notice of a committed checkout.
type Notifier interface {
	Notify(notice *Notice) error
}

type NotifierFunc func(notice *Notice) error

func (f NotifierFunc) Notify(notice *Notice) error { return f(notice) }

// WriterNotifier prints the notice followed by a blank line.
type WriterNotifier struct {
	W io.Writer
}

func (n WriterNotifier) Notify(notice *Notice) error {
	_, err := fmt.Fprintf(n.W, "%s\n\n", notice.Format())
	return err
}

// LogNotifier records the notice as structured log entries.
type LogNotifier struct {
	Logger *zap.Logger
}

func (n LogNotifier) Notify(notice *Notice) error {
	for _, g := range notice.Groups {
		n.Logger.Info("shipping group",
			zap.String("product", g.Name),
			zap.Int("count", g.Count),
			zap.Int64("grams", g.Grams()))
	}
	n.Logger.Info("shipment notice",
		zap.Int("units", notice.Units),
		zap.String("total_weight_kg", notice.TotalWeightKg.String()))
	return nil
}

// MultiNotifier fans a notice out to every notifier and joins their errors.
type MultiNotifier []Notifier

func (m MultiNotifier) Notify(notice *Notice) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(notice); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
