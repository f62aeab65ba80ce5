// Command shop runs one checkout for a configured scenario and prints the
// shipment notice and receipt.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"shop/cart"
	"shop/catalog"
	"shop/checkout"
	"shop/config"
	"shop/metrics"
	"shop/receipt"
	"shop/shipping"
)

type options struct {
	scenario       string
	shippingPolicy string
	shippingRate   string
	debug          bool
}

// parseFlags writes usage and parse errors to out.
func parseFlags(args []string, out io.Writer) (options, error) {
	set := pflag.NewFlagSet("shop", pflag.ContinueOnError)
	set.SetOutput(out)

	var opts options
	set.StringVar(&opts.scenario, "scenario", os.Getenv("SHOP_SCENARIO"), "YAML scenario file; the built-in demo runs when empty")
	set.StringVar(&opts.shippingPolicy, "shipping-policy", os.Getenv("SHOP_SHIPPING_POLICY"), "Shipping fee policy: per_unit or per_kg")
	set.StringVar(&opts.shippingRate, "shipping-rate", "", "Shipping charge per unit or per kilogram")
	set.BoolVar(&opts.debug, "debug", false, "Log at debug level with a console encoder")

	if err := set.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

func newLogger(w io.Writer, debug bool) *zap.Logger {
	if debug {
		cfg := zap.NewDevelopmentEncoderConfig()
		return zap.New(zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(w), zap.DebugLevel))
	}
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return zap.New(zapcore.NewCore(zapcore.NewJSONEncoder(cfg), zapcore.AddSync(w), zap.InfoLevel))
}

func loadScenario(opts options) (*config.Scenario, error) {
	var (
		s   *config.Scenario
		err error
	)
	if opts.scenario != "" {
		s, err = config.LoadFile(opts.scenario)
	} else {
		s, err = config.Default()
	}
	if err != nil {
		return nil, err
	}
	if opts.shippingPolicy != "" {
		s.Shipping.Policy = opts.shippingPolicy
	}
	if opts.shippingRate != "" {
		if _, err := decimal.NewFromString(opts.shippingRate); err != nil {
			return nil, fmt.Errorf("invalid --shipping-rate %q: %w", opts.shippingRate, err)
		}
		s.Shipping.Rate = opts.shippingRate
	}
	return s, nil
}

// fillCart adds the scenario's cart lines. A line that cannot be added is
// reported and skipped; the checkout still runs with the rest.
func fillCart(s *config.Scenario, products *catalog.Catalog, stdout io.Writer, logger *zap.Logger) *cart.Cart {
	c := cart.New()
	for _, line := range s.Cart {
		product, err := products.Get(line.Product)
		if err == nil {
			err = c.Add(product, line.Quantity)
		}
		if err != nil {
			logger.Warn("cart line skipped",
				zap.String("product", line.Product),
				zap.Int("quantity", line.Quantity),
				zap.Error(err))
			fmt.Fprintln(stdout, receipt.FormatError(err))
			continue
		}
		logger.Debug("cart line added", zap.String("product", line.Product), zap.Int("quantity", line.Quantity))
	}
	return c
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	logger := newLogger(stderr, opts.debug)
	defer logger.Sync()

	s, err := loadScenario(opts)
	if err != nil {
		return fmt.Errorf("unable to load scenario: %w", err)
	}
	fees, err := s.FeePolicy()
	if err != nil {
		return fmt.Errorf("unable to configure shipping: %w", err)
	}
	products, err := s.BuildCatalog()
	if err != nil {
		return fmt.Errorf("unable to build catalog: %w", err)
	}
	buyer, err := s.BuildCustomer()
	if err != nil {
		return fmt.Errorf("unable to build customer: %w", err)
	}

	reg := prometheus.NewRegistry()
	recorder, err := metrics.NewCheckout(reg)
	if err != nil {
		return fmt.Errorf("unable to register metrics: %w", err)
	}

	processor := checkout.NewProcessor(
		checkout.WithFeePolicy(fees),
		checkout.WithNotifier(shipping.MultiNotifier{
			shipping.WriterNotifier{W: stdout},
			shipping.LogNotifier{Logger: logger},
		}),
		checkout.WithRecorder(recorder),
		checkout.WithLogger(logger),
	)

	logger.Info("checkout starting",
		zap.String("customer", buyer.Name),
		zap.String("balance", buyer.Balance.String()),
		zap.Int("products", products.Len()),
		zap.String("shipping_policy", fees.Name()))

	r, err := processor.Checkout(buyer, fillCart(s, products, stdout, logger))
	if err != nil {
		fmt.Fprintln(stdout, receipt.FormatError(err))
	} else {
		fmt.Fprintln(stdout, r.Format())
	}

	if err := metrics.LogSnapshot(logger, reg); err != nil {
		logger.Warn("unable to gather metrics", zap.Error(err))
	}
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "shop: %v\n", err)
		os.Exit(1)
	}
}
