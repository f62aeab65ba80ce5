package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRun_DefaultScenario(t *testing.T) {
	var stdout, stderr bytes.Buffer

	require.NoError(t, run(nil, &stdout, &stderr))

	want := "** Shipment notice **\n" +
		"2x Cheese 400g\n" +
		"1x Biscuits 700g\n" +
		"Total package weight 1.1kg\n" +
		"\n" +
		"** Checkout receipt **\n" +
		"2x Cheese 200\n" +
		"1x Biscuits 150\n" +
		"----------------------\n" +
		"Subtotal 350\n" +
		"Shipping 30\n" +
		"Amount 380\n"
	assert.Equal(t, want, stdout.String())
	assert.Contains(t, stderr.String(), `"msg":"checkout completed"`)
	assert.Contains(t, stderr.String(), `"metric":"shop_checkouts_total"`)
}

func TestRun_PerKilogramOverride(t *testing.T) {
	var stdout, stderr bytes.Buffer

	require.NoError(t, run([]string{"--shipping-policy", "per_kg"}, &stdout, &stderr))

	assert.Contains(t, stdout.String(), "Shipping 11\n")
	assert.Contains(t, stdout.String(), "Amount 361\n")
}

func TestRun_CheckoutErrorIsPrinted(t *testing.T) {
	path := writeScenario(t, `
products:
  - {name: Milk, price: "5", quantity: 3, expired: true}
customer: {name: Sam, balance: "100"}
cart:
  - {product: Milk, quantity: 1}
`)
	var stdout, stderr bytes.Buffer

	require.NoError(t, run([]string{"--scenario", path}, &stdout, &stderr))

	assert.Equal(t, "Error: Product Milk is expired\n", stdout.String())
}

func TestRun_UnaddableLinesAreSkipped(t *testing.T) {
	path := writeScenario(t, `
products:
  - {name: TV, price: "500", quantity: 1, requires_shipping: true, weight_kg: 8}
  - {name: Scratch card, price: "50", quantity: 10}
customer: {name: Sam, balance: "1000"}
cart:
  - {product: TV, quantity: 2}
  - {product: Radio, quantity: 1}
  - {product: Scratch card, quantity: 2}
`)
	var stdout, stderr bytes.Buffer

	require.NoError(t, run([]string{"--scenario", path}, &stdout, &stderr))

	out := stdout.String()
	assert.Contains(t, out, "Error: Quantity exceeds available stock")
	assert.Contains(t, out, "Error: Product Radio not found")
	assert.Contains(t, out, "2x Scratch card 100\n")
	assert.Contains(t, out, "Amount 100\n")
	assert.NotContains(t, out, "Shipment notice")
}

func TestRun_EmptyCart(t *testing.T) {
	path := writeScenario(t, "customer: {name: Sam, balance: \"10\"}\n")
	var stdout, stderr bytes.Buffer

	require.NoError(t, run([]string{"--scenario", path}, &stdout, &stderr))

	assert.Equal(t, "Error: Cart is empty\n", stdout.String())
}

func TestRun_ConfigurationErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run([]string{"--scenario", filepath.Join(t.TempDir(), "missing.yaml")}, &stdout, &stderr)
	assert.ErrorContains(t, err, "unable to load scenario")

	err = run([]string{"--shipping-rate", "free"}, &stdout, &stderr)
	assert.ErrorContains(t, err, "invalid --shipping-rate")

	err = run([]string{"--shipping-policy", "drone"}, &stdout, &stderr)
	assert.ErrorContains(t, err, "unable to configure shipping")

	err = run([]string{"--no-such-flag"}, &stdout, &stderr)
	assert.Error(t, err)
}

func TestRun_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.NoError(t, run([]string{"--help"}, &stdout, &stderr))

	assert.Empty(t, stdout.String())
	usage := stderr.String()
	for _, flag := range []string{"--scenario", "--shipping-policy", "--shipping-rate", "--debug"} {
		assert.Contains(t, usage, flag)
	}
}

func TestParseFlags_EnvFallback(t *testing.T) {
	t.Setenv("SHOP_SHIPPING_POLICY", "per_kg")
	t.Setenv("SHOP_SCENARIO", "/tmp/x.yaml")

	opts, err := parseFlags(nil, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "per_kg", opts.shippingPolicy)
	assert.Equal(t, "/tmp/x.yaml", opts.scenario)
}
