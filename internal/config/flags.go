package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds a host and port. It implements flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses args on a private flag set, so tests and both binaries
// can call it repeatedly.
//
// Flags:
//
//	-a                      server listen address host:port
//	-server                 client: server address host:port
//	-c / -config            JSON config file
//	-secret-key             application secret
//	-token-issuer           download token issuer
//	-token-duration         download token lifetime (e.g. 1h)
//	-log-level              zerolog level
//	-request-timeout        server request timeout
//	-public-url             externally reachable base URL
//	-preview-max-size       preview size cap in pixels
//	-stripe-key             Stripe secret key
//	-stripe-webhook-secret  Stripe webhook signing secret
//	-price-digital          Stripe price id of the digital product
//	-price-print            Stripe price id of the print product
//	-success-url            checkout success redirect
//	-cancel-url             checkout cancel redirect
//	-d                      webhook ledger Postgres DSN
//	-history-db             client history SQLite DSN
//	-history-size           history capacity
//	-adapter-timeout        client request timeout
//	-poll-interval          checkout poll interval
//	-checkout-timeout       checkout wait limit
//	-ledger-retention       webhook ledger retention
//	-prune-interval         ledger prune interval
//	-o                      download directory
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("qr-studio", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress, adapterAddress NetAddress
	cfg := &StructuredConfig{}

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&adapterAddress, "server", "Server address host:port")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	fs.StringVar(&cfg.App.SecretKey, "secret-key", "", "Application secret key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Download token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Download token duration (e.g., 1h, 30m)")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")

	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.Server.PublicURL, "public-url", "", "Public base URL")
	fs.IntVar(&cfg.Server.PreviewMaxSize, "preview-max-size", 0, "Preview size cap in pixels")

	fs.StringVar(&cfg.Payment.StripeSecretKey, "stripe-key", "", "Stripe secret key")
	fs.StringVar(&cfg.Payment.WebhookSecret, "stripe-webhook-secret", "", "Stripe webhook secret")
	fs.StringVar(&cfg.Payment.DigitalPriceID, "price-digital", "", "Stripe price id of the digital product")
	fs.StringVar(&cfg.Payment.PrintPriceID, "price-print", "", "Stripe price id of the print product")
	fs.StringVar(&cfg.Payment.SuccessURL, "success-url", "", "Checkout success URL")
	fs.StringVar(&cfg.Payment.CancelURL, "cancel-url", "", "Checkout cancel URL")

	fs.StringVar(&cfg.Storage.Ledger.DSN, "d", "", "Webhook ledger DSN")
	fs.StringVar(&cfg.Storage.History.DSN, "history-db", "", "History database DSN")
	fs.IntVar(&cfg.History.Capacity, "history-size", 0, "History capacity")

	fs.DurationVar(&cfg.Adapter.RequestTimeout, "adapter-timeout", 0, "Client request timeout")
	fs.DurationVar(&cfg.Workers.PollInterval, "poll-interval", 0, "Checkout poll interval")
	fs.DurationVar(&cfg.Workers.CheckoutTimeout, "checkout-timeout", 0, "Checkout wait limit")
	fs.DurationVar(&cfg.Workers.LedgerRetention, "ledger-retention", 0, "Webhook ledger retention")
	fs.DurationVar(&cfg.Workers.PruneInterval, "prune-interval", 0, "Ledger prune interval")
	fs.StringVar(&cfg.Export.DownloadDir, "o", "", "Download directory")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Adapter.HTTPAddress = adapterAddress.String()

	return cfg, nil
}

// String returns host:port, or "" when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The host must be "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(strings.TrimSpace(s))
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be in 1..65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

var _ flag.Value = (*NetAddress)(nil)
