package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout. Durations accept Go
// duration strings ("30s") or nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		SecretKey     string   `json:"secret_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		Version       string   `json:"version"`
		LogLevel      string   `json:"log_level"`
	} `json:"app"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		PublicURL      string   `json:"public_url"`
		PreviewMaxSize int      `json:"preview_max_size"`
	} `json:"server"`

	Payment struct {
		StripeSecretKey string `json:"stripe_secret_key"`
		WebhookSecret   string `json:"webhook_secret"`
		DigitalPriceID  string `json:"digital_price_id"`
		PrintPriceID    string `json:"print_price_id"`
		SuccessURL      string `json:"success_url"`
		CancelURL       string `json:"cancel_url"`
	} `json:"payment"`

	Storage struct {
		Ledger struct {
			DSN string `json:"dsn"`
		} `json:"ledger"`
		History struct {
			DSN string `json:"dsn"`
		} `json:"history"`
	} `json:"storage"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter"`

	History struct {
		Capacity int `json:"capacity"`
	} `json:"history"`

	Workers struct {
		PollInterval    Duration `json:"poll_interval"`
		CheckoutTimeout Duration `json:"checkout_timeout"`
		LedgerRetention Duration `json:"ledger_retention"`
		PruneInterval   Duration `json:"prune_interval"`
	} `json:"workers"`

	Export struct {
		DownloadDir string `json:"download_dir"`
	} `json:"export"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		App: App{
			SecretKey:     j.App.SecretKey,
			TokenIssuer:   j.App.TokenIssuer,
			TokenDuration: time.Duration(j.App.TokenDuration),
			Version:       j.App.Version,
			LogLevel:      j.App.LogLevel,
		},
		Server: Server{
			HTTPAddress:    j.Server.HTTPAddress,
			RequestTimeout: time.Duration(j.Server.RequestTimeout),
			PublicURL:      j.Server.PublicURL,
			PreviewMaxSize: j.Server.PreviewMaxSize,
		},
		Payment: Payment{
			StripeSecretKey: j.Payment.StripeSecretKey,
			WebhookSecret:   j.Payment.WebhookSecret,
			DigitalPriceID:  j.Payment.DigitalPriceID,
			PrintPriceID:    j.Payment.PrintPriceID,
			SuccessURL:      j.Payment.SuccessURL,
			CancelURL:       j.Payment.CancelURL,
		},
		Storage: Storage{
			Ledger:  DB{DSN: j.Storage.Ledger.DSN},
			History: DB{DSN: j.Storage.History.DSN},
		},
		Adapter: Adapter{
			HTTPAddress:    j.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(j.Adapter.RequestTimeout),
		},
		History: History{Capacity: j.History.Capacity},
		Workers: Workers{
			PollInterval:    time.Duration(j.Workers.PollInterval),
			CheckoutTimeout: time.Duration(j.Workers.CheckoutTimeout),
			LedgerRetention: time.Duration(j.Workers.LedgerRetention),
			PruneInterval:   time.Duration(j.Workers.PruneInterval),
		},
		Export: Export{DownloadDir: j.Export.DownloadDir},
	}, nil
}

// Duration is a time.Duration that unmarshals from "1h"-style strings.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
