// Package nextchile provides Chilean localisation hooks for a document
// platform: RUT validation and formatting on party documents, and opt-in
// per-row ceiling rounding of invoice taxes.
//
// The platform calls Dispatch for every document event; documents expose
// their data through the interfaces in package host.
//
//	app, err := nextchile.NewFromEnv(slog.Default(), prometheus.DefaultRegisterer)
//	if err != nil {
//	    return err
//	}
//	err = app.Dispatch(ctx, nextchile.DoctypeCustomer, nextchile.EventValidate, doc, ports)
package nextchile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/nextchile/nextchile/host"
	"github.com/nextchile/nextchile/internal/config"
	"github.com/nextchile/nextchile/internal/customfield"
	"github.com/nextchile/nextchile/internal/logging"
	"github.com/nextchile/nextchile/internal/metrics"
	"github.com/nextchile/nextchile/internal/rut"
	"github.com/nextchile/nextchile/internal/taxid"
	"github.com/nextchile/nextchile/internal/taxround"
)

// Config is the module configuration, see LoadConfig.
type Config = config.Config

// ValidationError is returned when a save is aborted for an invalid RUT.
type ValidationError = taxid.ValidationError

const (
	DoctypeCustomer        = "Customer"
	DoctypeSupplier        = "Supplier"
	DoctypeCompany         = "Company"
	DoctypeSalesInvoice    = "Sales Invoice"
	DoctypePurchaseInvoice = "Purchase Invoice"

	// EventValidate fires before a document is saved.
	EventValidate = "validate"
	// EventTaxIDChange fires while the user edits tax_id on a form.
	EventTaxIDChange = "tax_id"
)

// Ports are the per-call platform capabilities a hook may use.
type Ports struct {
	Sink     host.ValidationSink
	Notifier host.Notifier
}

// HookFunc handles one document event. doc is the platform's document handle.
type HookFunc func(ctx context.Context, doctype string, doc any, p Ports) error

// App holds the configured hooks.
type App struct {
	cfg     Config
	logger  *slog.Logger
	taxID   taxid.Hook
	rounder taxround.Rounder
	events  map[string]map[string]HookFunc
}

// LoadConfig reads configuration from an optional .env file and the environment.
func LoadConfig() (Config, error) {
	return config.LoadConfig()
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return config.Default()
}

// NewFromEnv is New with LoadConfig.
func NewFromEnv(logger *slog.Logger, reg prometheus.Registerer) (*App, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return New(cfg, logger, reg), nil
}

// New wires the hooks. A nil logger logs through a handler built from cfg;
// a nil reg disables metrics.
func New(cfg Config, logger *slog.Logger, reg prometheus.Registerer) *App {
	if logger == nil {
		logger = logging.New(cfg)
	}
	var m *metrics.Metrics
	if reg != nil {
		m = metrics.New(reg, cfg.MetricsNamespace)
	}
	a := &App{
		cfg:     cfg,
		logger:  logger,
		taxID:   taxid.NewHook(cfg.RUTPolicy(), logger, m),
		rounder: taxround.NewRounder(taxround.Config{Enabled: cfg.RoundingEnabled, Notify: cfg.RoundingNotify}, logger, m),
	}
	a.events = a.docEvents()
	return a
}

func (a *App) docEvents() map[string]map[string]HookFunc {
	party := map[string]HookFunc{
		EventValidate:    a.validateTaxID,
		EventTaxIDChange: a.onTaxIDChange,
	}
	invoice := map[string]HookFunc{
		EventValidate: a.applyRowLevelRounding,
	}
	return map[string]map[string]HookFunc{
		DoctypeCustomer:        party,
		DoctypeSupplier:        party,
		DoctypeCompany:         party,
		DoctypeSalesInvoice:    invoice,
		DoctypePurchaseInvoice: invoice,
	}
}

// Config returns the configuration the App was built with.
func (a *App) Config() Config {
	return a.cfg
}

// Hook returns the handler bound to doctype and event, if any.
func (a *App) Hook(doctype, event string) (HookFunc, bool) {
	fn, ok := a.events[doctype][event]
	return fn, ok
}

// Dispatch runs the hook bound to doctype and event. Unbound pairs are a
// no-op. The returned error, if any, must abort the platform operation.
func (a *App) Dispatch(ctx context.Context, doctype, event string, doc any, p Ports) error {
	fn, ok := a.Hook(doctype, event)
	if !ok {
		return nil
	}
	return fn(ctx, doctype, doc, p)
}

// AfterInstall provisions the custom fields the rounding hook reads.
func (a *App) AfterInstall(ctx context.Context, installer host.SchemaInstaller, tx host.Transaction, notifier host.Notifier) error {
	return customfield.Install(ctx, installer, tx, notifier, a.logger)
}

func (a *App) validateTaxID(ctx context.Context, doctype string, doc any, p Ports) error {
	d, ok := doc.(host.TaxIDDocument)
	if !ok {
		a.logger.Debug("document has no tax_id field", "doctype", doctype)
		return nil
	}
	return a.taxID.ValidateTaxID(ctx, doctype, d, p.Sink)
}

func (a *App) onTaxIDChange(ctx context.Context, doctype string, doc any, p Ports) error {
	d, ok := doc.(host.TaxIDDocument)
	if !ok {
		return nil
	}
	return a.taxID.OnTaxIDChange(ctx, doctype, d, p.Notifier)
}

func (a *App) applyRowLevelRounding(ctx context.Context, doctype string, doc any, p Ports) error {
	d, ok := doc.(host.TaxDocument)
	if !ok {
		a.logger.Debug("document has no taxes table", "doctype", doctype)
		return nil
	}
	return a.rounder.Apply(ctx, doctype, d, p.Notifier)
}

// IsValidRUT reports whether raw is a valid RUT under the default policy.
func IsValidRUT(raw string) bool {
	return rut.IsValid(raw)
}

// FormatRUT renders raw as XX.XXX.XXX-X, or returns it unchanged when it
// does not look like a RUT.
func FormatRUT(raw string) string {
	return rut.Format(raw)
}
