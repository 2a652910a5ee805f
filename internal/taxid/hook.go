package taxid

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nextchile/nextchile/host"
	"github.com/nextchile/nextchile/internal/logging"
	"github.com/nextchile/nextchile/internal/metrics"
	"github.com/nextchile/nextchile/internal/rut"
)

const (
	hookValidate = "validate_tax_id"
	hookOnChange = "tax_id_on_change"
)

// Hook validates and canonicalizes the tax_id field of party documents.
type Hook struct {
	validator rut.Validator
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

func NewHook(policy rut.Policy, logger *slog.Logger, m *metrics.Metrics) Hook {
	if logger == nil {
		logger = slog.Default()
	}
	return Hook{
		validator: rut.Validator{Policy: policy},
		logger:    logger,
		metrics:   m,
	}
}

// ValidateTaxID runs before the platform persists doc. An empty or missing
// tax_id is accepted as is. An invalid one aborts the save through sink (or
// with a *ValidationError when sink is nil). A valid one is rewritten in
// XX.XXX.XXX-X form.
func (h Hook) ValidateTaxID(ctx context.Context, doctype string, doc host.TaxIDDocument, sink host.ValidationSink) error {
	log := logging.ForHook(h.logger, hookValidate, doctype)

	value, ok := doc.TaxID()
	if !ok || strings.TrimSpace(value) == "" {
		h.metrics.IncTaxIDCheck(hookValidate, "skipped")
		return nil
	}

	if !h.validator.IsValid(value) {
		h.metrics.IncTaxIDCheck(hookValidate, "invalid")
		log.Info("rejecting invalid RUT", "taxId", value)
		verr := invalidRUT(value)
		if sink == nil {
			return verr
		}
		if err := sink.Abort(ctx, verr.Title, verr.Message); err != nil {
			return err
		}
		return verr
	}

	formatted := rut.Format(value)
	doc.SetTaxID(formatted)
	h.metrics.IncTaxIDCheck(hookValidate, "valid")
	log.Debug("RUT accepted", "taxId", formatted)
	return nil
}

// OnTaxIDChange is the form-side counterpart of ValidateTaxID, run while the
// user edits the field. Invalid input is cleared and reported through
// notifier instead of aborting anything.
func (h Hook) OnTaxIDChange(ctx context.Context, doctype string, doc host.TaxIDDocument, notifier host.Notifier) error {
	log := logging.ForHook(h.logger, hookOnChange, doctype)

	value, ok := doc.TaxID()
	if !ok || strings.TrimSpace(value) == "" {
		h.metrics.IncTaxIDCheck(hookOnChange, "skipped")
		return nil
	}

	if h.validator.IsValid(value) {
		doc.SetTaxID(rut.Format(value))
		h.metrics.IncTaxIDCheck(hookOnChange, "valid")
		return nil
	}

	h.metrics.IncTaxIDCheck(hookOnChange, "invalid")
	log.Debug("clearing invalid RUT", "taxId", value)
	doc.SetTaxID("")
	if notifier == nil {
		return nil
	}
	err := notifier.Notify(ctx, host.Notification{
		Title:     "Invalid RUT",
		Message:   fmt.Sprintf("RUT %q is not valid. Enter a valid Chilean RUT (format: %s)", value, expectedFormat),
		Indicator: host.IndicatorRed,
	})
	if err != nil {
		return fmt.Errorf("notify invalid RUT: %w", err)
	}
	return nil
}
