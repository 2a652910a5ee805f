package customfield

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nextchile/nextchile/host"
)

const (
	RoundUpFieldname = "custom_round_up_tax"

	SalesTaxesDoctype    = "Sales Taxes and Charges"
	PurchaseTaxesDoctype = "Purchase Taxes and Charges"
)

func roundUpField() host.CustomField {
	return host.CustomField{
		Fieldname:   RoundUpFieldname,
		Label:       "Redondear Impuesto",
		Fieldtype:   "Check",
		InsertAfter: "rate",
		Description: "Marcar para redondear hacia arriba este impuesto al número entero más cercano",
		Default:     0,
		InListView:  true,
		Columns:     1,
	}
}

// TaxRowFields returns the round-up checkbox for both tax child tables.
func TaxRowFields() map[string][]host.CustomField {
	return map[string][]host.CustomField{
		SalesTaxesDoctype:    {roundUpField()},
		PurchaseTaxesDoctype: {roundUpField()},
	}
}

// Install creates or updates the tax row fields, commits, and tells the user.
// Nothing is committed when field creation fails.
func Install(ctx context.Context, installer host.SchemaInstaller, tx host.Transaction, notifier host.Notifier, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	fields := TaxRowFields()
	if err := installer.CreateCustomFields(ctx, fields, true); err != nil {
		return fmt.Errorf("create tax row fields: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tax row fields: %w", err)
	}
	logger.Info("tax row fields installed", "doctypes", len(fields), "field", RoundUpFieldname)

	if notifier == nil {
		return nil
	}
	err := notifier.Notify(ctx, host.Notification{
		Title:     "Installation complete",
		Message:   "Custom fields for tax rounding created successfully",
		Indicator: host.IndicatorGreen,
	})
	if err != nil {
		return fmt.Errorf("notify install: %w", err)
	}
	return nil
}
