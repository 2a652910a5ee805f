// Package host declares what this module needs from the document platform
// that invokes its hooks. The platform owns persistence, totals, messaging
// and schema changes; hooks only see these interfaces.
package host

//go:generate mockgen -source=host.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/shopspring/decimal"
)

// Indicator colours a user-facing notification.
type Indicator string

const (
	IndicatorBlue  Indicator = "blue"
	IndicatorRed   Indicator = "red"
	IndicatorGreen Indicator = "green"
)

// Notification is a message shown to the user once the hook returns.
type Notification struct {
	Title     string
	Message   string
	Indicator Indicator
}

// IsZero reports whether n carries nothing to show.
func (n Notification) IsZero() bool {
	return n.Title == "" && n.Message == ""
}

// TaxRow is one line of a document's taxes and charges table.
type TaxRow struct {
	ID          string
	Description string
	AccountHead string
	Amount      decimal.Decimal
	RoundUp     bool
}

// Label is the name shown for the row in user messages.
func (r *TaxRow) Label() string {
	switch {
	case r.Description != "":
		return r.Description
	case r.AccountHead != "":
		return r.AccountHead
	default:
		return r.ID
	}
}

// TaxIDDocument is a document carrying an optional tax_id field
// (Customer, Supplier, Company).
type TaxIDDocument interface {
	// TaxID returns the current value and whether the field exists on the document.
	TaxID() (string, bool)
	// SetTaxID overwrites the field.
	SetTaxID(value string)
}

// TaxDocument is an invoice-like document with a taxes table.
type TaxDocument interface {
	// Taxes returns the rows in display order. Rows are mutated in place; a nil
	// slice means the document has no taxes table.
	Taxes() []*TaxRow
	// CalculateTaxesAndTotals recomputes every total that depends on tax rows.
	CalculateTaxesAndTotals(ctx context.Context) error
}

// Notifier delivers a message to the user who triggered the hook.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// ValidationSink aborts the enclosing save with a user-facing message. The
// returned error is what the hook hands back to the platform.
type ValidationSink interface {
	Abort(ctx context.Context, title, message string) error
}

// Transaction commits pending schema or data changes.
type Transaction interface {
	Commit(ctx context.Context) error
}

// CustomField describes a field added to an existing doctype.
type CustomField struct {
	Fieldname   string
	Label       string
	Fieldtype   string
	InsertAfter string
	Description string
	Default     int
	InListView  bool
	Columns     int
}

// SchemaInstaller adds custom fields to platform doctypes.
type SchemaInstaller interface {
	// CreateCustomFields creates or, when update is set, updates the given
	// fields keyed by doctype.
	CreateCustomFields(ctx context.Context, fields map[string][]CustomField, update bool) error
}
