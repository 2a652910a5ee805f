package taxround

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/nextchile/nextchile/host"
	"github.com/nextchile/nextchile/internal/logging"
	"github.com/nextchile/nextchile/internal/metrics"
)

const hookName = "apply_row_level_rounding"

// Adjustment records one row raised to the next integer.
type Adjustment struct {
	RowID    string
	Label    string
	Original decimal.Decimal
	Rounded  decimal.Decimal
	Delta    decimal.Decimal
}

type Config struct {
	Enabled bool
	// Notify controls whether a summary is sent after rounding.
	Notify bool
}

// Rounder applies per-row ceiling rounding to flagged tax rows.
type Rounder struct {
	cfg     Config
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewRounder(cfg Config, logger *slog.Logger, m *metrics.Metrics) Rounder {
	if logger == nil {
		logger = slog.Default()
	}
	return Rounder{cfg: cfg, logger: logger, metrics: m}
}

// RoundRow raises a flagged, positive, non-integral amount to the next
// integer in place. It reports false when the row is left untouched.
func RoundRow(row *host.TaxRow) (Adjustment, bool) {
	if row == nil || !row.RoundUp || !row.Amount.IsPositive() {
		return Adjustment{}, false
	}
	rounded := row.Amount.Ceil()
	if rounded.Equal(row.Amount) {
		return Adjustment{}, false
	}
	adj := Adjustment{
		RowID:    row.ID,
		Label:    row.Label(),
		Original: row.Amount,
		Rounded:  rounded,
		Delta:    rounded.Sub(row.Amount),
	}
	row.Amount = rounded
	return adj, true
}

// Apply rounds every flagged row of doc. When at least one amount changed the
// document totals are recalculated by the platform and a summary is sent to
// notifier. Errors from the platform are returned unchanged in kind.
func (r Rounder) Apply(ctx context.Context, doctype string, doc host.TaxDocument, notifier host.Notifier) error {
	if !r.cfg.Enabled {
		return nil
	}
	rows := doc.Taxes()
	if len(rows) == 0 {
		return nil
	}
	log := logging.ForHook(r.logger, hookName, doctype)

	adjustments := make([]Adjustment, 0, len(rows))
	for _, row := range rows {
		if adj, ok := RoundRow(row); ok {
			adjustments = append(adjustments, adj)
		}
	}
	if len(adjustments) == 0 {
		return nil
	}
	r.metrics.AddRoundedRows(len(adjustments))

	if err := doc.CalculateTaxesAndTotals(ctx); err != nil {
		return fmt.Errorf("recalculate totals: %w", err)
	}
	r.metrics.IncRecalculation()
	log.Info("tax rows rounded", "rows", len(adjustments), "total", TotalDelta(adjustments).StringFixed(2))

	if !r.cfg.Notify || notifier == nil {
		return nil
	}
	if err := notifier.Notify(ctx, Summary(adjustments)); err != nil {
		return fmt.Errorf("notify rounding summary: %w", err)
	}
	return nil
}
