package taxround

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nextchile/nextchile/host"
)

const summaryTitle = "Taxes rounded"

// TotalDelta sums the deltas of adjs.
func TotalDelta(adjs []Adjustment) decimal.Decimal {
	total := decimal.Zero
	for _, a := range adjs {
		total = total.Add(a.Delta)
	}
	return total
}

// Summary renders adjs as a user notification, one line per row followed by
// the total adjustment. No adjustments yield a zero Notification.
func Summary(adjs []Adjustment) host.Notification {
	if len(adjs) == 0 {
		return host.Notification{}
	}
	lines := make([]string, 0, len(adjs)+2)
	lines = append(lines, "Tax rounding applied:")
	for _, a := range adjs {
		lines = append(lines, fmt.Sprintf("• %s: %s → %s (+%s)",
			a.Label, a.Original.StringFixed(2), a.Rounded.StringFixed(2), a.Delta.StringFixed(2)))
	}
	lines = append(lines, "Total adjustment: +"+TotalDelta(adjs).StringFixed(2))
	return host.Notification{
		Title:     summaryTitle,
		Message:   strings.Join(lines, "\n"),
		Indicator: host.IndicatorBlue,
	}
}
