package nextchile_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nextchile/nextchile"
	"github.com/nextchile/nextchile/host"
)

type partyDoc struct {
	taxID string
}

func (d *partyDoc) TaxID() (string, bool) { return d.taxID, true }
func (d *partyDoc) SetTaxID(v string)     { d.taxID = v }

type invoiceDoc struct {
	taxes        []*host.TaxRow
	recalculated int
}

func (d *invoiceDoc) Taxes() []*host.TaxRow { return d.taxes }

func (d *invoiceDoc) CalculateTaxesAndTotals(context.Context) error {
	d.recalculated++
	return nil
}

type recordingNotifier struct {
	sent []host.Notification
}

func (n *recordingNotifier) Notify(_ context.Context, msg host.Notification) error {
	n.sent = append(n.sent, msg)
	return nil
}

var errAborted = errors.New("save aborted")

type abortSink struct {
	title, message string
}

func (s *abortSink) Abort(_ context.Context, title, message string) error {
	s.title, s.message = title, message
	return errAborted
}

func newApp(t *testing.T) *nextchile.App {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return nextchile.New(nextchile.DefaultConfig(), logger, prometheus.NewRegistry())
}

func TestDispatch_PartyValidation(t *testing.T) {
	app := newApp(t)
	ctx := context.Background()

	for _, doctype := range []string{nextchile.DoctypeCustomer, nextchile.DoctypeSupplier, nextchile.DoctypeCompany} {
		t.Run(doctype+" valid RUT is formatted", func(t *testing.T) {
			doc := &partyDoc{taxID: "761234560"}
			require.NoError(t, app.Dispatch(ctx, doctype, nextchile.EventValidate, doc, nextchile.Ports{}))
			assert.Equal(t, "76.123.456-0", doc.taxID)
		})
	}

	t.Run("invalid RUT aborts the save", func(t *testing.T) {
		doc := &partyDoc{taxID: "11111111-2"}
		sink := &abortSink{}
		err := app.Dispatch(ctx, nextchile.DoctypeCustomer, nextchile.EventValidate, doc, nextchile.Ports{Sink: sink})
		assert.ErrorIs(t, err, errAborted)
		assert.Equal(t, "Invalid RUT: 11111111-2. Expected format XX.XXX.XXX-X", sink.message)
		assert.Equal(t, "11111111-2", doc.taxID)
	})

	t.Run("invalid RUT without sink yields ValidationError", func(t *testing.T) {
		doc := &partyDoc{taxID: "12.345.678-9"}
		err := app.Dispatch(ctx, nextchile.DoctypeSupplier, nextchile.EventValidate, doc, nextchile.Ports{})
		var verr *nextchile.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "12.345.678-9", verr.Value)
	})

	t.Run("empty RUT is accepted", func(t *testing.T) {
		doc := &partyDoc{}
		require.NoError(t, app.Dispatch(ctx, nextchile.DoctypeCompany, nextchile.EventValidate, doc, nextchile.Ports{}))
		assert.Empty(t, doc.taxID)
	})

	t.Run("form change clears invalid input", func(t *testing.T) {
		doc := &partyDoc{taxID: "99"}
		notifier := &recordingNotifier{}
		require.NoError(t, app.Dispatch(ctx, nextchile.DoctypeCustomer, nextchile.EventTaxIDChange, doc, nextchile.Ports{Notifier: notifier}))
		assert.Empty(t, doc.taxID)
		require.Len(t, notifier.sent, 1)
		assert.Equal(t, host.IndicatorRed, notifier.sent[0].Indicator)
	})
}

func TestDispatch_InvoiceRounding(t *testing.T) {
	app := newApp(t)
	ctx := context.Background()

	t.Run("flagged row is rounded and summarized", func(t *testing.T) {
		doc := &invoiceDoc{taxes: []*host.TaxRow{
			{ID: "A", Description: "IVA", Amount: decimal.RequireFromString("18.30"), RoundUp: true},
			{ID: "B", Description: "Retención", Amount: decimal.RequireFromString("5.70")},
		}}
		notifier := &recordingNotifier{}

		err := app.Dispatch(ctx, nextchile.DoctypeSalesInvoice, nextchile.EventValidate, doc, nextchile.Ports{Notifier: notifier})
		require.NoError(t, err)

		assert.Equal(t, "19", doc.taxes[0].Amount.String())
		assert.Equal(t, "5.70", doc.taxes[1].Amount.StringFixed(2))
		assert.Equal(t, 1, doc.recalculated)
		require.Len(t, notifier.sent, 1)
		assert.Contains(t, notifier.sent[0].Message, "Total adjustment: +0.70")
	})

	t.Run("no flagged rows means no recalculation and no notification", func(t *testing.T) {
		doc := &invoiceDoc{taxes: []*host.TaxRow{
			{ID: "A", Amount: decimal.RequireFromString("18.30")},
		}}
		notifier := &recordingNotifier{}

		err := app.Dispatch(ctx, nextchile.DoctypePurchaseInvoice, nextchile.EventValidate, doc, nextchile.Ports{Notifier: notifier})
		require.NoError(t, err)
		assert.Zero(t, doc.recalculated)
		assert.Empty(t, notifier.sent)
	})
}

func TestDispatch_Unbound(t *testing.T) {
	app := newApp(t)
	ctx := context.Background()

	assert.NoError(t, app.Dispatch(ctx, "Item", nextchile.EventValidate, &partyDoc{taxID: "bad"}, nextchile.Ports{}))
	assert.NoError(t, app.Dispatch(ctx, nextchile.DoctypeCustomer, "on_trash", &partyDoc{taxID: "bad"}, nextchile.Ports{}))

	_, ok := app.Hook(nextchile.DoctypeSalesInvoice, nextchile.EventTaxIDChange)
	assert.False(t, ok)
}

func TestDispatch_DocumentWithoutCapability(t *testing.T) {
	app := newApp(t)
	ctx := context.Background()

	assert.NoError(t, app.Dispatch(ctx, nextchile.DoctypeCustomer, nextchile.EventValidate, struct{}{}, nextchile.Ports{}))
	assert.NoError(t, app.Dispatch(ctx, nextchile.DoctypeSalesInvoice, nextchile.EventValidate, &partyDoc{}, nextchile.Ports{}))
}

func TestRUTHelpers(t *testing.T) {
	assert.True(t, nextchile.IsValidRUT("76.123.456-0"))
	assert.Equal(t, "76.123.456-0", nextchile.FormatRUT("761234560"))
	assert.Equal(t, "garbage", nextchile.FormatRUT("garbage"))
}

type fakeInstaller struct {
	fields map[string][]host.CustomField
	update bool
}

func (f *fakeInstaller) CreateCustomFields(_ context.Context, fields map[string][]host.CustomField, update bool) error {
	f.fields, f.update = fields, update
	return nil
}

type fakeTx struct{ commits int }

func (t *fakeTx) Commit(context.Context) error {
	t.commits++
	return nil
}

func TestAfterInstall(t *testing.T) {
	app := newApp(t)
	installer := &fakeInstaller{}
	tx := &fakeTx{}
	notifier := &recordingNotifier{}

	require.NoError(t, app.AfterInstall(context.Background(), installer, tx, notifier))
	assert.True(t, installer.update)
	assert.Contains(t, installer.fields, "Sales Taxes and Charges")
	assert.Contains(t, installer.fields, "Purchase Taxes and Charges")
	assert.Equal(t, 1, tx.commits)
	assert.Len(t, notifier.sent, 1)
}
