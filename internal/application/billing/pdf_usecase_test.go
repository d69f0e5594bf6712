package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/erp-api/internal/application/billing"
	"github.com/invorya/erp-api/internal/domain"
	"github.com/invorya/erp-api/internal/domain/entity"
	"github.com/invorya/erp-api/internal/infrastructure/document"
)

func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }

// fakeGenerator captura la factura recibida y devuelve bytes fijos.
type fakeGenerator struct {
	gotID  string
	gotInv *entity.Invoice
}

func (g *fakeGenerator) GenerateInvoicePDF(_ context.Context, invoiceID string, inv *entity.Invoice) ([]byte, error) {
	g.gotID = invoiceID
	g.gotInv = inv
	return []byte("%PDF-fake"), nil
}

// La factura se carga del almacén, se decodifica y se entrega al generador.
func TestGenerate_FacturaExistente(t *testing.T) {
	store := document.NewMemoryStore()
	id, err := store.Insert(context.Background(), entity.CollectionInvoice, &entity.Invoice{
		Number:      "INV-001",
		Type:        entity.InvoiceTypeSales,
		PartnerID:   "c-1",
		InvoiceDate: time.Now().UTC(),
		Currency:    "USD",
		Status:      entity.InvoiceStatusDraft,
		Lines: []entity.InvoiceLine{
			{ProductSKU: "A", Quantity: decPtr(decimal.NewFromInt(2)), UnitPrice: decPtr(decimal.NewFromInt(100))},
		},
	})
	require.NoError(t, err)

	gen := &fakeGenerator{}
	uc := billing.NewPDFUseCase(store, gen)

	pdf, err := uc.Generate(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), pdf)

	assert.Equal(t, id, gen.gotID)
	require.NotNil(t, gen.gotInv)
	assert.Equal(t, "INV-001", gen.gotInv.Number)
	require.Len(t, gen.gotInv.Lines, 1)
	assert.True(t, gen.gotInv.Subtotal().Equal(decimal.NewFromInt(200)))
}

// Id inexistente → ErrNotFound, el generador nunca se invoca.
func TestGenerate_FacturaInexistente(t *testing.T) {
	gen := &fakeGenerator{}
	uc := billing.NewPDFUseCase(document.NewMemoryStore(), gen)

	_, err := uc.Generate(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, gen.gotInv)
}

// Sin almacén configurado → ErrStoreUnavailable.
func TestGenerate_SinAlmacen(t *testing.T) {
	uc := billing.NewPDFUseCase(nil, &fakeGenerator{})
	_, err := uc.Generate(context.Background(), "x")
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
