// Package billing implementa los casos de uso de facturación que van más
// allá del CRUD genérico: la representación gráfica (PDF) de una factura.
package billing

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/invorya/erp-api/internal/domain"
	"github.com/invorya/erp-api/internal/domain/entity"
	"github.com/invorya/erp-api/internal/domain/repository"
)

// InvoicePDFGenerator es el puerto del generador de PDF de facturas.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoiceID string, inv *entity.Invoice) ([]byte, error)
}

// PDFUseCase carga una factura del almacén y delega la generación del PDF.
type PDFUseCase struct {
	store     repository.DocumentStore
	generator InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(store repository.DocumentStore, generator InvoicePDFGenerator) *PDFUseCase {
	return &PDFUseCase{store: store, generator: generator}
}

// Generate devuelve los bytes del PDF de la factura, o ErrNotFound si el id
// no existe en la colección.
func (uc *PDFUseCase) Generate(ctx context.Context, invoiceID string) ([]byte, error) {
	if uc.store == nil {
		return nil, domain.ErrStoreUnavailable
	}
	doc, err := uc.store.Get(ctx, entity.CollectionInvoice, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("cargar factura: %w", err)
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}

	var inv entity.Invoice
	raw, err := json.Marshal(doc.Data)
	if err != nil {
		return nil, fmt.Errorf("serializar factura: %w", err)
	}
	if err := json.Unmarshal(raw, &inv); err != nil {
		return nil, fmt.Errorf("decodificar factura: %w", err)
	}

	return uc.generator.GenerateInvoicePDF(ctx, invoiceID, &inv)
}
