// Package repository define los puertos de persistencia del dominio.
package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// Document es un documento almacenado, etiquetado con su identificador.
type Document struct {
	ID   string
	Data map[string]any
}

// Tagged devuelve el contenido del documento con el id mezclado, la forma
// en que la API lo expone: {id, ...campos}.
func (d Document) Tagged() map[string]any {
	out := make(map[string]any, len(d.Data)+1)
	for k, v := range d.Data {
		out[k] = v
	}
	out["id"] = d.ID
	return out
}

// DocumentStore es el puerto genérico del almacén de documentos: colecciones
// con nombre que agrupan registros JSON. Las operaciones base son Insert y
// List; el resto son las consultas puntuales que la capa HTTP necesita
// (unicidad de claves de negocio, upsert de stock, conteos del dashboard).
// Sin transacciones, sin paginación, orden de inserción no garantizado.
type DocumentStore interface {
	// Insert inserta un documento validado y devuelve su identificador generado.
	Insert(ctx context.Context, collection string, doc any) (string, error)
	// List devuelve todos los documentos de la colección.
	List(ctx context.Context, collection string) ([]Document, error)
	// Get devuelve el documento con el id dado, o nil si no existe.
	Get(ctx context.Context, collection, id string) (*Document, error)
	// FindOneBy devuelve un documento cuyo campo tenga el valor dado, o nil.
	FindOneBy(ctx context.Context, collection, field, value string) (*Document, error)
	// FindOneBy2 igual que FindOneBy pero con dos campos (ej. sku + bodega).
	FindOneBy2(ctx context.Context, collection, field1, value1, field2, value2 string) (*Document, error)
	// UpdateByID mezcla las claves de patch sobre el documento (merge superficial).
	UpdateByID(ctx context.Context, collection, id string, patch map[string]any) error
	// Count devuelve el número de documentos de la colección.
	Count(ctx context.Context, collection string) (int64, error)
	// CountByFieldIn cuenta los documentos cuyo campo esté entre los valores dados.
	CountByFieldIn(ctx context.Context, collection, field string, values []string) (int64, error)
	// ListNumericAtMost devuelve hasta limit documentos cuyo campo numérico sea <= max.
	ListNumericAtMost(ctx context.Context, collection, field string, max decimal.Decimal, limit int) ([]Document, error)
	// Collections devuelve los nombres de colección existentes (diagnóstico).
	Collections(ctx context.Context) ([]string, error)
	// Ping verifica la conectividad con el almacén.
	Ping(ctx context.Context) error
}
