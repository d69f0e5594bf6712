package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/erp-api/internal/domain/schema"
)

// El registro cubre las 15 entidades, incluidas las latentes sin endpoints.
func TestModels_RegistroCompleto(t *testing.T) {
	models := schema.Models()
	assert.Len(t, models, 15)

	for _, name := range []string{
		"User", "Warehouse", "Customer", "Supplier", "Tax", "Product",
		"InventoryTransaction", "StockLevel", "SalesOrder", "PurchaseOrder",
		"Invoice", "Payment", "Account", "JournalEntry", "AuditLog",
	} {
		_, ok := models[name]
		assert.True(t, ok, "falta el modelo %s", name)
	}
}

// Cada modelo declara colección y al menos un campo.
func TestModels_ModelosBienFormados(t *testing.T) {
	for name, m := range schema.Models() {
		assert.NotEmpty(t, m.Collection, "modelo %s sin colección", name)
		assert.NotEmpty(t, m.Fields, "modelo %s sin campos", name)
	}
}

// JSON produce la forma {collection, fields, doc} con el detalle por campo.
func TestModelJSON_FormaDeSalida(t *testing.T) {
	m, ok := schema.Models()["Product"]
	require.True(t, ok)

	out := m.JSON()
	assert.Equal(t, m.Collection, out["collection"])
	assert.Equal(t, m.Doc, out["doc"])

	fields, ok := out["fields"].(map[string]any)
	require.True(t, ok)

	sku, ok := fields["sku"].(map[string]any)
	require.True(t, ok, "el producto debe describir el campo sku")
	assert.Equal(t, true, sku["required"])
	assert.Equal(t, "string", sku["type"])
}
