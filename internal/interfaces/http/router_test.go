package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/erp-api/internal/application/analytics"
	"github.com/invorya/erp-api/internal/application/billing"
	"github.com/invorya/erp-api/internal/application/catalog"
	"github.com/invorya/erp-api/internal/application/inventory"
	"github.com/invorya/erp-api/internal/application/validate"
	"github.com/invorya/erp-api/internal/domain/repository"
	"github.com/invorya/erp-api/internal/infrastructure/document"
	"github.com/invorya/erp-api/internal/infrastructure/pdf"
	apphttp "github.com/invorya/erp-api/internal/interfaces/http"
)

func TestMain(m *testing.M) {
	// Igual que en producción: decimales como números JSON.
	decimal.MarshalJSONWithoutQuotes = true
	os.Exit(m.Run())
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp arma la aplicación con todas las rutas sobre el almacén dado
// (nil simula la base de datos no configurada).
func buildTestApp(store repository.DocumentStore) *fiber.App {
	validator := validate.New()
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Store:          store,
		DBName:         "erp",
		DatabaseURLSet: false,
		CatalogUC:      catalog.NewUseCase(store, validator),
		InventoryUC:    inventory.NewUseCase(store, validator),
		InvoicePDF:     billing.NewPDFUseCase(store, pdf.NewMarotoInvoiceGenerator()),
		DashboardUC:    analytics.NewDashboardUseCase(store),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeMap(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func decodeList(t *testing.T, resp *http.Response) []map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Sistema: /, /test, /schema
// ──────────────────────────────────────────────────────────────────────────────

func TestRoot_MensajeDeEstado(t *testing.T) {
	app := buildTestApp(document.NewMemoryStore())
	resp := doJSON(t, app, http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeMap(t, resp)
	assert.Equal(t, "ERP Backend Running", body["message"])
}

func TestTest_AlmacenOperativo(t *testing.T) {
	app := buildTestApp(document.NewMemoryStore())
	resp := doJSON(t, app, http.MethodGet, "/test", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeMap(t, resp)
	assert.Equal(t, "✅ Configured", body["database"])
	assert.Equal(t, "✅ Connected & Working", body["connection_status"])
	assert.Equal(t, "erp", body["database_name"])
	assert.Equal(t, false, body["database_url"])
}

func TestTest_SinAlmacen(t *testing.T) {
	app := buildTestApp(nil)
	resp := doJSON(t, app, http.MethodGet, "/test", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeMap(t, resp)
	assert.Equal(t, "❌ Not configured", body["database"])
	assert.Equal(t, "❌ No store instance", body["connection_status"])
}

func TestSchema_TodosLosModelos(t *testing.T) {
	app := buildTestApp(document.NewMemoryStore())
	resp := doJSON(t, app, http.MethodGet, "/schema", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeMap(t, resp)
	assert.Len(t, body, 15)

	product, ok := body["Product"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "product", product["collection"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateProduct_DevuelveDocumentoCompleto(t *testing.T) {
	app := buildTestApp(document.NewMemoryStore())

	resp := doJSON(t, app, http.MethodPost, "/products", map[string]any{
		"sku": "SKU-1", "name": "Widget", "price": 9.5,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeMap(t, resp)
	assert.NotEmpty(t, body["id"])
	assert.Equal(t, "SKU-1", body["sku"])
	assert.Equal(t, "unit", body["uom"], "default aplicado")
	assert.Equal(t, true, body["is_active"], "default aplicado")
}

func TestCreateProduct_SKURepetido(t *testing.T) {
	app := buildTestApp(document.NewMemoryStore())

	resp := doJSON(t, app, http.MethodPost, "/products", map[string]any{"sku": "SKU-1", "name": "A"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/products", map[string]any{"sku": "SKU-1", "name": "B"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeMap(t, resp)
	assert.Equal(t, "ALREADY_EXISTS", body["code"])
	assert.Equal(t, "SKU already exists", body["message"])
}

func TestCreateProduct_Invalido(t *testing.T) {
	app := buildTestApp(document.NewMemoryStore())

	resp := doJSON(t, app, http.MethodPost, "/products", map[string]any{"name": "sin sku", "price": -1})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeMap(t, resp)
	assert.Equal(t, "VALIDATION", body["code"])

	fields, ok := body["fields"].([]any)
	require.True(t, ok, "los errores de validación llevan detalle por campo")
	names := []string{}
	for _, f := range fields {
		names = append(names, f.(map[string]any)["field"].(string))
	}
	assert.Contains(t, names, "sku")
	assert.Contains(t, names, "price")
}

func TestCreateProduct_CuerpoMalformado(t *testing.T) {
	app := buildTestApp(document.NewMemoryStore())

	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader([]byte("{no json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeMap(t, resp)
	assert.Equal(t, "INVALID_BODY", body["code"])
}

func TestListProducts_VacioYConDatos(t *testing.T) {
	app := buildTestApp(document.NewMemoryStore())

	resp := doJSON(t, app, http.MethodGet, "/products", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeList(t, resp))

	resp = doJSON(t, app, http.MethodPost, "/products", map[string]any{"sku": "SKU-1", "name": "A"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/products", nil)
	out := decodeList(t, resp)
	require.Len(t, out, 1)
	assert.Equal(t, "SKU-1", out[0]["sku"])
	assert.NotEmpty(t, out[0]["id"])
}

// Sin almacén, los endpoints de datos responden 500 STORE_UNAVAILABLE.
func TestCreateProduct_SinAlmacen(t *testing.T) {
	app := buildTestApp(nil)

	resp := doJSON(t, app, http.MethodPost, "/products", map[string]any{"sku": "SKU-1", "name": "A"})
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body := decodeMap(t, resp)
	assert.Equal(t, "STORE_UNAVAILABLE", body["code"])
	assert.Equal(t, "Database not configured", body["message"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Bodegas y claves de negocio de otros recursos
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateWarehouse_RespuestaMinimaYConflicto(t *testing.T) {
	app := buildTestApp(document.NewMemoryStore())

	resp := doJSON(t, app, http.MethodPost, "/warehouses", map[string]any{"name": "Principal", "code": "MAIN"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeMap(t, resp)
	assert.NotEmpty(t, body["id"])
	assert.Len(t, body, 1, "la respuesta de creación es solo {id}")

	resp = doJSON(t, app, http.MethodPost, "/warehouses", map[string]any{"name": "Otra", "code": "MAIN"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body = decodeMap(t, resp)
	assert.Equal(t, "Warehouse code already exists", body["message"])
}

func TestCreateSalesOrder_NumeroRepetido(t *testing.T) {
	app := buildTestApp(document.NewMemoryStore())
	order := map[string]any{
		"number":      "SO-1",
		"customer_id": "c-1",
		"order_date":  "2026-01-15T00:00:00Z",
		"items": []map[string]any{
			{"product_sku": "SKU-1", "quantity": 2, "price": 10},
		},
	}

	resp := doJSON(t, app, http.MethodPost, "/sales/orders", order)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/sales/orders", order)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeMap(t, resp)
	assert.Equal(t, "Order number already exists", body["message"])
}

func TestCreateInvoice_NumeroRepetido(t *testing.T) {
	app := buildTestApp(document.NewMemoryStore())
	invoice := map[string]any{
		"number":       "INV-9",
		"type":         "sales",
		"partner_id":   "c-1",
		"invoice_date": "2026-03-01T00:00:00Z",
		"lines": []map[string]any{
			{"product_sku": "SKU-1", "quantity": 1, "unit_price": 10},
		},
	}

	resp := doJSON(t, app, http.MethodPost, "/invoices", invoice)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/invoices", invoice)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeMap(t, resp)
	assert.Equal(t, "ALREADY_EXISTS", body["code"])
	assert.Equal(t, "Invoice number already exists", body["message"])
}

func TestCreatePayment_NumeroRepetido(t *testing.T) {
	app := buildTestApp(document.NewMemoryStore())
	payment := map[string]any{
		"number":     "PAY-9",
		"type":       "inbound",
		"partner_id": "c-1",
		"date":       "2026-03-02T00:00:00Z",
		"amount":     150.5,
	}

	resp := doJSON(t, app, http.MethodPost, "/payments", payment)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/payments", payment)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeMap(t, resp)
	assert.Equal(t, "ALREADY_EXISTS", body["code"])
	assert.Equal(t, "Payment number already exists", body["message"])
}

// El monto del pago es obligatorio; un cuerpo sin amount no se acepta
// aunque el resto de campos estén completos.
func TestCreatePayment_MontoObligatorio(t *testing.T) {
	app := buildTestApp(document.NewMemoryStore())

	resp := doJSON(t, app, http.MethodPost, "/payments", map[string]any{
		"number":     "PAY-10",
		"type":       "inbound",
		"partner_id": "c-1",
		"date":       "2026-03-03T00:00:00Z",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeMap(t, resp)
	assert.Equal(t, "VALIDATION", body["code"])

	fields, ok := body["fields"].([]any)
	require.True(t, ok)
	names := []string{}
	for _, f := range fields {
		names = append(names, f.(map[string]any)["field"].(string))
	}
	assert.Contains(t, names, "amount")

	// Con amount 0 explícito el pago sí se acepta.
	resp = doJSON(t, app, http.MethodPost, "/payments", map[string]any{
		"number":     "PAY-10",
		"type":       "inbound",
		"partner_id": "c-1",
		"date":       "2026-03-03T00:00:00Z",
		"amount":     0,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
}

// ──────────────────────────────────────────────────────────────────────────────
// Inventario
// ──────────────────────────────────────────────────────────────────────────────

func TestInventory_TransaccionesYStock(t *testing.T) {
	app := buildTestApp(document.NewMemoryStore())

	resp := doJSON(t, app, http.MethodPost, "/inventory/transactions", map[string]any{
		"type": "in", "product_sku": "SKU-1", "warehouse_code": "MAIN", "quantity": 100,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeMap(t, resp)
	assert.NotEmpty(t, body["id"])
	assert.EqualValues(t, 100, body["applied_change"])

	resp = doJSON(t, app, http.MethodPost, "/inventory/transactions", map[string]any{
		"type": "out", "product_sku": "SKU-1", "warehouse_code": "MAIN", "quantity": 30,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	body = decodeMap(t, resp)
	assert.EqualValues(t, -30, body["applied_change"])

	resp = doJSON(t, app, http.MethodGet, "/inventory/stock", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	stock := decodeList(t, resp)
	require.Len(t, stock, 1)
	assert.Equal(t, "SKU-1", stock[0]["product_sku"])
	assert.EqualValues(t, 70, stock[0]["on_hand"])
}

// Sin quantity el movimiento no se registra: el campo es obligatorio.
func TestInventory_CantidadObligatoria(t *testing.T) {
	app := buildTestApp(document.NewMemoryStore())

	resp := doJSON(t, app, http.MethodPost, "/inventory/transactions", map[string]any{
		"type": "in", "product_sku": "SKU-1", "warehouse_code": "MAIN",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeMap(t, resp)
	assert.Equal(t, "VALIDATION", body["code"])

	fields, ok := body["fields"].([]any)
	require.True(t, ok)
	names := []string{}
	for _, f := range fields {
		names = append(names, f.(map[string]any)["field"].(string))
	}
	assert.Contains(t, names, "quantity")
}

func TestInventory_TipoInvalido(t *testing.T) {
	app := buildTestApp(document.NewMemoryStore())

	resp := doJSON(t, app, http.MethodPost, "/inventory/transactions", map[string]any{
		"type": "melt", "product_sku": "SKU-1", "warehouse_code": "MAIN", "quantity": 1,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeMap(t, resp)
	assert.Equal(t, "VALIDATION", body["code"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Facturas y PDF
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoicePDF_GeneraYDevuelve(t *testing.T) {
	app := buildTestApp(document.NewMemoryStore())

	resp := doJSON(t, app, http.MethodPost, "/invoices", map[string]any{
		"number":       "INV-001",
		"type":         "sales",
		"partner_id":   "c-1",
		"invoice_date": "2026-02-01T00:00:00Z",
		"lines": []map[string]any{
			{"product_sku": "SKU-1", "quantity": 2, "unit_price": 100, "tax_rate": 19},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := decodeMap(t, resp)["id"].(string)

	req := httptest.NewRequest(http.MethodGet, "/invoices/"+id+"/pdf", nil)
	pdfResp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer pdfResp.Body.Close()

	assert.Equal(t, http.StatusOK, pdfResp.StatusCode)
	assert.Equal(t, "application/pdf", pdfResp.Header.Get("Content-Type"))
}

func TestInvoicePDF_FacturaInexistente(t *testing.T) {
	app := buildTestApp(document.NewMemoryStore())

	resp := doJSON(t, app, http.MethodGet, "/invoices/desconocido/pdf", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decodeMap(t, resp)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboard_Resumen(t *testing.T) {
	app := buildTestApp(document.NewMemoryStore())

	resp := doJSON(t, app, http.MethodPost, "/products", map[string]any{"sku": "SKU-1", "name": "A"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/inventory/transactions", map[string]any{
		"type": "out", "product_sku": "SKU-1", "warehouse_code": "MAIN", "quantity": 5,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/dashboard", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeMap(t, resp)

	totals, ok := body["totals"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 1, totals["products"])
	assert.EqualValues(t, 1, totals["stock_items"])

	lowStock, ok := body["low_stock"].([]any)
	require.True(t, ok)
	require.Len(t, lowStock, 1, "on_hand -5 debe aparecer como stock bajo")
	entry := lowStock[0].(map[string]any)
	assert.Equal(t, "SKU-1", entry["product_sku"])
}
