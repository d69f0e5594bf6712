// Package schema expone el registro estático de descriptores de campo de
// cada entidad. Sustituye la introspección en runtime sobre los modelos por
// un registro explícito construido en tiempo de compilación, enumerable
// directamente por GET /schema. La validación que estos descriptores
// describen la ejecuta el validador sobre los tags de internal/domain/entity;
// aquí solo vive el metadato.
package schema

import "github.com/invorya/erp-api/internal/domain/entity"

// Field describe un campo de una entidad.
type Field struct {
	Name        string `json:"-"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Default     any    `json:"default"`
	Description string `json:"description"`
}

// Model describe una entidad: su colección, sus campos y su docstring.
type Model struct {
	Collection string
	Doc        string
	Fields     []Field
}

// JSON devuelve la representación del modelo para GET /schema.
func (m Model) JSON() map[string]any {
	fields := make(map[string]any, len(m.Fields))
	for _, f := range m.Fields {
		fields[f.Name] = map[string]any{
			"type":        f.Type,
			"required":    f.Required,
			"default":     f.Default,
			"description": f.Description,
		}
	}
	return map[string]any{
		"collection": m.Collection,
		"fields":     fields,
		"doc":        m.Doc,
	}
}

// Models devuelve el registro completo, indexado por nombre de entidad.
// Incluye los esquemas latentes (PurchaseOrder, Account, JournalEntry,
// AuditLog, User) que no tienen endpoints.
func Models() map[string]Model {
	return registry
}

func req(name, typ, desc string) Field {
	return Field{Name: name, Type: typ, Required: true, Description: desc}
}

func opt(name, typ string, def any) Field {
	return Field{Name: name, Type: typ, Default: def}
}

var registry = map[string]Model{
	"User": {
		Collection: entity.CollectionUser,
		Doc:        "Usuario del sistema (sin endpoints expuestos).",
		Fields: []Field{
			req("name", "string", ""),
			req("email", "string", ""),
			opt("role", "enum[admin|sales|purchasing|accounting|warehouse]", "admin"),
			opt("is_active", "bool", true),
		},
	},
	"Warehouse": {
		Collection: entity.CollectionWarehouse,
		Doc:        "Bodega física. Code es clave de negocio única.",
		Fields: []Field{
			req("name", "string", ""),
			req("code", "string", "Short code identifier, e.g., MAIN"),
			opt("address", "string", nil),
			opt("is_active", "bool", true),
		},
	},
	"Customer": {
		Collection: entity.CollectionCustomer,
		Doc:        "Cliente (maestro de terceros, lado ventas).",
		Fields: []Field{
			req("name", "string", ""),
			opt("email", "string", nil),
			opt("phone", "string", nil),
			opt("billing_address", "string", nil),
			opt("shipping_address", "string", nil),
			opt("tax_id", "string", nil),
			opt("credit_limit", "decimal", 0),
			opt("is_active", "bool", true),
		},
	},
	"Supplier": {
		Collection: entity.CollectionSupplier,
		Doc:        "Proveedor (maestro de terceros, lado compras).",
		Fields: []Field{
			req("name", "string", ""),
			opt("email", "string", nil),
			opt("phone", "string", nil),
			opt("address", "string", nil),
			opt("tax_id", "string", nil),
			opt("is_active", "bool", true),
		},
	},
	"Tax": {
		Collection: entity.CollectionTax,
		Doc:        "Definición de impuesto.",
		Fields: []Field{
			req("name", "string", ""),
			Field{Name: "rate", Type: "decimal", Default: 0, Description: "Percentage, e.g., 5.0 for 5%"},
			opt("type", "enum[vat|gst|sales|withholding|other]", "vat"),
			opt("is_inclusive", "bool", false),
			opt("is_active", "bool", true),
		},
	},
	"Product": {
		Collection: entity.CollectionProduct,
		Doc:        "Producto del catálogo. SKU es clave de negocio única.",
		Fields: []Field{
			req("sku", "string", ""),
			req("name", "string", ""),
			opt("description", "string", nil),
			opt("uom", "string", "unit"),
			opt("price", "decimal", 0),
			opt("cost", "decimal", 0),
			opt("tax_code", "string", nil),
			opt("is_active", "bool", true),
		},
	},
	"InventoryTransaction": {
		Collection: entity.CollectionInventoryTransaction,
		Doc:        "Movimiento de inventario inmutable.",
		Fields: []Field{
			req("type", "enum[in|out|transfer|adjustment]", ""),
			req("product_sku", "string", ""),
			req("quantity", "decimal", ""),
			req("warehouse_code", "string", ""),
			opt("reference", "string", nil),
			opt("notes", "string", nil),
		},
	},
	"StockLevel": {
		Collection: entity.CollectionStockLevel,
		Doc:        "Existencias por par (producto, bodega); derivado de las transacciones.",
		Fields: []Field{
			req("product_sku", "string", ""),
			req("warehouse_code", "string", ""),
			opt("on_hand", "decimal", 0),
			opt("reserved", "decimal", 0),
		},
	},
	"SalesOrder": {
		Collection: entity.CollectionSalesOrder,
		Doc:        "Orden de venta. Number es clave de negocio única.",
		Fields: []Field{
			req("number", "string", ""),
			req("customer_id", "string", ""),
			req("order_date", "datetime", ""),
			opt("currency", "string", "USD"),
			req("items", "[]SalesOrderItem", ""),
			opt("notes", "string", nil),
			opt("status", "enum[draft|confirmed|delivered|invoiced|closed]", "draft"),
		},
	},
	"PurchaseOrder": {
		Collection: entity.CollectionPurchaseOrder,
		Doc:        "Orden de compra (sin endpoints expuestos).",
		Fields: []Field{
			req("number", "string", ""),
			req("supplier_id", "string", ""),
			req("order_date", "datetime", ""),
			opt("currency", "string", "USD"),
			req("items", "[]PurchaseOrderItem", ""),
			opt("notes", "string", nil),
			opt("status", "enum[draft|confirmed|received|billed|closed]", "draft"),
		},
	},
	"Invoice": {
		Collection: entity.CollectionInvoice,
		Doc:        "Factura de venta o compra. Number es clave de negocio única.",
		Fields: []Field{
			req("number", "string", ""),
			req("type", "enum[sales|purchase]", ""),
			req("partner_id", "string", "Customer ID for sales, Supplier ID for purchase"),
			req("invoice_date", "datetime", ""),
			opt("currency", "string", "USD"),
			req("lines", "[]InvoiceLine", ""),
			opt("status", "enum[draft|posted|paid|cancelled]", "draft"),
		},
	},
	"Payment": {
		Collection: entity.CollectionPayment,
		Doc:        "Pago recibido o emitido. Number es clave de negocio única.",
		Fields: []Field{
			req("number", "string", ""),
			req("type", "enum[inbound|outbound]", ""),
			req("partner_id", "string", ""),
			req("date", "datetime", ""),
			opt("currency", "string", "USD"),
			req("amount", "decimal", ""),
			opt("method", "string", "cash"),
			opt("reference", "string", nil),
		},
	},
	"Account": {
		Collection: entity.CollectionAccount,
		Doc:        "Cuenta contable (sin endpoints expuestos).",
		Fields: []Field{
			req("code", "string", ""),
			req("name", "string", ""),
			req("type", "enum[asset|liability|equity|income|expense|receivable|payable|bank|tax]", ""),
			opt("currency", "string", "USD"),
			opt("is_active", "bool", true),
		},
	},
	"JournalEntry": {
		Collection: entity.CollectionJournalEntry,
		Doc:        "Asiento contable (sin endpoints expuestos).",
		Fields: []Field{
			req("number", "string", ""),
			req("date", "datetime", ""),
			req("lines", "[]JournalLine", ""),
			opt("reference", "string", nil),
		},
	},
	"AuditLog": {
		Collection: entity.CollectionAuditLog,
		Doc:        "Registro de auditoría (sin endpoints expuestos).",
		Fields: []Field{
			req("action", "string", ""),
			req("entity", "string", ""),
			req("entity_id", "string", ""),
			opt("user", "string", nil),
			opt("metadata", "map", map[string]any{}),
		},
	},
}
