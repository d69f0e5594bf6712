package http

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/invorya/erp-api/internal/application/catalog"
	"github.com/invorya/erp-api/internal/application/dto"
	"github.com/invorya/erp-api/internal/domain/entity"
)

// CatalogHandler maneja las peticiones de datos maestros y documentos
// comerciales (create + list). Todos los recursos comparten el mismo caso de
// uso genérico; cada método ata la definición y el tipo concretos.
type CatalogHandler struct {
	uc *catalog.UseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *catalog.UseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// CreateProduct godoc
// @Summary      Crear producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  entity.Product  true  "Datos del producto"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /products [post]
func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	var p entity.Product
	if err := c.BodyParser(&p); err != nil {
		return badBody(c)
	}
	id, err := h.uc.Create(c.Context(), catalog.Products, &p, p.SKU)
	if err != nil {
		return respondError(c, err, catalog.Products.ConflictMessage)
	}
	// Los productos devuelven el documento completo con su id.
	return c.Status(fiber.StatusCreated).JSON(taggedRecord(id, &p))
}

// ListProducts godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Success      200  {array}  map[string]any
// @Router       /products [get]
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	return h.list(c, catalog.Products)
}

// CreateCustomer godoc
// @Summary      Crear cliente
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body  entity.Customer  true  "Datos del cliente"
// @Success      201   {object}  dto.CreateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /customers [post]
func (h *CatalogHandler) CreateCustomer(c *fiber.Ctx) error {
	var cu entity.Customer
	if err := c.BodyParser(&cu); err != nil {
		return badBody(c)
	}
	return h.created(c, catalog.Customers, &cu, "")
}

// ListCustomers godoc
// @Summary      Listar clientes
// @Tags         customers
// @Produce      json
// @Success      200  {array}  map[string]any
// @Router       /customers [get]
func (h *CatalogHandler) ListCustomers(c *fiber.Ctx) error {
	return h.list(c, catalog.Customers)
}

// CreateSupplier godoc
// @Summary      Crear proveedor
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        body  body  entity.Supplier  true  "Datos del proveedor"
// @Success      201   {object}  dto.CreateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /suppliers [post]
func (h *CatalogHandler) CreateSupplier(c *fiber.Ctx) error {
	var s entity.Supplier
	if err := c.BodyParser(&s); err != nil {
		return badBody(c)
	}
	return h.created(c, catalog.Suppliers, &s, "")
}

// ListSuppliers godoc
// @Summary      Listar proveedores
// @Tags         suppliers
// @Produce      json
// @Success      200  {array}  map[string]any
// @Router       /suppliers [get]
func (h *CatalogHandler) ListSuppliers(c *fiber.Ctx) error {
	return h.list(c, catalog.Suppliers)
}

// CreateTax godoc
// @Summary      Crear impuesto
// @Tags         taxes
// @Accept       json
// @Produce      json
// @Param        body  body  entity.Tax  true  "Datos del impuesto"
// @Success      201   {object}  dto.CreateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /taxes [post]
func (h *CatalogHandler) CreateTax(c *fiber.Ctx) error {
	var t entity.Tax
	if err := c.BodyParser(&t); err != nil {
		return badBody(c)
	}
	return h.created(c, catalog.Taxes, &t, "")
}

// ListTaxes godoc
// @Summary      Listar impuestos
// @Tags         taxes
// @Produce      json
// @Success      200  {array}  map[string]any
// @Router       /taxes [get]
func (h *CatalogHandler) ListTaxes(c *fiber.Ctx) error {
	return h.list(c, catalog.Taxes)
}

// CreateWarehouse godoc
// @Summary      Crear bodega
// @Tags         warehouses
// @Accept       json
// @Produce      json
// @Param        body  body  entity.Warehouse  true  "Datos de la bodega"
// @Success      201   {object}  dto.CreateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /warehouses [post]
func (h *CatalogHandler) CreateWarehouse(c *fiber.Ctx) error {
	var w entity.Warehouse
	if err := c.BodyParser(&w); err != nil {
		return badBody(c)
	}
	return h.created(c, catalog.Warehouses, &w, w.Code)
}

// ListWarehouses godoc
// @Summary      Listar bodegas
// @Tags         warehouses
// @Produce      json
// @Success      200  {array}  map[string]any
// @Router       /warehouses [get]
func (h *CatalogHandler) ListWarehouses(c *fiber.Ctx) error {
	return h.list(c, catalog.Warehouses)
}

// CreateSalesOrder godoc
// @Summary      Crear orden de venta
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  entity.SalesOrder  true  "Datos de la orden"
// @Success      201   {object}  dto.CreateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /sales/orders [post]
func (h *CatalogHandler) CreateSalesOrder(c *fiber.Ctx) error {
	var o entity.SalesOrder
	if err := c.BodyParser(&o); err != nil {
		return badBody(c)
	}
	return h.created(c, catalog.SalesOrders, &o, o.Number)
}

// ListSalesOrders godoc
// @Summary      Listar órdenes de venta
// @Tags         sales
// @Produce      json
// @Success      200  {array}  map[string]any
// @Router       /sales/orders [get]
func (h *CatalogHandler) ListSalesOrders(c *fiber.Ctx) error {
	return h.list(c, catalog.SalesOrders)
}

// CreateInvoice godoc
// @Summary      Crear factura
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body  entity.Invoice  true  "Datos de la factura"
// @Success      201   {object}  dto.CreateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /invoices [post]
func (h *CatalogHandler) CreateInvoice(c *fiber.Ctx) error {
	var inv entity.Invoice
	if err := c.BodyParser(&inv); err != nil {
		return badBody(c)
	}
	return h.created(c, catalog.Invoices, &inv, inv.Number)
}

// ListInvoices godoc
// @Summary      Listar facturas
// @Tags         invoices
// @Produce      json
// @Success      200  {array}  map[string]any
// @Router       /invoices [get]
func (h *CatalogHandler) ListInvoices(c *fiber.Ctx) error {
	return h.list(c, catalog.Invoices)
}

// CreatePayment godoc
// @Summary      Crear pago
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body  entity.Payment  true  "Datos del pago"
// @Success      201   {object}  dto.CreateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /payments [post]
func (h *CatalogHandler) CreatePayment(c *fiber.Ctx) error {
	var p entity.Payment
	if err := c.BodyParser(&p); err != nil {
		return badBody(c)
	}
	return h.created(c, catalog.Payments, &p, p.Number)
}

// ListPayments godoc
// @Summary      Listar pagos
// @Tags         payments
// @Produce      json
// @Success      200  {array}  map[string]any
// @Router       /payments [get]
func (h *CatalogHandler) ListPayments(c *fiber.Ctx) error {
	return h.list(c, catalog.Payments)
}

// created ejecuta el caso de uso de creación y responde {id}.
func (h *CatalogHandler) created(c *fiber.Ctx, def catalog.Definition, rec entity.Record, key string) error {
	id, err := h.uc.Create(c.Context(), def, rec, key)
	if err != nil {
		return respondError(c, err, def.ConflictMessage)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateResponse{ID: id})
}

func (h *CatalogHandler) list(c *fiber.Ctx, def catalog.Definition) error {
	out, err := h.uc.List(c.Context(), def)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}

// taggedRecord devuelve el registro como mapa con el id mezclado.
func taggedRecord(id string, rec entity.Record) map[string]any {
	b, err := json.Marshal(rec)
	if err != nil {
		return map[string]any{"id": id}
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return map[string]any{"id": id}
	}
	m["id"] = id
	return m
}
