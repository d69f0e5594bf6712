package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/erp-api/internal/application/analytics"
	"github.com/invorya/erp-api/internal/application/billing"
	"github.com/invorya/erp-api/internal/application/catalog"
	"github.com/invorya/erp-api/internal/application/inventory"
	"github.com/invorya/erp-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Store          repository.DocumentStore
	DBName         string
	DatabaseURLSet bool

	CatalogUC   *catalog.UseCase
	InventoryUC *inventory.UseCase
	InvoicePDF  *billing.PDFUseCase
	DashboardUC *analytics.DashboardUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Sistema
	systemHandler := NewSystemHandler(deps.Store, deps.DBName, deps.DatabaseURLSet)
	app.Get("/", systemHandler.Root)
	app.Get("/test", systemHandler.Test)

	schemaHandler := NewSchemaHandler()
	app.Get("/schema", schemaHandler.Schema)

	// Datos maestros
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	app.Post("/products", catalogHandler.CreateProduct)
	app.Get("/products", catalogHandler.ListProducts)
	app.Post("/customers", catalogHandler.CreateCustomer)
	app.Get("/customers", catalogHandler.ListCustomers)
	app.Post("/suppliers", catalogHandler.CreateSupplier)
	app.Get("/suppliers", catalogHandler.ListSuppliers)
	app.Post("/taxes", catalogHandler.CreateTax)
	app.Get("/taxes", catalogHandler.ListTaxes)
	app.Post("/warehouses", catalogHandler.CreateWarehouse)
	app.Get("/warehouses", catalogHandler.ListWarehouses)

	// Inventario
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, deps.CatalogUC)
	app.Post("/inventory/transactions", inventoryHandler.RecordTransaction)
	app.Get("/inventory/stock", inventoryHandler.ListStock)

	// Ventas
	app.Post("/sales/orders", catalogHandler.CreateSalesOrder)
	app.Get("/sales/orders", catalogHandler.ListSalesOrders)

	// Facturación
	invoiceHandler := NewInvoiceHandler(deps.InvoicePDF)
	app.Post("/invoices", catalogHandler.CreateInvoice)
	app.Get("/invoices", catalogHandler.ListInvoices)
	app.Get("/invoices/:id/pdf", invoiceHandler.InvoicePDF)
	app.Post("/payments", catalogHandler.CreatePayment)
	app.Get("/payments", catalogHandler.ListPayments)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	app.Get("/dashboard", dashboardHandler.Summary)
}
