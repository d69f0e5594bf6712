package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	"github.com/invorya/erp-api/internal/application/analytics"
	"github.com/invorya/erp-api/internal/application/billing"
	"github.com/invorya/erp-api/internal/application/catalog"
	"github.com/invorya/erp-api/internal/application/inventory"
	"github.com/invorya/erp-api/internal/application/validate"
	infradoc "github.com/invorya/erp-api/internal/infrastructure/document"
	infrapdf "github.com/invorya/erp-api/internal/infrastructure/pdf"
	"github.com/invorya/erp-api/internal/domain/repository"
	httpRouter "github.com/invorya/erp-api/internal/interfaces/http"
	"github.com/invorya/erp-api/pkg/config"
	"github.com/invorya/erp-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Los decimales se serializan como números JSON, no como strings.
	decimal.MarshalJSONWithoutQuotes = true

	// El servicio arranca aunque la base de datos no esté disponible:
	// los endpoints de datos responden STORE_UNAVAILABLE y /test lo reporta.
	var store repository.DocumentStore
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	pool, err := infradoc.NewPool(ctx, cfg.DB)
	cancel()
	if err != nil {
		log.Warn().Err(err).Msg("conexión a PostgreSQL no disponible, arrancando sin almacén")
	} else {
		defer pool.Close()
		docStore := infradoc.NewStore(pool)
		if err := docStore.EnsureSchema(context.Background()); err != nil {
			log.Warn().Err(err).Msg("inicializar esquema de documentos")
		}
		store = docStore
	}

	validator := validate.New()
	catalogUC := catalog.NewUseCase(store, validator)
	inventoryUC := inventory.NewUseCase(store, validator)
	pdfGenerator := infrapdf.NewMarotoInvoiceGenerator()
	invoicePDFUC := billing.NewPDFUseCase(store, pdfGenerator)
	dashboardUC := analytics.NewDashboardUseCase(store)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New()) // permite cualquier origen

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Invorya ERP API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		Store:          store,
		DBName:         cfg.DB.DBName,
		DatabaseURLSet: cfg.DB.DatabaseURL != "",
		CatalogUC:      catalogUC,
		InventoryUC:    inventoryUC,
		InvoicePDF:     invoicePDFUC,
		DashboardUC:    dashboardUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
