package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"boutique/internal/config"
	"boutique/internal/handlers"
	"boutique/internal/models"
	"boutique/internal/repositories"
	"boutique/internal/services"
	"boutique/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// --- Initialize the store ---
	// MongoDB is the primary backend; SQLite is a drop-in alternative for
	// single-file deployments and tests. Storage initialization failure is
	// the only fatal error in the process.
	productRepo, cartRepo, orderRepo, err := buildRepositories(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}

	// --- Initialize RabbitMQ (optional) ---
	var publisher services.EventPublisher
	var mqClient *rabbitmq.Client
	if cfg.RabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		publisher = mqClient
	} else {
		log.Println("RABBITMQ_URL not set; order events disabled")
	}

	// --- Initialize Services ---
	productService := services.NewProductService(productRepo)
	cartService := services.NewCartService(cartRepo, productRepo)
	orderService := services.NewOrderService(orderRepo, cartRepo, productRepo, publisher)

	// Seed the catalog on an empty store.
	if err := productService.SeedCatalog(ctx); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}

	// --- Initialize Handlers ---
	productHandler := handlers.NewProductHandler(productService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New())
	app.Use(cors.New())

	// --- API Routes ---
	api := app.Group("/api")
	productHandler.RegisterRoutes(api)
	cartHandler.RegisterRoutes(api)
	orderHandler.RegisterRoutes(api)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"store":  cfg.StoreDriver,
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// buildRepositories wires the repository set for the configured store
// driver.
func buildRepositories(ctx context.Context, cfg *config.Config) (repositories.ProductRepository, repositories.CartRepository, repositories.OrderRepository, error) {
	switch cfg.StoreDriver {
	case config.DriverMongo:
		db, err := repositories.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, nil, nil, err
		}
		log.Println("MongoDB connected successfully")

		orderRepo := repositories.NewMongoOrderRepository(db)
		if err := orderRepo.CreateIndexes(ctx); err != nil {
			return nil, nil, nil, err
		}
		return repositories.NewMongoProductRepository(db),
			repositories.NewMongoCartRepository(db),
			orderRepo,
			nil

	case config.DriverSQLite:
		db, err := gorm.Open(sqlite.Open(cfg.SQLiteDSN), &gorm.Config{})
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to open SQLite database: %w", err)
		}
		if err := db.AutoMigrate(&models.Product{}, &models.CartItem{}, &models.Order{}); err != nil {
			return nil, nil, nil, fmt.Errorf("failed to migrate SQLite schema: %w", err)
		}
		log.Println("SQLite database connected")

		return repositories.NewGORMProductRepository(db),
			repositories.NewGORMCartRepository(db),
			repositories.NewGORMOrderRepository(db),
			nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
