package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/streadway/amqp"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/husseinfaraj7/odv-sub000/internal/config"
	"github.com/husseinfaraj7/odv-sub000/internal/handlers"
	"github.com/husseinfaraj7/odv-sub000/internal/middleware"
	"github.com/husseinfaraj7/odv-sub000/internal/models"
	"github.com/husseinfaraj7/odv-sub000/internal/repositories"
	"github.com/husseinfaraj7/odv-sub000/internal/services"
	"github.com/husseinfaraj7/odv-sub000/pkg/brevo"
	"github.com/husseinfaraj7/odv-sub000/pkg/rabbitmq"
)

func main() {
	_ = godotenv.Load()

	zlog, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer zlog.Sync()
	log := zlog.Sugar()

	// --- Configuration ---
	cfg, err := config.Load(log)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Database ---
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// The Supabase free tier allows few connections, keep the pool small.
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to access underlying sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(8)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := db.AutoMigrate(
		&models.ContactMessage{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.User{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// --- RabbitMQ (optional) ---
	var mqClient *rabbitmq.Client
	if cfg.RabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL}, log)
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	} else {
		log.Info("RABBITMQ_URL not set, order events are disabled")
	}

	// --- Email notifications (optional) ---
	var notifier services.Notifier
	if cfg.BrevoAPIKey != "" {
		brevoClient := brevo.NewClient(cfg.BrevoAPIKey)
		notifier = services.NewEmailNotifier(brevoClient, cfg.SenderName, cfg.SenderEmail, cfg.AdminEmail)
	}

	// --- Repositories ---
	contactRepo := repositories.NewGORMContactRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)

	// --- Services ---
	contactService := services.NewContactService(contactRepo, notifier, log)
	productService := services.NewProductService(productRepo)
	var publisher services.EventPublisher
	if mqClient != nil {
		publisher = mqClient
	}
	orderService := services.NewOrderService(orderRepo, notifier, publisher, log)
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, log)

	// --- Handlers ---
	contactHandler := handlers.NewContactHandler(contactService)
	productHandler := handlers.NewProductHandler(productService)
	orderHandler := handlers.NewOrderHandler(orderService)
	authHandler := handlers.NewAuthHandler(authService)
	adminOnly := middleware.AuthRequired(authService)

	// --- Fiber app ---
	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	api := app.Group("/api")
	authHandler.RegisterRoutes(api)
	contactHandler.RegisterRoutes(api, adminOnly)
	productHandler.RegisterRoutes(api, adminOnly)
	orderHandler.RegisterRoutes(api, adminOnly)

	handlers.NewHealthHandler(sqlDB, mqClient != nil).RegisterRoutes(app)

	// --- Order events consumer ---
	// Back-office tooling normally consumes these; keeping a logging consumer
	// here makes the event flow visible in small deployments.
	if mqClient != nil {
		if err := mqClient.ConsumeOrderEvents(func(msg amqp.Delivery) error {
			log.Infow("order event received", "delivery_tag", msg.DeliveryTag, "body", string(msg.Body))
			return nil
		}); err != nil {
			log.Errorf("Failed to start order events consumer: %v", err)
		}
	}

	// --- Start HTTP server with graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Infof("Starting server on %s", cfg.ListenAddr)
		if err := app.Listen(cfg.ListenAddr); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Info("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Errorf("Error during shutdown: %v", err)
	}
	log.Info("Server stopped")
}
