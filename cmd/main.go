package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	adminapp "github.com/muhammadheryan/kidswear/application/admin"
	"github.com/muhammadheryan/kidswear/application/notification"
	orderapp "github.com/muhammadheryan/kidswear/application/order"
	paymentapp "github.com/muhammadheryan/kidswear/application/payment"
	productapp "github.com/muhammadheryan/kidswear/application/product"
	"github.com/muhammadheryan/kidswear/cmd/config"
	redisclient "github.com/muhammadheryan/kidswear/cmd/redis"
	_ "github.com/muhammadheryan/kidswear/docs"
	orderRepo "github.com/muhammadheryan/kidswear/repository/order"
	paymentEventRepo "github.com/muhammadheryan/kidswear/repository/paymentevent"
	productRepo "github.com/muhammadheryan/kidswear/repository/product"
	"github.com/muhammadheryan/kidswear/repository/recordstore"
	redisRepo "github.com/muhammadheryan/kidswear/repository/redis"
	"github.com/muhammadheryan/kidswear/thirdparty/email"
	"github.com/muhammadheryan/kidswear/thirdparty/rabbitmq"
	"github.com/muhammadheryan/kidswear/thirdparty/whatsapp"
	"github.com/muhammadheryan/kidswear/transport"
	"github.com/muhammadheryan/kidswear/utils/logger"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// @title KIDSWEAR API
// @version 1.0
// @description Kidswear storefront order and payment API
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	if err := logger.Init(logger.Options{
		Environment: cfg.Environment,
		Level:       cfg.LogLevel,
		Service:     "kidswear",
	}); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Record store. A missing configuration keeps the server up and
	// answers data routes with 503.
	var tableClient recordstore.TableClient
	httpClient, err := recordstore.NewHTTPClient(cfg.RecordStore)
	if err != nil {
		logger.Warn("record store not configured", zap.Error(err))
		tableClient = recordstore.Unavailable(err)
	} else {
		tableClient = httpClient
	}

	profile, err := recordstore.NewProfile(cfg.RecordStore.Profile)
	if err != nil {
		logger.Fatal("invalid schema profile", zap.String("profile", cfg.RecordStore.Profile), zap.Error(err))
	}
	tables := recordstore.TablesFromConfig(cfg.RecordStore)

	// Redis holds admin sessions and the catalog cache. Without it the
	// catalog is read through and admin login is disabled.
	var redisClient *goredis.Client
	if c, err := redisclient.New(ctx, cfg); err != nil {
		logger.Warn("redis unavailable", zap.Error(err))
	} else {
		redisClient = c
		defer func() {
			_ = redisClient.Close()
		}()
	}
	RedisRepo := redisRepo.NewRepository(redisClient)
	var sessions redisRepo.Repository
	if redisClient != nil {
		sessions = RedisRepo
	}

	// Payment event journal
	var PaymentEventRepo paymentEventRepo.PaymentEventRepository
	if cfg.Database.Host != "" {
		db, err := sqlx.Connect("mysql", cfg.GetDSN())
		if err != nil {
			logger.Fatal("err connect db", zap.Error(err))
		}
		defer db.Close()

		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

		PaymentEventRepo = paymentEventRepo.NewPaymentEventRepository(db)
	}

	// Initialize repositories
	OrderRepo := orderRepo.NewOrderRepository(tableClient, profile, tables)
	ProductRepo := productRepo.NewCachedProductRepository(
		productRepo.NewProductRepository(tableClient, profile, tables),
		RedisRepo,
		cfg.Catalog.CacheTTL,
	)

	// Notifications
	dispatcher := notification.NewDispatcher(
		email.NewClient(cfg.Email),
		whatsapp.NewClient(cfg.WhatsApp),
		notification.TemplatesFromConfig(cfg.WhatsApp),
		cfg.WhatsApp.AdminRecipients,
	)
	notifier := dispatcher
	if cfg.RabbitMQ.Host != "" {
		publisher, err := rabbitmq.NewPublisher(cfg.GetRabbitMQURL())
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer publisher.Close()

		consumer, err := rabbitmq.NewConsumer(cfg.GetRabbitMQURL(), dispatcher)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer consumer.Close()

		if err := consumer.Start(ctx); err != nil {
			logger.Fatal("err start notification consumer", zap.Error(err))
		}
		notifier = notification.NewQueueNotifier(publisher, dispatcher)
	}

	// Initialize application layers
	OrderApp := orderapp.NewOrderApp(OrderRepo, ProductRepo, notifier)
	PaymentApp := paymentapp.NewPaymentApp(cfg, OrderRepo, PaymentEventRepo, notifier)
	ProductApp := productapp.NewProductApp(ProductRepo)
	AdminApp := adminapp.NewAdminApp(cfg, sessions)

	httpTransport := transport.NewTransport(&transport.RestHandler{
		Config:     cfg,
		OrderApp:   OrderApp,
		PaymentApp: PaymentApp,
		ProductApp: ProductApp,
		AdminApp:   AdminApp,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
