package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/inkwellbooks/bookshop-order-service/internal/app/background"
	"github.com/inkwellbooks/bookshop-order-service/internal/config"
	httpdelivery "github.com/inkwellbooks/bookshop-order-service/internal/delivery/http"
	"github.com/inkwellbooks/bookshop-order-service/internal/delivery/http/handlers"
	"github.com/inkwellbooks/bookshop-order-service/internal/infrastructure/gateway"
	"github.com/inkwellbooks/bookshop-order-service/internal/infrastructure/invoice"
	publisher "github.com/inkwellbooks/bookshop-order-service/internal/infrastructure/kafka"
	"github.com/inkwellbooks/bookshop-order-service/internal/infrastructure/metrics"
	"github.com/inkwellbooks/bookshop-order-service/internal/infrastructure/migrate"
	"github.com/inkwellbooks/bookshop-order-service/internal/infrastructure/notifier"
	"github.com/inkwellbooks/bookshop-order-service/internal/infrastructure/postgres"
	"github.com/inkwellbooks/bookshop-order-service/internal/infrastructure/postgres/repository"
	"github.com/inkwellbooks/bookshop-order-service/internal/usecase"
	"github.com/inkwellbooks/bookshop-order-service/internal/usecase/order"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	setupLogger(cfg.LogConfig)
	// Init database
	db := postgres.MustInitDB(cfg)
	if cfg.OrderDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.OrderDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Gateway codec
	codec, err := gateway.NewCodec(
		cfg.Gateway.MerchantID,
		cfg.Gateway.HashKey,
		cfg.Gateway.HashIV,
		cfg.Gateway.PayGateURL,
		cfg.Gateway.Version,
	)
	if err != nil {
		log.Fatalf("failed to init gateway codec: %v", err)
	}

	// Kafka order events
	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	pub := publisher.NewDefaultKafkaPublisher(brokers, cfg.KafkaService.Topic)
	defer pub.Close()

	// Repositories
	pendingOrderRepo := repository.NewDefaultPendingOrderRepository(db)
	orderRepo := repository.NewDefaultOrderRepository(db)
	productRepo := repository.NewDefaultProductRepository(db)
	discountRepo := repository.NewDefaultDiscountRepository(db)
	paymentTxRepo := repository.NewDefaultPaymentTransactionRepository(db)
	txManager := repository.NewGormTxManager(db)

	// Side-effect collaborators
	invoiceIssuer := invoice.NewHTTPInvoiceIssuer(cfg.InvoiceService.BaseURL, cfg.InvoiceService.APIKey)
	mailNotifier := notifier.NewSMTPNotifier(cfg.SMTP)

	// Metrics
	orderMetrics := metrics.NewOrderMetrics(prometheus.DefaultRegisterer)

	// Usecases
	discountUC := usecase.NewDefaultDiscountUsecase(discountRepo)
	reservationUC := usecase.NewDefaultReservationUsecase(
		pendingOrderRepo,
		productRepo,
		discountUC,
		codec,
		cfg.Gateway.ReturnURL,
		cfg.Gateway.NotifyURL,
		orderMetrics,
	)
	orderUC := order.NewDefaultOrderUsecase(
		txManager,
		pendingOrderRepo,
		orderRepo,
		paymentTxRepo,
		codec,
		invoiceIssuer,
		mailNotifier,
		pub,
		orderMetrics,
	)

	// Background tasks
	tasks := background.NewBackgroundTasks(orderUC)
	tasks.StartAll(context.Background())

	// HTTP server
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	httpdelivery.RegisterRoutes(
		r,
		handlers.NewCheckoutHandler(reservationUC),
		handlers.NewPaymentHandler(orderUC, cfg.Frontend),
		handlers.NewDiscountHandler(discountUC),
		handlers.NewOrderHandler(orderUC),
	)

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("HTTP server started on %s\n", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}

func setupLogger(cfg config.LogConfig) {
	level := slog.LevelInfo
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	out := os.Stdout
	if cfg.LogOutput == "stderr" {
		out = os.Stderr
	}

	var handler slog.Handler
	if cfg.LogFormat == "text" {
		handler = slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))
}
