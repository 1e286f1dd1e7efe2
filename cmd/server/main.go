package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shreyat81/e-com-mart/internal/cache"
	"github.com/shreyat81/e-com-mart/internal/cart"
	"github.com/shreyat81/e-com-mart/internal/catalog"
	"github.com/shreyat81/e-com-mart/internal/checkout"
	"github.com/shreyat81/e-com-mart/internal/events"
	"github.com/shreyat81/e-com-mart/internal/fakestore"
	h "github.com/shreyat81/e-com-mart/internal/http"
	"github.com/shreyat81/e-com-mart/internal/orders"
	"github.com/shreyat81/e-com-mart/internal/pricing"
	"github.com/shreyat81/e-com-mart/internal/validation"
)

type Config struct {
	HTTPPort        string
	MongoURI        string
	MongoDatabase   string
	RedisAddr       string
	KafkaBrokers    string
	FakeStoreURL    string
	Postgres        orders.Credentials
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:      getEnv("HTTP_PORT", "5001"),
		MongoURI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGODB_DATABASE", "ecommart"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		KafkaBrokers:  getEnv("KAFKA_BROKERS", ""),
		FakeStoreURL:  getEnv("FAKESTORE_URL", fakestore.DefaultBaseURL),
		Postgres: orders.Credentials{
			Host:              getEnv("POSTGRES_HOST", "localhost"),
			Port:              getEnvInt("POSTGRES_PORT", 5432),
			User:              getEnv("POSTGRES_USER", "postgres"),
			Password:          getEnv("POSTGRES_PASSWORD", "postgres"),
			DBName:            getEnv("POSTGRES_DB", "ecommart"),
			MigrationsDirPath: getEnv("MIGRATIONS_PATH", "./internal/orders/migrations"),
		},
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func main() {
	cfg := loadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	db, err := catalog.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDatabase)
	cancel()
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}

	catalogRepo := catalog.NewMongoRepository(db)
	cartRepo := cart.NewMongoRepository(db)

	idxCtx, idxCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := catalogRepo.CreateIndexes(idxCtx); err != nil {
		log.Printf("failed to create catalog indexes: %v", err)
	}
	if err := cartRepo.CreateIndexes(idxCtx); err != nil {
		log.Printf("failed to create cart indexes: %v", err)
	}
	idxCancel()

	orderRepo, err := orders.NewRepository(&cfg.Postgres)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer orderRepo.Close()

	if err := orderRepo.RunMigrations(&cfg.Postgres); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}
	log.Println("migrations completed successfully")

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	cartCache := cache.NewRedisCache(redisClient)

	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.KafkaBrokers != "" {
		kp := events.NewKafkaPublisher(strings.Split(cfg.KafkaBrokers, ",")...)
		defer kp.Close()
		publisher = kp
	}

	couponStore := pricing.NewMemoryCouponStore()
	calc := pricing.NewCalculator(pricing.DefaultRules(), couponStore)

	cartService := cart.NewService(cartRepo, catalogRepo, cartCache)
	checkoutService := checkout.NewService(cartService, orderRepo, calc, couponStore, publisher)

	v := validation.New()

	router := h.NewRouter(h.Handlers{
		Products:  h.NewProductHandler(catalogRepo, cfg.RequestTimeout),
		Cart:      h.NewCartHandler(cartService, calc, v, cfg.RequestTimeout),
		Coupons:   h.NewCouponHandler(cartService, calc, v, cfg.RequestTimeout),
		Checkout:  h.NewCheckoutHandler(checkoutService, v, cfg.RequestTimeout),
		Orders:    h.NewOrdersHandler(orderRepo, cfg.RequestTimeout),
		FakeStore: h.NewFakeStoreHandler(fakestore.NewClient(cfg.FakeStoreURL), catalogRepo, cfg.RequestTimeout),
	}, cfg.RequestTimeout)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("server starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}
