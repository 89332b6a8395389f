package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/gin-gonic/gin"
	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/cache"
	apperrors "github.com/yaksha-ameet-khemani/e-mall-pro-connect/common/errors"
	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/common/logger"
	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/common/middleware"
	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/controllers"
	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/database"
	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/events"
	awspkg "github.com/yaksha-ameet-khemani/e-mall-pro-connect/pkg/aws"
	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/repository"
	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/routes"
	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/services"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const serviceName = "e-mall-pro-connect"

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	zl, err := logger.New(cfg.AppEnv)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer zl.Sync()
	zap.ReplaceGlobals(zl)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := controllers.RegisterValidators(); err != nil {
		zl.Fatal("Validator registration failed", zap.Error(err))
	}

	// --- Database ---
	client, db, err := database.Connect(context.Background(), cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		zl.Fatal("DB connection failed", zap.Error(err))
	}
	idxCtx, idxCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureIndexes(idxCtx, db); err != nil {
		zl.Warn("Index creation failed (non-fatal)", zap.Error(err))
	}
	idxCancel()

	// --- AWS setup ---
	awsCfg, awsErr := awspkg.LoadAWSConfig(context.Background())
	if awsErr != nil {
		zl.Warn("AWS config unavailable (non-fatal)", zap.Error(awsErr))
	}

	var opts []services.Option

	if cfg.RedisURL != "" {
		rctx, rcancel := context.WithTimeout(context.Background(), 5*time.Second)
		rdb, err := cache.NewRedisClient(rctx, cfg.RedisURL)
		rcancel()
		if err != nil {
			zl.Warn("Redis unavailable, product cache disabled", zap.Error(err))
		} else {
			defer rdb.Close()
			opts = append(opts, services.WithProductCache(cache.NewProductCache(rdb, cfg.ProductCacheTTL, zl)))
		}
	}

	publisher, err := newPublisher(cfg, awsCfg, awsErr)
	if err != nil {
		zl.Fatal("Event publisher init failed", zap.Error(err))
	}
	opts = append(opts, services.WithEventPublisher(publisher))

	var metricsClient *awspkg.MetricsClient
	if awsErr == nil {
		metricsClient = awspkg.NewMetricsClient(awsCfg, cfg.CloudWatchNamespace, cfg.CloudWatchEnabled)
		opts = append(opts, services.WithMetrics(metricsClient))
	}

	if cfg.S3Bucket != "" && awsErr == nil {
		opts = append(opts, services.WithImagePresigner(
			awspkg.NewS3Presigner(awsCfg, cfg.S3Bucket, 15*time.Minute), cfg.S3Prefix))
	}

	// --- Dependency injection ---
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	blogRepo := repository.NewBlogRepository(db)

	userService := services.NewUserService(userRepo, productRepo, services.NewPasswordPolicy(bcrypt.DefaultCost), zl)
	productService := services.NewProductService(productRepo, cartRepo, orderRepo, zl, opts...)
	orderService := services.NewOrderService(orderRepo, zl, opts...)
	blogService := services.NewBlogService(blogRepo, zl)
	adminService := services.NewAdminService(userRepo, productRepo, orderRepo, blogRepo, zl)

	// --- HTTP router ---
	r := gin.New()
	r.Use(apperrors.Recovery(zl))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(zl))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.RateLimitMiddleware(cfg.RateLimitRPM, cfg.RateLimitRPM))
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	if metricsClient != nil {
		r.Use(middleware.MetricsMiddleware(metricsClient, serviceName))
	}
	r.Use(apperrors.ErrorMiddleware(zl))

	routes.RegisterRoutes(r, routes.Controllers{
		Users:    controllers.NewUserController(userService, zl),
		Products: controllers.NewProductController(productService, zl),
		Orders:   controllers.NewOrderController(orderService, zl),
		Blogs:    controllers.NewBlogController(blogService, zl),
		Admin:    controllers.NewAdminController(adminService, zl),
	})
	routes.RegisterHealthRoute(r, func(ctx context.Context) error {
		return client.Ping(ctx, readpref.Primary())
	})

	// --- HTTP server ---
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		zl.Info("Server started", zap.String("port", cfg.Port), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server failed", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zl.Info("Initiating graceful shutdown...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("Server shutdown error", zap.Error(err))
	}
	if err := publisher.Close(); err != nil {
		zl.Error("Event publisher close error", zap.Error(err))
	}
	if err := database.Close(client); err != nil {
		zl.Error("Database close error", zap.Error(err))
	}
	zl.Info("Server stopped gracefully")
}

// newPublisher builds the order-event publisher for the configured backend.
func newPublisher(cfg *Config, awsCfg sdkaws.Config, awsErr error) (events.Publisher, error) {
	switch cfg.EventsBackend {
	case EventsBackendSNS:
		if awsErr != nil {
			return nil, awsErr
		}
		return events.NewSNSPublisher(awspkg.NewSNSClient(awsCfg), cfg.SNSOrderTopicARN), nil
	case EventsBackendKafka:
		return events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaOrderTopic), nil
	default:
		return events.NoopPublisher{}, nil
	}
}
