package routes

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"comanda/internal/adapter/http/handlers"
	"comanda/internal/adapter/persistence/repository"
	"comanda/internal/adapter/realtime"
	sessionstore "comanda/internal/adapter/session"
	"comanda/internal/infrastructure/cache"
	"comanda/internal/infrastructure/config"
	"comanda/internal/infrastructure/database"
	"comanda/internal/infrastructure/logger"
	"comanda/internal/infrastructure/metrics"
	"comanda/internal/infrastructure/payments"
	"comanda/internal/usecase"
	"comanda/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.New()

// Run will start the server
func Run() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	restore, err := logger.Install(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer restore()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	getRoutes(cfg)

	zap.L().Info("[server] listening", zap.Int("port", cfg.Server.Port))
	if err := router.Run(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
		zap.L().Fatal("[server] failed to startup the application", zap.Error(err))
	}
}

func getRoutes(cfg *config.Config) {
	ctx := context.Background()

	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		zap.L().Fatal("[server] dynamodb unavailable", zap.Error(err))
	}
	tables := repository.Tables(cfg.Tables)

	restaurantRepo := repository.NewRestaurantDynamoRepository(ddb, tables)
	menuRepo := repository.NewMenuDynamoRepository(ddb, tables)
	orderRepo := repository.NewOrderDynamoRepository(ddb, tables)
	itemRepo := repository.NewOrderItemDynamoRepository(ddb, tables)
	guestRepo := repository.NewGuestDynamoRepository(ddb, tables)
	reviewRepo := repository.NewReviewDynamoRepository(ddb, tables)

	publisher, subscriber, sessions := eventsAndSessions(ctx, cfg.Redis)

	gateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPago.AccessToken, cfg.MercadoPago.Mock)
	if err != nil {
		zap.L().Fatal("[server] payment gateway", zap.Error(err))
	}

	sessionUseCase := usecase.NewSessionUseCase(restaurantRepo, orderRepo, sessions, cfg.Session.TTL)
	guestUseCase := usecase.NewGuestUseCase(restaurantRepo, guestRepo, itemRepo, orderRepo)
	menuUseCase := usecase.NewMenuUseCase(restaurantRepo, menuRepo)
	cartUseCase := usecase.NewCartUseCase(restaurantRepo, menuRepo, orderRepo, guestRepo, itemRepo, publisher)
	orderUseCase := usecase.NewOrderUseCase(restaurantRepo, menuRepo, orderRepo, guestRepo, itemRepo, publisher)
	splitUseCase := usecase.NewSplitUseCase(restaurantRepo, menuRepo, orderRepo, guestRepo, itemRepo, publisher)
	paymentUseCase := usecase.NewPaymentUseCase(restaurantRepo, menuRepo, orderRepo, guestRepo, itemRepo, gateway, publisher, cfg.Payments.ReturnURL)
	reviewUseCase := usecase.NewReviewUseCase(restaurantRepo, orderRepo, guestRepo, itemRepo, reviewRepo)

	sessionHandler := handlers.NewSessionHandler(sessionUseCase, cfg.Session.Cookie, cfg.Session.TTL)
	guestHandler := handlers.NewGuestHandler(guestUseCase)
	menuHandler := handlers.NewMenuHandler(menuUseCase)
	cartHandler := handlers.NewCartHandler(cartUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	splitHandler := handlers.NewSplitHandler(splitUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	reviewHandler := handlers.NewReviewHandler(reviewUseCase)
	streamHandler := handlers.NewStreamHandler(orderUseCase, subscriber)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addSessionRoutes(v1, sessionHandler)
	addMenuRoutes(v1, menuHandler)
	addTableRoutes(v1, tableHandlers{
		guests:  guestHandler,
		cart:    cartHandler,
		orders:  orderHandler,
		split:   splitHandler,
		payment: paymentHandler,
		reviews: reviewHandler,
		stream:  streamHandler,
	})
	addPaymentRoutes(v1, paymentHandler)
	addKitchenRoutes(v1, orderHandler)
	addStaffRoutes(v1, paymentHandler)
}

// eventsAndSessions picks Redis for fan-out and sessions, or the in-process
// hub and memory store when Redis is disabled.
func eventsAndSessions(ctx context.Context, cfg config.RedisConfig) (interfaces.IEventPublisher, interfaces.IEventSubscriber, interfaces.ISessionStore) {
	if !cfg.Enabled {
		zap.L().Warn("[server] redis disabled, running single instance")
		hub := realtime.NewHub()
		return hub, hub, sessionstore.NewMemorySessionStore()
	}
	client, err := cache.ConnectRedis(ctx, cfg)
	if err != nil {
		zap.L().Fatal("[server] redis unavailable", zap.String("addr", cfg.Addr), zap.Error(err))
	}
	bus := realtime.NewRedisBus(client)
	return bus, bus, sessionstore.NewRedisSessionStore(client)
}

func setMiddlewares() {
	router.Use(loggerMiddleware(zap.L()))
	router.Use(metrics.Middleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		zap.L().Error("[server] recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}

func loggerMiddleware(l *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		l.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
