package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/avkrasnov/delivery-store/internal/auth"
	cartAPI "github.com/avkrasnov/delivery-store/internal/cart/api"
	cartRepo "github.com/avkrasnov/delivery-store/internal/cart/repository"
	cartService "github.com/avkrasnov/delivery-store/internal/cart/service"
	catalogAPI "github.com/avkrasnov/delivery-store/internal/catalog/api"
	catalogRepo "github.com/avkrasnov/delivery-store/internal/catalog/repository"
	catalogService "github.com/avkrasnov/delivery-store/internal/catalog/service"
	favoriteAPI "github.com/avkrasnov/delivery-store/internal/favorite/api"
	favoriteRepo "github.com/avkrasnov/delivery-store/internal/favorite/repository"
	favoriteService "github.com/avkrasnov/delivery-store/internal/favorite/service"
	orderAPI "github.com/avkrasnov/delivery-store/internal/order/api"
	orderRepo "github.com/avkrasnov/delivery-store/internal/order/repository"
	orderService "github.com/avkrasnov/delivery-store/internal/order/service"
	"github.com/avkrasnov/delivery-store/internal/platform/cache"
	"github.com/avkrasnov/delivery-store/internal/platform/config"
	"github.com/avkrasnov/delivery-store/internal/platform/database"
	"github.com/avkrasnov/delivery-store/internal/platform/events"
	"github.com/avkrasnov/delivery-store/internal/platform/logger"
	reviewAPI "github.com/avkrasnov/delivery-store/internal/review/api"
	reviewRepo "github.com/avkrasnov/delivery-store/internal/review/repository"
	reviewService "github.com/avkrasnov/delivery-store/internal/review/service"
	userAPI "github.com/avkrasnov/delivery-store/internal/user/api"
	userRepo "github.com/avkrasnov/delivery-store/internal/user/repository"
	userService "github.com/avkrasnov/delivery-store/internal/user/service"
)

func main() {
	_ = godotenv.Load()

	dbCfg := config.LoadDBConfig()
	serverCfg := config.LoadServerConfig("8080")
	cacheCfg := config.LoadCacheConfig()
	eventsCfg := config.LoadEventsConfig()

	logger.Info("Starting delivery-store backend...")

	db, err := database.Connect(dbCfg.DSN)
	if err != nil {
		logger.Error("Failed to connect to database", err)
		return
	}
	defer db.Close()

	listingCache := cache.New(cacheCfg.RedisAddr)
	defer listingCache.Close()
	if listingCache != nil {
		logger.Info("Listing cache enabled at " + cacheCfg.RedisAddr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The producer outlives the HTTP server: requests still draining during
	// shutdown can publish, so its context is cancelled only after Shutdown
	// returns.
	producerCtx, stopProducer := context.WithCancel(context.Background())
	defer stopProducer()

	producer := events.NewProducer(eventsCfg.KafkaBrokers, eventsCfg.Topic, 256)
	producer.Start(producerCtx)
	if producer != nil {
		logger.Info("Order event producer enabled, topic " + eventsCfg.Topic)
	}

	staleAge := time.Duration(config.GetEnvAsInt("PENDING_ORDER_STALE_MINUTES", 60)) * time.Minute

	catalogRepository := catalogRepo.NewPostgresCatalogRepository(db)
	orderRepository := orderRepo.NewPostgresOrderRepository(db)
	userRepository := userRepo.NewPostgresUserRepository(db)
	reviewRepository := reviewRepo.NewPostgresReviewRepository(db)
	favoriteRepository := favoriteRepo.NewPostgresFavoriteRepository(db)
	cartRepository := cartRepo.NewPostgresCartRepository(db)

	catService := catalogService.NewCatalogService(catalogRepository, listingCache)
	ordService := orderService.NewOrderService(orderRepository, catalogRepository, database.NewTxBeginner(db), producer, staleAge)
	defer ordService.StopScheduler()
	usrService := userService.NewUserService(userRepository)
	revService := reviewService.NewReviewService(reviewRepository)
	favService := favoriteService.NewFavoriteService(favoriteRepository)
	crtService := cartService.NewCartService(cartRepository)

	router := gin.Default()
	router.Use(auth.RequestID())
	api := router.Group(serverCfg.BasePath)

	catalogAPI.NewCatalogHandler(catService).RegisterRoutes(api)
	orderAPI.NewOrderHandler(ordService).RegisterRoutes(api)
	userAPI.NewUserHandler(usrService).RegisterRoutes(api)
	reviewAPI.NewReviewHandler(revService).RegisterRoutes(api)
	favoriteAPI.NewFavoriteHandler(favService).RegisterRoutes(api)
	cartAPI.NewCartHandler(crtService).RegisterRoutes(api)

	srv := &http.Server{
		Addr:    serverCfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Delivery store backend running on port %s, base path %s", serverCfg.Port, serverCfg.BasePath)
		if errSrv := srv.ListenAndServe(); errSrv != nil && !errors.Is(errSrv, http.ErrServerClosed) {
			logger.Error("Failed to run server", errSrv)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if errShut := srv.Shutdown(shutdownCtx); errShut != nil {
		logger.Error("Failed to shut down server cleanly", errShut)
	}

	// Server drained; cancel the producer and wait for it to flush.
	stopProducer()
	producer.WaitClosed()
}
