package config

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/internal/api/handlers"
	"FoodShare-Backend/internal/api/routes"
	"FoodShare-Backend/internal/metrics"
	"FoodShare-Backend/internal/middleware"
	"FoodShare-Backend/internal/utils"
	"FoodShare-Backend/internal/utils/mailing"
	"FoodShare-Backend/internal/utils/storage"
	"FoodShare-Backend/pkg/analytics"
	"FoodShare-Backend/pkg/event"
	"FoodShare-Backend/pkg/events"
	"FoodShare-Backend/pkg/jwt"
	"FoodShare-Backend/pkg/listing"
	"FoodShare-Backend/pkg/ngo"
	"FoodShare-Backend/pkg/notification"
	"FoodShare-Backend/pkg/request"
	"FoodShare-Backend/pkg/user"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App is the assembled server. Close flushes pending mail and the event
// producer and must be called after the fiber app has shut down.
type App struct {
	Fiber   *fiber.App
	Scanner *listing.ExpiryScanner

	notifications notification.NotificationService
	publisher     *events.Publisher
}

func (a *App) Close() error {
	a.notifications.Close()
	return a.publisher.Close()
}

func NewApp(ctx context.Context, db *gorm.DB, log *zap.Logger) (*App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	app.Use(recover.New(recover.Config{EnableStackTrace: true}))
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	if err := os.MkdirAll("./logs", os.ModePerm); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, fmt.Errorf("open access log: %w", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3, err := storage.NewAwsS3(storage.LoadS3Config())
	if err != nil {
		return nil, err
	}
	publisher := events.NewPublisher(newProducer(log), log)

	var mailer mailing.Mailer
	if utils.GetConfigBool("MAIL_ENABLED") {
		mailer = mailing.NewMailer(mailing.LoadMailConfig())
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	foodRepository := listing.NewFoodRepository(db)
	notificationRepository := notification.NewNotificationRepository(db)
	ngoRepository := ngo.NewNGORepository(db)
	eventRepository := event.NewEventRepository(db)
	requestRepository := request.NewRequestRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, log)
	notificationService := notification.NewNotificationService(
		notificationRepository,
		userService,
		mailer,
		utils.GetConfig("APP_URL"),
		publisher,
		log,
	)
	requestService := request.NewRequestService(requestRepository, notificationService, log)
	ngoService := ngo.NewNGOService(ngoRepository)
	eventService := event.NewEventService(eventRepository)

	// Listings
	store := listing.NewStore()
	if err := store.LoadInitialData(ctx, foodRepository); err != nil {
		return nil, fmt.Errorf("load listings: %w", err)
	}
	controller := listing.NewController(store, notificationService, log,
		listing.WithPersister(foodRepository),
		listing.WithProgressSaver(userService),
		listing.WithPublisher(publisher),
	)
	foodService := listing.NewFoodService(controller, userService, s3, log)

	aggregator := analytics.NewAggregator(store, log,
		analytics.WithRequestCounter(requestService),
		analytics.WithUserCounter(userService),
	)
	store.Subscribe(aggregator.Observe)
	store.Subscribe(func(items []domain.FoodItem) {
		metrics.ListingStoreItems.Set(float64(len(items)))
	})
	metrics.ListingStoreItems.Set(float64(store.Len()))

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	analyticsHandler := handlers.NewAnalyticsHandler(aggregator, userService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	ngoHandler := handlers.NewNGOHandler(ngoService, validator)
	eventHandler := handlers.NewEventHandler(eventService, validator)
	requestHandler := handlers.NewRequestHandler(requestService, validator)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		FoodHandler:         foodHandler,
		AnalyticsHandler:    analyticsHandler,
		NotificationHandler: notificationHandler,
		NGOHandler:          ngoHandler,
		EventHandler:        eventHandler,
		RequestHandler:      requestHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()

	var scanner *listing.ExpiryScanner
	if utils.GetConfigBool("EXPIRY_SCAN_ENABLED") {
		interval, err := time.ParseDuration(utils.GetConfig("EXPIRY_SCAN_INTERVAL"))
		if err != nil {
			interval = listing.DefaultScanInterval
		}
		scanner = listing.NewExpiryScanner(controller, interval, log)
	}

	log.Info("application assembled",
		zap.Int("listings", store.Len()),
		zap.Bool("mail", mailer != nil),
		zap.Bool("expiry_scan", scanner != nil),
	)

	return &App{
		Fiber:         app,
		Scanner:       scanner,
		notifications: notificationService,
		publisher:     publisher,
	}, nil
}

func newProducer(log *zap.Logger) events.Producer {
	raw := utils.GetConfig("KAFKA_BROKERS")
	if raw == "" {
		return events.NewLogProducer(log)
	}
	var brokers []string
	for _, b := range strings.Split(raw, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return events.NewKafkaProducer(brokers)
}
