package routes

import (
	"FoodShare-Backend/internal/api/handlers"
	"FoodShare-Backend/internal/middleware"
	"FoodShare-Backend/pkg/jwt"
	"FoodShare-Backend/pkg/permission"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	FoodHandler         handlers.FoodHandler
	AnalyticsHandler    handlers.AnalyticsHandler
	NotificationHandler handlers.NotificationHandler
	NGOHandler          handlers.NGOHandler
	EventHandler        handlers.EventHandler
	RequestHandler      handlers.RequestHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.FoodItems()
	c.Analytics()
	c.Notifications()
	c.Community()
	c.GuestRoute()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/v1/auth")
	{
		auth.Post("/register/", c.UserHandler.Register)
		auth.Post("/login/", c.UserHandler.Login)
		auth.Post("/refresh/", c.UserHandler.RefreshToken)
		auth.Get("/profile/", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		auth.Patch("/profile/", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateProfile)
	}
}

func (c *Config) FoodItems() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	food := c.App.Group("/api/v1/food", c.Middleware.OptionalAuthMiddleware(c.JWTService))

	// browsing is public
	food.Get("/", c.FoodHandler.GetFoodItems)
	food.Get("/available/", c.FoodHandler.GetAvailableFoodItems)
	food.Get("/:id", c.FoodHandler.GetFoodItemDetails)
	food.Get("/:id/qr", c.FoodHandler.GetQRCode)

	food.Post("/", auth, c.FoodHandler.AddFoodItem)
	food.Post("/scan", auth, c.FoodHandler.ScanQRCode)
	food.Put("/:id", auth, c.FoodHandler.UpdateFoodItem)
	food.Delete("/:id", auth, c.FoodHandler.DeleteFoodItem)
	food.Post("/:id/reserve", auth, c.FoodHandler.ReserveFoodItem)
	food.Post("/:id/collect", auth, c.FoodHandler.CollectFoodItem)
	food.Post("/:id/rate", auth, c.FoodHandler.RateFoodItem)
	food.Post("/:id/image", auth, c.FoodHandler.UploadFoodImage)
}

func (c *Config) Analytics() {
	analytics := c.App.Group("/api/v1/analytics", c.Middleware.AuthMiddleware(c.JWTService))
	analytics.Get("/", c.Middleware.RequirePermission(permission.ViewAnalytics), c.AnalyticsHandler.GetAnalytics)
	analytics.Get("/dashboard", c.Middleware.RequirePermission(permission.ViewDashboard), c.AnalyticsHandler.GetDashboard)
	analytics.Get("/impact", c.AnalyticsHandler.GetImpact)
}

func (c *Config) Notifications() {
	notifications := c.App.Group("/api/v1/notifications", c.Middleware.AuthMiddleware(c.JWTService))
	notifications.Get("/", c.NotificationHandler.GetNotifications)
	notifications.Post("/:id/read", c.NotificationHandler.MarkAsRead)
	notifications.Delete("/:id", c.NotificationHandler.Dismiss)
}

func (c *Config) Community() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	ngos := c.App.Group("/api/v1/ngos")
	ngos.Get("/", c.NGOHandler.GetNGOs)
	ngos.Post("/", auth, c.NGOHandler.CreateNGO)

	events := c.App.Group("/api/v1/events")
	events.Get("/", c.EventHandler.GetEvents)
	events.Post("/", auth, c.EventHandler.CreateEvent)
	events.Post("/:id/food-logged", auth, c.EventHandler.MarkFoodLogged)

	requests := c.App.Group("/api/v1/requests", auth)
	requests.Get("/", c.RequestHandler.GetRequests)
	requests.Post("/", c.RequestHandler.CreateRequest)
	requests.Patch("/:id", c.Middleware.RequirePermission(permission.ManageRequests), c.RequestHandler.UpdateRequestStatus)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
