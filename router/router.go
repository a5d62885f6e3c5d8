package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bellavista/restaurant-backend/basket"
	"github.com/bellavista/restaurant-backend/config"
	"github.com/bellavista/restaurant-backend/controllers"
	"github.com/bellavista/restaurant-backend/middlewares"
	"github.com/bellavista/restaurant-backend/services"
)

// Deps collects everything the handlers need.
type Deps struct {
	DB       *gorm.DB
	Baskets  basket.Store
	Notify   *services.NotificationService
	Events   *services.EventPublisher
	Settings config.Settings
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	// Must be attached before any route registration or gin never
	// includes it in the handler chains.
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	userCtrl := controllers.NewUserController(deps.DB, deps.Notify)
	menuCtrl := controllers.NewMenuController(deps.DB)
	basketCtrl := controllers.NewBasketController(deps.DB, deps.Baskets)
	orderCtrl := controllers.NewOrderController(deps.DB, deps.Baskets, deps.Notify, deps.Events,
		deps.Settings.DeliveryFee, deps.Settings.AdminEmail)
	reservationCtrl := controllers.NewReservationController(deps.DB, deps.Notify, deps.Events,
		deps.Settings.AdminEmail)
	adminCtrl := controllers.NewAdminController(deps.DB, deps.Notify)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/menu", menuCtrl.GetAllMenuItems)
	r.GET("/menu/featured", menuCtrl.GetFeaturedItems)
	r.GET("/menu/:item_id", menuCtrl.GetMenuItemByID)

	// Signup/login behind the strict limiter.
	creds := r.Group("/")
	creds.Use(middlewares.NewStrictRateLimiter())
	{
		creds.POST("/signup", userCtrl.Signup)
		creds.POST("/login", userCtrl.Login)
	}

	// Basket and ordering work for guests and logged-in users alike;
	// a token, when present, attaches the account to the order.
	shop := r.Group("/")
	shop.Use(middlewares.BasketSession(), middlewares.OptionalAuthMiddleware())
	{
		shop.GET("/basket", basketCtrl.ViewBasket)
		shop.POST("/basket/items/:item_id", basketCtrl.AddToBasket)
		shop.PATCH("/basket/items/:item_id", basketCtrl.UpdateBasket)
		shop.DELETE("/basket/items/:item_id", basketCtrl.RemoveFromBasket)

		shop.GET("/checkout", orderCtrl.Checkout)
		shop.POST("/orders", orderCtrl.PlaceOrder)
		shop.GET("/orders/:order_number", orderCtrl.GetOrderByNumber)

		shop.POST("/reservations", reservationCtrl.CreateReservation)
		shop.GET("/reservations/:reservation_number", reservationCtrl.GetReservationByNumber)
	}

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	account := r.Group("/account")
	account.Use(middlewares.AuthMiddleware())
	{
		account.POST("/logout", userCtrl.Logout)
		account.GET("/profile", userCtrl.GetProfile)
		account.PATCH("/profile", userCtrl.UpdateProfile)
		account.GET("/orders", orderCtrl.MyOrders)
		account.GET("/reservations", reservationCtrl.MyReservations)
	}

	// ----------------------------------------------------------------
	//                      STAFF ROUTES
	// ----------------------------------------------------------------
	staff := r.Group("/staff")
	staff.Use(middlewares.AuthMiddleware(), middlewares.StaffOnly())
	{
		staff.GET("/dashboard/stats", adminCtrl.GetDashboardStats)

		staff.GET("/orders", adminCtrl.ListOrders)
		staff.GET("/orders/:order_id", adminCtrl.GetOrder)
		staff.PATCH("/orders/:order_id/status", adminCtrl.UpdateOrderStatus)

		staff.GET("/reservations", adminCtrl.ListReservations)
		staff.PATCH("/reservations/:reservation_id/status", adminCtrl.UpdateReservationStatus)

		staff.POST("/menu", menuCtrl.CreateMenuItem)
		staff.PATCH("/menu/:item_id", menuCtrl.UpdateMenuItem)
		staff.DELETE("/menu/:item_id", menuCtrl.DeleteMenuItem)

		staff.GET("/email-log", adminCtrl.ListEmailLog)
	}

	return r
}
