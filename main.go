package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/bellavista/restaurant-backend/basket"
	"github.com/bellavista/restaurant-backend/config"
	"github.com/bellavista/restaurant-backend/database"
	"github.com/bellavista/restaurant-backend/models"
	"github.com/bellavista/restaurant-backend/router"
	"github.com/bellavista/restaurant-backend/services"
	"github.com/bellavista/restaurant-backend/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	settings := config.Load()

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	utils.InitDB(db)

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)

	if settings.SeedData {
		if err := database.SeedMenuItems(db); err != nil {
			utils.ErrorLogger.Printf("Error seeding menu items: %v", err)
		}
	}

	// Basket sessions live in Redis when configured, in process memory
	// otherwise.
	basketTTL := time.Duration(settings.BasketTTLMinutes) * time.Minute
	var baskets basket.Store = basket.NewMemoryStore(basketTTL)
	if settings.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: settings.RedisAddr})
		baskets = basket.NewRedisStore(client, basketTTL)
		utils.InfoLogger.Printf("Using Redis basket store at %s", settings.RedisAddr)
	}

	var mailer services.Notifier
	if settings.Web3FormsKey != "" {
		mailer = services.NewWeb3FormsMailer(services.Web3FormsConfig{
			AccessKey: settings.Web3FormsKey,
			FromName:  settings.DefaultFromName,
		})
	} else {
		utils.InfoLogger.Println("WEB3FORMS_ACCESS_KEY not set, email notifications disabled")
	}
	notify := services.NewNotificationService(db, mailer)

	events := services.NewEventPublisher(settings.KafkaBroker, settings.KafkaOrderTopic)
	defer events.Close()

	r := router.SetupRouter(router.Deps{
		DB:       db,
		Baskets:  baskets,
		Notify:   notify,
		Events:   events,
		Settings: settings,
	})

	r.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	utils.InfoLogger.Printf("Listening on port %s", settings.Port)
	if err := r.Run(":" + settings.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Reservation{},
		&models.EmailLog{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
