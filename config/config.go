package config

import (
	"os"
	"strconv"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Settings is the application configuration read from the environment.
type Settings struct {
	Port             string
	Web3FormsKey     string
	AdminEmail       string
	DefaultFromName  string
	DeliveryFee      float64
	RedisAddr        string
	BasketTTLMinutes int
	KafkaBroker      string
	KafkaOrderTopic  string
	SeedData         bool
}

// Load reads settings from environment variables, applying defaults.
func Load() Settings {
	s := Settings{
		Port:             getEnv("PORT", "8080"),
		Web3FormsKey:     os.Getenv("WEB3FORMS_ACCESS_KEY"),
		AdminEmail:       getEnv("ADMIN_EMAIL", "admin@restaurant.com"),
		DefaultFromName:  getEnv("DEFAULT_FROM_NAME", "Restaurant"),
		DeliveryFee:      5.00,
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		BasketTTLMinutes: 120,
		KafkaBroker:      os.Getenv("KAFKA_BROKER"),
		KafkaOrderTopic:  getEnv("KAFKA_ORDER_TOPIC", "restaurant.orders"),
		SeedData:         os.Getenv("SEED_DATA") == "true",
	}

	if fee, err := strconv.ParseFloat(os.Getenv("DELIVERY_FEE"), 64); err == nil && fee >= 0 {
		s.DeliveryFee = fee
	}
	if ttl, err := strconv.Atoi(os.Getenv("BASKET_TTL_MINUTES")); err == nil && ttl > 0 {
		s.BasketTTLMinutes = ttl
	}

	return s
}

// InitDB opens the database selected by DB_DRIVER. SQLite is the
// default so the app runs with zero external services.
func InitDB() (*gorm.DB, error) {
	driver := getEnv("DB_DRIVER", "sqlite")

	if driver == "mysql" {
		dsn := os.Getenv("DB_DSN")
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	}

	path := getEnv("DB_PATH", "restaurant.db")
	return gorm.Open(sqlite.Open(path), &gorm.Config{})
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
