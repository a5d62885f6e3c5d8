package Controllers_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/bellavista/restaurant-backend/basket"
	"github.com/bellavista/restaurant-backend/models"
	"github.com/bellavista/restaurant-backend/services"
	"github.com/bellavista/restaurant-backend/utils"
)

var dbCounter int

// newTestDB opens a uniquely named in-memory SQLite database and
// migrates the full schema.
func newTestDB() *gorm.DB {
	dbCounter++
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", dbCounter)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Reservation{},
		&models.EmailLog{},
	)
	if err != nil {
		panic(err)
	}
	return db
}

// fixedBasketSession pins the basket session ID so tests do not have to
// carry cookies between requests.
func fixedBasketSession(sessionID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("basket_session", sessionID)
		c.Next()
	}
}

// fakeMailer records sent messages and can be told to fail.
type fakeMailer struct {
	sent []services.Message
	fail bool
}

func (f *fakeMailer) Send(_ context.Context, msg services.Message) services.Result {
	f.sent = append(f.sent, msg)
	if f.fail {
		return services.Result{Err: errors.New("provider unavailable")}
	}
	return services.Result{Delivered: true}
}

func newBasketStore() *basket.MemoryStore {
	return basket.NewMemoryStore(time.Hour)
}

func seedMenuItem(db *gorm.DB, name string, price float64, available bool) models.MenuItem {
	item := models.MenuItem{
		Name:        name,
		Description: "test item",
		Category:    models.CategoryMain,
		Price:       price,
		IsAvailable: available,
	}
	db.Create(&item)
	return item
}

func init() {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()
}
