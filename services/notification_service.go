package services

import (
	"context"

	"github.com/bellavista/restaurant-backend/models"
	"github.com/bellavista/restaurant-backend/utils"
	"gorm.io/gorm"
)

// NotificationService dispatches emails and records each attempt in the
// email log. Failures are logged and swallowed: notification is never
// allowed to fail the order or reservation that triggered it.
type NotificationService struct {
	DB     *gorm.DB
	Mailer Notifier
}

func NewNotificationService(db *gorm.DB, mailer Notifier) *NotificationService {
	return &NotificationService{DB: db, Mailer: mailer}
}

// Dispatch sends one message best-effort. With no mailer configured it
// is a no-op; a message without a recipient is skipped with a log line.
// Neither case writes an email log row.
func (ns *NotificationService) Dispatch(ctx context.Context, msg Message) {
	if ns == nil || ns.Mailer == nil {
		return
	}
	if msg.Recipient == "" {
		utils.InfoLogger.Printf("Skipping %s email: no recipient address", msg.Kind)
		return
	}

	result := ns.Mailer.Send(ctx, msg)

	entry := models.EmailLog{
		Recipient: msg.Recipient,
		Subject:   msg.Subject,
		Kind:      msg.Kind,
		Delivered: result.Delivered,
	}
	if result.Err != nil {
		entry.Error = result.Err.Error()
		utils.ErrorLogger.Printf("Email notification error (%s to %s): %v", msg.Kind, msg.Recipient, result.Err)
	} else {
		utils.InfoLogger.Printf("Email sent (%s) to %s", msg.Kind, msg.Recipient)
	}

	if ns.DB != nil {
		if err := ns.DB.Create(&entry).Error; err != nil {
			utils.ErrorLogger.Printf("Failed to record email log: %v", err)
		}
	}
}
