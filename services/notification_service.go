package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"marketplace-api/config"
	"marketplace-api/models"
)

// NotificationService emails buyers bound to a proof when the admin decides
// on it. Delivery is best-effort; the review decision never depends on it.
type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

func (n *NotificationService) NotifyDecision(ctx context.Context, referenceCode, status string) error {
	if !config.MailConfigured() {
		return nil
	}

	type recipient struct {
		Email    string `gorm:"column:email"`
		ItemName string `gorm:"column:item_name"`
	}

	var rows []recipient
	err := n.db.WithContext(ctx).
		Table("payment_proofs").
		Select("users.email, payment_proofs.item_name").
		Joins("JOIN users ON users.user_id = payment_proofs.user_id").
		Where("payment_proofs.reference_code = ?", referenceCode).
		Scan(&rows).Error
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		// Anonymous submission, nobody to notify.
		return nil
	}

	seen := make(map[string]bool, len(rows))
	for _, row := range rows {
		if row.Email == "" || seen[row.Email] {
			continue
		}
		seen[row.Email] = true

		subject := fmt.Sprintf("Payment proof %s: %s", referenceCode, status)
		body := decisionMailBody(row.ItemName, referenceCode, status)
		if err := config.SendMail([]string{row.Email}, subject, body); err != nil {
			return err
		}
	}

	return nil
}

func decisionMailBody(itemName, referenceCode, status string) string {
	if status == models.ProofStatusConfirmed {
		return fmt.Sprintf(
			"<p>Your payment proof for <b>%s</b> (reference %s) has been confirmed. The seller will contact you to arrange the meetup.</p>",
			itemName, referenceCode)
	}
	return fmt.Sprintf(
		"<p>Your payment proof for <b>%s</b> (reference %s) was rejected. Please check your payment details and submit a new proof.</p>",
		itemName, referenceCode)
}
