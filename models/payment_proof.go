package models

import "time"

// Proof statuses (exact match with payment_proofs.status values)
const (
	ProofStatusPending   = "Pending"
	ProofStatusConfirmed = "Confirmed"
	ProofStatusRejected  = "Rejected"
)

// PaymentProof is a buyer-submitted proof of an off-platform payment:
// a screenshot plus sender metadata, reviewed by an administrator.
// The reference code is user-supplied and NOT unique; TransactionRef is
// the generated unique identifier for a single submission.
type PaymentProof struct {
	ProofID        int        `gorm:"primaryKey;column:proof_id" json:"proof_id"`
	SenderName     string     `gorm:"column:sender_name" json:"sender_name"`
	SenderNumber   string     `gorm:"column:sender_number" json:"sender_number"`
	ReferenceCode  string     `gorm:"column:reference_code;index" json:"reference_code"`
	TransactionRef string     `gorm:"column:transaction_ref;unique" json:"transaction_ref"`
	Screenshot     string     `gorm:"column:screenshot" json:"screenshot"`
	Status         string     `gorm:"column:status;default:'Pending'" json:"status"`
	ItemName       string     `gorm:"column:item_name" json:"item_name"`
	ItemID         *int       `gorm:"column:item_id" json:"item_id,omitempty"`
	UserID         *int       `gorm:"column:user_id" json:"user_id,omitempty"`
	CreateAt       time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt       *time.Time `gorm:"column:update_at" json:"update_at,omitempty"`
}

// StatusHistory is the append-only ledger of status transitions, keyed by
// reference code. Entries are never mutated or deleted; multiple entries
// share a reference code when a decision is revised or a code is reused.
type StatusHistory struct {
	HistoryID     int       `gorm:"primaryKey;column:history_id" json:"history_id"`
	ReferenceCode string    `gorm:"column:reference_code;index" json:"reference_code"`
	Status        string    `gorm:"column:status" json:"status"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName overrides
func (PaymentProof) TableName() string {
	return "payment_proofs"
}

func (StatusHistory) TableName() string {
	return "status_history"
}
