package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"marketplace-api/models"
)

// ErrProofNotFound signals an unknown reference code or transaction ref.
// Callers treat it as "unknown reference," not a fault.
var ErrProofNotFound = errors.New("proof not found")

// Notifier delivers a best-effort message after a review decision.
type Notifier interface {
	NotifyDecision(ctx context.Context, referenceCode, status string) error
}

// ProofService implements the payment-proof verification workflow:
// submission intake, admin confirm/reject, and status lookup. All durable
// state lives in payment_proofs and the append-only status_history ledger.
type ProofService struct {
	db       *gorm.DB
	notifier Notifier
}

func NewProofService(db *gorm.DB, notifier Notifier) *ProofService {
	return &ProofService{db: db, notifier: notifier}
}

type SubmitProofInput struct {
	SenderName    string
	SenderNumber  string
	ReferenceCode string
	ItemName      string
	ItemID        *int
	UserID        *int
	Screenshot    string
}

// Submit records a new proof with status Pending and a generated unique
// transaction ref. The screenshot must already be persisted; its stable
// path/URL is stored as-is. A single insert, no partial write possible.
func (s *ProofService) Submit(ctx context.Context, input SubmitProofInput) (*models.PaymentProof, error) {
	proof := models.PaymentProof{
		SenderName:     input.SenderName,
		SenderNumber:   input.SenderNumber,
		ReferenceCode:  input.ReferenceCode,
		TransactionRef: uuid.NewString(),
		Screenshot:     input.Screenshot,
		Status:         models.ProofStatusPending,
		ItemName:       input.ItemName,
		ItemID:         input.ItemID,
		UserID:         input.UserID,
		CreateAt:       time.Now(),
	}

	if err := s.db.WithContext(ctx).Create(&proof).Error; err != nil {
		return nil, err
	}

	return &proof, nil
}

// Confirm marks every proof matching the reference code as Confirmed.
func (s *ProofService) Confirm(ctx context.Context, referenceCode string) (int64, error) {
	return s.decide(ctx, referenceCode, models.ProofStatusConfirmed)
}

// Reject marks every proof matching the reference code as Rejected.
func (s *ProofService) Reject(ctx context.Context, referenceCode string) (int64, error) {
	return s.decide(ctx, referenceCode, models.ProofStatusRejected)
}

// decide updates all matching proof rows and appends one ledger entry,
// committed as one transaction. There is no precondition on the current
// status: a decided proof can be re-confirmed or rejected later, each
// decision appending its own ledger entry.
func (s *ProofService) decide(ctx context.Context, referenceCode, status string) (int64, error) {
	var updated int64

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		result := tx.Model(&models.PaymentProof{}).
			Where("reference_code = ?", referenceCode).
			Updates(map[string]interface{}{
				"status":    status,
				"update_at": now,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrProofNotFound
		}
		updated = result.RowsAffected

		entry := models.StatusHistory{
			ReferenceCode: referenceCode,
			Status:        status,
			CreatedAt:     now,
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		return 0, err
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyDecision(ctx, referenceCode, status); err != nil {
			log.Printf("Warning: decision notification for %s failed: %v", referenceCode, err)
		}
	}

	return updated, nil
}

// CheckStatus returns the status of the most recently created proof with
// the given reference code, or ErrProofNotFound.
func (s *ProofService) CheckStatus(ctx context.Context, referenceCode string) (string, error) {
	var proof models.PaymentProof
	err := s.db.WithContext(ctx).
		Where("reference_code = ?", referenceCode).
		Order("proof_id DESC").
		First(&proof).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrProofNotFound
	}
	if err != nil {
		return "", err
	}
	return proof.Status, nil
}

// CheckStatusByTransactionRef is the exact lookup by the generated unique
// transaction ref.
func (s *ProofService) CheckStatusByTransactionRef(ctx context.Context, transactionRef string) (string, error) {
	var proof models.PaymentProof
	err := s.db.WithContext(ctx).
		Where("transaction_ref = ?", transactionRef).
		First(&proof).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrProofNotFound
	}
	if err != nil {
		return "", err
	}
	return proof.Status, nil
}

// List returns submitted proofs for the admin view, newest first. An empty
// status lists everything; otherwise only proofs in that status.
func (s *ProofService) List(ctx context.Context, status string) ([]models.PaymentProof, error) {
	q := s.db.WithContext(ctx).Order("proof_id DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var proofs []models.PaymentProof
	if err := q.Find(&proofs).Error; err != nil {
		return nil, err
	}
	return proofs, nil
}

// History returns the ledger entries for a reference code in write order.
func (s *ProofService) History(ctx context.Context, referenceCode string) ([]models.StatusHistory, error) {
	var entries []models.StatusHistory
	err := s.db.WithContext(ctx).
		Where("reference_code = ?", referenceCode).
		Order("history_id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
