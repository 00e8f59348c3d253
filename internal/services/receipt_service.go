package services

import (
	"time"

	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SubmitReceipt records an uploaded proof of payment. The upload layer has
// already stored the file; the ledger keeps only the opaque stored name and
// the original name.
func (c *Coordinator) SubmitReceipt(userID string, amount float64, description, fileName, originalName string) (*models.PaymentReceipt, error) {
	if description == "" {
		description = "Payment receipt"
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	u, ok := c.store.UserByID(userID)
	if !ok {
		return nil, ErrUserNotFound
	}

	r := &models.PaymentReceipt{
		ID:           uuid.New().String(),
		UserID:       u.ID,
		Username:     u.Username,
		Amount:       amount,
		Description:  description,
		FileName:     fileName,
		OriginalName: originalName,
		Status:       models.ReceiptStatusPending,
		CreatedAt:    time.Now(),
	}
	c.store.AddReceipt(r)
	c.persistReceipts()

	zap.L().Info("receipt submitted",
		zap.String("username", u.Username),
		zap.Float64("amount", amount),
		zap.String("file", fileName))

	out := *r
	return &out, nil
}

// ReviewReceipt transitions a pending receipt to approved or rejected.
// Approval marks the owning user as paid. The transition is terminal.
func (c *Coordinator) ReviewReceipt(id string, approve bool, reviewedBy string) (*models.PaymentReceipt, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	r, ok := c.store.ReceiptByID(id)
	if !ok {
		return nil, ErrReceiptNotFound
	}
	if r.Status != models.ReceiptStatusPending {
		return nil, ErrAlreadyProcessed
	}

	now := time.Now()
	if approve {
		r.Status = models.ReceiptStatusApproved
	} else {
		r.Status = models.ReceiptStatusRejected
	}
	r.ReviewedBy = reviewedBy
	r.ReviewedAt = &now

	if approve {
		if u, ok := c.store.UserByID(r.UserID); ok {
			u.HasPaid = true
			c.persistUsers()
		}
	}
	c.persistReceipts()

	out := *r
	return &out, nil
}

// ListReceipts returns every receipt, for the admin panel.
func (c *Coordinator) ListReceipts() []*models.PaymentReceipt {
	c.mu.Lock()
	defer c.mu.Unlock()
	return copyReceipts(c.store.Receipts())
}

// ListUserReceipts returns one user's receipts.
func (c *Coordinator) ListUserReceipts(userID string) []*models.PaymentReceipt {
	c.mu.Lock()
	defer c.mu.Unlock()
	return copyReceipts(c.store.ReceiptsByUser(userID))
}

func copyReceipts(rs []*models.PaymentReceipt) []*models.PaymentReceipt {
	out := make([]*models.PaymentReceipt, len(rs))
	for i, r := range rs {
		cp := *r
		out[i] = &cp
	}
	return out
}
