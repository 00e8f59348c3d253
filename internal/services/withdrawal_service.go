package services

import (
	"time"

	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/models"
	"github.com/google/uuid"
)

const minimumWithdrawal = 100

// CreateWithdrawal validates and appends a pending withdrawal request. The
// balance check and the append run as one atomic unit; the balance itself is
// not debited here; payout happens out of band after admin approval.
func (c *Coordinator) CreateWithdrawal(userID string, amount float64, walletAddress string) (*models.WithdrawalRequest, error) {
	if amount < minimumWithdrawal {
		return nil, ErrWithdrawalMinimum
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	u, ok := c.store.UserByID(userID)
	if !ok {
		return nil, ErrUserNotFound
	}
	if amount > u.Balance {
		return nil, ErrInsufficientBalance
	}
	if completed, total := u.TaskCounts(); total > 0 && completed < total {
		return nil, &TasksIncompleteError{Completed: completed, Total: total}
	}

	w := &models.WithdrawalRequest{
		ID:            uuid.New().String(),
		UserID:        u.ID,
		Username:      u.Username,
		Amount:        amount,
		WalletAddress: walletAddress,
		Status:        models.WithdrawalStatusPending,
		CreatedAt:     time.Now(),
	}
	c.store.AddWithdrawal(w)
	c.persistWithdrawals()

	out := *w
	return &out, nil
}

// ProcessWithdrawal transitions a pending request to approved or rejected.
// The transition is terminal; re-processing is rejected.
func (c *Coordinator) ProcessWithdrawal(id string, approve bool) (*models.WithdrawalRequest, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	w, ok := c.store.WithdrawalByID(id)
	if !ok {
		return nil, ErrWithdrawalNotFound
	}
	if w.Status != models.WithdrawalStatusPending {
		return nil, ErrAlreadyProcessed
	}

	now := time.Now()
	if approve {
		w.Status = models.WithdrawalStatusApproved
	} else {
		w.Status = models.WithdrawalStatusRejected
	}
	w.ProcessedAt = &now
	c.persistWithdrawals()

	out := *w
	return &out, nil
}

// ListWithdrawals returns all withdrawal requests, oldest first.
func (c *Coordinator) ListWithdrawals() []*models.WithdrawalRequest {
	c.mu.Lock()
	defer c.mu.Unlock()

	ws := c.store.Withdrawals()
	out := make([]*models.WithdrawalRequest, len(ws))
	for i, w := range ws {
		cp := *w
		out[i] = &cp
	}
	return out
}
