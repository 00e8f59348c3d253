package models

import "time"

type WithdrawalStatus string

const (
	WithdrawalStatusPending  WithdrawalStatus = "pending"
	WithdrawalStatusApproved WithdrawalStatus = "approved"
	WithdrawalStatusRejected WithdrawalStatus = "rejected"
)

// WithdrawalRequest is created by a user and transitions exactly once by
// admin action. ProcessedAt is set only on the transition out of pending.
type WithdrawalRequest struct {
	ID            string           `json:"id"`
	UserID        string           `json:"userId"`
	Username      string           `json:"username"`
	Amount        float64          `json:"amount"`
	WalletAddress string           `json:"walletAddress"`
	Status        WithdrawalStatus `json:"status"`
	CreatedAt     time.Time        `json:"createdAt"`
	ProcessedAt   *time.Time       `json:"processedAt"`
}
