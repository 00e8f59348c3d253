package user

import (
	"time"

	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/models"
	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/services"
)

// UserResponse defines the response structure for user information.
type UserResponse struct {
	ID            string                `json:"id"`
	UserNumber    string                `json:"userNumber"`
	Username      string                `json:"username"`
	Balance       float64               `json:"balance"`
	TotalReceived int                   `json:"totalReceived"`
	TotalGiven    int                   `json:"totalGiven"`
	Tasks         []models.TaskInstance `json:"tasks"`
	Quota         float64               `json:"quota"`
	HasPaid       bool                  `json:"hasPaid"`
	NextReward    float64               `json:"nextReward"`
	Token         string                `json:"token,omitempty"`
}

// NewUserResponse builds the standard user snapshot. NextReward is the
// informational preview band, not the completion reward.
func NewUserResponse(u *models.User, token string) UserResponse {
	return UserResponse{
		ID:            u.ID,
		UserNumber:    u.UserNumber,
		Username:      u.Username,
		Balance:       u.Balance,
		TotalReceived: u.TotalReceived,
		TotalGiven:    u.TotalGiven,
		Tasks:         u.Tasks,
		Quota:         u.Quota,
		HasPaid:       u.HasPaid,
		NextReward:    services.NextReward(u.Balance),
		Token:         token,
	}
}

// OrderInput is the body for submitting one order action.
type OrderInput struct {
	OrderType string `json:"orderType" binding:"required,oneof=receive give"`
}

// OrderResponse reports the updated snapshot plus what the order completed.
type OrderResponse struct {
	User           UserResponse          `json:"user"`
	Reward         float64               `json:"reward"`
	NewCompletions []models.TaskInstance `json:"newCompletions"`
}

// WithdrawalInput is the body for creating a withdrawal request.
type WithdrawalInput struct {
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	WalletAddress string  `json:"walletAddress" binding:"required"`
}

// ReceiptResponse is the user-facing view of one payment receipt.
type ReceiptResponse struct {
	ID           string               `json:"id"`
	Amount       float64              `json:"amount"`
	Description  string               `json:"description"`
	Status       models.ReceiptStatus `json:"status"`
	CreatedAt    time.Time            `json:"createdAt"`
	ReviewedAt   *time.Time           `json:"reviewedAt"`
	FileName     string               `json:"fileName"`
	OriginalName string               `json:"originalName"`
}

// NewReceiptResponse converts a ledger receipt to its user-facing view.
func NewReceiptResponse(r *models.PaymentReceipt) ReceiptResponse {
	return ReceiptResponse{
		ID:           r.ID,
		Amount:       r.Amount,
		Description:  r.Description,
		Status:       r.Status,
		CreatedAt:    r.CreatedAt,
		ReviewedAt:   r.ReviewedAt,
		FileName:     r.FileName,
		OriginalName: r.OriginalName,
	}
}
