package user

import (
	"time"

	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/models"
)

// AdminUserResponse is the admin-panel view of one user.
type AdminUserResponse struct {
	ID            string    `json:"id"`
	UserNumber    string    `json:"userNumber"`
	Username      string    `json:"username"`
	Balance       float64   `json:"balance"`
	TotalReceived int       `json:"totalReceived"`
	TotalGiven    int       `json:"totalGiven"`
	Quota         float64   `json:"quota"`
	HasPaid       bool      `json:"hasPaid"`
	TasksTotal    int       `json:"tasksTotal"`
	TasksDone     int       `json:"tasksDone"`
	CreatedAt     time.Time `json:"createdAt"`
	LastLogin     time.Time `json:"lastLogin"`
}

func NewAdminUserResponse(u *models.User) AdminUserResponse {
	done, total := u.TaskCounts()
	return AdminUserResponse{
		ID:            u.ID,
		UserNumber:    u.UserNumber,
		Username:      u.Username,
		Balance:       u.Balance,
		TotalReceived: u.TotalReceived,
		TotalGiven:    u.TotalGiven,
		Quota:         u.Quota,
		HasPaid:       u.HasPaid,
		TasksTotal:    total,
		TasksDone:     done,
		CreatedAt:     u.CreatedAt,
		LastLogin:     u.LastLogin,
	}
}

// SetQuotaInput assigns or updates a user's quota.
type SetQuotaInput struct {
	Quota float64 `json:"quota" binding:"required,gt=0"`
}

// AddBalanceInput credits a user's balance.
type AddBalanceInput struct {
	Amount float64 `json:"amount" binding:"required"`
}
